// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Dimension types

type Region struct {
	ID   int    `db:"region_id" json:"region_id"`
	Name string `db:"region_name" json:"region_name"`
}

type Country struct {
	ID       int    `db:"country_id" json:"country_id"`
	Name     string `db:"country_name" json:"country_name"`
	RegionID int    `db:"region_id" json:"region_id"`
}

// Fact types

// HappinessReport is one country's outcome for one year.
type HappinessReport struct {
	ID               int    `db:"report_id" json:"report_id"`
	CountryID        int    `db:"country_id" json:"country_id"`
	Year             int    `db:"year" json:"year"`
	Ranking          int    `db:"ranking" json:"ranking"`
	HappinessScore   Number `db:"happiness_score" json:"happiness_score"`
	DystopiaResidual Number `db:"dystopia_residual" json:"dystopia_residual"`
}

// Indicator rows are 1:1 extensions of a HappinessReport.

type EconomicIndicator struct {
	ID           int    `db:"economic_id" json:"economic_id"`
	ReportID     int    `db:"report_id" json:"report_id"`
	GDPPerCapita Number `db:"gdp_per_capita" json:"gdp_per_capita"`
}

type SocialIndicator struct {
	ID             int    `db:"social_id" json:"social_id"`
	ReportID       int    `db:"report_id" json:"report_id"`
	SocialSupport  Number `db:"social_support" json:"social_support"`
	LifeExpectancy Number `db:"healthy_life_expectancy" json:"healthy_life_expectancy"`
	Freedom        Number `db:"freedom_to_make_life_choices" json:"freedom_to_make_life_choices"`
}

type PerceptionIndicator struct {
	ID         int    `db:"perception_id" json:"perception_id"`
	ReportID   int    `db:"report_id" json:"report_id"`
	Generosity Number `db:"generosity" json:"generosity"`
	Corruption Number `db:"perceptions_of_corruption" json:"perceptions_of_corruption"`
}

// Query result rows

// YearReport is a row of ReportsByYear.
type YearReport struct {
	CountryName      string `db:"country_name" json:"country_name"`
	RegionName       string `db:"region_name" json:"region_name"`
	Ranking          int    `db:"ranking" json:"ranking"`
	HappinessScore   Number `db:"happiness_score" json:"happiness_score"`
	DystopiaResidual Number `db:"dystopia_residual" json:"dystopia_residual"`
}

// EconomicRow is a row of EconomicByYear.
type EconomicRow struct {
	CountryName    string `db:"country_name" json:"country_name"`
	RegionName     string `db:"region_name" json:"region_name"`
	HappinessScore Number `db:"happiness_score" json:"happiness_score"`
	GDPPerCapita   Number `db:"gdp_per_capita" json:"gdp_per_capita"`
}

// SocialRow is a row of SocialByYear.
type SocialRow struct {
	CountryName    string `db:"country_name" json:"country_name"`
	RegionName     string `db:"region_name" json:"region_name"`
	HappinessScore Number `db:"happiness_score" json:"happiness_score"`
	SocialSupport  Number `db:"social_support" json:"social_support"`
	LifeExpectancy Number `db:"healthy_life_expectancy" json:"healthy_life_expectancy"`
	Freedom        Number `db:"freedom_to_make_life_choices" json:"freedom_to_make_life_choices"`
}

// PerceptionRow is a row of PerceptionByYear.
type PerceptionRow struct {
	CountryName    string `db:"country_name" json:"country_name"`
	RegionName     string `db:"region_name" json:"region_name"`
	HappinessScore Number `db:"happiness_score" json:"happiness_score"`
	Generosity     Number `db:"generosity" json:"generosity"`
	Corruption     Number `db:"perceptions_of_corruption" json:"perceptions_of_corruption"`
}

// GlobalStats summarizes every report across all years.
type GlobalStats struct {
	Reports int    `db:"reports" json:"reports"`
	Average Number `db:"avg_score" json:"average"`
	Maximum Number `db:"max_score" json:"maximum"`
	Minimum Number `db:"min_score" json:"minimum"`
}

// CountryAverage is a row of CountryAveragesAllYears.
type CountryAverage struct {
	CountryName    string `db:"country_name" json:"country_name"`
	RegionName     string `db:"region_name" json:"region_name"`
	AverageRanking Number `db:"avg_ranking" json:"avg_ranking"`
	AverageScore   Number `db:"avg_happiness_score" json:"avg_happiness_score"`
}

// RegionSummary is a row of RegionSummaryByYear.
type RegionSummary struct {
	RegionName   string `db:"region_name" json:"region_name"`
	CountryCount int    `db:"country_count" json:"country_count"`
	AverageScore Number `db:"avg_happiness_score" json:"avg_happiness_score"`
}

// IndicatorRow is a report joined with all of its indicators. Indicator
// values are missing when the report has no row in that indicator table.
type IndicatorRow struct {
	ReportID         int    `db:"report_id" json:"report_id"`
	CountryName      string `db:"country_name" json:"country_name"`
	RegionName       string `db:"region_name" json:"region_name"`
	Year             int    `db:"year" json:"year"`
	Ranking          int    `db:"ranking" json:"ranking"`
	HappinessScore   Number `db:"happiness_score" json:"happiness_score"`
	DystopiaResidual Number `db:"dystopia_residual" json:"dystopia_residual"`
	GDPPerCapita     Number `db:"gdp_per_capita" json:"gdp_per_capita"`
	SocialSupport    Number `db:"social_support" json:"social_support"`
	LifeExpectancy   Number `db:"healthy_life_expectancy" json:"healthy_life_expectancy"`
	Freedom          Number `db:"freedom_to_make_life_choices" json:"freedom_to_make_life_choices"`
	Generosity       Number `db:"generosity" json:"generosity"`
	Corruption       Number `db:"perceptions_of_corruption" json:"perceptions_of_corruption"`
}

// EconomicAverage is one country's GDP per capita averaged over every year
// that has an economic row.
type EconomicAverage struct {
	CountryName  string `db:"country_name" json:"country_name"`
	RegionName   string `db:"region_name" json:"region_name"`
	AverageGDP   Number `db:"avg_gdp_per_capita" json:"avg_gdp_per_capita"`
	AverageScore Number `db:"avg_happiness_score" json:"avg_happiness_score"`
}

type SocialAverage struct {
	CountryName           string `db:"country_name" json:"country_name"`
	RegionName            string `db:"region_name" json:"region_name"`
	AverageSupport        Number `db:"avg_social_support" json:"avg_social_support"`
	AverageLifeExpectancy Number `db:"avg_healthy_life_expectancy" json:"avg_healthy_life_expectancy"`
	AverageFreedom        Number `db:"avg_freedom_to_make_life_choices" json:"avg_freedom_to_make_life_choices"`
	AverageScore          Number `db:"avg_happiness_score" json:"avg_happiness_score"`
}

type PerceptionAverage struct {
	CountryName       string `db:"country_name" json:"country_name"`
	RegionName        string `db:"region_name" json:"region_name"`
	AverageGenerosity Number `db:"avg_generosity" json:"avg_generosity"`
	AverageCorruption Number `db:"avg_perceptions_of_corruption" json:"avg_perceptions_of_corruption"`
	AverageScore      Number `db:"avg_happiness_score" json:"avg_happiness_score"`
}

// RegionCount is a region with the number of countries assigned to it.
type RegionCount struct {
	ID           int    `db:"region_id" json:"region_id"`
	Name         string `db:"region_name" json:"region_name"`
	CountryCount int    `db:"country_count" json:"country_count"`
}

// Overview holds record counts for the landing page and data checks.
type Overview struct {
	Regions              int `db:"regions" json:"regions"`
	Countries            int `db:"countries" json:"countries"`
	Reports              int `db:"reports" json:"reports"`
	CountriesWithReports int `db:"countries_with_reports" json:"countries_with_reports"`
	EconomicIndicators   int `db:"economic_indicators" json:"economic_indicators"`
	SocialIndicators     int `db:"social_indicators" json:"social_indicators"`
	PerceptionIndicators int `db:"perception_indicators" json:"perception_indicators"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
