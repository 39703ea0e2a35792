// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"

	"github.com/danielhkuo/whr-dashboard/models"
)

// Query names label metrics, cache keys and debug logs.
const (
	QueryReportsByYear    = "reports_by_year"
	QueryEconomicByYear   = "economic_by_year"
	QuerySocialByYear     = "social_by_year"
	QueryPerceptionByYear = "perception_by_year"
	QueryEconomicAll      = "economic_all_years"
	QuerySocialAll        = "social_all_years"
	QueryPerceptionAll    = "perception_all_years"
	QueryGlobalStatistics = "global_statistics"
	QueryCountryAverages  = "country_averages_all_years"
	QueryRegionSummary    = "region_summary_by_year"
	QueryReportsByCountry = "reports_by_country"
	QueryYears            = "years"
	QueryRegions          = "regions"
	QueryCountries        = "countries"
	QueryTopCountries     = "top_countries"
	QueryBottomCountries  = "bottom_countries"
	QueryOverview         = "overview"
)

// DefaultLimit applies when a top or bottom query is asked for zero rows.
const DefaultLimit = 10

// Catalog is the fixed set of read queries behind the dashboard. Slices
// are never nil; a year or country without data yields an empty slice.
type Catalog interface {
	// ReportsByYear orders by ranking ascending.
	ReportsByYear(ctx context.Context, year int) ([]models.YearReport, error)
	// EconomicByYear orders by GDP per capita descending.
	EconomicByYear(ctx context.Context, year int) ([]models.EconomicRow, error)
	// SocialByYear orders by social support descending.
	SocialByYear(ctx context.Context, year int) ([]models.SocialRow, error)
	// PerceptionByYear orders by perceptions of corruption ascending.
	PerceptionByYear(ctx context.Context, year int) ([]models.PerceptionRow, error)
	// EconomicAllYears averages per country, ordered like EconomicByYear.
	EconomicAllYears(ctx context.Context) ([]models.EconomicAverage, error)
	// SocialAllYears averages per country, ordered like SocialByYear.
	SocialAllYears(ctx context.Context) ([]models.SocialAverage, error)
	// PerceptionAllYears averages per country, ordered like PerceptionByYear.
	PerceptionAllYears(ctx context.Context) ([]models.PerceptionAverage, error)
	// GlobalStatistics covers every year and country.
	GlobalStatistics(ctx context.Context) (models.GlobalStats, error)
	// CountryAveragesAllYears orders by average score descending.
	CountryAveragesAllYears(ctx context.Context) ([]models.CountryAverage, error)
	// RegionSummaryByYear orders by average score descending.
	RegionSummaryByYear(ctx context.Context, year int) ([]models.RegionSummary, error)
	// ReportsByCountry is one country's time series, oldest year first.
	ReportsByCountry(ctx context.Context, countryID int) ([]models.IndicatorRow, error)

	Years(ctx context.Context) ([]int, error)
	Regions(ctx context.Context) ([]models.RegionCount, error)
	// Countries lists one region's countries by name, or all when regionID is 0.
	Countries(ctx context.Context, regionID int) ([]models.Country, error)
	TopCountries(ctx context.Context, year, limit int) ([]models.IndicatorRow, error)
	BottomCountries(ctx context.Context, year, limit int) ([]models.IndicatorRow, error)
	Overview(ctx context.Context) (models.Overview, error)
}
