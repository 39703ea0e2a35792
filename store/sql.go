// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/danielhkuo/whr-dashboard/metrics"
	"github.com/danielhkuo/whr-dashboard/models"
)

// SQLStore runs the catalog against PostgreSQL or SQLite. Queries are
// written with ? placeholders and rebound for the connected driver.
type SQLStore struct {
	db *sqlx.DB
}

func NewSQLStore(db *sqlx.DB) *SQLStore {
	return &SQLStore{db: db}
}

var _ Catalog = (*SQLStore)(nil)

const reportJoins = `
	FROM happiness_report hr
	JOIN country c ON c.country_id = hr.country_id
	JOIN region r ON r.region_id = c.region_id`

const indicatorColumns = `
	SELECT hr.report_id, c.country_name, r.region_name, hr.year, hr.ranking,
	       hr.happiness_score, hr.dystopia_residual,
	       ei.gdp_per_capita,
	       si.social_support, si.healthy_life_expectancy, si.freedom_to_make_life_choices,
	       pe.generosity, pe.perceptions_of_corruption` + reportJoins + `
	LEFT JOIN economic_indicator ei ON ei.report_id = hr.report_id
	LEFT JOIN social_indicator si ON si.report_id = hr.report_id
	LEFT JOIN perception_indicator pe ON pe.report_id = hr.report_id`

func (s *SQLStore) ReportsByYear(ctx context.Context, year int) ([]models.YearReport, error) {
	return selectRows[models.YearReport](ctx, s.db, QueryReportsByYear, `
		SELECT c.country_name, r.region_name, hr.ranking, hr.happiness_score, hr.dystopia_residual`+reportJoins+`
		WHERE hr.year = ?
		ORDER BY hr.ranking ASC, c.country_name ASC
	`, year)
}

func (s *SQLStore) EconomicByYear(ctx context.Context, year int) ([]models.EconomicRow, error) {
	return selectRows[models.EconomicRow](ctx, s.db, QueryEconomicByYear, `
		SELECT c.country_name, r.region_name, hr.happiness_score, ei.gdp_per_capita`+reportJoins+`
		JOIN economic_indicator ei ON ei.report_id = hr.report_id
		WHERE hr.year = ?
		ORDER BY ei.gdp_per_capita DESC NULLS LAST, c.country_name ASC
	`, year)
}

func (s *SQLStore) SocialByYear(ctx context.Context, year int) ([]models.SocialRow, error) {
	return selectRows[models.SocialRow](ctx, s.db, QuerySocialByYear, `
		SELECT c.country_name, r.region_name, hr.happiness_score,
		       si.social_support, si.healthy_life_expectancy, si.freedom_to_make_life_choices`+reportJoins+`
		JOIN social_indicator si ON si.report_id = hr.report_id
		WHERE hr.year = ?
		ORDER BY si.social_support DESC NULLS LAST, c.country_name ASC
	`, year)
}

func (s *SQLStore) PerceptionByYear(ctx context.Context, year int) ([]models.PerceptionRow, error) {
	return selectRows[models.PerceptionRow](ctx, s.db, QueryPerceptionByYear, `
		SELECT c.country_name, r.region_name, hr.happiness_score,
		       pe.generosity, pe.perceptions_of_corruption`+reportJoins+`
		JOIN perception_indicator pe ON pe.report_id = hr.report_id
		WHERE hr.year = ?
		ORDER BY pe.perceptions_of_corruption ASC NULLS LAST, c.country_name ASC
	`, year)
}

// The all-years views average only the reports that have the indicator row,
// so a country's average score matches the years its indicators cover.

func (s *SQLStore) EconomicAllYears(ctx context.Context) ([]models.EconomicAverage, error) {
	return selectRows[models.EconomicAverage](ctx, s.db, QueryEconomicAll, `
		SELECT c.country_name, r.region_name,
		       ROUND(AVG(ei.gdp_per_capita), 3) AS avg_gdp_per_capita,
		       ROUND(AVG(hr.happiness_score), 3) AS avg_happiness_score`+reportJoins+`
		JOIN economic_indicator ei ON ei.report_id = hr.report_id
		GROUP BY c.country_id, c.country_name, r.region_name
		ORDER BY avg_gdp_per_capita DESC NULLS LAST, c.country_name ASC
	`)
}

func (s *SQLStore) SocialAllYears(ctx context.Context) ([]models.SocialAverage, error) {
	return selectRows[models.SocialAverage](ctx, s.db, QuerySocialAll, `
		SELECT c.country_name, r.region_name,
		       ROUND(AVG(si.social_support), 3) AS avg_social_support,
		       ROUND(AVG(si.healthy_life_expectancy), 3) AS avg_healthy_life_expectancy,
		       ROUND(AVG(si.freedom_to_make_life_choices), 3) AS avg_freedom_to_make_life_choices,
		       ROUND(AVG(hr.happiness_score), 3) AS avg_happiness_score`+reportJoins+`
		JOIN social_indicator si ON si.report_id = hr.report_id
		GROUP BY c.country_id, c.country_name, r.region_name
		ORDER BY avg_social_support DESC NULLS LAST, c.country_name ASC
	`)
}

func (s *SQLStore) PerceptionAllYears(ctx context.Context) ([]models.PerceptionAverage, error) {
	return selectRows[models.PerceptionAverage](ctx, s.db, QueryPerceptionAll, `
		SELECT c.country_name, r.region_name,
		       ROUND(AVG(pe.generosity), 3) AS avg_generosity,
		       ROUND(AVG(pe.perceptions_of_corruption), 3) AS avg_perceptions_of_corruption,
		       ROUND(AVG(hr.happiness_score), 3) AS avg_happiness_score`+reportJoins+`
		JOIN perception_indicator pe ON pe.report_id = hr.report_id
		GROUP BY c.country_id, c.country_name, r.region_name
		ORDER BY avg_perceptions_of_corruption ASC NULLS LAST, c.country_name ASC
	`)
}

func (s *SQLStore) GlobalStatistics(ctx context.Context) (models.GlobalStats, error) {
	return getRow[models.GlobalStats](ctx, s.db, QueryGlobalStatistics, `
		SELECT COUNT(*) AS reports,
		       ROUND(AVG(happiness_score), 3) AS avg_score,
		       MAX(happiness_score) AS max_score,
		       MIN(happiness_score) AS min_score
		FROM happiness_report
	`)
}

func (s *SQLStore) CountryAveragesAllYears(ctx context.Context) ([]models.CountryAverage, error) {
	return selectRows[models.CountryAverage](ctx, s.db, QueryCountryAverages, `
		SELECT c.country_name, r.region_name,
		       ROUND(AVG(hr.ranking), 1) AS avg_ranking,
		       ROUND(AVG(hr.happiness_score), 3) AS avg_happiness_score`+reportJoins+`
		GROUP BY c.country_id, c.country_name, r.region_name
		ORDER BY avg_happiness_score DESC, c.country_name ASC
	`)
}

func (s *SQLStore) RegionSummaryByYear(ctx context.Context, year int) ([]models.RegionSummary, error) {
	return selectRows[models.RegionSummary](ctx, s.db, QueryRegionSummary, `
		SELECT r.region_name,
		       COUNT(DISTINCT c.country_id) AS country_count,
		       ROUND(AVG(hr.happiness_score), 3) AS avg_happiness_score`+reportJoins+`
		WHERE hr.year = ?
		GROUP BY r.region_id, r.region_name
		ORDER BY avg_happiness_score DESC, r.region_name ASC
	`, year)
}

func (s *SQLStore) ReportsByCountry(ctx context.Context, countryID int) ([]models.IndicatorRow, error) {
	return selectRows[models.IndicatorRow](ctx, s.db, QueryReportsByCountry, indicatorColumns+`
		WHERE hr.country_id = ?
		ORDER BY hr.year ASC
	`, countryID)
}

func (s *SQLStore) Years(ctx context.Context) ([]int, error) {
	return selectRows[int](ctx, s.db, QueryYears, `
		SELECT DISTINCT year FROM happiness_report ORDER BY year DESC
	`)
}

func (s *SQLStore) Regions(ctx context.Context) ([]models.RegionCount, error) {
	return selectRows[models.RegionCount](ctx, s.db, QueryRegions, `
		SELECT r.region_id, r.region_name, COUNT(c.country_id) AS country_count
		FROM region r
		LEFT JOIN country c ON c.region_id = r.region_id
		GROUP BY r.region_id, r.region_name
		ORDER BY r.region_name ASC
	`)
}

func (s *SQLStore) Countries(ctx context.Context, regionID int) ([]models.Country, error) {
	if regionID == 0 {
		return selectRows[models.Country](ctx, s.db, QueryCountries, `
			SELECT country_id, country_name, region_id FROM country ORDER BY country_name ASC
		`)
	}
	return selectRows[models.Country](ctx, s.db, QueryCountries, `
		SELECT country_id, country_name, region_id FROM country
		WHERE region_id = ?
		ORDER BY country_name ASC
	`, regionID)
}

func (s *SQLStore) TopCountries(ctx context.Context, year, limit int) ([]models.IndicatorRow, error) {
	return selectRows[models.IndicatorRow](ctx, s.db, QueryTopCountries, indicatorColumns+`
		WHERE hr.year = ?
		ORDER BY hr.happiness_score DESC, c.country_name ASC
		LIMIT ?
	`, year, clampLimit(limit))
}

func (s *SQLStore) BottomCountries(ctx context.Context, year, limit int) ([]models.IndicatorRow, error) {
	return selectRows[models.IndicatorRow](ctx, s.db, QueryBottomCountries, indicatorColumns+`
		WHERE hr.year = ?
		ORDER BY hr.happiness_score ASC, c.country_name ASC
		LIMIT ?
	`, year, clampLimit(limit))
}

func (s *SQLStore) Overview(ctx context.Context) (models.Overview, error) {
	return getRow[models.Overview](ctx, s.db, QueryOverview, `
		SELECT
			(SELECT COUNT(*) FROM region) AS regions,
			(SELECT COUNT(*) FROM country) AS countries,
			(SELECT COUNT(*) FROM happiness_report) AS reports,
			(SELECT COUNT(DISTINCT country_id) FROM happiness_report) AS countries_with_reports,
			(SELECT COUNT(*) FROM economic_indicator) AS economic_indicators,
			(SELECT COUNT(*) FROM social_indicator) AS social_indicators,
			(SELECT COUNT(*) FROM perception_indicator) AS perception_indicators
	`)
}

// MaxLimit caps top and bottom queries.
const MaxLimit = 200

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultLimit
	case limit > MaxLimit:
		return MaxLimit
	}
	return limit
}

func selectRows[T any](ctx context.Context, db *sqlx.DB, name, query string, args ...any) ([]T, error) {
	start := time.Now()
	rows := make([]T, 0)
	err := db.SelectContext(ctx, &rows, db.Rebind(query), args...)
	metrics.ObserveQuery(name, start, err)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	slog.Debug("query executed",
		"query", name,
		"params", args,
		"rows", len(rows),
		"duration", time.Since(start),
	)
	return rows, nil
}

func getRow[T any](ctx context.Context, db *sqlx.DB, name, query string, args ...any) (T, error) {
	start := time.Now()
	var row T
	err := db.GetContext(ctx, &row, db.Rebind(query), args...)
	metrics.ObserveQuery(name, start, err)
	if err != nil {
		return row, fmt.Errorf("%s: %w", name, err)
	}

	slog.Debug("query executed", "query", name, "params", args, "duration", time.Since(start))
	return row, nil
}
