// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package seed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jmoiron/sqlx"

	"github.com/danielhkuo/whr-dashboard/cliparse"
	"github.com/danielhkuo/whr-dashboard/db"
)

// Load inserts ds in one transaction: regions, countries, reports, then
// indicators. The first failing row aborts and rolls back the whole load.
// Loading into tables that already hold the same keys fails with
// db.ErrUniqueViolation; call Clear first to reload.
func Load(ctx context.Context, conn *sqlx.DB, ds Dataset) error {
	start := time.Now()

	tx, err := conn.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin load: %w", err)
	}
	defer tx.Rollback()

	steps := []struct {
		table string
		query string
		n     int
		args  func(i int) []any
	}{
		{
			table: "region",
			query: `INSERT INTO region (region_id, region_name) VALUES (?, ?)`,
			n:     len(ds.Regions),
			args: func(i int) []any {
				r := ds.Regions[i]
				return []any{r.ID, r.Name}
			},
		},
		{
			table: "country",
			query: `INSERT INTO country (country_id, country_name, region_id) VALUES (?, ?, ?)`,
			n:     len(ds.Countries),
			args: func(i int) []any {
				c := ds.Countries[i]
				return []any{c.ID, c.Name, c.RegionID}
			},
		},
		{
			table: "happiness_report",
			query: `INSERT INTO happiness_report (report_id, country_id, year, ranking, happiness_score, dystopia_residual) VALUES (?, ?, ?, ?, ?, ?)`,
			n:     len(ds.Reports),
			args: func(i int) []any {
				r := ds.Reports[i]
				return []any{r.ID, r.CountryID, r.Year, r.Ranking, r.HappinessScore, r.DystopiaResidual}
			},
		},
		{
			table: "economic_indicator",
			query: `INSERT INTO economic_indicator (economic_id, report_id, gdp_per_capita) VALUES (?, ?, ?)`,
			n:     len(ds.Economic),
			args: func(i int) []any {
				e := ds.Economic[i]
				return []any{e.ID, e.ReportID, e.GDPPerCapita}
			},
		},
		{
			table: "social_indicator",
			query: `INSERT INTO social_indicator (social_id, report_id, social_support, healthy_life_expectancy, freedom_to_make_life_choices) VALUES (?, ?, ?, ?, ?)`,
			n:     len(ds.Social),
			args: func(i int) []any {
				s := ds.Social[i]
				return []any{s.ID, s.ReportID, s.SocialSupport, s.LifeExpectancy, s.Freedom}
			},
		},
		{
			table: "perception_indicator",
			query: `INSERT INTO perception_indicator (perception_id, report_id, generosity, perceptions_of_corruption) VALUES (?, ?, ?, ?)`,
			n:     len(ds.Perceptions),
			args: func(i int) []any {
				p := ds.Perceptions[i]
				return []any{p.ID, p.ReportID, p.Generosity, p.Corruption}
			},
		},
	}

	for _, step := range steps {
		if step.n == 0 {
			continue
		}
		stmt, err := tx.PreparexContext(ctx, tx.Rebind(step.query))
		if err != nil {
			return fmt.Errorf("prepare %s insert: %w", step.table, err)
		}
		for i := 0; i < step.n; i++ {
			if _, err := stmt.ExecContext(ctx, step.args(i)...); err != nil {
				stmt.Close()
				return fmt.Errorf("insert %s row %d: %w", step.table, i+1, db.ClassifyError(err))
			}
		}
		stmt.Close()
		slog.Info("table loaded", "table", step.table, "rows", humanize.Comma(int64(step.n)))
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit load: %w", db.ClassifyError(err))
	}

	slog.Info("bulk load complete",
		"reports", humanize.Comma(int64(len(ds.Reports))),
		"duration", time.Since(start).Round(time.Millisecond),
	)
	return nil
}

// Clear deletes every row, children first, in one transaction.
func Clear(ctx context.Context, conn *sqlx.DB) error {
	tx, err := conn.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin clear: %w", err)
	}
	defer tx.Rollback()

	for i := len(db.Tables) - 1; i >= 0; i-- {
		res, err := tx.ExecContext(ctx, "DELETE FROM "+db.Tables[i])
		if err != nil {
			return fmt.Errorf("clear %s: %w", db.Tables[i], err)
		}
		n, _ := res.RowsAffected()
		slog.Debug("table cleared", "table", db.Tables[i], "rows", humanize.Comma(n))
	}
	return tx.Commit()
}

// FromSource builds the dataset for a -load value: LoadSynthetic or a
// directory of yearly report files checked against the reference sets.
func FromSource(source string) (Dataset, error) {
	if source == cliparse.LoadSynthetic {
		return Synthetic(DefaultYears, 2015), nil
	}

	records, err := ReadDir(source)
	if err != nil {
		return Dataset{}, err
	}
	ds, skipped := Build(ReferenceRegions(), ReferenceCountries(), records)
	for _, s := range skipped {
		slog.Warn("record skipped", "year", s.Year, "country", s.Country, "reason", s.Reason)
	}
	slog.Info("year files read",
		"records", humanize.Comma(int64(len(records))),
		"skipped", len(skipped),
	)
	return ds, nil
}
