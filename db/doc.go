// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles connections, schema creation, and constraint errors.

# Connections

Open connects to PostgreSQL (lib/pq) or SQLite (modernc.org/sqlite) and
pings before returning:

	conn, err := db.Open(ctx, cfg)
	if errors.Is(err, db.ErrConnection) {
		log.Fatal(err)
	}
	defer conn.Close()

There is no retry. SQLite connections always run with foreign keys on.

# Schema Creation

CreateSchema executes the embedded schema.sql:

	if err := db.CreateSchema(ctx, conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
The same DDL runs on both engines.

# Tables

  - region: geographic grouping, unique name
  - country: nation, unique name, belongs to a region
  - happiness_report: one row per (country, year)
  - economic_indicator: GDP per capita
  - social_indicator: social support, life expectancy, freedom
  - perception_indicator: generosity, perceptions of corruption

# Relationships

	region 1──* country                (ON DELETE RESTRICT)
	country 1──* happiness_report      (ON DELETE CASCADE)
	happiness_report 1──1 economic_indicator   (ON DELETE CASCADE)
	happiness_report 1──1 social_indicator     (ON DELETE CASCADE)
	happiness_report 1──1 perception_indicator (ON DELETE CASCADE)

A region cannot be deleted while a country references it. Deleting a country
removes its reports and every indicator row attached to them. The 1:1 links
are enforced by a UNIQUE report_id in each indicator table.

# Indexes

Every foreign key column and every filter or sort key used by the query
catalog is indexed:

  - country.region_id
  - happiness_report.country_id, (country_id, year) unique
  - happiness_report.(year, ranking), ranking, happiness_score
  - economic_indicator.gdp_per_capita
  - social_indicator.social_support, healthy_life_expectancy,
    freedom_to_make_life_choices
  - perception_indicator.generosity, perceptions_of_corruption

# Errors

ClassifyError maps driver errors onto ErrUniqueViolation and
ErrForeignKeyViolation so callers can use errors.Is regardless of engine.
*/
package db
