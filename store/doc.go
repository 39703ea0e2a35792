// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store implements the query catalog over the warehouse schema.

# Catalog

Catalog exposes one method per query. Parameters are always bound, never
concatenated into SQL. Results are flat rows ready for charts and tables;
measures are models.Number, so a NULL or non-numeric cell arrives as a
missing value instead of failing the result.

	catalog := store.NewSQLStore(conn)
	rows, err := catalog.ReportsByYear(ctx, 2015)

Orderings:

  - ReportsByYear: ranking ascending
  - EconomicByYear: GDP per capita descending
  - SocialByYear: social support descending
  - PerceptionByYear: perceptions of corruption ascending
  - EconomicAllYears, SocialAllYears, PerceptionAllYears: per-country
    averages, ordered like their by-year counterparts
  - CountryAveragesAllYears, RegionSummaryByYear: average score descending
  - ReportsByCountry: year ascending
  - TopCountries / BottomCountries: score descending / ascending

Missing measures sort last and ties break on name.

# Caching

Cached wraps any Catalog with a cache.Cache. Entries are JSON encoded and
keyed by query name plus parameters. A cache that is down only costs a
query; errors from the wrapped catalog are never cached.

	catalog := store.NewCached(store.NewSQLStore(conn), cache.NewMemory(256, 10*time.Minute))

Every query records whr_query_duration_seconds and, on failure,
whr_query_errors_total. Cached adds hit and miss counters.
*/
package store
