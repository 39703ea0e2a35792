// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the warehouse entities and the flat rows returned by
the query catalog.

# Entities

Dimension and fact tables map one-to-one onto structs:

  - Region, Country: dimensions
  - HappinessReport: one country's outcome for one year
  - EconomicIndicator, SocialIndicator, PerceptionIndicator: 1:1
    extensions of a report

# Query Rows

Each catalog query returns a slice of one row type:

  - YearReport: ReportsByYear
  - EconomicRow, SocialRow, PerceptionRow: indicator views per year
  - GlobalStats: average, maximum, minimum happiness score
  - CountryAverage: per-country averages over all years
  - EconomicAverage, SocialAverage, PerceptionAverage: indicator views
    averaged over all years
  - RegionSummary: per-region count and average for a year
  - IndicatorRow: a report with every indicator (trends, top/bottom lists)
  - RegionCount, Overview: reference listings and record counts

# Numbers

Measures are stored as NUMERIC and scanned into Number, which keeps the exact
decimal and a Valid flag:

	var n models.Number
	_ = n.Scan([]byte("7.587"))
	f, ok := n.Float64() // 7.587, true

NULL, empty and non-numeric values scan to a missing Number instead of
failing the row. Callers decide whether to skip, zero-fill, or propagate
the gap. Missing values encode as JSON null.
*/
package models
