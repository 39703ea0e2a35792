// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the dashboard API.

# Handler Types

Each handler is a struct over a store.Catalog:

  - ReportsHandler: year-scoped reports, rankings, statistics, averages
  - DimensionsHandler: years, regions, countries and the overview counts

Handlers are created via constructor functions:

	reports := handlers.NewReportsHandler(catalog)

# Endpoints

All endpoints are GET and return JSON arrays or objects.

	GET /reports?year=              → ReportsByYear
	GET /reports/economic?year=     → EconomicByYear
	GET /reports/social?year=       → SocialByYear
	GET /reports/perception?year=   → PerceptionByYear
	GET /reports/economic/all       → EconomicAllYears
	GET /reports/social/all         → SocialAllYears
	GET /reports/perception/all     → PerceptionAllYears
	GET /reports/top?year=&limit=   → TopCountries
	GET /reports/bottom?year=&limit= → BottomCountries
	GET /regions/summary?year=      → RegionSummary
	GET /stats/global               → GlobalStatistics
	GET /countries/averages         → CountryAverages
	GET /countries/{id}/reports     → CountryReports
	GET /years, /regions, /countries?region_id=, /overview

# Errors

A missing or malformed year, limit or id is a 400. An empty result is a
200 with []. A database failure is logged and answered with a 500
"Database error".
*/
package handlers
