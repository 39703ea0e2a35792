// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the dashboard API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, catalog)

# Endpoints

Operational:

	GET /health  - Pings the database, 503 when unreachable
	GET /metrics - Prometheus exposition
	GET /        - Banner

Dimensions:

	GET /years                  - Years with reports, newest first
	GET /regions                - Regions with country counts
	GET /countries?region_id=   - Countries, optionally by region
	GET /overview               - Row counts per table

Reports (year required):

	GET /reports?year=
	GET /reports/economic?year=
	GET /reports/social?year=
	GET /reports/perception?year=
	GET /reports/top?year=&limit=
	GET /reports/bottom?year=&limit=
	GET /regions/summary?year=

Aggregates:

	GET /stats/global
	GET /reports/economic/all
	GET /reports/social/all
	GET /reports/perception/all
	GET /countries/averages
	GET /countries/{id}/reports

Every catalog route is wrapped in middleware.WithLogging. CORS is applied
to the whole mux by the caller.
*/
package router
