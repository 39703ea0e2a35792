// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/danielhkuo/whr-dashboard/handlers"
	"github.com/danielhkuo/whr-dashboard/metrics"
	"github.com/danielhkuo/whr-dashboard/middleware"
	"github.com/danielhkuo/whr-dashboard/store"
)

const healthTimeout = 2 * time.Second

func NewRouter(db *sqlx.DB, catalog store.Catalog) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	reportsHandler := handlers.NewReportsHandler(catalog)
	dimensionsHandler := handlers.NewDimensionsHandler(catalog)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			slog.Warn("health check failed", "error", err)
			http.Error(w, "database unreachable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	mux.Handle("GET /metrics", metrics.Handler())

	// Dimensions
	mux.HandleFunc("GET /years", middleware.WithLogging(dimensionsHandler.Years))
	mux.HandleFunc("GET /regions", middleware.WithLogging(dimensionsHandler.Regions))
	mux.HandleFunc("GET /countries", middleware.WithLogging(dimensionsHandler.Countries))
	mux.HandleFunc("GET /overview", middleware.WithLogging(dimensionsHandler.Overview))

	// Year-scoped reports
	mux.HandleFunc("GET /reports", middleware.WithLogging(reportsHandler.ReportsByYear))
	mux.HandleFunc("GET /reports/economic", middleware.WithLogging(reportsHandler.EconomicByYear))
	mux.HandleFunc("GET /reports/social", middleware.WithLogging(reportsHandler.SocialByYear))
	mux.HandleFunc("GET /reports/perception", middleware.WithLogging(reportsHandler.PerceptionByYear))
	mux.HandleFunc("GET /reports/top", middleware.WithLogging(reportsHandler.TopCountries))
	mux.HandleFunc("GET /reports/bottom", middleware.WithLogging(reportsHandler.BottomCountries))
	mux.HandleFunc("GET /regions/summary", middleware.WithLogging(reportsHandler.RegionSummary))

	// Cross-year aggregates
	mux.HandleFunc("GET /reports/economic/all", middleware.WithLogging(reportsHandler.EconomicAllYears))
	mux.HandleFunc("GET /reports/social/all", middleware.WithLogging(reportsHandler.SocialAllYears))
	mux.HandleFunc("GET /reports/perception/all", middleware.WithLogging(reportsHandler.PerceptionAllYears))
	mux.HandleFunc("GET /stats/global", middleware.WithLogging(reportsHandler.GlobalStatistics))
	mux.HandleFunc("GET /countries/averages", middleware.WithLogging(reportsHandler.CountryAverages))
	mux.HandleFunc("GET /countries/{id}/reports", middleware.WithLogging(reportsHandler.CountryReports))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("whr-dashboard API v1"))
	})

	return mux
}
