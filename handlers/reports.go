// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/whr-dashboard/middleware"
	"github.com/danielhkuo/whr-dashboard/models"
	"github.com/danielhkuo/whr-dashboard/store"
)

type ReportsHandler struct {
	catalog store.Catalog
}

func NewReportsHandler(catalog store.Catalog) *ReportsHandler {
	return &ReportsHandler{catalog: catalog}
}

// byYear runs a year-scoped catalog query and writes the rows.
func byYear[T any](w http.ResponseWriter, r *http.Request, name string, query func(context.Context, int) ([]T, error)) {
	year, err := yearParam(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	rows, err := query(r.Context(), year)
	if err != nil {
		slog.Error("failed to run query", "query", name, "year", year, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, rows)
}

// ReportsByYear handles GET /reports?year=
func (h *ReportsHandler) ReportsByYear(w http.ResponseWriter, r *http.Request) {
	byYear(w, r, store.QueryReportsByYear, h.catalog.ReportsByYear)
}

// EconomicByYear handles GET /reports/economic?year=
func (h *ReportsHandler) EconomicByYear(w http.ResponseWriter, r *http.Request) {
	byYear(w, r, store.QueryEconomicByYear, h.catalog.EconomicByYear)
}

// SocialByYear handles GET /reports/social?year=
func (h *ReportsHandler) SocialByYear(w http.ResponseWriter, r *http.Request) {
	byYear(w, r, store.QuerySocialByYear, h.catalog.SocialByYear)
}

// PerceptionByYear handles GET /reports/perception?year=
func (h *ReportsHandler) PerceptionByYear(w http.ResponseWriter, r *http.Request) {
	byYear(w, r, store.QueryPerceptionByYear, h.catalog.PerceptionByYear)
}

// allYears runs a catalog query that spans every year and writes the rows.
func allYears[T any](w http.ResponseWriter, r *http.Request, name string, query func(context.Context) ([]T, error)) {
	rows, err := query(r.Context())
	if err != nil {
		slog.Error("failed to run query", "query", name, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, rows)
}

// EconomicAllYears handles GET /reports/economic/all
func (h *ReportsHandler) EconomicAllYears(w http.ResponseWriter, r *http.Request) {
	allYears(w, r, store.QueryEconomicAll, h.catalog.EconomicAllYears)
}

// SocialAllYears handles GET /reports/social/all
func (h *ReportsHandler) SocialAllYears(w http.ResponseWriter, r *http.Request) {
	allYears(w, r, store.QuerySocialAll, h.catalog.SocialAllYears)
}

// PerceptionAllYears handles GET /reports/perception/all
func (h *ReportsHandler) PerceptionAllYears(w http.ResponseWriter, r *http.Request) {
	allYears(w, r, store.QueryPerceptionAll, h.catalog.PerceptionAllYears)
}

// RegionSummary handles GET /regions/summary?year=
func (h *ReportsHandler) RegionSummary(w http.ResponseWriter, r *http.Request) {
	byYear(w, r, store.QueryRegionSummary, h.catalog.RegionSummaryByYear)
}

// TopCountries handles GET /reports/top?year=&limit=
func (h *ReportsHandler) TopCountries(w http.ResponseWriter, r *http.Request) {
	ranked(w, r, store.QueryTopCountries, h.catalog.TopCountries)
}

// BottomCountries handles GET /reports/bottom?year=&limit=
func (h *ReportsHandler) BottomCountries(w http.ResponseWriter, r *http.Request) {
	ranked(w, r, store.QueryBottomCountries, h.catalog.BottomCountries)
}

func ranked(w http.ResponseWriter, r *http.Request, name string, query func(context.Context, int, int) ([]models.IndicatorRow, error)) {
	year, err := yearParam(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	limit, err := limitParam(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	rows, err := query(r.Context(), year, limit)
	if err != nil {
		slog.Error("failed to run query", "query", name, "year", year, "limit", limit, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, rows)
}

// GlobalStatistics handles GET /stats/global
func (h *ReportsHandler) GlobalStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.catalog.GlobalStatistics(r.Context())
	if err != nil {
		slog.Error("failed to compute global statistics", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, stats)
}

// CountryAverages handles GET /countries/averages
func (h *ReportsHandler) CountryAverages(w http.ResponseWriter, r *http.Request) {
	allYears(w, r, store.QueryCountryAverages, h.catalog.CountryAveragesAllYears)
}

// CountryReports handles GET /countries/{id}/reports
// An unknown country yields an empty list, same as a country without reports.
func (h *ReportsHandler) CountryReports(w http.ResponseWriter, r *http.Request) {
	countryID, err := positiveID(r.PathValue("id"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	rows, err := h.catalog.ReportsByCountry(r.Context(), countryID)
	if err != nil {
		slog.Error("failed to query country reports", "country_id", countryID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, rows)
}
