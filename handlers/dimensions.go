// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/whr-dashboard/middleware"
	"github.com/danielhkuo/whr-dashboard/store"
)

// DimensionsHandler serves the lookup lists that populate dashboard filters.
type DimensionsHandler struct {
	catalog store.Catalog
}

func NewDimensionsHandler(catalog store.Catalog) *DimensionsHandler {
	return &DimensionsHandler{catalog: catalog}
}

// Years handles GET /years
func (h *DimensionsHandler) Years(w http.ResponseWriter, r *http.Request) {
	years, err := h.catalog.Years(r.Context())
	if err != nil {
		slog.Error("failed to query years", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, years)
}

// Regions handles GET /regions
func (h *DimensionsHandler) Regions(w http.ResponseWriter, r *http.Request) {
	regions, err := h.catalog.Regions(r.Context())
	if err != nil {
		slog.Error("failed to query regions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, regions)
}

// Countries handles GET /countries?region_id=
func (h *DimensionsHandler) Countries(w http.ResponseWriter, r *http.Request) {
	regionID, err := optionalID(r, "region_id")
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	countries, err := h.catalog.Countries(r.Context(), regionID)
	if err != nil {
		slog.Error("failed to query countries", "region_id", regionID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, countries)
}

// Overview handles GET /overview
func (h *DimensionsHandler) Overview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.catalog.Overview(r.Context())
	if err != nil {
		slog.Error("failed to query overview", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, overview)
}
