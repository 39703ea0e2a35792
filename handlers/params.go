// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/danielhkuo/whr-dashboard/store"
)

var (
	errYearRequired = errors.New("year is required")
	errYearInvalid  = errors.New("year must be a four-digit integer")
	errLimitInvalid = errors.New("limit must be an integer between 1 and 200")
	errIDInvalid    = errors.New("id must be a positive integer")
)

// yearParam reads the required ?year= parameter.
func yearParam(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("year")
	if raw == "" {
		return 0, errYearRequired
	}
	year, err := strconv.Atoi(raw)
	if err != nil || year < 1000 || year > 9999 {
		return 0, errYearInvalid
	}
	return year, nil
}

// limitParam reads the optional ?limit= parameter, defaulting to store.DefaultLimit.
func limitParam(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return store.DefaultLimit, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 || limit > store.MaxLimit {
		return 0, errLimitInvalid
	}
	return limit, nil
}

func positiveID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0, errIDInvalid
	}
	return id, nil
}

// optionalID returns 0 when the query parameter is absent.
func optionalID(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	id, err := positiveID(raw)
	if err != nil {
		return 0, errors.New(name + " must be a positive integer")
	}
	return id, nil
}
