// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/goccy/go-json"
	"github.com/jmoiron/sqlx"

	"github.com/danielhkuo/whr-dashboard/cliparse"
	"github.com/danielhkuo/whr-dashboard/db"
	"github.com/danielhkuo/whr-dashboard/models"
)

// PostgresURLEnv names the variable that enables Postgres-backed tests.
const PostgresURLEnv = "WHR_TEST_DATABASE_URL"

// SetupTestDB opens a private in-memory SQLite database with the full schema.
func SetupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	conn, err := db.Open(context.Background(), GetTestConfig())
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(context.Background(), conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	return conn
}

// SetupPostgresDB recreates the schema on the database named by
// WHR_TEST_DATABASE_URL, or skips the test when it is unset.
func SetupPostgresDB(t *testing.T) *sqlx.DB {
	t.Helper()

	url := os.Getenv(PostgresURLEnv)
	if url == "" {
		t.Skipf("%s not set", PostgresURLEnv)
	}

	cfg := cliparse.Config{DatabaseType: cliparse.DatabasePostgres, DatabaseURL: url, MaxOpenConns: 4}
	conn, err := db.Open(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	// Clean up tables before each test
	if err := db.DropSchema(context.Background(), conn); err != nil {
		t.Fatalf("Failed to clean database: %v", err)
	}
	if err := db.CreateSchema(context.Background(), conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseType: cliparse.DatabaseSQLite,
		DatabaseURL:  ":memory:",
		LogLevel:     "error",
		LogFormat:    "text",
	}
}

// CreateTestRegion inserts a region.
func CreateTestRegion(t *testing.T, conn *sqlx.DB, id int, name string) {
	t.Helper()

	_, err := conn.Exec(conn.Rebind(`INSERT INTO region (region_id, region_name) VALUES (?, ?)`), id, name)
	if err != nil {
		t.Fatalf("Failed to create test region: %v", err)
	}
}

// CreateTestCountry inserts a country in an existing region.
func CreateTestCountry(t *testing.T, conn *sqlx.DB, id int, name string, regionID int) {
	t.Helper()

	_, err := conn.Exec(conn.Rebind(`
		INSERT INTO country (country_id, country_name, region_id)
		VALUES (?, ?, ?)
	`), id, name, regionID)
	if err != nil {
		t.Fatalf("Failed to create test country: %v", err)
	}
}

// CreateTestReport inserts a happiness report.
func CreateTestReport(t *testing.T, conn *sqlx.DB, r models.HappinessReport) {
	t.Helper()

	_, err := conn.Exec(conn.Rebind(`
		INSERT INTO happiness_report (report_id, country_id, year, ranking, happiness_score, dystopia_residual)
		VALUES (?, ?, ?, ?, ?, ?)
	`), r.ID, r.CountryID, r.Year, r.Ranking, r.HappinessScore, r.DystopiaResidual)
	if err != nil {
		t.Fatalf("Failed to create test report: %v", err)
	}
}

// CreateTestIndicators attaches all three indicator rows to a report,
// each using the report id as its own id.
func CreateTestIndicators(t *testing.T, conn *sqlx.DB, reportID int, gdp, support, life, freedom, generosity, corruption models.Number) {
	t.Helper()

	stmts := []struct {
		query string
		args  []any
	}{
		{`INSERT INTO economic_indicator (economic_id, report_id, gdp_per_capita) VALUES (?, ?, ?)`,
			[]any{reportID, reportID, gdp}},
		{`INSERT INTO social_indicator (social_id, report_id, social_support, healthy_life_expectancy, freedom_to_make_life_choices) VALUES (?, ?, ?, ?, ?)`,
			[]any{reportID, reportID, support, life, freedom}},
		{`INSERT INTO perception_indicator (perception_id, report_id, generosity, perceptions_of_corruption) VALUES (?, ?, ?, ?)`,
			[]any{reportID, reportID, generosity, corruption}},
	}
	for _, s := range stmts {
		if _, err := conn.Exec(conn.Rebind(s.query), s.args...); err != nil {
			t.Fatalf("Failed to create test indicators: %v", err)
		}
	}
}

// SeedSwitzerland loads the single-report fixture:
// Region(1, "Western Europe"), Country(1, "Switzerland", 1) and the 2015
// report ranked 1 with score 7.587 and dystopia residual 2.518.
func SeedSwitzerland(t *testing.T, conn *sqlx.DB) {
	t.Helper()

	CreateTestRegion(t, conn, 1, "Western Europe")
	CreateTestCountry(t, conn, 1, "Switzerland", 1)
	CreateTestReport(t, conn, models.HappinessReport{
		ID:               1,
		CountryID:        1,
		Year:             2015,
		Ranking:          1,
		HappinessScore:   models.NumberOf(7.587),
		DystopiaResidual: models.NumberOf(2.518),
	})
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
