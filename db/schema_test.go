// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/danielhkuo/whr-dashboard/cliparse"
)

func openMemory(t *testing.T) *sqlx.DB {
	t.Helper()

	conn, err := Open(context.Background(), cliparse.Config{
		DatabaseType: cliparse.DatabaseSQLite,
		DatabaseURL:  ":memory:",
	})
	if err != nil {
		t.Fatalf("Failed to open sqlite: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := CreateSchema(context.Background(), conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	return conn
}

func TestSplitStatements(t *testing.T) {
	stmts := SplitStatements(Schema())
	if len(stmts) == 0 {
		t.Fatal("expected schema to produce statements")
	}
	for _, stmt := range stmts {
		if strings.HasPrefix(strings.TrimSpace(stmt), "--") {
			t.Fatalf("statement unexpectedly starts with comment: %q", stmt)
		}
		if !strings.HasSuffix(strings.TrimSpace(stmt), ";") {
			t.Fatalf("statement missing semicolon terminator: %q", stmt)
		}
	}

	tables := 0
	for _, stmt := range stmts {
		if strings.HasPrefix(stmt, "CREATE TABLE") {
			tables++
		}
	}
	if tables != len(Tables) {
		t.Errorf("Expected %d CREATE TABLE statements, got %d", len(Tables), tables)
	}
}

func TestSplitStatements_Tail(t *testing.T) {
	stmts := SplitStatements("-- header\nSELECT 1;\n\nSELECT 2")
	if len(stmts) != 2 {
		t.Fatalf("Expected 2 statements, got %d: %q", len(stmts), stmts)
	}
	if stmts[1] != "SELECT 2" {
		t.Errorf("Expected unterminated tail to be kept, got %q", stmts[1])
	}
}

func TestCreateSchema_Idempotent(t *testing.T) {
	conn := openMemory(t)

	if err := CreateSchema(context.Background(), conn); err != nil {
		t.Fatalf("Second CreateSchema failed: %v", err)
	}

	for _, table := range Tables {
		var n int
		if err := conn.Get(&n, "SELECT COUNT(*) FROM "+table); err != nil {
			t.Errorf("table %s not queryable: %v", table, err)
		}
	}
}

func TestDropSchema(t *testing.T) {
	conn := openMemory(t)

	if err := DropSchema(context.Background(), conn); err != nil {
		t.Fatalf("DropSchema failed: %v", err)
	}

	var n int
	if err := conn.Get(&n, `SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name IN ('region', 'country', 'happiness_report')`); err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("Expected tables to be dropped, %d remain", n)
	}
}

// Every foreign key and every catalog filter/sort column must lead some index.
func TestIndexesCoverCatalogColumns(t *testing.T) {
	conn := openMemory(t)

	required := map[string][]string{
		"country":              {"region_id"},
		"happiness_report":     {"country_id", "year", "ranking", "happiness_score"},
		"economic_indicator":   {"report_id", "gdp_per_capita"},
		"social_indicator":     {"report_id", "social_support", "healthy_life_expectancy", "freedom_to_make_life_choices"},
		"perception_indicator": {"report_id", "generosity", "perceptions_of_corruption"},
		"region":               {"region_name"},
	}

	for table, columns := range required {
		var indexes []string
		if err := conn.Select(&indexes, `SELECT name FROM pragma_index_list(?)`, table); err != nil {
			t.Fatalf("index_list(%s): %v", table, err)
		}

		leading := map[string]bool{}
		for _, idx := range indexes {
			var col string
			if err := conn.Get(&col, `SELECT name FROM pragma_index_info(?) WHERE seqno = 0`, idx); err != nil {
				t.Fatalf("index_info(%s): %v", idx, err)
			}
			leading[col] = true
		}

		for _, col := range columns {
			if !leading[col] {
				t.Errorf("%s.%s is not the leading column of any index", table, col)
			}
		}
	}
}

func TestClassifyError_SQLite(t *testing.T) {
	conn := openMemory(t)

	if _, err := conn.Exec(`INSERT INTO region (region_id, region_name) VALUES (1, 'Western Europe')`); err != nil {
		t.Fatal(err)
	}
	if _, err := conn.Exec(`INSERT INTO country (country_id, country_name, region_id) VALUES (1, 'Switzerland', 1)`); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		stmt string
		want error
	}{
		{"duplicate region name", `INSERT INTO region (region_id, region_name) VALUES (2, 'Western Europe')`, ErrUniqueViolation},
		{"duplicate primary key", `INSERT INTO region (region_id, region_name) VALUES (1, 'East Asia')`, ErrUniqueViolation},
		{"missing region", `INSERT INTO country (country_id, country_name, region_id) VALUES (2, 'Iceland', 99)`, ErrForeignKeyViolation},
		{"restricted region delete", `DELETE FROM region WHERE region_id = 1`, ErrForeignKeyViolation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := conn.Exec(tt.stmt)
			if err == nil {
				t.Fatal("Expected constraint error")
			}
			if got := ClassifyError(err); !errors.Is(got, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestClassifyError_Postgres(t *testing.T) {
	unique := &pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint"}
	fk := &pq.Error{Code: "23503", Message: "violates foreign key constraint"}
	other := &pq.Error{Code: "42P01", Message: "relation does not exist"}

	if err := ClassifyError(unique); !errors.Is(err, ErrUniqueViolation) {
		t.Errorf("Expected unique violation, got %v", err)
	}
	if err := ClassifyError(fk); !errors.Is(err, ErrForeignKeyViolation) {
		t.Errorf("Expected foreign key violation, got %v", err)
	}

	err := ClassifyError(other)
	if errors.Is(err, ErrUniqueViolation) || errors.Is(err, ErrForeignKeyViolation) {
		t.Errorf("Expected unrelated error to stay unclassified, got %v", err)
	}

	var pqErr *pq.Error
	if !errors.As(ClassifyError(unique), &pqErr) {
		t.Error("Expected driver error to stay in the chain")
	}
	if ClassifyError(nil) != nil {
		t.Error("Expected nil to stay nil")
	}
}

func TestOpen_ConnectionFailure(t *testing.T) {
	_, err := Open(context.Background(), cliparse.Config{
		DatabaseType: cliparse.DatabasePostgres,
		DatabaseURL:  "postgres://nobody@127.0.0.1:1/whr?sslmode=disable&connect_timeout=1",
	})
	if !errors.Is(err, ErrConnection) {
		t.Fatalf("Expected ErrConnection, got %v", err)
	}
}

func TestSQLiteDSN(t *testing.T) {
	tests := map[string]string{
		":memory:":                     ":memory:?_pragma=foreign_keys(1)",
		"whr.db":                       "whr.db?_pragma=foreign_keys(1)",
		"file:whr.db?mode=ro":          "file:whr.db?mode=ro&_pragma=foreign_keys(1)",
		"x.db?_pragma=foreign_keys(0)": "x.db?_pragma=foreign_keys(0)",
	}
	for in, want := range tests {
		if got := SQLiteDSN(in); got != want {
			t.Errorf("SQLiteDSN(%q) = %q, want %q", in, got, want)
		}
	}
}
