// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/whr-dashboard/cliparse"
)

func init() {
	// sqlx only knows the cgo driver name; the pure Go driver registers as "sqlite".
	sqlx.BindDriver(cliparse.DatabaseSQLite, sqlx.QUESTION)
}

// Open connects to the configured store and verifies the connection.
// The handle is closed again if the ping fails, so callers only ever
// own a live connection.
func Open(ctx context.Context, cfg cliparse.Config) (*sqlx.DB, error) {
	dsn := cfg.DatabaseURL
	switch cfg.DatabaseType {
	case cliparse.DatabasePostgres:
	case cliparse.DatabaseSQLite:
		dsn = SQLiteDSN(dsn)
	default:
		return nil, fmt.Errorf("%w: unsupported database type %q", ErrConnection, cfg.DatabaseType)
	}

	conn, err := sqlx.Open(cfg.DatabaseType, dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnection, err)
	}

	if cfg.DatabaseType == cliparse.DatabaseSQLite {
		// One connection keeps an in-memory database shared and PRAGMAs consistent.
		conn.SetMaxOpenConns(1)
	} else if cfg.MaxOpenConns > 0 {
		conn.SetMaxOpenConns(cfg.MaxOpenConns)
		conn.SetMaxIdleConns(cfg.MaxOpenConns)
	}

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("%w: %w", ErrConnection, err)
	}
	return conn, nil
}

// SQLiteDSN turns a path into a DSN with foreign key enforcement enabled.
// SQLite leaves foreign keys off per connection unless asked.
func SQLiteDSN(path string) string {
	if strings.Contains(path, "foreign_keys") {
		return path
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=foreign_keys(1)"
}
