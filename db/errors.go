// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

var (
	ErrConnection          = errors.New("database connection failed")
	ErrUniqueViolation     = errors.New("unique constraint violation")
	ErrForeignKeyViolation = errors.New("foreign key violation")
)

// ClassifyError tags driver constraint errors with ErrUniqueViolation or
// ErrForeignKeyViolation. The driver error stays in the chain. Other
// errors are returned unchanged.
func ClassifyError(err error) error {
	if err == nil || errors.Is(err, ErrUniqueViolation) || errors.Is(err, ErrForeignKeyViolation) {
		return err
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code.Name() {
		case "unique_violation":
			return fmt.Errorf("%w: %w", ErrUniqueViolation, err)
		case "foreign_key_violation":
			return fmt.Errorf("%w: %w", ErrForeignKeyViolation, err)
		}
		return err
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return fmt.Errorf("%w: %w", ErrUniqueViolation, err)
		case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
			return fmt.Errorf("%w: %w", ErrForeignKeyViolation, err)
		case sqlite3.SQLITE_CONSTRAINT_TRIGGER:
			// ON DELETE RESTRICT is enforced by SQLite's internal FK trigger.
			if strings.Contains(liteErr.Error(), "FOREIGN KEY constraint failed") {
				return fmt.Errorf("%w: %w", ErrForeignKeyViolation, err)
			}
		}
	}
	return err
}
