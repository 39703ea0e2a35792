// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"database/sql/driver"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Number is a nullable exact-precision measure as stored in a NUMERIC column.
// NULL and values that do not parse as numbers both scan to an invalid
// Number; a bad cell never fails the whole row.
type Number struct {
	Decimal decimal.Decimal
	Valid   bool
}

// NumberOf wraps a float as a valid Number.
func NumberOf(f float64) Number {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Number{}
	}
	return Number{Decimal: decimal.NewFromFloat(f), Valid: true}
}

// ParseNumber converts a driver value or raw text into a decimal.
// ok is false for NULL, empty, and non-numeric input.
func ParseNumber(src any) (d decimal.Decimal, ok bool) {
	switch v := src.(type) {
	case nil:
		return decimal.Decimal{}, false
	case []byte:
		return parseNumberText(string(v))
	case string:
		return parseNumberText(v)
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return decimal.Decimal{}, false
		}
		return decimal.NewFromFloat(v), true
	case float32:
		return ParseNumber(float64(v))
	case int64:
		return decimal.NewFromInt(v), true
	case int32:
		return decimal.NewFromInt32(v), true
	case int:
		return decimal.NewFromInt(int64(v)), true
	case decimal.Decimal:
		return v, true
	}
	return decimal.Decimal{}, false
}

// parseNumberText accepts a single decimal comma ("7,587"), which the raw
// yearly CSV exports use.
func parseNumberText(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Decimal{}, false
	}
	if !strings.Contains(s, ".") && strings.Count(s, ",") == 1 {
		s = strings.Replace(s, ",", ".", 1)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

// Scan implements sql.Scanner. It never returns an error.
func (n *Number) Scan(src any) error {
	n.Decimal, n.Valid = ParseNumber(src)
	return nil
}

// Value implements driver.Valuer, sending the exact decimal text.
func (n Number) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Decimal.String(), nil
}

// Float64 converts to floating point for plotting and arithmetic.
// ok is false when the value is missing.
func (n Number) Float64() (f float64, ok bool) {
	if !n.Valid {
		return 0, false
	}
	f, _ = n.Decimal.Float64()
	return f, true
}

// Ptr returns nil for a missing value.
func (n Number) Ptr() *float64 {
	f, ok := n.Float64()
	if !ok {
		return nil
	}
	return &f
}

func (n Number) String() string {
	if !n.Valid {
		return "NULL"
	}
	return n.Decimal.String()
}

// MarshalJSON writes the exact decimal as a JSON number, or null.
func (n Number) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return []byte(n.Decimal.String()), nil
}

// UnmarshalJSON accepts numbers, numeric strings and null. Anything else
// decodes to a missing value.
func (n *Number) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*n = Number{}
		return nil
	}
	n.Decimal, n.Valid = parseNumberText(strings.Trim(s, `"`))
	return nil
}
