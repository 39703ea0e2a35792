// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cache

import (
	"context"
	"fmt"
	"strings"
)

// Prefix namespaces every key written by this process.
const Prefix = "whr:"

// Cache stores encoded query results. A miss is (nil, false, nil).
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Purge(ctx context.Context) error
}

// Key builds a cache key from a query name and its parameters.
//
//	Key("reports_by_year", 2015) == "whr:reports_by_year:2015"
func Key(query string, params ...any) string {
	var b strings.Builder
	b.WriteString(Prefix)
	b.WriteString(query)
	for _, p := range params {
		b.WriteByte(':')
		fmt.Fprint(&b, p)
	}
	return b.String()
}
