// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the World Happiness Report
dashboard API.

The server keeps the yearly reports in a small star schema (region,
country, happiness_report and one table per indicator group) and serves
a fixed catalog of read-only queries as JSON for the dashboard frontend.

# Starting the Server

The server reads environment variables, an optional .env file, or CLI flags:

	DATABASE_URL=postgres://... go run .

Or against a local SQLite file, loading synthetic data on start:

	go run . -t sqlite -d whr.db -load synthetic

# Configuration

  - DATABASE_TYPE (-t): postgres (default) or sqlite
  - DATABASE_URL (-d): connection string or SQLite path; PG_* variables
    are used when unset
  - PORT (-p): Server port (default: 8501)
  - REDIS_ADDR (--redis): shared query cache; in-memory LRU when unset
  - CACHE_TTL, CACHE_SIZE: cache expiry and in-memory capacity
  - LOG_LEVEL, LOG_FORMAT: slog level and text/json/auto output
  - --load DIR|synthetic, --reset: bulk load on start

# Architecture

  - db: Schema, connection and constraint error classification
  - seed: Reference lists, yearly file readers, synthetic data, bulk load
  - store: Query catalog and its cached decorator
  - cache: Redis and in-memory result caches
  - handlers, router, middleware: JSON read API
  - metrics, logger, cliparse, models: supporting packages

See package documentation for each component.
*/
package main
