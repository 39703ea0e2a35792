// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

An optional .env file (-env, default ".env") is loaded first. It never
overrides variables that are already set.

# CLI Flags

	-p       Server port
	-d       Database URL or SQLite path
	-t       Database type (postgres or sqlite)
	-redis   Redis address for the results cache
	-load    Directory of yearly files, or "synthetic"
	-reset   Delete all rows before loading
	-env     Path to an optional .env file

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p (default 8501)
	DATABASE_URL   → -d
	DATABASE_TYPE  → -t (default postgres)
	REDIS_ADDR     → -redis

Without DATABASE_URL, Postgres connections are built from PG_HOST,
PG_PORT, PG_DB, PG_USER, PG_PASSWORD and PG_SSLMODE; SQLite defaults to
whr.db.

Other settings: DB_MAX_OPEN_CONNS, REDIS_PASSWORD, REDIS_DB, CACHE_TTL,
CACHE_SIZE, LOG_LEVEL, LOG_FORMAT.

# Validation

ParseFlags returns an error for an unsupported database type, a malformed
number or duration, or a Postgres DSN that would send credentials in
plaintext to a remote host.
*/
package cliparse
