// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Database types
const (
	DatabasePostgres = "postgres"
	DatabaseSQLite   = "sqlite"
)

// LoadSynthetic asks the loader for generated data instead of yearly files.
const LoadSynthetic = "synthetic"

type Config struct {
	Port         int
	DatabaseType string
	DatabaseURL  string
	MaxOpenConns int

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration
	CacheSize     int

	LogLevel  string
	LogFormat string

	// LoadSource is a directory of yearly report files or LoadSynthetic.
	LoadSource string
	Reset      bool
}

// ParseFlags validates flags and fills the rest from the environment.
// An optional .env file is loaded first; it never overrides variables
// that are already set.
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var envFile string

	fs := flag.NewFlagSet("whr-dashboard", flag.ContinueOnError)

	fs.StringVar(&envFile, "env", ".env", "Path to an optional .env file")
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (postgres or sqlite)")
	fs.StringVar(&cfg.RedisAddr, "redis", "", "Redis address for the results cache")
	fs.StringVar(&cfg.LoadSource, "load", "", "Bulk load yearly files from a directory, or 'synthetic'")
	fs.BoolVar(&cfg.Reset, "reset", false, "Delete all rows before loading")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
			}
		}
	}

	if cfg.Port == 0 {
		port, err := envInt("PORT", 8501)
		if err != nil {
			return Config{}, err
		}
		cfg.Port = port
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = envOr("DATABASE_TYPE", DatabasePostgres)
	}
	if cfg.DatabaseType != DatabasePostgres && cfg.DatabaseType != DatabaseSQLite {
		return Config{}, fmt.Errorf("unsupported database type %q (use postgres or sqlite)", cfg.DatabaseType)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType == DatabaseSQLite {
			cfg.DatabaseURL = "whr.db"
		} else {
			cfg.DatabaseURL = PostgresDSNFromEnv()
		}
	}
	if cfg.DatabaseType == DatabasePostgres {
		if err := RequireTLS(cfg.DatabaseURL); err != nil {
			return Config{}, err
		}
	}

	var err error
	if cfg.MaxOpenConns, err = envInt("DB_MAX_OPEN_CONNS", 10); err != nil {
		return Config{}, err
	}

	if cfg.RedisAddr == "" {
		cfg.RedisAddr = os.Getenv("REDIS_ADDR")
	}
	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")
	if cfg.RedisDB, err = envInt("REDIS_DB", 0); err != nil {
		return Config{}, err
	}
	if cfg.CacheSize, err = envInt("CACHE_SIZE", 256); err != nil {
		return Config{}, err
	}
	cfg.CacheTTL = 10 * time.Minute
	if v := os.Getenv("CACHE_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, errors.New("invalid CACHE_TTL env variable")
		}
		cfg.CacheTTL = d
	}

	cfg.LogLevel = envOr("LOG_LEVEL", "info")
	cfg.LogFormat = envOr("LOG_FORMAT", "auto")

	return cfg, nil
}

// PostgresDSNFromEnv builds a connection URL from PG_* variables.
// SSL defaults to require.
func PostgresDSNFromEnv() string {
	u := url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(envOr("PG_HOST", "localhost"), envOr("PG_PORT", "5432")),
		Path:   "/" + envOr("PG_DB", "postgres"),
	}
	user := envOr("PG_USER", "postgres")
	if pass := os.Getenv("PG_PASSWORD"); pass != "" {
		u.User = url.UserPassword(user, pass)
	} else {
		u.User = url.User(user)
	}
	u.RawQuery = url.Values{"sslmode": {envOr("PG_SSLMODE", "require")}}.Encode()
	return u.String()
}

// RequireTLS rejects DSNs that would allow a plaintext connection to a
// non-loopback host. Both URL and key=value DSNs are understood; a missing
// sslmode means require for lib/pq.
func RequireTLS(dsn string) error {
	host, mode, err := hostAndSSLMode(dsn)
	if err != nil {
		return err
	}
	switch mode {
	case "disable", "allow", "prefer":
	default:
		return nil
	}
	if isLoopback(host) {
		return nil
	}
	return fmt.Errorf("sslmode=%s is not allowed for remote host %q", mode, host)
}

func hostAndSSLMode(dsn string) (host, mode string, err error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		u, err := url.Parse(dsn)
		if err != nil {
			return "", "", fmt.Errorf("invalid database URL: %w", err)
		}
		return u.Hostname(), u.Query().Get("sslmode"), nil
	}
	for _, field := range strings.Fields(dsn) {
		k, v, ok := strings.Cut(field, "=")
		if !ok {
			continue
		}
		v = strings.Trim(v, "'")
		switch k {
		case "host":
			host = v
		case "sslmode":
			mode = v
		}
	}
	return host, mode, nil
}

func isLoopback(host string) bool {
	if host == "" || host == "localhost" || strings.HasPrefix(host, "/") {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s env variable", key)
	}
	return n, nil
}
