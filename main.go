package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/danielhkuo/whr-dashboard/cache"
	"github.com/danielhkuo/whr-dashboard/cliparse"
	"github.com/danielhkuo/whr-dashboard/db"
	"github.com/danielhkuo/whr-dashboard/logger"
	"github.com/danielhkuo/whr-dashboard/middleware"
	"github.com/danielhkuo/whr-dashboard/router"
	"github.com/danielhkuo/whr-dashboard/seed"
	"github.com/danielhkuo/whr-dashboard/store"
)

const shutdownTimeout = 10 * time.Second

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	logger.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to the warehouse
	dbConn, err := db.Open(ctx, cfg)
	if err != nil {
		slog.Error("database connection failed", "type", cfg.DatabaseType, "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Create schema (tables)
	if err := db.CreateSchema(ctx, dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	// Optional reset and bulk load
	loaded := false
	if cfg.Reset {
		if err := seed.Clear(ctx, dbConn); err != nil {
			slog.Error("reset failed", "error", err)
			os.Exit(1)
		}
		slog.Info("Warehouse cleared")
	}
	if cfg.LoadSource != "" {
		ds, err := seed.FromSource(cfg.LoadSource)
		if err != nil {
			slog.Error("reading load source failed", "source", cfg.LoadSource, "error", err)
			os.Exit(1)
		}
		if err := seed.Load(ctx, dbConn, ds); err != nil {
			slog.Error("load failed", "source", cfg.LoadSource, "error", err)
			os.Exit(1)
		}
		loaded = true
	}

	// Query cache
	var queryCache cache.Cache
	if cfg.RedisAddr != "" {
		rc, err := cache.OpenRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.CacheTTL)
		if err != nil {
			slog.Error("redis connection failed", "addr", cfg.RedisAddr, "error", err)
			os.Exit(1)
		}
		defer rc.Close()
		queryCache = rc
		slog.Info("Using redis query cache", "addr", cfg.RedisAddr, "ttl", cfg.CacheTTL)
	} else {
		queryCache = cache.NewMemory(cfg.CacheSize, cfg.CacheTTL)
		slog.Info("Using in-memory query cache", "size", cfg.CacheSize, "ttl", cfg.CacheTTL)
	}

	catalog := store.NewCached(store.NewSQLStore(dbConn), queryCache)
	if loaded || cfg.Reset {
		// Shared caches may hold results from before the load.
		if err := catalog.Purge(ctx); err != nil {
			slog.Warn("cache purge failed", "error", err)
		}
	}

	// Create router
	mux := router.NewRouter(dbConn, catalog)

	// Create server
	server := http.Server{
		Handler:           middleware.CORS(mux),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		// Wait for SIGINT or SIGTERM
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("graceful shutdown failed", "error", err)
			server.Close()
		}
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
