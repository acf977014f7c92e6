// Copyright (c) 2026 Herbario. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the Herbario HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Wire HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//  8. Drain background package recomputes.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/taibuivan/herbario/internal/api"
	"github.com/taibuivan/herbario/internal/herbarium/estadisticas"
	"github.com/taibuivan/herbario/internal/herbarium/taxonomia"
	"github.com/taibuivan/herbario/internal/lab/clasificacion"
	"github.com/taibuivan/herbario/internal/platform/config"
	"github.com/taibuivan/herbario/internal/platform/constants"
	"github.com/taibuivan/herbario/internal/platform/metrics"
	"github.com/taibuivan/herbario/internal/platform/migration"
	pgstore "github.com/taibuivan/herbario/internal/platform/postgres"
	redisstore "github.com/taibuivan/herbario/internal/platform/redis"
	"github.com/taibuivan/herbario/internal/platform/sec"
	"github.com/taibuivan/herbario/internal/reception/paquete"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	log.Info("service_initializing", slog.String("version", constants.AppVersion))

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", constants.AppName))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	if cfg.IsProduction() && cfg.Debug {
		log.Warn("debug_enabled_in_production")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// Lives until shutdown; stops the rate limiter's janitor.
	appCtx, appCancel := context.WithCancel(context.Background())
	defer appCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Token Verification & Metrics ───────────────────────────────────
	verifier, err := sec.NewTokenVerifier(cfg.JWTPubKeyPath, cfg.JWTIssuer)
	must(log, err, "initialize jwt verifier")

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	collector, err := metrics.New(registry)
	must(log, err, "register metrics")

	// ── 7. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func(ctx context.Context) error {
			return pgstore.Ping(ctx, pool)
		},
		CheckEventBus: func(ctx context.Context) error {
			return redisstore.Ping(ctx, rdb)
		},
	}, log)

	// ── 8. Domain Wiring ──────────────────────────────────────────────────
	paqueteRepository := paquete.NewPostgresRepository(pool)
	publisher := paquete.NewRedisPublisher(rdb, constants.RedisChannelPackageState)
	recomputer := paquete.NewRecomputer(paqueteRepository, publisher, collector, log, cfg.RecomputeTimeout)

	paqueteHandler := paquete.NewHandler(paquete.NewService(paqueteRepository, recomputer, log))

	clasificacionService := clasificacion.NewService(clasificacion.NewPostgresRepository(pool), recomputer, log)
	clasificacionHandler := clasificacion.NewHandler(clasificacionService)

	estadisticasService := estadisticas.NewService(estadisticas.NewPostgresRepository(pool), log)
	estadisticasHandler := estadisticas.NewHandler(estadisticasService)

	taxonomiaHandler := taxonomia.NewHandler(taxonomia.NewService(taxonomia.NewPostgresRepository(pool)))

	// ── 9. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:      liveness,
		Readiness:     readiness,
		Clasificacion: clasificacionHandler,
		Paquete:       paqueteHandler,
		Estadisticas:  estadisticasHandler,
		Taxonomia:     taxonomiaHandler,
	}

	server := api.NewServer(appCtx, cfg, log, verifier, collector, handlers)

	// ── 10. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	shutdownErr := server.Shutdown(shutdownTimeout)

	// Let detached recomputes finish before the pool closes. Requests still running
	// past the shutdown timeout cannot schedule new ones.
	log.Info("draining package recomputes")
	recomputer.Wait()

	if shutdownErr != nil {
		log.Error("shutdown error", slog.Any("error", shutdownErr))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
