// Package main is the entry point for the Fishing Logbook API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/robfig/cron/v3"

	"github.com/anglerlog/anglerlog/internal/config"
	"github.com/anglerlog/anglerlog/internal/export"
	"github.com/anglerlog/anglerlog/internal/handler"
	"github.com/anglerlog/anglerlog/internal/middleware"
	"github.com/anglerlog/anglerlog/internal/repo"
	"github.com/anglerlog/anglerlog/internal/service"
	"github.com/anglerlog/anglerlog/migrations"
)

// maxBodySize bounds incoming request bodies. Trips and gear may carry an
// inline photo, so the limit is generous but not unbounded.
const maxBodySize = 10 << 20 // 10 MiB

// artifactMaxAge is how long finished export files stay on disk before the
// hourly sweep removes them.
const artifactMaxAge = 24 * time.Hour

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		// Use plain stderr before the logger is configured.
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	// log/slog is the stdlib structured logger introduced in Go 1.21.
	// JSON handler writes machine-readable output suitable for log aggregators.
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Database ---------------------------------------------------------
	// pgxpool manages a pool of Postgres connections.
	// New() does not open connections immediately — the first query does.
	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to create database pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Verify the DB is reachable before accepting traffic.
	if err := pool.Ping(context.Background()); err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	slog.Info("database connection established")

	// --- Migrations -------------------------------------------------------
	// goose drives the embedded SQL migrations through database/sql; the
	// connection is only needed for the duration of the bootstrap.
	if err := runMigrations(cfg.DatabaseURL); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("migrations applied")

	// --- Dependencies -----------------------------------------------------
	tripRepo := repo.NewTripRepo(pool)
	gearRepo := repo.NewGearRepo(pool)

	store, err := export.NewStore(cfg.ExportDir, logger)
	if err != nil {
		slog.Error("failed to create export store", "error", err)
		os.Exit(1)
	}

	statsSvc := service.NewStatsService(tripRepo, gearRepo, time.Now)
	tripSvc := service.NewTripService(tripRepo, statsSvc.Cache())
	gearSvc := service.NewGearService(gearRepo, statsSvc.Cache())
	exportSvc := service.NewExportService(tripRepo, store, time.Now, logger)

	// --- Artifact sweep ---------------------------------------------------
	// Finished exports are one-shot downloads; an hourly cron removes
	// anything older than a day.
	sched := cron.New()
	if _, err := sched.AddFunc("@hourly", func() { store.Sweep(artifactMaxAge) }); err != nil {
		slog.Error("failed to schedule artifact sweep", "error", err)
		os.Exit(1)
	}
	sched.Start()
	defer sched.Stop()

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger → Recoverer.
	// RequestID generates a unique trace ID per request.
	// RealIP sets r.RemoteAddr from X-Forwarded-For / X-Real-IP (safe behind a proxy).
	// SlogLogger writes one structured JSON log line per request.
	// Recoverer catches panics and returns HTTP 500 instead of crashing.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(maxBodySize))

	server := handler.NewServer(tripSvc, gearSvc, statsSvc, exportSvc)
	r.Mount("/", server.Routes())

	// --- HTTP Server ------------------------------------------------------
	// Explicit timeouts prevent slowloris and resource exhaustion attacks.
	// The write timeout is long enough to render and stream a PDF report.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// runMigrations applies all pending embedded migrations.
func runMigrations(dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return err
	}
	_, err = provider.Up(context.Background())
	return err
}
