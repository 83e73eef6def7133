// Package main is the entry point for the JyVais itinerary planner API
// server. Its sole responsibility is wiring dependencies together and
// starting the server. No business logic belongs here.
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
	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/jyvais/backend/internal/ai"
	"github.com/jyvais/backend/internal/config"
	"github.com/jyvais/backend/internal/handler"
	"github.com/jyvais/backend/internal/i18n"
	"github.com/jyvais/backend/internal/middleware"
	"github.com/jyvais/backend/internal/repo"
	"github.com/jyvais/backend/internal/service"
	"github.com/jyvais/backend/migrations"
)

// maxBodyBytes caps incoming request bodies; itinerary payloads are small.
const maxBodyBytes = 1 << 20

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	// log/slog is the stdlib structured logger. JSON handler writes
	// machine-readable output suitable for log aggregators.
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Storage ----------------------------------------------------------
	slots, cleanup, err := openSlots(cfg)
	if err != nil {
		slog.Error("failed to open storage", "driver", cfg.StorageDriver, "error", err)
		os.Exit(1)
	}
	defer cleanup()
	slog.Info("storage ready", "driver", cfg.StorageDriver)

	// --- Repos ------------------------------------------------------------
	// Both repos load their slot once at startup; absence or corruption
	// yields the default state, never a failed boot.
	savedRepo := repo.NewSavedTripRepo(slots, logger)
	savedRepo.Load(context.Background())

	langRepo := repo.NewLanguageRepo(slots, logger, cfg.DefaultLanguage, i18n.Supported)
	langRepo.Load(context.Background())

	// --- AI collaborator --------------------------------------------------
	gen, err := ai.NewClient(cfg.OpenAIKey, cfg.OpenAIModel)
	if err != nil {
		slog.Error("failed to create AI client", "error", err)
		os.Exit(1)
	}

	// --- Services ---------------------------------------------------------
	langSvc := service.NewLanguageService(langRepo)
	itinSvc := service.NewItineraryService(gen, langSvc)
	savedSvc := service.NewSavedService(savedRepo, langSvc)
	exportSvc := service.NewExportService(savedRepo)

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: request id, real ip, logging,
	// panic recovery, CORS, body size cap.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(maxBodyBytes))

	r.Mount("/", handler.NewServer(itinSvc, savedSvc, langSvc, exportSvc).Routes())

	// --- HTTP Server ------------------------------------------------------
	// Write timeout leaves room for one AI generation round-trip.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
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

// openSlots builds the slot storage for the configured driver: a data
// directory of files, or a migrated Postgres table. The returned cleanup
// releases whatever the driver holds open.
func openSlots(cfg config.Config) (repo.Slots, func(), error) {
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		if err := migrateUp(cfg.DatabaseURL); err != nil {
			return nil, nil, err
		}

		pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := pool.Ping(context.Background()); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return repo.NewPostgresSlots(pool), pool.Close, nil

	default:
		slots, err := repo.NewFileSlots(cfg.DataDir)
		if err != nil {
			return nil, nil, err
		}
		return slots, func() {}, nil
	}
}

// migrateUp applies the embedded goose migrations through database/sql.
func migrateUp(databaseURL string) error {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return err
	}
	if _, err := provider.Up(context.Background()); err != nil {
		return err
	}
	return nil
}
