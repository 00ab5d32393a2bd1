// Package main is the entry point for the commute stats API server.
// Its sole responsibility is wiring dependencies together and starting the
// server. No business logic belongs here.
//
// The dataset is loaded, validated, and analyzed once at startup; every
// request afterwards serves read-only results.
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

	// Embed the IANA timezone database so historical DST rules resolve
	// even on hosts without a system zoneinfo directory.
	_ "time/tzdata"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/pkordes/commute-stats/internal/analysis"
	"github.com/pkordes/commute-stats/internal/config"
	"github.com/pkordes/commute-stats/internal/handler"
	"github.com/pkordes/commute-stats/internal/middleware"
	"github.com/pkordes/commute-stats/internal/report"
	"github.com/pkordes/commute-stats/internal/store"
)

// maxAnalyzeBody caps POST /api/analyze bodies. A full single-athlete
// activity history is a few megabytes of JSON.
const maxAnalyzeBody = 10 << 20

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

	// --- Time zone --------------------------------------------------------
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		slog.Error("unknown timezone", "timezone", cfg.Timezone, "error", err)
		os.Exit(1)
	}

	// --- Dataset ----------------------------------------------------------
	// Reading a local pre-fetched file is not a transient condition:
	// a failure here is fatal, no retry.
	activities, err := store.NewFileStore(cfg.ActivitiesFile).Load()
	if err != nil {
		slog.Error("failed to load activities", "path", cfg.ActivitiesFile, "error", err)
		os.Exit(1)
	}
	slog.Info("activities loaded", "count", len(activities), "path", cfg.ActivitiesFile)

	analyzer := analysis.New(activities, cfg.StartYear, loc)
	summary := analyzer.Summary()
	slog.Info("analysis complete",
		"start_year", cfg.StartYear,
		"commutes", summary.TotalCommutes,
		"to_work", summary.ToWork.Count,
		"from_work", summary.FromWork.Count,
	)

	srv := handler.NewServer(summary, analysis.Lifetime(activities), report.Render(summary), cfg.StartYear, loc)

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
	r.Use(middleware.NewMaxBodySizeHandler(maxAnalyzeBody))

	r.Mount("/", srv.Routes())

	// --- HTTP Server ------------------------------------------------------
	// Explicit timeouts prevent slowloris and resource exhaustion attacks.
	httpSrv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
