// Command genvec-server serves scene generation and export over HTTP.
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

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/gogpu/genvec"
	"github.com/gogpu/genvec/internal/api"
	"github.com/gogpu/genvec/internal/config"
	"github.com/gogpu/genvec/internal/metrics"
	"github.com/gogpu/genvec/palette"
)

const (
	sentryFlushTimeout = 2 * time.Second
	shutdownTimeout    = 10 * time.Second
)

// releaseVersion is set via ldflags during build
var releaseVersion = "dev"

func main() {
	// Load environment variables
	envErr := godotenv.Load()

	cfg := config.Load()
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	genvec.SetLogger(log)
	if envErr != nil {
		log.Info("no .env file found, using environment variables")
	}

	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.Environment,
			Release:          "genvec@" + releaseVersion,
			EnableTracing:    true,
			TracesSampleRate: 1.0,
			Debug:            !cfg.IsProduction(),
			BeforeSend: func(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
				if event.Request != nil {
					event.Request.Headers = filterSensitiveHeaders(event.Request.Headers)
				}
				return event
			},
		}); err != nil {
			log.Error("failed to initialize sentry", "err", err)
		} else {
			log.Info("sentry initialized", "environment", cfg.Environment, "release", releaseVersion)
			defer sentry.Flush(sentryFlushTimeout)
		}
	} else {
		log.Warn("sentry not configured (SENTRY_DSN not set)")
	}

	catalog, err := loadCatalog(cfg.PaletteFile)
	if err != nil {
		sentry.CaptureException(err)
		log.Error("failed to load palette catalog", "file", cfg.PaletteFile, "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	session := genvec.NewSession(ctx, genvec.NewEngine(), catalog)
	defer session.Close()

	m := metrics.NewClient(ctx, cfg.Environment, log)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := api.SetupRouter(cfg, session, m, log, releaseVersion)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("shutdown failed", "err", err)
		}
	}()

	log.Info("starting server", "port", cfg.Port, "palettes", catalog.Len())
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		sentry.CaptureException(err)
		log.Error("failed to start server", "err", err)
		os.Exit(1)
	}
}

func loadCatalog(path string) (*palette.Catalog, error) {
	if path == "" {
		return palette.DefaultCatalog(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return palette.LoadCatalog(f)
}

func filterSensitiveHeaders(headers map[string]string) map[string]string {
	filtered := make(map[string]string)
	sensitiveKeys := map[string]bool{
		"authorization": true,
		"cookie":        true,
		"x-api-key":     true,
	}

	for k, v := range headers {
		if sensitiveKeys[k] {
			filtered[k] = "[REDACTED]"
		} else {
			filtered[k] = v
		}
	}
	return filtered
}
