package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/journey-globe-service/internal/adapter/borders"
	httpadapter "github.com/couchcryptid/journey-globe-service/internal/adapter/http"
	kafkaadapter "github.com/couchcryptid/journey-globe-service/internal/adapter/kafka"
	"github.com/couchcryptid/journey-globe-service/internal/adapter/sqlite"
	"github.com/couchcryptid/journey-globe-service/internal/config"
	"github.com/couchcryptid/journey-globe-service/internal/dataset"
	"github.com/couchcryptid/journey-globe-service/internal/journey"
	"github.com/couchcryptid/journey-globe-service/internal/observability"
	"github.com/couchcryptid/journey-globe-service/internal/render"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()
	clock := clockwork.NewRealClock()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	j, err := dataset.Load(cfg.DataDir)
	if err != nil {
		logger.Error("failed to load dataset", "dir", cfg.DataDir, "error", err)
		os.Exit(1)
	}
	engine := journey.NewEngine(j)
	logger.Info("dataset loaded", "stops", len(j.Stops), "cities", len(j.Cities), "path_samples", engine.ScenePath().Len())

	prefs, err := sqlite.Open(ctx, cfg.PreferencesDB, clock)
	if err != nil {
		logger.Error("failed to open preferences", "path", cfg.PreferencesDB, "error", err)
		os.Exit(1)
	}

	// Border overlay (feature-flagged via BORDERS_ENABLED).
	var overlay httpadapter.BorderOverlay
	if cfg.BordersEnabled {
		client := borders.NewClient(borders.ClientConfig{
			PrimaryURL:  cfg.BordersPrimaryURL,
			FallbackURL: cfg.BordersFallbackURL,
			Timeout:     cfg.BordersTimeout,
		}, logger, metrics)
		overlay = borders.NewOverlay(client, cfg.BordersCacheSize, metrics)
		metrics.BordersEnabled.Set(1)
		logger.Info("border overlay enabled", "cache_size", cfg.BordersCacheSize, "timeout", cfg.BordersTimeout)
	} else {
		logger.Info("border overlay disabled")
	}

	// Frames always go to the debug log; Kafka is optional.
	surfaces := []render.Surface{render.NewLogSurface(logger)}
	var writer *kafkaadapter.Writer
	if cfg.KafkaEnabled {
		writer = kafkaadapter.NewWriter(cfg, clock, logger)
		surfaces = append(surfaces, writer)
		logger.Info("kafka frame stream enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaFrameTopic)
	}

	registry := journey.NewRegistry(engine, prefs, journey.RegistryConfig{
		TTL:            cfg.SessionTTL,
		ScrollThrottle: cfg.FrameInterval,
	}, clock, logger, metrics)
	loop := journey.NewLoop(registry, render.Multi(surfaces...), clock, cfg.FrameInterval, logger, metrics)

	api := httpadapter.NewAPI(registry, engine, overlay, logger)
	srv := httpadapter.NewServer(httpadapter.ServerConfig{
		Addr:        cfg.HTTPAddr,
		CORSOrigins: cfg.CORSOrigins,
		RateLimit:   cfg.RateLimitRequests,
		RateWindow:  cfg.RateLimitWindow,
	}, loop, api, metrics, logger)

	// Start HTTP server.
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	// Start render loop.
	go func() {
		if err := loop.Run(ctx); err != nil {
			logger.Error("render loop error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if writer != nil {
		if err := writer.Close(); err != nil {
			logger.Error("kafka writer close error", "error", err)
		}
	}
	if err := prefs.Close(); err != nil {
		logger.Error("preferences close error", "error", err)
	}

	logger.Info("shutdown complete")
}
