// Basketlytics - Market Basket Analysis and Association Rule Mining
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketlytics

package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/tomtom215/basketlytics/internal/analysis"
	"github.com/tomtom215/basketlytics/internal/api"
	"github.com/tomtom215/basketlytics/internal/basket/mining"
	"github.com/tomtom215/basketlytics/internal/config"
	"github.com/tomtom215/basketlytics/internal/logging"
	"github.com/tomtom215/basketlytics/internal/metrics"
	"github.com/tomtom215/basketlytics/internal/supervisor"
	"github.com/tomtom215/basketlytics/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	startTime := time.Now()

	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(cfg.ToLoggingConfig())

	logging.Info().
		Str("version", version).
		Str("go_version", runtime.Version()).
		Msg("Starting Basketlytics with supervisor tree")

	logging.Info().
		Str("addr", cfg.Addr()).
		Str("environment", cfg.Server.Environment).
		Str("default_algorithm", cfg.Analysis.DefaultAlgorithm).
		Float64("default_min_support", cfg.Analysis.DefaultMinSupport).
		Float64("default_min_confidence", cfg.Analysis.DefaultMinConfidence).
		Msg("Configuration loaded")

	if cfg.ShouldWarnAboutCORS() {
		logging.Warn().
			Strs("cors_origins", cfg.Security.CORSOrigins).
			Msg("Wildcard CORS origin configured in production")
	}

	metrics.SetAppInfo(version, runtime.Version())

	engine, err := analysis.NewEngine(cfg.ToAnalysisConfig(), logging.Logger())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize analysis engine")
	}
	for _, miner := range mining.All() {
		engine.RegisterMiner(miner)
	}
	logging.Info().Int("miners", len(engine.Miners())).Msg("Analysis engine initialized")

	handler := api.NewHandler(engine, api.HandlerConfig{
		Version:      version,
		MaxBodyBytes: cfg.Server.MaxBodyBytes,
		CacheEnabled: cfg.Cache.Enabled,
		CacheSize:    cfg.Cache.Size,
		CacheTTL:     cfg.Cache.TTL,
	})
	chiMw := api.NewChiMiddlewareFromSecurity(
		cfg.Security.CORSOrigins,
		cfg.Security.RateLimitReqs,
		cfg.Security.RateLimitWindow,
		cfg.Security.RateLimitDisabled,
	)
	router := api.NewRouter(handler, chiMw)

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       60 * time.Second,
	}

	// === BUILD SUPERVISOR TREE ===

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), cfg.ToTreeConfig())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	tree.AddMetricsService(services.NewUptimeService(startTime, 0))
	if cfg.Cache.Enabled {
		tree.AddMetricsService(services.NewCacheSweeperService(handler, 0, logging.WithComponent("cache")))
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout, logging.WithComponent("http")))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	// === START SUPERVISOR TREE ===

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	// errCh receives exactly one value and is never closed.
	var serveErr error
	select {
	case <-ctx.Done():
		logging.Info().Msg("Received shutdown signal, waiting for supervisor to finish...")
		serveErr = <-errCh
	case serveErr = <-errCh:
	}
	if serveErr != nil && !errors.Is(serveErr, context.Canceled) {
		logging.Error().Err(serveErr).Msg("Supervisor tree error")
	}

	// Report any services that failed to stop within timeout
	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
}
