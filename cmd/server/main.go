// Steamlens - Game Platform Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	_ "github.com/tomtom215/steamlens/docs" // registers the swagger spec
	"github.com/tomtom215/steamlens/internal/api"
	"github.com/tomtom215/steamlens/internal/config"
	"github.com/tomtom215/steamlens/internal/dataset"
	"github.com/tomtom215/steamlens/internal/logging"
	"github.com/tomtom215/steamlens/internal/metrics"
	"github.com/tomtom215/steamlens/internal/recommend"
	"github.com/tomtom215/steamlens/internal/supervisor"
	"github.com/tomtom215/steamlens/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

const uptimeInterval = 15 * time.Second

func main() {
	start := time.Now()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Caller:  cfg.Logging.Caller,
		Version: version,
	})
	metrics.AppInfo.WithLabelValues(version, runtime.Version()).Set(1)

	logging.Info().
		Str("version", version).
		Str("environment", cfg.Server.Environment).
		Str("addr", cfg.Server.Addr()).
		Msg("Starting Steamlens")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	store, err := dataset.Load(ctx, &cfg.Dataset)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load dataset")
	}

	server, err := newHTTPServer(cfg, store)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to build HTTP server")
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}
	tree.AddMaintenanceService(services.NewUptimeService(start, uptimeInterval))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	logging.Info().Dur("startup", time.Since(start)).Msg("Starting supervisor tree")
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
	}

	logging.Info().Msg("Application stopped gracefully")
}

// newHTTPServer wires the recommendation engine, handlers and router over
// a loaded store.
func newHTTPServer(cfg *config.Config, store *dataset.Store) (*http.Server, error) {
	engine, err := recommend.NewEngine(store, recommend.Config{
		TopK:          cfg.Recommend.TopK,
		ExcludeSource: cfg.Recommend.ExcludeSource,
	}, logging.WithComponent("recommend"))
	if err != nil {
		return nil, fmt.Errorf("recommendation engine: %w", err)
	}

	handler, err := api.NewHandler(store, engine, cfg)
	if err != nil {
		return nil, fmt.Errorf("api handler: %w", err)
	}

	return &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           api.NewRouter(handler, cfg).SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}, nil
}
