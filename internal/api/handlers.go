// Steamlens - Game Platform Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package api

import (
	"fmt"
	"time"

	"github.com/tomtom215/steamlens/internal/config"
	"github.com/tomtom215/steamlens/internal/dataset"
	"github.com/tomtom215/steamlens/internal/recommend"
)

// Handler contains dependencies for API handlers
//
// Handler methods are split across files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_analytics.go: the five aggregate queries
//   - handlers_recommend.go: game recommendation
//   - handlers_health.go: liveness and readiness probes
//   - handlers_home.go: HTML landing page
type Handler struct {
	store     *dataset.Store
	engine    *recommend.Engine
	executor  *QueryExecutor
	config    *config.Config
	startTime time.Time
}

// NewHandler creates a handler over a loaded store.
//
// The result cache is sized from cfg.API; the recommendation engine must be
// built over the same store.
//
// Example:
//
//	engine, _ := recommend.NewEngine(store, recommend.Config{TopK: cfg.Recommend.TopK}, logging.Logger())
//	handler, err := api.NewHandler(store, engine, cfg)
func NewHandler(store *dataset.Store, engine *recommend.Engine, cfg *config.Config) (*Handler, error) {
	if store == nil {
		return nil, fmt.Errorf("api: nil store")
	}
	if engine == nil {
		return nil, fmt.Errorf("api: nil recommendation engine")
	}

	size := cfg.API.CacheSize
	if cfg.API.CacheDisabled {
		size = 0
	}
	executor, err := NewQueryExecutor(size)
	if err != nil {
		return nil, err
	}

	return &Handler{
		store:     store,
		engine:    engine,
		executor:  executor,
		config:    cfg,
		startTime: time.Now(),
	}, nil
}
