// Steamlens - Game Platform Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

/*
Package middleware provides HTTP middleware components for the API server.

Key Components:

  - RequestID: UUID-based request tracking wired into the logging context
  - PrometheusMetrics: request count, latency and in-flight instrumentation
  - AccessLog: one zerolog line per request

All middleware has the chi signature func(http.Handler) http.Handler.

Middleware Stack:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)        // Layer 1: request tracking
	r.Use(chimiddleware.RealIP)        // Layer 2: client address
	r.Use(middleware.AccessLog)        // Layer 3: access log
	r.Use(chimiddleware.Recoverer)     // Layer 4: panic recovery
	r.Use(middleware.PrometheusMetrics) // Layer 5: metrics

RequestID should run first so later layers log with request_id.
*/
package middleware
