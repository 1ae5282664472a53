// Steamlens - Game Platform Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

/*
Package api provides the HTTP layer for Steamlens.

Every query endpoint parses one primitive argument, validates it, calls exactly
one function from internal/analytics or internal/recommend against the shared
dataset.Store, and writes the result as JSON.

Key Components:

  - Router: chi route table and middleware stack
  - Handler: one method per endpoint
  - QueryExecutor: LRU result cache keyed by query name and argument
  - Response formatting: bare JSON on success, error envelope on failure

Endpoints:

	GET /                               HTML landing page
	GET /developer?developer_name=      games and free share per year
	GET /userdata?user_id=              spend, recommendation share, items
	GET /UserForGenre?genre=            user with most playtime in a genre
	GET /best_developer_year/{year}     top three recommended developers
	GET /dev_reviews_analysis?developer= positive and negative review counts
	GET /game_recommendation?item_id=   games with similar genres
	GET /health/live, /health/ready     probes
	GET /metrics                        Prometheus exposition
	GET /docs/*                         Swagger UI

Error Responses:

	{"success": false, "error": {"code": "NOT_FOUND", "message": "...", "details": {...}, "request_id": "..."}}

Unknown keys return 404 NOT_FOUND with fuzzy suggestions in details where the
store has a vocabulary for them. Invalid parameters return 400
VALIDATION_ERROR. Anything else returns 500 INTERNAL_ERROR without the
underlying error text.

Usage Example:

	handler := api.NewHandler(store, engine, cfg)
	router := api.NewRouter(handler, cfg)
	http.ListenAndServe(cfg.Server.Addr(), router.SetupChi())

Thread Safety:

The store is immutable and the cache is internally synchronized, so all
handlers are safe for concurrent use.
*/
package api
