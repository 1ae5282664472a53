// Steamlens - Game Platform Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

/*
Package main is the entry point for the Steamlens HTTP server.

Steamlens answers six read-only questions about a game platform's review,
ownership and catalog data: developer release statistics, user spend,
the top player of a genre, the best developers of a year, developer review
sentiment and genre-similar game recommendations.

# Startup

 1. Configuration: Koanf v2 defaults, optional config.yaml, environment
 2. Logging: zerolog level and format from configuration
 3. Dataset: all five Parquet snapshots read through DuckDB, from local
    paths or s3:// URLs, within DATASET_LOAD_TIMEOUT
 4. Recommendation engine over the loaded catalog
 5. Chi router with the query, health, metrics and docs routes
 6. Suture supervisor tree running the HTTP server and uptime reporter

Any dataset failure aborts startup; the server never serves a partial
dataset.

# Supervision

	RootSupervisor ("steamlens")
	├── MaintenanceSupervisor ("maintenance-layer")
	│   └── UptimeService
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server stops accepting
connections and drains in-flight requests within HTTP_SHUTDOWN_TIMEOUT.

# Example Usage

	export DATASET_REVIEWS_PATH=/data/reviews.parquet
	export DATASET_DEVELOPER_ITEMS_PATH=/data/developer_items.parquet
	export DATASET_USER_EXPENSES_PATH=/data/user_expenses.parquet
	export DATASET_GENRE_PLAYTIME_PATH=/data/genre_playtime.parquet
	export DATASET_CATALOG_PATH=s3://steam-snapshots/catalog.parquet
	./steamlens-server

Then browse http://localhost:8000/ or http://localhost:8000/docs/index.html.
*/
package main
