// Steamlens - Game Platform Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

/*
Package config provides centralized configuration management for Steamlens.

Configuration is layered with Koanf v2: built-in defaults, then an optional
YAML file (config.yaml, /etc/steamlens/config.yaml, or $CONFIG_PATH), then
environment variables. Later layers win.

# Configuration Structure

  - DatasetConfig: Parquet snapshot locations, DuckDB load settings, S3 access
  - ServerConfig: HTTP listen address and timeouts
  - APIConfig: query result cache
  - SecurityConfig: CORS origins and rate limiting
  - RecommendConfig: recommendation list length
  - LoggingConfig: zerolog level and output format

# Example config.yaml

	dataset:
	  reviews_path: /data/reviews.parquet
	  developer_items_path: /data/developer_items.parquet
	  user_expenses_path: /data/user_expenses.parquet
	  genre_playtime_path: /data/genre_playtime.parquet
	  catalog_path: s3://steam-snapshots/catalog.parquet
	  s3:
	    region: eu-west-1
	server:
	  port: 8000
	recommend:
	  top_k: 5
	logging:
	  level: debug
	  format: console

# Usage

	cfg, err := config.Load()
	if err != nil {
	    logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

Config is immutable after Load and safe for concurrent reads.
*/
package config
