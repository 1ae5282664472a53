// Steamlens - Game Platform Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package config

import (
	"net"
	"strconv"
	"time"
)

// Config holds all application configuration loaded from defaults, an
// optional YAML file and environment variables.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in sensible defaults for all optional settings
//  2. Config File: Optional YAML config file (config.yaml)
//  3. Environment Variables: Override any setting
//
// Config is immutable after Load() and safe for concurrent read access.
type Config struct {
	Dataset   DatasetConfig   `koanf:"dataset"`
	Server    ServerConfig    `koanf:"server"`
	API       APIConfig       `koanf:"api"`
	Security  SecurityConfig  `koanf:"security"`
	Recommend RecommendConfig `koanf:"recommend"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// DatasetConfig describes where the Parquet snapshots live and how DuckDB
// reads them at startup.
//
// Every path may be a local file or an s3://bucket/key URL.
//
// Environment Variables:
//   - DATASET_REVIEWS_PATH: user reviews snapshot
//   - DATASET_DEVELOPER_ITEMS_PATH: developer catalog snapshot
//   - DATASET_USER_EXPENSES_PATH: user expense snapshot
//   - DATASET_GENRE_PLAYTIME_PATH: genre/user playtime snapshot
//   - DATASET_CATALOG_PATH: recommendation catalog snapshot
//   - DATASET_LOAD_TIMEOUT: deadline for the whole startup load (default: 2m)
//   - DUCKDB_MAX_MEMORY: DuckDB memory limit while loading (default: 1GB)
//   - DUCKDB_THREADS: DuckDB threads (0 = use NumCPU)
type DatasetConfig struct {
	ReviewsPath        string        `koanf:"reviews_path"`
	DeveloperItemsPath string        `koanf:"developer_items_path"`
	UserExpensesPath   string        `koanf:"user_expenses_path"`
	GenrePlaytimePath  string        `koanf:"genre_playtime_path"`
	CatalogPath        string        `koanf:"catalog_path"`
	MaxMemory          string        `koanf:"max_memory"`
	Threads            int           `koanf:"threads"`
	LoadTimeout        time.Duration `koanf:"load_timeout"`
	S3                 S3Config      `koanf:"s3"`
}

// S3Config configures the client used for s3:// snapshot paths.
// Empty credentials fall back to the default AWS credential chain.
type S3Config struct {
	Region          string `koanf:"region"`
	Endpoint        string `koanf:"endpoint"` // S3-compatible endpoint (MinIO, Spaces); empty = AWS
	AccessKeyID     string `koanf:"access_key_id"`
	SecretAccessKey string `koanf:"secret_access_key"`
	DownloadDir     string `koanf:"download_dir"` // empty = os.TempDir()
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"` // "development", "staging", "production"
}

// APIConfig holds query result caching settings
type APIConfig struct {
	CacheSize     int  `koanf:"cache_size"`
	CacheDisabled bool `koanf:"cache_disabled"`
}

// SecurityConfig holds rate limiting and CORS settings.
// Steamlens has no authentication; the API is read-only.
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// RecommendConfig holds defaults for the content-based recommender.
type RecommendConfig struct {
	// TopK is the number of games returned per recommendation.
	// Default: 5
	TopK int `koanf:"top_k"`

	// ExcludeSource drops the queried game from its own recommendations
	// unless the request overrides it. Default: false
	ExcludeSource bool `koanf:"exclude_source"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

// MaxTopK bounds recommend.top_k and the per-request k parameter.
const MaxTopK = 50

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// SnapshotPaths returns the configured snapshot paths keyed by table name.
func (d *DatasetConfig) SnapshotPaths() map[string]string {
	return map[string]string{
		"reviews":         d.ReviewsPath,
		"developer_items": d.DeveloperItemsPath,
		"user_expenses":   d.UserExpensesPath,
		"genre_playtime":  d.GenrePlaytimePath,
		"catalog":         d.CatalogPath,
	}
}

// Load reads configuration from defaults, the first config file found and
// environment variables, then validates it.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
