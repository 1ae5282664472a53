// Steamlens - Game Platform Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// TestDefaultConfig verifies that defaultConfig() returns proper defaults
func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Dataset.ReviewsPath != "data/reviews.parquet" {
		t.Errorf("Dataset.ReviewsPath = %q, want data/reviews.parquet", cfg.Dataset.ReviewsPath)
	}
	if cfg.Dataset.LoadTimeout != 2*time.Minute {
		t.Errorf("Dataset.LoadTimeout = %v, want 2m", cfg.Dataset.LoadTimeout)
	}
	if cfg.Server.Port != 8000 {
		t.Errorf("Server.Port = %d, want 8000", cfg.Server.Port)
	}
	if cfg.Recommend.TopK != 5 {
		t.Errorf("Recommend.TopK = %d, want 5", cfg.Recommend.TopK)
	}
	if cfg.Recommend.ExcludeSource {
		t.Error("Recommend.ExcludeSource should be false by default")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}
	if len(cfg.Security.CORSOrigins) != 1 || cfg.Security.CORSOrigins[0] != "*" {
		t.Errorf("Security.CORSOrigins = %v, want [*]", cfg.Security.CORSOrigins)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		envKey string
		want   string
	}{
		{"DATASET_REVIEWS_PATH", "dataset.reviews_path"},
		{"DATASET_CATALOG_PATH", "dataset.catalog_path"},
		{"DUCKDB_MAX_MEMORY", "dataset.max_memory"},
		{"S3_REGION", "dataset.s3.region"},
		{"HTTP_PORT", "server.port"},
		{"API_CACHE_SIZE", "api.cache_size"},
		{"DISABLE_RATE_LIMIT", "security.rate_limit_disabled"},
		{"RECOMMEND_TOP_K", "recommend.top_k"},
		{"LOG_LEVEL", "logging.level"},
		{"PATH", ""},
		{"HOME", ""},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := envTransformFunc(tt.envKey); got != tt.want {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestFindConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)
	t.Setenv(ConfigPathEnvVar, "")

	t.Run("no config file", func(t *testing.T) {
		if got := findConfigFile(); got != "" {
			t.Errorf("findConfigFile() = %q, want empty", got)
		}
	})

	t.Run("config.yaml in working directory", func(t *testing.T) {
		if err := os.WriteFile("config.yaml", []byte("logging:\n  level: info\n"), 0o644); err != nil {
			t.Fatalf("write config: %v", err)
		}
		defer os.Remove("config.yaml")

		if got := findConfigFile(); got != "config.yaml" {
			t.Errorf("findConfigFile() = %q, want config.yaml", got)
		}
	})

	t.Run("CONFIG_PATH wins", func(t *testing.T) {
		custom := filepath.Join(tmpDir, "custom.yaml")
		if err := os.WriteFile(custom, []byte("logging:\n  level: info\n"), 0o644); err != nil {
			t.Fatalf("write config: %v", err)
		}
		t.Setenv(ConfigPathEnvVar, custom)

		if got := findConfigFile(); got != custom {
			t.Errorf("findConfigFile() = %q, want %q", got, custom)
		}
	})

	t.Run("CONFIG_PATH missing falls through", func(t *testing.T) {
		t.Setenv(ConfigPathEnvVar, "/non/existent/config.yaml")
		if got := findConfigFile(); got != "" {
			t.Errorf("findConfigFile() = %q, want empty", got)
		}
	})
}

func TestLoadWithKoanfEnvVars(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(ConfigPathEnvVar, "")
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DATASET_CATALOG_PATH", "s3://snapshots/catalog.parquet")
	t.Setenv("RECOMMEND_TOP_K", "10")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Dataset.CatalogPath != "s3://snapshots/catalog.parquet" {
		t.Errorf("Dataset.CatalogPath = %q", cfg.Dataset.CatalogPath)
	}
	if cfg.Recommend.TopK != 10 {
		t.Errorf("Recommend.TopK = %d, want 10", cfg.Recommend.TopK)
	}
	want := []string{"https://a.example", "https://b.example"}
	if len(cfg.Security.CORSOrigins) != len(want) {
		t.Fatalf("Security.CORSOrigins = %v, want %v", cfg.Security.CORSOrigins, want)
	}
	for i := range want {
		if cfg.Security.CORSOrigins[i] != want[i] {
			t.Errorf("CORSOrigins[%d] = %q, want %q", i, cfg.Security.CORSOrigins[i], want[i])
		}
	}
}

func TestLoadFromPathEnvOverridesFile(t *testing.T) {
	t.Chdir(t.TempDir())
	configPath := filepath.Join(t.TempDir(), "steamlens.yaml")
	content := `
dataset:
  reviews_path: /snapshots/reviews.parquet
  load_timeout: 30s
server:
  port: 8080
logging:
  level: warn
  format: console
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("HTTP_PORT", "9999")

	cfg, err := LoadFromPath(configPath)
	if err != nil {
		t.Fatalf("LoadFromPath() error = %v", err)
	}

	if cfg.Server.Port != 9999 {
		t.Errorf("Server.Port = %d, want 9999 (env override)", cfg.Server.Port)
	}
	if cfg.Dataset.ReviewsPath != "/snapshots/reviews.parquet" {
		t.Errorf("Dataset.ReviewsPath = %q, want file value", cfg.Dataset.ReviewsPath)
	}
	if cfg.Dataset.LoadTimeout != 30*time.Second {
		t.Errorf("Dataset.LoadTimeout = %v, want 30s", cfg.Dataset.LoadTimeout)
	}
	if cfg.Dataset.CatalogPath != "data/catalog.parquet" {
		t.Errorf("Dataset.CatalogPath = %q, want default", cfg.Dataset.CatalogPath)
	}
	if cfg.Logging.Format != "console" {
		t.Errorf("Logging.Format = %q, want console", cfg.Logging.Format)
	}
}

func TestLoadFromPathMissingFile(t *testing.T) {
	if _, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("LoadFromPath() should fail for a missing file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"empty reviews path", func(c *Config) { c.Dataset.ReviewsPath = " " }, "DATASET_REVIEWS_PATH"},
		{"empty genre path", func(c *Config) { c.Dataset.GenrePlaytimePath = "" }, "DATASET_GENRE_PLAYTIME_PATH"},
		{"s3 without key", func(c *Config) { c.Dataset.CatalogPath = "s3://bucket" }, "s3://bucket/key"},
		{"negative threads", func(c *Config) { c.Dataset.Threads = -1 }, "DUCKDB_THREADS"},
		{"zero load timeout", func(c *Config) { c.Dataset.LoadTimeout = 0 }, "DATASET_LOAD_TIMEOUT"},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, "HTTP_PORT"},
		{"port too high", func(c *Config) { c.Server.Port = 70000 }, "HTTP_PORT"},
		{"unknown environment", func(c *Config) { c.Server.Environment = "qa" }, "ENVIRONMENT"},
		{"cache size zero", func(c *Config) { c.API.CacheSize = 0 }, "API_CACHE_SIZE"},
		{"cache disabled size zero", func(c *Config) { c.API.CacheDisabled = true; c.API.CacheSize = 0 }, ""},
		{"rate limit zero", func(c *Config) { c.Security.RateLimitReqs = 0 }, "RATE_LIMIT_REQUESTS"},
		{"rate limit disabled", func(c *Config) { c.Security.RateLimitDisabled = true; c.Security.RateLimitReqs = 0 }, ""},
		{"wildcard cors in production", func(c *Config) { c.Server.Environment = "production" }, "CORS_ORIGINS"},
		{"top k zero", func(c *Config) { c.Recommend.TopK = 0 }, "RECOMMEND_TOP_K"},
		{"top k above max", func(c *Config) { c.Recommend.TopK = MaxTopK + 1 }, "RECOMMEND_TOP_K"},
		{"bad log level", func(c *Config) { c.Logging.Level = "verbose" }, "LOG_LEVEL"},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, "LOG_FORMAT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() = nil, want error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestServerAddr(t *testing.T) {
	s := ServerConfig{Host: "127.0.0.1", Port: 8000}
	if got := s.Addr(); got != "127.0.0.1:8000" {
		t.Errorf("Addr() = %q, want 127.0.0.1:8000", got)
	}
}
