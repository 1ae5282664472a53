// Steamlens - Game Platform Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package config

import (
	"fmt"
	"strings"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateDataset(); err != nil {
		return err
	}

	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateAPI(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	if err := c.validateRecommend(); err != nil {
		return err
	}

	return c.validateLogging()
}

// validateDataset requires every snapshot path and sane DuckDB settings
func (c *Config) validateDataset() error {
	paths := []struct {
		env   string
		value string
	}{
		{"DATASET_REVIEWS_PATH", c.Dataset.ReviewsPath},
		{"DATASET_DEVELOPER_ITEMS_PATH", c.Dataset.DeveloperItemsPath},
		{"DATASET_USER_EXPENSES_PATH", c.Dataset.UserExpensesPath},
		{"DATASET_GENRE_PLAYTIME_PATH", c.Dataset.GenrePlaytimePath},
		{"DATASET_CATALOG_PATH", c.Dataset.CatalogPath},
	}
	for _, p := range paths {
		if strings.TrimSpace(p.value) == "" {
			return fmt.Errorf("%s is required", p.env)
		}
		if strings.HasPrefix(p.value, "s3://") && !validS3URL(p.value) {
			return fmt.Errorf("%s must look like s3://bucket/key, got %q", p.env, p.value)
		}
	}

	if c.Dataset.Threads < 0 {
		return fmt.Errorf("DUCKDB_THREADS must be >= 0, got %d", c.Dataset.Threads)
	}
	if c.Dataset.MaxMemory == "" {
		return fmt.Errorf("DUCKDB_MAX_MEMORY is required")
	}
	if c.Dataset.LoadTimeout <= 0 {
		return fmt.Errorf("DATASET_LOAD_TIMEOUT must be positive, got %v", c.Dataset.LoadTimeout)
	}
	return nil
}

// validS3URL reports whether u has both a bucket and a key.
func validS3URL(u string) bool {
	rest := strings.TrimPrefix(u, "s3://")
	bucket, key, ok := strings.Cut(rest, "/")
	return ok && bucket != "" && key != ""
}

// validateServer validates server configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive, got %v", c.Server.Timeout)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("HTTP_SHUTDOWN_TIMEOUT must be positive, got %v", c.Server.ShutdownTimeout)
	}
	switch c.Server.Environment {
	case "development", "staging", "production":
	default:
		return fmt.Errorf("ENVIRONMENT must be one of development, staging, production, got %q", c.Server.Environment)
	}
	return nil
}

// validateAPI validates the result cache settings
func (c *Config) validateAPI() error {
	if !c.API.CacheDisabled && c.API.CacheSize < 1 {
		return fmt.Errorf("API_CACHE_SIZE must be at least 1 when caching is enabled, got %d", c.API.CacheSize)
	}
	return nil
}

// validateSecurity validates rate limiting and CORS
func (c *Config) validateSecurity() error {
	if !c.Security.RateLimitDisabled {
		if c.Security.RateLimitReqs < 1 {
			return fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1, got %d", c.Security.RateLimitReqs)
		}
		if c.Security.RateLimitWindow <= 0 {
			return fmt.Errorf("RATE_LIMIT_WINDOW must be positive, got %v", c.Security.RateLimitWindow)
		}
	}
	if c.Server.Environment == "production" {
		for _, origin := range c.Security.CORSOrigins {
			if origin == "*" {
				return fmt.Errorf("CORS_ORIGINS must not contain '*' in production")
			}
		}
	}
	return nil
}

// validateRecommend bounds the recommendation list length
func (c *Config) validateRecommend() error {
	if c.Recommend.TopK < 1 || c.Recommend.TopK > MaxTopK {
		return fmt.Errorf("RECOMMEND_TOP_K must be between 1 and %d, got %d", MaxTopK, c.Recommend.TopK)
	}
	return nil
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	switch strings.ToLower(c.Logging.Level) {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of trace, debug, info, warn, error, got %q", c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "json", "console":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}
	return nil
}
