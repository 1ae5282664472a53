// Steamlens - Game Platform Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package recommend

import "fmt"

// MaxK bounds the number of recommendations per request.
const MaxK = 50

// Config contains the engine defaults applied when a Request leaves a
// field unset.
type Config struct {
	// TopK is the number of items returned when Request.K is zero.
	TopK int `json:"top_k"`

	// ExcludeSource is the default for Request.ExcludeSource.
	ExcludeSource bool `json:"exclude_source"`
}

// DefaultConfig returns the engine defaults: five items, source included.
func DefaultConfig() Config {
	return Config{TopK: 5, ExcludeSource: false}
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if c.TopK < 1 || c.TopK > MaxK {
		return fmt.Errorf("top_k must be between 1 and %d, got %d", MaxK, c.TopK)
	}
	return nil
}
