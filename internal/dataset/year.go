// Steamlens - Game Platform Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package dataset

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Year is a release year that may be missing. Snapshots carry years as
// integers, floats or free text, so every value goes through ParseYear.
type Year struct {
	Value int
	Valid bool
}

// KnownYear returns a valid Year.
func KnownYear(v int) Year {
	return Year{Value: v, Valid: true}
}

// ParseYear accepts "2015", "2015.0" and surrounding whitespace. Anything
// else (text, fractions, NaN, empty) returns an invalid Year and an error
// wrapping ErrInvalidData.
func ParseYear(s string) (Year, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Year{}, fmt.Errorf("empty year: %w", ErrInvalidData)
	}
	if v, err := strconv.Atoi(s); err == nil {
		return KnownYear(v), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return Year{}, fmt.Errorf("year %q: %w", s, ErrInvalidData)
	}
	if f > math.MaxInt32 || f < math.MinInt32 {
		return Year{}, fmt.Errorf("year %q out of range: %w", s, ErrInvalidData)
	}
	return KnownYear(int(f)), nil
}
