// Steamlens - Game Platform Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package analytics

import (
	"context"
	"sort"

	"github.com/tomtom215/steamlens/internal/dataset"
	"github.com/tomtom215/steamlens/internal/logging"
)

// DeveloperYear summarizes one release year of a developer's catalog.
type DeveloperYear struct {
	Year        int `json:"Year"`
	Games       int `json:"Number of games"`
	FreePercent int `json:"% Free games"`
}

// DeveloperStats groups the developer's catalog by release year. Years come
// back ascending. An unknown developer yields an empty, non-nil slice.
//
// FreePercent is free/total*100 truncated toward zero; a price of exactly
// 0.0 is free, a missing price is not.
func DeveloperStats(ctx context.Context, store *dataset.Store, developer string) []DeveloperYear {
	type tally struct{ total, free int }
	byYear := make(map[int]*tally)

	for _, it := range store.DeveloperItems(developer) {
		if !it.ReleaseYear.Valid {
			continue
		}
		t, ok := byYear[it.ReleaseYear.Value]
		if !ok {
			t = &tally{}
			byYear[it.ReleaseYear.Value] = t
		}
		t.total++
		if it.Price == 0 {
			t.free++
		}
	}

	out := make([]DeveloperYear, 0, len(byYear))
	for year, t := range byYear {
		out = append(out, DeveloperYear{
			Year:        year,
			Games:       t.total,
			FreePercent: int(float64(t.free) / float64(t.total) * 100),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })

	logging.Ctx(ctx).Debug().
		Str("developer", developer).
		Int("years", len(out)).
		Msg("developer stats")
	return out
}
