// Steamlens - Game Platform Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package analytics

import (
	"context"
	"sort"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/tomtom215/steamlens/internal/dataset"
	"github.com/tomtom215/steamlens/internal/logging"
)

// TopDevelopersPerYear is how many developers BestDeveloperYear ranks.
const TopDevelopersPerYear = 3

// RankedDeveloper is one entry of the best-developer ranking.
type RankedDeveloper struct {
	Rank      int
	Developer string
	Reviews   int
}

// MarshalJSON emits {"Rank <n>": developer}.
func (r RankedDeveloper) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string{"Rank " + strconv.Itoa(r.Rank): r.Developer})
}

// BestDeveloperYear ranks developers by the number of reviews for games
// released in year that both recommend the game and were classified
// positive. At most three developers are returned, most reviews first,
// ties broken by developer name. Reviews with a NULL developer are
// ignored; an empty developer name is ranked like any other.
func BestDeveloperYear(ctx context.Context, store *dataset.Store, year int) []RankedDeveloper {
	counts := make(map[string]int)
	for _, r := range store.ReviewsByYear(year) {
		if !r.Recommend || r.Sentiment != dataset.SentimentPositive || r.NullDeveloper {
			continue
		}
		counts[r.Developer]++
	}

	ranked := make([]RankedDeveloper, 0, len(counts))
	for dev, n := range counts {
		ranked = append(ranked, RankedDeveloper{Developer: dev, Reviews: n})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Reviews != ranked[j].Reviews {
			return ranked[i].Reviews > ranked[j].Reviews
		}
		return ranked[i].Developer < ranked[j].Developer
	})
	if len(ranked) > TopDevelopersPerYear {
		ranked = ranked[:TopDevelopersPerYear]
	}
	for i := range ranked {
		ranked[i].Rank = i + 1
	}

	logging.Ctx(ctx).Debug().
		Int("year", year).
		Int("developers", len(counts)).
		Msg("best developer year")
	return ranked
}
