// Steamlens - Game Platform Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package analytics

import (
	"context"

	"github.com/tomtom215/steamlens/internal/dataset"
	"github.com/tomtom215/steamlens/internal/logging"
)

// SentimentCounts counts classified reviews. Neutral reviews are not counted.
type SentimentCounts struct {
	Negative int `json:"Negative"`
	Positive int `json:"Positive"`
}

// DeveloperSentiment is the review sentiment breakdown for one developer.
type DeveloperSentiment struct {
	Developer       string          `json:"developer"`
	SentimentCounts SentimentCounts `json:"sentiment_counts"`
}

// DeveloperReviews counts the developer's negative and positive reviews in
// a single pass. Any other sentiment code is skipped. An unknown developer
// gets zero counts.
func DeveloperReviews(ctx context.Context, store *dataset.Store, developer string) DeveloperSentiment {
	var counts SentimentCounts
	for _, r := range store.ReviewsByDeveloper(developer) {
		switch r.Sentiment {
		case dataset.SentimentNegative:
			counts.Negative++
		case dataset.SentimentPositive:
			counts.Positive++
		}
	}

	logging.Ctx(ctx).Debug().
		Str("developer", developer).
		Int("negative", counts.Negative).
		Int("positive", counts.Positive).
		Msg("developer reviews")
	return DeveloperSentiment{Developer: developer, SentimentCounts: counts}
}
