// Steamlens - Game Platform Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package analytics

import (
	"context"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/steamlens/internal/dataset"
)

func TestDeveloperReviews(t *testing.T) {
	store := testStore()

	tests := []struct {
		developer string
		want      SentimentCounts
	}{
		{"Valve", SentimentCounts{Negative: 1, Positive: 3}},
		{"Bethesda", SentimentCounts{Negative: 0, Positive: 2}},
		{"Unknown", SentimentCounts{}},
	}

	for _, tt := range tests {
		t.Run(tt.developer, func(t *testing.T) {
			got := DeveloperReviews(context.Background(), store, tt.developer)
			if got.Developer != tt.developer {
				t.Errorf("Developer = %q", got.Developer)
			}
			if got.SentimentCounts != tt.want {
				t.Errorf("SentimentCounts = %+v, want %+v", got.SentimentCounts, tt.want)
			}
		})
	}
}

func TestDeveloperReviews_IgnoresOtherCodes(t *testing.T) {
	store := dataset.NewStore(dataset.Tables{
		Reviews: []dataset.Review{
			review("u1", "Dev", y(2015), true, dataset.SentimentNeutral),
			review("u2", "Dev", y(2015), true, dataset.SentimentMissing),
			review("u3", "Dev", y(2015), true, 7),
			review("u4", "Dev", y(2015), false, dataset.SentimentNegative),
		},
	})

	got := DeveloperReviews(context.Background(), store, "Dev")
	classified := 0
	for _, r := range store.ReviewsByDeveloper("Dev") {
		if r.Sentiment == dataset.SentimentNegative || r.Sentiment == dataset.SentimentPositive {
			classified++
		}
	}
	if got.SentimentCounts.Negative+got.SentimentCounts.Positive != classified {
		t.Errorf("counts %+v do not add up to %d", got.SentimentCounts, classified)
	}
	if got.SentimentCounts != (SentimentCounts{Negative: 1}) {
		t.Errorf("SentimentCounts = %+v, want Negative 1 only", got.SentimentCounts)
	}
}

func TestDeveloperReviews_JSON(t *testing.T) {
	b, err := json.Marshal(DeveloperReviews(context.Background(), testStore(), "Valve"))
	if err != nil {
		t.Fatal(err)
	}
	want := `{"developer":"Valve","sentiment_counts":{"Negative":1,"Positive":3}}`
	if string(b) != want {
		t.Errorf("JSON = %s, want %s", b, want)
	}
}
