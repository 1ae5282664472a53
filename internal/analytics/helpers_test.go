// Steamlens - Game Platform Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package analytics

import (
	"math"

	"github.com/tomtom215/steamlens/internal/dataset"
)

func y(v int) dataset.Year { return dataset.KnownYear(v) }

func review(user, dev string, year dataset.Year, recommend bool, sentiment int) dataset.Review {
	return dataset.Review{UserID: user, Developer: dev, ReleaseYear: year, Recommend: recommend, Sentiment: sentiment}
}

func nullDeveloper(r dataset.Review) dataset.Review {
	r.NullDeveloper = true
	return r
}

func testStore() *dataset.Store {
	return dataset.NewStore(dataset.Tables{
		Reviews: []dataset.Review{
			review("alice", "Valve", y(2010), true, dataset.SentimentPositive),
			review("bob", "Valve", y(2010), true, dataset.SentimentPositive),
			review("carol", "Valve", y(2010), false, dataset.SentimentNegative),
			review("alice", "Bethesda", y(2010), true, dataset.SentimentPositive),
			review("dave", "Bethesda", y(2010), true, dataset.SentimentPositive),
			review("erin", "Annapurna", y(2010), true, dataset.SentimentPositive),
			review("frank", "Zeta Games", y(2010), true, dataset.SentimentPositive),
			review("bob", "Valve", y(2011), true, dataset.SentimentNeutral),
			review("carol", "Valve", dataset.Year{}, true, dataset.SentimentPositive),
			nullDeveloper(review("dave", "", y(2010), true, dataset.SentimentPositive)),
			nullDeveloper(review("dave", "", y(2010), true, dataset.SentimentPositive)),
			nullDeveloper(review("dave", "", y(2010), true, dataset.SentimentPositive)),
		},
		DeveloperItems: []dataset.DeveloperItem{
			{Developer: "D1", ItemID: 1, ReleaseYear: y(2015), Price: 0.0},
			{Developer: "D1", ItemID: 2, ReleaseYear: y(2015), Price: 9.99},
			{Developer: "D1", ItemID: 3, ReleaseYear: y(2016), Price: 0.0},
			{Developer: "D2", ItemID: 4, ReleaseYear: y(2012), Price: 4.99},
			{Developer: "D2", ItemID: 5, ReleaseYear: y(2012), Price: math.NaN()},
			{Developer: "D2", ItemID: 6, ReleaseYear: y(2012), Price: 0},
			{Developer: "D2", ItemID: 7, ReleaseYear: dataset.Year{}, Price: 0},
		},
		UserExpenses: []dataset.UserExpense{
			{UserID: "alice", Price: 9.99, ItemsCount: 42},
			{UserID: "alice", Price: 20.01, ItemsCount: 41},
			{UserID: "bob", Price: 0, ItemsCount: 1},
			{UserID: "zoe", Price: 5, ItemsCount: 7},
		},
		GenrePlaytime: []dataset.GenrePlaytime{
			{UserID: "alice", Genres: "Action", PlaytimeMinutes: 120, ReleaseYear: y(2012)},
			{UserID: "alice", Genres: "Action", PlaytimeMinutes: 60, ReleaseYear: y(2010)},
			{UserID: "alice", Genres: "Action", PlaytimeMinutes: 30, ReleaseYear: y(2012)},
			{UserID: "alice", Genres: "Action", PlaytimeMinutes: 90, ReleaseYear: dataset.Year{}},
			{UserID: "bob", Genres: "Action", PlaytimeMinutes: 240, ReleaseYear: y(2011)},
			{UserID: "carol", Genres: "Action,Indie", PlaytimeMinutes: 6000, ReleaseYear: y(2011)},
			{UserID: "zed", Genres: "Strategy", PlaytimeMinutes: 60, ReleaseYear: y(2014)},
			{UserID: "amy", Genres: "Strategy", PlaytimeMinutes: 60, ReleaseYear: y(2015)},
		},
	})
}
