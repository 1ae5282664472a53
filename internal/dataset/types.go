// Steamlens - Game Platform Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package dataset

// Sentiment codes produced by the upstream review classifier.
const (
	SentimentNegative = 0
	SentimentNeutral  = 1
	SentimentPositive = 2

	// SentimentMissing marks a NULL sentiment in the snapshot.
	SentimentMissing = -1
)

// Review is one user review of a game.
type Review struct {
	UserID      string
	Developer   string
	ReleaseYear Year
	Recommend   bool
	Sentiment   int

	// NullDeveloper is set when the snapshot's developer is NULL, as
	// opposed to an empty string.
	NullDeveloper bool
}

// DeveloperItem is one game in the developer catalog.
// Price is NaN when the snapshot has no price; NaN is never free.
type DeveloperItem struct {
	Developer   string
	ItemID      int64
	ReleaseYear Year
	Price       float64
}

// UserExpense is one purchase row. ItemsCount repeats the user's library
// size on every row; the first row is authoritative.
type UserExpense struct {
	UserID     string
	Price      float64
	ItemsCount int
}

// GenrePlaytime is one (user, game) playtime row tagged with the game's
// full genre field.
type GenrePlaytime struct {
	UserID          string
	Genres          string
	PlaytimeMinutes float64
	ReleaseYear     Year
}

// CatalogItem is one row of the recommendation catalog.
type CatalogItem struct {
	ItemID   int64
	ItemName string
	Genres   string
}

// Tables holds raw rows in snapshot order.
type Tables struct {
	Reviews        []Review
	DeveloperItems []DeveloperItem
	UserExpenses   []UserExpense
	GenrePlaytime  []GenrePlaytime
	Catalog        []CatalogItem
}

// Stats reports table sizes.
type Stats struct {
	Reviews             int `json:"reviews"`
	DeveloperItems      int `json:"developer_items"`
	UserExpenses        int `json:"user_expenses"`
	GenrePlaytime       int `json:"genre_playtime"`
	Catalog             int `json:"catalog"`
	DistinctReviewUsers int `json:"distinct_review_users"`
	Developers          int `json:"developers"`
	Genres              int `json:"genres"`
}
