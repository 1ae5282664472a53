// Steamlens - Game Platform Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package analytics

import (
	"context"
	"strconv"

	"github.com/tomtom215/steamlens/internal/dataset"
	"github.com/tomtom215/steamlens/internal/logging"
)

// UserSummary is a user's spending and recommendation summary.
type UserSummary struct {
	UserID                   string  `json:"user_id"`
	AmountMoney              float64 `json:"amount_money"`
	PercentageRecommendation float64 `json:"percentage_recommendation"`
	TotalItems               int     `json:"total_items"`
}

// UserData summarizes a user.
//
// TotalItems is the items_count of the user's first expense row.
// PercentageRecommendation divides the user's recommended reviews by the
// number of distinct reviewers in the whole dataset, not by the user's own
// review count, and is rounded to two decimals.
//
// A user without expense rows, or a dataset without reviews, returns a
// *dataset.NotFoundError.
func UserData(ctx context.Context, store *dataset.Store, userID string) (UserSummary, error) {
	first, ok := store.FirstExpense(userID)
	if !ok {
		return UserSummary{}, &dataset.NotFoundError{Kind: "user", Key: userID}
	}

	population := store.DistinctReviewUsers()
	if population == 0 {
		return UserSummary{}, &dataset.NotFoundError{Kind: "reviews"}
	}

	var spent float64
	for _, e := range store.UserExpenses(userID) {
		spent += e.Price
	}

	recommended := 0
	for _, r := range store.ReviewsByUser(userID) {
		if r.Recommend {
			recommended++
		}
	}

	pct := float64(recommended) / float64(population) * 100
	res := UserSummary{
		UserID:                   userID,
		AmountMoney:              spent,
		PercentageRecommendation: roundTo(pct, 2),
		TotalItems:               first.ItemsCount,
	}

	logging.Ctx(ctx).Debug().
		Str("user_id", userID).
		Int("recommended", recommended).
		Int("population", population).
		Msg("user data")
	return res, nil
}

// roundTo rounds the exact binary value of x to the given number of
// decimals, ties to even, so 0.125 becomes 0.12.
func roundTo(x float64, decimals int) float64 {
	v, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', decimals, 64), 64)
	if err != nil {
		return x
	}
	return v
}
