// Steamlens - Game Platform Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/tomtom215/steamlens/internal/analytics"
	"github.com/tomtom215/steamlens/internal/dataset"
)

// Query names used for cache keys and metrics labels.
const (
	queryDeveloper        = "developer"
	queryUserData         = "user_data"
	queryUserForGenre     = "user_for_genre"
	queryBestDeveloper    = "best_developer_year"
	queryDeveloperReviews = "dev_reviews_analysis"
	queryRecommendation   = "game_recommendation"
)

// Developer handles developer catalog statistics.
//
// @Summary Games and free share per release year
// @Description Number of games a developer released per year and the truncated percentage that were free. Unknown developers return an empty list.
// @Tags Queries
// @Produce json
// @Param developer_name query string true "Developer name" example(Valve)
// @Success 200 {array} analytics.DeveloperYear
// @Header 200 {string} X-Did-You-Mean "Close developer names when the developer is unknown"
// @Failure 400 {object} APIResponse "Invalid parameter"
// @Router /developer [get]
func (h *Handler) Developer(w http.ResponseWriter, r *http.Request) {
	req, apiErr := parseDeveloperRequest(r)
	if apiErr != nil {
		respondError(w, r, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details, nil)
		return
	}

	if len(h.store.DeveloperItems(req.Developer)) == 0 {
		h.suggestDevelopers(w, req.Developer)
	}
	h.executor.Execute(w, r, queryDeveloper, req.Developer, func(ctx context.Context) (interface{}, error) {
		return analytics.DeveloperStats(ctx, h.store, req.Developer), nil
	})
}

// UserData handles per-user spend and recommendation share.
//
// @Summary User spend, recommendation share and item count
// @Description percentage_recommendation divides the user's recommended reviews by the number of distinct reviewers in the whole dataset.
// @Tags Queries
// @Produce json
// @Param user_id query string true "User ID" example(js41637)
// @Success 200 {object} analytics.UserSummary
// @Failure 400 {object} APIResponse "Invalid parameter"
// @Failure 404 {object} APIResponse "User has no expense rows"
// @Router /userdata [get]
func (h *Handler) UserData(w http.ResponseWriter, r *http.Request) {
	req, apiErr := parseUserDataRequest(r)
	if apiErr != nil {
		respondError(w, r, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details, nil)
		return
	}

	h.executor.Execute(w, r, queryUserData, req.UserID, func(ctx context.Context) (interface{}, error) {
		return analytics.UserData(ctx, h.store, req.UserID)
	})
}

// UserForGenre handles the top-playtime user for a genre.
//
// @Summary User with the most playtime in a genre
// @Description Hours per release year for the user with the largest total playtime in the genre. The genre must match the genres field exactly.
// @Tags Queries
// @Produce json
// @Param genre query string true "Genre" example(Indie)
// @Success 200 {object} map[string]interface{} "{\"User with most playtime for Genre <genre>\": user, \"Playtime\": [{\"Year\": int, \"Hours\": float}]}"
// @Failure 400 {object} APIResponse "Invalid parameter"
// @Failure 404 {object} APIResponse "Genre has no rows; details carry suggestions"
// @Router /UserForGenre [get]
func (h *Handler) UserForGenre(w http.ResponseWriter, r *http.Request) {
	req, apiErr := parseGenreRequest(r)
	if apiErr != nil {
		respondError(w, r, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details, nil)
		return
	}

	h.executor.Execute(w, r, queryUserForGenre, req.Genre, func(ctx context.Context) (interface{}, error) {
		return analytics.UserForGenre(ctx, h.store, req.Genre)
	})
}

// BestDeveloperYear handles the top recommended developers of a year.
//
// @Summary Top three developers of a release year
// @Description Developers ranked by reviews that recommend the game with positive sentiment. Fewer than three qualifying developers yield a shorter list.
// @Tags Queries
// @Produce json
// @Param year path int true "Release year" example(2010)
// @Success 200 {array} map[string]string "[{\"Rank 1\": developer}, ...]"
// @Failure 400 {object} APIResponse "Invalid year"
// @Router /best_developer_year/{year} [get]
func (h *Handler) BestDeveloperYear(w http.ResponseWriter, r *http.Request) {
	req, apiErr := parseBestDeveloperYearRequest(r)
	if apiErr != nil {
		respondError(w, r, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details, nil)
		return
	}

	h.executor.Execute(w, r, queryBestDeveloper, strconv.Itoa(req.Year), func(ctx context.Context) (interface{}, error) {
		return analytics.BestDeveloperYear(ctx, h.store, req.Year), nil
	})
}

// DeveloperReviews handles developer sentiment counts.
//
// @Summary Negative and positive review counts for a developer
// @Description Neutral reviews are excluded. Unknown developers return zero counts.
// @Tags Queries
// @Produce json
// @Param developer query string true "Developer name" example(Valve)
// @Success 200 {object} analytics.DeveloperSentiment
// @Header 200 {string} X-Did-You-Mean "Close developer names when the developer is unknown"
// @Failure 400 {object} APIResponse "Invalid parameter"
// @Router /dev_reviews_analysis [get]
func (h *Handler) DeveloperReviews(w http.ResponseWriter, r *http.Request) {
	req, apiErr := parseDeveloperReviewsRequest(r)
	if apiErr != nil {
		respondError(w, r, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details, nil)
		return
	}

	if len(h.store.ReviewsByDeveloper(req.Developer)) == 0 {
		h.suggestDevelopers(w, req.Developer)
	}
	h.executor.Execute(w, r, queryDeveloperReviews, req.Developer, func(ctx context.Context) (interface{}, error) {
		return analytics.DeveloperReviews(ctx, h.store, req.Developer), nil
	})
}

// SuggestionHeader lists close developer names when a developer lookup
// matches nothing. The body keeps its empty shape.
const SuggestionHeader = "X-Did-You-Mean"

func (h *Handler) suggestDevelopers(w http.ResponseWriter, developer string) {
	for _, name := range h.store.SuggestDevelopers(developer, dataset.DefaultSuggestions) {
		w.Header().Add(SuggestionHeader, name)
	}
}
