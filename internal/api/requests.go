// Steamlens - Game Platform Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/steamlens/internal/validation"
)

// DeveloperRequest holds the validated parameters of GET /developer.
type DeveloperRequest struct {
	Developer string `query:"developer_name" validate:"required,notblank,printable,max=256"`
}

// UserDataRequest holds the validated parameters of GET /userdata.
type UserDataRequest struct {
	UserID string `query:"user_id" validate:"required,notblank,printable,max=256"`
}

// GenreRequest holds the validated parameters of GET /UserForGenre.
type GenreRequest struct {
	Genre string `query:"genre" validate:"required,notblank,printable,max=256"`
}

// BestDeveloperYearRequest holds the validated path parameter of
// GET /best_developer_year/{year}.
type BestDeveloperYearRequest struct {
	Year int `query:"year" validate:"gte=0,lte=9999"`
}

// DeveloperReviewsRequest holds the validated parameters of GET /dev_reviews_analysis.
type DeveloperReviewsRequest struct {
	Developer string `query:"developer" validate:"required,notblank,printable,max=256"`
}

// RecommendationRequest holds the validated parameters of GET /game_recommendation.
//
// Fields:
//   - ItemID: catalog item to recommend from (required)
//   - K: number of results (1-50, nil means the configured default)
//   - ExcludeSelf: drop the item itself from the results (nil means the configured default)
type RecommendationRequest struct {
	ItemID      int64 `query:"item_id" validate:"gte=0"`
	K           *int  `query:"k" validate:"omitempty,min=1,max=50"`
	ExcludeSelf *bool `query:"exclude_self"`
}

// validateRequest runs the struct's validate tags and maps failures to a
// VALIDATION_ERROR.
func validateRequest(v interface{}) *APIError {
	errs := validation.Validate(v)
	if errs == nil {
		return nil
	}
	return &APIError{
		Code:    ErrCodeValidation,
		Message: errs.Error(),
		Details: errs.Details(),
	}
}

// paramError builds a VALIDATION_ERROR for a parameter that failed to parse.
func paramError(name, message string) *APIError {
	return &APIError{
		Code:    ErrCodeValidation,
		Message: fmt.Sprintf("%s %s", name, message),
		Details: map[string]interface{}{"field": name, "tag": "parse"},
	}
}

// parseInt64Param parses a required integer parameter.
func parseInt64Param(name, raw string) (int64, *APIError) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, paramError(name, "is required")
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, paramError(name, "must be an integer")
	}
	return v, nil
}

// parseIntParam parses a required int parameter.
func parseIntParam(name, raw string) (int, *APIError) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, paramError(name, "is required")
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, paramError(name, "must be an integer")
	}
	return v, nil
}

// parseOptionalInt parses an optional integer parameter; empty yields nil.
func parseOptionalInt(name, raw string) (*int, *APIError) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, paramError(name, "must be an integer")
	}
	return &v, nil
}

// parseOptionalBool parses an optional boolean parameter; empty yields nil.
func parseOptionalBool(name, raw string) (*bool, *APIError) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, paramError(name, "must be a boolean")
	}
	return &v, nil
}

func parseDeveloperRequest(r *http.Request) (DeveloperRequest, *APIError) {
	req := DeveloperRequest{Developer: r.URL.Query().Get("developer_name")}
	return req, validateRequest(&req)
}

func parseUserDataRequest(r *http.Request) (UserDataRequest, *APIError) {
	req := UserDataRequest{UserID: r.URL.Query().Get("user_id")}
	return req, validateRequest(&req)
}

func parseGenreRequest(r *http.Request) (GenreRequest, *APIError) {
	req := GenreRequest{Genre: r.URL.Query().Get("genre")}
	return req, validateRequest(&req)
}

func parseBestDeveloperYearRequest(r *http.Request) (BestDeveloperYearRequest, *APIError) {
	year, apiErr := parseIntParam("year", chi.URLParam(r, "year"))
	if apiErr != nil {
		return BestDeveloperYearRequest{}, apiErr
	}
	req := BestDeveloperYearRequest{Year: year}
	return req, validateRequest(&req)
}

func parseDeveloperReviewsRequest(r *http.Request) (DeveloperReviewsRequest, *APIError) {
	req := DeveloperReviewsRequest{Developer: r.URL.Query().Get("developer")}
	return req, validateRequest(&req)
}

func parseRecommendationRequest(r *http.Request) (RecommendationRequest, *APIError) {
	q := r.URL.Query()

	itemID, apiErr := parseInt64Param("item_id", q.Get("item_id"))
	if apiErr != nil {
		return RecommendationRequest{}, apiErr
	}
	k, apiErr := parseOptionalInt("k", q.Get("k"))
	if apiErr != nil {
		return RecommendationRequest{}, apiErr
	}
	exclude, apiErr := parseOptionalBool("exclude_self", q.Get("exclude_self"))
	if apiErr != nil {
		return RecommendationRequest{}, apiErr
	}

	req := RecommendationRequest{ItemID: itemID, K: k, ExcludeSelf: exclude}
	return req, validateRequest(&req)
}
