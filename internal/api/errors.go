// Steamlens - Game Platform Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/tomtom215/steamlens/internal/dataset"
	"github.com/tomtom215/steamlens/internal/metrics"
)

// notFoundDetails is the details payload of a NOT_FOUND response.
type notFoundDetails struct {
	Kind        string   `json:"kind"`
	Key         string   `json:"key,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// resultLabel maps a query error onto its metrics outcome label.
func resultLabel(err error) string {
	switch {
	case err == nil:
		return metrics.ResultOK
	case errors.Is(err, dataset.ErrNotFound):
		return metrics.ResultNotFound
	default:
		return metrics.ResultError
	}
}

// respondQueryError translates a query error into an HTTP response.
func respondQueryError(w http.ResponseWriter, r *http.Request, err error) {
	var nf *dataset.NotFoundError
	switch {
	case errors.As(err, &nf):
		respondError(w, r, http.StatusNotFound, ErrCodeNotFound, capitalize(nf.Error()),
			notFoundDetails{Kind: nf.Kind, Key: nf.Key, Suggestions: nf.Suggestions}, nil)
	case errors.Is(err, dataset.ErrNotFound):
		respondError(w, r, http.StatusNotFound, ErrCodeNotFound, "Not found", nil, nil)
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "Request timed out", nil, err)
	default:
		respondError(w, r, http.StatusInternalServerError, ErrCodeInternalError, "Internal server error", nil, err)
	}
}

func capitalize(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
