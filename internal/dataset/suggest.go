// Steamlens - Game Platform Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package dataset

import (
	"github.com/sahilm/fuzzy"
)

// DefaultSuggestions is the number of "did you mean" entries attached to a
// NotFoundError.
const DefaultSuggestions = 5

// Len implements fuzzy.Source.
func (v vocabulary) Len() int { return len(v) }

// String implements fuzzy.Source.
func (v vocabulary) String(i int) string { return v[i] }

// suggest returns up to limit vocabulary entries that fuzzily match query,
// best match first.
func (v vocabulary) suggest(query string, limit int) []string {
	if query == "" || len(v) == 0 || limit <= 0 {
		return nil
	}
	matches := fuzzy.FindFrom(query, v)
	if len(matches) > limit {
		matches = matches[:limit]
	}
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, v[m.Index])
	}
	return out
}

// SuggestDevelopers returns developer names close to query.
func (s *Store) SuggestDevelopers(query string, limit int) []string {
	return s.developers.suggest(query, limit)
}

// SuggestGenres returns genre fields close to query.
func (s *Store) SuggestGenres(query string, limit int) []string {
	return s.genres.suggest(query, limit)
}
