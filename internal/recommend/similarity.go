// Steamlens - Game Platform Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package recommend

import (
	"math"
	"strings"
)

// genreSpace maps each genre of the reference set to its vector position.
type genreSpace struct {
	genres []string
	index  map[string]int
}

func newGenreSpace(genres []string) genreSpace {
	idx := make(map[string]int, len(genres))
	for i, g := range genres {
		idx[g] = i
	}
	return genreSpace{genres: genres, index: idx}
}

// intersects reports whether any of tags is in the space.
func (s genreSpace) intersects(tags []string) bool {
	for _, t := range tags {
		if _, ok := s.index[t]; ok {
			return true
		}
	}
	return false
}

// vector returns the binary vector of the space over a raw genre field.
// A slot is set when its genre occurs anywhere in the field, so "Action"
// also matches "Action RPG".
func (s genreSpace) vector(field string) []float64 {
	v := make([]float64, len(s.genres))
	for i, g := range s.genres {
		if strings.Contains(field, g) {
			v[i] = 1
		}
	}
	return v
}

// cosineSimilarity computes cosine similarity between two vectors.
// Zero vectors and mismatched lengths yield 0.
func cosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
