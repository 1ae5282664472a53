// Steamlens - Game Platform Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package recommend

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/steamlens/internal/dataset"
	"github.com/tomtom215/steamlens/internal/logging"
	"github.com/tomtom215/steamlens/internal/metrics"
)

// ctxCheckInterval is how many catalog rows are scored between
// cancellation checks.
const ctxCheckInterval = 1024

// Engine ranks catalog games by genre similarity to a source game.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	store  *dataset.Store
	config Config
	logger zerolog.Logger
}

// NewEngine creates an engine over store.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewEngine(store *dataset.Store, cfg Config, logger zerolog.Logger) (*Engine, error) {
	if store == nil {
		return nil, fmt.Errorf("recommend: nil store")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("recommend: %w", err)
	}
	e := &Engine{
		store:  store,
		config: cfg,
		logger: logger.With().Str("component", "recommend").Logger(),
	}
	e.logger.Info().
		Int("catalog_rows", len(store.Catalog())).
		Int("top_k", cfg.TopK).
		Bool("exclude_source", cfg.ExcludeSource).
		Msg("Recommendation engine ready")
	return e, nil
}

// Config returns the engine defaults.
func (e *Engine) Config() Config {
	return e.config
}

type scored struct {
	row        int
	similarity float64
}

// Recommend ranks games similar to req.ItemID.
//
// The reference genre set is the union of the split genres of every
// catalog row carrying the id, in first-appearance order. Every row sharing
// at least one reference genre is a candidate, including the source itself
// unless excluded. Candidates and the source's first row are turned into
// binary vectors over the reference set, a slot set when the genre occurs
// in the row's raw genre field, and ranked by cosine similarity,
// highest first; equal scores keep catalog order.
//
// An id absent from the catalog returns a *dataset.NotFoundError.
func (e *Engine) Recommend(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()

	k := req.K
	if k == 0 {
		k = e.config.TopK
	}
	if k < 1 || k > MaxK {
		return nil, fmt.Errorf("k must be between 1 and %d, got %d", MaxK, k)
	}
	exclude := e.config.ExcludeSource
	if req.ExcludeSource != nil {
		exclude = *req.ExcludeSource
	}

	rows := e.store.CatalogRows(req.ItemID)
	if len(rows) == 0 {
		return nil, &dataset.NotFoundError{Kind: "item", Key: strconv.FormatInt(req.ItemID, 10)}
	}
	catalog := e.store.Catalog()
	source := catalog[rows[0]]

	var reference []string
	seen := make(map[string]struct{})
	for _, i := range rows {
		for _, g := range e.store.CatalogGenres(i) {
			if _, dup := seen[g]; !dup {
				seen[g] = struct{}{}
				reference = append(reference, g)
			}
		}
	}
	space := newGenreSpace(reference)
	target := space.vector(source.Genres)

	var candidates []scored
	for i, item := range catalog {
		if i%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		if exclude && item.ItemID == req.ItemID {
			continue
		}
		if !space.intersects(e.store.CatalogGenres(i)) {
			continue
		}
		candidates = append(candidates, scored{
			row:        i,
			similarity: cosineSimilarity(space.vector(item.Genres), target),
		})
	}

	sort.SliceStable(candidates, func(a, b int) bool {
		return candidates[a].similarity > candidates[b].similarity
	})

	top := candidates
	if len(top) > k {
		top = top[:k]
	}
	items := make([]Recommendation, len(top))
	for i, c := range top {
		items[i] = Recommendation{
			ItemID:     catalog[c.row].ItemID,
			ItemName:   catalog[c.row].ItemName,
			Similarity: c.similarity,
		}
	}

	metrics.RecommendCandidates.Observe(float64(len(candidates)))
	logging.Ctx(ctx).Debug().
		Int64("item_id", req.ItemID).
		Strs("genres", reference).
		Int("candidates", len(candidates)).
		Int("returned", len(items)).
		Dur("elapsed", time.Since(start)).
		Msg("recommendation")

	return &Result{
		SourceID:   source.ItemID,
		SourceName: source.ItemName,
		Genres:     reference,
		Candidates: len(candidates),
		Items:      items,
	}, nil
}
