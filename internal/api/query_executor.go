// Steamlens - Game Platform Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	lru "github.com/hashicorp/golang-lru"

	"github.com/tomtom215/steamlens/internal/metrics"
)

// CacheHeader reports HIT or MISS for query responses.
const CacheHeader = "X-Cache"

// QueryExecutor encapsulates the common flow of every query handler:
//
//  1. Look up the encoded result by query name and argument
//  2. Run the query on a miss, timing it and recording its outcome
//  3. Map errors to responses; cache only successful results
//  4. Write the JSON body
//
// The store is immutable, so cached entries never go stale and there is no TTL.
type QueryExecutor struct {
	cache *lru.Cache // nil when caching is disabled
}

// QueryFunc runs one query against the store.
type QueryFunc func(ctx context.Context) (interface{}, error)

// NewQueryExecutor creates an executor with an LRU of size entries.
// size <= 0 disables caching.
func NewQueryExecutor(size int) (*QueryExecutor, error) {
	if size <= 0 {
		return &QueryExecutor{}, nil
	}
	c, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("create query cache: %w", err)
	}
	return &QueryExecutor{cache: c}, nil
}

// Execute serves query with argument key through the cache.
func (e *QueryExecutor) Execute(w http.ResponseWriter, r *http.Request, query, key string, fn QueryFunc) {
	cacheKey := query + "\x00" + key

	if e.cache != nil {
		if cached, ok := e.cache.Get(cacheKey); ok {
			if body, ok := cached.([]byte); ok {
				metrics.RecordCacheLookup(query, true)
				w.Header().Set(CacheHeader, "HIT")
				respondRaw(w, r, http.StatusOK, body)
				return
			}
		}
		metrics.RecordCacheLookup(query, false)
	}

	start := time.Now()
	data, err := fn(r.Context())
	metrics.RecordQuery(query, time.Since(start), resultLabel(err))
	if err != nil {
		respondQueryError(w, r, err)
		return
	}

	body, err := json.Marshal(data)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, ErrCodeInternalError, "Failed to encode response", nil, err)
		return
	}

	if e.cache != nil {
		e.cache.Add(cacheKey, body)
		metrics.CacheEntries.Set(float64(e.cache.Len()))
		w.Header().Set(CacheHeader, "MISS")
	}
	respondRaw(w, r, http.StatusOK, body)
}

// Len returns the number of cached results.
func (e *QueryExecutor) Len() int {
	if e.cache == nil {
		return 0
	}
	return e.cache.Len()
}
