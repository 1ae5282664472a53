// Steamlens - Game Platform Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/steamlens/internal/config"
	"github.com/tomtom215/steamlens/internal/dataset"
	"github.com/tomtom215/steamlens/internal/recommend"
)

func year(v int) dataset.Year { return dataset.KnownYear(v) }

// testStore holds three reviewers (alice, bob, carol) so recommendation
// percentages divide by 3.
func testStore() *dataset.Store {
	return dataset.NewStore(dataset.Tables{
		Reviews: []dataset.Review{
			{UserID: "alice", Developer: "Valve", ReleaseYear: year(2010), Recommend: true, Sentiment: dataset.SentimentPositive},
			{UserID: "bob", Developer: "Valve", ReleaseYear: year(2010), Recommend: true, Sentiment: dataset.SentimentPositive},
			{UserID: "carol", Developer: "Valve", ReleaseYear: year(2010), Recommend: false, Sentiment: dataset.SentimentNegative},
			{UserID: "alice", Developer: "Bethesda", ReleaseYear: year(2010), Recommend: true, Sentiment: dataset.SentimentPositive},
		},
		DeveloperItems: []dataset.DeveloperItem{
			{Developer: "Valve", ItemID: 1, ReleaseYear: year(2010), Price: 0},
			{Developer: "Valve", ItemID: 2, ReleaseYear: year(2010), Price: 9.99},
		},
		UserExpenses: []dataset.UserExpense{
			{UserID: "alice", Price: 10, ItemsCount: 3},
			{UserID: "alice", Price: 5, ItemsCount: 3},
		},
		GenrePlaytime: []dataset.GenrePlaytime{
			{UserID: "alice", Genres: "Action", PlaytimeMinutes: 120, ReleaseYear: year(2012)},
		},
		Catalog: []dataset.CatalogItem{
			{ItemID: 70, ItemName: "Action Hero", Genres: "Action,Indie"},
			{ItemID: 71, ItemName: "Indie Quest", Genres: "Indie,RPG"},
			{ItemID: 73, ItemName: "Farm Sim", Genres: "Simulation"},
		},
	})
}

// testConfig returns defaults with rate limiting off so tests never trip it.
func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Security.RateLimitDisabled = true
	return cfg
}

func newTestHandler(t *testing.T, cfg *config.Config) *Handler {
	t.Helper()
	store := testStore()
	engine, err := recommend.NewEngine(store, recommend.DefaultConfig(), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	h, err := NewHandler(store, engine, cfg)
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}
	return h
}

func newTestServer(t *testing.T, cfg *config.Config) (*Handler, http.Handler) {
	t.Helper()
	h := newTestHandler(t, cfg)
	return h, NewRouter(h, cfg).SetupChi()
}

func doGet(t *testing.T, srv http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.RemoteAddr = "192.0.2.1:1234"
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) APIResponse {
	t.Helper()
	var resp APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error envelope %q: %v", rec.Body.String(), err)
	}
	if resp.Success || resp.Error == nil {
		t.Fatalf("body %s is not an error envelope", rec.Body.String())
	}
	return resp
}
