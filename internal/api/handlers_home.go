// Steamlens - Game Platform Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package api

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/tomtom215/steamlens/internal/dataset"
	"github.com/tomtom215/steamlens/internal/logging"
)

//go:embed templates/home.html
var templateFS embed.FS

var homeTemplate = template.Must(template.ParseFS(templateFS, "templates/home.html"))

type homeEndpoint struct {
	Path        string
	Description string
}

type homePage struct {
	Title     string
	DocsURL   string
	Endpoints []homeEndpoint
	Stats     dataset.Stats
}

var homeEndpoints = []homeEndpoint{
	{"/developer?developer_name=", "Games released and share of free games per year"},
	{"/userdata?user_id=", "Money spent, recommendation share and items owned"},
	{"/UserForGenre?genre=", "User with the most playtime in a genre, by year"},
	{"/best_developer_year/{year}", "Top three most recommended developers of a year"},
	{"/dev_reviews_analysis?developer=", "Negative and positive review counts"},
	{"/game_recommendation?item_id=", "Five games with similar genres"},
}

// Home renders the HTML landing page.
//
// @Summary Landing page
// @Tags Core
// @Produce html
// @Success 200 {string} string "HTML page"
// @Router / [get]
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	err := homeTemplate.Execute(&buf, homePage{
		Title:     "Steamlens: Find Your Fun",
		DocsURL:   "/docs/index.html",
		Endpoints: homeEndpoints,
		Stats:     h.store.Stats(),
	})
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to render home page")
		respondError(w, r, http.StatusInternalServerError, ErrCodeInternalError, "Failed to render page", nil, nil)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		logging.Ctx(r.Context()).Debug().Err(err).Msg("Failed to write home page")
	}
}
