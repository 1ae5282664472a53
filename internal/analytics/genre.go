// Steamlens - Game Platform Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package analytics

import (
	"bytes"
	"context"
	"sort"

	"github.com/goccy/go-json"

	"github.com/tomtom215/steamlens/internal/dataset"
	"github.com/tomtom215/steamlens/internal/logging"
)

// YearHours is playtime in hours for one release year.
type YearHours struct {
	Year  int     `json:"Year"`
	Hours float64 `json:"Hours"`
}

// GenreTopUser is the user with the most playtime for a genre.
type GenreTopUser struct {
	Genre      string
	UserID     string
	TotalHours float64
	Playtime   []YearHours
}

// MarshalJSON emits {"User with most playtime for Genre <genre>": user, "Playtime": [...]}.
func (g GenreTopUser) MarshalJSON() ([]byte, error) {
	key, err := json.Marshal("User with most playtime for Genre " + g.Genre)
	if err != nil {
		return nil, err
	}
	user, err := json.Marshal(g.UserID)
	if err != nil {
		return nil, err
	}
	playtime := g.Playtime
	if playtime == nil {
		playtime = []YearHours{}
	}
	years, err := json.Marshal(playtime)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	buf.Write(key)
	buf.WriteByte(':')
	buf.Write(user)
	buf.WriteString(`,"Playtime":`)
	buf.Write(years)
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UserForGenre finds the user with the highest total playtime among rows
// whose genre field equals genre exactly. Ties go to the smallest user ID.
// The winner's hours are then broken down by release year, ascending;
// rows with an invalid year count toward the total but not the breakdown.
//
// No matching rows returns a *dataset.NotFoundError carrying close genre
// names as suggestions.
func UserForGenre(ctx context.Context, store *dataset.Store, genre string) (GenreTopUser, error) {
	rows := store.GenrePlaytime(genre)
	if len(rows) == 0 {
		return GenreTopUser{}, &dataset.NotFoundError{
			Kind:        "genre",
			Key:         genre,
			Suggestions: store.SuggestGenres(genre, dataset.DefaultSuggestions),
		}
	}

	totals := make(map[string]float64)
	for _, r := range rows {
		totals[r.UserID] += r.PlaytimeMinutes / 60
	}

	users := make([]string, 0, len(totals))
	for u := range totals {
		users = append(users, u)
	}
	sort.Strings(users)

	top := users[0]
	for _, u := range users[1:] {
		if totals[u] > totals[top] {
			top = u
		}
	}

	byYear := make(map[int]float64)
	for _, r := range rows {
		if r.UserID != top || !r.ReleaseYear.Valid {
			continue
		}
		byYear[r.ReleaseYear.Value] += r.PlaytimeMinutes / 60
	}
	playtime := make([]YearHours, 0, len(byYear))
	for y, h := range byYear {
		playtime = append(playtime, YearHours{Year: y, Hours: h})
	}
	sort.Slice(playtime, func(i, j int) bool { return playtime[i].Year < playtime[j].Year })

	logging.Ctx(ctx).Debug().
		Str("genre", genre).
		Str("user_id", top).
		Float64("hours", totals[top]).
		Int("candidates", len(users)).
		Msg("genre top user")

	return GenreTopUser{
		Genre:      genre,
		UserID:     top,
		TotalHours: totals[top],
		Playtime:   playtime,
	}, nil
}
