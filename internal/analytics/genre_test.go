// Steamlens - Game Platform Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package analytics

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/steamlens/internal/dataset"
)

func TestUserForGenre(t *testing.T) {
	got, err := UserForGenre(context.Background(), testStore(), "Action")
	if err != nil {
		t.Fatalf("UserForGenre(Action) error = %v", err)
	}

	if got.UserID != "alice" {
		t.Errorf("UserID = %q, want alice", got.UserID)
	}
	if got.TotalHours != 5 {
		t.Errorf("TotalHours = %v, want 5", got.TotalHours)
	}
	want := []YearHours{{Year: 2010, Hours: 1}, {Year: 2012, Hours: 2.5}}
	if len(got.Playtime) != len(want) {
		t.Fatalf("Playtime = %+v, want %+v", got.Playtime, want)
	}
	for i := range want {
		if got.Playtime[i] != want[i] {
			t.Errorf("Playtime[%d] = %+v, want %+v", i, got.Playtime[i], want[i])
		}
	}
}

func TestUserForGenre_ExactMatchOnly(t *testing.T) {
	got, err := UserForGenre(context.Background(), testStore(), "Action,Indie")
	if err != nil {
		t.Fatal(err)
	}
	if got.UserID != "carol" {
		t.Errorf("UserID = %q, want carol", got.UserID)
	}
}

func TestUserForGenre_TieGoesToSmallestUserID(t *testing.T) {
	got, err := UserForGenre(context.Background(), testStore(), "Strategy")
	if err != nil {
		t.Fatal(err)
	}
	if got.UserID != "amy" {
		t.Errorf("UserID = %q, want amy", got.UserID)
	}
}

func TestUserForGenre_Maximality(t *testing.T) {
	store := testStore()
	got, err := UserForGenre(context.Background(), store, "Action")
	if err != nil {
		t.Fatal(err)
	}

	totals := map[string]float64{}
	for _, r := range store.GenrePlaytime("Action") {
		totals[r.UserID] += r.PlaytimeMinutes / 60
	}
	for user, hours := range totals {
		if hours > got.TotalHours {
			t.Errorf("user %s has %v hours, more than winner %v", user, hours, got.TotalHours)
		}
	}
}

func TestUserForGenre_YearSumMatchesTotal(t *testing.T) {
	store := dataset.NewStore(dataset.Tables{
		GenrePlaytime: []dataset.GenrePlaytime{
			{UserID: "u1", Genres: "RPG", PlaytimeMinutes: 100, ReleaseYear: y(2001)},
			{UserID: "u1", Genres: "RPG", PlaytimeMinutes: 250, ReleaseYear: y(2003)},
			{UserID: "u1", Genres: "RPG", PlaytimeMinutes: 17, ReleaseYear: y(2001)},
			{UserID: "u2", Genres: "RPG", PlaytimeMinutes: 10, ReleaseYear: y(2001)},
		},
	})
	got, err := UserForGenre(context.Background(), store, "RPG")
	if err != nil {
		t.Fatal(err)
	}
	var sum float64
	for _, p := range got.Playtime {
		sum += p.Hours
	}
	if math.Abs(sum-got.TotalHours) > 1e-9 {
		t.Errorf("sum of yearly hours %v != total %v", sum, got.TotalHours)
	}
}

func TestUserForGenre_NotFound(t *testing.T) {
	_, err := UserForGenre(context.Background(), testStore(), "Actio")
	if !errors.Is(err, dataset.ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
	var nf *dataset.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("error type = %T", err)
	}
	if nf.Kind != "genre" || len(nf.Suggestions) == 0 || nf.Suggestions[0] != "Action" {
		t.Errorf("NotFoundError = %+v, want genre with Action suggested first", nf)
	}
}

func TestGenreTopUser_MarshalJSON(t *testing.T) {
	g := GenreTopUser{
		Genre:    "Indie",
		UserID:   "u7",
		Playtime: []YearHours{{Year: 2014, Hours: 1.5}, {Year: 2015, Hours: 2}},
	}
	b, err := json.Marshal(g)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"User with most playtime for Genre Indie":"u7","Playtime":[{"Year":2014,"Hours":1.5},{"Year":2015,"Hours":2}]}`
	if string(b) != want {
		t.Errorf("JSON = %s, want %s", b, want)
	}

	b, err = json.Marshal(GenreTopUser{Genre: "RPG", UserID: "u1"})
	if err != nil {
		t.Fatal(err)
	}
	if want := `{"User with most playtime for Genre RPG":"u1","Playtime":[]}`; string(b) != want {
		t.Errorf("JSON = %s, want %s", b, want)
	}
}
