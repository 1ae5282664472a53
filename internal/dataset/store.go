// Steamlens - Game Platform Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package dataset

import (
	"sort"
)

// Store is the immutable, in-memory view of all five snapshots plus the
// lookup indexes built once at construction.
//
// Every slice returned by a Store method shares memory with the store and
// must not be modified. All methods are safe for concurrent use.
type Store struct {
	tables Tables

	reviewsByDeveloper map[string][]Review
	reviewsByUser      map[string][]Review
	reviewsByYear      map[int][]Review
	reviewUsers        int

	itemsByDeveloper map[string][]DeveloperItem
	expensesByUser   map[string][]UserExpense
	playtimeByGenre  map[string][]GenrePlaytime

	catalogGenres [][]string
	catalogByID   map[int64][]int

	developers vocabulary
	genres     vocabulary
}

// NewStore indexes t. The store takes ownership of the slices in t; callers
// must not modify them afterwards.
func NewStore(t Tables) *Store {
	s := &Store{
		tables:             t,
		reviewsByDeveloper: make(map[string][]Review),
		reviewsByUser:      make(map[string][]Review),
		reviewsByYear:      make(map[int][]Review),
		itemsByDeveloper:   make(map[string][]DeveloperItem),
		expensesByUser:     make(map[string][]UserExpense),
		playtimeByGenre:    make(map[string][]GenrePlaytime),
		catalogGenres:      make([][]string, len(t.Catalog)),
		catalogByID:        make(map[int64][]int),
	}

	developers := make(map[string]struct{})
	for _, r := range t.Reviews {
		if !r.NullDeveloper {
			s.reviewsByDeveloper[r.Developer] = append(s.reviewsByDeveloper[r.Developer], r)
		}
		s.reviewsByUser[r.UserID] = append(s.reviewsByUser[r.UserID], r)
		if r.ReleaseYear.Valid {
			s.reviewsByYear[r.ReleaseYear.Value] = append(s.reviewsByYear[r.ReleaseYear.Value], r)
		}
		if r.Developer != "" {
			developers[r.Developer] = struct{}{}
		}
	}
	s.reviewUsers = len(s.reviewsByUser)

	for _, it := range t.DeveloperItems {
		s.itemsByDeveloper[it.Developer] = append(s.itemsByDeveloper[it.Developer], it)
		if it.Developer != "" {
			developers[it.Developer] = struct{}{}
		}
	}

	for _, e := range t.UserExpenses {
		s.expensesByUser[e.UserID] = append(s.expensesByUser[e.UserID], e)
	}

	genres := make(map[string]struct{})
	for _, p := range t.GenrePlaytime {
		s.playtimeByGenre[p.Genres] = append(s.playtimeByGenre[p.Genres], p)
		if p.Genres != "" {
			genres[p.Genres] = struct{}{}
		}
	}

	for i, c := range t.Catalog {
		s.catalogGenres[i] = SplitGenres(c.Genres)
		s.catalogByID[c.ItemID] = append(s.catalogByID[c.ItemID], i)
	}

	s.developers = newVocabulary(developers)
	s.genres = newVocabulary(genres)
	return s
}

// Stats returns table sizes and vocabulary counts.
func (s *Store) Stats() Stats {
	return Stats{
		Reviews:             len(s.tables.Reviews),
		DeveloperItems:      len(s.tables.DeveloperItems),
		UserExpenses:        len(s.tables.UserExpenses),
		GenrePlaytime:       len(s.tables.GenrePlaytime),
		Catalog:             len(s.tables.Catalog),
		DistinctReviewUsers: s.reviewUsers,
		Developers:          len(s.developers),
		Genres:              len(s.genres),
	}
}

// ReviewsByDeveloper returns the developer's reviews in snapshot order.
func (s *Store) ReviewsByDeveloper(developer string) []Review {
	return s.reviewsByDeveloper[developer]
}

// ReviewsByUser returns the user's reviews in snapshot order.
func (s *Store) ReviewsByUser(userID string) []Review {
	return s.reviewsByUser[userID]
}

// ReviewsByYear returns reviews whose release year coerces to year.
func (s *Store) ReviewsByYear(year int) []Review {
	return s.reviewsByYear[year]
}

// DistinctReviewUsers is the number of distinct user IDs across all reviews.
func (s *Store) DistinctReviewUsers() int {
	return s.reviewUsers
}

// DeveloperItems returns the developer's catalog rows in snapshot order.
func (s *Store) DeveloperItems(developer string) []DeveloperItem {
	return s.itemsByDeveloper[developer]
}

// UserExpenses returns the user's expense rows in snapshot order.
func (s *Store) UserExpenses(userID string) []UserExpense {
	return s.expensesByUser[userID]
}

// FirstExpense returns the first expense row for the user. Its ItemsCount
// is the authoritative library size.
func (s *Store) FirstExpense(userID string) (UserExpense, bool) {
	rows := s.expensesByUser[userID]
	if len(rows) == 0 {
		return UserExpense{}, false
	}
	return rows[0], true
}

// GenrePlaytime returns playtime rows whose genre field equals genre exactly.
func (s *Store) GenrePlaytime(genre string) []GenrePlaytime {
	return s.playtimeByGenre[genre]
}

// Catalog returns every recommendation catalog row.
func (s *Store) Catalog() []CatalogItem {
	return s.tables.Catalog
}

// CatalogGenres returns the pre-split genre set of catalog row i.
func (s *Store) CatalogGenres(i int) []string {
	return s.catalogGenres[i]
}

// CatalogRows returns the indexes of every catalog row carrying itemID.
func (s *Store) CatalogRows(itemID int64) []int {
	return s.catalogByID[itemID]
}

// CatalogItem returns the first catalog row carrying itemID.
func (s *Store) CatalogItem(itemID int64) (CatalogItem, bool) {
	rows := s.catalogByID[itemID]
	if len(rows) == 0 {
		return CatalogItem{}, false
	}
	return s.tables.Catalog[rows[0]], true
}

// Developers returns the sorted developer vocabulary.
func (s *Store) Developers() []string {
	return s.developers
}

// Genres returns the sorted vocabulary of genre fields in the playtime table.
func (s *Store) Genres() []string {
	return s.genres
}

// vocabulary is a sorted list of distinct names.
type vocabulary []string

func newVocabulary(set map[string]struct{}) vocabulary {
	v := make(vocabulary, 0, len(set))
	for name := range set {
		v = append(v, name)
	}
	sort.Strings(v)
	return v
}
