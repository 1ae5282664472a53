// Steamlens - Game Platform Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

/*
Package analytics implements the aggregate queries served by Steamlens.

Each query is a pure function over a *dataset.Store: it reads the store's
indexes, groups and counts in memory, and returns a plain value ready for
JSON encoding. Queries never modify the store, so they may run
concurrently without locking.

Queries:

  - DeveloperStats: games released and share of free games per year
  - UserData: money spent, library size and recommendation ratio for a user
  - UserForGenre: the user with the most playtime for a genre, by year
  - BestDeveloperYear: the three developers with most positive recommended reviews in a year
  - DeveloperReviews: negative and positive review counts for a developer

Queries that need at least one row to produce a value (UserData,
UserForGenre) return a *dataset.NotFoundError. Queries with a natural empty
result (DeveloperStats, BestDeveloperYear, DeveloperReviews) never fail.
*/
package analytics
