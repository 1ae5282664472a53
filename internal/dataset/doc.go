// Steamlens - Game Platform Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

/*
Package dataset holds the five read-only tables Steamlens answers queries
from and the indexes built over them.

Tables:

  - Reviews: user_id, developer, release_year, recommend, sentiment_analysis
  - DeveloperItems: developer, item_id, release_year, price
  - UserExpenses: user_id, price, items_count
  - GenrePlaytime: user_id, genres, playtime_hours (minutes), release_year
  - Catalog: item_id, item_name, genres

Load reads each table from a Parquet snapshot through DuckDB, in parallel,
after checking that every required column is present. Snapshot paths may be
local files or s3://bucket/key objects, which are downloaded first. Any load
failure is wrapped in ErrStartup; the process is expected to exit.

Release years are coerced with ParseYear. Values that are not whole numbers
are kept as invalid Years and skipped by year-based aggregations.

A Store never changes after NewStore returns, so it can be shared by any
number of goroutines without locking.
*/
package dataset
