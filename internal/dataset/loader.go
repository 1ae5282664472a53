// Steamlens - Game Platform Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package dataset

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/steamlens/internal/config"
	"github.com/tomtom215/steamlens/internal/database"
	"github.com/tomtom215/steamlens/internal/logging"
	"github.com/tomtom215/steamlens/internal/metrics"
)

// Table names used in config, logs and errors.
const (
	TableReviews        = "reviews"
	TableDeveloperItems = "developer_items"
	TableUserExpenses   = "user_expenses"
	TableGenrePlaytime  = "genre_playtime"
	TableCatalog        = "catalog"
)

// tableSpec pairs the columns a snapshot must carry with the projection used
// to read it. TRY_CAST turns unconvertible numbers into NULL instead of
// failing the load; years are read as text so ParseYear decides what counts
// as a year.
type tableSpec struct {
	required []string
	exprs    []string
}

var tableSpecs = map[string]tableSpec{
	TableReviews: {
		required: []string{"user_id", "developer", "release_year", "recommend", "sentiment_analysis"},
		exprs: []string{
			"CAST(user_id AS VARCHAR)",
			"CAST(developer AS VARCHAR)",
			"CAST(release_year AS VARCHAR)",
			"COALESCE(TRY_CAST(recommend AS BOOLEAN), false)",
			"TRY_CAST(sentiment_analysis AS INTEGER)",
		},
	},
	TableDeveloperItems: {
		required: []string{"developer", "item_id", "release_year", "price"},
		exprs: []string{
			"CAST(developer AS VARCHAR)",
			"TRY_CAST(item_id AS BIGINT)",
			"CAST(release_year AS VARCHAR)",
			"TRY_CAST(price AS DOUBLE)",
		},
	},
	TableUserExpenses: {
		required: []string{"user_id", "price", "items_count"},
		exprs: []string{
			"CAST(user_id AS VARCHAR)",
			"COALESCE(TRY_CAST(price AS DOUBLE), 0)",
			"COALESCE(TRY_CAST(items_count AS BIGINT), 0)",
		},
	},
	TableGenrePlaytime: {
		required: []string{"user_id", "genres", "playtime_hours", "release_year"},
		exprs: []string{
			"CAST(user_id AS VARCHAR)",
			"CAST(genres AS VARCHAR)",
			"COALESCE(TRY_CAST(playtime_hours AS DOUBLE), 0)",
			"CAST(release_year AS VARCHAR)",
		},
	},
	TableCatalog: {
		required: []string{"item_id", "item_name", "genres"},
		exprs: []string{
			"TRY_CAST(item_id AS BIGINT)",
			"CAST(item_name AS VARCHAR)",
			"CAST(genres AS VARCHAR)",
		},
	},
}

// Load reads all five snapshots concurrently and builds a Store. Any
// failure (missing file, missing column, corrupt Parquet, deadline) is
// returned wrapped in ErrStartup.
func Load(ctx context.Context, cfg *config.DatasetConfig) (*Store, error) {
	return load(ctx, cfg, newS3ObjectFetcher)
}

func load(ctx context.Context, cfg *config.DatasetConfig, newFetcher fetcherFactory) (*Store, error) {
	start := time.Now()
	if cfg.LoadTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.LoadTimeout)
		defer cancel()
	}

	paths, cleanup, err := localizeSources(ctx, cfg, cfg.SnapshotPaths(), newFetcher)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStartup, err)
	}
	defer cleanup()

	db, err := database.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStartup, err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			logging.Warn().Err(cerr).Msg("Failed to close DuckDB after load")
		}
	}()

	var t Tables
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		t.Reviews, err = loadTable(gctx, db, TableReviews, paths[TableReviews], scanReview)
		return err
	})
	g.Go(func() (err error) {
		t.DeveloperItems, err = loadTable(gctx, db, TableDeveloperItems, paths[TableDeveloperItems], scanDeveloperItem)
		return err
	})
	g.Go(func() (err error) {
		t.UserExpenses, err = loadTable(gctx, db, TableUserExpenses, paths[TableUserExpenses], scanUserExpense)
		return err
	})
	g.Go(func() (err error) {
		t.GenrePlaytime, err = loadTable(gctx, db, TableGenrePlaytime, paths[TableGenrePlaytime], scanGenrePlaytime)
		return err
	})
	g.Go(func() (err error) {
		t.Catalog, err = loadTable(gctx, db, TableCatalog, paths[TableCatalog], scanCatalogItem)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStartup, err)
	}

	store := NewStore(t)
	metrics.RecordDatasetLoaded()
	stats := store.Stats()
	logging.Info().
		Int("reviews", stats.Reviews).
		Int("developer_items", stats.DeveloperItems).
		Int("user_expenses", stats.UserExpenses).
		Int("genre_playtime", stats.GenrePlaytime).
		Int("catalog", stats.Catalog).
		Int("review_users", stats.DistinctReviewUsers).
		Dur("elapsed", time.Since(start)).
		Msg("Dataset loaded")
	return store, nil
}

// rowScanner reads one row and reports how many of its values were
// rejected by coercion.
type rowScanner[T any] func(rows *sql.Rows) (T, int, error)

func loadTable[T any](ctx context.Context, db *database.DB, table, path string, scan rowScanner[T]) (out []T, err error) {
	start := time.Now()
	invalid := 0
	defer func() {
		metrics.RecordTableLoad(table, time.Since(start), len(out), invalid, err)
	}()

	spec := tableSpecs[table]
	if err := db.RequireColumns(ctx, path, spec.required...); err != nil {
		return nil, fmt.Errorf("%s: %w", table, err)
	}

	_, err = db.ScanParquet(ctx, path, spec.exprs, func(rows *sql.Rows) error {
		row, bad, err := scan(rows)
		if err != nil {
			return err
		}
		invalid += bad
		out = append(out, row)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", table, err)
	}

	if invalid > 0 {
		logging.Warn().
			Str("table", table).
			Int("invalid_values", invalid).
			Msg("Snapshot contains values that could not be coerced; they are skipped in aggregations")
	}
	logging.Debug().Str("table", table).Str("path", path).Int("rows", len(out)).Msg("Snapshot read")
	return out, nil
}

// coerceYear converts a nullable text year, counting it when invalid.
func coerceYear(s sql.NullString) (Year, int) {
	if !s.Valid {
		return Year{}, 1
	}
	y, err := ParseYear(s.String)
	if err != nil {
		return Year{}, 1
	}
	return y, 0
}

func scanReview(rows *sql.Rows) (Review, int, error) {
	var userID, developer, year sql.NullString
	var recommend bool
	var sentiment sql.NullInt64
	if err := rows.Scan(&userID, &developer, &year, &recommend, &sentiment); err != nil {
		return Review{}, 0, err
	}
	y, bad := coerceYear(year)
	r := Review{
		UserID:      userID.String,
		Developer:   developer.String,
		ReleaseYear: y,
		Recommend:   recommend,
		Sentiment:   SentimentMissing,

		NullDeveloper: !developer.Valid,
	}
	if sentiment.Valid {
		r.Sentiment = int(sentiment.Int64)
	}
	return r, bad, nil
}

func scanDeveloperItem(rows *sql.Rows) (DeveloperItem, int, error) {
	var developer, year sql.NullString
	var itemID sql.NullInt64
	var price sql.NullFloat64
	if err := rows.Scan(&developer, &itemID, &year, &price); err != nil {
		return DeveloperItem{}, 0, err
	}
	y, bad := coerceYear(year)
	it := DeveloperItem{
		Developer:   developer.String,
		ItemID:      itemID.Int64,
		ReleaseYear: y,
		Price:       math.NaN(),
	}
	if price.Valid {
		it.Price = price.Float64
	}
	return it, bad, nil
}

func scanUserExpense(rows *sql.Rows) (UserExpense, int, error) {
	var userID sql.NullString
	var price float64
	var itemsCount int64
	if err := rows.Scan(&userID, &price, &itemsCount); err != nil {
		return UserExpense{}, 0, err
	}
	return UserExpense{UserID: userID.String, Price: price, ItemsCount: int(itemsCount)}, 0, nil
}

func scanGenrePlaytime(rows *sql.Rows) (GenrePlaytime, int, error) {
	var userID, genres, year sql.NullString
	var minutes float64
	if err := rows.Scan(&userID, &genres, &minutes, &year); err != nil {
		return GenrePlaytime{}, 0, err
	}
	y, bad := coerceYear(year)
	return GenrePlaytime{
		UserID:          userID.String,
		Genres:          genres.String,
		PlaytimeMinutes: minutes,
		ReleaseYear:     y,
	}, bad, nil
}

func scanCatalogItem(rows *sql.Rows) (CatalogItem, int, error) {
	var itemID sql.NullInt64
	var name, genres sql.NullString
	if err := rows.Scan(&itemID, &name, &genres); err != nil {
		return CatalogItem{}, 0, err
	}
	bad := 0
	if !itemID.Valid {
		bad = 1
	}
	return CatalogItem{ItemID: itemID.Int64, ItemName: name.String, Genres: genres.String}, bad, nil
}
