// Steamlens - Game Platform Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package dataset

import (
	"context"
	"errors"
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/tomtom215/steamlens/internal/config"
	"github.com/tomtom215/steamlens/internal/database"
)

// fixtureQueries materialize a small consistent dataset. release_year is
// stored as text in reviews to exercise coercion.
var fixtureQueries = map[string]string{
	TableReviews: `SELECT * FROM (VALUES
		('u1', 'Valve', '2010', true, 2),
		('u2', 'Valve', '2010.0', true, 2),
		('u3', 'Valve', 'Not specified', false, 0),
		('u1', 'Bethesda', '2011', true, 1),
		('u3', NULL, '2012', true, 2)
	) AS t(user_id, developer, release_year, recommend, sentiment_analysis)`,
	TableDeveloperItems: `SELECT * FROM (VALUES
		('Valve', 10, 2007, 0.0),
		('Valve', 20, 2007, 9.99),
		('Valve', 30, 2011, NULL)
	) AS t(developer, item_id, release_year, price)`,
	TableUserExpenses: `SELECT * FROM (VALUES
		('u1', 4.99, 12),
		('u1', 5.01, 12)
	) AS t(user_id, price, items_count)`,
	TableGenrePlaytime: `SELECT * FROM (VALUES
		('u1', 'Action', 600.0, 2012.0),
		('u2', 'Action', 60.0, NULL)
	) AS t(user_id, genres, playtime_hours, release_year)`,
	TableCatalog: `SELECT * FROM (VALUES
		(70, 'Half-Life', 'Action'),
		(400, 'Portal', 'Action,Puzzle')
	) AS t(item_id, item_name, genres)`,
}

// writeSnapshots writes every fixture table into dir and returns a dataset
// config pointing at them. overrides replace individual fixture queries.
func writeSnapshots(t *testing.T, dir string, overrides map[string]string) *config.DatasetConfig {
	t.Helper()

	cfg := &config.DatasetConfig{MaxMemory: "256MB", Threads: 1, LoadTimeout: time.Minute}
	db, err := database.New(cfg)
	if err != nil {
		t.Fatalf("database.New() error = %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	paths := make(map[string]string, len(fixtureQueries))
	for table, q := range fixtureQueries {
		if o, ok := overrides[table]; ok {
			q = o
		}
		p := filepath.Join(dir, table+".parquet")
		if err := db.CopyToParquet(ctx, q, p); err != nil {
			t.Fatalf("write %s fixture: %v", table, err)
		}
		paths[table] = p
	}

	cfg.ReviewsPath = paths[TableReviews]
	cfg.DeveloperItemsPath = paths[TableDeveloperItems]
	cfg.UserExpensesPath = paths[TableUserExpenses]
	cfg.GenrePlaytimePath = paths[TableGenrePlaytime]
	cfg.CatalogPath = paths[TableCatalog]
	return cfg
}

func TestLoad(t *testing.T) {
	cfg := writeSnapshots(t, t.TempDir(), nil)

	store, err := Load(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	stats := store.Stats()
	if stats.Reviews != 5 || stats.DeveloperItems != 3 || stats.UserExpenses != 2 ||
		stats.GenrePlaytime != 2 || stats.Catalog != 2 {
		t.Errorf("Stats() = %+v", stats)
	}
	if stats.DistinctReviewUsers != 3 {
		t.Errorf("DistinctReviewUsers = %d, want 3", stats.DistinctReviewUsers)
	}

	// "2010.0" coerces; "Not specified" does not.
	if got := len(store.ReviewsByYear(2010)); got != 2 {
		t.Errorf("ReviewsByYear(2010) = %d, want 2", got)
	}
	for _, r := range store.ReviewsByDeveloper("Valve") {
		if r.UserID == "u3" && r.ReleaseYear.Valid {
			t.Error("non-numeric year should be invalid")
		}
	}

	nullDev := store.ReviewsByYear(2012)
	if len(nullDev) != 1 || !nullDev[0].NullDeveloper || nullDev[0].Developer != "" {
		t.Errorf("NULL developer review = %+v", nullDev)
	}
	if got := len(store.ReviewsByDeveloper("")); got != 0 {
		t.Errorf("ReviewsByDeveloper(\"\") = %d, want 0", got)
	}

	items := store.DeveloperItems("Valve")
	if len(items) != 3 || !math.IsNaN(items[2].Price) {
		t.Errorf("NULL price should load as NaN, got %+v", items)
	}

	first, ok := store.FirstExpense("u1")
	if !ok || first.ItemsCount != 12 {
		t.Errorf("FirstExpense(u1) = %+v, %v", first, ok)
	}

	pt := store.GenrePlaytime("Action")
	if len(pt) != 2 || pt[0].ReleaseYear != KnownYear(2012) || pt[1].ReleaseYear.Valid {
		t.Errorf("GenrePlaytime(Action) = %+v", pt)
	}

	if item, ok := store.CatalogItem(400); !ok || item.ItemName != "Portal" {
		t.Errorf("CatalogItem(400) = %+v, %v", item, ok)
	}
}

func TestLoad_MissingColumn(t *testing.T) {
	cfg := writeSnapshots(t, t.TempDir(), map[string]string{
		TableCatalog: `SELECT 70 AS item_id, 'Half-Life' AS item_name`,
	})

	_, err := Load(context.Background(), cfg)
	if !errors.Is(err, ErrStartup) {
		t.Fatalf("Load() error = %v, want ErrStartup", err)
	}
	if !errors.Is(err, database.ErrMissingColumn) {
		t.Errorf("Load() error = %v, want it to wrap ErrMissingColumn", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	cfg := writeSnapshots(t, t.TempDir(), nil)
	cfg.UserExpensesPath = filepath.Join(t.TempDir(), "absent.parquet")

	if _, err := Load(context.Background(), cfg); !errors.Is(err, ErrStartup) {
		t.Fatalf("Load() error = %v, want ErrStartup", err)
	}
}

func TestLoad_CorruptFile(t *testing.T) {
	cfg := writeSnapshots(t, t.TempDir(), nil)
	bad := filepath.Join(t.TempDir(), "corrupt.parquet")
	if err := os.WriteFile(bad, []byte("definitely not parquet"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg.ReviewsPath = bad

	if _, err := Load(context.Background(), cfg); !errors.Is(err, ErrStartup) {
		t.Fatalf("Load() error = %v, want ErrStartup", err)
	}
}

// fileFetcher serves "s3" objects from local files keyed by bucket/key.
type fileFetcher struct {
	files map[string]string
	calls int
}

func (f *fileFetcher) Download(_ context.Context, bucket, key string, w io.Writer) error {
	f.calls++
	src, ok := f.files[bucket+"/"+key]
	if !ok {
		return errors.New("NoSuchKey")
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	_, err = io.Copy(w, in)
	return err
}

func TestLoad_S3Source(t *testing.T) {
	cfg := writeSnapshots(t, t.TempDir(), nil)
	fetcher := &fileFetcher{files: map[string]string{"snapshots/catalog.parquet": cfg.CatalogPath}}
	cfg.CatalogPath = "s3://snapshots/catalog.parquet"
	cfg.S3.DownloadDir = t.TempDir()

	store, err := load(context.Background(), cfg, func(context.Context, config.S3Config) (ObjectFetcher, error) {
		return fetcher, nil
	})
	if err != nil {
		t.Fatalf("load() error = %v", err)
	}
	if fetcher.calls != 1 {
		t.Errorf("fetcher called %d times, want 1", fetcher.calls)
	}
	if store.Stats().Catalog != 2 {
		t.Errorf("catalog rows = %d, want 2", store.Stats().Catalog)
	}
	if _, err := os.Stat(filepath.Join(cfg.S3.DownloadDir, TableCatalog+".parquet")); err != nil {
		t.Errorf("downloaded snapshot missing: %v", err)
	}
}

func TestLoad_S3MissingObject(t *testing.T) {
	cfg := writeSnapshots(t, t.TempDir(), nil)
	cfg.ReviewsPath = "s3://snapshots/nope.parquet"

	_, err := load(context.Background(), cfg, func(context.Context, config.S3Config) (ObjectFetcher, error) {
		return &fileFetcher{}, nil
	})
	if !errors.Is(err, ErrStartup) {
		t.Fatalf("load() error = %v, want ErrStartup", err)
	}
}

func TestLoad_LocalPathsSkipS3(t *testing.T) {
	cfg := writeSnapshots(t, t.TempDir(), nil)

	_, err := load(context.Background(), cfg, func(context.Context, config.S3Config) (ObjectFetcher, error) {
		t.Fatal("fetcher factory must not be called for local paths")
		return nil, nil
	})
	if err != nil {
		t.Fatalf("load() error = %v", err)
	}
}

func TestParseS3URL(t *testing.T) {
	tests := []struct {
		in     string
		bucket string
		key    string
		ok     bool
	}{
		{"s3://bucket/key.parquet", "bucket", "key.parquet", true},
		{"s3://bucket/dir/key.parquet", "bucket", "dir/key.parquet", true},
		{"s3://bucket", "", "", false},
		{"s3:///key", "", "", false},
		{"/local/file.parquet", "", "", false},
	}
	for _, tt := range tests {
		bucket, key, ok := ParseS3URL(tt.in)
		if bucket != tt.bucket || key != tt.key || ok != tt.ok {
			t.Errorf("ParseS3URL(%q) = (%q, %q, %v), want (%q, %q, %v)",
				tt.in, bucket, key, ok, tt.bucket, tt.key, tt.ok)
		}
	}
}
