// Steamlens - Game Platform Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

/*
Package database wraps an in-memory DuckDB instance used to read the Parquet
snapshots Steamlens serves.

DuckDB is only involved at startup: the dataset package validates each
snapshot's schema with Describe/RequireColumns and streams rows out with
ScanParquet. After loading, the connection is closed and every query runs
against plain Go slices.

# Usage

	db, err := database.New(&cfg.Dataset)
	if err != nil {
	    return err
	}
	defer db.Close()

	if err := db.RequireColumns(ctx, path, "user_id", "price"); err != nil {
	    return err
	}
	n, err := db.ScanParquet(ctx, path, []string{"user_id", "price"}, func(rows *sql.Rows) error {
	    return rows.Scan(&userID, &price)
	})
*/
package database
