// Steamlens - Game Platform Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Column describes one column reported by DESCRIBE.
type Column struct {
	Name string
	Type string
}

// ParquetSource renders a read_parquet table function call for path.
func ParquetSource(path string) string {
	return "read_parquet('" + strings.ReplaceAll(path, "'", "''") + "')"
}

// Describe returns the columns of a Parquet file in file order.
func (db *DB) Describe(ctx context.Context, path string) ([]Column, error) {
	query := "DESCRIBE SELECT * FROM " + ParquetSource(path)

	rows, err := db.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("describe %s: %w", path, err)
	}
	defer closeQuietly(rows)

	names, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("describe %s: %w", path, err)
	}

	var cols []Column
	for rows.Next() {
		// DESCRIBE yields column_name, column_type, null, key, default, extra.
		dest := make([]any, len(names))
		var name, typ sql.NullString
		dest[0], dest[1] = &name, &typ
		for i := 2; i < len(dest); i++ {
			dest[i] = new(any)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("describe %s: %w", path, err)
		}
		cols = append(cols, Column{Name: name.String, Type: typ.String})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("describe %s: %w", path, err)
	}
	return cols, nil
}

// RequireColumns fails with *MissingColumnsError when any of required is
// absent from the Parquet file.
func (db *DB) RequireColumns(ctx context.Context, path string, required ...string) error {
	cols, err := db.Describe(ctx, path)
	if err != nil {
		return err
	}

	present := make(map[string]struct{}, len(cols))
	for _, c := range cols {
		present[c.Name] = struct{}{}
	}

	var missing []string
	for _, name := range required {
		if _, ok := present[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return &MissingColumnsError{Path: path, Columns: missing}
	}
	return nil
}

// ScanParquet runs "SELECT <exprs> FROM read_parquet(path)" and calls scan
// once per row. scan must only call rows.Scan.
func (db *DB) ScanParquet(ctx context.Context, path string, exprs []string, scan func(*sql.Rows) error) (int, error) {
	query := fmt.Sprintf("SELECT %s FROM %s", strings.Join(exprs, ", "), ParquetSource(path))

	rows, err := db.conn.QueryContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("scan %s: %w", path, err)
	}
	defer closeQuietly(rows)

	n := 0
	for rows.Next() {
		if err := scan(rows); err != nil {
			return n, fmt.Errorf("scan %s row %d: %w", path, n, err)
		}
		n++
	}
	if err := rows.Err(); err != nil {
		return n, fmt.Errorf("scan %s: %w", path, err)
	}
	return n, nil
}

// CopyToParquet writes the result of query to path as a Parquet file.
// Used to materialize snapshots from ad-hoc SQL (fixtures, exports).
func (db *DB) CopyToParquet(ctx context.Context, query, path string) error {
	stmt := fmt.Sprintf("COPY (%s) TO '%s' (FORMAT PARQUET)", query, strings.ReplaceAll(path, "'", "''"))
	if _, err := db.conn.ExecContext(ctx, stmt); err != nil {
		return fmt.Errorf("copy to %s: %w", path, err)
	}
	return nil
}
