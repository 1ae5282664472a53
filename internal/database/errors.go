// Steamlens - Game Platform Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package database

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrMissingColumn is returned when a snapshot lacks a required column.
var ErrMissingColumn = errors.New("missing column")

// MissingColumnsError lists every required column absent from a snapshot.
type MissingColumnsError struct {
	Path    string
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("%s: missing columns %s", e.Path, strings.Join(e.Columns, ", "))
}

// Is makes errors.Is(err, ErrMissingColumn) succeed.
func (e *MissingColumnsError) Is(target error) bool {
	return target == ErrMissingColumn
}

// closeQuietly closes a resource and explicitly ignores any error.
// Use this for cleanup in error paths where Close() errors are not actionable.
func closeQuietly(closer io.Closer) {
	if closer != nil {
		_ = closer.Close()
	}
}
