// Steamlens - Game Platform Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a query key has no matching rows.
	ErrNotFound = errors.New("not found")

	// ErrInvalidData marks a value that cannot be coerced to its column type.
	// Such values are skipped during aggregation.
	ErrInvalidData = errors.New("invalid data")

	// ErrStartup wraps every failure that prevents the store from loading.
	ErrStartup = errors.New("dataset startup failed")
)

// NotFoundError describes a missing key and, when available, close matches
// from the store's vocabularies.
type NotFoundError struct {
	Kind        string // "user", "genre", "item", "reviews"
	Key         string
	Suggestions []string
}

func (e *NotFoundError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s not found", e.Kind)
	}
	return fmt.Sprintf("%s %q not found", e.Kind, e.Key)
}

// Is makes errors.Is(err, ErrNotFound) succeed.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// IsNotFound reports whether err is or wraps ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
