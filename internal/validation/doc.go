// Steamlens - Game Platform Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

// Package validation provides struct validation using go-playground/validator v10.
//
// A thread-safe singleton validator caches struct metadata and carries two
// custom tags:
//
//   - notblank: string is non-empty after trimming whitespace
//   - printable: valid UTF-8 without control characters
//
// Field names in errors come from the `query` struct tag, so a failure on
//
//	type developerQuery struct {
//	    Developer string `query:"developer_name" validate:"required,notblank,max=256"`
//	}
//
// reads "developer_name is required". Validate returns Errors, whose Error
// and Details fill the VALIDATION_ERROR response the API sends with status 400.
package validation
