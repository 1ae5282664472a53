// Steamlens - Game Platform Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

// Package logging provides centralized zerolog-based structured logging for Steamlens.
//
// JSON output is the default; console output is meant for local runs and the
// CLI. A global logger is configured once with Init and reached through the
// level helpers (Info, Debug, ...) or through Ctx, which adds the request and
// correlation IDs stored by the HTTP middleware.
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json", Version: version})
//
//	logging.Info().Int("reviews", n).Msg("Dataset loaded")
//	logging.Ctx(ctx).Debug().Str("genre", g).Msg("genre top user")
//
// # Suture integration
//
// NewSlogLogger returns an *slog.Logger that writes through zerolog, which is
// what sutureslog expects for supervisor event hooks.
//
// Always terminate log chains with .Msg() or .Send(); an unterminated event
// is never written.
package logging
