// Steamlens - Game Platform Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

// Package recommend implements content-based game recommendation over the
// catalog snapshot.
//
// # Algorithm
//
// For a source item the engine builds a reference genre set from every
// catalog row carrying the item id. Catalog rows sharing at least one
// reference genre become candidates. Each candidate and the source are
// represented as binary vectors over the reference set and ranked by cosine
// similarity. Genre matching is by exact tag after splitting on commas and
// trimming whitespace.
//
// The source item is a candidate of itself unless Request.ExcludeSource or
// Config.ExcludeSource says otherwise.
//
// # Usage
//
//	engine, err := recommend.NewEngine(store, recommend.DefaultConfig(), logging.Logger())
//	if err != nil {
//	    return err
//	}
//	res, err := engine.Recommend(ctx, recommend.Request{ItemID: 70})
//
// # Thread Safety
//
// Engine reads an immutable dataset.Store and is safe for concurrent use.
package recommend
