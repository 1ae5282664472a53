// Steamlens - Game Platform Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package recommend

import (
	"bytes"

	"github.com/goccy/go-json"
)

// Request asks for games similar to ItemID.
type Request struct {
	ItemID int64

	// K is the number of items to return. Zero means Config.TopK.
	K int

	// ExcludeSource drops every catalog row carrying ItemID from the
	// candidates. Nil means Config.ExcludeSource.
	ExcludeSource *bool
}

// Recommendation is one ranked catalog row.
type Recommendation struct {
	ItemID     int64   `json:"item_id"`
	ItemName   string  `json:"item_name"`
	Similarity float64 `json:"similarity"`
}

// Result is the ranked answer for one Request.
type Result struct {
	SourceID   int64
	SourceName string

	// Genres is the reference genre set the vectors were built over.
	Genres []string

	// Candidates is the number of catalog rows sharing at least one genre.
	Candidates int

	Items []Recommendation
}

// Headline is the JSON key the result is published under.
func (r *Result) Headline() string {
	return "Because you liked " + r.SourceName + ", you might also enjoy..."
}

// MarshalJSON emits {"Because you liked <name>, you might also enjoy...": [{"item_name": ...}]}.
func (r *Result) MarshalJSON() ([]byte, error) {
	type named struct {
		ItemName string `json:"item_name"`
	}
	names := make([]named, len(r.Items))
	for i, it := range r.Items {
		names[i] = named{ItemName: it.ItemName}
	}

	key, err := json.Marshal(r.Headline())
	if err != nil {
		return nil, err
	}
	list, err := json.Marshal(names)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	buf.Write(key)
	buf.WriteByte(':')
	buf.Write(list)
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
