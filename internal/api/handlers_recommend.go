// Steamlens - Game Platform Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/tomtom215/steamlens/internal/recommend"
)

// GameRecommendation handles genre-similarity recommendations.
//
// @Summary Games similar to a catalog item
// @Description Ranks catalog games sharing a genre with the item by cosine similarity of their genre vectors. The item itself is included unless exclude_self is true.
// @Tags Recommendations
// @Produce json
// @Param item_id query int true "Catalog item ID" example(70)
// @Param k query int false "Number of results (1-50)"
// @Param exclude_self query bool false "Drop the item itself from the results"
// @Success 200 {object} map[string]interface{} "{\"Because you liked <name>, you might also enjoy...\": [{\"item_name\": name}]}"
// @Failure 400 {object} APIResponse "Invalid parameter"
// @Failure 404 {object} APIResponse "Item not in catalog"
// @Router /game_recommendation [get]
func (h *Handler) GameRecommendation(w http.ResponseWriter, r *http.Request) {
	req, apiErr := parseRecommendationRequest(r)
	if apiErr != nil {
		respondError(w, r, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details, nil)
		return
	}

	k := 0
	if req.K != nil {
		k = *req.K
	}
	key := fmt.Sprintf("%d|%d|%s", req.ItemID, k, boolKey(req.ExcludeSelf))
	h.executor.Execute(w, r, queryRecommendation, key, func(ctx context.Context) (interface{}, error) {
		return h.engine.Recommend(ctx, recommend.Request{
			ItemID:        req.ItemID,
			K:             k,
			ExcludeSource: req.ExcludeSelf,
		})
	})
}

// boolKey renders an optional flag for cache keys.
func boolKey(b *bool) string {
	switch {
	case b == nil:
		return "default"
	case *b:
		return "true"
	default:
		return "false"
	}
}
