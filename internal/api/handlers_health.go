// Steamlens - Game Platform Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/steamlens/internal/dataset"
)

// LiveStatus is the liveness probe body.
type LiveStatus struct {
	Status string `json:"status"`
}

// ReadyStatus is the readiness probe body.
type ReadyStatus struct {
	Status        string        `json:"status"`
	UptimeSeconds float64       `json:"uptime_seconds"`
	Tables        dataset.Stats `json:"tables"`
	CachedResults int           `json:"cached_results"`
}

// HealthLive reports that the process is serving requests.
//
// @Summary Liveness probe
// @Tags Health
// @Produce json
// @Success 200 {object} LiveStatus
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, LiveStatus{Status: "alive"})
}

// HealthReady reports the loaded table sizes. The handler only exists once
// the store has loaded, so reaching it means the service is ready.
//
// @Summary Readiness probe
// @Tags Health
// @Produce json
// @Success 200 {object} ReadyStatus
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, ReadyStatus{
		Status:        "ready",
		UptimeSeconds: time.Since(h.startTime).Seconds(),
		Tables:        h.store.Stats(),
		CachedResults: h.executor.Len(),
	})
}
