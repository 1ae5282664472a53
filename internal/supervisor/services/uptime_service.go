// Steamlens - Game Platform Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package services

import (
	"context"
	"time"

	"github.com/tomtom215/steamlens/internal/metrics"
)

// UptimeService refreshes the app_uptime_seconds gauge on a fixed interval.
type UptimeService struct {
	start    time.Time
	interval time.Duration
}

// NewUptimeService reports uptime measured from start. A non-positive
// interval becomes 15s.
func NewUptimeService(start time.Time, interval time.Duration) *UptimeService {
	if interval <= 0 {
		interval = 15 * time.Second
	}
	return &UptimeService{start: start, interval: interval}
}

// Serve implements suture.Service.
func (u *UptimeService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(u.interval)
	defer ticker.Stop()

	u.record()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			u.record()
		}
	}
}

func (u *UptimeService) record() {
	metrics.AppUptime.Set(time.Since(u.start).Seconds())
}

// String identifies the service in supervisor logs.
func (u *UptimeService) String() string {
	return "uptime-reporter"
}
