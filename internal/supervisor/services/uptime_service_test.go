// Steamlens - Game Platform Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/steamlens/internal/metrics"
)

func TestUptimeService_Interface(t *testing.T) {
	var _ suture.Service = (*UptimeService)(nil)
}

func TestNewUptimeService_DefaultInterval(t *testing.T) {
	if svc := NewUptimeService(time.Now(), 0); svc.interval != 15*time.Second {
		t.Errorf("interval = %v, want 15s", svc.interval)
	}
}

func TestUptimeService_Serve(t *testing.T) {
	svc := NewUptimeService(time.Now().Add(-time.Hour), 10*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := svc.Serve(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Serve() = %v, want DeadlineExceeded", err)
	}
	if got := testutil.ToFloat64(metrics.AppUptime); got < 3600 {
		t.Errorf("app_uptime_seconds = %v, want at least 3600", got)
	}
	if svc.String() != "uptime-reporter" {
		t.Errorf("String() = %q", svc.String())
	}
}
