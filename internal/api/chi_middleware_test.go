// Steamlens - Game Platform Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/tomtom215/steamlens/internal/config"
)

func TestDefaultChiMiddlewareConfig(t *testing.T) {
	cfg := DefaultChiMiddlewareConfig()

	if len(cfg.CORSAllowedOrigins) != 0 {
		t.Errorf("CORSAllowedOrigins = %v, want empty", cfg.CORSAllowedOrigins)
	}
	if len(cfg.CORSAllowedMethods) != 2 {
		t.Errorf("CORSAllowedMethods = %v, want GET and OPTIONS", cfg.CORSAllowedMethods)
	}
	if cfg.RateLimitRequests != 100 || cfg.RateLimitWindow != time.Minute {
		t.Errorf("rate limit = %d per %v", cfg.RateLimitRequests, cfg.RateLimitWindow)
	}
}

func TestChiMiddlewareConfigFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Security.CORSOrigins = []string{"https://a.example"}
	cfg.Security.RateLimitReqs = 7
	cfg.Security.RateLimitWindow = 30 * time.Second

	mc := ChiMiddlewareConfigFromConfig(cfg)
	if len(mc.CORSAllowedOrigins) != 1 || mc.CORSAllowedOrigins[0] != "https://a.example" {
		t.Errorf("CORSAllowedOrigins = %v", mc.CORSAllowedOrigins)
	}
	if mc.RateLimitRequests != 7 || mc.RateLimitWindow != 30*time.Second {
		t.Errorf("rate limit = %d per %v", mc.RateLimitRequests, mc.RateLimitWindow)
	}

	if got := ChiMiddlewareConfigFromConfig(nil); got.RateLimitRequests != 100 {
		t.Error("nil config should yield defaults")
	}
}

func TestRateLimitDisabled(t *testing.T) {
	m := NewChiMiddleware(&ChiMiddlewareConfig{RateLimitDisabled: true, RateLimitRequests: 1, RateLimitWindow: time.Minute})

	h := m.RateLimit()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < 5; i++ {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "192.0.2.9:1000"
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d status = %d, want 200", i, rec.Code)
		}
	}
}
