// Steamlens - Game Platform Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

// initBuffer points the global logger at a buffer for the test's lifetime.
func initBuffer(t *testing.T, cfg Config) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	cfg.Output = &buf
	Init(cfg)
	t.Cleanup(func() { Init(DefaultConfig()) })
	return &buf
}

func TestInit_JSONFields(t *testing.T) {
	buf := initBuffer(t, Config{Level: "debug", Format: "json", Version: "1.2.3"})

	Info().Str("table", "reviews").Int("rows", 42).Msg("Snapshot read")

	out := buf.String()
	for _, want := range []string{
		`"level":"info"`,
		`"service":"steamlens"`,
		`"version":"1.2.3"`,
		`"table":"reviews"`,
		`"rows":42`,
		`"message":"Snapshot read"`,
		`"time":`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s: %s", want, out)
		}
	}
}

func TestInit_NoVersionField(t *testing.T) {
	buf := initBuffer(t, Config{Level: "info"})

	Warn().Msg("startup")

	if strings.Contains(buf.String(), `"version"`) {
		t.Errorf("version field without a version: %s", buf.String())
	}
}

func TestInit_LevelFilters(t *testing.T) {
	buf := initBuffer(t, Config{Level: "warn"})

	Debug().Msg("per-query detail")
	Info().Msg("dataset loaded")
	Warn().Msg("invalid values skipped")
	Error().Msg("supervisor error")

	out := buf.String()
	for _, hidden := range []string{"per-query detail", "dataset loaded"} {
		if strings.Contains(out, hidden) {
			t.Errorf("%q should be filtered at warn: %s", hidden, out)
		}
	}
	for _, shown := range []string{"invalid values skipped", "supervisor error"} {
		if !strings.Contains(out, shown) {
			t.Errorf("%q missing at warn: %s", shown, out)
		}
	}
}

func TestInit_Console(t *testing.T) {
	buf := initBuffer(t, Config{Format: "CONSOLE"})

	Info().Msg("console message")

	out := buf.String()
	if strings.Contains(out, `"message"`) {
		t.Errorf("console output should not be JSON: %s", out)
	}
	if !strings.Contains(out, "console message") {
		t.Errorf("console message missing: %s", out)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{" DEBUG ", zerolog.DebugLevel},
		{"verbose", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := parseLevel(tt.in); got != tt.want {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	orig := Logger()
	SetLogger(NewTestLogger(&buf))
	t.Cleanup(func() { SetLogger(orig) })

	Error().Err(errors.New("snapshot missing")).Msg("load failed")

	out := buf.String()
	if !strings.Contains(out, `"error":"snapshot missing"`) {
		t.Errorf("error field missing: %s", out)
	}
	if strings.Contains(out, `"service"`) {
		t.Errorf("test logger should not carry service fields: %s", out)
	}
}
