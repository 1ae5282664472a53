// Steamlens - Game Platform Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/tomtom215/steamlens/internal/database"
)

var (
	// Dataset Load Metrics
	DatasetLoadDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dataset_load_duration_seconds",
			Help:    "Duration of loading one Parquet snapshot into memory",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
		},
		[]string{"table"},
	)

	DatasetLoadErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dataset_load_errors_total",
			Help: "Total number of snapshot load failures",
		},
		[]string{"table", "error_type"},
	)

	DatasetRows = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dataset_rows",
			Help: "Number of rows held in memory per snapshot table",
		},
		[]string{"table"},
	)

	DatasetInvalidValues = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dataset_invalid_values_total",
			Help: "Values coerced to missing during snapshot load",
		},
		[]string{"table"},
	)

	DatasetLoadedTimestamp = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dataset_loaded_timestamp",
			Help: "Unix timestamp of the last successful dataset load",
		},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5}, // in-memory queries
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Query Metrics
	QueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "query_duration_seconds",
			Help:    "Duration of analytics and recommendation queries",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"query"},
	)

	QueryResults = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "query_results_total",
			Help: "Query outcomes by result (ok, not_found, error)",
		},
		[]string{"query", "result"},
	)

	RecommendCandidates = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommend_candidates",
			Help:    "Catalog rows sharing a genre with the source item",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		},
	)

	// Query Cache Metrics
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "query_cache_hits_total",
			Help: "Total number of query cache hits",
		},
		[]string{"query"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "query_cache_misses_total",
			Help: "Total number of query cache misses",
		},
		[]string{"query"},
	)

	CacheEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "query_cache_entries",
			Help: "Current number of cached query results",
		},
	)

	// Supervisor Metrics
	ServiceRestarts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "supervisor_service_events_total",
			Help: "Supervisor events by type (failure, backoff, resume, timeout)",
		},
		[]string{"event"},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)

	AppUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)
)

// Query outcome labels.
const (
	ResultOK       = "ok"
	ResultNotFound = "not_found"
	ResultError    = "error"
)

// RecordTableLoad records the outcome of loading one snapshot table.
func RecordTableLoad(table string, duration time.Duration, rows, invalid int, err error) {
	DatasetLoadDuration.WithLabelValues(table).Observe(duration.Seconds())
	if err != nil {
		DatasetLoadErrors.WithLabelValues(table, loadErrorType(err)).Inc()
		return
	}
	DatasetRows.WithLabelValues(table).Set(float64(rows))
	if invalid > 0 {
		DatasetInvalidValues.WithLabelValues(table).Add(float64(invalid))
	}
}

// RecordDatasetLoaded marks a completed startup load.
func RecordDatasetLoaded() {
	DatasetLoadedTimestamp.Set(float64(time.Now().Unix()))
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordQuery records a query duration and its outcome label.
func RecordQuery(query string, duration time.Duration, result string) {
	QueryDuration.WithLabelValues(query).Observe(duration.Seconds())
	QueryResults.WithLabelValues(query, result).Inc()
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordCacheLookup records a query cache hit or miss.
func RecordCacheLookup(query string, hit bool) {
	if hit {
		CacheHits.WithLabelValues(query).Inc()
	} else {
		CacheMisses.WithLabelValues(query).Inc()
	}
}

// loadErrorType buckets load errors so the label set stays small.
func loadErrorType(err error) string {
	switch {
	case errors.Is(err, database.ErrMissingColumn):
		return "missing_column"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	default:
		return "other"
	}
}
