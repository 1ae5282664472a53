// Steamlens - Game Platform Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered on the default registry via promauto and are
exposed at /metrics in Prometheus text format:

	curl http://localhost:8000/metrics

# Available Metrics

Dataset Metrics:
  - dataset_load_duration_seconds: per-table snapshot load time (histogram)
    Labels: table
  - dataset_load_errors_total: failed table loads (counter)
    Labels: table, error_type (missing_column, timeout, canceled, other)
  - dataset_rows: rows held in memory (gauge)
    Labels: table
  - dataset_invalid_values_total: values coerced to missing (counter)
    Labels: table
  - dataset_loaded_timestamp: Unix time of the last successful load (gauge)

API Metrics:
  - api_requests_total: Total HTTP requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: In-flight requests (gauge)
  - api_rate_limit_hits_total: Rate limit rejections (counter)
    Labels: endpoint

Query Metrics:
  - query_duration_seconds: analytics and recommendation time (histogram)
    Labels: query
  - query_results_total: outcomes (counter)
    Labels: query, result (ok, not_found, error)
  - recommend_candidates: candidate rows per recommendation (histogram)
  - query_cache_hits_total, query_cache_misses_total (counter)
    Labels: query
  - query_cache_entries: cached results (gauge)

Supervisor and System Metrics:
  - supervisor_service_events_total: supervisor events (counter)
    Labels: event
  - app_info: version and Go version (gauge)
  - app_uptime_seconds (gauge)

# Thread Safety

All recording functions are safe for concurrent use.
*/
package metrics
