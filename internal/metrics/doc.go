// Cardcast - Trading Card API and Stream Overlay Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cardcast

/*
Package metrics provides Prometheus metrics collection and export.

All collectors are registered on the default registry via promauto and are
served by promhttp at /metrics.

# Available Metrics

API Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
  - api_active_requests: Requests in flight (gauge)
  - api_rate_limit_hits_total: Rate limit rejections (counter)
  - auth_failures_total: Rejected extension tokens (counter)

Database Metrics:
  - db_query_duration_seconds: Query execution time (histogram)
    Labels: operation, table
  - db_query_errors_total: Failed queries (counter)
  - db_open_connections: Open pool connections (gauge)

Broadcast Metrics:
  - broadcasts_total: Broadcast attempts by result (counter)
  - broadcast_cards: Cards per successful broadcast (histogram)
  - pubsub_send_duration_seconds: Twitch PubSub latency (histogram)

Catalogue Import Metrics:
  - tcg_pages_fetched_total: Pages downloaded from the TCG API
  - seed_cards_total: Seeder outcomes (inserted, skipped, failed)

Circuit Breaker Metrics:
  - circuit_breaker_state: 0=closed, 1=half-open, 2=open
  - circuit_breaker_requests_total: Labels name, result
  - circuit_breaker_consecutive_failures
  - circuit_breaker_state_transitions_total

# Usage

	start := time.Now()
	rows, err := db.QueryContext(ctx, query, args...)
	metrics.RecordDBQuery("select", "cards", time.Since(start), err)
*/
package metrics
