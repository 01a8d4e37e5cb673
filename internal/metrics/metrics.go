// Cardcast - Trading Card API and Stream Overlay Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cardcast

package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Database Metrics
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Duration of database queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "table"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "db_query_errors_total",
			Help: "Total number of database query errors",
		},
		[]string{"operation", "table", "error_type"},
	)

	DBOpenConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_open_connections",
			Help: "Current number of open database connections",
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
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
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

	// Authentication Metrics
	AuthFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_failures_total",
			Help: "Total number of rejected extension tokens",
		},
		[]string{"reason"}, // missing_token, invalid_token
	)

	AuthzDecisions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "authz_decisions_total",
			Help: "Total number of route permission checks",
		},
		[]string{"object", "action", "result"}, // result: allowed, denied
	)

	// Broadcast Metrics
	BroadcastsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "broadcasts_total",
			Help: "Total number of overlay broadcast attempts",
		},
		[]string{"result"}, // success, forbidden, no_cards, send_error
	)

	BroadcastCards = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "broadcast_cards",
			Help:    "Number of cards resolved per successful broadcast",
			Buckets: []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
		},
	)

	PubSubSendDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pubsub_send_duration_seconds",
			Help:    "Duration of Twitch Extension PubSub sends",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"target"},
	)

	// Card Catalogue Import Metrics
	TCGPagesFetched = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tcg_pages_fetched_total",
			Help: "Total number of catalogue pages fetched from the TCG API",
		},
	)

	SeedCardsProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "seed_cards_total",
			Help: "Total number of cards processed by the seeder",
		},
		[]string{"outcome"}, // inserted, skipped, failed
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "ignored", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
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

// RecordDBQuery records a database query metric
func RecordDBQuery(operation, table string, duration time.Duration, err error) {
	DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
	if err != nil {
		errorType := err.Error()
		// Truncate long error messages
		if len(errorType) > 50 {
			errorType = errorType[:50]
		}
		DBQueryErrors.WithLabelValues(operation, table, errorType).Inc()
	}
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint string, statusCode int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(statusCode)).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordBroadcast records the outcome of a broadcast request. cards is only
// observed for successful broadcasts.
func RecordBroadcast(result string, cards int) {
	BroadcastsTotal.WithLabelValues(result).Inc()
	if result == "success" {
		BroadcastCards.Observe(float64(cards))
	}
}

// RecordAuthzDecision records one permission check.
func RecordAuthzDecision(object, action string, allowed bool) {
	result := "denied"
	if allowed {
		result = "allowed"
	}
	AuthzDecisions.WithLabelValues(object, action, result).Inc()
}

// RecordPubSubSend records the latency of one PubSub send.
func RecordPubSubSend(target string, duration time.Duration) {
	PubSubSendDuration.WithLabelValues(target).Observe(duration.Seconds())
}

// RecordSeedCard records one seeder outcome.
func RecordSeedCard(outcome string) {
	SeedCardsProcessed.WithLabelValues(outcome).Inc()
}
