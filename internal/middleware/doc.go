// Cardcast - Trading Card API and Stream Overlay Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cardcast

/*
Package middleware provides HTTP middleware components for the API.

Key Components:

  - RequestID: UUID-based request tracking; fills the logging context with
    request_id and correlation_id
  - PrometheusMetrics: request count, duration and in-flight instrumentation
    labelled by chi route pattern
  - Compression: gzip for clients sending Accept-Encoding: gzip

All three use the func(http.HandlerFunc) http.HandlerFunc shape; the api
package adapts them to chi with its chiMiddleware helper.
*/
package middleware
