// Cardcast - Trading Card API and Stream Overlay Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cardcast

// Package testinfra starts containers for integration tests.
//
// Files are behind the integration build tag:
//
//	go test -tags integration ./internal/testinfra/...
//
// NewPostgresContainer starts PostgreSQL so the lib/pq code paths of
// internal/database (jsonb columns, the card_type enum, $n placeholders)
// run against a real server. Tests skip when Docker is unavailable.
package testinfra
