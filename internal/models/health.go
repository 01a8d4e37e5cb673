// Cardcast - Trading Card API and Stream Overlay Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cardcast

package models

// HealthStatus represents the readiness of the service.
type HealthStatus struct {
	Status            string  `json:"status"`
	Version           string  `json:"version"`
	DatabaseConnected bool    `json:"database_connected"`
	SchemaVersion     int     `json:"schema_version,omitempty"`
	Uptime            float64 `json:"uptime_seconds"`
}

// SuccessResponse acknowledges an action with no other result.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// TokenResponse carries a signed token.
type TokenResponse struct {
	Token string `json:"token"`
}
