// Cardcast - Trading Card API and Stream Overlay Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cardcast

// Package validation provides struct validation using go-playground/validator v10.
//
// Features:
//   - Singleton validator instance (thread-safe, caches struct info)
//   - Field names taken from json tags, reported as paths like cards[2].id
//   - Human-readable messages per tag, collected into a RequestValidationError
//   - Uses WithRequiredStructEnabled option (v11+ compatibility)
//
// Example usage:
//
//	type BroadcastRequest struct {
//	    Cards []Entry `json:"cards" validate:"required,min=1,max=10,dive"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    // 422 with verr.Details()
//	}
package validation
