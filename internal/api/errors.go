// Cardcast - Trading Card API and Stream Overlay Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cardcast

package api

import (
	"fmt"
	"strings"
)

// User-facing error messages.
const (
	msgCardNotFound       = "Card not found"
	msgNoCardsFound       = "No matching cards found in database"
	msgBroadcastForbidden = "Only broadcasters can send broadcasts"
	msgCardsForbidden     = "Your role cannot read cards"
	msgNotInProduction    = "Not available in production"
	msgInternal           = "Internal server error"
	msgInvalidBody        = "Invalid request body"
	msgNotReady           = "Database unavailable"
)

// sanitizeLogValue escapes control characters in user-supplied values
// before they reach the log.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			result.WriteString(fmt.Sprintf("\\x%02x", r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}
