// Cardcast - Trading Card API and Stream Overlay Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cardcast

package auth

import (
	"encoding/base64"
	"errors"
	"strings"
)

// ErrMissingSecret is returned when no shared secret is configured.
var ErrMissingSecret = errors.New("shared secret is empty")

const (
	minEncodedSecretLen = 40
	maxEncodedSecretLen = 50
)

// ResolveSecret turns the configured extension secret into HMAC key bytes.
//
// Twitch issues extension secrets base64 encoded (44 characters for 32
// bytes). A value that looks like one (only base64 alphabet characters,
// 40 to 50 long, and at least one of '+', '/' or '=') is decoded. Anything
// else, including a lookalike that fails to decode, is used verbatim so a
// plain development secret works too.
func ResolveSecret(raw string) ([]byte, error) {
	if raw == "" {
		return nil, ErrMissingSecret
	}

	if looksBase64(raw) {
		if decoded, err := base64.StdEncoding.DecodeString(raw); err == nil {
			return decoded, nil
		}
	}

	return []byte(raw), nil
}

func looksBase64(s string) bool {
	if len(s) < minEncodedSecretLen || len(s) > maxEncodedSecretLen {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		case r == '+', r == '/', r == '=':
		default:
			return false
		}
	}
	return strings.ContainsAny(s, "+/=")
}
