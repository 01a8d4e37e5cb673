// Cardcast - Trading Card API and Stream Overlay Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cardcast

// Package authz maps Twitch Extension roles to permissions with Casbin.
//
// The model and policy are embedded. Every role inherits viewer, which may
// read the card catalogue; broadcaster and external may also broadcast to
// the overlay. AUTHZ_POLICY_PATH may point to a CSV that replaces the
// embedded policy.
package authz
