// Cardcast - Trading Card API and Stream Overlay Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cardcast

// Package logging provides zerolog-based structured logging for Cardcast.
//
// JSON output is the default and is what production deployments should use;
// console output is available for local development.
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	logging.Info().Str("addr", addr).Msg("Server starting")
//	logging.Error().Err(err).Msg("Query failed")
//
// # Request-Scoped Logging
//
// The HTTP layer stores a request ID and a short correlation ID in the
// request context. Ctx attaches both to every line:
//
//	logging.Ctx(r.Context()).Warn().Str("card_id", id).Msg("Card not found")
//
// # slog Integration
//
// The suture supervisor logs through sutureslog, which needs an
// *slog.Logger. NewSlogLogger returns one that writes through zerolog.
//
// # Configuration
//
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: include caller file:line (default: false)
package logging
