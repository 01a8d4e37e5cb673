// Cardcast - Trading Card API and Stream Overlay Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cardcast

/*
Package api provides the HTTP surface of Cardcast using the chi router.

Routes:

	GET  /welcome                 plain-text greeting
	GET  /health/live             liveness probe
	GET  /health/ready            readiness probe (database ping)
	GET  /metrics                 Prometheus metrics
	GET  /swagger/*               Swagger UI
	GET  /api/cards               paginated, filtered card list   (bearer)
	GET  /api/cards/{id}          single card                     (bearer)
	POST /api/pubsub/broadcast    send cards to the overlay       (bearer, broadcaster/external)
	GET  /api/dev/token           development token (non-production only)

Middleware Stack:

Every route gets request ids, real IP extraction, panic recovery and CORS.
The /api group adds rate limiting, security headers, Prometheus
instrumentation and gzip. Authenticated routes verify the Twitch Extension
JWT with auth.Middleware, then check the role against the Casbin policy in
internal/authz.

Errors:

Failures are written by ResponseWriter as {"error": "...", "code": "...",
"request_id": "..."}; validation failures add "details" keyed by field path
and use status 422.
*/
package api
