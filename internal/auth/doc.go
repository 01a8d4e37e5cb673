// Cardcast - Trading Card API and Stream Overlay Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cardcast

/*
Package auth verifies and issues Twitch Extension JWTs.

Every viewer request from the extension front end carries a JWT signed by
Twitch with the extension's shared secret. The same secret signs the
short-lived service tokens this backend uses to send Extension PubSub
messages, and the development tokens handed out outside production.

Key Components:

  - ResolveSecret: turns the configured secret into HMAC key bytes,
    decoding the base64 form Twitch issues
  - TokenManager: HS256 signing and verification (exp is mandatory)
  - Middleware: Bearer token extraction and 401 handling
  - Role: broadcaster, moderator, viewer and external

Usage Example:

	secret, err := auth.ResolveSecret(cfg.Twitch.SharedSecret)
	if err != nil {
	    return err
	}
	tokens, err := auth.NewTokenManager(secret)
	if err != nil {
	    return err
	}
	mw := auth.NewMiddleware(tokens)
	r.Post("/api/pubsub/broadcast", mw.Authenticate(handler.Broadcast))

Handlers read the verified identity with ClaimsFromContext.
*/
package auth
