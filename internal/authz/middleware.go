// Cardcast - Trading Card API and Stream Overlay Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cardcast

package authz

import (
	"net/http"

	"github.com/tomtom215/cardcast/internal/auth"
	"github.com/tomtom215/cardcast/internal/logging"
)

// Middleware guards routes with the enforcer. It must run after
// auth.Middleware so the claims are in the request context.
type Middleware struct {
	enforcer *Enforcer
}

// NewMiddleware creates the route guard.
func NewMiddleware(enforcer *Enforcer) *Middleware {
	return &Middleware{enforcer: enforcer}
}

// Require lets the request through when the caller's role may perform
// action on object. Otherwise deny writes the response; deny is also used
// when the claims are missing.
func (m *Middleware) Require(object, action string, deny http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := auth.ClaimsFromContext(r.Context())
			if !ok {
				deny(w, r)
				return
			}

			allowed, err := m.enforcer.Enforce(claims.Role, object, action)
			if err != nil {
				logging.Ctx(r.Context()).Error().Err(err).Msg("Authorization error")
				deny(w, r)
				return
			}
			if !allowed {
				logging.Ctx(r.Context()).Debug().
					Str("role", string(claims.Role)).
					Str("object", object).
					Str("action", action).
					Msg("Permission denied")
				deny(w, r)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
