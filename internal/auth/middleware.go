// Cardcast - Trading Card API and Stream Overlay Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cardcast

package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/cardcast/internal/logging"
	"github.com/tomtom215/cardcast/internal/metrics"
)

type contextKey string

// ClaimsContextKey is the request context key holding *Claims.
const ClaimsContextKey contextKey = "claims"

// UnauthorizedMessage is the body text for every authentication failure.
const UnauthorizedMessage = "Missing or invalid authorization token"

var errMissingBearer = errors.New("missing bearer token")

// Middleware authenticates requests carrying a Twitch Extension JWT.
type Middleware struct {
	tokens *TokenManager
}

// NewMiddleware creates the authentication middleware.
func NewMiddleware(tokens *TokenManager) *Middleware {
	return &Middleware{tokens: tokens}
}

// Authenticate verifies the "Authorization: Bearer <jwt>" header and stores
// the claims in the request context. Failures get a 401 JSON error.
func (m *Middleware) Authenticate(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := extractBearer(r.Header.Get("Authorization"))
		if err != nil {
			metrics.AuthFailures.WithLabelValues("missing_token").Inc()
			writeUnauthorized(w)
			return
		}

		claims, err := m.tokens.ValidateToken(token)
		if err != nil {
			metrics.AuthFailures.WithLabelValues("invalid_token").Inc()
			logging.Ctx(r.Context()).Debug().Err(err).Msg("Token validation failed")
			writeUnauthorized(w)
			return
		}

		next(w, r.WithContext(ContextWithClaims(r.Context(), claims)))
	}
}

// Handler adapts Authenticate to the func(http.Handler) http.Handler form
// used by chi route groups.
func (m *Middleware) Handler(next http.Handler) http.Handler {
	return m.Authenticate(next.ServeHTTP)
}

func extractBearer(header string) (string, error) {
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || scheme != "Bearer" {
		return "", errMissingBearer
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", errMissingBearer
	}
	return token, nil
}

func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": UnauthorizedMessage}) //nolint:errcheck // response already committed
}

// ContextWithClaims returns a copy of ctx carrying claims.
func ContextWithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, ClaimsContextKey, claims)
}

// ClaimsFromContext returns the authenticated claims, if any.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(ClaimsContextKey).(*Claims)
	return claims, ok && claims != nil
}
