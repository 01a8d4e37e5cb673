// Cardcast - Trading Card API and Stream Overlay Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cardcast

package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Fixed identity carried by development tokens.
const (
	DevOpaqueUserID = "U123456"
	DevChannelID    = "12345"
	DevTokenTTL     = time.Hour
	ServiceTokenTTL = 60 * time.Second
)

// ErrInvalidToken wraps every token verification failure.
var ErrInvalidToken = errors.New("invalid token")

// TokenManager signs and verifies Twitch Extension JWTs with the shared
// extension secret (HS256).
type TokenManager struct {
	secret []byte
	now    func() time.Time
}

// NewTokenManager creates a manager for the resolved secret bytes.
//
//	secret, err := auth.ResolveSecret(cfg.Twitch.SharedSecret)
//	tokens, err := auth.NewTokenManager(secret)
func NewTokenManager(secret []byte) (*TokenManager, error) {
	if len(secret) == 0 {
		return nil, ErrMissingSecret
	}
	return &TokenManager{secret: secret, now: time.Now}, nil
}

// SignClaims signs claims with HS256.
func (m *TokenManager) SignClaims(claims *Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken verifies signature, algorithm and expiry and returns the claims.
// Tokens without an exp claim are rejected.
func (m *TokenManager) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	},
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%w: invalid token claims", ErrInvalidToken)
	}

	return claims, nil
}

// DevToken signs a one-hour token for the fixed development identity.
// userID is optional and fills the user_id claim.
func (m *TokenManager) DevToken(role Role, userID string) (string, error) {
	if !role.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidRole, role)
	}
	return m.SignClaims(&Claims{
		OpaqueUserID: DevOpaqueUserID,
		UserID:       userID,
		ChannelID:    DevChannelID,
		Role:         role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(m.now().Add(DevTokenTTL)),
		},
	})
}

// ServiceToken signs the short-lived backend token Twitch requires for
// Extension PubSub sends on channelID.
func (m *TokenManager) ServiceToken(channelID string) (string, error) {
	now := m.now()
	return m.SignClaims(&Claims{
		UserID:    channelID,
		ChannelID: channelID,
		Role:      RoleExternal,
		PubSubPerms: &PubSubPerms{
			Send: []string{"broadcast"},
		},
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ServiceTokenTTL)),
		},
	})
}
