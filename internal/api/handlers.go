// Cardcast - Trading Card API and Stream Overlay Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cardcast

package api

import (
	"context"
	"time"

	"github.com/tomtom215/cardcast/internal/auth"
	"github.com/tomtom215/cardcast/internal/broadcast"
	"github.com/tomtom215/cardcast/internal/cards"
	"github.com/tomtom215/cardcast/internal/models"
	"github.com/tomtom215/cardcast/internal/pagination"
)

// CardService reads cards for the /api/cards routes.
type CardService interface {
	List(ctx context.Context, q cards.Query) (pagination.Page[models.Card], error)
	Get(ctx context.Context, id string) (*models.Card, error)
}

// Broadcaster sends overlay broadcasts.
type Broadcaster interface {
	Broadcast(ctx context.Context, claims *auth.Claims, entries []broadcast.Entry) error
}

// TokenIssuer signs development tokens.
type TokenIssuer interface {
	DevToken(role auth.Role, userID string) (string, error)
}

// Pinger reports database reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler holds the dependencies of every route.
type Handler struct {
	cards       CardService
	broadcaster Broadcaster
	tokens      TokenIssuer
	db          Pinger

	production bool
	devUserID  string
	version    string
	startTime  time.Time
}

// HandlerOptions configures a Handler.
type HandlerOptions struct {
	Cards       CardService
	Broadcaster Broadcaster
	Tokens      TokenIssuer
	DB          Pinger

	// Production disables /api/dev/token.
	Production bool

	// DevUserID fills user_id in development tokens when set.
	DevUserID string

	Version string
}

// NewHandler creates the route handlers.
func NewHandler(opts HandlerOptions) *Handler {
	version := opts.Version
	if version == "" {
		version = "dev"
	}
	return &Handler{
		cards:       opts.Cards,
		broadcaster: opts.Broadcaster,
		tokens:      opts.Tokens,
		db:          opts.DB,
		production:  opts.Production,
		devUserID:   opts.DevUserID,
		version:     version,
		startTime:   time.Now(),
	}
}
