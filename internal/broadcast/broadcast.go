// Cardcast - Trading Card API and Stream Overlay Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cardcast

// Package broadcast turns overlay entries into a card message for the
// channel's extension overlay and hands it to the PubSub sender.
package broadcast

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tomtom215/cardcast/internal/auth"
	"github.com/tomtom215/cardcast/internal/effects"
	"github.com/tomtom215/cardcast/internal/logging"
	"github.com/tomtom215/cardcast/internal/metrics"
	"github.com/tomtom215/cardcast/internal/models"
)

// MaxEntries is the largest batch a single broadcast accepts.
const MaxEntries = 10

// MessageTypeCards is the overlay message discriminator.
const MessageTypeCards = "cards"

var (
	// ErrForbidden is returned when the caller's role may not broadcast.
	ErrForbidden = errors.New("only broadcasters can send broadcasts")

	// ErrNoCardsFound is returned when no entry resolves to a stored card.
	ErrNoCardsFound = errors.New("no matching cards found in database")

	// ErrSendFailed matches every *SendError.
	ErrSendFailed = errors.New("broadcast send failed")
)

// SendError is a sender failure. Its text is the sender's error text.
type SendError struct {
	Err error
}

func (e *SendError) Error() string { return e.Err.Error() }

func (e *SendError) Unwrap() error { return e.Err }

// Is reports ErrSendFailed as matching.
func (e *SendError) Is(target error) bool { return target == ErrSendFailed }

// CardLookup resolves card ids in one batch. Missing ids are absent from
// the returned map.
type CardLookup interface {
	GetMany(ctx context.Context, ids []string) (map[string]models.Card, error)
}

// Sender delivers a message to every viewer of a channel.
type Sender interface {
	Broadcast(ctx context.Context, channelID string, message any) error
}

// Entry is one caller-supplied card placement. X and Y are normalized
// overlay coordinates.
type Entry struct {
	ID string
	X  float64
	Y  float64
}

// CardData is the card payload the overlay renders.
type CardData struct {
	Type             string           `json:"type"`
	Color            string           `json:"color"`
	HP               int              `json:"hp"`
	ID               string           `json:"id"`
	BigNumberTopLeft int              `json:"big_number_top_left"`
	Title            string           `json:"title"`
	Subtitle         string           `json:"subtitle"`
	Effects          []effects.Effect `json:"effects"`
}

// OverlayCard places CardData on the overlay.
type OverlayCard struct {
	X        float64  `json:"x"`
	Y        float64  `json:"y"`
	CardData CardData `json:"card_data"`
}

// Message is the PubSub payload.
type Message struct {
	Type  string        `json:"type"`
	Cards []OverlayCard `json:"cards"`
}

// Service enriches and dispatches broadcasts.
type Service struct {
	cards  CardLookup
	sender Sender
}

// NewService creates a broadcast service.
func NewService(cards CardLookup, sender Sender) *Service {
	return &Service{cards: cards, sender: sender}
}

// Authorize reports ErrForbidden unless claims allow broadcasting.
func Authorize(claims *auth.Claims) error {
	if claims == nil || !claims.Role.CanBroadcast() {
		return ErrForbidden
	}
	return nil
}

// Broadcast resolves entries and sends them to the caller's channel.
//
// Unknown ids are dropped and the input order of the rest is kept. When
// none resolve the result is ErrNoCardsFound and nothing is sent.
func (s *Service) Broadcast(ctx context.Context, claims *auth.Claims, entries []Entry) error {
	if err := Authorize(claims); err != nil {
		metrics.RecordBroadcast("forbidden", 0)
		return err
	}

	msg, err := s.Build(ctx, entries)
	if err != nil {
		if errors.Is(err, ErrNoCardsFound) {
			metrics.RecordBroadcast("not_found", 0)
		} else {
			metrics.RecordBroadcast("error", 0)
		}
		return err
	}

	if dropped := len(entries) - len(msg.Cards); dropped > 0 {
		logging.Ctx(ctx).Debug().Int("dropped", dropped).Msg("Skipping unknown card ids in broadcast")
	}

	if err := s.sender.Broadcast(ctx, claims.ChannelID, msg); err != nil {
		metrics.RecordBroadcast("send_failed", len(msg.Cards))
		return &SendError{Err: err}
	}

	metrics.RecordBroadcast("success", len(msg.Cards))
	logging.Ctx(ctx).Info().
		Str("channel_id", claims.ChannelID).
		Int("cards", len(msg.Cards)).
		Msg("Broadcast sent")
	return nil
}

// Build resolves entries into a Message without sending it.
func (s *Service) Build(ctx context.Context, entries []Entry) (*Message, error) {
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.ID)
	}

	found, err := s.cards.GetMany(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to look up cards: %w", err)
	}

	overlay := make([]OverlayCard, 0, len(entries))
	for _, e := range entries {
		card, ok := found[e.ID]
		if !ok {
			continue
		}
		overlay = append(overlay, OverlayCard{X: e.X, Y: e.Y, CardData: ToCardData(&card)})
	}

	if len(overlay) == 0 {
		return nil, ErrNoCardsFound
	}

	return &Message{Type: MessageTypeCards, Cards: overlay}, nil
}

// ToCardData converts a card to its overlay form.
func ToCardData(c *models.Card) CardData {
	typ := strings.ToLower(string(c.Type))
	if typ == "" {
		typ = strings.ToLower(string(models.CardTypeCharacter))
	}

	return CardData{
		Type:             typ,
		Color:            c.Color,
		HP:               derefOrZero(c.Power),
		ID:               c.ID,
		BigNumberTopLeft: derefOrZero(c.Cost),
		Title:            c.Name,
		Subtitle:         c.Family,
		Effects:          effects.FromText(c.Ability, c.Trigger),
	}
}

func derefOrZero(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
