// Cardcast - Trading Card API and Stream Overlay Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cardcast

package broadcast

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"

	"github.com/tomtom215/cardcast/internal/auth"
	"github.com/tomtom215/cardcast/internal/effects"
	"github.com/tomtom215/cardcast/internal/models"
)

type fakeLookup struct {
	mu    sync.Mutex
	cards map[string]models.Card
	calls int
	err   error
}

func (f *fakeLookup) GetMany(_ context.Context, ids []string) (map[string]models.Card, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	out := make(map[string]models.Card)
	for _, id := range ids {
		if c, ok := f.cards[id]; ok {
			out[id] = c
		}
	}
	return out, nil
}

func (f *fakeLookup) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type sent struct {
	channelID string
	message   any
}

type fakeSender struct {
	mu   sync.Mutex
	sent []sent
	err  error
}

func (f *fakeSender) Broadcast(_ context.Context, channelID string, message any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, sent{channelID: channelID, message: message})
	return f.err
}

func (f *fakeSender) Sent() []sent {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]sent(nil), f.sent...)
}

func intPtr(i int) *int { return &i }

func testCards() map[string]models.Card {
	return map[string]models.Card{
		"OP01-001": {
			ID:      "OP01-001",
			Type:    models.CardTypeLeader,
			Name:    "Roronoa Zoro",
			Color:   "Red",
			Family:  "Supernovas/Straw Hat Crew",
			Power:   intPtr(5000),
			Ability: "[DON!! x1] [Your Turn] All of your Characters gain +1000 power.",
		},
		"OP01-006": {
			ID:      "OP01-006",
			Type:    models.CardTypeCharacter,
			Name:    "Otama",
			Color:   "Red",
			Cost:    intPtr(1),
			Ability: "[On Play] Give up to 1 of your opponent's Characters -2000 power during this turn.",
			Trigger: "Play this card.",
		},
	}
}

func broadcaster() *auth.Claims {
	return &auth.Claims{ChannelID: "555", Role: auth.RoleBroadcaster}
}

func TestBroadcast_PartialSuccessKeepsOrder(t *testing.T) {
	t.Parallel()

	lookup := &fakeLookup{cards: testCards()}
	sender := &fakeSender{}
	svc := NewService(lookup, sender)

	entries := []Entry{
		{ID: "OP01-006", X: 0.1, Y: 0.2},
		{ID: "NOPE-000", X: 0.3, Y: 0.4},
		{ID: "OP01-001", X: 0.5, Y: 0.6},
	}
	if err := svc.Broadcast(context.Background(), broadcaster(), entries); err != nil {
		t.Fatalf("Broadcast() error = %v", err)
	}

	out := sender.Sent()
	if len(out) != 1 {
		t.Fatalf("sent %d messages, want 1", len(out))
	}
	if out[0].channelID != "555" {
		t.Errorf("channel = %q, want 555", out[0].channelID)
	}

	msg, ok := out[0].message.(*Message)
	if !ok {
		t.Fatalf("message type %T, want *Message", out[0].message)
	}
	if msg.Type != "cards" {
		t.Errorf("Type = %q", msg.Type)
	}
	if len(msg.Cards) != 2 {
		t.Fatalf("got %d cards, want 2", len(msg.Cards))
	}
	if msg.Cards[0].CardData.ID != "OP01-006" || msg.Cards[1].CardData.ID != "OP01-001" {
		t.Errorf("order = %s, %s", msg.Cards[0].CardData.ID, msg.Cards[1].CardData.ID)
	}
	if msg.Cards[1].X != 0.5 || msg.Cards[1].Y != 0.6 {
		t.Errorf("position = (%v, %v), want (0.5, 0.6)", msg.Cards[1].X, msg.Cards[1].Y)
	}
}

func TestBroadcast_AllUnknown(t *testing.T) {
	t.Parallel()

	sender := &fakeSender{}
	svc := NewService(&fakeLookup{cards: testCards()}, sender)

	err := svc.Broadcast(context.Background(), broadcaster(), []Entry{{ID: "X-1"}, {ID: "X-2"}})
	if !errors.Is(err, ErrNoCardsFound) {
		t.Errorf("Broadcast() = %v, want ErrNoCardsFound", err)
	}
	if n := len(sender.Sent()); n != 0 {
		t.Errorf("sent %d messages, want 0", n)
	}
}

func TestBroadcast_ForbiddenRoles(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		claims *auth.Claims
	}{
		{"viewer", &auth.Claims{ChannelID: "1", Role: auth.RoleViewer}},
		{"moderator", &auth.Claims{ChannelID: "1", Role: auth.RoleModerator}},
		{"nil claims", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			lookup := &fakeLookup{cards: testCards()}
			sender := &fakeSender{}
			svc := NewService(lookup, sender)

			err := svc.Broadcast(context.Background(), tt.claims, []Entry{{ID: "OP01-001"}})
			if !errors.Is(err, ErrForbidden) {
				t.Errorf("Broadcast() = %v, want ErrForbidden", err)
			}
			if lookup.Calls() != 0 {
				t.Errorf("lookup called %d times, want 0", lookup.Calls())
			}
			if len(sender.Sent()) != 0 {
				t.Error("sender called for forbidden role")
			}
		})
	}
}

func TestBroadcast_ExternalRoleAllowed(t *testing.T) {
	t.Parallel()

	svc := NewService(&fakeLookup{cards: testCards()}, &fakeSender{})
	claims := &auth.Claims{ChannelID: "9", Role: auth.RoleExternal}
	if err := svc.Broadcast(context.Background(), claims, []Entry{{ID: "OP01-001"}}); err != nil {
		t.Errorf("Broadcast() as external = %v", err)
	}
}

func TestBroadcast_SenderError(t *testing.T) {
	t.Parallel()

	upstream := errors.New("Twitch PubSub error (400): bad")
	svc := NewService(&fakeLookup{cards: testCards()}, &fakeSender{err: upstream})

	err := svc.Broadcast(context.Background(), broadcaster(), []Entry{{ID: "OP01-001"}})
	if !errors.Is(err, ErrSendFailed) || !errors.Is(err, upstream) {
		t.Errorf("Broadcast() = %v, want ErrSendFailed wrapping the upstream error", err)
	}
	if err.Error() != upstream.Error() {
		t.Errorf("Error() = %q, want the sender text %q", err.Error(), upstream.Error())
	}
}

func TestBroadcast_LookupError(t *testing.T) {
	t.Parallel()

	dbErr := errors.New("connection refused")
	sender := &fakeSender{}
	svc := NewService(&fakeLookup{err: dbErr}, sender)

	err := svc.Broadcast(context.Background(), broadcaster(), []Entry{{ID: "OP01-001"}})
	if !errors.Is(err, dbErr) {
		t.Errorf("Broadcast() = %v, want lookup error", err)
	}
	if errors.Is(err, ErrNoCardsFound) {
		t.Error("lookup failure reported as not found")
	}
	if len(sender.Sent()) != 0 {
		t.Error("sender called after lookup failure")
	}
}

func TestToCardData(t *testing.T) {
	t.Parallel()

	cards := testCards()

	otama := cards["OP01-006"]
	got := ToCardData(&otama)
	want := CardData{
		Type:             "character",
		Color:            "Red",
		HP:               0,
		ID:               "OP01-006",
		BigNumberTopLeft: 1,
		Title:            "Otama",
		Subtitle:         "",
		Effects: []effects.Effect{
			{Type: effects.TypeOnPlay, Description: "Give up to 1 of your opponent's Characters -2000 power during this turn."},
			{Type: effects.TypeTrigger, Description: "Play this card."},
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ToCardData(Otama) =\n%+v\nwant\n%+v", got, want)
	}

	zoro := cards["OP01-001"]
	got = ToCardData(&zoro)
	if got.Type != "leader" || got.HP != 5000 || got.BigNumberTopLeft != 0 {
		t.Errorf("ToCardData(Zoro) type/hp/cost = %q/%d/%d", got.Type, got.HP, got.BigNumberTopLeft)
	}
	if got.Subtitle != "Supernovas/Straw Hat Crew" {
		t.Errorf("Subtitle = %q", got.Subtitle)
	}

	blank := models.Card{ID: "X"}
	if got := ToCardData(&blank); got.Type != "character" || got.Effects == nil {
		t.Errorf("ToCardData(blank) = %+v, want character type and non-nil effects", got)
	}
}
