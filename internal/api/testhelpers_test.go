// Cardcast - Trading Card API and Stream Overlay Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cardcast

package api

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/cardcast/internal/auth"
	"github.com/tomtom215/cardcast/internal/authz"
	"github.com/tomtom215/cardcast/internal/broadcast"
	"github.com/tomtom215/cardcast/internal/cards"
	"github.com/tomtom215/cardcast/internal/config"
	"github.com/tomtom215/cardcast/internal/database"
	"github.com/tomtom215/cardcast/internal/models"
)

var testSecret = []byte("test-secret-for-api-handlers-0123")

func intPtr(i int) *int { return &i }

// fakeSender records broadcasts instead of calling Twitch.
type fakeSender struct {
	mu       sync.Mutex
	err      error
	channels []string
	messages []*broadcast.Message
}

func (f *fakeSender) Broadcast(_ context.Context, channelID string, message any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	msg, ok := message.(*broadcast.Message)
	if !ok {
		return errors.New("unexpected message type")
	}
	f.channels = append(f.channels, channelID)
	f.messages = append(f.messages, msg)
	return nil
}

func (f *fakeSender) sent() []*broadcast.Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*broadcast.Message(nil), f.messages...)
}

// countingCards wraps the card service and counts GetMany calls.
type countingCards struct {
	*cards.Service
	mu    sync.Mutex
	calls int
}

func (c *countingCards) GetMany(ctx context.Context, ids []string) (map[string]models.Card, error) {
	c.mu.Lock()
	c.calls++
	c.mu.Unlock()
	return c.Service.GetMany(ctx, ids)
}

func (c *countingCards) lookups() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

// testServer is the full router over a seeded in-memory database.
type testServer struct {
	handler http.Handler
	tokens  *auth.TokenManager
	sender  *fakeSender
	lookup  *countingCards
	db      *database.DB
}

type serverOption func(*HandlerOptions)

func withProduction() serverOption {
	return func(o *HandlerOptions) { o.Production = true }
}

func newTestServer(t *testing.T, opts ...serverOption) *testServer {
	t.Helper()
	ctx := context.Background()

	db, err := database.Open(ctx, &config.DatabaseConfig{URL: "sqlite://:memory:"})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if err := db.Migrate(ctx); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}
	seedCatalogue(t, db)

	tokens, err := auth.NewTokenManager(testSecret)
	if err != nil {
		t.Fatalf("NewTokenManager() error = %v", err)
	}

	cardService := cards.NewService(db)
	lookup := &countingCards{Service: cardService}
	sender := &fakeSender{}

	hopts := HandlerOptions{
		Cards:       cardService,
		Broadcaster: broadcast.NewService(lookup, sender),
		Tokens:      tokens,
		DB:          db,
		Version:     "test",
	}
	for _, o := range opts {
		o(&hopts)
	}

	chiMW := NewChiMiddleware(&ChiMiddlewareConfig{
		CORSAllowedOrigins: []string{"*"},
		CORSAllowedMethods: []string{"GET", "POST", "OPTIONS"},
		CORSAllowedHeaders: []string{"Content-Type", "Authorization"},
		RateLimitDisabled:  true,
	})
	enforcer, err := authz.NewEnforcer("")
	if err != nil {
		t.Fatalf("authz.NewEnforcer() error = %v", err)
	}
	router := NewRouter(NewHandler(hopts), auth.NewMiddleware(tokens), authz.NewMiddleware(enforcer), chiMW)

	return &testServer{
		handler: router.SetupChi(),
		tokens:  tokens,
		sender:  sender,
		lookup:  lookup,
		db:      db,
	}
}

// seedCatalogue stores seven leaders, two characters and an event.
func seedCatalogue(t *testing.T, db *database.DB) {
	t.Helper()
	ctx := context.Background()

	setID, err := db.CreateSet(ctx, "-ROMANCE DAWN- [OP01]")
	if err != nil {
		t.Fatalf("CreateSet() error = %v", err)
	}

	var rows []*database.NewCard
	for i := 1; i <= 7; i++ {
		rows = append(rows, &database.NewCard{
			ID:      fmt.Sprintf("OP01-%03d", i),
			Code:    fmt.Sprintf("OP01-%03d", i),
			Rarity:  "L",
			Type:    "LEADER",
			Name:    fmt.Sprintf("Leader %d", i),
			Images:  &models.Images{Small: "s.png", Large: "l.png"},
			Power:   intPtr(5000),
			Color:   "Red",
			Ability: "[Blocker] [On Play] Draw 1 card.",
			SetID:   &setID,
		})
	}
	rows = append(rows,
		&database.NewCard{
			ID: "OP01-024", Code: "OP01-024", Rarity: "SR", Type: "CHARACTER", Name: "Monkey.D.Luffy",
			Cost: intPtr(5), Power: intPtr(6000), Color: "Red", Counter: "-", SetID: &setID,
		},
		&database.NewCard{
			ID: "OP01-025", Code: "OP01-025", Rarity: "SR", Type: "CHARACTER", Name: "Roronoa Zoro",
			Cost: intPtr(3), Power: intPtr(5000), Color: "Red", Counter: "1000", SetID: &setID,
		},
		&database.NewCard{
			ID: "OP01-029", Code: "OP01-029", Rarity: "UC", Type: "EVENT", Name: "Radical Beam!!",
			Cost: intPtr(1), Color: "Red", Trigger: "Activate this card's [Main] effect.", SetID: &setID,
		},
	)
	for _, c := range rows {
		if err := db.InsertCard(ctx, c); err != nil {
			t.Fatalf("InsertCard(%s) error = %v", c.ID, err)
		}
	}
}

func (s *testServer) token(t *testing.T, role auth.Role) string {
	t.Helper()
	tok, err := s.tokens.DevToken(role, "")
	if err != nil {
		t.Fatalf("DevToken() error = %v", err)
	}
	return tok
}

func (s *testServer) do(t *testing.T, method, target, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, target, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), dst); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
}
