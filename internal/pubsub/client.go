// Cardcast - Trading Card API and Stream Overlay Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cardcast

package pubsub

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/cardcast/internal/auth"
	"github.com/tomtom215/cardcast/internal/breaker"
	"github.com/tomtom215/cardcast/internal/logging"
	"github.com/tomtom215/cardcast/internal/metrics"
)

// TargetBroadcast addresses every viewer of the channel.
const TargetBroadcast = "broadcast"

// BreakerName labels the circuit breaker metrics for PubSub sends.
const BreakerName = "twitch-pubsub"

const (
	defaultTimeout = 10 * time.Second

	// maxErrorBodySize limits how much of an error response is kept.
	maxErrorBodySize = 64 * 1024
)

// Error is a non-2xx response from the PubSub endpoint.
type Error struct {
	StatusCode int
	Body       string
}

func (e *Error) Error() string {
	return fmt.Sprintf("Twitch PubSub error (%d): %s", e.StatusCode, e.Body)
}

// callerFault reports whether err was caused by the request rather than by
// Twitch being unhealthy. Such errors still reach the caller but leave the
// shared breaker alone, so one bad channel or token cannot open it for
// everyone. 429 is left out: a throttled upstream should back off.
func callerFault(err error) bool {
	if errors.Is(err, context.Canceled) {
		return true
	}
	var pe *Error
	if !errors.As(err, &pe) {
		return false
	}
	return pe.StatusCode >= 400 && pe.StatusCode < 500 && pe.StatusCode != http.StatusTooManyRequests
}

// Config holds the values the client is built from.
type Config struct {
	// Secret is the resolved extension secret (see auth.ResolveSecret).
	Secret []byte
	// ClientID is sent as the Client-Id header. It may be empty in
	// development; Twitch then rejects sends with a 4xx.
	ClientID string
	URL      string

	// HTTPClient defaults to a client with a 10 second timeout.
	HTTPClient *http.Client
}

// Client sends Extension PubSub messages for a single extension.
// It is safe for concurrent use.
type Client struct {
	tokens   *auth.TokenManager
	clientID string
	url      string
	http     *http.Client
	cb       *breaker.Breaker
}

// New creates the PubSub client.
func New(cfg Config) (*Client, error) {
	tokens, err := auth.NewTokenManager(cfg.Secret)
	if err != nil {
		return nil, err
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	return &Client{
		tokens:   tokens,
		clientID: cfg.ClientID,
		url:      cfg.URL,
		http:     httpClient,
		cb:       breaker.NewWithSettings(BreakerName, breaker.Settings{IsSuccessful: callerFault}),
	}, nil
}

// CreateServiceToken signs the 60 second token Twitch requires for a send on
// channelID.
func (c *Client) CreateServiceToken(channelID string) (string, error) {
	return c.tokens.ServiceToken(channelID)
}

// Broadcast sends message to every viewer of channelID.
func (c *Client) Broadcast(ctx context.Context, channelID string, message any) error {
	return c.send(ctx, channelID, TargetBroadcast, message)
}

// Whisper sends message to a single viewer of channelID.
func (c *Client) Whisper(ctx context.Context, channelID, userID string, message any) error {
	return c.send(ctx, channelID, "whisper-"+userID, message)
}

type sendRequest struct {
	BroadcasterID     string   `json:"broadcaster_id"`
	Target            []string `json:"target"`
	IsGlobalBroadcast bool     `json:"is_global_broadcast"`
	Message           string   `json:"message"`
}

func (c *Client) send(ctx context.Context, channelID, target string, message any) error {
	token, err := c.CreateServiceToken(channelID)
	if err != nil {
		return fmt.Errorf("failed to create service token: %w", err)
	}

	// Twitch expects the message as a JSON string inside the JSON body.
	text, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to encode message: %w", err)
	}

	body, err := json.Marshal(sendRequest{
		BroadcasterID:     channelID,
		Target:            []string{target},
		IsGlobalBroadcast: false,
		Message:           string(text),
	})
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	logging.Ctx(ctx).Info().
		Str("channel_id", channelID).
		Str("target", target).
		Int("bytes", len(text)).
		Msg("Sending PubSub message")

	start := time.Now()
	err = c.cb.Execute(func() error {
		return c.post(ctx, token, body)
	})
	metrics.RecordPubSubSend(target, time.Since(start))
	return err
}

func (c *Client) post(ctx context.Context, token string, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if c.clientID != "" {
		req.Header.Set("Client-Id", c.clientID)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("PubSub request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{StatusCode: resp.StatusCode, Body: string(readBodyForError(resp.Body))}
	}

	// Drain so the connection can be reused.
	_, _ = io.Copy(io.Discard, resp.Body) //nolint:errcheck // best effort
	return nil
}

// readBodyForError reads at most 64KB of an error response.
func readBodyForError(r io.Reader) []byte {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return []byte("(failed to read response body)")
	}
	if len(body) == maxErrorBodySize {
		return append(body, []byte("\n... (truncated)")...)
	}
	return body
}
