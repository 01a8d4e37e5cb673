// Cardcast - Trading Card API and Stream Overlay Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cardcast

// Package tcgapi downloads the card catalogue from apitcg.com.
package tcgapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/tomtom215/cardcast/internal/breaker"
	"github.com/tomtom215/cardcast/internal/config"
	"github.com/tomtom215/cardcast/internal/logging"
	"github.com/tomtom215/cardcast/internal/metrics"
	"github.com/tomtom215/cardcast/internal/models"
)

// BreakerName labels the circuit breaker metrics for catalogue requests.
const BreakerName = "tcg-api"

// ErrMissingAPIKey is returned when the client has no API key.
var ErrMissingAPIKey = errors.New("TCG API key is required")

// StatusError is a non-2xx response from the card API.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	if e.Status != "" {
		return "API error: " + e.Status
	}
	return fmt.Sprintf("API error: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// Client pages through the card listing. Requests are spaced by the
// configured interval.
type Client struct {
	baseURL  string
	apiKey   string
	pageSize int
	http     *http.Client
	limiter  *rate.Limiter
	cb       *breaker.Breaker
}

// NewClient creates a client from the TCG settings.
func NewClient(cfg *config.TCGConfig) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	limit := rate.Inf
	if cfg.RequestInterval > 0 {
		limit = rate.Every(cfg.RequestInterval)
	}

	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = 100
	}

	return &Client{
		baseURL:  cfg.BaseURL,
		apiKey:   cfg.APIKey,
		pageSize: pageSize,
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
		limiter: rate.NewLimiter(limit, 1),
		cb:      breaker.New(BreakerName),
	}, nil
}

// FetchPage downloads one page of the listing.
func (c *Client) FetchPage(ctx context.Context, page int) (*models.TCGPage, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	logging.Info().Int("page", page).Msgf("Fetching page %d...", page)

	var result models.TCGPage
	err := c.cb.Execute(func() error {
		return c.get(ctx, page, &result)
	})
	if err != nil {
		return nil, err
	}

	metrics.TCGPagesFetched.Inc()
	return &result, nil
}

// FetchAll downloads every page and returns the cards in listing order.
func (c *Client) FetchAll(ctx context.Context) ([]json.RawMessage, error) {
	first, err := c.FetchPage(ctx, 1)
	if err != nil {
		return nil, err
	}

	logging.Info().
		Int("total_cards", first.Total).
		Int("total_pages", first.TotalPages).
		Msgf("Total cards: %d, Total pages: %d", first.Total, first.TotalPages)

	all := make([]json.RawMessage, 0, first.Total)
	all = append(all, first.Data...)

	for page := 2; page <= first.TotalPages; page++ {
		next, err := c.FetchPage(ctx, page)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", page, err)
		}
		all = append(all, next.Data...)
	}

	return all, nil
}

func (c *Client) get(ctx context.Context, page int, result *models.TCGPage) error {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("limit", strconv.Itoa(c.pageSize))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), http.NoBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64*1024)) //nolint:errcheck // best effort
		return &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode page %d: %w", page, err)
	}
	return nil
}
