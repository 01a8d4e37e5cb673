// Cardcast - Trading Card API and Stream Overlay Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cardcast

// Package cards serves the card catalogue: filtered pagination, lookup by
// id and the batch lookup used by broadcasts.
package cards

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/cardcast/internal/database"
	"github.com/tomtom215/cardcast/internal/models"
	"github.com/tomtom215/cardcast/internal/pagination"
)

// ErrCardNotFound is returned by Get when no card has the requested id.
var ErrCardNotFound = errors.New("card not found")

// Store is the subset of *database.DB the service reads from.
type Store interface {
	ListCards(ctx context.Context, f database.Filter, limit, offset int) ([]database.CardRecord, error)
	CountCards(ctx context.Context, f database.Filter) (int64, error)
	GetCard(ctx context.Context, id string) (*database.CardRecord, error)
	GetCardsByIDs(ctx context.Context, ids []string) ([]database.CardRecord, error)
}

// Query is a list request: optional filters plus pagination.
type Query struct {
	Name   string
	Type   string
	Color  string
	Rarity string
	Set    string
	Page   pagination.Params
}

// Service answers card queries.
type Service struct {
	store Store
}

// NewService creates a Service backed by store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// List returns one page of cards. The page and the total are read
// concurrently; they are not taken from one snapshot.
func (s *Service) List(ctx context.Context, q Query) (pagination.Page[models.Card], error) {
	// An unknown type can never match; PostgreSQL would also reject it
	// against the card_type enum.
	if q.Type != "" && !models.CardType(q.Type).Valid() {
		return pagination.NewPage[models.Card](nil, 0, q.Page), nil
	}

	f := database.Filter{
		Name:   q.Name,
		Type:   q.Type,
		Color:  q.Color,
		Rarity: q.Rarity,
		Set:    q.Set,
	}

	var (
		records []database.CardRecord
		total   int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = s.store.ListCards(gctx, f, q.Page.Limit, q.Page.Offset())
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.store.CountCards(gctx, f)
		return err
	})
	if err := g.Wait(); err != nil {
		return pagination.Page[models.Card]{}, err
	}

	data := make([]models.Card, 0, len(records))
	for i := range records {
		data = append(data, FromRecord(&records[i]))
	}
	return pagination.NewPage(data, total, q.Page), nil
}

// Get returns the card with id or ErrCardNotFound.
func (s *Service) Get(ctx context.Context, id string) (*models.Card, error) {
	rec, err := s.store.GetCard(ctx, id)
	if errors.Is(err, database.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrCardNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	card := FromRecord(rec)
	return &card, nil
}

// GetMany looks up all ids in one query and returns the found cards keyed
// by id. Missing ids are absent from the map.
func (s *Service) GetMany(ctx context.Context, ids []string) (map[string]models.Card, error) {
	records, err := s.store.GetCardsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	found := make(map[string]models.Card, len(records))
	for i := range records {
		found[records[i].ID] = FromRecord(&records[i])
	}
	return found, nil
}
