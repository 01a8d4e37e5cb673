// Cardcast - Trading Card API and Stream Overlay Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cardcast

// Package seed loads a downloaded card catalogue into the database.
//
// Seeding is additive: existing sets are reused and cards whose id is
// already stored are reported as conflicts and left untouched.
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/goccy/go-json"

	"github.com/tomtom215/cardcast/internal/database"
	"github.com/tomtom215/cardcast/internal/logging"
	"github.com/tomtom215/cardcast/internal/metrics"
	"github.com/tomtom215/cardcast/internal/models"
)

// ProgressEvery is how often (in cards) insert progress is logged.
const ProgressEvery = 500

// Store is the subset of the database the seeder writes through.
type Store interface {
	FindSetByName(ctx context.Context, name string) (int64, error)
	CreateSet(ctx context.Context, name string) (int64, error)
	CardExists(ctx context.Context, id string) (bool, error)
	InsertCard(ctx context.Context, c *database.NewCard) error
	Counts(ctx context.Context) (cards, sets int64, err error)
}

// Duplicate is an id that occurs more than once in the input.
type Duplicate struct {
	ID    string
	Count int
}

// Problem is one validation failure.
type Problem struct {
	CardID  string
	Index   int
	Field   string
	Message string
}

// FieldProblems groups problems for one field.
type FieldProblems struct {
	Field    string
	Problems []Problem
}

// CardError is a card that failed to insert.
type CardError struct {
	ID    string
	Error string
}

// CreatedSet records a set created during the run.
type CreatedSet struct {
	ID   int64
	Name string
}

// Report describes a seeding run.
type Report struct {
	Total        int
	Duplicates   []Duplicate
	Problems     []Problem
	InvalidCards int
	Valid        int

	SetsCreated  []CreatedSet
	SetsExisting int

	Inserted  int
	Conflicts []string
	Errors    []CardError

	DBCards int64
	DBSets  int64
}

// ProblemsByField groups Problems by field in first-seen order.
func (r *Report) ProblemsByField() []FieldProblems {
	var groups []FieldProblems
	index := make(map[string]int)
	for _, p := range r.Problems {
		i, ok := index[p.Field]
		if !ok {
			i = len(groups)
			index[p.Field] = i
			groups = append(groups, FieldProblems{Field: p.Field})
		}
		groups[i].Problems = append(groups[i].Problems, p)
	}
	return groups
}

// Seeder inserts catalogue cards through a Store.
type Seeder struct {
	store Store
}

// New creates a seeder.
func New(store Store) *Seeder {
	return &Seeder{store: store}
}

// Run validates raw cards and inserts the valid ones. Per-card insert
// failures are collected in the report; only set and count failures
// abort the run.
func (s *Seeder) Run(ctx context.Context, raw []json.RawMessage) (*Report, error) {
	report := &Report{Total: len(raw)}

	parsed := make([]models.RawCard, len(raw))
	decodeFailed := make(map[int]string)
	for i, data := range raw {
		if err := json.Unmarshal(data, &parsed[i]); err != nil {
			decodeFailed[i] = err.Error()
		}
	}

	report.Duplicates = findDuplicates(parsed)

	valid := make([]models.RawCard, 0, len(parsed))
	for i := range parsed {
		var problems []Problem
		if msg, ok := decodeFailed[i]; ok {
			problems = []Problem{{CardID: "UNKNOWN", Index: i, Field: "json", Message: msg}}
		} else {
			problems = Validate(&parsed[i], i)
		}
		if len(problems) > 0 {
			report.Problems = append(report.Problems, problems...)
			report.InvalidCards++
			metrics.RecordSeedCard("invalid")
			continue
		}
		valid = append(valid, parsed[i])
	}
	report.Valid = len(valid)

	setIDs, err := s.resolveSets(ctx, valid, report)
	if err != nil {
		return report, err
	}

	s.insertCards(ctx, valid, setIDs, report)

	report.DBCards, report.DBSets, err = s.store.Counts(ctx)
	if err != nil {
		return report, fmt.Errorf("failed to count rows: %w", err)
	}
	return report, nil
}

func findDuplicates(cards []models.RawCard) []Duplicate {
	counts := make(map[string]int, len(cards))
	var order []string
	for i := range cards {
		id := cards[i].ID
		if counts[id] == 0 {
			order = append(order, id)
		}
		counts[id]++
	}

	var dups []Duplicate
	for _, id := range order {
		if counts[id] > 1 {
			dups = append(dups, Duplicate{ID: id, Count: counts[id]})
		}
	}
	return dups
}

func (s *Seeder) resolveSets(ctx context.Context, cards []models.RawCard, report *Report) (map[string]int64, error) {
	ids := make(map[string]int64)
	for i := range cards {
		name := cards[i].SetName()
		if _, ok := ids[name]; ok {
			continue
		}

		id, err := s.store.FindSetByName(ctx, name)
		switch {
		case err == nil:
			report.SetsExisting++
		case errors.Is(err, database.ErrNotFound):
			id, err = s.store.CreateSet(ctx, name)
			if err != nil {
				return nil, fmt.Errorf("failed to create set %q: %w", name, err)
			}
			report.SetsCreated = append(report.SetsCreated, CreatedSet{ID: id, Name: name})
			logging.Info().Int64("set_id", id).Str("set", name).Msg("Created set")
		default:
			return nil, err
		}
		ids[name] = id
	}
	return ids, nil
}

func (s *Seeder) insertCards(ctx context.Context, cards []models.RawCard, setIDs map[string]int64, report *Report) {
	for i := range cards {
		raw := &cards[i]

		exists, err := s.store.CardExists(ctx, raw.ID)
		if err == nil && exists {
			report.Conflicts = append(report.Conflicts, raw.ID)
			metrics.RecordSeedCard("existing")
		} else {
			if err == nil {
				err = s.store.InsertCard(ctx, toNewCard(raw, setIDs))
			}
			if err != nil {
				report.Errors = append(report.Errors, CardError{ID: raw.ID, Error: err.Error()})
				metrics.RecordSeedCard("error")
				logging.Warn().Str("card_id", raw.ID).Err(err).Msg("Error inserting card")
			} else {
				report.Inserted++
				metrics.RecordSeedCard("inserted")
			}
		}

		if done := i + 1; done%ProgressEvery == 0 || done == len(cards) {
			logging.Info().
				Int("done", done).
				Int("total", len(cards)).
				Int("inserted", report.Inserted).
				Int("conflicts", len(report.Conflicts)).
				Int("errors", len(report.Errors)).
				Msg("Seed progress")
		}
	}
}

func toNewCard(raw *models.RawCard, setIDs map[string]int64) *database.NewCard {
	c := &database.NewCard{
		ID:        raw.ID,
		Code:      raw.Code,
		Rarity:    raw.Rarity,
		Type:      raw.Type,
		Name:      raw.Name,
		Images:    raw.Images,
		Cost:      raw.Cost,
		Attribute: raw.Attribute,
		Power:     raw.Power,
		Counter:   raw.Counter,
		Color:     raw.Color,
		Family:    raw.Family,
		Ability:   raw.Ability,
		Trigger:   raw.Trigger,
		Notes:     raw.Notes,
	}
	if id, ok := setIDs[raw.SetName()]; ok {
		c.SetID = &id
	}
	return c
}
