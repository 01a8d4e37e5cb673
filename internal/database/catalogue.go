// Cardcast - Trading Card API and Stream Overlay Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cardcast

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/cardcast/internal/metrics"
	"github.com/tomtom215/cardcast/internal/models"
)

// NewCard is a card row to insert. SetID is nil when the card has no set.
type NewCard struct {
	ID        string
	Code      string
	Rarity    string
	Type      string
	Name      string
	Images    *models.Images
	Cost      *int
	Attribute *models.Attribute
	Power     *int
	Counter   string
	Color     string
	Family    string
	Ability   string
	Trigger   string
	SetID     *int64
	Notes     []models.Note
}

// FindSetByName returns the id of the named set, or ErrNotFound.
func (db *DB) FindSetByName(ctx context.Context, name string) (int64, error) {
	var id int64
	err := db.conn.QueryRowContext(ctx, db.bind(`SELECT id FROM sets WHERE name = ? LIMIT 1`), name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to find set %q: %w", name, err)
	}
	return id, nil
}

// CreateSet inserts a set and returns its generated id.
func (db *DB) CreateSet(ctx context.Context, name string) (int64, error) {
	start := time.Now()
	var id int64
	err := db.conn.QueryRowContext(ctx, db.bind(`INSERT INTO sets (name) VALUES (?) RETURNING id`), name).Scan(&id)
	metrics.RecordDBQuery("insert", "sets", time.Since(start), err)
	if err != nil {
		return 0, fmt.Errorf("failed to create set %q: %w", name, err)
	}
	return id, nil
}

// CardExists reports whether a card with id is stored.
func (db *DB) CardExists(ctx context.Context, id string) (bool, error) {
	var one int
	err := db.conn.QueryRowContext(ctx, db.bind(`SELECT 1 FROM cards WHERE id = ? LIMIT 1`), id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check card %s: %w", id, err)
	}
	return true, nil
}

// InsertCard stores one card. JSON columns are written as text so both
// jsonb and TEXT columns accept them.
func (db *DB) InsertCard(ctx context.Context, c *NewCard) error {
	var images, attribute, notes sql.NullString
	var err error
	if c.Images != nil {
		if images, err = jsonText(c.Images); err != nil {
			return fmt.Errorf("failed to encode images for %s: %w", c.ID, err)
		}
	}
	if c.Attribute != nil {
		if attribute, err = jsonText(c.Attribute); err != nil {
			return fmt.Errorf("failed to encode attribute for %s: %w", c.ID, err)
		}
	}
	if c.Notes != nil {
		if notes, err = jsonText(c.Notes); err != nil {
			return fmt.Errorf("failed to encode notes for %s: %w", c.ID, err)
		}
	}

	q := db.bind(`INSERT INTO cards (id, code, rarity, type, name, images, cost, attribute, power,
		counter, color, family, ability, "trigger", set_id, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)

	start := time.Now()
	_, err = db.conn.ExecContext(ctx, q,
		c.ID, c.Code, c.Rarity, nullString(c.Type), c.Name, images, nullInt(c.Cost), attribute, nullInt(c.Power),
		nullString(c.Counter), c.Color, nullString(c.Family), nullString(c.Ability), nullString(c.Trigger),
		nullInt64(c.SetID), notes)
	metrics.RecordDBQuery("insert", "cards", time.Since(start), err)
	if err != nil {
		return fmt.Errorf("failed to insert card %s: %w", c.ID, err)
	}
	return nil
}

// Counts returns the total number of cards and sets.
func (db *DB) Counts(ctx context.Context) (cards, sets int64, err error) {
	if err := db.conn.QueryRowContext(ctx, `SELECT count(*) FROM cards`).Scan(&cards); err != nil {
		return 0, 0, fmt.Errorf("failed to count cards: %w", err)
	}
	if err := db.conn.QueryRowContext(ctx, `SELECT count(*) FROM sets`).Scan(&sets); err != nil {
		return 0, 0, fmt.Errorf("failed to count sets: %w", err)
	}
	return cards, sets, nil
}

func jsonText(v interface{}) (sql.NullString, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return sql.NullString{}, err
	}
	return sql.NullString{String: string(b), Valid: true}, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullInt(p *int) sql.NullInt64 {
	if p == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*p), Valid: true}
}

func nullInt64(p *int64) sql.NullInt64 {
	if p == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *p, Valid: true}
}
