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

	"github.com/tomtom215/cardcast/internal/database/query"
	"github.com/tomtom215/cardcast/internal/metrics"
)

// CardRecord is one row of cards left-joined with sets. Nullable columns
// keep their SQL null wrappers; JSON columns are raw bytes (nil for NULL).
type CardRecord struct {
	ID        string
	Code      string
	Rarity    string
	Type      sql.NullString
	Name      string
	Images    []byte
	Cost      sql.NullInt64
	Attribute []byte
	Power     sql.NullInt64
	Counter   sql.NullString
	Color     string
	Family    sql.NullString
	Ability   sql.NullString
	Trigger   sql.NullString
	SetName   sql.NullString
	Notes     []byte
}

// Filter holds the optional card list predicates. Zero values are ignored;
// an empty Filter matches every card.
type Filter struct {
	Name   string // case-insensitive substring
	Type   string
	Color  string
	Rarity string
	Set    string // exact set name
}

const cardColumns = `c.id, c.code, c.rarity, c.type, c.name, c.images, c.cost, c.attribute,
	c.power, c.counter, c.color, c.family, c.ability, c."trigger", s.name, c.notes`

const cardsFrom = `FROM cards c LEFT JOIN sets s ON s.id = c.set_id`

// where folds the filter into a single conjunctive predicate.
func (f Filter) where(d Dialect) (string, []interface{}) {
	return query.NewWhereBuilder().
		AddContainsFold("c.name", f.Name, d == DialectPostgres).
		AddEquals("c.type", f.Type).
		AddEquals("c.color", f.Color).
		AddEquals("c.rarity", f.Rarity).
		AddEquals("s.name", f.Set).
		Build()
}

func scanCard(row interface{ Scan(...interface{}) error }) (CardRecord, error) {
	var r CardRecord
	err := row.Scan(&r.ID, &r.Code, &r.Rarity, &r.Type, &r.Name, &r.Images, &r.Cost, &r.Attribute,
		&r.Power, &r.Counter, &r.Color, &r.Family, &r.Ability, &r.Trigger, &r.SetName, &r.Notes)
	return r, err
}

// ListCards returns one page of cards matching f, ordered by id.
func (db *DB) ListCards(ctx context.Context, f Filter, limit, offset int) ([]CardRecord, error) {
	where, args := f.where(db.dialect)
	q := db.bind(`SELECT ` + cardColumns + ` ` + cardsFrom + ` WHERE ` + where + ` ORDER BY c.id LIMIT ? OFFSET ?`)
	args = append(args, limit, offset)

	start := time.Now()
	records, err := db.queryCards(ctx, q, args...)
	metrics.RecordDBQuery("list", "cards", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}
	return records, nil
}

// CountCards returns the number of cards matching f.
func (db *DB) CountCards(ctx context.Context, f Filter) (int64, error) {
	where, args := f.where(db.dialect)
	q := `SELECT count(*) FROM cards c`
	if f.Set != "" {
		q += ` LEFT JOIN sets s ON s.id = c.set_id`
	}
	q = db.bind(q + ` WHERE ` + where)

	start := time.Now()
	var total int64
	err := db.conn.QueryRowContext(ctx, q, args...).Scan(&total)
	metrics.RecordDBQuery("count", "cards", time.Since(start), err)
	if err != nil {
		return 0, fmt.Errorf("failed to count cards: %w", err)
	}
	return total, nil
}

// GetCard returns the card with the given id or ErrNotFound.
func (db *DB) GetCard(ctx context.Context, id string) (*CardRecord, error) {
	q := db.bind(`SELECT ` + cardColumns + ` ` + cardsFrom + ` WHERE c.id = ? LIMIT 1`)

	start := time.Now()
	r, err := scanCard(db.conn.QueryRowContext(ctx, q, id))
	if errors.Is(err, sql.ErrNoRows) {
		metrics.RecordDBQuery("get", "cards", time.Since(start), nil)
		return nil, ErrNotFound
	}
	metrics.RecordDBQuery("get", "cards", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to get card %s: %w", id, err)
	}
	return &r, nil
}

// GetCardsByIDs returns every card whose id is in ids with a single IN
// query. Unknown ids are simply absent from the result.
func (db *DB) GetCardsByIDs(ctx context.Context, ids []string) ([]CardRecord, error) {
	if len(ids) == 0 {
		return []CardRecord{}, nil
	}
	where, args := query.NewWhereBuilder().AddIn("c.id", ids).Build()
	q := db.bind(`SELECT ` + cardColumns + ` ` + cardsFrom + ` WHERE ` + where)

	start := time.Now()
	records, err := db.queryCards(ctx, q, args...)
	metrics.RecordDBQuery("batch", "cards", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to look up cards: %w", err)
	}
	return records, nil
}

func (db *DB) queryCards(ctx context.Context, q string, args ...interface{}) ([]CardRecord, error) {
	rows, err := db.conn.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer closeWithLog(rows, "rows")

	records := []CardRecord{}
	for rows.Next() {
		r, err := scanCard(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
