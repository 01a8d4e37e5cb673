// Cardcast - Trading Card API and Stream Overlay Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cardcast

/*
Package database provides the relational card store.

Two dialects are supported behind the same DB type, selected from
DATABASE_URL:

  - PostgreSQL via lib/pq (postgres:// or postgresql://): production
  - SQLite via modernc.org/sqlite (sqlite://path or sqlite://:memory:):
    local development and tests, no cgo required

Queries are written once with "?" placeholders and rebound to "$n" for
PostgreSQL (see the query subpackage). The differences that remain are
schema level: PostgreSQL stores images, attribute and notes as JSONB and
type as the card_type enum, SQLite stores JSON as TEXT and enforces the
type with a CHECK constraint. Name search uses ILIKE on PostgreSQL and
lower() LIKE lower() on SQLite.

Schema:

	sets  (id, name UNIQUE)
	cards (id PK, code, rarity, type, name, images, cost, attribute, power,
	       counter, color, family, ability, trigger, set_id -> sets.id, notes)

Migrations are versioned and recorded in schema_migrations; Migrate only
applies versions that have not run.

Usage:

	db, err := database.Open(ctx, &cfg.Database)
	if err != nil {
	    return err
	}
	defer db.Close()
	if err := db.Migrate(ctx); err != nil {
	    return err
	}
	rows, err := db.ListCards(ctx, database.Filter{Type: "LEADER"}, 20, 0)
*/
package database
