// Cardcast - Trading Card API and Stream Overlay Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cardcast

package database

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/cardcast/internal/logging"
)

// Migration represents a versioned schema change. Each dialect carries its
// own statements; they run in order and the version is recorded once all
// succeed.
type Migration struct {
	Version     int
	Name        string
	Description string
	Postgres    []string
	SQLite      []string
}

const schemaMigrationsTable = `
CREATE TABLE IF NOT EXISTS schema_migrations (
	version INTEGER PRIMARY KEY,
	name TEXT NOT NULL,
	description TEXT,
	applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`

// schemaContext returns a context with timeout for schema operations
func schemaContext(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, 60*time.Second)
}

// Migrations are append-only: never modify or remove one that has shipped.
var migrations = []Migration{
	{
		Version:     1,
		Name:        "create_sets",
		Description: "Card expansions, unique by name",
		Postgres: []string{
			`CREATE TABLE IF NOT EXISTS sets (
				id INTEGER GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
				name VARCHAR(255) NOT NULL UNIQUE
			)`,
		},
		SQLite: []string{
			`CREATE TABLE IF NOT EXISTS sets (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				name VARCHAR(255) NOT NULL UNIQUE
			)`,
		},
	},
	{
		Version:     2,
		Name:        "create_cards",
		Description: "Card catalogue with JSON image, attribute and note columns",
		Postgres: []string{
			`DO $$ BEGIN
				CREATE TYPE card_type AS ENUM ('LEADER', 'CHARACTER', 'EVENT', 'STAGE');
			EXCEPTION WHEN duplicate_object THEN NULL;
			END $$`,
			`CREATE TABLE IF NOT EXISTS cards (
				id VARCHAR(50) PRIMARY KEY,
				code VARCHAR(50) NOT NULL,
				rarity VARCHAR(20) NOT NULL,
				type card_type,
				name VARCHAR(255) NOT NULL,
				images JSONB,
				cost INTEGER,
				attribute JSONB,
				power INTEGER,
				counter VARCHAR(10),
				color VARCHAR(50) NOT NULL,
				family VARCHAR(500),
				ability TEXT,
				"trigger" TEXT,
				set_id INTEGER REFERENCES sets(id),
				notes JSONB
			)`,
		},
		SQLite: []string{
			`CREATE TABLE IF NOT EXISTS cards (
				id VARCHAR(50) PRIMARY KEY,
				code VARCHAR(50) NOT NULL,
				rarity VARCHAR(20) NOT NULL,
				type TEXT CHECK (type IN ('LEADER', 'CHARACTER', 'EVENT', 'STAGE')),
				name VARCHAR(255) NOT NULL,
				images TEXT,
				cost INTEGER,
				attribute TEXT,
				power INTEGER,
				counter VARCHAR(10),
				color VARCHAR(50) NOT NULL,
				family VARCHAR(500),
				ability TEXT,
				"trigger" TEXT,
				set_id INTEGER REFERENCES sets(id),
				notes TEXT
			)`,
		},
	},
	{
		Version:     3,
		Name:        "card_indexes",
		Description: "Indexes on every filterable card column",
		Postgres:    cardIndexes,
		SQLite:      cardIndexes,
	},
}

var cardIndexes = []string{
	`CREATE INDEX IF NOT EXISTS cards_code_idx ON cards (code)`,
	`CREATE INDEX IF NOT EXISTS cards_name_idx ON cards (name)`,
	`CREATE INDEX IF NOT EXISTS cards_type_idx ON cards (type)`,
	`CREATE INDEX IF NOT EXISTS cards_color_idx ON cards (color)`,
	`CREATE INDEX IF NOT EXISTS cards_set_id_idx ON cards (set_id)`,
	`CREATE INDEX IF NOT EXISTS cards_rarity_idx ON cards (rarity)`,
}

func (m Migration) statements(d Dialect) []string {
	if d == DialectPostgres {
		return m.Postgres
	}
	return m.SQLite
}

// Migrate applies every migration that has not run yet. It is safe to call
// on every start.
func (db *DB) Migrate(ctx context.Context) error {
	ctx, cancel := schemaContext(ctx)
	defer cancel()

	if _, err := db.conn.ExecContext(ctx, schemaMigrationsTable); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	applied, err := db.appliedVersions(ctx)
	if err != nil {
		return fmt.Errorf("failed to get applied migrations: %w", err)
	}

	newMigrations := 0
	for _, m := range migrations {
		if applied[m.Version] {
			continue
		}

		for _, stmt := range m.statements(db.dialect) {
			if _, err := db.conn.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("failed to execute migration v%d (%s): %w", m.Version, m.Name, err)
			}
		}

		_, err := db.conn.ExecContext(ctx,
			db.bind(`INSERT INTO schema_migrations (version, name, description) VALUES (?, ?, ?)`),
			m.Version, m.Name, m.Description)
		if err != nil {
			return fmt.Errorf("failed to record migration v%d: %w", m.Version, err)
		}

		newMigrations++
	}

	if newMigrations > 0 {
		logging.Info().Int("applied", newMigrations).Msg("Applied database migrations")
	}
	return nil
}

func (db *DB) appliedVersions(ctx context.Context) (map[int]bool, error) {
	rows, err := db.conn.QueryContext(ctx, `SELECT version FROM schema_migrations ORDER BY version`)
	if err != nil {
		return nil, fmt.Errorf("failed to query applied migrations: %w", err)
	}
	defer closeWithLog(rows, "rows")

	applied := make(map[int]bool)
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("failed to scan migration row: %w", err)
		}
		applied[v] = true
	}
	return applied, rows.Err()
}

// SchemaVersion returns the highest applied migration version
func (db *DB) SchemaVersion(ctx context.Context) (int, error) {
	var version int
	err := db.conn.QueryRowContext(ctx, `SELECT COALESCE(MAX(version), 0) FROM schema_migrations`).Scan(&version)
	if err != nil {
		return 0, fmt.Errorf("failed to get schema version: %w", err)
	}
	return version, nil
}
