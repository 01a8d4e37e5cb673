// Cardcast - Trading Card API and Stream Overlay Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cardcast

package database

import (
	"context"
	"fmt"
	"testing"

	"github.com/tomtom215/cardcast/internal/config"
	"github.com/tomtom215/cardcast/internal/models"
)

func intPtr(i int) *int { return &i }

// setupTestDB opens a migrated in-memory SQLite database.
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := Open(context.Background(), &config.DatabaseConfig{URL: "sqlite://:memory:"})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}
	return db
}

// seedTestCards inserts six leaders, a few characters and an event across
// two sets, plus one card without a set.
func seedTestCards(t *testing.T, db *DB) {
	t.Helper()
	ctx := context.Background()

	romance, err := db.CreateSet(ctx, "-ROMANCE DAWN- [OP01]")
	if err != nil {
		t.Fatalf("CreateSet() error = %v", err)
	}
	paramount, err := db.CreateSet(ctx, "-PARAMOUNT WAR- [OP02]")
	if err != nil {
		t.Fatalf("CreateSet() error = %v", err)
	}

	var cards []*NewCard
	for i := 1; i <= 6; i++ {
		cards = append(cards, &NewCard{
			ID:     fmt.Sprintf("OP01-%03d", i),
			Code:   fmt.Sprintf("OP01-%03d", i),
			Rarity: "L",
			Type:   "LEADER",
			Name:   fmt.Sprintf("Leader %d", i),
			Images: &models.Images{Small: "s.png", Large: "l.png"},
			Power:  intPtr(5000),
			Color:  "Red",
			SetID:  &romance,
			Notes:  []models.Note{},
		})
	}
	cards = append(cards,
		&NewCard{
			ID: "OP01-024", Code: "OP01-024", Rarity: "SR", Type: "CHARACTER",
			Name: "Monkey.D.Luffy", Cost: intPtr(5), Power: intPtr(6000), Counter: "-",
			Attribute: &models.Attribute{Name: "Strike", Image: "strike.png"},
			Color:     "Red", Family: "Straw Hat Crew",
			Ability: "[Blocker]\n[On Play] Draw 1 card.", SetID: &romance,
			Notes: []models.Note{{Name: "errata", URL: "https://example.com/errata"}},
		},
		&NewCard{
			ID: "OP01-025", Code: "OP01-025", Rarity: "SR", Type: "CHARACTER",
			Name: "Roronoa Zoro", Cost: intPtr(3), Power: intPtr(5000),
			Color: "Green", Family: "Straw Hat Crew", SetID: &romance,
		},
		&NewCard{
			ID: "OP02-001", Code: "OP02-001", Rarity: "L", Type: "LEADER",
			Name: "Edward.Newgate", Power: intPtr(6000), Color: "Red", SetID: &paramount,
		},
		&NewCard{
			ID: "OP02-100", Code: "OP02-100", Rarity: "C", Type: "EVENT",
			Name: "100% Gum-Gum", Cost: intPtr(1), Color: "Blue", Trigger: "Draw 1 card.",
			SetID: &paramount,
		},
		&NewCard{
			ID: "P-001", Code: "P-001", Rarity: "P", Type: "CHARACTER",
			Name: "Promo luffy", Color: "Red",
		},
	)

	for _, c := range cards {
		if err := db.InsertCard(ctx, c); err != nil {
			t.Fatalf("InsertCard(%s) error = %v", c.ID, err)
		}
	}
}
