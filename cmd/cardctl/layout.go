// Cardcast - Trading Card API and Stream Overlay Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cardcast

package main

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/tomtom215/cardcast/internal/broadcast"
	"github.com/tomtom215/cardcast/internal/validation"
)

// layoutFile is an overlay layout for broadcast-test:
//
//	[[cards]]
//	id = "OP01-001"
//	x = 0.25
//	y = 0.5
type layoutFile struct {
	Cards []layoutCard `toml:"cards" json:"cards" validate:"required,min=1,max=10,dive"`
}

type layoutCard struct {
	ID string   `toml:"id" json:"id" validate:"required"`
	X  *float64 `toml:"x" json:"x" validate:"required"`
	Y  *float64 `toml:"y" json:"y" validate:"required"`
}

// loadLayout reads a TOML layout and applies the same limits as
// POST /api/pubsub/broadcast.
func loadLayout(path string) ([]broadcast.Entry, error) {
	var layout layoutFile
	meta, err := toml.DecodeFile(path, &layout)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	if verr := validation.ValidateStruct(&layout); verr != nil {
		return nil, fmt.Errorf("%s: %w", path, verr)
	}

	entries := make([]broadcast.Entry, len(layout.Cards))
	for i, c := range layout.Cards {
		entries[i] = broadcast.Entry{ID: c.ID, X: *c.X, Y: *c.Y}
	}
	return entries, nil
}
