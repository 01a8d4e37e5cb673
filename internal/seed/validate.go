// Cardcast - Trading Card API and Stream Overlay Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cardcast

package seed

import "github.com/tomtom215/cardcast/internal/models"

// Validate checks the fields a stored card cannot do without.
// index is the card's position in the input file.
func Validate(c *models.RawCard, index int) []Problem {
	var problems []Problem
	add := func(field, message string) {
		id := c.ID
		if id == "" {
			id = "UNKNOWN"
		}
		problems = append(problems, Problem{CardID: id, Index: index, Field: field, Message: message})
	}

	if c.ID == "" {
		add("id", "Missing id")
	}
	if c.Code == "" {
		add("code", "Missing code")
	}
	if c.Rarity == "" {
		add("rarity", "Missing rarity")
	}
	switch {
	case c.Type == "":
		add("type", "Missing type")
	case !models.CardType(c.Type).Valid():
		add("type", "Invalid type: "+c.Type)
	}
	if c.Name == "" {
		add("name", "Missing name")
	}
	if c.Color == "" {
		add("color", "Missing color")
	}
	if c.SetName() == "" {
		add("set.name", "Missing set name")
	}

	return problems
}
