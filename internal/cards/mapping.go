// Cardcast - Trading Card API and Stream Overlay Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cardcast

package cards

import (
	"database/sql"

	"github.com/goccy/go-json"

	"github.com/tomtom215/cardcast/internal/database"
	"github.com/tomtom215/cardcast/internal/logging"
	"github.com/tomtom215/cardcast/internal/models"
)

// FromRecord maps a stored row to the API card. Null text becomes "",
// null cost and power stay null, a missing set becomes {name:""}, null
// notes become [] and null images become empty URLs.
func FromRecord(r *database.CardRecord) models.Card {
	c := models.Card{
		ID:      r.ID,
		Code:    r.Code,
		Rarity:  r.Rarity,
		Type:    models.CardType(r.Type.String),
		Name:    r.Name,
		Cost:    intOrNil(r.Cost),
		Power:   intOrNil(r.Power),
		Counter: r.Counter.String,
		Color:   r.Color,
		Family:  r.Family.String,
		Ability: r.Ability.String,
		Trigger: r.Trigger.String,
		Set:     models.SetRef{Name: r.SetName.String},
		Notes:   []models.Note{},
	}

	decodeColumn(r.ID, "images", r.Images, &c.Images)
	decodeColumn(r.ID, "notes", r.Notes, &c.Notes)
	if c.Notes == nil {
		c.Notes = []models.Note{}
	}
	if len(r.Attribute) > 0 && string(r.Attribute) != "null" {
		var attr models.Attribute
		if decodeColumn(r.ID, "attribute", r.Attribute, &attr) {
			c.Attribute = &attr
		}
	}
	return c
}

// decodeColumn unmarshals a JSON column into dst, leaving dst untouched for
// NULL. A corrupt value is logged and skipped so one bad row does not fail
// a whole page.
func decodeColumn(id, column string, raw []byte, dst interface{}) bool {
	if len(raw) == 0 {
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		logging.Warn().Str("card_id", id).Str("column", column).Err(err).Msg("Invalid JSON column")
		return false
	}
	return true
}

func intOrNil(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int64)
	return &v
}
