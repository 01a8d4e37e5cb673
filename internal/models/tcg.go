// Cardcast - Trading Card API and Stream Overlay Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cardcast

package models

import "github.com/goccy/go-json"

// TCGPage is one page of the apitcg.com card listing.
type TCGPage struct {
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	Total      int               `json:"total"`
	TotalPages int               `json:"totalPages"`
	Data       []json.RawMessage `json:"data"`
}

// RawCard is a card as published by the TCG API and stored in
// data/all-cards.json. Attribute and Set may be absent.
type RawCard struct {
	ID        string     `json:"id"`
	Code      string     `json:"code"`
	Rarity    string     `json:"rarity"`
	Type      string     `json:"type"`
	Name      string     `json:"name"`
	Images    *Images    `json:"images"`
	Cost      *int       `json:"cost"`
	Attribute *Attribute `json:"attribute"`
	Power     *int       `json:"power"`
	Counter   string     `json:"counter"`
	Color     string     `json:"color"`
	Family    string     `json:"family"`
	Ability   string     `json:"ability"`
	Trigger   string     `json:"trigger"`
	Set       *SetRef    `json:"set"`
	Notes     []Note     `json:"notes"`
}

// SetName returns the set name or "" when the card has none.
func (c *RawCard) SetName() string {
	if c.Set == nil {
		return ""
	}
	return c.Set.Name
}
