// Cardcast - Trading Card API and Stream Overlay Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cardcast

package models

import "slices"

// CardType is the printed card category.
type CardType string

const (
	CardTypeLeader    CardType = "LEADER"
	CardTypeCharacter CardType = "CHARACTER"
	CardTypeEvent     CardType = "EVENT"
	CardTypeStage     CardType = "STAGE"
)

// CardTypes lists every valid card type in schema order.
var CardTypes = []CardType{CardTypeLeader, CardTypeCharacter, CardTypeEvent, CardTypeStage}

// Valid reports whether t is one of CardTypes.
func (t CardType) Valid() bool {
	return slices.Contains(CardTypes, t)
}

// CardRarities lists the rarity codes printed on cards.
var CardRarities = []string{"L", "C", "UC", "R", "SR", "SEC", "SP CARD", "P", "TR"}

// CardColors lists single and dual colors.
var CardColors = []string{
	"Red", "Blue", "Green", "Purple", "Black", "Yellow",
	"Red/Green", "Red/Blue", "Red/Black", "Red/Purple", "Red/Yellow",
	"Blue/Black", "Blue/Purple", "Blue/Yellow",
	"Green/Blue", "Green/Black", "Green/Purple", "Green/Yellow",
	"Purple/Black", "Purple/Yellow",
	"Black/Yellow",
}

// CardAttributes lists attribute names. "Slash / Wisdom" keeps the spacing
// used by the upstream catalogue.
var CardAttributes = []string{
	"Strike", "Slash", "Ranged", "Special", "Wisdom",
	"Strike/Ranged", "Strike/Special", "Strike/Wisdom",
	"Slash/Special", "Slash/Strike", "Slash / Wisdom",
}

// IsRarity reports whether s is a known rarity code.
func IsRarity(s string) bool { return slices.Contains(CardRarities, s) }

// IsColor reports whether s is a known color.
func IsColor(s string) bool { return slices.Contains(CardColors, s) }

// Images holds the card art URLs.
type Images struct {
	Small string `json:"small"`
	Large string `json:"large"`
}

// Attribute is the combat attribute with its icon URL.
type Attribute struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

// Note is an errata or ruling link attached to a card.
type Note struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// SetRef names the expansion a card belongs to.
type SetRef struct {
	Name string `json:"name"`
}

// Card is the API representation of a card.
//
// Cost and Power are null for cards that have none (events, stages). Text
// fields are never null; missing values are "".
type Card struct {
	ID        string     `json:"id"`
	Code      string     `json:"code"`
	Rarity    string     `json:"rarity"`
	Type      CardType   `json:"type"`
	Name      string     `json:"name"`
	Images    Images     `json:"images"`
	Cost      *int       `json:"cost"`
	Attribute *Attribute `json:"attribute"`
	Power     *int       `json:"power"`
	Counter   string     `json:"counter"`
	Color     string     `json:"color"`
	Family    string     `json:"family"`
	Ability   string     `json:"ability"`
	Trigger   string     `json:"trigger"`
	Set       SetRef     `json:"set"`
	Notes     []Note     `json:"notes"`
}

// Set is a card expansion.
type Set struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Error     string            `json:"error"`
	Code      string            `json:"code,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
	Details   map[string]string `json:"details,omitempty"`
}
