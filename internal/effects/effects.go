// Cardcast - Trading Card API and Stream Overlay Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cardcast

// Package effects derives the overlay effect list from a card's ability
// and trigger text.
package effects

import (
	"regexp"
	"strings"
)

// Type names an overlay effect badge.
type Type string

const (
	TypeBlocker Type = "blocker"
	TypeOnPlay  Type = "on_play"
	TypeCounter Type = "counter"
	TypeTrigger Type = "trigger"
)

// BlockerDescription is the fixed text for [Blocker].
const BlockerDescription = "This card can block."

// Effect is one badge shown on the overlay card.
type Effect struct {
	Type        Type   `json:"type"`
	Description string `json:"description"`
}

// rule matches one bracketed keyword. extract returns the description and
// whether the rule applies.
type rule struct {
	effect  Type
	extract func(ability string) (string, bool)
}

// Markers are matched case-insensitively; span text runs from after the
// marker to the next '[' or the end of the ability, across newlines. Only
// the first occurrence counts.
var rules = []rule{
	{TypeBlocker, fixed(regexp.MustCompile(`(?i)\[Blocker\]`), BlockerDescription)},
	{TypeOnPlay, span(regexp.MustCompile(`(?is)\[On Play\]\s*(.*?)(?:\[|$)`))},
	{TypeCounter, span(regexp.MustCompile(`(?is)\[Counter\]\s*(.*?)(?:\[|$)`))},
}

func fixed(re *regexp.Regexp, description string) func(string) (string, bool) {
	return func(ability string) (string, bool) {
		return description, re.MatchString(ability)
	}
}

func span(re *regexp.Regexp) func(string) (string, bool) {
	return func(ability string) (string, bool) {
		m := re.FindStringSubmatch(ability)
		if m == nil {
			return "", false
		}
		return strings.TrimSpace(m[1]), true
	}
}

// Parse returns the effects for a card. Keyword rules apply in order; an
// ability with no keyword is shown whole as a trigger, and a non-empty
// trigger text is always appended last. The result is never nil.
func Parse(ability, trigger *string) []Effect {
	out := []Effect{}

	if ability != nil && *ability != "" {
		for _, r := range rules {
			if desc, ok := r.extract(*ability); ok {
				out = append(out, Effect{Type: r.effect, Description: desc})
			}
		}
		if len(out) == 0 {
			if trimmed := strings.TrimSpace(*ability); trimmed != "" {
				out = append(out, Effect{Type: TypeTrigger, Description: trimmed})
			}
		}
	}

	if trigger != nil && *trigger != "" {
		out = append(out, Effect{Type: TypeTrigger, Description: strings.TrimSpace(*trigger)})
	}

	return out
}

// FromText is Parse for callers holding plain strings where "" means absent.
func FromText(ability, trigger string) []Effect {
	return Parse(&ability, &trigger)
}
