// Cardcast - Trading Card API and Stream Overlay Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cardcast

/*
Package models defines the data structures shared across Cardcast.

Key Components:

  - Card, Set: the public card shape served by /api/cards
  - RawCard, TCGPage: the upstream catalogue format read by cardctl
  - ErrorResponse: the JSON error body of every failed request
  - HealthStatus: the /health/ready body

Card JSON shape:

	{
	  "id": "OP01-001", "code": "OP01-001", "rarity": "L", "type": "LEADER",
	  "name": "Roronoa Zoro", "images": {"small": "...", "large": "..."},
	  "cost": null, "attribute": {"name": "Slash", "image": "..."},
	  "power": 5000, "counter": "", "color": "Red", "family": "...",
	  "ability": "...", "trigger": "", "set": {"name": "..."},
	  "notes": [{"name": "...", "url": "..."}]
	}

Nullable numbers (cost, power) stay null; absent text fields are "".
*/
package models
