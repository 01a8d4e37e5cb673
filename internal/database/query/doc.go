// Cardcast - Trading Card API and Stream Overlay Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cardcast

// Package query provides SQL query building utilities for the database package.
//
// WhereBuilder folds optional predicates into one conjunctive WHERE clause
// with "?" placeholders. An empty builder yields "1=1" (match all).
// PostgreSQL queries pass through Rebind to get "$n" placeholders.
//
//	wb := query.NewWhereBuilder().
//	    AddEquals("c.type", "LEADER").
//	    AddContainsFold("c.name", "luffy", true)
//	where, args := wb.Build()
//	sql := query.Rebind("SELECT count(*) FROM cards c WHERE " + where)
//	// SELECT count(*) FROM cards c WHERE c.type = $1 AND c.name ILIKE $2 ESCAPE '\'
package query
