// Cardcast - Trading Card API and Stream Overlay Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cardcast

package query

import (
	"strconv"
	"strings"
)

// WhereBuilder constructs SQL WHERE clauses with parameterized arguments.
// Clauses use "?" placeholders; Rebind converts them for PostgreSQL.
//
// Example usage:
//
//	wb := query.NewWhereBuilder()
//	wb.AddEquals("c.color", color)
//	wb.AddContainsFold("c.name", name, false)
//	whereClause, args := wb.Build()
//	// c.color = ? AND lower(c.name) LIKE lower(?) ESCAPE '\'
type WhereBuilder struct {
	clauses []string
	args    []interface{}
}

// NewWhereBuilder creates a new WhereBuilder instance.
func NewWhereBuilder() *WhereBuilder {
	return &WhereBuilder{
		clauses: []string{},
		args:    []interface{}{},
	}
}

// AddClause adds a raw WHERE clause with its arguments.
func (wb *WhereBuilder) AddClause(clause string, args ...interface{}) *WhereBuilder {
	wb.clauses = append(wb.clauses, clause)
	wb.args = append(wb.args, args...)
	return wb
}

// AddEquals adds "column = ?". Empty values are skipped so optional
// filters can be passed straight through.
func (wb *WhereBuilder) AddEquals(column, value string) *WhereBuilder {
	if value == "" {
		return wb
	}
	return wb.AddClause(column+" = ?", value)
}

// AddContainsFold adds a case-insensitive substring match on column.
// ilike selects PostgreSQL's ILIKE; otherwise both sides are lowered.
// LIKE metacharacters in value match literally.
func (wb *WhereBuilder) AddContainsFold(column, value string, ilike bool) *WhereBuilder {
	if value == "" {
		return wb
	}
	pattern := "%" + EscapeLike(value) + "%"
	if ilike {
		return wb.AddClause(column+` ILIKE ? ESCAPE '\'`, pattern)
	}
	return wb.AddClause("lower("+column+`) LIKE lower(?) ESCAPE '\'`, pattern)
}

// AddIn adds "column IN (?, ...)". An empty list matches nothing.
func (wb *WhereBuilder) AddIn(column string, values []string) *WhereBuilder {
	if len(values) == 0 {
		return wb.AddClause("1=0")
	}
	placeholders := make([]string, len(values))
	for i, v := range values {
		placeholders[i] = "?"
		wb.args = append(wb.args, v)
	}
	wb.clauses = append(wb.clauses, column+" IN ("+strings.Join(placeholders, ", ")+")")
	return wb
}

// Build constructs the final WHERE clause and returns it with arguments.
// Clauses are joined with "AND". Returns ("1=1", []) if no clauses were added.
func (wb *WhereBuilder) Build() (string, []interface{}) {
	if len(wb.clauses) == 0 {
		return "1=1", []interface{}{}
	}
	return strings.Join(wb.clauses, " AND "), wb.args
}

// EscapeLike escapes %, _ and the escape character itself for use in a
// LIKE pattern with ESCAPE '\'.
func EscapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// Rebind rewrites "?" placeholders to PostgreSQL's "$1, $2, ...".
// Question marks inside single-quoted literals are left alone.
func Rebind(q string) string {
	var b strings.Builder
	b.Grow(len(q) + 8)
	n := 0
	inQuote := false
	for i := 0; i < len(q); i++ {
		c := q[i]
		switch {
		case c == '\'':
			inQuote = !inQuote
			b.WriteByte(c)
		case c == '?' && !inQuote:
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
