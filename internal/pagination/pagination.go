// Cardcast - Trading Card API and Stream Overlay Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cardcast

// Package pagination parses page/limit query parameters and builds the
// paginated response envelope.
package pagination

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

// Params is a normalized page request. Page >= 1 and 1 <= Limit <= MaxLimit.
type Params struct {
	Page  int
	Limit int
}

// Parse normalizes raw query values. Absent or non-numeric values take the
// defaults; page is floored at 1 and limit clamped to [1, MaxLimit]. Page is
// also capped so that Offset never overflows.
func Parse(page, limit string) Params {
	p := Params{
		Page:  parseInt(page, DefaultPage),
		Limit: parseInt(limit, DefaultLimit),
	}
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = 1
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	if maxPage := math.MaxInt / p.Limit; p.Page > maxPage {
		p.Page = maxPage
	}
	return p
}

func parseInt(s string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if errors.Is(err, strconv.ErrRange) {
		// Atoi saturates to MaxInt/MinInt; the clamps in Parse take it from there.
		return n
	}
	if err != nil {
		return fallback
	}
	return n
}

// Offset is the number of rows to skip.
func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Page is the JSON envelope for paginated list responses.
type Page[T any] struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
	Data       []T   `json:"data"`
}

// NewPage builds the envelope. Data is never nil so it always encodes as an
// array.
func NewPage[T any](data []T, total int64, p Params) Page[T] {
	if data == nil {
		data = []T{}
	}
	var pages int64
	if p.Limit > 0 {
		pages = (total + int64(p.Limit) - 1) / int64(p.Limit)
	}
	return Page[T]{
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      total,
		TotalPages: pages,
		Data:       data,
	}
}
