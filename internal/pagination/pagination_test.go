// Cardcast - Trading Card API and Stream Overlay Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cardcast

package pagination

import (
	"math"
	"strconv"
	"testing"

	"github.com/goccy/go-json"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		page      string
		limit     string
		wantPage  int
		wantLimit int
	}{
		{"absent", "", "", 1, 20},
		{"explicit", "3", "50", 3, 50},
		{"page zero floored", "0", "10", 1, 10},
		{"negative page floored", "-4", "10", 1, 10},
		{"limit zero clamped", "1", "0", 1, 1},
		{"negative limit clamped", "1", "-10", 1, 1},
		{"limit above max clamped", "1", "1000", 1, 100},
		{"limit exactly max", "1", "100", 1, 100},
		{"non-numeric falls back", "abc", "xyz", 1, 20},
		{"trailing garbage falls back", "2abc", "5x", 1, 20},
		{"decimal falls back", "1.5", "2.5", 1, 20},
		{"numeric prefix falls back", "3", "5abc", 3, 20},
		{"huge page capped", "4611686018427387904", "4", math.MaxInt / 4, 4},
		{"page beyond int64 capped", "99999999999999999999999", "100", math.MaxInt / 100, 100},
		{"limit beyond int64 clamped", "1", "99999999999999999999999", 1, 100},
		{"page below int64 floored", "-99999999999999999999999", "10", 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Parse(tt.page, tt.limit)
			if got.Page != tt.wantPage || got.Limit != tt.wantLimit {
				t.Errorf("Parse(%q, %q) = %+v, want page=%d limit=%d", tt.page, tt.limit, got, tt.wantPage, tt.wantLimit)
			}
		})
	}
}

func TestParams_Offset(t *testing.T) {
	t.Parallel()

	tests := []struct {
		p    Params
		want int
	}{
		{Params{Page: 1, Limit: 20}, 0},
		{Params{Page: 2, Limit: 20}, 20},
		{Params{Page: 5, Limit: 7}, 28},
	}

	for _, tt := range tests {
		if got := tt.p.Offset(); got != tt.want {
			t.Errorf("%+v.Offset() = %d, want %d", tt.p, got, tt.want)
		}
	}
}

func TestParse_OffsetNeverOverflows(t *testing.T) {
	t.Parallel()

	pages := []string{
		"4611686018427387904",
		"9223372036854775807",
		"99999999999999999999999",
	}
	for _, page := range pages {
		for limit := 1; limit <= MaxLimit; limit++ {
			p := Parse(page, strconv.Itoa(limit))
			off := p.Offset()
			if off < 0 {
				t.Fatalf("Parse(%q, %d).Offset() = %d, want >= 0", page, limit, off)
			}
			if off/p.Limit != p.Page-1 {
				t.Fatalf("Parse(%q, %d) = %+v: offset %d is not (page-1)*limit", page, limit, p, off)
			}
		}
	}
}

func TestNewPage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		total     int64
		limit     int
		wantPages int64
	}{
		{"empty", 0, 20, 0},
		{"exact multiple", 40, 20, 2},
		{"remainder rounds up", 41, 20, 3},
		{"fewer than one page", 5, 20, 1},
		{"limit one", 7, 1, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := NewPage([]string{"a"}, tt.total, Params{Page: 1, Limit: tt.limit})
			if got.TotalPages != tt.wantPages {
				t.Errorf("TotalPages = %d, want %d", got.TotalPages, tt.wantPages)
			}
			if got.Total != tt.total || got.Limit != tt.limit || got.Page != 1 {
				t.Errorf("envelope = %+v", got)
			}
		})
	}
}

func TestNewPage_NilDataEncodesAsArray(t *testing.T) {
	t.Parallel()

	page := NewPage[int](nil, 0, Params{Page: 3, Limit: 10})
	b, err := json.Marshal(page)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"page":3,"limit":10,"total":0,"totalPages":0,"data":[]}`
	if string(b) != want {
		t.Errorf("json = %s, want %s", b, want)
	}
}
