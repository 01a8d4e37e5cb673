// Cardcast - Trading Card API and Stream Overlay Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cardcast

package tcgapi

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
)

// File names written under the data directory.
const (
	AllCardsFile = "all-cards.json"
	PagesDir     = "pages"
)

// WriteCatalogue writes all cards to <dir>/all-cards.json and the same
// cards split into pageSize chunks as <dir>/pages/page-N.json.
func WriteCatalogue(dir string, cards []json.RawMessage, pageSize int) error {
	if pageSize <= 0 {
		return fmt.Errorf("page size must be positive, got %d", pageSize)
	}

	pagesDir := filepath.Join(dir, PagesDir)
	if err := os.MkdirAll(pagesDir, 0o750); err != nil {
		return fmt.Errorf("failed to create %s: %w", pagesDir, err)
	}

	if err := writeJSON(filepath.Join(dir, AllCardsFile), cards); err != nil {
		return err
	}

	for start, page := 0, 1; start < len(cards); start, page = start+pageSize, page+1 {
		end := min(start+pageSize, len(cards))
		name := filepath.Join(pagesDir, fmt.Sprintf("page-%d.json", page))
		if err := writeJSON(name, cards[start:end]); err != nil {
			return err
		}
	}

	return nil
}

// ReadCatalogue loads <dir>/all-cards.json.
func ReadCatalogue(dir string) ([]json.RawMessage, error) {
	path := filepath.Join(dir, AllCardsFile)
	data, err := os.ReadFile(path) //nolint:gosec // path comes from operator config
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var cards []json.RawMessage
	if err := json.Unmarshal(data, &cards); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cards, nil
}

func writeJSON(path string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}

	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "  "); err != nil {
		return fmt.Errorf("failed to indent %s: %w", path, err)
	}

	if err := os.WriteFile(path, out.Bytes(), 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
