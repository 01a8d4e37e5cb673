// Cardcast - Trading Card API and Stream Overlay Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cardcast

package main

import (
	"github.com/spf13/cobra"

	"github.com/tomtom215/cardcast/internal/tcgapi"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download the card catalogue from the TCG API",
	Long: `fetch pages through the TCG API with TCG_API_KEY, one request every
TCG_REQUEST_INTERVAL, and writes all-cards.json plus one file per page under
TCG_DATA_DIR.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg := configFrom(cmd)
		if err := cfg.RequireTCGAPIKey(); err != nil {
			return err
		}

		client, err := tcgapi.NewClient(&cfg.TCG)
		if err != nil {
			return err
		}

		cards, err := client.FetchAll(cmd.Context())
		if err != nil {
			return err
		}

		if err := tcgapi.WriteCatalogue(cfg.TCG.DataDir, cards, cfg.TCG.PageSize); err != nil {
			return err
		}

		out := newPrinter(cmd.OutOrStdout())
		out.success("Saved %d cards to %s", len(cards), cfg.TCG.DataDir)
		return nil
	},
}
