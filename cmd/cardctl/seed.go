// Cardcast - Trading Card API and Stream Overlay Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cardcast

package main

import (
	"github.com/spf13/cobra"

	"github.com/tomtom215/cardcast/internal/seed"
	"github.com/tomtom215/cardcast/internal/tcgapi"
)

// maxListed bounds how many duplicates, problems and errors are printed.
const maxListed = 10

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load all-cards.json into the database",
	Long: `seed validates the fetched catalogue, creates missing sets and inserts
cards whose id is not stored yet. Running it twice is safe.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg := configFrom(cmd)
		ctx := cmd.Context()

		raw, err := tcgapi.ReadCatalogue(cfg.TCG.DataDir)
		if err != nil {
			return err
		}

		db, err := openDatabase(ctx, cfg)
		if err != nil {
			return err
		}
		defer db.Close()

		report, err := seed.New(db).Run(ctx, raw)
		if err != nil {
			return err
		}

		printReport(newPrinter(cmd.OutOrStdout()), report)
		return nil
	},
}

func printReport(out *printer, r *seed.Report) {
	out.heading("Catalogue")
	out.line("Cards in file", r.Total)

	if len(r.Duplicates) > 0 {
		out.warn("%d duplicate ids", len(r.Duplicates))
		for i, d := range r.Duplicates {
			if i == maxListed {
				out.detail("... and %d more", len(r.Duplicates)-maxListed)
				break
			}
			out.detail("%s (x%d)", d.ID, d.Count)
		}
	}

	if r.InvalidCards > 0 {
		out.warn("%d invalid cards", r.InvalidCards)
		for _, group := range r.ProblemsByField() {
			out.detail("%s: %d", group.Field, len(group.Problems))
			for i, p := range group.Problems {
				if i == maxListed {
					out.detail("  ... and %d more", len(group.Problems)-maxListed)
					break
				}
				out.detail("  [%d] %s: %s", p.Index, p.CardID, p.Message)
			}
		}
	}
	out.line("Valid cards", r.Valid)

	out.heading("Sets")
	out.line("Created", len(r.SetsCreated))
	for _, s := range r.SetsCreated {
		out.detail("%d %s", s.ID, s.Name)
	}
	out.line("Already present", r.SetsExisting)

	out.heading("Cards")
	out.line("Inserted", r.Inserted)
	out.line("Already present", len(r.Conflicts))
	if len(r.Errors) > 0 {
		out.failure("%d cards failed to insert", len(r.Errors))
		for i, e := range r.Errors {
			if i == maxListed {
				out.detail("... and %d more", len(r.Errors)-maxListed)
				break
			}
			out.detail("%s: %s", e.ID, e.Error)
		}
	}

	out.heading("Database")
	out.line("Cards", r.DBCards)
	out.line("Sets", r.DBSets)

	if len(r.Errors) == 0 {
		out.success("Seeding complete")
	}
}
