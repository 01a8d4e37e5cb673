// Cardcast - Trading Card API and Stream Overlay Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cardcast

package main

import (
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply schema migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		db, err := openDatabase(cmd.Context(), configFrom(cmd))
		if err != nil {
			return err
		}
		defer db.Close()

		version, err := db.SchemaVersion(cmd.Context())
		if err != nil {
			return err
		}
		newPrinter(cmd.OutOrStdout()).success("Schema is at version %d", version)
		return nil
	},
}
