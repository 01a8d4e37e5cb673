// Cardcast - Trading Card API and Stream Overlay Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cardcast

// Command cardctl runs the offline jobs around the card catalogue: fetching
// it from the TCG API, seeding the database, migrating the schema, signing
// development tokens and sending a test overlay broadcast.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
