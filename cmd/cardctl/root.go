// Cardcast - Trading Card API and Stream Overlay Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cardcast

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomtom215/cardcast/internal/config"
	"github.com/tomtom215/cardcast/internal/database"
	"github.com/tomtom215/cardcast/internal/logging"
)

// rootCmd is the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "cardctl",
	Short: "Card catalogue and overlay tooling for Cardcast",
	Long: `cardctl fetches the One Piece card catalogue from the TCG API, seeds it
into the database and exercises the Twitch overlay relay.

Configuration is read the same way as the server: defaults, config.yaml,
.env and environment variables.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		logging.Init(logging.Config{
			Level:  cfg.Logging.Level,
			Format: "console",
			Caller: cfg.Logging.Caller,
		})
		cmd.SetContext(withConfig(cmd.Context(), cfg))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fetchCmd, seedCmd, migrateCmd, tokenCmd, broadcastTestCmd)
}

type configKey struct{}

func withConfig(ctx context.Context, cfg *config.Config) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, configKey{}, cfg)
}

func configFrom(cmd *cobra.Command) *config.Config {
	cfg, _ := cmd.Context().Value(configKey{}).(*config.Config)
	return cfg
}

// openDatabase opens DATABASE_URL and runs migrations.
func openDatabase(ctx context.Context, cfg *config.Config) (*database.DB, error) {
	if err := cfg.RequireDatabase(); err != nil {
		return nil, err
	}
	db, err := database.Open(ctx, &cfg.Database)
	if err != nil {
		return nil, err
	}
	if err := db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}
	return db, nil
}
