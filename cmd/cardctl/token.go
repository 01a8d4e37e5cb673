// Cardcast - Trading Card API and Stream Overlay Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cardcast

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomtom215/cardcast/internal/auth"
)

var tokenRole string

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Print a development token",
	Long: `token signs a one hour extension token for the development identity
with TWITCH_SHARED_SECRET, the same token GET /api/dev/token returns.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg := configFrom(cmd)

		role, err := auth.ParseRole(tokenRole)
		if err != nil {
			return err
		}

		secret, err := auth.ResolveSecret(cfg.Twitch.SharedSecret)
		if err != nil {
			return err
		}
		tokens, err := auth.NewTokenManager(secret)
		if err != nil {
			return err
		}

		token, err := tokens.DevToken(role, cfg.Twitch.DevUserID)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
		return err
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenRole, "role", string(auth.RoleBroadcaster),
		"viewer, broadcaster, moderator or external")
}
