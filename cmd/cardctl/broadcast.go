// Cardcast - Trading Card API and Stream Overlay Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cardcast

package main

import (
	"errors"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/tomtom215/cardcast/internal/auth"
	"github.com/tomtom215/cardcast/internal/broadcast"
	"github.com/tomtom215/cardcast/internal/cards"
	"github.com/tomtom215/cardcast/internal/pubsub"
)

// sampleEntries is the layout sent by broadcast-test.
var sampleEntries = []broadcast.Entry{
	{ID: "OP12-109", X: 0.15, Y: 0.3},
	{ID: "OP11-089", X: 0.45, Y: 0.3},
	{ID: "OP01-029", X: 0.75, Y: 0.3},
	{ID: "OP01-002", X: 0.5, Y: 0.5},
}

var (
	broadcastChannel string
	broadcastLayout  string
)

var broadcastTestCmd = &cobra.Command{
	Use:   "broadcast-test",
	Short: "Send sample cards to a channel overlay",
	Long: `broadcast-test looks up cards in the database and sends them to the
channel's extension overlay through Twitch PubSub. The channel defaults to
TWITCH_DEV_USER_ID.

Without --layout four sample cards are sent. A layout is a TOML file with
up to ten [[cards]] tables, each holding id, x and y.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg := configFrom(cmd)
		ctx := cmd.Context()
		out := newPrinter(cmd.OutOrStdout())

		channel := broadcastChannel
		if channel == "" {
			channel = cfg.Twitch.DevUserID
		}
		if channel == "" {
			return errors.New("no channel: pass --channel or set TWITCH_DEV_USER_ID")
		}

		entries := sampleEntries
		if broadcastLayout != "" {
			var err error
			if entries, err = loadLayout(broadcastLayout); err != nil {
				return err
			}
		}

		if err := cfg.RequireSharedSecret(); err != nil {
			return err
		}
		secret, err := auth.ResolveSecret(cfg.Twitch.SharedSecret)
		if err != nil {
			return err
		}

		client, err := pubsub.New(pubsub.Config{
			Secret:     secret,
			ClientID:   cfg.Twitch.ExtensionClientID,
			URL:        cfg.Twitch.PubSubURL,
			HTTPClient: &http.Client{Timeout: cfg.Twitch.PubSubTimeout},
		})
		if err != nil {
			return err
		}

		db, err := openDatabase(ctx, cfg)
		if err != nil {
			return err
		}
		defer db.Close()

		msg, err := broadcast.NewService(cards.NewService(db), client).Build(ctx, entries)
		if err != nil {
			return err
		}

		payload, err := json.MarshalIndent(msg, "", "  ")
		if err != nil {
			return err
		}
		out.heading("Message")
		out.raw(string(payload))

		if err := client.Broadcast(ctx, channel, msg); err != nil {
			out.failure("%v", err)
			return errors.New("broadcast failed")
		}
		out.success("Broadcast sent to channel %s (%d cards)", channel, len(msg.Cards))
		return nil
	},
}

func init() {
	broadcastTestCmd.Flags().StringVar(&broadcastChannel, "channel", "", "broadcaster channel id (default TWITCH_DEV_USER_ID)")
	broadcastTestCmd.Flags().StringVar(&broadcastLayout, "layout", "", "TOML overlay layout to send instead of the sample cards")
}
