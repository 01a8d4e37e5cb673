// Cardcast - Trading Card API and Stream Overlay Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cardcast

/*
Package pubsub sends messages to the Twitch Extension PubSub endpoint.

Each send signs a fresh 60 second service token (role "external",
pubsub_perms.send ["broadcast"]) with the extension secret and POSTs:

	{
	  "broadcaster_id": "<channel id>",
	  "target": ["broadcast"],
	  "is_global_broadcast": false,
	  "message": "<message encoded as JSON text>"
	}

with the Client-Id and Authorization: Bearer headers (Client-Id is omitted
when no client id is configured). A non-2xx response becomes an *Error
carrying the status and body. Sends are never retried; they run through a
circuit breaker so a failing endpoint is not hammered. Client errors (4xx
other than 429) do not count toward opening it.

Usage:

	client, err := pubsub.New(pubsub.Config{
		Secret:   secret,
		ClientID: cfg.Twitch.ExtensionClientID,
		URL:      cfg.Twitch.PubSubURL,
	})
	err = client.Broadcast(ctx, channelID, msg)
*/
package pubsub
