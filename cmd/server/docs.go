// Cardcast - Trading Card API and Stream Overlay Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cardcast

// @title Cardcast API
// @version 1.0
// @description One Piece trading card catalogue and Twitch Extension overlay relay.
// @description
// @description ## Authentication
// @description
// @description Every /api route except /api/dev/token requires a Twitch Extension JWT
// @description in the Authorization header: `Bearer {token}`.
// @description
// @description ## Rate Limiting
// @description
// @description Default rate limit: 100 requests per minute per IP address.
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @BasePath /
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Twitch Extension JWT, sent as 'Bearer {token}'
//
// @tag.name Core
// @tag.description Welcome and health probes
//
// @tag.name Cards
// @tag.description Card catalogue queries
//
// @tag.name PubSub
// @tag.description Overlay broadcasts over Twitch Extension PubSub
//
// @tag.name Dev
// @tag.description Development helpers, disabled in production
package main
