// Cardcast - Trading Card API and Stream Overlay Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cardcast

/*
Package services adapts long-running components to suture.Service.

  - HTTPServerService runs an *http.Server and shuts it down gracefully
    when the supervisor stops.
  - PeriodicService runs a task on an interval, used by the server for
    the database monitor and the uptime gauge.

Each service implements fmt.Stringer so suture events carry its name.
*/
package services
