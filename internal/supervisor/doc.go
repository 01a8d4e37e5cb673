// Cardcast - Trading Card API and Stream Overlay Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cardcast

/*
Package supervisor runs the API server's long-lived services under suture v4.

# Overview

	RootSupervisor ("cardcast")
	├── DataSupervisor ("data-layer")
	│   ├── PeriodicService ("database-monitor")
	│   └── PeriodicService ("uptime")
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Crashed services are restarted with suture's backoff. Each layer counts
failures on its own, so a database monitor that keeps failing does not
restart the HTTP server.

Supervisor events (start, stop, failure, backoff) are logged through
sutureslog using the slog bridge from internal/logging.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	err = tree.Serve(ctx)
*/
package supervisor
