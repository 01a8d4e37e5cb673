// Cardcast - Trading Card API and Stream Overlay Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cardcast

// Package main is the entry point for the Cardcast API server.
//
// The server initializes components in this order:
//
//  1. Configuration: defaults, optional config.yaml, .env and environment (Koanf v2)
//  2. Database: PostgreSQL (lib/pq) or SQLite, then schema migrations
//  3. Twitch: shared secret, token manager and the PubSub client
//  4. Services: card catalogue and overlay broadcast
//  5. HTTP: chi router with auth, Casbin role policy, rate limiting, metrics and Swagger
//  6. Supervisor tree: HTTP server, database monitor and uptime gauge
//
// # Configuration
//
// Required:
//   - DATABASE_URL: postgres://... or sqlite://path (sqlite://:memory: for tests)
//   - TWITCH_SHARED_SECRET: base64 extension secret
//
// Optional:
//   - TWITCH_EXTENSION_CLIENT_ID: required in production, sent to Twitch as Client-Id
//   - TWITCH_DEV_USER_ID: user_id for development tokens
//   - NODE_ENV / ENVIRONMENT: "production" disables /api/dev/token
//   - HTTP_PORT (default 3000), LOG_LEVEL, LOG_FORMAT
//
// # Signal Handling
//
// SIGINT and SIGTERM cancel the supervisor tree; the HTTP server drains
// in-flight requests for up to 10s before the database is closed.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/tomtom215/cardcast/internal/api"
	"github.com/tomtom215/cardcast/internal/auth"
	"github.com/tomtom215/cardcast/internal/authz"
	"github.com/tomtom215/cardcast/internal/broadcast"
	"github.com/tomtom215/cardcast/internal/cards"
	"github.com/tomtom215/cardcast/internal/config"
	"github.com/tomtom215/cardcast/internal/database"
	"github.com/tomtom215/cardcast/internal/logging"
	"github.com/tomtom215/cardcast/internal/metrics"
	"github.com/tomtom215/cardcast/internal/pubsub"
	"github.com/tomtom215/cardcast/internal/supervisor"
	"github.com/tomtom215/cardcast/internal/supervisor/services"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "dev"

const (
	monitorInterval = 30 * time.Second
	uptimeInterval  = 15 * time.Second

	// The monitor escalates to suture after this many failed pings in a row.
	monitorMaxFailures = 5
)

func main() {
	if err := run(); err != nil {
		logging.Fatal().Err(err).Msg("Server failed")
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.ValidateForServer(); err != nil {
		return err
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("version", Version).
		Str("environment", cfg.Server.Environment).
		Bool("production", cfg.IsProduction()).
		Msg("Starting Cardcast with supervisor tree")
	metrics.AppInfo.WithLabelValues(Version, runtime.Version()).Set(1)

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelStartup()

	db, err := database.Open(startupCtx, &cfg.Database)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()

	if cfg.Database.MigrateOnStart {
		if err := db.Migrate(startupCtx); err != nil {
			return err
		}
	}
	logging.Info().Str("dialect", string(db.Dialect())).Msg("Database initialized successfully")

	secret, err := auth.ResolveSecret(cfg.Twitch.SharedSecret)
	if err != nil {
		return err
	}
	tokens, err := auth.NewTokenManager(secret)
	if err != nil {
		return err
	}

	pubsubClient, err := newPubSubClient(cfg, secret)
	if err != nil {
		return err
	}

	cardService := cards.NewService(db)
	broadcastService := broadcast.NewService(cardService, pubsubClient)

	handler := api.NewHandler(api.HandlerOptions{
		Cards:       cardService,
		Broadcaster: broadcastService,
		Tokens:      tokens,
		DB:          db,
		Production:  cfg.IsProduction(),
		DevUserID:   cfg.Twitch.DevUserID,
		Version:     Version,
	})
	if cfg.HasWildcardCORS() && cfg.IsProduction() {
		logging.Warn().Msg("CORS allows every origin in production")
	}
	enforcer, err := authz.NewEnforcer(cfg.Security.AuthzPolicyPath)
	if err != nil {
		return err
	}
	router := api.NewRouter(handler, auth.NewMiddleware(tokens), authz.NewMiddleware(enforcer),
		api.NewChiMiddleware(api.ChiMiddlewareConfigFromSecurity(&cfg.Security)))

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  10 * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to create supervisor tree: %w", err)
	}

	monitor := services.NewPeriodicService("database-monitor", monitorInterval, 5*time.Second, db.Ping)
	monitor.MaxConsecutiveFailures = monitorMaxFailures
	tree.AddDataService(monitor)

	started := time.Now()
	tree.AddDataService(services.NewPeriodicService("uptime", uptimeInterval, 0, func(context.Context) error {
		metrics.AppUptime.Set(time.Since(started).Seconds())
		return nil
	}))

	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Shutdown signal received, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	if unstopped, _ := tree.UnstoppedServiceReport(); len(unstopped) > 0 {
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
	return nil
}

// newPubSubClient builds the PubSub client. A missing client id only warns:
// ValidateForServer already requires it in production.
func newPubSubClient(cfg *config.Config, secret []byte) (*pubsub.Client, error) {
	if cfg.Twitch.ExtensionClientID == "" {
		logging.Warn().Msg("TWITCH_EXTENSION_CLIENT_ID is not set; PubSub sends will be rejected by Twitch")
	}
	return pubsub.New(pubsub.Config{
		Secret:     secret,
		ClientID:   cfg.Twitch.ExtensionClientID,
		URL:        cfg.Twitch.PubSubURL,
		HTTPClient: &http.Client{Timeout: cfg.Twitch.PubSubTimeout},
	})
}
