// Cardcast - Trading Card API and Stream Overlay Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cardcast

package config

import "time"

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Twitch   TwitchConfig   `koanf:"twitch"`
	TCG      TCGConfig      `koanf:"tcg"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port    int           `koanf:"port"`
	Host    string        `koanf:"host"`
	Timeout time.Duration `koanf:"timeout"`

	// Environment gates development-only surface such as /api/dev/token.
	// Read from ENVIRONMENT or NODE_ENV.
	Environment string `koanf:"environment"`
}

// DatabaseConfig holds relational store settings.
//
// URL accepts a PostgreSQL URL (postgres:// or postgresql://) or a SQLite
// target (sqlite:// prefix, file: URI, or :memory:).
type DatabaseConfig struct {
	URL             string        `koanf:"url"`
	MaxOpenConns    int           `koanf:"max_open_conns"`
	MaxIdleConns    int           `koanf:"max_idle_conns"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
	MigrateOnStart  bool          `koanf:"migrate_on_start"`
}

// TwitchConfig holds Twitch Extension settings.
type TwitchConfig struct {
	// SharedSecret is the extension secret, raw or base64 encoded.
	SharedSecret string `koanf:"shared_secret"`

	// ExtensionClientID is sent as Client-Id on PubSub requests.
	ExtensionClientID string `koanf:"extension_client_id"`

	// PubSubURL is the Extension PubSub endpoint.
	PubSubURL string `koanf:"pubsub_url"`

	// PubSubTimeout bounds a single outbound PubSub request.
	PubSubTimeout time.Duration `koanf:"pubsub_timeout"`

	// DevUserID is the channel used by dev tokens and cardctl broadcast-test.
	DevUserID string `koanf:"dev_user_id"`
}

// TCGConfig holds settings for the upstream card-data provider used by cardctl.
type TCGConfig struct {
	APIKey          string        `koanf:"api_key"`
	BaseURL         string        `koanf:"base_url"`
	PageSize        int           `koanf:"page_size"`
	RequestInterval time.Duration `koanf:"request_interval"`
	DataDir         string        `koanf:"data_dir"`
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	AuthzPolicyPath   string        `koanf:"authz_policy_path"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}
