// Cardcast - Trading Card API and Stream Overlay Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cardcast

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the config file locations searched in order.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/cardcast/config.yaml",
}

// ConfigPathEnvVar overrides the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// DotEnvFile is loaded into the process environment before anything else.
const DotEnvFile = ".env"

// Default upstream endpoints.
const (
	DefaultPubSubURL  = "https://api.twitch.tv/helix/extensions/pubsub"
	DefaultTCGBaseURL = "https://apitcg.com/api/one-piece/cards"
)

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        3000,
			Host:        "0.0.0.0",
			Timeout:     30 * time.Second,
			Environment: "development",
		},
		Database: DatabaseConfig{
			URL:             "",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 30 * time.Minute,
			MigrateOnStart:  true,
		},
		Twitch: TwitchConfig{
			PubSubURL:     DefaultPubSubURL,
			PubSubTimeout: 10 * time.Second,
		},
		TCG: TCGConfig{
			BaseURL:         DefaultTCGBaseURL,
			PageSize:        100,
			RequestInterval: 200 * time.Millisecond,
			DataDir:         "data",
		},
		Security: SecurityConfig{
			CORSOrigins:       []string{"*"},
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// Load builds the configuration from, in increasing priority:
//
//  1. Built-in defaults
//  2. Optional YAML config file (CONFIG_PATH or DefaultConfigPaths)
//  3. Environment variables, after .env has been merged into the environment
//
// The result passes Validate. Callers that need the database or the Twitch
// secret additionally call ValidateForServer.
func Load() (*Config, error) {
	if err := godotenv.Load(DotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", DotEnvFile, err)
	}

	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields splits comma-separated env values for slice fields.
// Values that came from YAML are already slices and are left alone.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) == 0 {
			continue
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps environment variable names (lower-cased) to koanf paths.
// Unmapped variables are ignored.
var envMappings = map[string]string{
	// Server
	"http_port":    "server.port",
	"port":         "server.port",
	"http_host":    "server.host",
	"http_timeout": "server.timeout",
	"environment":  "server.environment",
	"node_env":     "server.environment",

	// Database
	"database_url":               "database.url",
	"database_max_open_conns":    "database.max_open_conns",
	"database_max_idle_conns":    "database.max_idle_conns",
	"database_conn_max_lifetime": "database.conn_max_lifetime",
	"database_migrate_on_start":  "database.migrate_on_start",

	// Twitch
	"twitch_shared_secret":       "twitch.shared_secret",
	"twitch_extension_client_id": "twitch.extension_client_id",
	"twitch_pubsub_url":          "twitch.pubsub_url",
	"twitch_pubsub_timeout":      "twitch.pubsub_timeout",
	"twitch_dev_user_id":         "twitch.dev_user_id",

	// Card data provider
	"tcg_api_key":          "tcg.api_key",
	"tcg_base_url":         "tcg.base_url",
	"tcg_page_size":        "tcg.page_size",
	"tcg_request_interval": "tcg.request_interval",
	"tcg_data_dir":         "tcg.data_dir",

	// Security
	"cors_origins":        "security.cors_origins",
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",
	"authz_policy_path":   "security.authz_policy_path",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc maps an environment variable name to its koanf path,
// returning "" for variables Cardcast does not read.
//
// Examples:
//   - DATABASE_URL -> database.url
//   - TWITCH_SHARED_SECRET -> twitch.shared_secret
//   - NODE_ENV -> server.environment
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
