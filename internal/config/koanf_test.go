// Cardcast - Trading Card API and Stream Overlay Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cardcast

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// TestDefaultConfig verifies that defaultConfig() returns proper defaults
func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()

	if cfg.Server.Port != 3000 {
		t.Errorf("Server.Port = %d, want 3000", cfg.Server.Port)
	}
	if cfg.Server.Environment != "development" {
		t.Errorf("Server.Environment = %q, want development", cfg.Server.Environment)
	}
	if cfg.Database.URL != "" {
		t.Errorf("Database.URL should be empty by default, got %q", cfg.Database.URL)
	}
	if !cfg.Database.MigrateOnStart {
		t.Error("Database.MigrateOnStart should be true by default")
	}
	if cfg.Twitch.PubSubURL != DefaultPubSubURL {
		t.Errorf("Twitch.PubSubURL = %q, want %q", cfg.Twitch.PubSubURL, DefaultPubSubURL)
	}
	if cfg.TCG.PageSize != 100 {
		t.Errorf("TCG.PageSize = %d, want 100", cfg.TCG.PageSize)
	}
	if cfg.TCG.RequestInterval != 200*time.Millisecond {
		t.Errorf("TCG.RequestInterval = %v, want 200ms", cfg.TCG.RequestInterval)
	}
	if cfg.Security.RateLimitReqs != 100 {
		t.Errorf("Security.RateLimitReqs = %d, want 100", cfg.Security.RateLimitReqs)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

// TestEnvTransformFunc verifies environment variable name transformations
func TestEnvTransformFunc(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{"HTTP_PORT", "server.port"},
		{"PORT", "server.port"},
		{"ENVIRONMENT", "server.environment"},
		{"NODE_ENV", "server.environment"},
		{"DATABASE_URL", "database.url"},
		{"TWITCH_SHARED_SECRET", "twitch.shared_secret"},
		{"TWITCH_EXTENSION_CLIENT_ID", "twitch.extension_client_id"},
		{"TWITCH_DEV_USER_ID", "twitch.dev_user_id"},
		{"TCG_API_KEY", "tcg.api_key"},
		{"CORS_ORIGINS", "security.cors_origins"},
		{"RATE_LIMIT_REQUESTS", "security.rate_limit_reqs"},
		{"DISABLE_RATE_LIMIT", "security.rate_limit_disabled"},
		{"AUTHZ_POLICY_PATH", "security.authz_policy_path"},
		{"LOG_LEVEL", "logging.level"},

		// Unknown (should return empty)
		{"RANDOM_VAR", ""},
		{"PATH", ""},
		{"HOME", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			if got := envTransformFunc(tt.input); got != tt.expected {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestFindConfigFile_EnvOverride(t *testing.T) {
	tmpDir := t.TempDir()
	customPath := filepath.Join(tmpDir, "custom.yaml")
	if err := os.WriteFile(customPath, []byte("server:\n  port: 4000\n"), 0o600); err != nil {
		t.Fatalf("Failed to create config file: %v", err)
	}

	t.Setenv(ConfigPathEnvVar, customPath)
	if got := findConfigFile(); got != customPath {
		t.Errorf("findConfigFile() = %q, want %q", got, customPath)
	}

	t.Setenv(ConfigPathEnvVar, filepath.Join(tmpDir, "missing.yaml"))
	if got := findConfigFile(); got == customPath {
		t.Errorf("findConfigFile() returned a path for a missing CONFIG_PATH")
	}
}

func TestLoad_EnvVars(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, "")
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://cards@localhost/cards")
	t.Setenv("TWITCH_SHARED_SECRET", "dev-secret")
	t.Setenv("NODE_ENV", "production")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("RATE_LIMIT_WINDOW", "30s")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Database.URL != "postgres://cards@localhost/cards" {
		t.Errorf("Database.URL = %q", cfg.Database.URL)
	}
	if cfg.Twitch.SharedSecret != "dev-secret" {
		t.Errorf("Twitch.SharedSecret = %q", cfg.Twitch.SharedSecret)
	}
	if !cfg.IsProduction() {
		t.Error("expected NODE_ENV=production to select production mode")
	}
	if len(cfg.Security.CORSOrigins) != 2 || cfg.Security.CORSOrigins[1] != "https://b.example" {
		t.Errorf("Security.CORSOrigins = %v", cfg.Security.CORSOrigins)
	}
	if cfg.Security.RateLimitWindow != 30*time.Second {
		t.Errorf("Security.RateLimitWindow = %v, want 30s", cfg.Security.RateLimitWindow)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	// Unset values keep their defaults
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want 0.0.0.0 (default)", cfg.Server.Host)
	}
}

func TestLoad_ConfigFileThenEnv(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	content := `
server:
  port: 4000
  host: 127.0.0.1
database:
  url: sqlite://cards.db
security:
  cors_origins:
    - https://extension-files.twitch.tv
`
	if err := os.WriteFile(configPath, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	t.Setenv(ConfigPathEnvVar, configPath)
	t.Setenv("HTTP_HOST", "10.0.0.1")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 4000 {
		t.Errorf("Server.Port = %d, want 4000 from file", cfg.Server.Port)
	}
	if cfg.Server.Host != "10.0.0.1" {
		t.Errorf("Server.Host = %q, want env override 10.0.0.1", cfg.Server.Host)
	}
	if cfg.Database.URL != "sqlite://cards.db" {
		t.Errorf("Database.URL = %q, want sqlite://cards.db", cfg.Database.URL)
	}
	if len(cfg.Security.CORSOrigins) != 1 || cfg.Security.CORSOrigins[0] != "https://extension-files.twitch.tv" {
		t.Errorf("Security.CORSOrigins = %v", cfg.Security.CORSOrigins)
	}
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, "")
	t.Setenv("HTTP_PORT", "70000")

	if _, err := Load(); err == nil {
		t.Fatal("expected validation error for out-of-range port")
	}
}
