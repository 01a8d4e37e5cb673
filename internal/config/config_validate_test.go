// Cardcast - Trading Card API and Stream Overlay Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cardcast

package config

import (
	"errors"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, true},
		{"port too high", func(c *Config) { c.Server.Port = 65536 }, true},
		{"zero timeout", func(c *Config) { c.Server.Timeout = 0 }, true},
		{"rate limit zero", func(c *Config) { c.Security.RateLimitReqs = 0 }, true},
		{"rate limit zero but disabled", func(c *Config) {
			c.Security.RateLimitReqs = 0
			c.Security.RateLimitDisabled = true
		}, false},
		{"rate window too short", func(c *Config) { c.Security.RateLimitWindow = time.Millisecond }, true},
		{"tcg page size too large", func(c *Config) { c.TCG.PageSize = 500 }, true},
		{"bad log level", func(c *Config) { c.Logging.Level = "verbose" }, true},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, true},
		{"console format", func(c *Config) { c.Logging.Format = "console" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateForServer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr error
	}{
		{"missing database", func(c *Config) { c.Twitch.SharedSecret = "s" }, ErrMissingDatabaseURL},
		{"missing secret", func(c *Config) { c.Database.URL = "sqlite://x.db" }, ErrMissingSharedSecret},
		{"development without client id", func(c *Config) {
			c.Database.URL = "sqlite://x.db"
			c.Twitch.SharedSecret = "s"
		}, nil},
		{"production without client id", func(c *Config) {
			c.Database.URL = "sqlite://x.db"
			c.Twitch.SharedSecret = "s"
			c.Server.Environment = "production"
		}, ErrMissingClientID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.ValidateForServer()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateForServer() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateForServer() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestIsProduction(t *testing.T) {
	t.Parallel()

	tests := map[string]bool{
		"production":  true,
		"PRODUCTION":  true,
		"prod":        true,
		"development": false,
		"test":        false,
		"":            false,
	}

	for env, want := range tests {
		cfg := &Config{Server: ServerConfig{Environment: env}}
		if got := cfg.IsProduction(); got != want {
			t.Errorf("IsProduction() with %q = %v, want %v", env, got, want)
		}
	}
}

func TestRequireTCGAPIKey(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()
	if err := cfg.RequireTCGAPIKey(); !errors.Is(err, ErrMissingTCGAPIKey) {
		t.Errorf("RequireTCGAPIKey() = %v, want ErrMissingTCGAPIKey", err)
	}
	cfg.TCG.APIKey = "key"
	if err := cfg.RequireTCGAPIKey(); err != nil {
		t.Errorf("RequireTCGAPIKey() = %v, want nil", err)
	}
}
