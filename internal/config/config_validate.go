// Cardcast - Trading Card API and Stream Overlay Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cardcast

package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Sentinel errors for required settings. They are wrapped by the validators
// so callers can use errors.Is.
var (
	ErrMissingDatabaseURL  = errors.New("DATABASE_URL is required")
	ErrMissingSharedSecret = errors.New("TWITCH_SHARED_SECRET is required")
	ErrMissingClientID     = errors.New("TWITCH_EXTENSION_CLIENT_ID is required")
	ErrMissingTCGAPIKey    = errors.New("TCG_API_KEY is required")
)

const (
	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour
)

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// Validate checks settings every entry point depends on.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateRateLimits(); err != nil {
		return err
	}
	if err := c.validateTCG(); err != nil {
		return err
	}
	return c.validateLogging()
}

// ValidateForServer checks the settings the HTTP server cannot start without.
func (c *Config) ValidateForServer() error {
	if err := c.RequireDatabase(); err != nil {
		return err
	}
	if err := c.RequireSharedSecret(); err != nil {
		return err
	}
	if c.IsProduction() && strings.TrimSpace(c.Twitch.ExtensionClientID) == "" {
		return fmt.Errorf("%w in production", ErrMissingClientID)
	}
	return nil
}

// RequireDatabase returns ErrMissingDatabaseURL when no database is configured.
func (c *Config) RequireDatabase() error {
	if strings.TrimSpace(c.Database.URL) == "" {
		return ErrMissingDatabaseURL
	}
	return nil
}

// RequireSharedSecret returns ErrMissingSharedSecret when the extension secret is unset.
func (c *Config) RequireSharedSecret() error {
	if c.Twitch.SharedSecret == "" {
		return ErrMissingSharedSecret
	}
	return nil
}

// RequireTCGAPIKey returns ErrMissingTCGAPIKey when the provider key is unset.
func (c *Config) RequireTCGAPIKey() error {
	if strings.TrimSpace(c.TCG.APIKey) == "" {
		return ErrMissingTCGAPIKey
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

func (c *Config) validateTCG() error {
	if c.TCG.PageSize < 1 || c.TCG.PageSize > 100 {
		return fmt.Errorf("TCG_PAGE_SIZE must be between 1 and 100")
	}
	if c.TCG.RequestInterval < 0 {
		return fmt.Errorf("TCG_REQUEST_INTERVAL must not be negative")
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !validLogLevels[strings.ToLower(c.Logging.Level)] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}

// IsProduction reports whether ENVIRONMENT/NODE_ENV is production or prod.
func (c *Config) IsProduction() bool {
	env := strings.ToLower(strings.TrimSpace(c.Server.Environment))
	return env == "production" || env == "prod"
}

// HasWildcardCORS reports whether any configured origin is "*".
func (c *Config) HasWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}
