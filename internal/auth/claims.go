// Cardcast - Trading Card API and Stream Overlay Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cardcast

package auth

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Role is the viewer's role in the channel the extension runs in.
type Role string

// The complete set of roles Twitch issues to extensions.
const (
	RoleBroadcaster Role = "broadcaster"
	RoleModerator   Role = "moderator"
	RoleViewer      Role = "viewer"
	RoleExternal    Role = "external"
)

// Roles lists every valid role.
var Roles = []Role{RoleBroadcaster, RoleModerator, RoleViewer, RoleExternal}

// ErrInvalidRole is returned when a role string is not one of Roles.
var ErrInvalidRole = errors.New("invalid role")

// ParseRole converts s into a Role.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
	}
	return r, nil
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleBroadcaster, RoleModerator, RoleViewer, RoleExternal:
		return true
	}
	return false
}

// CanBroadcast reports whether r may push cards to the channel overlay.
// Only the channel owner and backend services may broadcast.
func (r Role) CanBroadcast() bool {
	switch r {
	case RoleBroadcaster, RoleExternal:
		return true
	}
	return false
}

// PubSubPerms lists the PubSub targets a token may listen or send to.
type PubSubPerms struct {
	Listen []string `json:"listen,omitempty"`
	Send   []string `json:"send,omitempty"`
}

// Claims is the Twitch Extension JWT payload.
// See https://dev.twitch.tv/docs/extensions/reference/#jwt-schema
type Claims struct {
	// OpaqueUserID is session scoped. Values starting with "U" are stable.
	OpaqueUserID string `json:"opaque_user_id,omitempty"`

	// UserID is only present when the viewer has shared their identity.
	UserID string `json:"user_id,omitempty"`

	ChannelID   string       `json:"channel_id"`
	Role        Role         `json:"role"`
	IsUnlinked  bool         `json:"is_unlinked,omitempty"`
	PubSubPerms *PubSubPerms `json:"pubsub_perms,omitempty"`

	jwt.RegisteredClaims
}

// Validate is called by the jwt parser after the registered claims pass.
func (c *Claims) Validate() error {
	if c.ChannelID == "" {
		return errors.New("missing channel_id")
	}
	if !c.Role.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidRole, c.Role)
	}
	return nil
}
