// Cardcast - Trading Card API and Stream Overlay Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cardcast

package authz

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/tomtom215/cardcast/internal/auth"
)

func newTestEnforcer(t *testing.T) *Enforcer {
	t.Helper()
	e, err := NewEnforcer("")
	if err != nil {
		t.Fatalf("NewEnforcer() error = %v", err)
	}
	return e
}

func TestEnforce_EmbeddedPolicy(t *testing.T) {
	t.Parallel()
	e := newTestEnforcer(t)

	tests := []struct {
		role   auth.Role
		object string
		action string
		want   bool
	}{
		{auth.RoleViewer, ObjectCards, ActionRead, true},
		{auth.RoleModerator, ObjectCards, ActionRead, true},
		{auth.RoleBroadcaster, ObjectCards, ActionRead, true},
		{auth.RoleExternal, ObjectCards, ActionRead, true},
		{auth.RoleViewer, ObjectOverlay, ActionBroadcast, false},
		{auth.RoleModerator, ObjectOverlay, ActionBroadcast, false},
		{auth.RoleBroadcaster, ObjectOverlay, ActionBroadcast, true},
		{auth.RoleExternal, ObjectOverlay, ActionBroadcast, true},
		{auth.Role("admin"), ObjectCards, ActionRead, false},
		{auth.RoleBroadcaster, ObjectCards, "delete", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.role)+"/"+tt.object+"/"+tt.action, func(t *testing.T) {
			got, err := e.Enforce(tt.role, tt.object, tt.action)
			if err != nil {
				t.Fatalf("Enforce() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Enforce() = %v, want %v", got, tt.want)
			}
		})
	}
}

// The policy and Role.CanBroadcast must agree; the broadcast service checks
// the latter.
func TestEnforce_MatchesCanBroadcast(t *testing.T) {
	t.Parallel()
	e := newTestEnforcer(t)

	for _, role := range auth.Roles {
		got, err := e.Enforce(role, ObjectOverlay, ActionBroadcast)
		if err != nil {
			t.Fatalf("Enforce(%s) error = %v", role, err)
		}
		if got != role.CanBroadcast() {
			t.Errorf("%s: policy allows=%v, CanBroadcast=%v", role, got, role.CanBroadcast())
		}
	}
}

func TestNewEnforcer_PolicyFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "policy.csv")
	if err := os.WriteFile(path, []byte("p, moderator, overlay, broadcast\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	e, err := NewEnforcer(path)
	if err != nil {
		t.Fatalf("NewEnforcer() error = %v", err)
	}
	allowed, err := e.Enforce(auth.RoleModerator, ObjectOverlay, ActionBroadcast)
	if err != nil || !allowed {
		t.Errorf("Enforce(moderator) = %v, %v; want true", allowed, err)
	}
	allowed, _ = e.Enforce(auth.RoleViewer, ObjectCards, ActionRead)
	if allowed {
		t.Error("file policy should replace the embedded one")
	}
}

func TestLoadEmbeddedPolicy_Malformed(t *testing.T) {
	t.Parallel()
	e := newTestEnforcer(t)

	for _, policy := range []string{"p, viewer, cards", "g, viewer", "x, a, b, c"} {
		if err := loadEmbeddedPolicy(e.enforcer, policy); err == nil {
			t.Errorf("loadEmbeddedPolicy(%q) error = nil", policy)
		}
	}
}

func TestMiddleware_Require(t *testing.T) {
	t.Parallel()
	mw := NewMiddleware(newTestEnforcer(t))

	deny := func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusForbidden) }
	handler := mw.Require(ObjectOverlay, ActionBroadcast, deny)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	tests := []struct {
		name   string
		claims *auth.Claims
		want   int
	}{
		{"no claims", nil, http.StatusForbidden},
		{"viewer", &auth.Claims{Role: auth.RoleViewer, ChannelID: "1"}, http.StatusForbidden},
		{"broadcaster", &auth.Claims{Role: auth.RoleBroadcaster, ChannelID: "1"}, http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/pubsub/broadcast", nil)
			if tt.claims != nil {
				req = req.WithContext(auth.ContextWithClaims(req.Context(), tt.claims))
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}
