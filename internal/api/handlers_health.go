// Cardcast - Trading Card API and Stream Overlay Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cardcast

package api

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/tomtom215/cardcast/internal/models"
)

// WelcomeMessage is the body of GET /welcome.
const WelcomeMessage = "Welcome on the TCG One Piece API"

const readyTimeout = 2 * time.Second

// Welcome answers with a plain-text greeting.
//
// @Summary Welcome
// @Tags Core
// @Produce plain
// @Success 200 {string} string
// @Router /welcome [get]
func (h *Handler) Welcome(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, WelcomeMessage) //nolint:errcheck // response already committed
}

// HealthLive reports that the process is running.
//
// @Summary Liveness probe
// @Description Returns 200 OK if the process is alive, regardless of external dependencies.
// @Tags Core
// @Produce json
// @Success 200 {object} models.HealthStatus
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(models.HealthStatus{
		Status:  "alive",
		Version: h.version,
		Uptime:  time.Since(h.startTime).Seconds(),
	})
}

// HealthReady reports whether the database answers.
//
// @Summary Readiness probe
// @Description Returns 200 OK only if the database is reachable, 503 otherwise.
// @Tags Core
// @Produce json
// @Success 200 {object} models.HealthStatus
// @Failure 503 {object} models.ErrorResponse
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
	defer cancel()

	if h.db == nil || h.db.Ping(ctx) != nil {
		rw.ServiceUnavailable(msgNotReady)
		return
	}

	rw.Success(models.HealthStatus{
		Status:            "ready",
		Version:           h.version,
		DatabaseConnected: true,
		Uptime:            time.Since(h.startTime).Seconds(),
	})
}
