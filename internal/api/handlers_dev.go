// Cardcast - Trading Card API and Stream Overlay Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cardcast

package api

import (
	"net/http"

	"github.com/tomtom215/cardcast/internal/auth"
	"github.com/tomtom215/cardcast/internal/logging"
	"github.com/tomtom215/cardcast/internal/models"
	"github.com/tomtom215/cardcast/internal/validation"
)

// DevTokenQuery is the query of GET /api/dev/token.
type DevTokenQuery struct {
	Role string `json:"role" validate:"omitempty,oneof=viewer broadcaster moderator external"`
}

// DevToken signs a one hour token for the fixed development identity.
// In production it answers 200 with an error body.
//
// @Summary Development token
// @Tags Dev
// @Produce json
// @Param role query string false "viewer (default), broadcaster, moderator or external"
// @Success 200 {object} models.TokenResponse
// @Failure 422 {object} models.ErrorResponse
// @Router /api/dev/token [get]
func (h *Handler) DevToken(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	if h.production {
		rw.Success(models.ErrorResponse{Error: msgNotInProduction})
		return
	}

	q := DevTokenQuery{Role: r.URL.Query().Get("role")}
	if verr := validation.ValidateStruct(&q); verr != nil {
		rw.ValidationError(verr)
		return
	}

	role := auth.RoleViewer
	if q.Role != "" {
		role = auth.Role(q.Role)
	}

	token, err := h.tokens.DevToken(role, h.devUserID)
	if err != nil {
		rw.InternalError(err)
		return
	}

	logging.Ctx(r.Context()).Info().Str("role", string(role)).Msg("Issued development token")
	rw.Success(models.TokenResponse{Token: token})
}
