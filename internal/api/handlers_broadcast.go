// Cardcast - Trading Card API and Stream Overlay Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cardcast

package api

import (
	"errors"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/tomtom215/cardcast/internal/auth"
	"github.com/tomtom215/cardcast/internal/broadcast"
	"github.com/tomtom215/cardcast/internal/models"
	"github.com/tomtom215/cardcast/internal/validation"
)

// maxBroadcastBody bounds the broadcast request body.
const maxBroadcastBody = 64 * 1024

// BroadcastCard places one card on the overlay.
type BroadcastCard struct {
	ID string   `json:"id" validate:"required"`
	X  *float64 `json:"x" validate:"required"`
	Y  *float64 `json:"y" validate:"required"`
}

// BroadcastRequest is the body of POST /api/pubsub/broadcast.
type BroadcastRequest struct {
	Cards []BroadcastCard `json:"cards" validate:"required,min=1,max=10,dive"`
}

func (req *BroadcastRequest) entries() []broadcast.Entry {
	out := make([]broadcast.Entry, len(req.Cards))
	for i, c := range req.Cards {
		out[i] = broadcast.Entry{ID: c.ID, X: *c.X, Y: *c.Y}
	}
	return out
}

// Broadcast sends cards to the caller's channel overlay.
//
// @Summary Broadcast cards to the overlay
// @Description Resolves up to 10 card ids and sends them with their positions over Twitch Extension PubSub. Unknown ids are skipped.
// @Tags PubSub
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body BroadcastRequest true "Cards to show"
// @Success 200 {object} models.SuccessResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/pubsub/broadcast [post]
func (h *Handler) Broadcast(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	claims, _ := auth.ClaimsFromContext(r.Context())
	if err := broadcast.Authorize(claims); err != nil {
		rw.Forbidden(msgBroadcastForbidden)
		return
	}

	var req BroadcastRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBroadcastBody)).Decode(&req); err != nil {
		rw.ValidationError(validation.NewFieldError("body", msgInvalidBody))
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		rw.ValidationError(verr)
		return
	}

	err := h.broadcaster.Broadcast(r.Context(), claims, req.entries())

	var sendErr *broadcast.SendError
	switch {
	case err == nil:
		rw.Success(models.SuccessResponse{Success: true})
	case errors.Is(err, broadcast.ErrForbidden):
		rw.Forbidden(msgBroadcastForbidden)
	case errors.Is(err, broadcast.ErrNoCardsFound):
		rw.NotFound(msgNoCardsFound)
	case errors.As(err, &sendErr):
		rw.ExternalServiceError("twitch-pubsub", sendErr)
	default:
		rw.InternalError(err)
	}
}
