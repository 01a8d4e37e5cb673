// Cardcast - Trading Card API and Stream Overlay Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cardcast

package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/cardcast/internal/cards"
	"github.com/tomtom215/cardcast/internal/logging"
	"github.com/tomtom215/cardcast/internal/pagination"
)

// ListCards returns a page of cards matching the query filters.
//
// @Summary List cards
// @Description Filters combine with AND; name is a case-insensitive substring match, type/color/rarity/set are exact.
// @Tags Cards
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size, 1 to 100 (default 20)"
// @Param name query string false "Name contains"
// @Param type query string false "LEADER, CHARACTER, EVENT or STAGE"
// @Param color query string false "Color"
// @Param rarity query string false "Rarity"
// @Param set query string false "Set name"
// @Success 200 {object} pagination.Page[models.Card]
// @Failure 401 {object} models.ErrorResponse
// @Router /api/cards [get]
func (h *Handler) ListCards(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	q := r.URL.Query()

	query := cards.Query{
		Name:   q.Get("name"),
		Type:   q.Get("type"),
		Color:  q.Get("color"),
		Rarity: q.Get("rarity"),
		Set:    q.Get("set"),
		Page:   pagination.Parse(q.Get("page"), q.Get("limit")),
	}

	page, err := h.cards.List(r.Context(), query)
	if err != nil {
		rw.InternalError(err)
		return
	}

	logging.Ctx(r.Context()).Debug().
		Str("name", sanitizeLogValue(query.Name)).
		Str("type", sanitizeLogValue(query.Type)).
		Int("page", query.Page.Page).
		Int("limit", query.Page.Limit).
		Int64("total", page.Total).
		Msg("Listed cards")

	rw.Success(page)
}

// GetCard returns a single card by id.
//
// @Summary Get a card
// @Tags Cards
// @Produce json
// @Security BearerAuth
// @Param id path string true "Card id, e.g. OP01-001"
// @Success 200 {object} models.Card
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/cards/{id} [get]
func (h *Handler) GetCard(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	card, err := h.cards.Get(r.Context(), chi.URLParam(r, "id"))
	switch {
	case errors.Is(err, cards.ErrCardNotFound):
		rw.NotFound(msgCardNotFound)
	case err != nil:
		rw.InternalError(err)
	default:
		rw.Success(card)
	}
}
