// Cardcast - Trading Card API and Stream Overlay Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cardcast

package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tomtom215/cardcast/internal/logging"
	"github.com/tomtom215/cardcast/internal/models"
	"github.com/tomtom215/cardcast/internal/validation"
)

func TestResponseWriter_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		write      func(rw *ResponseWriter)
		wantStatus int
		wantCode   string
		wantError  string
	}{
		{"forbidden", func(rw *ResponseWriter) { rw.Forbidden("no") }, http.StatusForbidden, ErrCodeForbidden, "no"},
		{"not found", func(rw *ResponseWriter) { rw.NotFound("gone") }, http.StatusNotFound, ErrCodeNotFound, "gone"},
		{"internal hides cause", func(rw *ResponseWriter) { rw.InternalError(errors.New("pq: secret detail")) },
			http.StatusInternalServerError, ErrCodeInternalError, msgInternal},
		{"external keeps cause", func(rw *ResponseWriter) { rw.ExternalServiceError("twitch", errors.New("upstream said no")) },
			http.StatusInternalServerError, ErrCodeExternalServiceFail, "upstream said no"},
		{"unavailable", func(rw *ResponseWriter) { rw.ServiceUnavailable("down") }, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "down"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req = req.WithContext(logging.ContextWithRequestID(req.Context(), "req-1"))
			rec := httptest.NewRecorder()

			tt.write(NewResponseWriter(rec, req))

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			var body models.ErrorResponse
			decodeBody(t, rec, &body)
			if body.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", body.Code, tt.wantCode)
			}
			if body.Error != tt.wantError {
				t.Errorf("error = %q, want %q", body.Error, tt.wantError)
			}
			if body.RequestID != "req-1" {
				t.Errorf("request_id = %q, want req-1", body.RequestID)
			}
		})
	}
}

func TestResponseWriter_ValidationError(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	NewResponseWriter(rec, httptest.NewRequest(http.MethodPost, "/", nil)).
		ValidationError(validation.NewFieldError("body", msgInvalidBody))

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	var body models.ErrorResponse
	decodeBody(t, rec, &body)
	if body.Details["body"] != msgInvalidBody {
		t.Errorf("details = %v", body.Details)
	}
}

func TestSanitizeLogValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"luffy", "luffy"},
		{"a\nb", `a\x0ab`},
		{"tab\there", `tab\x09here`},
	}
	for _, tt := range tests {
		if got := sanitizeLogValue(tt.in); got != tt.want {
			t.Errorf("sanitizeLogValue(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
