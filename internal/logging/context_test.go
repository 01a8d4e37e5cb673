// Cardcast - Trading Card API and Stream Overlay Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cardcast

package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestGenerateCorrelationID(t *testing.T) {
	t.Parallel()

	id1 := GenerateCorrelationID()
	id2 := GenerateCorrelationID()

	if len(id1) != 8 {
		t.Errorf("expected 8-character correlation ID, got %d", len(id1))
	}
	if id1 == id2 {
		t.Error("expected unique correlation IDs")
	}
}

func TestGenerateRequestID(t *testing.T) {
	t.Parallel()

	id := GenerateRequestID()
	if len(id) != 36 {
		t.Errorf("expected 36-character request ID, got %d", len(id))
	}
}

func TestRequestIDContext(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	if id := RequestIDFromContext(ctx); id != "" {
		t.Errorf("expected empty request ID, got %s", id)
	}

	ctx = ContextWithRequestID(ctx, "req-123")
	if id := RequestIDFromContext(ctx); id != "req-123" {
		t.Errorf("expected 'req-123', got '%s'", id)
	}
}

func TestContextWithNewCorrelationID(t *testing.T) {
	t.Parallel()

	ctx := ContextWithNewCorrelationID(context.Background())
	if id := CorrelationIDFromContext(ctx); len(id) != 8 {
		t.Errorf("expected generated 8-character correlation ID, got %q", id)
	}
}

func TestCtx(t *testing.T) {
	var buf bytes.Buffer

	SetLogger(NewTestLogger(&buf))
	defer Init(DefaultConfig())

	ctx := ContextWithRequestID(context.Background(), "req-abc")
	ctx = ContextWithCorrelationID(ctx, "corr1234")

	Ctx(ctx).Info().Msg("with context")

	output := buf.String()
	if !strings.Contains(output, `"request_id":"req-abc"`) {
		t.Errorf("expected request_id in output: %s", output)
	}
	if !strings.Contains(output, `"correlation_id":"corr1234"`) {
		t.Errorf("expected correlation_id in output: %s", output)
	}
}

func TestCtx_NoValues(t *testing.T) {
	var buf bytes.Buffer

	SetLogger(NewTestLogger(&buf))
	defer Init(DefaultConfig())

	Ctx(context.Background()).Info().Msg("bare")

	output := buf.String()
	if strings.Contains(output, "request_id") || strings.Contains(output, "correlation_id") {
		t.Errorf("unexpected context fields in output: %s", output)
	}
}
