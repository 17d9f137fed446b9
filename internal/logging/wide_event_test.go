package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureDefault(t *testing.T) *bytes.Buffer {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	return &buf
}

func TestEmitCarriesCheckoutContext(t *testing.T) {
	buf := captureDefault(t)

	event := NewWideEvent("http_request")
	ctx := WithContext(context.Background(), event)
	assert.Equal(t, event.TraceID, GetTraceID(ctx))

	EnrichHTTP(ctx, "POST", "/api/v1/checkout/sessions")
	EnrichHTTPStatus(ctx, 201)
	EnrichSession(ctx, "s-1", "pro", "USD")
	EnrichStep(ctx, 1, "podcast_ownership")
	EnrichOrder(ctx, "o-1", 794)
	Emit(ctx)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "INFO", line["level"])
	assert.Equal(t, "wide_event", line["msg"])
	assert.Equal(t, "s-1", line["session_id"])
	assert.Equal(t, "pro", line["plan"])
	assert.Equal(t, "podcast_ownership", line["step_role"])
	assert.Equal(t, float64(794), line["total"])
	assert.Equal(t, float64(201), line["http_status_code"])
}

func TestEmitErrorLevel(t *testing.T) {
	buf := captureDefault(t)

	ctx := WithContext(context.Background(), NewWideEvent("http_request"))
	EnrichError(ctx, errors.New("boom"), "confirm")
	Emit(ctx)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "ERROR", line["level"])
	assert.Equal(t, "confirm", line["error_stage"])
}

func TestEnrichWithoutEventIsNoop(t *testing.T) {
	buf := captureDefault(t)
	ctx := context.Background()

	EnrichSession(ctx, "s", "pro", "USD")
	EnrichError(ctx, errors.New("x"), "y")
	Emit(ctx)

	assert.Empty(t, buf.String())
	assert.Nil(t, FromContext(ctx))
}
