package logging

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// contextKey is a private type for context keys to avoid collisions
type contextKey string

const (
	contextKeyWideEvent contextKey = "wide_event"
	contextKeyTraceID   contextKey = "trace_id"
)

// WideEvent is a single structured log entry describing one request from
// start to finish. Handlers add to it as they learn more.
type WideEvent struct {
	// Core identifiers
	TraceID   string    `json:"trace_id"`
	EventType string    `json:"event_type"`
	Timestamp time.Time `json:"timestamp"`

	// Request metadata
	HTTPMethod     string            `json:"http_method,omitempty"`
	HTTPPath       string            `json:"http_path,omitempty"`
	HTTPStatusCode int               `json:"http_status_code,omitempty"`
	HTTPDurationMs int64             `json:"http_duration_ms,omitempty"`
	HTTPHeaders    map[string]string `json:"http_headers,omitempty"`

	// Checkout context
	SessionID string `json:"session_id,omitempty"`
	Plan      string `json:"plan,omitempty"`
	Currency  string `json:"currency,omitempty"`
	Step      int    `json:"step,omitempty"`
	StepRole  string `json:"step_role,omitempty"`
	OrderID   string `json:"order_id,omitempty"`
	Total     int64  `json:"total,omitempty"`

	// Error tracking
	Error          string `json:"error,omitempty"`
	ErrorStage     string `json:"error_stage,omitempty"`
	PanicRecovered bool   `json:"panic_recovered,omitempty"`

	// Additional metadata
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// NewWideEvent creates a new WideEvent with a trace ID and timestamp
func NewWideEvent(eventType string) *WideEvent {
	return &WideEvent{
		TraceID:     uuid.New().String(),
		EventType:   eventType,
		Timestamp:   time.Now(),
		HTTPHeaders: make(map[string]string),
		Metadata:    make(map[string]interface{}),
	}
}

// WithContext attaches a WideEvent to a context
func WithContext(ctx context.Context, event *WideEvent) context.Context {
	ctx = context.WithValue(ctx, contextKeyWideEvent, event)
	ctx = context.WithValue(ctx, contextKeyTraceID, event.TraceID)
	return ctx
}

// FromContext retrieves the WideEvent from a context
func FromContext(ctx context.Context) *WideEvent {
	if event, ok := ctx.Value(contextKeyWideEvent).(*WideEvent); ok {
		return event
	}
	return nil
}

// GetTraceID retrieves just the trace ID from context
func GetTraceID(ctx context.Context) string {
	if traceID, ok := ctx.Value(contextKeyTraceID).(string); ok {
		return traceID
	}
	return ""
}

func EnrichHTTP(ctx context.Context, method, path string) {
	if event := FromContext(ctx); event != nil {
		event.HTTPMethod = method
		event.HTTPPath = path
	}
}

func EnrichHTTPStatus(ctx context.Context, statusCode int) {
	if event := FromContext(ctx); event != nil {
		event.HTTPStatusCode = statusCode
	}
}

func EnrichHTTPDuration(ctx context.Context, duration time.Duration) {
	if event := FromContext(ctx); event != nil {
		event.HTTPDurationMs = duration.Milliseconds()
	}
}

func EnrichHTTPHeader(ctx context.Context, key, value string) {
	if event := FromContext(ctx); event != nil && value != "" {
		event.HTTPHeaders[key] = value
	}
}

func EnrichSession(ctx context.Context, sessionID, plan, currency string) {
	if event := FromContext(ctx); event != nil {
		event.SessionID = sessionID
		event.Plan = plan
		event.Currency = currency
	}
}

func EnrichStep(ctx context.Context, step int, role string) {
	if event := FromContext(ctx); event != nil {
		event.Step = step
		event.StepRole = role
	}
}

func EnrichOrder(ctx context.Context, orderID string, total int64) {
	if event := FromContext(ctx); event != nil {
		event.OrderID = orderID
		event.Total = total
	}
}

func EnrichError(ctx context.Context, err error, stage string) {
	if event := FromContext(ctx); event != nil {
		if err != nil {
			event.Error = err.Error()
			event.ErrorStage = stage
		}
	}
}

func EnrichPanic(ctx context.Context) {
	if event := FromContext(ctx); event != nil {
		event.PanicRecovered = true
	}
}

func EnrichMetadata(ctx context.Context, key string, value interface{}) {
	if event := FromContext(ctx); event != nil {
		event.Metadata[key] = value
	}
}

// Emit outputs the WideEvent as a structured log
func Emit(ctx context.Context) {
	event := FromContext(ctx)
	if event == nil {
		return
	}

	attrs := []slog.Attr{
		slog.String("trace_id", event.TraceID),
		slog.String("event_type", event.EventType),
		slog.Time("timestamp", event.Timestamp),
	}

	// HTTP metadata
	if event.HTTPMethod != "" {
		attrs = append(attrs, slog.String("http_method", event.HTTPMethod))
	}
	if event.HTTPPath != "" {
		attrs = append(attrs, slog.String("http_path", event.HTTPPath))
	}
	if event.HTTPStatusCode != 0 {
		attrs = append(attrs, slog.Int("http_status_code", event.HTTPStatusCode))
	}
	if event.HTTPDurationMs != 0 {
		attrs = append(attrs, slog.Int64("http_duration_ms", event.HTTPDurationMs))
	}
	if len(event.HTTPHeaders) > 0 {
		attrs = append(attrs, slog.Any("http_headers", event.HTTPHeaders))
	}

	// Checkout context
	if event.SessionID != "" {
		attrs = append(attrs, slog.String("session_id", event.SessionID))
	}
	if event.Plan != "" {
		attrs = append(attrs, slog.String("plan", event.Plan))
	}
	if event.Currency != "" {
		attrs = append(attrs, slog.String("currency", event.Currency))
	}
	if event.StepRole != "" {
		attrs = append(attrs, slog.Int("step", event.Step), slog.String("step_role", event.StepRole))
	}
	if event.OrderID != "" {
		attrs = append(attrs, slog.String("order_id", event.OrderID), slog.Int64("total", event.Total))
	}

	// Error tracking
	if event.Error != "" {
		attrs = append(attrs, slog.String("error", event.Error))
	}
	if event.ErrorStage != "" {
		attrs = append(attrs, slog.String("error_stage", event.ErrorStage))
	}
	if event.PanicRecovered {
		attrs = append(attrs, slog.Bool("panic_recovered", event.PanicRecovered))
	}

	if len(event.Metadata) > 0 {
		attrs = append(attrs, slog.Any("metadata", event.Metadata))
	}

	level := slog.LevelInfo
	if event.Error != "" || event.PanicRecovered {
		level = slog.LevelError
	}

	slog.LogAttrs(ctx, level, "wide_event", attrs...)
}
