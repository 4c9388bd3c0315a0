package logger

import (
	"context"

	"go.uber.org/zap"
)

// Standard field names for structured logging. Use these instead of raw strings.
const (
	FieldRequestID = "request_id"
	FieldComponent = "component"

	FieldOperation = "operation"
	FieldMethod    = "method"
	FieldPath      = "path"
	FieldQuery     = "query"
	FieldStatus    = "status"

	FieldDurationMS = "duration_ms"

	FieldError = "error"

	FieldCount = "count"
	FieldFile  = "file"
	FieldLine  = "line"

	FieldAddress = "address"

	// Domain fields
	FieldOffice   = "office"
	FieldLabel    = "label"
	FieldLanguage = "language"
	FieldVersion  = "version"
)

type contextKey string

const requestIDKey contextKey = "logger_request_id"

// WithRequestID adds a request ID to the context for logging.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestIDFrom returns the request ID stored in ctx, or "".
func RequestIDFrom(ctx context.Context) string {
	if v, ok := ctx.Value(requestIDKey).(string); ok {
		return v
	}
	return ""
}

// FromContext returns the global logger enriched with the context's request ID.
func FromContext(ctx context.Context) *zap.SugaredLogger {
	if id := RequestIDFrom(ctx); id != "" {
		return Logger.With(FieldRequestID, id)
	}
	return Logger
}
