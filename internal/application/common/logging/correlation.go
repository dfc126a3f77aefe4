package logging

import (
	"context"

	"github.com/google/uuid"
)

// contextKey is a private type so correlation values cannot collide with
// other packages' context keys.
type contextKey string

// CorrelationIDKey carries the correlation ID through context.
const CorrelationIDKey contextKey = "correlation_id"

// WithCorrelationID returns a context carrying the given correlation ID.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, CorrelationIDKey, id)
}

// WithNewCorrelationID returns a context carrying a freshly generated
// correlation ID, along with the ID itself. Batch entry points call this once
// per run so every log line of the run shares one ID.
func WithNewCorrelationID(ctx context.Context) (context.Context, string) {
	id := uuid.New().String()
	return WithCorrelationID(ctx, id), id
}

// CorrelationIDFromContext extracts the correlation ID from context, or
// returns an empty string when none is set.
func CorrelationIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(CorrelationIDKey).(string); ok {
		return id
	}
	return ""
}
