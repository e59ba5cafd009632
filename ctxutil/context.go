package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const (
	// TraceIDKey is the log field and context key for the trace id.
	TraceIDKey = "trace_id"
	// FeatureKey is the log field and context key for the feature name.
	FeatureKey = "feature"
)

// GetValue gets a value from context.Context.
func GetValue(ctx context.Context, key string) any {
	if ctx == nil {
		return nil
	}
	return ctx.Value(contextKey(key))
}

// SetValue sets a value to context.Context.
func SetValue(ctx context.Context, key string, val any) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, contextKey(key), val)
}

// GetTraceID gets trace id from context.Context.
func GetTraceID(ctx context.Context) string {
	if traceID, ok := GetValue(ctx, TraceIDKey).(string); ok {
		return traceID
	}
	return ""
}

// SetTraceID sets trace id to context.Context.
func SetTraceID(ctx context.Context, traceID string) context.Context {
	return SetValue(ctx, TraceIDKey, traceID)
}

// EnsureTraceID ensures that a trace ID exists in the context.
func EnsureTraceID(ctx context.Context) (context.Context, string) {
	if traceID := GetTraceID(ctx); traceID != "" {
		return ctx, traceID
	}
	traceID := uuid.NewString()
	return SetTraceID(ctx, traceID), traceID
}

// GetFeature gets the feature name from context.Context.
func GetFeature(ctx context.Context) string {
	if name, ok := GetValue(ctx, FeatureKey).(string); ok {
		return name
	}
	return ""
}

// SetFeature sets the feature name to context.Context.
func SetFeature(ctx context.Context, name string) context.Context {
	return SetValue(ctx, FeatureKey, name)
}
