package logger

import (
	"context"

	"github.com/ncobase/feature/ctxutil"
	"github.com/sirupsen/logrus"
)

// fieldsFromContext collects the request-scoped log fields carried by ctx.
func fieldsFromContext(ctx context.Context) logrus.Fields {
	fields := logrus.Fields{}
	if traceID := ctxutil.GetTraceID(ctx); traceID != "" {
		fields[ctxutil.TraceIDKey] = traceID
	}
	if name := ctxutil.GetFeature(ctx); name != "" {
		fields[ctxutil.FeatureKey] = name
	}
	return fields
}

// EnsureTraceID ensures that a trace ID exists in the context.
func EnsureTraceID(ctx context.Context) (context.Context, string) {
	return ctxutil.EnsureTraceID(ctx)
}
