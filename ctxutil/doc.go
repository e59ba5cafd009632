// Package ctxutil carries request-scoped values through context.Context.
//
// Trace ids and feature names stored here are picked up by the logger and
// attached to every entry:
//
//	ctx, traceID := ctxutil.EnsureTraceID(ctx)
//	ctx = ctxutil.SetFeature(ctx, "billing")
package ctxutil
