// Package logging defines the structured-logging interface used across the
// blog server. The only implementation wraps log/slog.
package logging

import "context"

// Logger is a context-aware, structured logger. Attributes attached to the
// context with ContextWith are added to every record logged with it.
//
// The variadic args are interpreted as key–value pairs, e.g.:
//
//	log.Info(ctx, "request served", "path", path, "status", status)
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs unusual but non-fatal conditions.
	Warn(ctx context.Context, msg string, args ...any)

	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key–value pairs.
	With(args ...any) Logger
}

type ctxArgsKey struct{}

// ContextWith returns a copy of ctx carrying extra key–value pairs, such as
// a request id, for every log call made with it further down the stack.
func ContextWith(ctx context.Context, args ...any) context.Context {
	if len(args) == 0 {
		return ctx
	}
	prev := argsFrom(ctx)
	merged := make([]any, 0, len(prev)+len(args))
	merged = append(merged, prev...)
	merged = append(merged, args...)
	return context.WithValue(ctx, ctxArgsKey{}, merged)
}

func argsFrom(ctx context.Context) []any {
	if ctx == nil {
		return nil
	}
	args, _ := ctx.Value(ctxArgsKey{}).([]any)
	return args
}
