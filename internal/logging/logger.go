// Package logging defines the structured-logging interface used across
// larkstore components. Binaries install a concrete implementation once;
// libraries only see the interface.
package logging

import "context"

// Logger is a context-aware, structured logger.
//
// The variadic args are interpreted as key-value pairs, e.g.:
//
//	log.Info(ctx, "flushing queue", "ops", n, "area", area)
type Logger interface {
	// Debug logs fine-grained events useful only when tracing behavior.
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs a warning for unusual but non-fatal conditions.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs a failure.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key-value
	// pairs. Components tag themselves with With("module", name).
	With(args ...any) Logger
}
