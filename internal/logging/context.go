package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// Field keys attached to deskutil log lines.
const (
	FieldComponent = "component"
	FieldAttemptID = "attempt_id"
	FieldURL       = "url"
	FieldPlayer    = "player"
)

// FromContext extracts the logger from context.
// Without one it returns zerolog's disabled logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext returns a new context with the logger attached
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// WithFields returns ctx carrying a child logger tagged with the given
// key/value pairs, e.g. WithFields(ctx, FieldAttemptID, id, FieldURL, u).
// A trailing key without a value is ignored.
func WithFields(ctx context.Context, kv ...string) context.Context {
	child := FromContext(ctx).With()
	for i := 0; i+1 < len(kv); i += 2 {
		child = child.Str(kv[i], kv[i+1])
	}
	return WithContext(ctx, child.Logger())
}
