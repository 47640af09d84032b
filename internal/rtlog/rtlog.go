// Package rtlog provides structured logging configuration for readtext
// using log/slog, grounded on the teacher's internal/logging package:
// same Setup(level, format)/FromContext(ctx) shape, with a per-read
// session identifier in place of an HTTP request ID.
package rtlog

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
)

type sessionIDKey struct{}

// Setup configures the global slog logger. Level: "debug", "info",
// "warn", "error" (default "info"). Format: "text", "json" (default
// "text") — use "json" when readtext runs inside a larger service's
// log pipeline.
func Setup(level, format string) {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}

	var handler slog.Handler
	if strings.ToLower(format) == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewSession stamps ctx with a fresh read-session id, returning both
// the enriched context and the id itself so callers can report it
// alongside a returned error.
func NewSession(ctx context.Context) (context.Context, string) {
	id := uuid.NewString()
	return context.WithValue(ctx, sessionIDKey{}, id), id
}

// FromContext returns a logger enriched with the context's read-session
// id, if one was set by NewSession.
func FromContext(ctx context.Context) *slog.Logger {
	logger := slog.Default()
	if id, ok := ctx.Value(sessionIDKey{}).(string); ok && id != "" {
		logger = logger.With("read_session", id)
	}
	return logger
}

// WithFields returns a logger carrying additional structured fields on
// top of FromContext, for a component-scoped logger (e.g. one per
// Stream or one per growth strategy).
func WithFields(ctx context.Context, args ...any) *slog.Logger {
	return FromContext(ctx).With(args...)
}
