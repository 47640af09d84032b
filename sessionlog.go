package readtext

import (
	"context"
	"log/slog"

	"github.com/csvarray/readtext/internal/rtlog"
)

// sessionLogger is ReadText's per-call logging handle: a context
// carrying a read-session id (for correlating every log line a single
// ReadText call emits) plus the slog logger rtlog derives from it.
type sessionLogger struct {
	ctx context.Context
	id  string
}

// newSessionLogger stamps a fresh read-session id onto ctx.
func newSessionLogger(ctx context.Context) *sessionLogger {
	ctx, id := rtlog.NewSession(ctx)
	return &sessionLogger{ctx: ctx, id: id}
}

func (s *sessionLogger) logger() *slog.Logger { return rtlog.FromContext(s.ctx) }

func (s *sessionLogger) growth(fromRows, toRows int, size string) {
	s.logger().Debug("growing output array",
		"from_rows", fromRows, "to_rows", toRows, "size", size)
}

func (s *sessionLogger) raggedRow(row, expected, got int) {
	s.logger().Warn("ragged row encountered",
		"row", row, "expected_fields", expected, "got_fields", got)
}

func (s *sessionLogger) start(source string, dtype Dtype) {
	s.logger().Info("read started", "source", source, "homogeneous", dtype.Homogeneous)
}

func (s *sessionLogger) done(rows int, err error) {
	if err != nil {
		s.logger().Error("read failed", "rows", rows, "err", err)
		return
	}
	s.logger().Info("read finished", "rows", rows)
}
