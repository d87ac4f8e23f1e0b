package sink

import (
	"context"
	"log/slog"
	"time"

	"github.com/philipp01105/logstream/core"
	"github.com/philipp01105/logstream/logwriter"
)

// Levels above slog.LevelError used for Fatal and Panic records.
const (
	SlogLevelFatal = slog.LevelError + 4
	SlogLevelPanic = slog.LevelError + 8
)

var _ logwriter.Logger = (*SlogLogger)(nil)

// SlogLogger forwards records to the handler of a *slog.Logger.
type SlogLogger struct {
	handler slog.Handler
}

// Slog returns a Logger writing to l's handler.
func Slog(l *slog.Logger) *SlogLogger {
	return &SlogLogger{handler: l.Handler()}
}

// Log writes msg at level and returns the handler's error, which
// slog.Logger itself would discard.
func (s *SlogLogger) Log(level core.Level, msg string) error {
	lvl, ok := slogLevel(level)
	if !ok {
		return invalidLevel(level)
	}

	ctx := context.Background()
	if !s.handler.Enabled(ctx, lvl) {
		return nil
	}
	return s.handler.Handle(ctx, slog.NewRecord(time.Now(), lvl, msg, 0))
}

func slogLevel(level core.Level) (slog.Level, bool) {
	switch level {
	case core.DebugLevel:
		return slog.LevelDebug, true
	case core.InfoLevel:
		return slog.LevelInfo, true
	case core.WarnLevel:
		return slog.LevelWarn, true
	case core.ErrorLevel:
		return slog.LevelError, true
	case core.FatalLevel:
		return SlogLevelFatal, true
	case core.PanicLevel:
		return SlogLevelPanic, true
	}
	return 0, false
}
