package sink

import (
	"github.com/rs/zerolog"

	"github.com/philipp01105/logstream/core"
	"github.com/philipp01105/logstream/logwriter"
)

var _ logwriter.Logger = (*ZerologLogger)(nil)

// ZerologLogger forwards records to a zerolog.Logger.
type ZerologLogger struct {
	logger zerolog.Logger
}

// Zerolog returns a Logger writing to l.
func Zerolog(l zerolog.Logger) *ZerologLogger {
	return &ZerologLogger{logger: l}
}

// Log writes msg at level using WithLevel, which never exits or panics.
func (z *ZerologLogger) Log(level core.Level, msg string) error {
	lvl, ok := zerologLevel(level)
	if !ok {
		return invalidLevel(level)
	}
	z.logger.WithLevel(lvl).Msg(msg)
	return nil
}

func zerologLevel(level core.Level) (zerolog.Level, bool) {
	switch level {
	case core.DebugLevel:
		return zerolog.DebugLevel, true
	case core.InfoLevel:
		return zerolog.InfoLevel, true
	case core.WarnLevel:
		return zerolog.WarnLevel, true
	case core.ErrorLevel:
		return zerolog.ErrorLevel, true
	case core.FatalLevel:
		return zerolog.FatalLevel, true
	case core.PanicLevel:
		return zerolog.PanicLevel, true
	}
	return zerolog.NoLevel, false
}
