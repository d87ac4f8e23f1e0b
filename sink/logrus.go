package sink

import (
	"github.com/sirupsen/logrus"

	"github.com/philipp01105/logstream/core"
	"github.com/philipp01105/logstream/logwriter"
)

var _ logwriter.Logger = (*LogrusLogger)(nil)

// LogrusTarget is satisfied by *logrus.Logger and *logrus.Entry.
type LogrusTarget interface {
	Log(level logrus.Level, args ...interface{})
}

// LogrusLogger forwards records to a logrus logger or entry.
type LogrusLogger struct {
	target LogrusTarget
}

// Logrus returns a Logger writing to t.
func Logrus(t LogrusTarget) *LogrusLogger {
	return &LogrusLogger{target: t}
}

// Log writes msg at level. core.PanicLevel is logged at logrus.FatalLevel
// because logrus panics on its own PanicLevel.
func (l *LogrusLogger) Log(level core.Level, msg string) error {
	lvl, ok := logrusLevel(level)
	if !ok {
		return invalidLevel(level)
	}
	l.target.Log(lvl, msg)
	return nil
}

func logrusLevel(level core.Level) (logrus.Level, bool) {
	switch level {
	case core.DebugLevel:
		return logrus.DebugLevel, true
	case core.InfoLevel:
		return logrus.InfoLevel, true
	case core.WarnLevel:
		return logrus.WarnLevel, true
	case core.ErrorLevel:
		return logrus.ErrorLevel, true
	case core.FatalLevel, core.PanicLevel:
		return logrus.FatalLevel, true
	}
	return 0, false
}
