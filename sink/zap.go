package sink

import (
	"bytes"
	"errors"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/logstream/core"
	"github.com/philipp01105/logstream/logwriter"
)

// ErrZapWrite is returned when one or more zap cores fail to write a record.
var ErrZapWrite = errors.New("sink: zap write failed")

var _ logwriter.Logger = (*ZapLogger)(nil)

// ZapLogger forwards records to a *zap.Logger.
type ZapLogger struct {
	logger *zap.Logger
}

// Zap returns a Logger writing to l. Records are checked and written
// through l.Core(), so each core applies its own level and sampling, and
// Fatal and Panic entries never exit or panic.
func Zap(l *zap.Logger) *ZapLogger {
	return &ZapLogger{logger: l}
}

// Log writes msg at level. A core write failure is returned wrapping
// ErrZapWrite.
func (z *ZapLogger) Log(level core.Level, msg string) error {
	lvl, ok := zapLevel(level)
	if !ok {
		return invalidLevel(level)
	}

	ent := zapcore.Entry{
		Level:      lvl,
		Time:       time.Now(),
		LoggerName: z.logger.Name(),
		Message:    msg,
	}
	ce := z.logger.Core().Check(ent, nil)
	if ce == nil {
		return nil
	}

	// Core-level Check leaves ErrorOutput unset; capture failures here
	var out zapErrorOutput
	ce.ErrorOutput = &out
	ce.Write()
	return out.err()
}

// zapErrorOutput collects the write error report of a CheckedEntry.
type zapErrorOutput struct {
	buf bytes.Buffer
}

func (o *zapErrorOutput) Write(p []byte) (int, error) {
	return o.buf.Write(p)
}

func (o *zapErrorOutput) Sync() error { return nil }

func (o *zapErrorOutput) err() error {
	if o.buf.Len() == 0 {
		return nil
	}
	return &zapWriteError{report: string(bytes.TrimSpace(o.buf.Bytes()))}
}

type zapWriteError struct {
	report string
}

func (e *zapWriteError) Error() string { return ErrZapWrite.Error() + ": " + e.report }

func (e *zapWriteError) Unwrap() error { return ErrZapWrite }

func zapLevel(level core.Level) (zapcore.Level, bool) {
	switch level {
	case core.DebugLevel:
		return zapcore.DebugLevel, true
	case core.InfoLevel:
		return zapcore.InfoLevel, true
	case core.WarnLevel:
		return zapcore.WarnLevel, true
	case core.ErrorLevel:
		return zapcore.ErrorLevel, true
	case core.FatalLevel:
		return zapcore.FatalLevel, true
	case core.PanicLevel:
		return zapcore.PanicLevel, true
	}
	return zapcore.InvalidLevel, false
}
