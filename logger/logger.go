package logger

import (
	"fmt"
	"os"
	"time"

	"github.com/philipp01105/logstream/core"
	"github.com/philipp01105/logstream/handler"
	"github.com/philipp01105/logstream/logwriter"
)

// osExit is a variable to allow overriding os.Exit in tests
var osExit = os.Exit

// Logger is the main logging interface (immutable)
type Logger struct {
	handler       handler.Handler
	fastHandler   handler.FastHandler
	level         core.Level
	includeCaller bool
	callerSkip    int
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	handler       handler.Handler
	fastHandler   handler.FastHandler
	level         core.Level
	includeCaller bool
	callerSkip    int
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		level:      core.InfoLevel, // Default level
		callerSkip: 2,              // log, then the level method
	}
}

// WithHandler sets the handler
func (b *Builder) WithHandler(h handler.Handler) *Builder {
	b.handler = h
	// Cache FastHandler for pool-free hot path
	b.fastHandler, _ = h.(handler.FastHandler)
	return b
}

// WithLevel sets the log level
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.level = level
	return b
}

// WithCaller enables caller information
func (b *Builder) WithCaller(enabled bool) *Builder {
	b.includeCaller = enabled
	return b
}

// WithCallerSkip adds extra frames to skip when resolving the caller.
// Records forwarded by a logwriter.Writer pass through Flush, so one
// extra frame points the caller at the code that flushed.
func (b *Builder) WithCallerSkip(extra int) *Builder {
	b.callerSkip += extra
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	return &Logger{
		handler:       b.handler,
		fastHandler:   b.fastHandler,
		level:         b.level,
		includeCaller: b.includeCaller,
		callerSkip:    b.callerSkip,
	}
}

// Level returns the minimum level this logger emits
func (l *Logger) Level() core.Level {
	return l.level
}

// Enabled reports whether a record at level would be emitted
func (l *Logger) Enabled(level core.Level) bool {
	return level >= l.level && l.handler != nil
}

// Log logs a message at the specified level and returns the handler's
// error. It satisfies logwriter.Logger.
func (l *Logger) Log(level core.Level, msg string) error {
	// Level check optimization - exit early BEFORE any allocations
	if level < l.level {
		return nil
	}

	return l.log(level, msg)
}

// log is the internal logging method
func (l *Logger) log(level core.Level, msg string) error {
	// Handler check - exit if no handler (avoid any work)
	if l.handler == nil {
		return nil
	}

	var caller core.CallerInfo
	if l.includeCaller {
		caller = core.GetCaller(l.callerSkip)
	}

	// Fast path: FastHandler avoids the sync.Pool Get/Put
	if l.fastHandler != nil {
		return l.fastHandler.HandleLog(time.Now(), level, msg, caller)
	}

	entry := core.GetEntry()
	entry.Level = level
	entry.Message = msg
	entry.Caller = caller

	err := l.handler.Handle(entry)

	// Handlers are synchronous, so the entry is done with
	core.PutEntry(entry)
	return err
}

// Writer returns a logwriter.Writer that flushes into l at level.
func (l *Logger) Writer(level core.Level) (*logwriter.Writer, error) {
	return logwriter.New(l, level)
}

// Printer returns a line-flushing logwriter.Printer over l at level.
func (l *Logger) Printer(level core.Level) (*logwriter.Printer, error) {
	w, err := l.Writer(level)
	if err != nil {
		return nil, err
	}
	return logwriter.NewPrinter(w), nil
}

// Debug logs a debug message
func (l *Logger) Debug(msg string) {
	if core.DebugLevel < l.level {
		return
	}
	_ = l.log(core.DebugLevel, msg)
}

// Info logs an info message
func (l *Logger) Info(msg string) {
	if core.InfoLevel < l.level {
		return
	}
	_ = l.log(core.InfoLevel, msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string) {
	if core.WarnLevel < l.level {
		return
	}
	_ = l.log(core.WarnLevel, msg)
}

// Error logs an error message
func (l *Logger) Error(msg string) {
	if core.ErrorLevel < l.level {
		return
	}
	_ = l.log(core.ErrorLevel, msg)
}

// Fatal logs a fatal message and exits the program with os.Exit(1)
func (l *Logger) Fatal(msg string) {
	_ = l.log(core.FatalLevel, msg)
	osExit(1)
}

// Panic logs a panic message and panics
func (l *Logger) Panic(msg string) {
	_ = l.log(core.PanicLevel, msg)
	panic(msg)
}

// Debugf logs a debug message with formatting
func (l *Logger) Debugf(format string, args ...interface{}) {
	if core.DebugLevel < l.level {
		return
	}
	_ = l.log(core.DebugLevel, fmt.Sprintf(format, args...))
}

// Infof logs an info message with formatting
func (l *Logger) Infof(format string, args ...interface{}) {
	if core.InfoLevel < l.level {
		return
	}
	_ = l.log(core.InfoLevel, fmt.Sprintf(format, args...))
}

// Warnf logs a warning message with formatting
func (l *Logger) Warnf(format string, args ...interface{}) {
	if core.WarnLevel < l.level {
		return
	}
	_ = l.log(core.WarnLevel, fmt.Sprintf(format, args...))
}

// Errorf logs an error message with formatting
func (l *Logger) Errorf(format string, args ...interface{}) {
	if core.ErrorLevel < l.level {
		return
	}
	_ = l.log(core.ErrorLevel, fmt.Sprintf(format, args...))
}

// Fatalf logs a fatal message with formatting and exits the program with os.Exit(1)
func (l *Logger) Fatalf(format string, args ...interface{}) {
	_ = l.log(core.FatalLevel, fmt.Sprintf(format, args...))
	osExit(1)
}

// Panicf logs a panic message with formatting and panics
func (l *Logger) Panicf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	_ = l.log(core.PanicLevel, msg)
	panic(msg)
}

// Close closes the logger's handler
func (l *Logger) Close() error {
	if l.handler != nil {
		return l.handler.Close()
	}
	return nil
}
