package logwriter

import "github.com/philipp01105/logstream/core"

// Logger receives the records produced by a Writer.
//
// Log must deliver the record before returning. An error from Log is
// returned unchanged from the Flush or Close call that triggered it.
type Logger interface {
	Log(level core.Level, msg string) error
}

// LoggerFunc adapts an ordinary function to the Logger interface.
type LoggerFunc func(level core.Level, msg string) error

// Log calls f(level, msg).
func (f LoggerFunc) Log(level core.Level, msg string) error {
	return f(level, msg)
}
