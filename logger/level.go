package logger

import (
	"github.com/philipp01105/logstream/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	DebugLevel = core.DebugLevel
	InfoLevel  = core.InfoLevel
	WarnLevel  = core.WarnLevel
	ErrorLevel = core.ErrorLevel
	FatalLevel = core.FatalLevel
	PanicLevel = core.PanicLevel
)

// ParseLevel converts a string to a Level, falling back to InfoLevel for
// unknown names. Use core.ParseLevel to detect bad input.
func ParseLevel(s string) Level {
	level, err := core.ParseLevel(s)
	if err != nil {
		return InfoLevel
	}
	return level
}
