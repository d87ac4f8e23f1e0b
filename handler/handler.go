package handler

import (
	"errors"
	"time"

	"github.com/philipp01105/logstream/core"
)

// ErrClosed is returned by handlers that receive entries after Close
var ErrClosed = errors.New("handler closed")

// Handler defines the interface for log handlers
type Handler interface {
	// Handle processes a log entry
	Handle(entry *core.Entry) error

	// Close closes the handler and releases resources
	Close() error
}

// FastHandler is an optional interface that handlers can implement
// to process log data directly without requiring an Entry from the pool.
type FastHandler interface {
	HandleLog(t time.Time, level core.Level, msg string, caller core.CallerInfo) error
}
