package handler

import (
	"time"

	"go.uber.org/multierr"

	"github.com/philipp01105/logstream/core"
)

// MultiHandler sends log entries to multiple handlers
type MultiHandler struct {
	handlers     []Handler
	fastHandlers []FastHandler // nil entries where the child does not implement FastHandler
}

// NewMultiHandler creates a new multi-handler
func NewMultiHandler(handlers ...Handler) *MultiHandler {
	m := &MultiHandler{
		handlers:     handlers,
		fastHandlers: make([]FastHandler, len(handlers)),
	}
	for i, h := range handlers {
		m.fastHandlers[i], _ = h.(FastHandler)
	}
	return m
}

// HandleLog processes log data directly, building a pooled entry only for
// children that lack FastHandler.
func (h *MultiHandler) HandleLog(t time.Time, level core.Level, msg string, caller core.CallerInfo) error {
	var entry *core.Entry
	var err error
	for i, child := range h.handlers {
		if fh := h.fastHandlers[i]; fh != nil {
			err = multierr.Append(err, fh.HandleLog(t, level, msg, caller))
			continue
		}
		if entry == nil {
			entry = core.GetEntry()
			entry.Time = t
			entry.Level = level
			entry.Message = msg
			entry.Caller = caller
		}
		err = multierr.Append(err, child.Handle(entry))
	}
	if entry != nil {
		core.PutEntry(entry)
	}
	return err
}

// Handle processes a log entry by sending it to all handlers.
// Every handler is tried; the returned error combines all failures.
func (h *MultiHandler) Handle(entry *core.Entry) error {
	var err error
	for _, handler := range h.handlers {
		err = multierr.Append(err, handler.Handle(entry))
	}
	return err
}

// Close closes all handlers
func (h *MultiHandler) Close() error {
	var err error
	for _, handler := range h.handlers {
		err = multierr.Append(err, handler.Close())
	}
	return err
}
