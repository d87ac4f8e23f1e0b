package consolehandler

import (
	"bytes"
	"io"
	"os"
	"sync"
	"time"

	"github.com/philipp01105/logstream/core"
	"github.com/philipp01105/logstream/formatter"
	"github.com/philipp01105/logstream/handler"
)

// ConsoleConfig holds configuration for console handler
type ConsoleConfig struct {
	// Writer to write to (default: os.Stdout)
	Writer io.Writer
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
}

// applyConsoleDefaults fills in zero-value fields with defaults.
func applyConsoleDefaults(cfg *ConsoleConfig) {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}
}

// ConsoleHandler writes formatted entries to an io.Writer.
type ConsoleHandler struct {
	writer          io.Writer
	formatter       formatter.Formatter
	bufferFormatter formatter.BufferFormatter
	writerFormatter formatter.WriterFormatter
	stats           *handler.Stats

	mu        sync.Mutex // protects syncBuf, syncEntry, closed and writer
	syncBuf   bytes.Buffer
	syncEntry core.Entry
	closed    bool
}

// NewConsoleHandler creates a new console handler.
func NewConsoleHandler(cfg ConsoleConfig) *ConsoleHandler {
	applyConsoleDefaults(&cfg)

	h := &ConsoleHandler{
		writer:    cfg.Writer,
		formatter: cfg.Formatter,
		stats:     handler.NewStats(),
	}

	// Cache BufferFormatter for the handler-owned buffer path
	h.bufferFormatter, _ = cfg.Formatter.(formatter.BufferFormatter)
	if h.bufferFormatter != nil {
		h.syncBuf.Grow(256)
	}
	h.writerFormatter, _ = cfg.Formatter.(formatter.WriterFormatter)

	return h
}

// Handle formats and writes a log entry.
func (h *ConsoleHandler) Handle(entry *core.Entry) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.writeLocked(entry)
}

// HandleLog processes log data directly without requiring a pooled Entry.
func (h *ConsoleHandler) HandleLog(t time.Time, level core.Level, msg string, caller core.CallerInfo) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.syncEntry.Time = t
	h.syncEntry.Level = level
	h.syncEntry.Message = msg
	h.syncEntry.Caller = caller
	err := h.writeLocked(&h.syncEntry)
	// Don't hold on to the last message
	h.syncEntry.Message = ""
	return err
}

func (h *ConsoleHandler) writeLocked(entry *core.Entry) error {
	if h.closed {
		return handler.ErrClosed
	}

	var err error
	if h.bufferFormatter != nil {
		h.syncBuf.Reset()
		h.bufferFormatter.FormatEntry(entry, &h.syncBuf)
		_, err = h.writer.Write(h.syncBuf.Bytes())
	} else if h.writerFormatter != nil {
		err = h.writerFormatter.FormatTo(entry, h.writer)
	} else {
		var data []byte
		data, err = h.formatter.Format(entry)
		if err == nil {
			_, err = h.writer.Write(data)
		}
	}

	h.stats.Record(err)
	return err
}

// Stats returns a snapshot of the current statistics
func (h *ConsoleHandler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

// Close marks the handler closed. The underlying writer is not closed;
// it usually is os.Stdout or owned by the caller.
func (h *ConsoleHandler) Close() error {
	h.mu.Lock()
	h.closed = true
	h.mu.Unlock()
	return nil
}
