package logwriter

import (
	"fmt"
	"reflect"
	"runtime"

	"github.com/philipp01105/logstream/core"
)

// DefaultBufferLength is the initial buffer size and the growth step.
const DefaultBufferLength = 2048

// LineSeparator is the host line separator, read once at startup.
var LineSeparator = hostLineSeparator()

func hostLineSeparator() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}

// Config holds optional Writer settings
type Config struct {
	// BufferSize is the initial capacity and growth step (default: DefaultBufferLength)
	BufferSize int
	// LineSeparator is the content dropped on flush (default: LineSeparator)
	LineSeparator string
}

// applyDefaults fills in zero-value fields with defaults.
func applyDefaults(cfg *Config) {
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = DefaultBufferLength
	}
	if cfg.LineSeparator == "" {
		cfg.LineSeparator = LineSeparator
	}
}

// Writer buffers bytes and emits them as a single log record on Flush.
// It is not safe for concurrent use; see Synchronized.
type Writer struct {
	logger    Logger
	level     core.Level
	lineSep   string
	increment int

	// buf[:count] holds the pending bytes; len(buf) is the capacity.
	buf    []byte
	count  int
	closed bool
}

// New creates a Writer that flushes to l at the given level.
func New(l Logger, level core.Level) (*Writer, error) {
	return NewWithConfig(l, level, Config{})
}

// NewWithConfig creates a Writer with explicit buffer and separator settings.
// A nil Logger, including a typed nil such as (*logger.Logger)(nil), is
// rejected with ErrInvalidArgument.
func NewWithConfig(l Logger, level core.Level, cfg Config) (*Writer, error) {
	if isNil(l) {
		return nil, fmt.Errorf("logwriter: logger == nil: %w", ErrInvalidArgument)
	}
	if !level.Valid() {
		return nil, fmt.Errorf("logwriter: level %d: %w", int8(level), ErrInvalidArgument)
	}
	applyDefaults(&cfg)

	return &Writer{
		logger:    l,
		level:     level,
		lineSep:   cfg.LineSeparator,
		increment: cfg.BufferSize,
		buf:       make([]byte, cfg.BufferSize),
	}, nil
}

func isNil(l Logger) bool {
	if l == nil {
		return true
	}
	v := reflect.ValueOf(l)
	switch v.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Map, reflect.Slice, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// WriteByte buffers c. NUL bytes are dropped.
func (w *Writer) WriteByte(c byte) error {
	if w.closed {
		return ErrClosed
	}
	w.append(c)
	return nil
}

// Write buffers p byte by byte. NUL bytes are dropped but still counted as
// written, so n is len(p) unless the Writer is closed.
func (w *Writer) Write(p []byte) (n int, err error) {
	if w.closed {
		return 0, ErrClosed
	}
	for _, c := range p {
		w.append(c)
	}
	return len(p), nil
}

// WriteString is like Write but takes a string.
func (w *Writer) WriteString(s string) (n int, err error) {
	if w.closed {
		return 0, ErrClosed
	}
	for i := 0; i < len(s); i++ {
		w.append(s[i])
	}
	return len(s), nil
}

func (w *Writer) append(c byte) {
	if c == 0 {
		return
	}
	if w.count == len(w.buf) {
		w.grow()
	}
	w.buf[w.count] = c
	w.count++
}

// grow extends the buffer by one increment.
func (w *Writer) grow() {
	newBuf := make([]byte, len(w.buf)+w.increment)
	copy(newBuf, w.buf[:w.count])
	w.buf = newBuf
}

// Flush sends the buffered bytes to the logger as one record and empties
// the buffer. It does nothing when the buffer is empty or holds exactly
// the line separator.
func (w *Writer) Flush() error {
	if w.count == 0 {
		return nil
	}

	if w.isLineSeparator() {
		w.reset()
		return nil
	}

	msg := string(w.buf[:w.count])
	// Reset before logging so a logger that writes back into w starts clean.
	w.reset()
	return w.logger.Log(w.level, msg)
}

// isLineSeparator reports whether the buffer holds exactly the separator.
// Only one- and two-byte separators can match.
func (w *Writer) isLineSeparator() bool {
	if w.count != len(w.lineSep) {
		return false
	}
	return w.buf[0] == w.lineSep[0] &&
		(w.count == 1 || (w.count == 2 && w.buf[1] == w.lineSep[1]))
}

// reset empties the buffer but keeps its capacity.
func (w *Writer) reset() {
	w.count = 0
}

// Close flushes the buffer and rejects all later writes. Calling Close
// again is a no-op.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	err := w.Flush()
	w.closed = true
	return err
}

// Buffered returns the number of bytes waiting for the next flush.
func (w *Writer) Buffered() int {
	return w.count
}

// Cap returns the current buffer capacity.
func (w *Writer) Cap() int {
	return len(w.buf)
}

// Level returns the severity used for every record.
func (w *Writer) Level() core.Level {
	return w.level
}

// Closed reports whether Close has been called.
func (w *Writer) Closed() bool {
	return w.closed
}
