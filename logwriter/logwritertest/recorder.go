// Package logwritertest provides a recording Logger for tests of code
// that writes through a logwriter.Writer.
package logwritertest

import (
	"sync"

	"github.com/philipp01105/logstream/core"
)

// Call is one recorded Log invocation.
type Call struct {
	Level   core.Level
	Message string
}

// Recorder remembers every record it receives. Set Err to make Log fail.
// It is safe for concurrent use.
type Recorder struct {
	mu    sync.Mutex
	calls []Call
	Err   error
}

// Log records the call and returns r.Err.
func (r *Recorder) Log(level core.Level, msg string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, Call{Level: level, Message: msg})
	return r.Err
}

// Calls returns a copy of the recorded calls in order.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Call, len(r.calls))
	copy(out, r.calls)
	return out
}

// Len returns the number of recorded calls.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

// Messages returns the recorded messages in order.
func (r *Recorder) Messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.calls))
	for i, c := range r.calls {
		out[i] = c.Message
	}
	return out
}

// Reset forgets all recorded calls.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.calls = nil
	r.mu.Unlock()
}
