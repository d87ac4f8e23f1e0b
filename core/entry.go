package core

import (
	"sync"
	"time"
)

// Entry is one log record on its way from a Logger to a Handler.
type Entry struct {
	Time    time.Time
	Level   Level
	Message string
	Caller  CallerInfo
}

// Reset clears every field of e.
func (e *Entry) Reset() {
	*e = Entry{}
}

var entries = sync.Pool{
	New: func() any { return new(Entry) },
}

// GetEntry takes a cleared Entry from the pool, stamped with the current time.
func GetEntry() *Entry {
	e := entries.Get().(*Entry)
	e.Time = time.Now()
	return e
}

// PutEntry resets e and returns it to the pool. Resetting drops the
// message, so a large flushed buffer is not pinned by a pooled Entry.
func PutEntry(e *Entry) {
	if e == nil {
		return
	}
	e.Reset()
	entries.Put(e)
}
