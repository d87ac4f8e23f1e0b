package logwriter

import "sync"

// SyncWriter serializes every call to a Writer with a mutex.
type SyncWriter struct {
	mu sync.Mutex
	w  *Writer
}

// Synchronized wraps w for use from several goroutines. Records from
// different goroutines are not separated: whatever is buffered when Flush
// runs is logged together.
func Synchronized(w *Writer) *SyncWriter {
	return &SyncWriter{w: w}
}

// Write buffers p under the lock.
func (s *SyncWriter) Write(p []byte) (n int, err error) {
	s.mu.Lock()
	n, err = s.w.Write(p)
	s.mu.Unlock()
	return
}

// WriteString buffers str under the lock.
func (s *SyncWriter) WriteString(str string) (n int, err error) {
	s.mu.Lock()
	n, err = s.w.WriteString(str)
	s.mu.Unlock()
	return
}

// WriteByte buffers c under the lock.
func (s *SyncWriter) WriteByte(c byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.WriteByte(c)
}

// WriteLine writes line and flushes in one critical section, so the
// line is logged as its own record even under contention.
func (s *SyncWriter) WriteLine(line []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.w.Write(line); err != nil {
		return err
	}
	return s.w.Flush()
}

// Flush logs the buffered bytes under the lock.
func (s *SyncWriter) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Flush()
}

// Close flushes and closes the Writer under the lock.
func (s *SyncWriter) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Close()
}
