// Package handler provides the Handler interface that receives log
// entries, along with helpers shared by its implementations.
//
// Handlers are synchronous: Handle returns only after the entry has been
// written, and any write error is returned to the caller. A
// logwriter.Writer relies on this to report delivery failures from Flush.
//
// MultiHandler fans a single entry out to several handlers and combines
// their errors with go.uber.org/multierr. Stats tracks processed and
// failed writes and can be queried at runtime for monitoring.
//
// The console implementation lives in handler/consolehandler.
package handler
