// Package consolehandler provides a console handler that writes
// formatted log entries to any io.Writer (default: os.Stdout).
//
// ConsoleHandler is synchronous. Each entry is formatted into a
// handler-owned buffer and written with a single Write call under a
// mutex, so entries from concurrent loggers never interleave and a
// write error reaches the caller of Handle.
package consolehandler
