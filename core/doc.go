// Package core defines the shared types used across logstream.
//
// It provides the Level type that tags every emitted record with a
// severity, and the Entry type that represents a single log record on
// its way from a Logger to a Handler.
//
// Entry objects are pooled via sync.Pool so that forwarding a flushed
// buffer to a handler does not allocate. Callers get an Entry with
// GetEntry and must return it with PutEntry once the handler has
// consumed it.
//
// Levels round-trip through their text form (ParseLevel, String,
// MarshalText), which is how configuration structs name them.
package core
