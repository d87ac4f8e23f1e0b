// Package sink binds logwriter.Writer to concrete logging backends.
//
// Each type in this package implements logwriter.Logger by mapping
// core.Level onto the backend's own severity and emitting the flushed
// text as the record message. Records at Fatal and Panic are logged at
// the matching backend level but never terminate the process or panic;
// a Writer flush should not be able to take the program down.
//
// Backend write errors are returned where the backend exposes them
// (zap cores, slog handlers, handler.Handler). logrus and zerolog report
// write failures through their own error channels, so their Log methods
// only fail on an invalid level.
package sink
