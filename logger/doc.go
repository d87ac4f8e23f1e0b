// Package logger is the built-in log backend of logstream.
//
// A Logger is immutable after construction: the level and the handler
// are set once via the Builder and never modified. This makes Logger
// safe for concurrent use without any locking on the read path.
//
// Logger implements logwriter.Logger, so it can sit behind a
// logwriter.Writer directly:
//
//	w, err := log.Writer(logger.WarnLevel)
//	if err != nil {
//	    return err
//	}
//	cmd.Stderr = logwriter.NewPrinter(w)
//
// Log returns the handler's error, which the Writer passes back from
// Flush. The level methods (Info, Errorf, ...) drop it.
//
// The package initializes a default Logger (sync console handler,
// InfoLevel, text format to stdout) in init(). The package-level
// functions delegate to it, so simple programs can log without setup.
//
// Level checks happen before any allocation, so filtered-out messages
// cost only a single integer comparison.
package logger
