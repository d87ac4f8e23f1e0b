// Package logwriter adapts byte-stream output into log records.
//
// A Writer accepts bytes through the usual io.Writer, io.ByteWriter and
// io.StringWriter methods and keeps them in memory. Nothing reaches the
// Logger until Flush or Close is called; at that point the buffered
// bytes become exactly one log record at the severity fixed when the
// Writer was created:
//
//	w, err := logwriter.New(logger.Default(), core.WarnLevel)
//	if err != nil {
//	    return err
//	}
//	fmt.Fprint(w, "disk almost full")
//	w.Flush() // one WARN record: "disk almost full"
//
// Two details differ from a plain buffer:
//
//   - NUL bytes are discarded on write. They are never buffered and never
//     appear in a record.
//   - A flush whose entire buffered content is the host line separator
//     ("\n", or "\r\n" on Windows) is dropped instead of logged. Line
//     oriented printers emit the separator on its own and flush after it,
//     which would otherwise produce blank records. Only an exact match is
//     dropped; "\n\n" or "text\n" are logged verbatim.
//
// The buffer starts at DefaultBufferLength bytes and grows in steps of
// the same size. It is never shrunk: a Writer that needed a large buffer
// once is assumed to need it again.
//
// Printer wraps a Writer with print-style helpers that flush at line
// boundaries, which is the usual way to point a subprocess's stdout or a
// library's debug output at a logger. Synchronized adds a mutex for
// callers that share one Writer between goroutines; Writer itself does no
// locking.
//
// The Logger interface has a single method, so any backend can sit
// behind a Writer. The sink package provides bindings for zap, zerolog,
// logrus, log/slog and the handler package.
package logwriter
