// Package formatter defines how log entries are serialized into bytes.
//
// It exposes three interfaces: Formatter, which returns a []byte,
// WriterFormatter, which writes directly to an io.Writer, and
// BufferFormatter, which appends into a caller-owned bytes.Buffer.
// Handlers check for the richer interfaces at construction time and
// prefer them when available.
//
// Messages produced by a logwriter.Writer are whole flushed buffers and
// often span several lines or already end in a newline. TextFormatter
// writes them verbatim and only appends a newline when the message does
// not end with one; JSONFormatter escapes them into the "message" string.
//
// Buffers larger than 64 KiB are not returned to the pool to prevent a
// single large flush from permanently inflating memory usage.
package formatter
