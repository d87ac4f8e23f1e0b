package logwriter

import (
	"bytes"
	"fmt"
	"strings"
)

// Printer wraps a Writer and flushes it at line boundaries, so each
// printed line becomes its own record.
type Printer struct {
	w *Writer
}

// NewPrinter creates a Printer over w.
func NewPrinter(w *Writer) *Printer {
	return &Printer{w: w}
}

// Write buffers p and flushes if p contains a newline.
func (p *Printer) Write(b []byte) (int, error) {
	n, err := p.w.Write(b)
	if err != nil {
		return n, err
	}
	if bytes.IndexByte(b, '\n') >= 0 {
		return n, p.w.Flush()
	}
	return n, nil
}

// Print formats a with fmt.Sprint and writes it, flushing on newline.
func (p *Printer) Print(a ...any) error {
	return p.printString(fmt.Sprint(a...))
}

// Printf formats with fmt.Sprintf and writes it, flushing on newline.
func (p *Printer) Printf(format string, a ...any) error {
	return p.printString(fmt.Sprintf(format, a...))
}

// Println prints the operands like Print, then writes the Writer's line
// separator and flushes. Text without a newline is logged with the
// trailing separator. Text containing a newline is flushed on its own
// first, leaving only the separator, which Flush drops. Println() with no
// operands is dropped the same way.
func (p *Printer) Println(a ...any) error {
	text := strings.TrimSuffix(fmt.Sprintln(a...), "\n")
	if err := p.printString(text); err != nil {
		return err
	}
	if _, err := p.w.WriteString(p.w.lineSep); err != nil {
		return err
	}
	return p.w.Flush()
}

func (p *Printer) printString(s string) error {
	if _, err := p.w.WriteString(s); err != nil {
		return err
	}
	if strings.IndexByte(s, '\n') >= 0 {
		return p.w.Flush()
	}
	return nil
}

// Flush flushes the underlying Writer.
func (p *Printer) Flush() error {
	return p.w.Flush()
}

// Close closes the underlying Writer.
func (p *Printer) Close() error {
	return p.w.Close()
}
