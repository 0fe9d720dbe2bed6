// Package csvexport writes the transaction list in the semicolon separated
// format accounting imports. Fields are never quoted; separators and line
// breaks inside a field are replaced instead.
package csvexport

import (
	"bufio"
	"io"
	"strings"
)

const (
	Delimiter = ";"
	LineEnd   = "\r\n"
)

var fieldEscaper = strings.NewReplacer(
	";", ",",
	"\r\n", " ",
	"\n", " ",
	"\r", " ",
)

// Escape makes a value safe to embed as one field.
func Escape(v string) string {
	return fieldEscaper.Replace(v)
}

type Writer struct {
	w   *bufio.Writer
	err error
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// Write emits one record. Errors stick and are reported by Flush.
func (w *Writer) Write(fields ...string) {
	if w.err != nil {
		return
	}
	for i, f := range fields {
		if i > 0 {
			if _, w.err = w.w.WriteString(Delimiter); w.err != nil {
				return
			}
		}
		if _, w.err = w.w.WriteString(Escape(f)); w.err != nil {
			return
		}
	}
	_, w.err = w.w.WriteString(LineEnd)
}

func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	return w.w.Flush()
}
