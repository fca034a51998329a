package j8

import (
	"io"
	"strconv"
)

// WriterOptions configures a Writer.
type WriterOptions struct {
	// Fallback lets input that is not well-formed UTF-8 be written as a
	// b'...' literal. See AppendString.
	Fallback bool

	// Dialect, if non-nil, forces every literal into one dialect and
	// Fallback is ignored.
	Dialect *Dialect

	// Separator is written after each literal.
	Separator string
}

// Writer writes one complete J8 literal per call to an underlying
// io.Writer. It is not safe for concurrent use.
type Writer struct {
	w       io.Writer
	opts    WriterOptions
	scratch []byte

	count     int
	fallbacks int
}

// NewWriter constructs a Writer that writes literals to w.
func NewWriter(w io.Writer, opts WriterOptions) *Writer {
	return &Writer{w: w, opts: opts}
}

// WriteLiteral encodes s and writes it, followed by the separator.
func (w *Writer) WriteLiteral(s []byte) error {
	if w.opts.Dialect != nil {
		w.scratch = AppendLiteral(w.scratch[:0], s, *w.opts.Dialect)
	} else {
		w.scratch = AppendString(w.scratch[:0], s, w.opts.Fallback)
		if w.scratch[0] == bytesPrefix {
			w.fallbacks++
		}
	}
	return w.flush()
}

func (w *Writer) flush() error {
	w.scratch = append(w.scratch, w.opts.Separator...)
	if _, err := w.w.Write(w.scratch); err != nil {
		return WrapError(err, "literal "+strconv.Itoa(w.count))
	}
	w.count++
	return nil
}

// WriteLiteralAs writes s as a literal of dialect d, ignoring the
// configured fallback and dialect.
func (w *Writer) WriteLiteralAs(s []byte, d Dialect) error {
	w.scratch = AppendLiteral(w.scratch[:0], s, d)
	return w.flush()
}

// WriteStringLiteral is WriteLiteral for a string.
func (w *Writer) WriteStringLiteral(s string) error {
	return w.WriteLiteral([]byte(s))
}

// Count returns the number of literals written.
func (w *Writer) Count() int { return w.count }

// Fallbacks returns how many literals were switched to b'...' because
// their input was not well-formed UTF-8.
func (w *Writer) Fallbacks() int { return w.fallbacks }
