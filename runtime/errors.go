package j8

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidUTF8 is returned when a caller requires well-formed UTF-8
	// and the input is not.
	ErrInvalidUTF8 error = errors.New("j8: invalid UTF-8")

	// ErrUnsupportedType is returned when a value cannot be rendered as a
	// J8 string literal.
	ErrUnsupportedType error = errors.New("j8: unsupported item type")
)

// contextError is an error that can carry a path naming where it
// happened, such as "record/field" or "literal 3".
type contextError interface {
	error
	// withContext returns a copy with ctx prepended to the path.
	withContext(ctx string) error
}

// Cause strips the context added by WrapError.
func Cause(e error) error {
	if w, ok := e.(errWrapped); ok && w.cause != nil {
		return w.cause
	}
	return e
}

// WrapError returns err with ctx prepended to its context path; the
// parts of ctx are joined with "/". err itself is left unchanged and
// stays reachable through Cause and errors.Is/As. A nil err gives nil.
func WrapError(err error, ctx ...any) error {
	switch e := err.(type) {
	case nil:
		return nil
	case contextError:
		return e.withContext(ctxString(ctx))
	default:
		return errWrapped{cause: err, ctx: ctxString(ctx)}
	}
}

func ctxString(ctx []any) string {
	parts := make([]string, len(ctx))
	for i, c := range ctx {
		parts[i] = fmt.Sprint(c)
	}
	return strings.Join(parts, "/")
}

func addCtx(ctx, add string) string {
	if ctx != "" {
		return add + "/" + ctx
	}
	return add
}

// errWrapped carries context for errors that have no slot of their own.
type errWrapped struct {
	cause error
	ctx   string
}

func (e errWrapped) Error() string {
	if e.ctx != "" {
		return e.cause.Error() + " at " + e.ctx
	}
	return e.cause.Error()
}

// Unwrap returns the cause.
func (e errWrapped) Unwrap() error { return e.cause }

func (e errWrapped) withContext(ctx string) error {
	e.ctx = addCtx(e.ctx, ctx)
	return e
}

// RangeError reports a [Start, End) range that does not fit a buffer of
// length Len, or that is reversed.
type RangeError struct {
	Start int
	End   int
	Len   int
	ctx   string
}

func (e *RangeError) Error() string {
	out := "j8: range [" + strconv.Itoa(e.Start) + ":" + strconv.Itoa(e.End) +
		"] out of bounds for length " + strconv.Itoa(e.Len)
	if e.ctx != "" {
		out += " at " + e.ctx
	}
	return out
}

func (e *RangeError) withContext(ctx string) error {
	o := *e
	o.ctx = addCtx(o.ctx, ctx)
	return &o
}
