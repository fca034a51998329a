package j8

import (
	"errors"
	"io"
	"slices"

	"git.lukeshu.com/go/typedsync"
)

// readChunk is the minimum free space ReadFrom keeps before each read.
const readChunk = 32 << 10

// ByteBuffer is a reusable output buffer for literals. Obtain one with
// GetByteBuffer and hand it back with PutByteBuffer; slices returned by
// Bytes are invalid after that.
type ByteBuffer struct {
	b []byte
}

var bbPool typedsync.Pool[*ByteBuffer]

// GetByteBuffer takes an empty ByteBuffer from the pool.
func GetByteBuffer() *ByteBuffer {
	bb, ok := bbPool.Get()
	if !ok {
		return &ByteBuffer{b: make([]byte, 0, 1024)}
	}
	bb.Reset()
	return bb
}

// GetMinSize is GetByteBuffer with room for at least size bytes.
func GetMinSize(size int) *ByteBuffer {
	bb := GetByteBuffer()
	bb.Ensure(size)
	return bb
}

// PutByteBuffer returns bb to the pool.
func PutByteBuffer(bb *ByteBuffer) {
	bb.Reset()
	bbPool.Put(bb)
}

func (bb *ByteBuffer) Bytes() []byte { return bb.b }

func (bb *ByteBuffer) Len() int { return len(bb.b) }

// Reset empties the buffer and keeps its capacity.
func (bb *ByteBuffer) Reset() { bb.b = bb.b[:0] }

// Ensure grows the buffer so n more bytes fit without reallocating.
func (bb *ByteBuffer) Ensure(n int) {
	if n > 0 {
		bb.b = slices.Grow(bb.b, n)
	}
}

// Write implements io.Writer, so a ByteBuffer can back a Writer.
func (bb *ByteBuffer) Write(p []byte) (int, error) {
	bb.b = append(bb.b, p...)
	return len(p), nil
}

// WriteString implements io.StringWriter.
func (bb *ByteBuffer) WriteString(s string) (int, error) {
	bb.b = append(bb.b, s...)
	return len(s), nil
}

// ReadFrom implements io.ReaderFrom. It reads r to EOF.
func (bb *ByteBuffer) ReadFrom(r io.Reader) (int64, error) {
	var total int64
	for {
		bb.Ensure(readChunk)
		n, err := r.Read(bb.b[len(bb.b):cap(bb.b)])
		bb.b = bb.b[:len(bb.b)+n]
		total += int64(n)
		switch {
		case errors.Is(err, io.EOF):
			return total, nil
		case err != nil:
			return total, err
		}
	}
}

// AppendString appends the J8 literal for s. See AppendString.
func (bb *ByteBuffer) AppendString(s []byte, fallback bool) *ByteBuffer {
	bb.b = AppendString(bb.b, s, fallback)
	return bb
}

// AppendLiteral appends s as a literal of dialect d.
func (bb *ByteBuffer) AppendLiteral(s []byte, d Dialect) *ByteBuffer {
	bb.b = AppendLiteral(bb.b, s, d)
	return bb
}
