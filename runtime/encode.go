// Package j8 validates UTF-8 over byte ranges and encodes arbitrary
// byte strings as J8 string literals.
//
// J8 notation extends JSON strings so that any byte sequence survives a
// round trip. Well-formed UTF-8 is written as an ordinary JSON string,
// "...". Input that is not well-formed UTF-8 can instead be written as
// a byte string, b'...', where any byte may appear as a \yXX escape.
package j8

// Dialect selects the literal form used for a string.
type Dialect uint8

const (
	// StrictText is a double-quoted JSON-compatible string literal.
	StrictText Dialect = iota
	// RawBytes is a J8 byte string literal, b'...'.
	RawBytes
)

// String implements fmt.Stringer.
func (d Dialect) String() string {
	switch d {
	case StrictText:
		return "text"
	case RawBytes:
		return "bytes"
	default:
		return "<invalid dialect>"
	}
}

// DialectFor returns the dialect AppendString picks for src.
func DialectFor(src []byte, fallback bool) Dialect {
	if fallback && !isUTF8Valid(src) {
		return RawBytes
	}
	return StrictText
}

// AppendString appends the J8 literal for src to dst and returns the
// extended buffer.
//
// Without fallback the result is always a "..." literal and every byte
// of an invalid UTF-8 sequence becomes an escaped U+FFFD, so the
// original bytes cannot be recovered. With fallback, input that is not
// well-formed UTF-8 is written as a b'...' literal instead, which
// preserves every byte. Well-formed input gives "..." either way.
func AppendString[T ~[]byte | ~string](dst []byte, src T, fallback bool) []byte {
	start := len(dst)
	out, ok := appendText(dst, src, !fallback)
	if ok {
		return out
	}
	return appendBytes(out[:start], src)
}

// AppendLiteral appends src to dst as a literal of dialect d,
// regardless of whether src is well-formed UTF-8.
func AppendLiteral[T ~[]byte | ~string](dst []byte, src T, d Dialect) []byte {
	if d == RawBytes {
		return appendBytes(dst, src)
	}
	out, _ := appendText(dst, src, true)
	return out
}

// EncodeString returns the J8 literal for src in a newly allocated
// buffer owned by the caller. See AppendString.
func EncodeString[T ~[]byte | ~string](src T, fallback bool) []byte {
	bb := GetMinSize(len(src) + LiteralOverhead)
	defer PutByteBuffer(bb)
	bb.b = AppendString(bb.b, src, fallback)
	out := make([]byte, bb.Len())
	copy(out, bb.Bytes())
	return out
}

// Quote is EncodeString with fallback, returned as a string.
func Quote[T ~[]byte | ~string](src T) string {
	return UnsafeString(AppendString(nil, src, true))
}

// appendText writes a "..." literal. Printable ASCII and well-formed
// multi-byte sequences are copied through in runs. If lossy is false,
// it stops at the first invalid byte and reports false; the partial
// output is left in the returned buffer.
func appendText[T ~[]byte | ~string](dst []byte, src T, lossy bool) ([]byte, bool) {
	dst = append(dst, quoteDouble)
	lit := 0
	for i := 0; i < len(src); {
		c := src[i]
		switch {
		case c >= 0x80:
			if n := scanRune(src[i:]); n > 0 {
				i += n
				continue
			}
			if !lossy {
				return dst, false
			}
			dst = append(dst, src[lit:i]...)
			dst = append(dst, replacementEscape...)
		case c < 0x20 || shortEscapes[c] != 0:
			dst = append(dst, src[lit:i]...)
			if e := shortEscapes[c]; e != 0 {
				dst = append(dst, backslash, e)
			} else {
				dst = append(dst, backslash, 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0xf])
			}
		default:
			i++
			continue
		}
		i++
		lit = i
	}
	dst = append(dst, src[lit:]...)
	return append(dst, quoteDouble), true
}

// appendBytes writes a b'...' literal. Only printable ASCII is copied
// through; every other byte is escaped on its own, so no decoding of
// the input is assumed.
func appendBytes[T ~[]byte | ~string](dst []byte, src T) []byte {
	dst = append(dst, bytesPrefix, quoteSingle)
	lit := 0
	for i := 0; i < len(src); i++ {
		c := src[i]
		if c >= 0x20 && c < 0x7f && c != quoteSingle && shortEscapes[c] == 0 {
			continue
		}
		dst = append(dst, src[lit:i]...)
		switch e := shortEscapes[c]; {
		case c == quoteSingle:
			dst = append(dst, backslash, quoteSingle)
		case e != 0:
			dst = append(dst, backslash, e)
		default:
			dst = append(dst, backslash, 'y', hexDigits[c>>4], hexDigits[c&0xf])
		}
		lit = i + 1
	}
	dst = append(dst, src[lit:]...)
	return append(dst, quoteSingle)
}
