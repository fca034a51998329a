package j8

//go:generate go run ../utf8gen -o utf8_table.go

// isUTF8Valid validates UTF-8 for a byte slice. It can be overridden by
// architecture-specific, SIMD-accelerated implementations via build tags.
var isUTF8Valid = func(b []byte) bool { return PartIsUTF8(b, 0, len(b)) }

// decodeByte feeds one byte through the UTF-8 DFA. cp accumulates the
// scalar value and is only meaningful once state is utf8Accept again.
// Feeding more bytes after utf8Reject is pointless: the state is sticky.
func decodeByte(state *uint32, cp *uint32, b byte) {
	class := utf8Class[b]
	if *state == utf8Accept {
		*cp = uint32(b & utf8LeadMask[class])
	} else {
		*cp = *cp<<6 | uint32(b&0x3f)
	}
	*state = uint32(utf8Trans[*state][class])
}

// PartIsUTF8 reports whether b[start:end] is a sequence of complete,
// well-formed UTF-8 encodings. Overlong forms, surrogates and values
// above U+10FFFF are rejected, as is a range that ends inside a
// multi-byte sequence. An empty range is valid.
//
// The bounds are a precondition: 0 <= start <= end <= len(b). A call
// that violates it panics with a *RangeError. Use PartIsUTF8Checked
// when the bounds come from an untrusted caller.
func PartIsUTF8(b []byte, start, end int) bool {
	if err := checkRange(len(b), start, end); err != nil {
		panic(err)
	}
	var cp uint32
	state := uint32(utf8Accept)
	for _, c := range b[start:end] {
		decodeByte(&state, &cp, c)
		if state == utf8Reject {
			return false
		}
	}
	return state == utf8Accept
}

// PartIsUTF8Checked is like PartIsUTF8 but reports bad bounds as a
// *RangeError instead of panicking.
func PartIsUTF8Checked(b []byte, start, end int) (bool, error) {
	if err := checkRange(len(b), start, end); err != nil {
		return false, err
	}
	return PartIsUTF8(b, start, end), nil
}

// ValidUTF8 reports whether all of b is well-formed UTF-8.
func ValidUTF8(b []byte) bool { return PartIsUTF8(b, 0, len(b)) }

// scanRune returns the length of the well-formed UTF-8 sequence at the
// start of b, or 0 if b does not start with one.
func scanRune[T ~[]byte | ~string](b T) int {
	var cp uint32
	state := uint32(utf8Accept)
	for i := 0; i < len(b); i++ {
		decodeByte(&state, &cp, b[i])
		switch state {
		case utf8Accept:
			return i + 1
		case utf8Reject:
			return 0
		}
	}
	return 0
}

func checkRange(n, start, end int) error {
	if start < 0 || end > n || start > end {
		return &RangeError{Start: start, End: end, Len: n}
	}
	return nil
}
