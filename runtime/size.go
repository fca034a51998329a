package j8

// Worst-case encoded sizes. A literal costs its delimiters plus, per
// input byte, at most the longest escape either dialect can emit.
const (
	// StrictEscapeSize is the length of a \u00XX escape.
	StrictEscapeSize = 6
	// BytesEscapeSize is the length of \yXX.
	BytesEscapeSize = 4
	// MaxEscapeSize is the longest escape emitted for one input byte.
	MaxEscapeSize = StrictEscapeSize
	// LiteralOverhead covers the b prefix and both quotes.
	LiteralOverhead = 3
)

// EncodedLenMax returns an upper bound on the size of a literal
// encoding n input bytes in either dialect.
func EncodedLenMax(n int) int { return LiteralOverhead + n*MaxEscapeSize }
