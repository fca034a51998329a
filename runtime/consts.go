package j8

const (
	quoteDouble = '"'
	quoteSingle = '\''
	backslash   = '\\'

	// bytesPrefix introduces a RawBytes literal: b'...'.
	bytesPrefix = 'b'

	hexDigits = "0123456789abcdef"

	// replacementEscape stands in for an invalid byte in a StrictText
	// literal written without fallback.
	replacementEscape = `\u` + "fffd"
)

// shortEscapes maps a byte to the letter of its mnemonic escape, or 0.
// Both dialects share it.
var shortEscapes = [byteValueCount]byte{
	'\b':        'b',
	'\f':        'f',
	'\n':        'n',
	'\r':        'r',
	'\t':        't',
	quoteDouble: quoteDouble,
	backslash:   backslash,
}

const byteValueCount = 256
