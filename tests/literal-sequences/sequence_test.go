package tests

import (
	"bytes"
	"strings"
	"testing"

	fxcbor "github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	msgp "github.com/tinylib/msgp/msgp"

	"github.com/synadia-labs/j8.go/interop"
	j8 "github.com/synadia-labs/j8.go/runtime"
)

func drain(t *testing.T, in []byte, next func([]byte) (interop.Item, []byte, error), opts j8.WriterOptions) (string, *j8.Writer) {
	t.Helper()
	var out bytes.Buffer
	w := j8.NewWriter(&out, opts)
	for len(in) > 0 {
		it, rest, err := next(in)
		require.NoError(t, err)
		require.NoError(t, it.WriteLiteral(w))
		in = rest
	}
	return out.String(), w
}

func TestSequence_CBOR(t *testing.T) {
	var in []byte
	for _, v := range []any{"alpha", []byte{0x00, 0xff}, "tab\there", "\xce\xbc"} {
		b, err := fxcbor.Marshal(v)
		require.NoError(t, err)
		in = append(in, b...)
	}
	// Text string "x\xff" with invalid UTF-8 on the wire.
	in = append(in, 0x62, 'x', 0xff)

	got, w := drain(t, in, interop.NextCBOR, j8.WriterOptions{Fallback: true, Separator: "\n"})
	want := strings.Join([]string{
		`"alpha"`,
		`b'\y00\yff'`,
		`"tab\there"`,
		"\"\xce\xbc\"",
		`b'x\yff'`,
	}, "\n") + "\n"
	assert.Equal(t, want, got)
	assert.Equal(t, 5, w.Count())
	// The byte string item is binary on the wire, not a fallback.
	assert.Equal(t, 1, w.Fallbacks())
}

func TestSequence_Msgpack(t *testing.T) {
	var in []byte
	in = msgp.AppendString(in, "one")
	in = msgp.AppendBytes(in, []byte("two"))
	in = msgp.AppendStringFromBytes(in, []byte("th\xffree"))

	got, w := drain(t, in, interop.NextMsgpack, j8.WriterOptions{Fallback: true, Separator: " "})
	assert.Equal(t, `"one" b'two' b'th\yffree' `, got)
	assert.Equal(t, 3, w.Count())
	assert.Equal(t, 1, w.Fallbacks())
}

func TestSequence_NoFallbackIsAllText(t *testing.T) {
	var in []byte
	in = msgp.AppendStringFromBytes(in, []byte("a\xffb"))
	in = msgp.AppendString(in, "c")

	got, w := drain(t, in, interop.NextMsgpack, j8.WriterOptions{Separator: ","})
	assert.Equal(t, `"a\u`+"fffd"+`b","c",`, got)
	assert.Zero(t, w.Fallbacks())
}

func TestSequence_ForcedDialect(t *testing.T) {
	in := msgp.AppendString(nil, "hi")
	in = msgp.AppendString(in, "it's")
	d := j8.RawBytes
	got, _ := drain(t, in, interop.NextMsgpack, j8.WriterOptions{Dialect: &d, Separator: ";"})
	assert.Equal(t, `b'hi';b'it\'s';`, got)
}

// Items decoded from a sequence and re-encoded through AppendCBOR give
// the same literals as the Writer path.
func TestSequence_AppendMatchesWriter(t *testing.T) {
	var in []byte
	for _, v := range []any{"x", []byte("y"), "z\x01"} {
		b, err := fxcbor.Marshal(v)
		require.NoError(t, err)
		in = append(in, b...)
	}
	viaWriter, _ := drain(t, in, interop.NextCBOR, j8.WriterOptions{Fallback: true})

	var viaAppend []byte
	for rest := in; len(rest) > 0; {
		var err error
		viaAppend, rest, err = interop.AppendCBOR(viaAppend, rest, true)
		require.NoError(t, err)
	}
	assert.Equal(t, viaWriter, string(viaAppend))
}
