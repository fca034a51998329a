package j8_test

import (
	"bytes"
	"testing"

	j8 "github.com/synadia-labs/j8.go/runtime"
)

// replacement is the escape written for each invalid byte in a "..."
// literal encoded without fallback.
const replacement = `\u` + "fffd"

func TestAppendString(t *testing.T) {
	cases := []struct {
		name     string
		in       string
		fallback bool
		want     string
	}{
		{name: "empty", in: "", want: `""`},
		{name: "empty_fallback", in: "", fallback: true, want: `""`},
		{name: "hello", in: "hello", want: `"hello"`},
		{name: "hello_fallback", in: "hello", fallback: true, want: `"hello"`},
		{name: "quote_backslash", in: `a"b\c`, want: `"a\"b\\c"`},
		{name: "quote_backslash_fallback", in: `a"b\c`, fallback: true, want: `"a\"b\\c"`},
		{name: "single_quote_text", in: `it's`, want: `"it's"`},
		{name: "mnemonics", in: "\b\f\n\r\t", want: `"\b\f\n\r\t"`},
		{name: "numeric_controls", in: "\x00\x01\x1b\x1f", want: `"\u0000\u0001\u001b\u001f"`},
		{name: "del_verbatim", in: "\x7f", want: "\"\x7f\""},
		{name: "utf8_verbatim", in: "μ 世 \U0001F600", want: "\"μ 世 \U0001F600\""},
		{name: "utf8_verbatim_fallback", in: "μ 世", fallback: true, want: "\"μ 世\""},
		{name: "lone_ff_fallback", in: "\xff", fallback: true, want: `b'\yff'`},
		{name: "lone_ff_strict", in: "\xff", want: `"` + replacement + `"`},
		{name: "truncated_strict", in: "a\xe4\xb8", want: `"a` + replacement + replacement + `"`},
		{name: "truncated_fallback", in: "a\xe4\xb8", fallback: true, want: `b'a\ye4\yb8'`},
		{name: "surrogate_fallback", in: "\xed\xa0\x80", fallback: true, want: `b'\yed\ya0\y80'`},
		{name: "overlong_strict", in: "\xc0\x80x", want: `"` + replacement + replacement + `x"`},
		{
			name:     "mixed_fallback",
			in:       "hello \xff \x01 μ \" '",
			fallback: true,
			want:     `b'hello \yff \y01 \yce\ybc \" \''`,
		},
		{
			name: "mixed_strict",
			in:   "hello \xff \x01 μ \" '",
			want: `"hello ` + replacement + ` \u0001 μ \" '"`,
		},
		{name: "bytes_mnemonics", in: "\xff\n\t\\", fallback: true, want: `b'\yff\n\t\\'`},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			got := string(j8.AppendString(nil, c.in, c.fallback))
			if got != c.want {
				t.Fatalf("AppendString(%q, %v) = %s, want %s", c.in, c.fallback, got, c.want)
			}
			if got := string(j8.AppendString(nil, []byte(c.in), c.fallback)); got != c.want {
				t.Fatalf("AppendString([]byte(%q), %v) = %s, want %s", c.in, c.fallback, got, c.want)
			}
			if got := string(j8.EncodeString(c.in, c.fallback)); got != c.want {
				t.Fatalf("EncodeString(%q, %v) = %s, want %s", c.in, c.fallback, got, c.want)
			}
		})
	}
}

func TestAppendStringKeepsPrefix(t *testing.T) {
	dst := []byte("x = ")
	got := j8.AppendString(dst, "ok\xff", true)
	if want := `x = b'ok\yff'`; string(got) != want {
		t.Fatalf("got %s, want %s", got, want)
	}

	// Enough capacity that the rewind happens in place.
	dst = make([]byte, 0, 64)
	dst = append(dst, "y: "...)
	got = j8.AppendString(dst, "abc\xffdef", true)
	if want := `y: b'abc\yffdef'`; string(got) != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestAppendLiteral(t *testing.T) {
	cases := []struct {
		in   string
		d    j8.Dialect
		want string
	}{
		{in: "hello", d: j8.RawBytes, want: `b'hello'`},
		{in: "μ", d: j8.RawBytes, want: `b'\yce\ybc'`},
		{in: `'"\`, d: j8.RawBytes, want: `b'\'\"\\'`},
		{in: "\x7f", d: j8.RawBytes, want: `b'\y7f'`},
		{in: "\xff", d: j8.StrictText, want: `"` + replacement + `"`},
		{in: "hello", d: j8.StrictText, want: `"hello"`},
	}
	for _, c := range cases {
		if got := string(j8.AppendLiteral(nil, c.in, c.d)); got != c.want {
			t.Fatalf("AppendLiteral(%q, %v) = %s, want %s", c.in, c.d, got, c.want)
		}
	}
}

func TestDialectFor(t *testing.T) {
	if got := j8.DialectFor([]byte("ok"), true); got != j8.StrictText {
		t.Fatalf("valid input: got %v", got)
	}
	if got := j8.DialectFor([]byte{0xff}, true); got != j8.RawBytes {
		t.Fatalf("invalid input with fallback: got %v", got)
	}
	if got := j8.DialectFor([]byte{0xff}, false); got != j8.StrictText {
		t.Fatalf("invalid input without fallback: got %v", got)
	}
	if j8.StrictText.String() != "text" || j8.RawBytes.String() != "bytes" {
		t.Fatalf("unexpected dialect names %q %q", j8.StrictText, j8.RawBytes)
	}
}

func TestEncodeStringDeterministic(t *testing.T) {
	in := []byte("det \xfe\x00 μ \"x\"")
	for _, fallback := range []bool{false, true} {
		a := j8.EncodeString(in, fallback)
		b := j8.EncodeString(in, fallback)
		if !bytes.Equal(a, b) {
			t.Fatalf("fallback=%v: %s != %s", fallback, a, b)
		}
		if &a[0] == &b[0] {
			t.Fatalf("fallback=%v: outputs share a backing array", fallback)
		}
	}
}

func TestEncodeStringDoesNotMutateInput(t *testing.T) {
	in := []byte("a\xffb\n")
	orig := append([]byte(nil), in...)
	_ = j8.EncodeString(in, true)
	_ = j8.EncodeString(in, false)
	if !bytes.Equal(in, orig) {
		t.Fatalf("input modified: % x", in)
	}
}

func TestEncodedLenMax(t *testing.T) {
	worst := bytes.Repeat([]byte{0x01}, 100)
	for _, fallback := range []bool{false, true} {
		out := j8.EncodeString(worst, fallback)
		if len(out) > j8.EncodedLenMax(len(worst)) {
			t.Fatalf("fallback=%v: %d bytes exceeds bound %d", fallback, len(out), j8.EncodedLenMax(len(worst)))
		}
	}
	invalid := bytes.Repeat([]byte{0xff}, 100)
	out := j8.EncodeString(invalid, false)
	if len(out) > j8.EncodedLenMax(len(invalid)) {
		t.Fatalf("%d bytes exceeds bound %d", len(out), j8.EncodedLenMax(len(invalid)))
	}
}

func TestQuote(t *testing.T) {
	if got := j8.Quote("tab\there"); got != `"tab\there"` {
		t.Fatalf("got %s", got)
	}
	if got := j8.Quote([]byte{'x', 0xff}); got != `b'x\yff'` {
		t.Fatalf("got %s", got)
	}
}
