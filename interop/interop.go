// Package interop pulls string values out of other wire formats so they
// can be written as J8 literals.
package interop

import (
	"bytes"
	"fmt"
	"io"

	"git.lukeshu.com/go/lowmemjson"
	"github.com/fxamacker/cbor/v2"
	"github.com/tinylib/msgp/msgp"

	j8 "github.com/synadia-labs/j8.go/runtime"
)

// Item is one string value taken from a foreign encoding.
type Item struct {
	Data []byte
	// Binary marks a byte string; it is always written as b'...'.
	Binary bool
}

// Append appends the J8 literal for it to dst. Text goes through the
// fallback policy of j8.AppendString.
func (it Item) Append(dst []byte, fallback bool) []byte {
	if it.Binary {
		return j8.AppendLiteral(dst, it.Data, j8.RawBytes)
	}
	return j8.AppendString(dst, it.Data, fallback)
}

// WriteLiteral writes the literal for it through w.
func (it Item) WriteLiteral(w *j8.Writer) error {
	if it.Binary {
		return w.WriteLiteralAs(it.Data, j8.RawBytes)
	}
	return w.WriteLiteral(it.Data)
}

// Text strings may carry invalid UTF-8 on the wire; keep them as-is so
// the encoder can fall back to a byte string rather than fail.
var cborDecMode = func() cbor.DecMode {
	dm, err := cbor.DecOptions{UTF8: cbor.UTF8DecodeInvalid}.DecMode()
	if err != nil {
		panic(err)
	}
	return dm
}()

// NextCBOR decodes the CBOR data item at the start of b, which must be a
// text or byte string, and returns it with the remaining bytes.
func NextCBOR(b []byte) (Item, []byte, error) {
	var v any
	rest, err := cborDecMode.UnmarshalFirst(b, &v)
	if err != nil {
		return Item{}, b, err
	}
	switch v := v.(type) {
	case string:
		return Item{Data: []byte(v)}, rest, nil
	case []byte:
		return Item{Data: v, Binary: true}, rest, nil
	default:
		return Item{}, b, j8.WrapError(j8.ErrUnsupportedType, fmt.Sprintf("cbor %T", v))
	}
}

// NextMsgpack decodes the MessagePack str or bin object at the start of
// b and returns it with the remaining bytes. The returned data aliases b.
func NextMsgpack(b []byte) (Item, []byte, error) {
	if len(b) == 0 {
		return Item{}, b, msgp.ErrShortBytes
	}
	switch t := msgp.NextType(b); t {
	case msgp.StrType:
		s, rest, err := msgp.ReadStringZC(b)
		if err != nil {
			return Item{}, b, err
		}
		return Item{Data: s}, rest, nil
	case msgp.BinType:
		bs, rest, err := msgp.ReadBytesZC(b)
		if err != nil {
			return Item{}, b, err
		}
		return Item{Data: bs, Binary: true}, rest, nil
	default:
		return Item{}, b, j8.WrapError(j8.ErrUnsupportedType, "msgpack "+t.String())
	}
}

// AppendCBOR converts the next CBOR string item in b to a J8 literal
// appended to dst.
func AppendCBOR(dst, b []byte, fallback bool) ([]byte, []byte, error) {
	it, rest, err := NextCBOR(b)
	if err != nil {
		return dst, b, err
	}
	return it.Append(dst, fallback), rest, nil
}

// AppendMsgpack converts the next MessagePack string item in b to a J8
// literal appended to dst.
func AppendMsgpack(dst, b []byte, fallback bool) ([]byte, []byte, error) {
	it, rest, err := NextMsgpack(b)
	if err != nil {
		return dst, b, err
	}
	return it.Append(dst, fallback), rest, nil
}

// DecodeJSONString reads one JSON string token from r and returns its
// value as UTF-8 bytes.
func DecodeJSONString(r io.RuneScanner) ([]byte, error) {
	var out bytes.Buffer
	if err := lowmemjson.DecodeString(r, &out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
