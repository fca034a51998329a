package main

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode"

	"github.com/datawire/dlib/dlog"

	"github.com/synadia-labs/j8.go/interop"
	j8 "github.com/synadia-labs/j8.go/runtime"
)

// EncodeCmd writes J8 literals for the strings found in its input.
type EncodeCmd struct {
	File     string `arg:"" optional:"" help:"Input file; stdin if omitted or '-'"`
	From     string `help:"How the input is framed (${enum})" enum:"raw,lines,cbor,msgpack,json" default:"raw"`
	Fallback bool   `help:"Write input that is not well-formed UTF-8 as a b'...' byte string" default:"true" negatable:"" env:"J8ENC_FALLBACK"`
	Dialect  string `help:"Force one literal dialect (${enum})" enum:"auto,text,bytes" default:"auto"`
}

// ValidateCmd checks a byte range of its input for UTF-8 well-formedness.
type ValidateCmd struct {
	File   string `arg:"" optional:"" help:"Input file; stdin if omitted or '-'"`
	Start  int    `help:"Start offset" default:"0"`
	End    int    `help:"End offset, exclusive; -1 means end of input" default:"-1"`
	Strict bool   `help:"Fail if the range is not well-formed"`
}

func readInput(env *runEnv, name string) (*j8.ByteBuffer, error) {
	r := env.in
	if name != "" && name != "-" {
		fh, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer fh.Close()
		r = fh
	}
	bb := j8.GetByteBuffer()
	if _, err := bb.ReadFrom(r); err != nil {
		j8.PutByteBuffer(bb)
		return nil, fmt.Errorf("read %s: %w", inputName(name), err)
	}
	return bb, nil
}

func inputName(name string) string {
	if name == "" || name == "-" {
		return "stdin"
	}
	return name
}

func (c *EncodeCmd) writerOptions() j8.WriterOptions {
	opts := j8.WriterOptions{Fallback: c.Fallback, Separator: "\n"}
	switch c.Dialect {
	case "text":
		d := j8.StrictText
		opts.Dialect = &d
	case "bytes":
		d := j8.RawBytes
		opts.Dialect = &d
	}
	return opts
}

// Run implements the encode command.
func (c *EncodeCmd) Run(env *runEnv) error {
	ctx := dlog.WithField(env.ctx, "input", inputName(c.File))
	bb, err := readInput(env, c.File)
	if err != nil {
		return err
	}
	defer j8.PutByteBuffer(bb)
	data := bb.Bytes()

	out := bufio.NewWriter(env.out)
	w := j8.NewWriter(out, c.writerOptions())
	if err := c.encode(env, w, data); err != nil {
		return err
	}
	if err := out.Flush(); err != nil {
		return err
	}
	dlog.Debugf(ctx, "wrote %d literals (%d byte strings by fallback) from %d bytes of %s input",
		w.Count(), w.Fallbacks(), len(data), c.From)
	return nil
}

func (c *EncodeCmd) encode(env *runEnv, w *j8.Writer, data []byte) error {
	switch c.From {
	case "lines":
		for len(data) > 0 {
			if err := env.ctx.Err(); err != nil {
				return err
			}
			line := data
			if i := bytes.IndexByte(data, '\n'); i >= 0 {
				line, data = data[:i], data[i+1:]
			} else {
				data = nil
			}
			if err := w.WriteLiteral(line); err != nil {
				return err
			}
		}
		return nil
	case "cbor", "msgpack":
		next := interop.NextCBOR
		if c.From == "msgpack" {
			next = interop.NextMsgpack
		}
		for len(data) > 0 {
			if err := env.ctx.Err(); err != nil {
				return err
			}
			it, rest, err := next(data)
			if err != nil {
				return j8.WrapError(err, fmt.Sprintf("%s item %d", c.From, w.Count()))
			}
			if err := it.WriteLiteral(w); err != nil {
				return err
			}
			data = rest
		}
		return nil
	case "json":
		rs := bufio.NewReader(bytes.NewReader(data))
		for {
			if err := env.ctx.Err(); err != nil {
				return err
			}
			if err := skipSpace(rs); err != nil {
				if errors.Is(err, io.EOF) {
					return nil
				}
				return err
			}
			s, err := interop.DecodeJSONString(rs)
			if err != nil {
				return j8.WrapError(err, fmt.Sprintf("json item %d", w.Count()))
			}
			if err := w.WriteLiteral(s); err != nil {
				return err
			}
		}
	default:
		return w.WriteLiteral(data)
	}
}

func skipSpace(rs io.RuneScanner) error {
	for {
		r, _, err := rs.ReadRune()
		if err != nil {
			return err
		}
		if !unicode.IsSpace(r) {
			return rs.UnreadRune()
		}
	}
}

// Run implements the validate command.
func (c *ValidateCmd) Run(env *runEnv) error {
	bb, err := readInput(env, c.File)
	if err != nil {
		return err
	}
	defer j8.PutByteBuffer(bb)
	data := bb.Bytes()

	end := c.End
	if end < 0 {
		end = len(data)
	}
	ok, err := j8.PartIsUTF8Checked(data, c.Start, end)
	if err != nil {
		return j8.WrapError(err, inputName(c.File))
	}
	dlog.Debugf(env.ctx, "%s[%d:%d]: valid=%v", inputName(c.File), c.Start, end, ok)
	if _, err := fmt.Fprintln(env.out, ok); err != nil {
		return err
	}
	if c.Strict && !ok {
		return j8.WrapError(j8.ErrInvalidUTF8, fmt.Sprintf("%s[%d:%d]", inputName(c.File), c.Start, end))
	}
	return nil
}
