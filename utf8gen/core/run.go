package core

import (
	"bytes"
	"context"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"

	"github.com/datawire/dlib/dlog"
	"golang.org/x/tools/imports"

	tmplfs "github.com/synadia-labs/j8.go/utf8gen/templates"
)

// Options configures how generation runs.
type Options struct {
	// Package is the package clause of the generated file.
	Package string
	Verbose bool
}

var tableTemplate = template.Must(template.New("utf8_table.go.tpl").ParseFS(tmplfs.FS, "utf8_table.go.tpl"))

// Run builds the DFA tables and writes them as Go source to outputPath.
func Run(ctx context.Context, outputPath string, opts Options) error {
	t, err := Build()
	if err != nil {
		return err
	}
	if opts.Verbose {
		for i, desc := range t.Expect {
			dlog.Debugf(ctx, "state %d: %s", i, desc)
		}
	}

	src, err := Render(t, opts.Package, outputPath)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(outputPath, src, 0o644); err != nil {
		return err
	}
	dlog.Infof(ctx, "wrote %s: %d states, %d classes", outputPath, len(t.Trans), len(t.LeadMask))
	return nil
}

// Render executes the table template for t. filename is only used by
// goimports to resolve the package.
func Render(t *Tables, pkg, filename string) ([]byte, error) {
	if pkg == "" {
		pkg = "j8"
	}
	data := struct {
		Package    string
		Accept     int
		Reject     int
		NumStates  int
		NumClasses int
		ClassRows  []string
		TransRows  []string
		LeadMask   string
	}{
		Package:    pkg,
		Accept:     t.Accept,
		Reject:     t.Reject,
		NumStates:  len(t.Trans),
		NumClasses: len(t.LeadMask),
	}

	for lo := 0; lo < len(t.Class); lo += 16 {
		data.ClassRows = append(data.ClassRows,
			fmt.Sprintf("%s, // 0x%02X-0x%02X", joinUints(t.Class[lo:lo+16], strconv.Itoa), lo, lo+15))
	}
	for i, row := range t.Trans {
		data.TransRows = append(data.TransRows,
			fmt.Sprintf("{%s}, // %s", joinUints(row, strconv.Itoa), t.Expect[i]))
	}
	data.LeadMask = joinUints(t.LeadMask, func(v int) string { return fmt.Sprintf("0x%02x", v) }) + ","

	var buf bytes.Buffer
	if err := tableTemplate.ExecuteTemplate(&buf, "utf8_table.go.tpl", data); err != nil {
		return nil, err
	}

	src, err := imports.Process(filename, buf.Bytes(), nil)
	if err != nil {
		// Fall back to go/format if goimports fails.
		if formatted, ferr := format.Source(buf.Bytes()); ferr == nil {
			src = formatted
		} else {
			return nil, fmt.Errorf("format generated source: %w", err)
		}
	}
	return src, nil
}

func joinUints(vals []uint8, f func(int) string) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = f(int(v))
	}
	return strings.Join(parts, ", ")
}
