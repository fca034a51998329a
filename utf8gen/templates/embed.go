package templates

import "embed"

// FS exposes the codegen templates used by utf8gen.
//
//go:embed *.go.tpl
var FS embed.FS
