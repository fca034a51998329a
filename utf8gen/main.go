package main

import (
	"context"

	"github.com/alecthomas/kong"
	"github.com/datawire/dlib/dlog"
	"github.com/sirupsen/logrus"

	"github.com/synadia-labs/j8.go/utf8gen/core"
)

// CLI defines the utf8gen command-line interface. It is normally run
// through go:generate from the runtime package directory.
type CLI struct {
	Output  string `short:"o" help:"Output file" default:"utf8_table.go"`
	Package string `short:"p" help:"Package name for the generated file" default:"j8"`
	Verbose bool   `short:"v" help:"Enable verbose diagnostics"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("utf8gen"),
		kong.Description("Generate the byte-class UTF-8 DFA tables used by the j8 runtime."),
	)

	logger := logrus.New()
	if cli.Verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	c := dlog.WithLogger(context.Background(), dlog.WrapLogrus(logger))

	if err := core.Run(c, cli.Output, core.Options{Package: cli.Package, Verbose: cli.Verbose}); err != nil {
		ctx.FatalIfErrorf(err)
	}
}
