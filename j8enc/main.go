package main

import (
	"context"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/datawire/dlib/dgroup"
	"github.com/datawire/dlib/dlog"
	"github.com/sirupsen/logrus"
)

// CLI defines the j8enc command-line interface.
type CLI struct {
	LogLevel string `name:"log-level" help:"Log verbosity (${enum})" enum:"error,warn,info,debug,trace" default:"info" env:"J8ENC_LOG_LEVEL"`

	Encode   EncodeCmd   `cmd:"" help:"Write the input as J8 string literals, one per line."`
	Validate ValidateCmd `cmd:"" help:"Report whether a byte range of the input is well-formed UTF-8."`
}

// runEnv carries the process environment into command Run methods.
type runEnv struct {
	ctx context.Context //nolint:containedctx // Bound into kong's Run
	in  io.Reader
	out io.Writer
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("j8enc"),
		kong.Description("Encode byte strings as J8 literals and check UTF-8 well-formedness."),
		kong.UsageOnError(),
	)

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	if lvl, err := logrus.ParseLevel(cli.LogLevel); err == nil {
		logger.SetLevel(lvl)
	}
	ctx := dlog.WithLogger(context.Background(), dlog.WrapLogrus(logger))

	grp := dgroup.NewGroup(ctx, dgroup.GroupConfig{
		EnableSignalHandling: true,
	})
	grp.Go("main", func(ctx context.Context) error {
		return kctx.Run(&runEnv{ctx: ctx, in: os.Stdin, out: os.Stdout})
	})
	if err := grp.Wait(); err != nil {
		kctx.FatalIfErrorf(err)
	}
}
