// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"go.uber.org/zap"

	"hexv/internal/cli"
	"hexv/internal/cmdutil"
	"hexv/internal/escape"
	"hexv/internal/fontsrc"
	"hexv/internal/glyph"
	"hexv/internal/input"
	"hexv/internal/stream"
	"hexv/internal/version"
	"hexv/internal/writers"
)

// Exit codes.
const (
	ExitOK          = 0
	ExitUsage       = 2
	ExitIO          = 3
	ExitFontMissing = 4
	ExitFontInvalid = 5
	ExitInterrupted = 130
)

// newResolver is swapped in tests.
var newResolver = fontsrc.NewResolver

// RunContext runs hexv with argv (without the program name) and returns the
// process exit code. Cancelling parent stops line-by-line processing.
func RunContext(parent context.Context, argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := cli.NewFlagSet("hexv")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return printUsage(fs, stdout, stderr, ExitOK)
		}
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return printUsage(fs, stderr, stderr, ExitUsage)
	}

	if opts.Version {
		outw := bufio.NewWriter(stdout)
		_, _ = fmt.Fprintf(outw, "hexv version %s\n", version.Version)
		return flushOrFail(outw, stderr, ExitOK)
	}

	log := cmdutil.NewLogger(stderr, opts.Verbose, opts.Quiet)
	defer func() { _ = log.Sync() }()
	fontsrc.SetLogger(log.Named("fonts"))

	cfg := escape.NewConfig(opts.Flags())
	if opts.NewlineEscaped && opts.NewlineHex {
		log.Debug("--newline-escaped overrides --newline-hex")
	}
	if opts.SpaceCircle && opts.SpaceHex {
		log.Debug("--space-circle overrides --space-hex")
	}

	var fonts glyph.Set
	switch {
	case cfg.Raw():
		if opts.Fontname != "" {
			log.Debug("--all with --bytes never consults fonts; not loading", zap.String("fontname", opts.Fontname))
		}
	case opts.Fontname != "":
		fonts, err = fontsrc.LoadSet(newResolver(), opts.Fontname)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, "error:", err)
			return fontExitCode(err)
		}
	}

	in := input.Concat(opts.Inputs, stdin)
	defer func() { _ = in.Close() }()

	d := &stream.Driver{
		Engine:   escape.New(cfg, fonts),
		Out:      bufio.NewWriter(stdout),
		Terminal: writers.IsTerminal(stdout),
		Log:      log,
	}
	if _, err := d.Run(parent, in); err != nil {
		switch {
		case writers.IsBrokenPipe(err):
			return ExitOK
		case errors.Is(err, context.Canceled):
			_ = writers.FlushQuiet(d.Out)
			return ExitInterrupted
		}
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return ExitIO
	}
	return ExitOK
}

// Run is RunContext with a background context.
func Run(argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdin, stdout, stderr)
}

func fontExitCode(err error) int {
	switch {
	case errors.Is(err, fontsrc.ErrNoFonts):
		return ExitUsage
	case errors.Is(err, fontsrc.ErrNotFound):
		return ExitFontMissing
	case errors.Is(err, glyph.ErrParse):
		return ExitFontInvalid
	}
	return ExitIO
}

func printUsage(fs *flag.FlagSet, dst, stderr io.Writer, code int) int {
	outw := bufio.NewWriter(dst)
	fs.SetOutput(outw)
	fs.Usage()
	return flushOrFail(outw, stderr, code)
}

func flushOrFail(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := writers.FlushQuiet(outw); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitIO
	}
	return code
}
