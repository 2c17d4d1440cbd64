// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"hexv/internal/escape"
	"hexv/internal/version"
)

// FontEnv names the environment variable that supplies a default --fontname.
const FontEnv = "HEXV_FONT"

// Options holds all CLI flags and arguments.
type Options struct {
	// Escaping
	Bytes             bool
	All               bool
	Decimal           bool
	NewlineEscaped    bool
	NewlineHex        bool
	CarriageReturnHex bool
	TabHex            bool
	SpaceCircle       bool
	SpaceHex          bool

	// Input
	LineBuffered bool
	Inputs       []string

	// Fonts
	Fontname string

	// Misc
	Verbose bool
	Quiet   bool
	Version bool
}

// Flags converts the escaping switches for escape.NewConfig.
func (o Options) Flags() escape.Flags {
	return escape.Flags{
		Bytes:             o.Bytes,
		AllHex:            o.All,
		Decimal:           o.Decimal,
		NewlineEscaped:    o.NewlineEscaped,
		NewlineHex:        o.NewlineHex,
		CarriageReturnHex: o.CarriageReturnHex,
		TabHex:            o.TabHex,
		SpaceCircle:       o.SpaceCircle,
		SpaceHex:          o.SpaceHex,
		LineBuffered:      o.LineBuffered,
	}
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: show invisible and unrenderable characters as escapes

Version: %s

Usage: %s [flags] [file ...]

Reads the files (or stdin, or '-') and prints them with control characters,
odd whitespace, invalid UTF-8 and characters missing from the given fonts
replaced by \xNN / \u{...} escapes.

`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// Parse is the top-level call for CLI parsing.
func Parse() (Options, error) { return ParseArgs(flag.CommandLine, os.Args[1:]) }

// ParseArgs registers and parses all flags, returns an Options struct.
// Flags and input paths may be interleaved; single-letter switches may be
// bundled ("-an").
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	// Escaping
	boolFlag(fs, &opt.Bytes, "bytes", "b", "show UTF-8 bytes instead of code points")
	boolFlag(fs, &opt.All, "all", "a", "print everything as escapes")
	boolFlag(fs, &opt.Decimal, "decimal", "d", "print escapes as decimal instead of hex")
	boolFlag(fs, &opt.NewlineEscaped, "newline-escaped", "n", `print newline as \n (takes precedence over --newline-hex)`)
	boolFlag(fs, &opt.NewlineHex, "newline-hex", "N", "print newline as an escape")
	boolFlag(fs, &opt.CarriageReturnHex, "carriage-return", "r", `print carriage return as an escape instead of \r`)
	boolFlag(fs, &opt.TabHex, "tab", "t", `print tab as an escape instead of \t`)
	boolFlag(fs, &opt.SpaceCircle, "space-circle", "s", "print space as "+escape.Circle+" (takes precedence over --space-hex)")
	boolFlag(fs, &opt.SpaceHex, "space-hex", "S", "print space as an escape")

	// Input
	boolFlag(fs, &opt.LineBuffered, "line-buffered", "l", "process and flush input line by line")

	// Fonts
	fs.StringVar(&opt.Fontname, "fontname", os.Getenv(FontEnv), "comma-separated font families or font files used to decide what is renderable [$"+FontEnv+"]")
	fs.StringVar(&opt.Fontname, "f", os.Getenv(FontEnv), "alias of --fontname")

	// Misc
	fs.BoolVar(&opt.Verbose, "verbose", false, "debug logging on stderr [false]")
	boolFlag(fs, &opt.Quiet, "quiet", "q", "suppress warnings")
	boolFlag(fs, &opt.Version, "version", "v", "print version and exit")
	boolFlag(fs, &help, "help", "h", "show this help message")

	flagArgs, posArgs := SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	inputs, err := ExpandPositionals(append(posArgs, fs.Args()...))
	if err != nil {
		return opt, err
	}
	opt.Inputs = inputs

	// Validation
	if opt.Fontname == "" && !opt.All {
		return opt, errors.New("--fontname is required (or set " + FontEnv + ")")
	}
	if opt.Verbose && opt.Quiet {
		return opt, errors.New("--verbose conflicts with --quiet")
	}
	return opt, nil
}

func boolFlag(fs *flag.FlagSet, p *bool, long, short, usage string) {
	fs.BoolVar(p, long, false, usage+" [false]")
	fs.BoolVar(p, short, false, "alias of --"+long)
}
