// internal/cli/args.go
package cli

import (
	"flag"
	"fmt"
	"path/filepath"
	"strings"
)

// boolFlags returns names of flags that don't require a value.
func boolFlags(fs *flag.FlagSet) map[string]bool {
	m := map[string]bool{}
	fs.VisitAll(func(f *flag.Flag) {
		if bf, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && bf.IsBoolFlag() {
			m[f.Name] = true
		}
	})
	return m
}

// unbundle expands "-an" into "-a", "-n" when every letter names a
// single-letter boolean flag. Anything else is returned unchanged.
func unbundle(arg string, isBool map[string]bool) []string {
	if len(arg) < 3 || arg[0] != '-' || arg[1] == '-' || strings.Contains(arg, "=") {
		return []string{arg}
	}
	letters := arg[1:]
	out := make([]string, 0, len(letters))
	for _, c := range letters {
		if !isBool[string(c)] {
			return []string{arg}
		}
		out = append(out, "-"+string(c))
	}
	return out
}

// SplitFlagsAndPositionals separates flag-like args from input paths,
// preserving '-', '--' and '--x=y' semantics. Use before fs.Parse(flagArgs).
func SplitFlagsAndPositionals(fs *flag.FlagSet, argv []string) (flagArgs, posArgs []string) {
	isBool := boolFlags(fs)
	for i := 0; i < len(argv); i++ {
		arg := argv[i]
		if arg == "--" {
			posArgs = append(posArgs, argv[i+1:]...)
			break
		}
		if arg == "-" || !strings.HasPrefix(arg, "-") {
			posArgs = append(posArgs, arg)
			continue
		}
		if strings.Contains(arg, "=") {
			flagArgs = append(flagArgs, arg)
			continue
		}
		if name := strings.TrimLeft(arg, "-"); isBool[name] || fs.Lookup(name) == nil {
			// unknown names are left for fs.Parse to report
			flagArgs = append(flagArgs, unbundle(arg, isBool)...)
			continue
		}
		flagArgs = append(flagArgs, arg)
		if i+1 < len(argv) {
			flagArgs = append(flagArgs, argv[i+1])
			i++
		}
	}
	return
}

func hasGlobMeta(s string) bool { return strings.ContainsAny(s, "*?[") }

// ExpandPositionals expands any globs among input paths. "-" (stdin) is
// kept as is; a glob that matches nothing is an error.
func ExpandPositionals(posArgs []string) ([]string, error) {
	var out []string
	for _, a := range posArgs {
		if a == "-" || !hasGlobMeta(a) {
			out = append(out, a)
			continue
		}
		m, err := filepath.Glob(a)
		if err != nil {
			return nil, fmt.Errorf("bad glob %q: %v", a, err)
		}
		if len(m) == 0 {
			return nil, fmt.Errorf("no input matched %q", a)
		}
		out = append(out, m...)
	}
	return out, nil
}
