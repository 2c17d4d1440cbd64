// internal/fontsrc/load.go
package fontsrc

import (
	"errors"
	"strings"

	"go.uber.org/zap"

	"hexv/internal/glyph"
)

// SplitNames splits a comma-separated font list, trimming blanks and
// dropping empty and repeated entries. Order is kept.
func SplitNames(list string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, n := range strings.Split(list, ",") {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		key := strings.ToLower(n)
		if seen[key] {
			Logger().Warn("font listed twice; ignoring repeat", zap.String("font", n))
			continue
		}
		seen[key] = true
		out = append(out, n)
	}
	return out
}

// ErrNoFonts is returned by LoadSet when the list names no font at all.
var ErrNoFonts = errors.New("font list is empty")

// LoadSet resolves and parses every font in list, in order, into one set.
// The first resolution or parse failure is returned; it names the font.
func LoadSet(r *Resolver, list string) (glyph.Set, error) {
	names := SplitNames(list)
	if len(names) == 0 {
		return nil, ErrNoFonts
	}
	var set glyph.Set
	for _, name := range names {
		data, err := r.Resolve(name)
		if err != nil {
			return nil, err
		}
		faces, err := glyph.Parse(name, data)
		if err != nil {
			return nil, err
		}
		for _, f := range faces {
			set = append(set, f)
		}
		Logger().Debug("loaded font", zap.String("font", name), zap.Int("faces", len(faces)))
	}
	return set, nil
}
