// Package glyph answers whether loaded font programs define a glyph for a
// character. Callers depend only on Checker; how font data is owned or
// parsed stays behind it.
package glyph

// Checker reports whether a character has a non-notdef glyph.
type Checker interface {
	HasGlyph(r rune) bool
}

// Set is an ordered list of checkers. A character is present if any
// member has it; lookup stops at the first hit.
type Set []Checker

// HasGlyph implements Checker. An empty set has no glyphs.
func (s Set) HasGlyph(r rune) bool {
	for _, c := range s {
		if c.HasGlyph(r) {
			return true
		}
	}
	return false
}

// Func adapts a plain function to Checker.
type Func func(r rune) bool

func (f Func) HasGlyph(r rune) bool { return f(r) }
