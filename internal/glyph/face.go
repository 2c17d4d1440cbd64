// internal/glyph/face.go
package glyph

import (
	"errors"
	"fmt"

	"golang.org/x/image/font/sfnt"
)

// ErrParse is the sentinel wrapped by every *ParseError.
var ErrParse = errors.New("font program could not be parsed")

// ParseError names the font source that failed to parse.
type ParseError struct {
	Name string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("font %q: %v: %v", e.Name, ErrParse, e.Err)
}

func (e *ParseError) Unwrap() []error { return []error{ErrParse, e.Err} }

// Face is one parsed font program. It is not safe for concurrent use:
// lookups share a scratch sfnt.Buffer.
type Face struct {
	name string
	font *sfnt.Font
	buf  sfnt.Buffer
}

// Name is the source name the face was parsed from.
func (f *Face) Name() string { return f.name }

// Family returns the family name recorded in the font's name table, or ""
// if it has none.
func (f *Face) Family() string {
	s, err := f.font.Name(&f.buf, sfnt.NameIDFamily)
	if err != nil {
		return ""
	}
	return s
}

// HasGlyph reports whether the font maps r to a glyph other than .notdef.
// Runes the cmap cannot look up answer false.
func (f *Face) HasGlyph(r rune) bool {
	idx, err := f.font.GlyphIndex(&f.buf, r)
	return err == nil && idx != 0
}

// Parse parses data as a single font program or a font collection
// (.ttc/.otc). Every font of a collection becomes its own Face, in
// collection order. data is retained and must not be modified.
func Parse(name string, data []byte) ([]*Face, error) {
	coll, err := sfnt.ParseCollection(data)
	if err != nil {
		return nil, &ParseError{Name: name, Err: err}
	}
	n := coll.NumFonts()
	if n == 0 {
		return nil, &ParseError{Name: name, Err: errors.New("no fonts in collection")}
	}
	faces := make([]*Face, 0, n)
	for i := 0; i < n; i++ {
		f, err := coll.Font(i)
		if err != nil {
			return nil, &ParseError{Name: name, Err: fmt.Errorf("font %d: %w", i, err)}
		}
		faces = append(faces, &Face{name: name, font: f})
	}
	return faces, nil
}
