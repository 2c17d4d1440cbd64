// internal/escape/decode.go
package escape

import (
	"bytes"
	"iter"
	"unicode/utf8"
)

// Unit is one decoded step over the input: either a valid character and
// the exact bytes it came from, or a byte run that failed to decode.
type Unit struct {
	Start, End int  // byte span in the source buffer, End exclusive
	Rune       rune // utf8.RuneError when !Valid
	Valid      bool
}

// Bytes returns the unit's source span within buf.
func (u Unit) Bytes(buf []byte) []byte { return buf[u.Start:u.End] }

// Units walks buf left to right and yields units that cover it exactly,
// with no gaps or overlaps. Invalid input yields one unit per byte
// consumed by utf8.DecodeRune recovery.
//
// A decoded rune is only reported valid if re-encoding it reproduces the
// source bytes exactly; anything else is flagged invalid.
func Units(buf []byte) iter.Seq[Unit] {
	return func(yield func(Unit) bool) {
		var scratch [utf8.UTFMax]byte
		for i := 0; i < len(buf); {
			r, size := utf8.DecodeRune(buf[i:])
			u := Unit{Start: i, End: i + size, Rune: r}
			if r != utf8.RuneError || size > 1 {
				u.Valid = bytes.Equal(utf8.AppendRune(scratch[:0], r), buf[i:i+size])
			}
			if !u.Valid {
				u.Rune = utf8.RuneError
			}
			if !yield(u) {
				return
			}
			i += size
		}
	}
}
