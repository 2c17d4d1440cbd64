// internal/escape/writer.go
package escape

import (
	"io"
	"strconv"
	"unicode/utf8"
)

// Sink is the output the writer and engine append to. *bufio.Writer,
// *bytes.Buffer and *strings.Builder all satisfy it.
type Sink interface {
	io.Writer
	io.ByteWriter
	io.StringWriter
}

// Escape tokens.
const (
	HexBytePrefix     = `\x`
	DecimalBytePrefix = `\d`
	RuneOpen          = `\u{`
	RuneClose         = `}`

	NewlineToken        = `\n`
	CarriageReturnToken = `\r`
	TabToken            = `\t`

	// Circle replaces a space under SpaceCircle.
	Circle = "\U0001F784"
)

const hexDigits = "0123456789abcdef"

// EscapeByte writes b as \xNN (two lowercase hex digits) or, in decimal
// mode, as \dNNN (three zero-padded decimal digits).
func EscapeByte(w Sink, b byte, cfg Config) error {
	if cfg.Decimal {
		tok := [5]byte{'\\', 'd', '0' + b/100, '0' + b/10%10, '0' + b%10}
		_, err := w.Write(tok[:])
		return err
	}
	tok := [4]byte{'\\', 'x', hexDigits[b>>4], hexDigits[b&0x0f]}
	_, err := w.Write(tok[:])
	return err
}

// EscapeRune writes r as its UTF-8 bytes (Bytes mode, each via EscapeByte)
// or as \u{...} holding the code point in lowercase hex, or in decimal
// when Decimal is set. The code point is never zero-padded.
func EscapeRune(w Sink, r rune, cfg Config) error {
	if cfg.Bytes {
		var enc [utf8.UTFMax]byte
		for _, b := range utf8.AppendRune(enc[:0], r) {
			if err := EscapeByte(w, b, cfg); err != nil {
				return err
			}
		}
		return nil
	}
	base := 16
	if cfg.Decimal {
		base = 10
	}
	var tok [16]byte
	out := append(tok[:0], RuneOpen...)
	out = strconv.AppendInt(out, int64(r), base)
	out = append(out, RuneClose...)
	_, err := w.Write(out)
	return err
}

// EscapeBytes escapes every byte of buf on its own. Under AllHex+Bytes this
// matches the per-character pipeline byte for byte.
func EscapeBytes(w Sink, buf []byte, cfg Config) error {
	for _, b := range buf {
		if err := EscapeByte(w, b, cfg); err != nil {
			return err
		}
	}
	return nil
}
