// internal/escape/engine.go
package escape

import (
	"unicode"
	"unicode/utf8"

	"hexv/internal/glyph"
)

// Action is what the engine does with one unit.
type Action uint8

const (
	ActionByteEscape   Action = iota // escape every source byte (invalid input)
	ActionRuneEscape                 // EscapeRune
	ActionNewlineToken               // `\n`
	ActionCRToken                    // `\r`
	ActionTabToken                   // `\t`
	ActionCircle                     // Circle in place of a space
	ActionLiteral                    // copy the source bytes unchanged
)

var actionNames = [...]string{
	ActionByteEscape:   "byte-escape",
	ActionRuneEscape:   "rune-escape",
	ActionNewlineToken: "newline-token",
	ActionCRToken:      "cr-token",
	ActionTabToken:     "tab-token",
	ActionCircle:       "circle",
	ActionLiteral:      "literal",
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "unknown"
}

// rule is one row of the decision table. Order is load-bearing: the first
// row whose match returns true decides the action.
type rule struct {
	match func(e *Engine, u Unit) bool
	act   Action
}

var rules = []rule{
	{func(_ *Engine, u Unit) bool { return !u.Valid }, ActionByteEscape},
	{func(e *Engine, _ Unit) bool { return e.cfg.AllHex }, ActionRuneEscape},
	{func(e *Engine, u Unit) bool { return u.Rune == '\n' && e.cfg.NewlineEscaped }, ActionNewlineToken},
	{func(e *Engine, u Unit) bool { return u.Rune == '\n' && !e.cfg.NewlineHex }, ActionLiteral},
	{func(e *Engine, u Unit) bool { return u.Rune == '\r' && !e.cfg.CarriageReturnHex }, ActionCRToken},
	{func(e *Engine, u Unit) bool { return u.Rune == '\t' && !e.cfg.TabHex }, ActionTabToken},
	{func(e *Engine, u Unit) bool { return u.Rune == ' ' && e.cfg.SpaceCircle }, ActionCircle},
	{(*Engine).needsEscape, ActionRuneEscape},
}

// Engine classifies decoded units and writes their output form.
type Engine struct {
	cfg   Config
	fonts glyph.Checker
}

// New returns an engine for cfg. A nil fonts behaves like an empty font
// set: every non-ASCII character is reported missing.
func New(cfg Config, fonts glyph.Checker) *Engine {
	if fonts == nil {
		fonts = glyph.Set(nil)
	}
	return &Engine{cfg: cfg, fonts: fonts}
}

// Config returns the engine's configuration.
func (e *Engine) Config() Config { return e.cfg }

// Classify runs the decision table for u.
func (e *Engine) Classify(u Unit) Action {
	for _, r := range rules {
		if r.match(e, u) {
			return r.act
		}
	}
	return ActionLiteral
}

func (e *Engine) needsEscape(u Unit) bool {
	c := u.Rune
	switch {
	case isASCIIControl(c):
		return true
	case c != ' ' && unicode.IsSpace(c):
		return true
	case c == ' ':
		return e.cfg.SpaceHex
	case c >= utf8.RuneSelf:
		return !e.fonts.HasGlyph(c)
	}
	return false
}

func isASCIIControl(r rune) bool { return r < 0x20 || r == 0x7f }

// Process classifies and writes every unit of buf.
func (e *Engine) Process(w Sink, buf []byte) error {
	for u := range Units(buf) {
		if err := e.write(w, u, u.Bytes(buf)); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) write(w Sink, u Unit, src []byte) error {
	var err error
	switch e.Classify(u) {
	case ActionByteEscape:
		err = EscapeBytes(w, src, e.cfg)
	case ActionRuneEscape:
		err = EscapeRune(w, u.Rune, e.cfg)
	case ActionNewlineToken:
		_, err = w.WriteString(NewlineToken)
	case ActionCRToken:
		_, err = w.WriteString(CarriageReturnToken)
	case ActionTabToken:
		_, err = w.WriteString(TabToken)
	case ActionCircle:
		_, err = w.WriteString(Circle)
	default:
		_, err = w.Write(src)
	}
	return err
}
