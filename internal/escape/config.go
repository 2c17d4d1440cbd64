// internal/escape/config.go
package escape

// Flags are the raw switches as the user supplied them. Conflicting pairs
// are allowed here; NewConfig settles them.
type Flags struct {
	Bytes             bool
	AllHex            bool
	Decimal           bool
	NewlineEscaped    bool
	NewlineHex        bool
	CarriageReturnHex bool
	TabHex            bool
	SpaceCircle       bool
	SpaceHex          bool
	LineBuffered      bool
}

// Config is the resolved, read-only option set consulted by the writer,
// the engine and the stream driver. Build it with NewConfig.
type Config struct {
	Bytes             bool // escape by UTF-8 bytes instead of code point
	AllHex            bool // escape everything, no special cases
	Decimal           bool // decimal numerals instead of hex
	NewlineEscaped    bool // '\n' -> `\n` token
	NewlineHex        bool // '\n' -> numeric escape; never set with NewlineEscaped
	CarriageReturnHex bool // '\r' -> numeric escape instead of `\r`
	TabHex            bool // '\t' -> numeric escape instead of `\t`
	SpaceCircle       bool // ' ' -> Circle
	SpaceHex          bool // ' ' -> numeric escape; never set with SpaceCircle
	LineBuffered      bool // process and flush one line at a time
}

// NewConfig resolves the mutually exclusive pairs once:
// NewlineEscaped wins over NewlineHex, SpaceCircle wins over SpaceHex.
func NewConfig(f Flags) Config {
	return Config{
		Bytes:             f.Bytes,
		AllHex:            f.AllHex,
		Decimal:           f.Decimal,
		NewlineEscaped:    f.NewlineEscaped,
		NewlineHex:        f.NewlineHex && !f.NewlineEscaped,
		CarriageReturnHex: f.CarriageReturnHex,
		TabHex:            f.TabHex,
		SpaceCircle:       f.SpaceCircle,
		SpaceHex:          f.SpaceHex && !f.SpaceCircle,
		LineBuffered:      f.LineBuffered,
	}
}

// Raw reports whether every input byte is escaped on its own, so that
// character decoding and font lookups can be skipped entirely.
func (c Config) Raw() bool { return c.AllHex && c.Bytes }

// NeedsFonts reports whether the glyph oracle can ever be consulted.
func (c Config) NeedsFonts() bool { return !c.AllHex }

// WantsTrailingNewline reports whether output on a terminal should be
// closed with a newline, because the last visible line may lack one.
func (c Config) WantsTrailingNewline() bool {
	return c.AllHex || c.NewlineEscaped || c.NewlineHex
}
