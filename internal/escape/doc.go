// Package escape decides, character by character, whether input passes
// through literally or is rewritten as an escape token (\xNN, \dNNN,
// \u{...}, \n, \r, \t). It never imports app, cli, stream or writers;
// keep it domain-only.
//
// The only outside contract is glyph.Checker, used to ask whether a
// non-ASCII character can be rendered by any loaded font.
package escape
