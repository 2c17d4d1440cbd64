// internal/writers/terminal.go
package writers

import (
	"io"

	"golang.org/x/term"
)

// fder is satisfied by *os.File.
type fder interface {
	Fd() uintptr
}

// IsTerminal reports whether w is an interactive terminal. Anything that
// is not backed by a file descriptor (buffers, pipes wrapped in writers)
// is not a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(fder)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
