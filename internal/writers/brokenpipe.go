// internal/writers/brokenpipe.go
package writers

import (
	"errors"
	"io"
	"syscall"
)

// IsBrokenPipe reports whether an error is a broken pipe / closed pipe.
// Downstream consumers like `head` close early; that is not a failure.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}

// Flusher is an output that buffers.
type Flusher interface {
	Flush() error
}

// FlushQuiet flushes w and drops broken-pipe errors.
func FlushQuiet(w Flusher) error {
	if err := w.Flush(); err != nil && !IsBrokenPipe(err) {
		return err
	}
	return nil
}
