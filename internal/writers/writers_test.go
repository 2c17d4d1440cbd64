// internal/writers/writers_test.go
package writers

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"
	"testing"
)

func TestIsBrokenPipe(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{syscall.EPIPE, true},
		{io.ErrClosedPipe, true},
		{fmt.Errorf("write output: %w", &os.PathError{Op: "write", Path: "/dev/stdout", Err: syscall.EPIPE}), true},
		{errors.New("disk full"), false},
	}
	for _, c := range cases {
		if got := IsBrokenPipe(c.err); got != c.want {
			t.Errorf("IsBrokenPipe(%v) = %v, want %v", c.err, got, c.want)
		}
	}
}

type pipeWriter struct{ err error }

func (p pipeWriter) Write([]byte) (int, error) { return 0, p.err }

func TestFlushQuiet(t *testing.T) {
	w := bufio.NewWriter(pipeWriter{syscall.EPIPE})
	_, _ = w.WriteString("x")
	if err := FlushQuiet(w); err != nil {
		t.Errorf("broken pipe should be dropped, got %v", err)
	}

	w = bufio.NewWriter(pipeWriter{errors.New("disk full")})
	_, _ = w.WriteString("x")
	if err := FlushQuiet(w); err == nil {
		t.Error("other errors must surface")
	}
}

func TestIsTerminalNonFile(t *testing.T) {
	if IsTerminal(&bytes.Buffer{}) {
		t.Error("a buffer is not a terminal")
	}
	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if IsTerminal(f) {
		t.Error("a regular file is not a terminal")
	}
}
