// internal/input/open.go
package input

import (
	"io"
	"os"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

// Open opens path for reading. "-" reads from stdin (never closed here).
// Bytes are returned exactly as stored; nothing is decoded or decompressed.
func Open(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == Stdin {
		return io.NopCloser(stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return fh, nil
}

// Concat returns one reader over every path in order. Files are opened
// lazily, one at a time, so a long list never holds more than one open
// descriptor. No paths means stdin.
func Concat(paths []string, stdin io.Reader) io.ReadCloser {
	if len(paths) == 0 {
		paths = []string{Stdin}
	}
	return &concatReader{paths: paths, stdin: stdin}
}

type concatReader struct {
	paths []string
	stdin io.Reader
	cur   io.ReadCloser
}

func (c *concatReader) Read(p []byte) (int, error) {
	for {
		if c.cur == nil {
			if len(c.paths) == 0 {
				return 0, io.EOF
			}
			rc, err := Open(c.paths[0], c.stdin)
			if err != nil {
				return 0, err
			}
			c.cur, c.paths = rc, c.paths[1:]
		}
		n, err := c.cur.Read(p)
		if err == io.EOF {
			cerr := c.cur.Close()
			c.cur = nil
			if cerr != nil {
				return n, cerr
			}
			if n > 0 {
				return n, nil
			}
			continue
		}
		return n, err
	}
}

func (c *concatReader) Close() error {
	c.paths = nil
	if c.cur == nil {
		return nil
	}
	err := c.cur.Close()
	c.cur = nil
	return err
}
