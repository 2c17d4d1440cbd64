// internal/stream/driver.go
package stream

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"hexv/internal/escape"
)

// Output is the sink the driver writes to and flushes.
type Output interface {
	escape.Sink
	Flush() error
}

// Driver runs one input stream to completion.
type Driver struct {
	Engine *escape.Engine
	Out    Output
	// Terminal reports that Out ends on an interactive terminal; it only
	// decides whether a trailing newline is written.
	Terminal bool
	Log      *zap.Logger
}

// Stats summarizes a finished run.
type Stats struct {
	BytesIn int64
	Chunks  int
}

// Run consumes r until EOF. Sink errors are returned wrapped; the caller
// treats them as fatal. ctx is checked between chunks only.
func (d *Driver) Run(ctx context.Context, r io.Reader) (Stats, error) {
	log := d.Log
	if log == nil {
		log = zap.NewNop()
	}
	cfg := d.Engine.Config()
	log.Debug("stream start",
		zap.Bool("line_buffered", cfg.LineBuffered),
		zap.Bool("raw", cfg.Raw()))

	var (
		st  Stats
		err error
	)
	if cfg.LineBuffered {
		st, err = d.runLines(ctx, r)
	} else {
		st, err = d.runWhole(r)
	}
	if err != nil {
		return st, err
	}

	if d.Terminal && cfg.WantsTrailingNewline() {
		if err := d.Out.WriteByte('\n'); err != nil {
			return st, fmt.Errorf("write output: %w", err)
		}
	}
	if err := d.Out.Flush(); err != nil {
		return st, fmt.Errorf("write output: %w", err)
	}
	log.Debug("stream done", zap.Int64("bytes_in", st.BytesIn), zap.Int("chunks", st.Chunks))
	return st, nil
}

func (d *Driver) runWhole(r io.Reader) (Stats, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return Stats{}, fmt.Errorf("read input: %w", err)
	}
	st := Stats{BytesIn: int64(len(buf)), Chunks: 1}
	if err := d.process(buf); err != nil {
		return st, err
	}
	return st, nil
}

func (d *Driver) runLines(ctx context.Context, r io.Reader) (Stats, error) {
	var (
		st   Stats
		line []byte
	)
	br := bufio.NewReader(r)
	for {
		if err := ctx.Err(); err != nil {
			return st, err
		}
		var rerr error
		line, rerr = readLine(br, line[:0])
		if rerr != nil && !errors.Is(rerr, io.EOF) {
			return st, fmt.Errorf("read input: %w", rerr)
		}
		if len(line) == 0 {
			return st, nil
		}
		st.BytesIn += int64(len(line))
		st.Chunks++
		if err := d.process(line); err != nil {
			return st, err
		}
		if err := d.Out.Flush(); err != nil {
			return st, fmt.Errorf("write output: %w", err)
		}
		if rerr != nil {
			return st, nil
		}
	}
}

// readLine appends the next line, terminator included, to dst. It reuses
// dst's storage and grows it only for lines longer than any seen before.
func readLine(br *bufio.Reader, dst []byte) ([]byte, error) {
	for {
		frag, err := br.ReadSlice('\n')
		dst = append(dst, frag...)
		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		return dst, err
	}
}

func (d *Driver) process(buf []byte) error {
	cfg := d.Engine.Config()
	var err error
	if cfg.Raw() {
		err = escape.EscapeBytes(d.Out, buf, cfg)
	} else {
		err = d.Engine.Process(d.Out, buf)
	}
	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
