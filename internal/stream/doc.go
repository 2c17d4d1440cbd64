// Package stream reads input, feeds it through an escape.Engine and
// flushes the output. It owns the choice between whole-buffer and
// line-by-line operation, the raw byte fast path, and the trailing
// newline written for terminals.
package stream
