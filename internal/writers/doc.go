// Package writers holds output-side helpers shared by the stream driver
// and the app: broken-pipe detection and terminal detection of the sink.
//
// Design:
//   - Nothing here knows about escaping; it only sees io.Writers.
//   - A closed downstream pipe is a normal end of output, not an error.
package writers
