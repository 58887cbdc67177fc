// Package formatter renders messages into fixed, caller-provided buffers.
//
// Nothing here grows a buffer. Every function takes a []byte whose length
// is the capacity it may use, writes a zero-terminated string into it and
// returns the number of bytes it used, truncating safely when the output
// does not fit. Sinks on small targets can therefore keep one static
// buffer and reuse it for every line.
//
// Snprintf is the primitive: it has the semantics of C's snprintf on top
// of Go's fmt verbs and reports the untruncated length. FormatLineHeader
// and FormatMessage build on it to render
//
//	<color>WRN:IO<reset> <dim>main.go:42(main.run)<reset> the message\n
//
// with colors present only when enabled. The package-level functions use
// the build's default (core.ColorEnabled); NewTextFormatter lets a sink
// decide at run time, e.g. after checking whether its output is a
// terminal.
//
// FormatMessage always sacrifices the last two bytes of the buffer to a
// newline and the terminator once the header fit. A line that exactly
// fills the buffer therefore loses its final visible byte.
package formatter
