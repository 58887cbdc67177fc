package formatter

import (
	"fmt"
	"sync"

	"github.com/Philipp01105/clog/core"
)

// Formatter renders a message into a caller-provided fixed buffer and
// returns the number of bytes used, never more than len(buf).
type Formatter interface {
	Format(buf []byte, msg *core.Message) int
}

// FormatterFunc adapts a function to the Formatter interface
type FormatterFunc func(buf []byte, msg *core.Message) int

// Format calls f(buf, msg)
func (f FormatterFunc) Format(buf []byte, msg *core.Message) int {
	return f(buf, msg)
}

// boundedWriter copies at most len(buf) bytes and counts everything it was
// asked to write.
type boundedWriter struct {
	buf   []byte
	n     int
	total int
}

func (w *boundedWriter) Write(p []byte) (int, error) {
	if w.n < len(w.buf) {
		w.n += copy(w.buf[w.n:], p)
	}
	w.total += len(p)
	return len(p), nil
}

// writerPool keeps fmt's io.Writer argument off the per-call allocation path
var writerPool = sync.Pool{
	New: func() interface{} {
		return new(boundedWriter)
	},
}

// Snprintf formats into buf like C's snprintf: at most len(buf)-1 bytes of
// output are written followed by a terminating zero byte, and the return
// value is the length the complete output would have had. An empty buf is
// left untouched.
func Snprintf(buf []byte, format string, args ...interface{}) int {
	w := writerPool.Get().(*boundedWriter)
	w.n, w.total = 0, 0
	if len(buf) > 0 {
		w.buf = buf[:len(buf)-1]
	} else {
		w.buf = nil
	}

	fmt.Fprintf(w, format, args...)

	if len(buf) > 0 {
		buf[w.n] = 0
	}
	total := w.total

	w.buf = nil
	writerPool.Put(w)
	return total
}
