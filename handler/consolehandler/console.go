package consolehandler

import (
	"bytes"
	"io"
	"os"
	"sync"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/Philipp01105/clog/core"
	"github.com/Philipp01105/clog/formatter"
	"github.com/Philipp01105/clog/handler"
)

// DefaultBufferSize is the line buffer size used when Config.BufferSize is
// not set. Longer lines are truncated.
const DefaultBufferSize = 200

// ColorMode selects whether level colors are written
type ColorMode int

const (
	// ColorAuto colors output only when the writer is a terminal and
	// colors are compiled in
	ColorAuto ColorMode = iota
	// ColorAlways colors output regardless of the writer
	ColorAlways
	// ColorNever writes plain text
	ColorNever
)

// Config holds configuration for console handler
type Config struct {
	// Writer to write to (default: os.Stdout)
	Writer io.Writer
	// BufferSize is the size of the line buffer (default: DefaultBufferSize)
	BufferSize int
	// Color selects colored output (default: ColorAuto). Ignored when
	// Formatter is set.
	Color ColorMode
	// Formatter renders the line (default: TextFormatter)
	Formatter formatter.Formatter
	// Stats receives write failures (default: a private Stats)
	Stats *handler.Stats
}

// ConsoleHandler writes every message as one formatted line. Lines are
// rendered into a fixed buffer owned by the handler, so it allocates
// nothing per message. It may be shared by several contexts.
type ConsoleHandler struct {
	mu        sync.Mutex
	writer    io.Writer
	formatter formatter.Formatter
	buf       []byte
	stats     *handler.Stats
	err       error
	closed    bool
}

// isTerminal reports whether w is a terminal
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// applyDefaults fills in zero-value fields with defaults.
func applyDefaults(cfg *Config) {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	if cfg.BufferSize < 2 {
		cfg.BufferSize = DefaultBufferSize
	}
	if cfg.Stats == nil {
		cfg.Stats = handler.NewStats()
	}
}

// New creates a console handler
func New(cfg Config) *ConsoleHandler {
	applyDefaults(&cfg)

	term := isTerminal(cfg.Writer)
	w := cfg.Writer
	if f, ok := w.(*os.File); ok && term {
		// translates escape sequences on Windows consoles
		w = colorable.NewColorable(f)
	}

	f := cfg.Formatter
	if f == nil {
		color := false
		switch cfg.Color {
		case ColorAlways:
			color = true
		case ColorAuto:
			color = term && core.ColorEnabled
		}
		f = formatter.NewTextFormatter(formatter.Config{Color: color})
	}

	return &ConsoleHandler{
		writer:    w,
		formatter: f,
		buf:       make([]byte, cfg.BufferSize),
		stats:     cfg.Stats,
	}
}

// Handle formats msg and writes it. Write errors are recorded and can be
// read with Err.
func (h *ConsoleHandler) Handle(msg *core.Message) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}

	n := h.formatter.Format(h.buf, msg)
	if n > len(h.buf) {
		n = len(h.buf)
	}
	line := h.buf[:n]
	if i := bytes.IndexByte(line, 0); i >= 0 {
		line = line[:i]
	}
	if len(line) == 0 {
		return
	}

	if _, err := h.writer.Write(line); err != nil {
		h.err = err
		h.stats.IncrementFailed()
	}
}

// Adapter returns an adapter delivering to h. filter may be nil.
func (h *ConsoleHandler) Adapter(filter core.Filter) core.Adapter {
	return handler.NewAdapter(h, filter)
}

// Err returns the last write error
func (h *ConsoleHandler) Err() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.err
}

// Stats returns a snapshot of the current statistics
func (h *ConsoleHandler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

// Close stops writing. The underlying writer is left open.
func (h *ConsoleHandler) Close() error {
	h.mu.Lock()
	h.closed = true
	h.mu.Unlock()
	return nil
}
