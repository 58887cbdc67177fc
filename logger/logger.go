package logger

import (
	"github.com/Philipp01105/clog/core"
	"github.com/Philipp01105/clog/formatter"
)

// DefaultBufferSize is the size of the formatting buffer a Builder
// allocates when none is supplied
const DefaultBufferSize = 200

// Context bundles everything one logical logging stream needs: the
// adapters messages fan out to, the tag name table and the single
// formatting buffer reused for every message.
//
// A Context is not safe for concurrent use. Messages are formatted into
// Buffer, so two goroutines logging through the same Context at once
// would overwrite each other's text. Give every goroutine its own Context
// or serialize the calls.
type Context struct {
	// Adapters are called in order for every message
	Adapters []core.Adapter
	// Tags resolves Tag values to display names
	Tags core.TagNames
	// Buffer receives the formatted message text. Its length is the
	// capacity, including the terminating zero byte.
	Buffer []byte

	minLevel core.Level
}

// Valid reports whether c can dispatch messages at all: it needs at least
// one adapter, one tag name and one byte of buffer, and every adapter must
// have a sink.
func (c *Context) Valid() bool {
	if c == nil {
		return false
	}
	if len(c.Adapters) == 0 || len(c.Tags) == 0 || len(c.Buffer) < 1 {
		return false
	}
	for i := range c.Adapters {
		if c.Adapters[i].Sink == nil {
			return false
		}
	}
	return true
}

// MinLevel returns the runtime minimum level. A nil Context logs
// everything, so it reports Trace.
func (c *Context) MinLevel() core.Level {
	if c == nil {
		return core.Trace
	}
	return c.minLevel
}

// SetMinLevel changes the runtime minimum level. Messages below it are
// dropped before formatting. Off suppresses every regular level.
func (c *Context) SetMinLevel(level core.Level) {
	if c == nil {
		return
	}
	c.minLevel = level
}

// Log formats a message into the context buffer and hands it to every
// adapter whose filter accepts it.
//
// Log does nothing when c is nil, has no adapters, no tag names or no
// buffer, when level is below the minimum level, or when format is null.
// A tag without a name resolves to "". Levels outside Trace..Fatal are
// delivered as Unknown. Text longer than the buffer is truncated.
func (c *Context) Log(level core.Level, tag core.Tag, loc core.Location, format core.NullString, args ...interface{}) {
	if c == nil {
		return
	}
	if len(c.Adapters) == 0 {
		return
	}
	if len(c.Tags) == 0 {
		return
	}
	if len(c.Buffer) < 1 {
		return
	}
	if level < c.minLevel {
		return
	}
	if !format.Valid {
		return
	}

	if level >= core.Off || level < core.Trace {
		level = core.Unknown
	}

	size := len(c.Buffer)
	n := formatter.Snprintf(c.Buffer, format.String, args...)
	c.Buffer[size-1] = 0
	if n > size-1 {
		n = size - 1
	}

	msg := core.Message{
		Location: loc,
		Text:     c.Buffer[:n:n],
		Level:    level,
		Tag:      core.Str(c.Tags.Name(tag)),
	}

	for i := range c.Adapters {
		a := &c.Adapters[i]
		if a.Sink == nil {
			continue
		}
		if a.Accepts(&msg) {
			a.Sink(&msg)
		}
	}
}
