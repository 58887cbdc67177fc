package sloghandler

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/Philipp01105/clog/core"
	"github.com/Philipp01105/clog/logger"
)

// SlogHandler implements slog.Handler on top of a logger.Context. The
// record message and its attributes are rendered as
//
//	message key=value group.key=value
//
// and dispatched with the record's source location. Handlers derived with
// WithAttrs or WithGroup share the Context and serialize dispatch through
// one mutex, since a Context is not safe for concurrent use.
type SlogHandler struct {
	mu    *sync.Mutex
	ctx   *logger.Context
	tag   core.Tag
	attrs string
	group string
}

// New creates a slog.Handler dispatching into ctx under tag
func New(ctx *logger.Context, tag core.Tag) *SlogHandler {
	return &SlogHandler{
		mu:  new(sync.Mutex),
		ctx: ctx,
		tag: tag,
	}
}

var bufPool = sync.Pool{
	New: func() interface{} {
		b := make([]byte, 0, 256)
		return &b
	},
}

// Enabled reports whether the handler handles records at the given level.
// It applies the same gates Log does, so a Context with one sink-less
// adapter still reaches its other adapters.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	c := s.ctx
	if c == nil || len(c.Adapters) == 0 || len(c.Tags) == 0 || len(c.Buffer) == 0 {
		return false
	}
	return slogLevelToCore(level) >= c.MinLevel()
}

// Handle renders the record and dispatches it
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	bp := bufPool.Get().(*[]byte)
	buf := append((*bp)[:0], record.Message...)
	buf = append(buf, s.attrs...)
	record.Attrs(func(a slog.Attr) bool {
		buf = appendAttr(buf, s.group, a)
		return true
	})

	s.mu.Lock()
	s.ctx.Log(slogLevelToCore(record.Level), s.tag, core.LocationFromPC(record.PC), core.Str("%s"), buf)
	s.mu.Unlock()

	*bp = buf
	bufPool.Put(bp)
	return nil
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return s
	}
	buf := []byte(s.attrs)
	for _, a := range attrs {
		buf = appendAttr(buf, s.group, a)
	}

	clone := *s
	clone.attrs = string(buf)
	return &clone
}

// WithGroup returns a new SlogHandler with the given group name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	clone := *s
	if s.group != "" {
		clone.group = s.group + "." + name
	} else {
		clone.group = name
	}
	return &clone
}

// slogLevelToCore converts a slog.Level to a core.Level.
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.Error
	case level >= slog.LevelWarn:
		return core.Warn
	case level >= slog.LevelInfo:
		return core.Info
	case level >= slog.LevelDebug:
		return core.Debug
	default:
		return core.Trace
	}
}

// appendAttr appends " key=value", prefixing the key with group. Group
// values are flattened; empty attributes are skipped.
func appendAttr(buf []byte, group string, a slog.Attr) []byte {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return buf
	}

	key := a.Key
	if group != "" && key != "" {
		key = group + "." + key
	} else if key == "" {
		key = group
	}

	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			buf = appendAttr(buf, key, ga)
		}
		return buf
	}

	buf = append(buf, ' ')
	buf = append(buf, key...)
	buf = append(buf, '=')
	return appendValue(buf, a.Value)
}

func appendValue(buf []byte, v slog.Value) []byte {
	switch v.Kind() {
	case slog.KindString:
		s := v.String()
		if needsQuoting(s) {
			return strconv.AppendQuote(buf, s)
		}
		return append(buf, s...)
	case slog.KindInt64:
		return strconv.AppendInt(buf, v.Int64(), 10)
	case slog.KindUint64:
		return strconv.AppendUint(buf, v.Uint64(), 10)
	case slog.KindFloat64:
		return strconv.AppendFloat(buf, v.Float64(), 'g', -1, 64)
	case slog.KindBool:
		return strconv.AppendBool(buf, v.Bool())
	default:
		s := v.String()
		if needsQuoting(s) {
			return strconv.AppendQuote(buf, s)
		}
		return append(buf, s...)
	}
}

func needsQuoting(s string) bool {
	if s == "" {
		return true
	}
	return strings.ContainsAny(s, " =\"\t\n")
}
