package zerologhandler

import (
	"github.com/rs/zerolog"

	"github.com/Philipp01105/clog/core"
	"github.com/Philipp01105/clog/handler"
)

// ZerologHandler delivers messages to a zerolog.Logger
type ZerologHandler struct {
	l zerolog.Logger
}

// New creates a handler writing to l
func New(l zerolog.Logger) *ZerologHandler {
	return &ZerologHandler{l: l}
}

// Handle logs msg as one event
func (h *ZerologHandler) Handle(msg *core.Message) {
	lvl := toZerologLevel(msg.Level)
	// no Event allocation when the logger drops the level
	if lvl != zerolog.NoLevel && lvl < h.l.GetLevel() {
		return
	}

	ev := h.l.WithLevel(lvl)
	if ev == nil {
		return
	}
	if msg.Tag.Valid {
		ev.Str("tag", msg.Tag.String)
	}
	if msg.File.Valid {
		ev.Str("file", msg.File.String)
	}
	ev.Uint("line", msg.Line)
	if msg.Function.Valid {
		ev.Str("func", msg.Function.String)
	}
	ev.Msg(string(msg.Text))
}

// Adapter returns an adapter delivering to h. filter may be nil.
func (h *ZerologHandler) Adapter(filter core.Filter) core.Adapter {
	return handler.NewAdapter(h, filter)
}

// Close is a no-op; zerolog writes synchronously.
func (h *ZerologHandler) Close() error {
	return nil
}

func toZerologLevel(level core.Level) zerolog.Level {
	switch level {
	case core.Trace:
		return zerolog.TraceLevel
	case core.Debug:
		return zerolog.DebugLevel
	case core.Info:
		return zerolog.InfoLevel
	case core.Warn:
		return zerolog.WarnLevel
	case core.Error:
		return zerolog.ErrorLevel
	case core.Fatal:
		return zerolog.FatalLevel
	default:
		return zerolog.NoLevel
	}
}
