package zaphandler

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Philipp01105/clog/core"
	"github.com/Philipp01105/clog/handler"
)

// ZapHandler delivers messages to a zap.Logger
type ZapHandler struct {
	l *zap.Logger
}

// New creates a handler writing to l. A nil l discards everything.
func New(l *zap.Logger) *ZapHandler {
	if l == nil {
		l = zap.NewNop()
	}
	return &ZapHandler{l: l}
}

// Handle logs msg. msg.Text is copied before zap sees it.
func (h *ZapHandler) Handle(msg *core.Message) {
	ce := h.l.Check(toZapLevel(msg.Level), string(msg.Text))
	if ce == nil {
		return
	}

	fields := make([]zap.Field, 0, 4)
	if msg.Tag.Valid {
		fields = append(fields, zap.String("tag", msg.Tag.String))
	}
	if msg.File.Valid {
		fields = append(fields, zap.String("file", msg.File.String))
	}
	fields = append(fields, zap.Uint("line", msg.Line))
	if msg.Function.Valid {
		fields = append(fields, zap.String("func", msg.Function.String))
	}
	ce.Write(fields...)
}

// Adapter returns an adapter delivering to h. filter may be nil.
func (h *ZapHandler) Adapter(filter core.Filter) core.Adapter {
	return handler.NewAdapter(h, filter)
}

// Close flushes the zap logger
func (h *ZapHandler) Close() error {
	return h.l.Sync()
}

// toZapLevel maps Fatal and Unknown to error level to avoid os.Exit
func toZapLevel(level core.Level) zapcore.Level {
	switch level {
	case core.Trace, core.Debug:
		return zapcore.DebugLevel
	case core.Info:
		return zapcore.InfoLevel
	case core.Warn:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}
