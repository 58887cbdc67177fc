package logrushandler

import (
	"github.com/sirupsen/logrus"

	"github.com/Philipp01105/clog/core"
	"github.com/Philipp01105/clog/handler"
)

// LogrusHandler delivers messages to a logrus.Logger. Location and tag
// are attached as the fields "file", "line", "func" and "tag".
type LogrusHandler struct {
	l *logrus.Logger
}

// New creates a handler writing to l, or to logrus.StandardLogger when l
// is nil.
func New(l *logrus.Logger) *LogrusHandler {
	if l == nil {
		l = logrus.StandardLogger()
	}
	return &LogrusHandler{l: l}
}

// Handle logs msg through Entry.Log, which never calls the logger's
// ExitFunc, even at fatal level.
func (h *LogrusHandler) Handle(msg *core.Message) {
	lvl := toLogrusLevel(msg.Level)
	if !h.l.IsLevelEnabled(lvl) {
		return
	}

	fields := make(logrus.Fields, 4)
	if msg.Tag.Valid {
		fields["tag"] = msg.Tag.String
	}
	if msg.File.Valid {
		fields["file"] = msg.File.String
	}
	fields["line"] = msg.Line
	if msg.Function.Valid {
		fields["func"] = msg.Function.String
	}
	h.l.WithFields(fields).Log(lvl, string(msg.Text))
}

// Adapter returns an adapter delivering to h. filter may be nil.
func (h *LogrusHandler) Adapter(filter core.Filter) core.Adapter {
	return handler.NewAdapter(h, filter)
}

// Close is a no-op. The logger's output is owned by the caller.
func (h *LogrusHandler) Close() error {
	return nil
}

func toLogrusLevel(level core.Level) logrus.Level {
	switch level {
	case core.Trace:
		return logrus.TraceLevel
	case core.Debug:
		return logrus.DebugLevel
	case core.Info:
		return logrus.InfoLevel
	case core.Warn:
		return logrus.WarnLevel
	case core.Fatal:
		return logrus.FatalLevel
	default:
		return logrus.ErrorLevel
	}
}
