package formatter

import (
	"github.com/Philipp01105/clog/core"
)

const (
	colorHeaderFormat = "%s%s:%s\x1b[0m \x1b[90m%s:%d(%s)\x1b[0m"
	plainHeaderFormat = "%s%s:%s %s:%d(%s)"
	messageFormat     = " %s\n"

	// nullText is printed for absent strings
	nullText = "(null)"
)

// Config holds formatter configuration
type Config struct {
	// Color enables ANSI level colors in the line header
	Color bool
}

// TextFormatter renders messages as a single human-readable line:
//
//	<LVL>:<TAG> <File>:<Line>(<Function>) <Text>
type TextFormatter struct {
	Config
	headerFormat string
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	f := &TextFormatter{Config: cfg, headerFormat: plainHeaderFormat}
	if cfg.Color {
		f.headerFormat = colorHeaderFormat
	}
	return f
}

var std = NewTextFormatter(Config{Color: core.ColorEnabled})

// FormatLineHeader renders the line header of msg into buf using the
// build's default color setting. See TextFormatter.FormatLineHeader.
func FormatLineHeader(buf []byte, msg *core.Message) int {
	return std.FormatLineHeader(buf, msg)
}

// FormatMessage renders a complete line of msg into buf using the build's
// default color setting. See TextFormatter.FormatMessage.
func FormatMessage(buf []byte, msg *core.Message) int {
	return std.FormatMessage(buf, msg)
}

// Format implements Formatter by rendering the complete line
func (f *TextFormatter) Format(buf []byte, msg *core.Message) int {
	return f.FormatMessage(buf, msg)
}

// FormatLineHeader renders level, tag and location of msg into buf. It is
// a no-op returning 0 when buf is empty or msg is nil.
//
// The returned length is what the header needed, clamped to len(buf). The
// buffer always ends up holding a zero-terminated string; on truncation
// the terminator occupies the last byte.
func (f *TextFormatter) FormatLineHeader(buf []byte, msg *core.Message) int {
	if len(buf) < 1 || msg == nil {
		return 0
	}

	color := ""
	if f.Color {
		color = core.ANSIColor(msg.Level)
	}

	n := Snprintf(buf, f.headerFormat,
		color,
		core.LevelName(msg.Level),
		msg.Tag.Or(nullText),
		msg.File.Or(nullText),
		msg.Line,
		msg.Function.Or(nullText),
	)

	if n > len(buf) {
		n = len(buf)
	}
	return n
}

// FormatMessage renders the line header followed by " <text>\n" into buf.
// buf must hold at least two bytes, otherwise the call is a no-op
// returning 0.
//
// Whenever the header leaves room for more, the last two bytes of buf are
// overwritten with '\n' and the terminating zero, so a truncated line
// still ends with a newline.
func (f *TextFormatter) FormatMessage(buf []byte, msg *core.Message) int {
	if len(buf) < 2 || msg == nil {
		return 0
	}

	size := len(buf)
	used := f.FormatLineHeader(buf, msg)
	if used >= size {
		return size
	}

	var text interface{} = nullText
	if msg.Text != nil {
		text = msg.Text
	}

	n := used + Snprintf(buf[used:], messageFormat, text)

	buf[size-2] = '\n'
	buf[size-1] = 0

	if n > size {
		n = size
	}
	return n
}
