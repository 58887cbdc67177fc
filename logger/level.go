package logger

import (
	"github.com/Philipp01105/clog/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	TraceLevel   = core.Trace
	DebugLevel   = core.Debug
	InfoLevel    = core.Info
	WarnLevel    = core.Warn
	ErrorLevel   = core.Error
	FatalLevel   = core.Fatal
	OffLevel     = core.Off
	UnknownLevel = core.Unknown
)

// Enabled reports whether a message at level would pass both the
// compile-time and the runtime minimum level of c
func (c *Context) Enabled(level core.Level) bool {
	return level >= CompileMinLevel && level >= c.MinLevel()
}

// Trace logs a trace message with the caller's location
func (c *Context) Trace(tag core.Tag, format string, args ...interface{}) {
	if core.Trace < CompileMinLevel || core.Trace < c.MinLevel() {
		return
	}
	c.Log(core.Trace, tag, core.Caller(1), core.Str(format), args...)
}

// Debug logs a debug message with the caller's location
func (c *Context) Debug(tag core.Tag, format string, args ...interface{}) {
	if core.Debug < CompileMinLevel || core.Debug < c.MinLevel() {
		return
	}
	c.Log(core.Debug, tag, core.Caller(1), core.Str(format), args...)
}

// Info logs an info message with the caller's location
func (c *Context) Info(tag core.Tag, format string, args ...interface{}) {
	if core.Info < CompileMinLevel || core.Info < c.MinLevel() {
		return
	}
	c.Log(core.Info, tag, core.Caller(1), core.Str(format), args...)
}

// Warn logs a warning message with the caller's location
func (c *Context) Warn(tag core.Tag, format string, args ...interface{}) {
	if core.Warn < CompileMinLevel || core.Warn < c.MinLevel() {
		return
	}
	c.Log(core.Warn, tag, core.Caller(1), core.Str(format), args...)
}

// Error logs an error message with the caller's location
func (c *Context) Error(tag core.Tag, format string, args ...interface{}) {
	if core.Error < CompileMinLevel || core.Error < c.MinLevel() {
		return
	}
	c.Log(core.Error, tag, core.Caller(1), core.Str(format), args...)
}

// Fatal logs a fatal message with the caller's location. It does not
// terminate the program.
func (c *Context) Fatal(tag core.Tag, format string, args ...interface{}) {
	if core.Fatal < CompileMinLevel || core.Fatal < c.MinLevel() {
		return
	}
	c.Log(core.Fatal, tag, core.Caller(1), core.Str(format), args...)
}

// Message logs at an arbitrary level with the caller's location
func (c *Context) Message(level core.Level, tag core.Tag, format string, args ...interface{}) {
	if level < CompileMinLevel || level < c.MinLevel() {
		return
	}
	c.Log(level, tag, core.Caller(1), core.Str(format), args...)
}
