package core

import (
	"fmt"
	"strings"
)

// Level represents the severity level of a log message
type Level int

const (
	// Trace for detailed information on a very specific topic
	Trace Level = iota
	// Debug for information that helps developers understand the context
	Debug
	// Info for important information
	Info
	// Warn for something the user should be aware of
	Warn
	// Error for failures the system can still cope with
	Error
	// Fatal for failures the system cannot recover from
	Fatal
	// Off is only valid as a minimum level and turns logging off.
	Off
	// Unknown replaces out-of-range levels. Never log with it directly.
	Unknown
)

var levelNames = [...]string{
	Trace:   "TRC",
	Debug:   "DBG",
	Info:    "INF",
	Warn:    "WRN",
	Error:   "ERR",
	Fatal:   "FTL",
	Off:     "OFF",
	Unknown: "UKN",
}

var levelColors = [...]string{
	Trace:   "\x1b[94m",
	Debug:   "\x1b[36m",
	Info:    "\x1b[32m",
	Warn:    "\x1b[33m",
	Error:   "\x1b[31m",
	Fatal:   "\x1b[35m",
	Off:     "\x1b[94m",
	Unknown: "\x1b[35m",
}

// Valid reports whether l names one of the declared levels, Off and
// Unknown included.
func (l Level) Valid() bool {
	return l >= Trace && l <= Unknown
}

// String returns the three letter name of the level
func (l Level) String() string {
	return LevelName(l)
}

// LevelName returns the display name of l. Any value outside the declared
// range yields the name of Unknown.
func LevelName(l Level) string {
	if !l.Valid() {
		return levelNames[Unknown]
	}
	return levelNames[l]
}

// LevelColor returns the ANSI escape sequence used for l, or the empty
// string when color output is compiled out (see ColorEnabled).
func LevelColor(l Level) string {
	if !ColorEnabled {
		return ""
	}
	return ANSIColor(l)
}

// ANSIColor returns the ANSI escape sequence for l regardless of the
// build-time color setting. Out-of-range values map to Unknown.
func ANSIColor(l Level) string {
	if !l.Valid() {
		return levelColors[Unknown]
	}
	return levelColors[l]
}

// ParseLevel converts a string to a Level. Both the three letter display
// names and the long names are accepted, case-insensitively; "none" is an
// alias for Off.
func ParseLevel(s string) (Level, error) {
	ls := strings.ToUpper(strings.TrimSpace(s))

	for lvl := Trace; lvl <= Off; lvl++ {
		if levelNames[lvl] == ls {
			return lvl, nil
		}
	}

	switch ls {
	case "TRACE":
		return Trace, nil
	case "DEBUG":
		return Debug, nil
	case "INFO":
		return Info, nil
	case "WARN", "WARNING":
		return Warn, nil
	case "ERROR":
		return Error, nil
	case "FATAL":
		return Fatal, nil
	case "NONE":
		return Off, nil
	}

	return Unknown, fmt.Errorf("invalid level %q", s)
}
