package core

import (
	"path/filepath"
	"runtime"
	"strings"
)

// NullString is a string that may be absent. The zero value is null.
type NullString struct {
	String string
	Valid  bool
}

// Str returns a valid NullString holding s
func Str(s string) NullString {
	return NullString{String: s, Valid: true}
}

// Or returns the string, or def when ns is null
func (ns NullString) Or(def string) string {
	if !ns.Valid {
		return def
	}
	return ns.String
}

// Location identifies the place in the source that produced a message
type Location struct {
	File     NullString
	Line     uint
	Function NullString
}

// Message is the read-only view of one log event handed to filters and
// sinks. Text borrows the dispatching context's buffer and must not be
// retained after the call returns; a nil Text is a null message.
type Message struct {
	Location
	Text  []byte
	Level Level
	Tag   NullString
}

// Caller returns the location of the function that invoked the function
// calling Caller, skipping skip additional frames. Caller(0) reports the
// direct caller of Caller.
func Caller(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Location{}
	}

	loc := Location{
		File: Str(filepath.Base(file)),
		Line: uint(line),
	}
	if fn := runtime.FuncForPC(pc); fn != nil {
		loc.Function = Str(shortFuncName(fn.Name()))
	}
	return loc
}

// LocationFromPC returns the location of the program counter pc, as
// recorded by runtime.Callers. A zero pc yields an empty Location.
func LocationFromPC(pc uintptr) Location {
	if pc == 0 {
		return Location{}
	}
	frame, _ := runtime.CallersFrames([]uintptr{pc}).Next()
	if frame.File == "" {
		return Location{}
	}

	loc := Location{
		File: Str(filepath.Base(frame.File)),
		Line: uint(frame.Line),
	}
	if frame.Function != "" {
		loc.Function = Str(shortFuncName(frame.Function))
	}
	return loc
}

// shortFuncName strips the import path, keeping "pkg.Func" or
// "pkg.(*T).Method".
func shortFuncName(name string) string {
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		return name[i+1:]
	}
	return name
}
