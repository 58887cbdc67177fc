//go:build clog_min_debug

package logger

import "github.com/Philipp01105/clog/core"

// CompileMinLevel drops Trace calls at compile time
const CompileMinLevel = core.Debug
