//go:build clog_min_warn

package logger

import "github.com/Philipp01105/clog/core"

// CompileMinLevel keeps Warn and above
const CompileMinLevel = core.Warn
