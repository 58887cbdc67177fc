//go:build clog_min_error

package logger

import "github.com/Philipp01105/clog/core"

// CompileMinLevel keeps Error and Fatal
const CompileMinLevel = core.Error
