//go:build clog_min_info

package logger

import "github.com/Philipp01105/clog/core"

// CompileMinLevel drops Trace and Debug calls at compile time
const CompileMinLevel = core.Info
