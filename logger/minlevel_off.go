//go:build clog_min_off

package logger

import "github.com/Philipp01105/clog/core"

// CompileMinLevel disables every call-site method
const CompileMinLevel = core.Off
