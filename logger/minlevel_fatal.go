//go:build clog_min_fatal

package logger

import "github.com/Philipp01105/clog/core"

// CompileMinLevel keeps only Fatal
const CompileMinLevel = core.Fatal
