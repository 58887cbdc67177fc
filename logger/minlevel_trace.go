//go:build !clog_min_debug && !clog_min_info && !clog_min_warn && !clog_min_error && !clog_min_fatal && !clog_min_off

package logger

import "github.com/Philipp01105/clog/core"

// CompileMinLevel is the lowest level the call-site methods keep. It is
// selected with the clog_min_* build tags; without one every level is
// compiled in.
const CompileMinLevel = core.Trace
