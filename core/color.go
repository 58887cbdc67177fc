//go:build !clog_nocolor

package core

// ColorEnabled reports whether level colors are compiled in. Build with
// the clog_nocolor tag to strip them.
const ColorEnabled = true
