//go:build clog_nocolor

package core

// ColorEnabled reports whether level colors are compiled in.
const ColorEnabled = false
