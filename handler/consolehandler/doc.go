// Package consolehandler writes messages as formatted lines to a terminal
// or any io.Writer (default: os.Stdout).
//
// Each line is rendered with formatter.FormatMessage into a buffer owned
// by the handler and written with a single Write call under a mutex.
// Colors are used when the writer is a terminal, unless configured
// otherwise.
package consolehandler
