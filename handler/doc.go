// Package handler provides the Handler interface and the pieces shared by
// the built-in destinations.
//
// A Handler is a sink with a Close method; NewAdapter turns it into a
// core.Adapter that can be added to a logger.Context. Filters are plain
// functions, LevelTagFilter being the one most programs need: a minimum
// level plus per-tag switches that may be flipped at run time.
//
// Built-in handlers live in subpackages:
//
//   - consolehandler writes formatted lines to a terminal or any io.Writer.
//   - filehandler appends to a file and rotates it by size.
//   - multihandler fans one sink out to several.
//   - sloghandler goes the other way and feeds log/slog records into a
//     Context.
//   - zaphandler, zerologhandler and logrushandler forward messages to
//     an existing zap, zerolog or logrus logger.
//
// Counted wraps any adapter and records delivered and filtered messages
// per level in a Stats value, which handlers also use to count failed
// writes.
package handler
