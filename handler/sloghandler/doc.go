// Package sloghandler lets code written against log/slog log through a
// logger.Context. Records become ordinary messages: the message text and
// attributes are rendered as one line of text and the record's source
// location is kept.
package sloghandler
