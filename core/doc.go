// Package core defines the shared types used across clog.
//
// It provides the Level type with its display names and terminal colors,
// the Message type that represents a single dispatched log event, the
// Tag/TagNames pair used to classify messages by origin, and the
// Filter/Sink/Adapter contract implemented by every logging backend.
//
// A Message is built fresh by the dispatcher for every call and handed to
// each adapter by pointer. Its Text field is a view into the dispatching
// context's shared formatting buffer, so it is only valid while the Filter
// or Sink is running. A sink that needs the text afterwards must copy it,
// e.g. with string(m.Text).
//
// Go strings cannot be nil, so optional text (file, function, tag, format
// string) is carried as NullString, in the same way database/sql models
// nullable columns. Formatters render a null NullString as "(null)".
package core
