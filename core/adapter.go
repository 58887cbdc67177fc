package core

// Tag classifies the origin of a message. It indexes a TagNames table.
type Tag uint

// TagNames maps tags to their display names. Callers usually declare it
// next to an iota const block:
//
//	const (
//		Comm core.Tag = iota
//		Plugin
//	)
//
//	var Tags = core.TagNames{"COMM", "PLUGIN"}
type TagNames []string

// Name returns the display name of tag, or "" when tag is out of range
func (t TagNames) Name(tag Tag) string {
	if uint64(tag) >= uint64(len(t)) {
		return ""
	}
	return t[tag]
}

// Filter decides whether a message is passed to the adapter's sink
type Filter func(msg *Message) bool

// Sink consumes a message, e.g. by printing it. The message and its Text
// are only valid for the duration of the call.
type Sink func(msg *Message)

// Adapter pairs an optional Filter with a required Sink and represents
// one logging destination. A nil Filter accepts every message.
type Adapter struct {
	Filter Filter
	Sink   Sink
}

// Accepts reports whether the adapter's filter lets msg through
func (a Adapter) Accepts(msg *Message) bool {
	return a.Filter == nil || a.Filter(msg)
}
