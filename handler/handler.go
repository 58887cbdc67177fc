package handler

import (
	"github.com/Philipp01105/clog/core"
)

// Handler defines the interface for log destinations
type Handler interface {
	// Handle consumes a message. It must not keep msg.Text after it
	// returns.
	Handle(msg *core.Message)

	// Close flushes the destination and releases resources
	Close() error
}

// NewAdapter returns an adapter delivering to h. filter may be nil.
func NewAdapter(h Handler, filter core.Filter) core.Adapter {
	return core.Adapter{Filter: filter, Sink: h.Handle}
}
