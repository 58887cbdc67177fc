package multihandler

import (
	"go.uber.org/multierr"

	"github.com/Philipp01105/clog/core"
	"github.com/Philipp01105/clog/handler"
)

// Tee returns a sink calling every non-nil sink in order
func Tee(sinks ...core.Sink) core.Sink {
	list := make([]core.Sink, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			list = append(list, s)
		}
	}
	return func(msg *core.Message) {
		for _, s := range list {
			s(msg)
		}
	}
}

// MultiHandler sends messages to multiple handlers
type MultiHandler struct {
	handlers []handler.Handler
}

// NewMultiHandler creates a new multi-handler
func NewMultiHandler(handlers ...handler.Handler) *MultiHandler {
	return &MultiHandler{handlers: handlers}
}

// Handle passes msg to all handlers in order
func (h *MultiHandler) Handle(msg *core.Message) {
	for _, child := range h.handlers {
		child.Handle(msg)
	}
}

// Adapter returns an adapter delivering to all handlers. filter may be nil.
func (h *MultiHandler) Adapter(filter core.Filter) core.Adapter {
	return handler.NewAdapter(h, filter)
}

// Close closes all handlers and returns every error encountered
func (h *MultiHandler) Close() error {
	var err error
	for _, child := range h.handlers {
		err = multierr.Append(err, child.Close())
	}
	return err
}
