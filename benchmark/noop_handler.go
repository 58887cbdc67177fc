package benchmark

import (
	"github.com/Philipp01105/clog/core"
	"github.com/Philipp01105/clog/handler"
)

// noopHandler touches the text and drops the message, measuring dispatch
// without formatting or I/O
type noopHandler struct {
	n int
}

func newNoopHandler() *noopHandler {
	return &noopHandler{}
}

func (h *noopHandler) Handle(msg *core.Message) {
	h.n += len(msg.Text)
}

func (h *noopHandler) Close() error {
	return nil
}

var _ handler.Handler = (*noopHandler)(nil)
