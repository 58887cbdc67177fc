package logger

import (
	"github.com/stretchr/testify/mock"

	"github.com/Philipp01105/clog/core"
)

// MockAdapter records filter and sink calls
type MockAdapter struct {
	mock.Mock
}

func (m *MockAdapter) Filter(msg *core.Message) bool {
	return m.Called(msg).Bool(0)
}

func (m *MockAdapter) Sink(msg *core.Message) {
	m.Called(msg)
}

// Adapter returns an adapter backed by both mocked methods
func (m *MockAdapter) Adapter() core.Adapter {
	return core.Adapter{Filter: m.Filter, Sink: m.Sink}
}

type expected struct {
	file     core.NullString
	line     uint
	function core.NullString
	text     string
	level    core.Level
	tag      string
}

// messageIs matches a message at the time of the call, before the buffer
// is reused.
func messageIs(want expected) interface{} {
	return mock.MatchedBy(func(msg *core.Message) bool {
		return msg.File == want.file &&
			msg.Line == want.line &&
			msg.Function == want.function &&
			string(msg.Text) == want.text &&
			msg.Level == want.level &&
			msg.Tag == core.Str(want.tag)
	})
}

func textIs(text string) interface{} {
	return mock.MatchedBy(func(msg *core.Message) bool {
		return string(msg.Text) == text
	})
}
