package logrushandler

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Philipp01105/clog/core"
	"github.com/Philipp01105/clog/logger"
)

func testMessage(level core.Level, text string) *core.Message {
	return &core.Message{
		Location: core.Location{File: core.Str("plugin.go"), Line: 88, Function: core.Str("plugin.load")},
		Text:     []byte(text),
		Level:    level,
		Tag:      core.Str("PLUGIN"),
	}
}

func newNullLogger(t *testing.T) (*logrus.Logger, *test.Hook) {
	t.Helper()
	l, hook := test.NewNullLogger()
	l.SetLevel(logrus.TraceLevel)
	l.ExitFunc = func(code int) { t.Fatalf("logger exited with %d", code) }
	return l, hook
}

func TestLogrusHandler_Fields(t *testing.T) {
	l, hook := newNullLogger(t)
	h := New(l)

	h.Handle(testMessage(core.Warn, "slow start"))

	require.Len(t, hook.AllEntries(), 1)
	e := hook.LastEntry()
	assert.Equal(t, logrus.WarnLevel, e.Level)
	assert.Equal(t, "slow start", e.Message)
	assert.Equal(t, "PLUGIN", e.Data["tag"])
	assert.Equal(t, "plugin.go", e.Data["file"])
	assert.Equal(t, uint(88), e.Data["line"])
	assert.Equal(t, "plugin.load", e.Data["func"])
}

func TestLogrusHandler_LevelMapping(t *testing.T) {
	l, hook := newNullLogger(t)
	h := New(l)

	for _, level := range []core.Level{core.Trace, core.Debug, core.Info, core.Warn, core.Error, core.Fatal, core.Unknown} {
		h.Handle(testMessage(level, "x"))
	}

	var got []logrus.Level
	for _, e := range hook.AllEntries() {
		got = append(got, e.Level)
	}
	assert.Equal(t, []logrus.Level{
		logrus.TraceLevel, logrus.DebugLevel, logrus.InfoLevel, logrus.WarnLevel,
		logrus.ErrorLevel, logrus.FatalLevel, logrus.ErrorLevel,
	}, got)
}

func TestLogrusHandler_RespectsLoggerLevel(t *testing.T) {
	l, hook := newNullLogger(t)
	l.SetLevel(logrus.ErrorLevel)
	h := New(l)

	h.Handle(testMessage(core.Warn, "dropped"))
	h.Handle(testMessage(core.Error, "kept"))

	require.Len(t, hook.AllEntries(), 1)
	assert.Equal(t, "kept", hook.LastEntry().Message)
}

func TestLogrusHandler_NullFieldsOmitted(t *testing.T) {
	l, hook := newNullLogger(t)
	h := New(l)

	h.Handle(&core.Message{Text: []byte("bare"), Level: core.Info})

	require.Len(t, hook.AllEntries(), 1)
	data := hook.LastEntry().Data
	assert.NotContains(t, data, "tag")
	assert.NotContains(t, data, "file")
	assert.NotContains(t, data, "func")
	assert.NoError(t, h.Close())
}

func TestLogrusHandler_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	l := logrus.New()
	l.SetOutput(&buf)
	l.SetFormatter(&logrus.JSONFormatter{DisableTimestamp: true})

	ctx := logger.NewBuilder().
		WithAdapters(New(l).Adapter(nil)).
		WithTags(core.TagNames{"PLUGIN"}).
		Build()
	ctx.Log(core.Error, 0, core.Location{File: core.Str("a.go"), Line: 2, Function: core.Str("f")},
		core.Str("load %s failed"), "x.so")

	var m map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &m), buf.String())
	assert.Equal(t, "error", m["level"])
	assert.Equal(t, "load x.so failed", m["msg"])
	assert.Equal(t, "PLUGIN", m["tag"])
	assert.Equal(t, float64(2), m["line"])
}
