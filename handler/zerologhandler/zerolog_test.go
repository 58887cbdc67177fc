package zerologhandler

import (
	"bufio"
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Philipp01105/clog/core"
	"github.com/Philipp01105/clog/logger"
)

func testMessage(level core.Level, text string) *core.Message {
	return &core.Message{
		Location: core.Location{File: core.Str("net.go"), Line: 7, Function: core.Str("net.dial")},
		Text:     []byte(text),
		Level:    level,
		Tag:      core.Str("NET"),
	}
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	sc := bufio.NewScanner(buf)
	for sc.Scan() {
		var m map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &m), sc.Text())
		out = append(out, m)
	}
	return out
}

func TestZerologHandler_JSON(t *testing.T) {
	var buf bytes.Buffer
	h := New(zerolog.New(&buf))

	h.Handle(testMessage(core.Error, "dial failed"))

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	m := lines[0]
	assert.Equal(t, "error", m["level"])
	assert.Equal(t, "dial failed", m["message"])
	assert.Equal(t, "NET", m["tag"])
	assert.Equal(t, "net.go", m["file"])
	assert.Equal(t, float64(7), m["line"])
	assert.Equal(t, "net.dial", m["func"])
}

func TestZerologHandler_LevelMapping(t *testing.T) {
	prev := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	defer zerolog.SetGlobalLevel(prev)

	var buf bytes.Buffer
	h := New(zerolog.New(&buf).Level(zerolog.TraceLevel))

	for _, level := range []core.Level{core.Trace, core.Debug, core.Info, core.Warn, core.Error, core.Fatal, core.Unknown} {
		h.Handle(testMessage(level, "x"))
	}

	var got []any
	for _, m := range decodeLines(t, &buf) {
		got = append(got, m["level"])
	}
	assert.Equal(t, []any{"trace", "debug", "info", "warn", "error", "fatal", nil}, got)
}

func TestZerologHandler_RespectsLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	h := New(zerolog.New(&buf).Level(zerolog.WarnLevel))

	h.Handle(testMessage(core.Info, "dropped"))
	h.Handle(testMessage(core.Warn, "kept"))

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "kept", lines[0]["message"])
}

func TestZerologHandler_NullFieldsOmitted(t *testing.T) {
	var buf bytes.Buffer
	h := New(zerolog.New(&buf))

	h.Handle(&core.Message{Text: []byte("bare"), Level: core.Info})

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.NotContains(t, lines[0], "tag")
	assert.NotContains(t, lines[0], "file")
	assert.NotContains(t, lines[0], "func")
	assert.NoError(t, h.Close())
}

func TestZerologHandler_WithContext(t *testing.T) {
	var buf bytes.Buffer
	h := New(zerolog.New(&buf))

	ctx := logger.NewBuilder().
		WithAdapters(h.Adapter(nil)).
		WithTags(core.TagNames{"NET"}).
		Build()
	ctx.Log(core.Info, 0, core.Location{File: core.Str("a.go"), Line: 1, Function: core.Str("f")},
		core.Str("peers=%d"), 3)

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "peers=3", lines[0]["message"])
	assert.Equal(t, "NET", lines[0]["tag"])
}
