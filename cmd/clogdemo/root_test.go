package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Philipp01105/clog/core"
	"github.com/Philipp01105/clog/logger"
)

var lineRE = regexp.MustCompile(`^([A-Z]{3}):([A-Z]+) demo\.go:\d+\(main\.runDemo\) (.*)$`)

type line struct {
	level, tag, text string
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	if logger.CompileMinLevel != core.Trace {
		t.Skip("requires all levels compiled in")
	}

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func splitLines(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

func parseLines(t *testing.T, out string) []line {
	t.Helper()
	var lines []line
	for _, l := range splitLines(out) {
		m := lineRE.FindStringSubmatch(l)
		require.NotNil(t, m, "unexpected line %q", l)
		lines = append(lines, line{m[1], m[2], m[3]})
	}
	return lines
}

func TestDemo_Default(t *testing.T) {
	out, _, err := execute(t)
	require.NoError(t, err)

	lines := parseLines(t, out)
	require.Len(t, lines, 7)
	assert.Equal(t, []line{
		{"ERR", "COMM", "This error message will be printed."},
		{"ERR", "PLUGIN", "This error message will be printed."},
		{"TRC", "PLUGIN", "Now even trace messages will be printed."},
		{"TRC", "PLUGIN", "Integer is 123 and string is blubber"},
		{"DBG", "PLUGIN", "Here is a debug float 2.300000"},
		{"INF", "PLUGIN", "I am some informational hex number 2fca"},
	}, lines[:6])

	assert.Equal(t, "FTL", lines[6].level)
	assert.True(t, strings.HasPrefix(lines[6].text,
		"Something went horribly wrong here (-123, 64). The address of the filter is 0x"), lines[6].text)
}

func TestDemo_FilterFlags(t *testing.T) {
	out, _, err := execute(t, "--filter-level", "trace", "--disable-tag", "PLUGIN")
	require.NoError(t, err)

	assert.Equal(t, []line{
		{"TRC", "COMM", "This message will not be printed due to a low log level."},
		{"ERR", "COMM", "This error message will be printed."},
	}, parseLines(t, out))
}

func TestDemo_MinLevel(t *testing.T) {
	out, _, err := execute(t, "--min-level", "fatal")
	require.NoError(t, err)

	lines := parseLines(t, out)
	require.Len(t, lines, 1)
	assert.Equal(t, "FTL", lines[0].level)
}

func TestDemo_Stats(t *testing.T) {
	_, stderr, err := execute(t, "--stats")
	require.NoError(t, err)

	assert.Contains(t, stderr, "TRC delivered=2 filtered=3\n")
	assert.Contains(t, stderr, "ERR delivered=2 filtered=1\n")
	assert.Contains(t, stderr, "FTL delivered=1 filtered=0\n")
	assert.Contains(t, stderr, "failed=0\n")
}

func TestDemo_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.log")
	out, _, err := execute(t, "--no-color", "--file", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, out, string(data))
}

func TestDemo_JSONBackends(t *testing.T) {
	prev := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	defer zerolog.SetGlobalLevel(prev)

	tests := []struct {
		backend    string
		messageKey string
		firstLevel string
		lastLevel  string
	}{
		{"zap", "msg", "error", "error"},
		{"zerolog", "message", "error", "fatal"},
	}

	for _, tt := range tests {
		t.Run(tt.backend, func(t *testing.T) {
			out, _, err := execute(t, "--backend", tt.backend)
			require.NoError(t, err)

			lines := splitLines(out)
			require.Len(t, lines, 7)

			var first, last map[string]any
			require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
			require.NoError(t, json.Unmarshal([]byte(lines[6]), &last))

			assert.Equal(t, tt.firstLevel, first["level"])
			assert.Equal(t, "This error message will be printed.", first[tt.messageKey])
			assert.Equal(t, "COMM", first["tag"])
			assert.Equal(t, "demo.go", first["file"])
			assert.Equal(t, "main.runDemo", first["func"])
			assert.Equal(t, tt.lastLevel, last["level"])
		})
	}
}

func TestDemo_Logrus(t *testing.T) {
	out, _, err := execute(t, "--backend", "logrus")
	require.NoError(t, err)

	lines := splitLines(out)
	require.Len(t, lines, 7)
	assert.Contains(t, lines[0], "level=error")
	assert.Contains(t, lines[0], "tag=COMM")
	assert.Contains(t, lines[6], "level=fatal")
}

func TestDemo_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
filterLevel: trace
color: false
tags:
  PLUGIN: false
`), 0644))

	out, _, err := execute(t, "--config", path)
	require.NoError(t, err)
	assert.Len(t, parseLines(t, out), 2)

	// flags win over the file
	out, _, err = execute(t, "--config", path, "--filter-level", "error")
	require.NoError(t, err)
	assert.Equal(t, []line{{"ERR", "COMM", "This error message will be printed."}}, parseLines(t, out))
}

func TestDemo_InvalidInput(t *testing.T) {
	tests := [][]string{
		{"--backend", "syslog"},
		{"--min-level", "loud"},
		{"--config", filepath.Join(t.TempDir(), "missing.yaml")},
		{"extra"},
	}

	for _, args := range tests {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			_, _, err := execute(t, args...)
			assert.Error(t, err)
		})
	}
}
