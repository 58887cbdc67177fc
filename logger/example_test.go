package logger_test

import (
	"fmt"

	"github.com/Philipp01105/clog/core"
	"github.com/Philipp01105/clog/logger"
)

const (
	Comm core.Tag = iota
	Plugin
)

var tags = core.TagNames{"COMM", "PLUGIN"}

func printText(msg *core.Message) {
	fmt.Printf("%s:%s %s\n", msg.Level, msg.Tag.String, msg.Text)
}

// Build a Context with one adapter that prints level, tag and text.
func ExampleNewBuilder() {
	log := logger.NewBuilder().
		WithAdapters(core.Adapter{Sink: printText}).
		WithTags(tags).
		WithMinLevel(core.Info).
		Build()

	log.Debug(Comm, "not shown")
	log.Info(Comm, "connected to %s", "10.0.0.1")
	log.Error(Plugin, "plugin %d crashed", 3)

	// Output:
	// INF:COMM connected to 10.0.0.1
	// ERR:PLUGIN plugin 3 crashed
}

// Filters decide per adapter whether a message reaches the sink.
func ExampleContext_Log() {
	onlyPlugin := func(msg *core.Message) bool { return msg.Tag.String == "PLUGIN" }

	log := &logger.Context{
		Adapters: []core.Adapter{{Filter: onlyPlugin, Sink: printText}},
		Tags:     tags,
		Buffer:   make([]byte, 16),
	}

	log.Log(core.Warn, Comm, core.Location{}, core.Str("dropped"))
	log.Log(core.Warn, Plugin, core.Location{}, core.Str("text longer than the buffer"))

	// Output:
	// WRN:PLUGIN text longer tha
}

func ExampleContext_SetMinLevel() {
	log := logger.NewBuilder().
		WithAdapters(core.Adapter{Sink: printText}).
		WithTags(tags).
		Build()

	log.SetMinLevel(core.Off)
	log.Fatal(Comm, "silenced")

	log.SetMinLevel(core.Warn)
	log.Warn(Comm, "visible again")

	// Output:
	// WRN:COMM visible again
}
