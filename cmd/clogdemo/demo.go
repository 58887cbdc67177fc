package main

import (
	"github.com/Philipp01105/clog/core"
	"github.com/Philipp01105/clog/handler"
	"github.com/Philipp01105/clog/logger"
)

const (
	Comm core.Tag = iota
	Plugin
)

var tagNames = core.TagNames{"COMM", "PLUGIN"}

// runDemo logs the scripted messages. With the default filter only errors
// pass at first; later COMM is switched off and the filter opened to trace.
func runDemo(ctx *logger.Context, filter *handler.LevelTagFilter) {
	ctx.Trace(Comm, "This message will not be printed due to a low log level.")
	ctx.Error(Comm, "This error message will be printed.")

	ctx.Trace(Plugin, "This message will not be printed due to a low log level.")
	ctx.Error(Plugin, "This error message will be printed.")

	filter.EnableTag(tagNames.Name(Comm), false)
	ctx.Error(Comm, "Now this error message will not be printed as the COMM module is disabled.")

	filter.SetMinLevel(core.Trace)
	ctx.Trace(Plugin, "Now even trace messages will be printed.")
	ctx.Trace(Comm, "... but the COMM module is still disabled.")

	ctx.Trace(Plugin, "Integer is %d and string is %s", 123, "blubber")
	ctx.Debug(Plugin, "Here is a debug float %f", float32(2.3))
	ctx.Info(Plugin, "I am some informational hex number %x", uint(12234))
	ctx.Fatal(Plugin, "Something went horribly wrong here (%d, %x). The address of the filter is %p",
		-123, uint(100), filter)
}
