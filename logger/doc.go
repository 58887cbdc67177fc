// Package logger dispatches log messages to adapters. Most users only
// need this package and core.
//
// A Context holds the adapters, the tag name table, the runtime minimum
// level and one formatting buffer. Every message is formatted into that
// buffer and handed to the adapters in order; an adapter's filter decides
// whether its sink sees the message. Nothing is allocated per message.
//
//	const (
//		Comm core.Tag = iota
//		Plugin
//	)
//
//	var tags = core.TagNames{"COMM", "PLUGIN"}
//
//	log := logger.NewBuilder().
//	    WithAdapters(console.Adapter()).
//	    WithTags(tags).
//	    WithBufferSize(200).
//	    Build()
//
//	log.Info(Comm, "connected to %s", addr)
//
// The per-level methods check the compile-time minimum level
// (CompileMinLevel, chosen with the clog_min_* build tags) and the
// runtime minimum level before they capture the caller's location, so a
// filtered-out call costs two integer comparisons. Log is the underlying
// entry point and can be used without them.
//
// Filters and sinks must not keep msg.Text after they return: the next
// message overwrites it. A Context is not safe for concurrent use.
package logger
