package logger

import (
	"github.com/Philipp01105/clog/core"
)

// Builder provides a fluent API for building Context instances
type Builder struct {
	adapters   []core.Adapter
	tags       core.TagNames
	buffer     []byte
	bufferSize int
	minLevel   core.Level
}

// NewBuilder creates a new context builder
func NewBuilder() *Builder {
	return &Builder{
		bufferSize: DefaultBufferSize,
		minLevel:   core.Trace,
	}
}

// WithAdapters appends adapters. Fan-out follows the order they were added.
func (b *Builder) WithAdapters(adapters ...core.Adapter) *Builder {
	b.adapters = append(b.adapters, adapters...)
	return b
}

// WithTags sets the tag name table
func (b *Builder) WithTags(tags core.TagNames) *Builder {
	b.tags = tags
	return b
}

// WithBuffer makes the context format into buf. The caller keeps
// ownership; it must not be shared with another Context.
func (b *Builder) WithBuffer(buf []byte) *Builder {
	b.buffer = buf
	return b
}

// WithBufferSize sets the size of the buffer allocated by Build. It is
// ignored when a buffer was supplied with WithBuffer.
func (b *Builder) WithBufferSize(size int) *Builder {
	b.bufferSize = size
	return b
}

// WithMinLevel sets the initial runtime minimum level
func (b *Builder) WithMinLevel(level core.Level) *Builder {
	b.minLevel = level
	return b
}

// Build creates the Context. The adapter slice is copied so the builder
// can be reused.
func (b *Builder) Build() *Context {
	buf := b.buffer
	if buf == nil && b.bufferSize > 0 {
		buf = make([]byte, b.bufferSize)
	}

	adapters := make([]core.Adapter, len(b.adapters))
	copy(adapters, b.adapters)

	return &Context{
		Adapters: adapters,
		Tags:     b.tags,
		Buffer:   buf,
		minLevel: b.minLevel,
	}
}
