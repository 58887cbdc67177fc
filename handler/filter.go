package handler

import (
	"sync"

	"github.com/Philipp01105/clog/core"
)

// LevelTagFilter passes messages at or above a minimum level whose tag is
// not disabled. Tags are matched by display name. Settings may be changed
// while messages are being filtered.
type LevelTagFilter struct {
	mu       sync.RWMutex
	minLevel core.Level
	disabled map[string]struct{}
}

// NewLevelTagFilter creates a filter passing everything at or above
// minLevel, with all tags enabled
func NewLevelTagFilter(minLevel core.Level) *LevelTagFilter {
	return &LevelTagFilter{
		minLevel: minLevel,
		disabled: make(map[string]struct{}),
	}
}

// SetMinLevel changes the minimum level
func (f *LevelTagFilter) SetMinLevel(level core.Level) {
	f.mu.Lock()
	f.minLevel = level
	f.mu.Unlock()
}

// MinLevel returns the minimum level
func (f *LevelTagFilter) MinLevel() core.Level {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.minLevel
}

// EnableTag switches messages tagged name on or off
func (f *LevelTagFilter) EnableTag(name string, enabled bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if enabled {
		delete(f.disabled, name)
	} else {
		f.disabled[name] = struct{}{}
	}
}

// TagEnabled reports whether messages tagged name pass the filter
func (f *LevelTagFilter) TagEnabled(name string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	_, off := f.disabled[name]
	return !off
}

// Filter implements core.Filter
func (f *LevelTagFilter) Filter(msg *core.Message) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if msg.Tag.Valid {
		if _, off := f.disabled[msg.Tag.String]; off {
			return false
		}
	}
	return msg.Level >= f.minLevel
}
