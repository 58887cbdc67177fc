package handler

import (
	"sync/atomic"

	"github.com/Philipp01105/clog/core"
)

const numLevels = int(core.Unknown) + 1

// Stats tracks per-level delivery statistics of an adapter. All methods
// are safe for concurrent use.
type Stats struct {
	delivered [numLevels]uint64
	filtered  [numLevels]uint64
	// failed counts messages a handler could not write
	failed uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

func levelIndex(level core.Level) int {
	if !level.Valid() {
		return int(core.Unknown)
	}
	return int(level)
}

// IncrementDelivered atomically increments the delivered counter for a level
func (s *Stats) IncrementDelivered(level core.Level) {
	atomic.AddUint64(&s.delivered[levelIndex(level)], 1)
}

// IncrementFiltered atomically increments the filtered counter for a level
func (s *Stats) IncrementFiltered(level core.Level) {
	atomic.AddUint64(&s.filtered[levelIndex(level)], 1)
}

// IncrementFailed atomically increments the write failure counter
func (s *Stats) IncrementFailed() {
	atomic.AddUint64(&s.failed, 1)
}

// GetDelivered returns the delivered count for a level
func (s *Stats) GetDelivered(level core.Level) uint64 {
	return atomic.LoadUint64(&s.delivered[levelIndex(level)])
}

// GetFiltered returns the filtered count for a level
func (s *Stats) GetFiltered(level core.Level) uint64 {
	return atomic.LoadUint64(&s.filtered[levelIndex(level)])
}

// GetFailed returns the write failure count
func (s *Stats) GetFailed() uint64 {
	return atomic.LoadUint64(&s.failed)
}

// GetTotalDelivered returns the delivered count across all levels
func (s *Stats) GetTotalDelivered() uint64 {
	var total uint64
	for i := range s.delivered {
		total += atomic.LoadUint64(&s.delivered[i])
	}
	return total
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	for i := 0; i < numLevels; i++ {
		atomic.StoreUint64(&s.delivered[i], 0)
		atomic.StoreUint64(&s.filtered[i], 0)
	}
	atomic.StoreUint64(&s.failed, 0)
}

// Snapshot is a point-in-time copy of Stats. Levels without messages are
// omitted from the maps.
type Snapshot struct {
	Delivered map[core.Level]uint64
	Filtered  map[core.Level]uint64
	Failed    uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	snap := Snapshot{
		Delivered: make(map[core.Level]uint64),
		Filtered:  make(map[core.Level]uint64),
		Failed:    s.GetFailed(),
	}
	for l := core.Trace; l <= core.Unknown; l++ {
		if n := s.GetDelivered(l); n > 0 {
			snap.Delivered[l] = n
		}
		if n := s.GetFiltered(l); n > 0 {
			snap.Filtered[l] = n
		}
	}
	return snap
}

// Counted wraps an adapter so that every message it accepts or rejects is
// counted in stats. The wrapped adapter keeps its filter semantics; a
// missing sink stays missing.
func Counted(a core.Adapter, stats *Stats) core.Adapter {
	if a.Sink == nil || stats == nil {
		return a
	}

	filter := a.Filter
	sink := a.Sink
	return core.Adapter{
		Filter: func(msg *core.Message) bool {
			if filter != nil && !filter(msg) {
				stats.IncrementFiltered(msg.Level)
				return false
			}
			return true
		},
		Sink: func(msg *core.Message) {
			sink(msg)
			stats.IncrementDelivered(msg.Level)
		},
	}
}
