package slotarena

import (
	"sync/atomic"
)

// MetricsCollector defines an interface for collecting arena metrics.
// Implement this interface to integrate with monitoring systems; the
// promcollector package provides a Prometheus implementation.
//
// Collectors may be shared between arenas and must be safe for concurrent
// use. Calls happen synchronously on the arena's hot path, so implementations
// should be cheap.
type MetricsCollector interface {
	// RecordInsert is called after each successful insert.
	// reused is true when the slot came from the free list.
	RecordInsert(reused bool)

	// RecordInsertFailure is called when an insert is rejected.
	RecordInsertFailure(err error)

	// RecordRemove is called after each successful removal, including
	// removals performed by Retain.
	RecordRemove()

	// RecordTombstone is called when a slot is retired because its version
	// cannot advance.
	RecordTombstone(index int)

	// RecordGrow is called after the slot table is reallocated.
	RecordGrow(oldCap, newCap int, bytes int64)

	// RecordClear is called after the arena is cleared.
	RecordClear(slots int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordInsert(bool)          {}
func (NoopMetricsCollector) RecordInsertFailure(error)  {}
func (NoopMetricsCollector) RecordRemove()              {}
func (NoopMetricsCollector) RecordTombstone(int)        {}
func (NoopMetricsCollector) RecordGrow(int, int, int64) {}
func (NoopMetricsCollector) RecordClear(int)            {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	InsertCount    atomic.Int64
	ReuseCount     atomic.Int64
	InsertFailures atomic.Int64
	RemoveCount    atomic.Int64
	TombstoneCount atomic.Int64
	GrowCount      atomic.Int64
	GrowBytes      atomic.Int64
	ClearCount     atomic.Int64
	ClearedSlots   atomic.Int64
}

// RecordInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInsert(reused bool) {
	b.InsertCount.Add(1)
	if reused {
		b.ReuseCount.Add(1)
	}
}

// RecordInsertFailure implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInsertFailure(error) {
	b.InsertFailures.Add(1)
}

// RecordRemove implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRemove() {
	b.RemoveCount.Add(1)
}

// RecordTombstone implements MetricsCollector.
func (b *BasicMetricsCollector) RecordTombstone(int) {
	b.TombstoneCount.Add(1)
}

// RecordGrow implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGrow(_, _ int, bytes int64) {
	b.GrowCount.Add(1)
	b.GrowBytes.Add(bytes)
}

// RecordClear implements MetricsCollector.
func (b *BasicMetricsCollector) RecordClear(slots int) {
	b.ClearCount.Add(1)
	b.ClearedSlots.Add(int64(slots))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		InsertCount:    b.InsertCount.Load(),
		ReuseCount:     b.ReuseCount.Load(),
		InsertFailures: b.InsertFailures.Load(),
		RemoveCount:    b.RemoveCount.Load(),
		TombstoneCount: b.TombstoneCount.Load(),
		GrowCount:      b.GrowCount.Load(),
		GrowBytes:      b.GrowBytes.Load(),
		ClearCount:     b.ClearCount.Load(),
		ClearedSlots:   b.ClearedSlots.Load(),
		ReuseRatio:     b.reuseRatio(),
	}
}

func (b *BasicMetricsCollector) reuseRatio() float64 {
	count := b.InsertCount.Load()
	if count == 0 {
		return 0
	}
	return float64(b.ReuseCount.Load()) / float64(count)
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	InsertCount    int64
	ReuseCount     int64
	InsertFailures int64
	RemoveCount    int64
	TombstoneCount int64
	GrowCount      int64
	GrowBytes      int64
	ClearCount     int64
	ClearedSlots   int64
	ReuseRatio     float64 // fraction of inserts served by the free list
}
