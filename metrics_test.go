package slotarena

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/slotarena/key"
	"github.com/hupe1980/slotarena/version"
)

func TestBasicMetricsCollector(t *testing.T) {
	m := &BasicMetricsCollector{}
	a := NewDefault[string](WithMetricsCollector(m))

	k1 := a.Insert("a")
	a.Insert("b")
	a.Remove(k1)
	a.Insert("c")
	a.Retain(func(key.Default, string) bool { return false })
	a.Clear()

	stats := m.GetStats()
	assert.Equal(t, int64(3), stats.InsertCount)
	assert.Equal(t, int64(1), stats.ReuseCount)
	assert.Equal(t, int64(3), stats.RemoveCount)
	assert.Equal(t, int64(1), stats.GrowCount)
	assert.Equal(t, int64(4)*a.slotSize(), stats.GrowBytes)
	assert.Equal(t, int64(1), stats.ClearCount)
	assert.Equal(t, int64(2), stats.ClearedSlots)
	assert.InDelta(t, 1.0/3.0, stats.ReuseRatio, 1e-9)
}

func TestBasicMetricsCollector_Failures(t *testing.T) {
	m := &BasicMetricsCollector{}
	a := New[key.ID[uint8, version.Checked8], version.Checked8, int](WithMetricsCollector(m))

	for i := range math.MaxUint8 - 1 {
		a.Remove(a.Insert(i))
	}
	a.TryRemove(a.Insert(0))

	for i := range 256 {
		a.TryInsert(i)
	}

	stats := m.GetStats()
	assert.Equal(t, int64(1), stats.TombstoneCount)
	assert.Equal(t, int64(1), stats.InsertFailures)
}

func TestBasicMetricsCollector_Empty(t *testing.T) {
	m := &BasicMetricsCollector{}
	assert.Zero(t, m.GetStats().ReuseRatio)

	var _ MetricsCollector = NoopMetricsCollector{}
	a := NewDefault[int](WithMetricsCollector(nil))
	a.Insert(1)
}
