package slotarena

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Stats is a point-in-time snapshot of an arena's bookkeeping.
type Stats struct {
	Len           int    // occupied slots
	Slots         int    // materialized slots, occupied or vacant
	Capacity      int    // slots available without reallocating
	Vacant        int    // slots on the free list
	Tombstones    uint64 // slots retired by version exhaustion
	Grows         uint64 // reallocations since creation
	ReservedBytes int64  // bytes charged to the memory controller
}

// Stats returns the current bookkeeping of the arena.
func (a *Arena[K, V, T]) Stats() Stats {
	s := Stats{
		Len:           a.len,
		Slots:         len(a.buf),
		Capacity:      a.Cap(),
		Vacant:        len(a.buf) - a.len,
		Grows:         a.grows,
		ReservedBytes: a.reserved,
	}
	if a.tombstones != nil {
		s.Tombstones = a.tombstones.GetCardinality()
	}
	return s
}

func (s Stats) String() string {
	return fmt.Sprintf("len=%s slots=%s cap=%s vacant=%s tombstones=%d grows=%d reserved=%s",
		humanize.Comma(int64(s.Len)),
		humanize.Comma(int64(s.Slots)),
		humanize.Comma(int64(s.Capacity)),
		humanize.Comma(int64(s.Vacant)),
		s.Tombstones,
		s.Grows,
		humanize.IBytes(uint64(max(s.ReservedBytes, 0))),
	)
}
