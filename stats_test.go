package slotarena

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStats(t *testing.T) {
	a := NewDefault[int]()
	for i := range 1500 {
		a.Insert(i)
	}
	a.Remove(a.Insert(0))

	s := a.Stats()
	assert.Equal(t, 1500, s.Len)
	assert.Equal(t, 1501, s.Slots)
	assert.Equal(t, 1, s.Vacant)
	assert.Zero(t, s.Tombstones)
	assert.Positive(t, s.ReservedBytes)

	str := s.String()
	assert.Contains(t, str, "len=1,500")
	assert.Contains(t, str, "slots=1,501")
	assert.Contains(t, str, "vacant=1")
	assert.Contains(t, str, "KiB")
}
