package version

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecked(t *testing.T) {
	t.Run("initial is one", func(t *testing.T) {
		var zero Checked32
		v := zero.Initial()
		assert.Equal(t, uint32(1), v.Value())
		assert.NotEqual(t, zero, v)
	})

	t.Run("next increments", func(t *testing.T) {
		v := Checked16{}.Initial()
		next, ok := v.Next()
		require.True(t, ok)
		assert.Equal(t, uint16(2), next.Value())
		assert.NotEqual(t, v, next)
	})

	t.Run("exhausted at max", func(t *testing.T) {
		v, ok := NewChecked[uint8](math.MaxUint8)
		require.True(t, ok)

		next, ok := v.Next()
		assert.False(t, ok)
		assert.Equal(t, v, next)
	})

	t.Run("walk full uint8 range", func(t *testing.T) {
		v := Checked8{}.Initial()
		steps := 0
		for {
			next, ok := v.Next()
			if !ok {
				break
			}
			v = next
			steps++
		}
		assert.Equal(t, math.MaxUint8-1, steps)
		assert.Equal(t, uint8(math.MaxUint8), v.Value())
	})

	t.Run("zero rejected", func(t *testing.T) {
		_, ok := NewChecked[uint64](0)
		assert.False(t, ok)
	})

	t.Run("string", func(t *testing.T) {
		assert.Equal(t, "1", Checked64{}.Initial().String())
	})
}

func TestWrapping(t *testing.T) {
	t.Run("initial delegates", func(t *testing.T) {
		v := Wrapping32{}.Initial()
		assert.Equal(t, uint32(1), v.Unwrap().Value())
	})

	t.Run("next delegates", func(t *testing.T) {
		v, ok := Wrapping8{}.Initial().Next()
		require.True(t, ok)
		assert.Equal(t, uint8(2), v.Unwrap().Value())
	})

	t.Run("wraps to initial on exhaustion", func(t *testing.T) {
		top, ok := NewChecked[uint8](math.MaxUint8)
		require.True(t, ok)

		v, ok := Wrap(top).Next()
		require.True(t, ok)
		assert.Equal(t, Wrapping8{}.Initial(), v)
		assert.Equal(t, "1", v.String())
	})

	t.Run("wrapping nil", func(t *testing.T) {
		v, ok := Wrapping[Nil]{}.Initial().Next()
		require.True(t, ok)
		assert.Equal(t, Wrap(Nil{}), v)
	})
}

func TestNil(t *testing.T) {
	v := Nil{}.Initial()
	next, ok := v.Next()
	assert.True(t, ok)
	assert.Equal(t, v, next)
	assert.Equal(t, "nil", v.String())
}

func TestStrategiesSatisfyVersion(t *testing.T) {
	assertVersion[Checked8](t)
	assertVersion[Checked64](t)
	assertVersion[Wrapping16](t)
	assertVersion[Nil](t)
}

func assertVersion[V Version[V]](t *testing.T) {
	t.Helper()

	var zero V
	initial := zero.Initial()
	next, ok := initial.Next()
	require.True(t, ok)
	_ = next
}
