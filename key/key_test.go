//go:build amd64 || arm64

package key

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/slotarena/version"
)

func TestID_New(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		v := version.Checked32{}.Initial()
		k, ok := Default{}.New(42, v)
		require.True(t, ok)
		assert.Equal(t, 42, k.Index())
		assert.Equal(t, v, k.Version())
	})

	t.Run("narrow index rejects overflow", func(t *testing.T) {
		type small = ID[uint8, version.Checked8]

		_, ok := small{}.New(math.MaxUint8, version.Checked8{}.Initial())
		assert.True(t, ok)

		_, ok = small{}.New(math.MaxUint8+1, version.Checked8{}.Initial())
		assert.False(t, ok)
	})

	t.Run("negative index rejected", func(t *testing.T) {
		_, ok := Default{}.New(-1, version.Checked32{}.Initial())
		assert.False(t, ok)
	})
}

func TestID_Equality(t *testing.T) {
	v1 := version.Checked32{}.Initial()
	v2, ok := v1.Next()
	require.True(t, ok)

	a, _ := Default{}.New(3, v1)
	b, _ := Default{}.New(3, v1)
	c, _ := Default{}.New(3, v2)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.True(t, a == b)
	assert.False(t, a == c)
}

func TestID_Unversioned(t *testing.T) {
	a, _ := Unversioned{}.New(7, version.Nil{})
	b, _ := Unversioned{}.New(7, version.Nil{}.Initial())
	assert.Equal(t, a, b)
}

func TestID_MaxIndex(t *testing.T) {
	assert.Equal(t, math.MaxUint8, ID[uint8, version.Nil]{}.MaxIndex())
	assert.Equal(t, math.MaxUint16, ID[uint16, version.Nil]{}.MaxIndex())
	assert.Equal(t, math.MaxUint32, Default{}.MaxIndex())

	var b Bounded = Wrapping{}
	assert.Equal(t, math.MaxUint32, b.MaxIndex())
}

func TestID_Format(t *testing.T) {
	k, _ := Default{}.New(5, version.Checked32{}.Initial())
	assert.Equal(t, "I5", k.String())
	assert.Equal(t, "I5v1", fmt.Sprintf("%#v", k))
}
