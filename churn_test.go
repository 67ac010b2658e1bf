package slotarena_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/slotarena"
	"github.com/hupe1980/slotarena/key"
	"github.com/hupe1980/slotarena/testutil"
)

// entry pairs a live key with the value stored under it.
type entry struct {
	key   key.Default
	value int
}

func TestChurn_MatchesModel(t *testing.T) {
	for _, seed := range []int64{1, 42, 4711} {
		rng := testutil.NewRNG(seed)
		ops := rng.ChurnScript(5000, 0.35, 0.15)

		a := slotarena.NewDefault[int]()
		var live []entry
		var dead []key.Default
		issued := map[key.Default]bool{}

		for _, op := range ops {
			switch op.Kind {
			case testutil.OpInsert:
				k := a.Insert(op.Value)
				require.False(t, issued[k], "seed %d: key %#v issued twice", seed, k)
				issued[k] = true
				live = append(live, entry{k, op.Value})
			case testutil.OpRemove:
				if len(live) == 0 {
					continue
				}
				i := op.Pick % len(live)
				e := live[i]
				require.Equal(t, e.value, a.Remove(e.key))
				live[i] = live[len(live)-1]
				live = live[:len(live)-1]
				dead = append(dead, e.key)
			case testutil.OpGet:
				if len(live) == 0 {
					continue
				}
				e := live[op.Pick%len(live)]
				got, ok := a.Get(e.key)
				require.True(t, ok)
				require.Equal(t, e.value, got)
			}

			require.Equal(t, len(live), a.Len())
		}

		for _, k := range dead {
			assert.False(t, a.Contains(k), "seed %d: stale key %#v still valid", seed, k)
		}

		count := 0
		want := make(map[key.Default]int, len(live))
		for _, e := range live {
			want[e.key] = e.value
		}
		for k, v := range a.All() {
			assert.Equal(t, want[k], v)
			count++
		}
		assert.Equal(t, len(live), count)
	}
}

func TestChurn_RoundTrip(t *testing.T) {
	a := slotarena.NewDefault[string]()
	for _, v := range []string{"", "a", "hello", "🙂"} {
		k := a.Insert(v)
		got, ok := a.Get(k)
		require.True(t, ok)
		assert.Equal(t, v, got)
	}
}
