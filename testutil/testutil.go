package testutil

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Float64 returns, as a float64, a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// OpKind identifies a step of a churn script.
type OpKind uint8

const (
	// OpInsert inserts Op.Value.
	OpInsert OpKind = iota
	// OpRemove removes the live entry selected by Op.Pick.
	OpRemove
	// OpGet looks up the live entry selected by Op.Pick.
	OpGet
)

func (k OpKind) String() string {
	switch k {
	case OpInsert:
		return "insert"
	case OpRemove:
		return "remove"
	case OpGet:
		return "get"
	default:
		return "unknown"
	}
}

// Op is one step of a churn script.
//
// Pick is an arbitrary non-negative number; drivers select the target among
// the currently live entries with Pick % len(live), skipping the step when
// nothing is live.
type Op struct {
	Kind  OpKind
	Value int
	Pick  int
}

// ChurnScript returns n operations mixing inserts, removals and lookups.
// removeRatio and getRatio are the probabilities of a removal and a lookup;
// the remainder are inserts. Values are unique and increasing.
func (r *RNG) ChurnScript(n int, removeRatio, getRatio float64) []Op {
	ops := make([]Op, 0, n)
	next := 0

	for range n {
		p := r.Float64()
		switch {
		case p < removeRatio:
			ops = append(ops, Op{Kind: OpRemove, Pick: r.Intn(1 << 30)})
		case p < removeRatio+getRatio:
			ops = append(ops, Op{Kind: OpGet, Pick: r.Intn(1 << 30)})
		default:
			ops = append(ops, Op{Kind: OpInsert, Value: next})
			next++
		}
	}

	return ops
}

// Counts returns how many operations of each kind a script holds.
func Counts(ops []Op) map[OpKind]int {
	counts := make(map[OpKind]int, 3)
	for _, op := range ops {
		counts[op.Kind]++
	}
	return counts
}
