package version

import (
	"strconv"

	"github.com/hupe1980/slotarena/internal/conv"
)

// Unsigned is the set of integer types a Checked counter can be built on.
type Unsigned = conv.Unsigned

// Version is a strategy for stamping slots.
//
// Initial and Next must not depend on the receiver being initialized:
// Initial is called on the zero value.
type Version[V any] interface {
	comparable

	// Initial returns the version given to a freshly materialized slot.
	Initial() V

	// Next returns the successor of the receiver. ok is false when the
	// strategy is exhausted and the slot must not be reused.
	Next() (next V, ok bool)
}

// Checked is a counter that starts at 1 and is exhausted at the maximum of U.
//
// The zero value is never produced by the strategy, so a zero Checked never
// matches a live slot.
type Checked[U Unsigned] struct {
	n U
}

// Common Checked widths.
type (
	Checked8  = Checked[uint8]
	Checked16 = Checked[uint16]
	Checked32 = Checked[uint32]
	Checked64 = Checked[uint64]
)

// NewChecked returns a Checked holding n. It fails for n == 0.
func NewChecked[U Unsigned](n U) (Checked[U], bool) {
	if n == 0 {
		return Checked[U]{}, false
	}
	return Checked[U]{n: n}, true
}

// Initial returns 1.
func (Checked[U]) Initial() Checked[U] {
	return Checked[U]{n: 1}
}

// Next returns the counter plus one, or false if that would overflow U.
func (c Checked[U]) Next() (Checked[U], bool) {
	if c.n == conv.MaxOf[U]() {
		return c, false
	}
	return Checked[U]{n: c.n + 1}, true
}

// Value returns the raw counter.
func (c Checked[U]) Value() U {
	return c.n
}

func (c Checked[U]) String() string {
	return strconv.FormatUint(uint64(c.n), 10)
}

// Wrapping turns an exhaustible strategy into one that never exhausts.
// When the wrapped strategy runs out, the version restarts at its initial
// value.
type Wrapping[V Version[V]] struct {
	v V
}

// Common Wrapping strategies.
type (
	Wrapping8  = Wrapping[Checked8]
	Wrapping16 = Wrapping[Checked16]
	Wrapping32 = Wrapping[Checked32]
	Wrapping64 = Wrapping[Checked64]
)

// Wrap returns a Wrapping holding v.
func Wrap[V Version[V]](v V) Wrapping[V] {
	return Wrapping[V]{v: v}
}

// Initial returns the wrapped strategy's initial value.
func (Wrapping[V]) Initial() Wrapping[V] {
	var zero V
	return Wrapping[V]{v: zero.Initial()}
}

// Next always succeeds.
func (w Wrapping[V]) Next() (Wrapping[V], bool) {
	if v, ok := w.v.Next(); ok {
		return Wrapping[V]{v: v}, true
	}
	return w.Initial(), true
}

// Unwrap returns the wrapped version.
func (w Wrapping[V]) Unwrap() V {
	return w.v
}

func (w Wrapping[V]) String() string {
	if s, ok := any(w.v).(interface{ String() string }); ok {
		return s.String()
	}
	return "?"
}

// Nil disables stale key detection. All Nil values are equal.
type Nil struct{}

// Initial returns Nil.
func (Nil) Initial() Nil { return Nil{} }

// Next returns Nil.
func (Nil) Next() (Nil, bool) { return Nil{}, true }

func (Nil) String() string { return "nil" }
