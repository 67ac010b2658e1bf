package key

import (
	"fmt"

	"github.com/hupe1980/slotarena/internal/conv"
	"github.com/hupe1980/slotarena/version"
)

// Key is the contract between the arena and its handle type.
//
// New is called on the zero value and must fail rather than truncate when
// index cannot be represented.
type Key[K any, V version.Version[V]] interface {
	comparable

	// New builds a key for the slot at index stamped with v.
	New(index int, v V) (K, bool)

	// Index returns the slot position.
	Index() int

	// Version returns the version the key was issued with.
	Version() V
}

// Bounded is implemented by keys whose index range is narrower than int.
type Bounded interface {
	// MaxIndex returns the largest representable slot index.
	MaxIndex() int
}

// ID is a key with an index of type I and a version of type V.
type ID[I version.Unsigned, V version.Version[V]] struct {
	index   I
	version V
}

// Common key types.
type (
	// Default uses 32-bit indices and checked 32-bit versions.
	Default = ID[uint32, version.Checked32]
	// Wrapping uses 32-bit indices and wrapping 32-bit versions.
	Wrapping = ID[uint32, version.Wrapping32]
	// Unversioned uses 32-bit indices and no stale key detection.
	Unversioned = ID[uint32, version.Nil]
)

// New returns the key for index stamped with v. It fails when index does not
// fit in I.
func (ID[I, V]) New(index int, v V) (ID[I, V], bool) {
	i, err := conv.IntTo[I](index)
	if err != nil {
		return ID[I, V]{}, false
	}
	return ID[I, V]{index: i, version: v}, true
}

// Index returns the slot position.
func (id ID[I, V]) Index() int {
	// Every ID is built from an int by New, so the widening cannot fail.
	return int(id.index)
}

// Version returns the version the key was issued with.
func (id ID[I, V]) Version() V {
	return id.version
}

// MaxIndex returns the largest index representable by I.
func (ID[I, V]) MaxIndex() int {
	return conv.MaxIntOf[I]()
}

func (id ID[I, V]) String() string {
	return fmt.Sprintf("I%d", id.index)
}

// GoString includes the version, which String omits.
func (id ID[I, V]) GoString() string {
	return fmt.Sprintf("I%dv%v", id.index, id.version)
}
