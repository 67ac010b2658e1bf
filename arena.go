package slotarena

import (
	"math"
	"unsafe"

	"github.com/RoaringBitmap/roaring/v2/roaring64"

	"github.com/hupe1980/slotarena/key"
	"github.com/hupe1980/slotarena/resource"
	"github.com/hupe1980/slotarena/version"
)

// minGrowSlots is the smallest capacity the slot table grows to.
const minGrowSlots = 4

// slot is one position of the table. Only one of value and next is live:
// value while occupied, next while vacant.
type slot[V any, T any] struct {
	value    T
	next     int
	version  V
	occupied bool
}

// Arena stores values of type T in reusable slots addressed by keys of type K
// stamped with versions of type V.
//
// An Arena is not safe for concurrent use.
type Arena[K key.Key[K, V], V version.Version[V], T any] struct {
	buf  []slot[V, T]
	len  int // occupied slots
	next int // free-list head; len(buf) when the list is empty

	maxSlots   int
	tombstones *roaring64.Bitmap // created on first exhaustion
	grows      uint64
	reserved   int64 // bytes charged to memory

	logger  *Logger
	metrics MetricsCollector
	memory  *resource.Controller
}

// Default is an Arena keyed by key.Default.
type Default[T any] = Arena[key.Default, version.Checked32, T]

// New creates an empty Arena.
func New[K key.Key[K, V], V version.Version[V], T any](opts ...Option) *Arena[K, V, T] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	logger := o.logger
	if o.name != "" {
		logger = logger.WithName(o.name)
	}

	a := &Arena[K, V, T]{
		maxSlots: math.MaxInt,
		logger:   logger,
		metrics:  o.metricsCollector,
		memory:   o.memory,
	}

	var zero K
	if b, ok := any(zero).(key.Bounded); ok {
		if m := b.MaxIndex(); m < math.MaxInt {
			a.maxSlots = m + 1
		}
	}

	if o.capacity > 0 {
		if err := a.ReserveExact(o.capacity); err != nil {
			a.logger.LogGrowFailed(o.capacity, err)
		}
	}

	return a
}

// NewDefault creates an empty Arena keyed by key.Default.
func NewDefault[T any](opts ...Option) *Default[T] {
	return New[key.Default, version.Checked32, T](opts...)
}

// Len returns the number of values in the arena.
func (a *Arena[K, V, T]) Len() int {
	return a.len
}

// IsEmpty reports whether the arena holds no values.
func (a *Arena[K, V, T]) IsEmpty() bool {
	return a.len == 0
}

// Cap returns the number of slots the arena can hold without reallocating,
// capped by the index range of K.
func (a *Arena[K, V, T]) Cap() int {
	return min(cap(a.buf), a.maxSlots)
}

// Reserve makes room for at least additional more inserts without
// reallocating. Vacant slots count towards the room. The table may grow by
// more than requested to amortize future growth.
func (a *Arena[K, V, T]) Reserve(additional int) error {
	return a.reserve(additional, false)
}

// ReserveExact is like Reserve but does not over-allocate.
func (a *Arena[K, V, T]) ReserveExact(additional int) error {
	return a.reserve(additional, true)
}

func (a *Arena[K, V, T]) reserve(additional int, exact bool) error {
	if additional <= 0 {
		return nil
	}
	if additional > a.maxSlots-a.len {
		return ErrCapacityExhausted
	}

	target := a.len + additional
	if target <= cap(a.buf) {
		return nil
	}
	return a.grow(target-len(a.buf), exact)
}

// grow ensures room for additional slots past len(buf).
func (a *Arena[K, V, T]) grow(additional int, exact bool) error {
	need := len(a.buf) + additional
	oldCap := cap(a.buf)
	if need <= oldCap {
		return nil
	}
	if need > a.maxSlots {
		return ErrCapacityExhausted
	}

	newCap := need
	if !exact {
		newCap = min(max(need, 2*oldCap, minGrowSlots), a.maxSlots)
	}

	bytes := int64(newCap-oldCap) * a.slotSize()
	if err := a.memory.AcquireMemory(bytes); err != nil {
		a.logger.LogGrowFailed(newCap, err)
		return err
	}

	buf := make([]slot[V, T], len(a.buf), newCap)
	copy(buf, a.buf)
	a.buf = buf
	a.reserved += bytes
	a.grows++

	a.metrics.RecordGrow(oldCap, newCap, bytes)
	a.logger.LogGrow(oldCap, newCap, a.reserved)

	return nil
}

func (a *Arena[K, V, T]) slotSize() int64 {
	var s slot[V, T]
	return int64(unsafe.Sizeof(s))
}

// TryInsert stores value and returns its key. It returns false when the key
// type cannot address another slot or the memory controller refuses growth.
func (a *Arena[K, V, T]) TryInsert(value T) (K, bool) {
	k, err := a.insert(value)
	return k, err == nil
}

// Insert stores value and returns its key.
// It panics when TryInsert would fail.
func (a *Arena[K, V, T]) Insert(value T) K {
	k, err := a.insert(value)
	if err != nil {
		panic(err)
	}
	return k
}

func (a *Arena[K, V, T]) insert(value T) (K, error) {
	var zero K

	idx := a.next
	reused := idx < len(a.buf)

	var v V
	if reused {
		v = a.buf[idx].version
	} else {
		v = v.Initial()
	}

	k, ok := zero.New(idx, v)
	if !ok {
		a.metrics.RecordInsertFailure(ErrCapacityExhausted)
		a.logger.LogCapacityExhausted(len(a.buf))
		return zero, ErrCapacityExhausted
	}

	if !reused {
		if err := a.grow(1, false); err != nil {
			a.metrics.RecordInsertFailure(err)
			return zero, err
		}
		a.buf = append(a.buf, slot[V, T]{version: v, next: idx + 1})
	}

	s := &a.buf[idx]
	a.next = s.next
	s.value = value
	s.occupied = true
	a.len++

	a.metrics.RecordInsert(reused)

	return k, nil
}

// lookup returns the slot k refers to, or nil if k is not valid.
func (a *Arena[K, V, T]) lookup(k K) *slot[V, T] {
	i := k.Index()
	if i < 0 || i >= len(a.buf) {
		return nil
	}

	s := &a.buf[i]
	if !s.occupied || s.version != k.Version() {
		return nil
	}
	return s
}

// Get returns the value for k.
func (a *Arena[K, V, T]) Get(k K) (T, bool) {
	s := a.lookup(k)
	if s == nil {
		var zero T
		return zero, false
	}
	return s.value, true
}

// GetPtr returns a pointer to the value for k. The pointer is valid until the
// next Insert, Reserve, Clear or Free.
func (a *Arena[K, V, T]) GetPtr(k K) (*T, bool) {
	s := a.lookup(k)
	if s == nil {
		return nil, false
	}
	return &s.value, true
}

// Contains reports whether k refers to a value in the arena.
func (a *Arena[K, V, T]) Contains(k K) bool {
	return a.lookup(k) != nil
}

// At returns the value for k. It panics if k is not valid.
func (a *Arena[K, V, T]) At(k K) T {
	s := a.lookup(k)
	if s == nil {
		panic(keyError(k.Index(), ErrInvalidKey))
	}
	return s.value
}

// AtPtr returns a pointer to the value for k. It panics if k is not valid.
func (a *Arena[K, V, T]) AtPtr(k K) *T {
	s := a.lookup(k)
	if s == nil {
		panic(keyError(k.Index(), ErrInvalidKey))
	}
	return &s.value
}

// TryRemove removes and returns the value for k. It returns false if k is not
// valid or the slot's version is exhausted; in the latter case the value stays
// in the arena.
func (a *Arena[K, V, T]) TryRemove(k K) (T, bool) {
	v, err := a.Take(k)
	return v, err == nil
}

// Remove removes and returns the value for k.
// It panics when TryRemove would fail.
func (a *Arena[K, V, T]) Remove(k K) T {
	v, err := a.Take(k)
	if err != nil {
		panic(err)
	}
	return v
}

// Take removes and returns the value for k. The returned error is a
// *KeyError wrapping ErrInvalidKey or ErrVersionExhausted.
func (a *Arena[K, V, T]) Take(k K) (T, error) {
	s := a.lookup(k)
	if s == nil {
		var zero T
		return zero, keyError(k.Index(), ErrInvalidKey)
	}

	v, ok := a.vacate(k.Index(), s)
	if !ok {
		return v, keyError(k.Index(), ErrVersionExhausted)
	}
	return v, nil
}

// vacate pushes the occupied slot s at index i onto the free list. If the
// version cannot advance, s is retired and left untouched.
func (a *Arena[K, V, T]) vacate(i int, s *slot[V, T]) (T, bool) {
	var zero T

	next, ok := s.version.Next()
	if !ok {
		a.retire(i)
		return zero, false
	}

	value := s.value
	s.value = zero
	s.occupied = false
	s.version = next
	s.next = a.next
	a.next = i
	a.len--

	a.metrics.RecordRemove()

	return value, true
}

func (a *Arena[K, V, T]) retire(i int) {
	if a.tombstones == nil {
		a.tombstones = roaring64.New()
	}
	if !a.tombstones.CheckedAdd(uint64(i)) {
		return
	}

	a.metrics.RecordTombstone(i)
	a.logger.LogTombstone(i, a.tombstones.GetCardinality())
}

// Retired reports whether k refers to a slot whose version is exhausted.
// Such a slot keeps its value, stays reachable through k, and never returns
// to the free list.
func (a *Arena[K, V, T]) Retired(k K) bool {
	if a.tombstones == nil || a.lookup(k) == nil {
		return false
	}
	return a.tombstones.Contains(uint64(k.Index()))
}

// Retain removes every value for which keep returns false. Slots freed by the
// pass are reused last-freed first.
func (a *Arena[K, V, T]) Retain(keep func(K, T) bool) {
	a.RetainPtr(func(k K, v *T) bool {
		return keep(k, *v)
	})
}

// RetainPtr is like Retain but passes a pointer to each value, which keep may
// modify. keep must not insert into or remove from the arena.
func (a *Arena[K, V, T]) RetainPtr(keep func(K, *T) bool) {
	var zero K

	remaining := a.len
	for i := 0; i < len(a.buf) && remaining > 0; i++ {
		s := &a.buf[i]
		if !s.occupied {
			continue
		}
		remaining--

		k, _ := zero.New(i, s.version)
		if !keep(k, &s.value) {
			a.vacate(i, s)
		}
	}
}

// Clear removes every value. Capacity is kept; versions are discarded, so keys
// issued before Clear may match slots filled after it.
func (a *Arena[K, V, T]) Clear() {
	slots, live := len(a.buf), a.len

	clear(a.buf)
	a.buf = a.buf[:0]
	a.len = 0
	a.next = 0
	if a.tombstones != nil {
		a.tombstones.Clear()
	}

	a.metrics.RecordClear(slots)
	a.logger.LogClear(slots, live)
}

// Free clears the arena, drops its backing storage and returns the storage's
// bytes to the memory controller. The arena stays usable.
func (a *Arena[K, V, T]) Free() {
	a.Clear()

	a.buf = nil
	a.memory.ReleaseMemory(a.reserved)
	a.logger.LogFree(a.reserved)
	a.reserved = 0
}
