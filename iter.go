package slotarena

import (
	"iter"

	"github.com/hupe1980/slotarena/key"
	"github.com/hupe1980/slotarena/version"
)

// Iter walks the occupied slots of an arena from either end.
//
// Iter tracks how many values remain, so it stops as soon as the last one is
// returned instead of scanning to the end of the table. An Iter must not be
// used after the arena is structurally modified.
type Iter[K key.Key[K, V], V version.Version[V], T any] struct {
	buf       []slot[V, T]
	front     int // next index Next inspects
	back      int // one past the next index NextBack inspects
	remaining int
}

// Iter returns an iterator positioned at both ends of the arena.
func (a *Arena[K, V, T]) Iter() *Iter[K, V, T] {
	return &Iter[K, V, T]{
		buf:       a.buf,
		back:      len(a.buf),
		remaining: a.len,
	}
}

// Len returns the number of values not yet returned.
func (it *Iter[K, V, T]) Len() int {
	return it.remaining
}

// Next returns the next value from the front.
func (it *Iter[K, V, T]) Next() (K, *T, bool) {
	var zero K

	for it.remaining > 0 && it.front < it.back {
		i := it.front
		it.front++

		if s := &it.buf[i]; s.occupied {
			it.remaining--
			k, _ := zero.New(i, s.version)
			return k, &s.value, true
		}
	}
	return zero, nil, false
}

// NextBack returns the next value from the back.
func (it *Iter[K, V, T]) NextBack() (K, *T, bool) {
	var zero K

	for it.remaining > 0 && it.front < it.back {
		it.back--
		i := it.back

		if s := &it.buf[i]; s.occupied {
			it.remaining--
			k, _ := zero.New(i, s.version)
			return k, &s.value, true
		}
	}
	return zero, nil, false
}

// All returns an iterator over keys and values in slot order.
func (a *Arena[K, V, T]) All() iter.Seq2[K, T] {
	return func(yield func(K, T) bool) {
		it := a.Iter()
		for k, v, ok := it.Next(); ok; k, v, ok = it.Next() {
			if !yield(k, *v) {
				return
			}
		}
	}
}

// Backward returns an iterator over keys and values in reverse slot order.
func (a *Arena[K, V, T]) Backward() iter.Seq2[K, T] {
	return func(yield func(K, T) bool) {
		it := a.Iter()
		for k, v, ok := it.NextBack(); ok; k, v, ok = it.NextBack() {
			if !yield(k, *v) {
				return
			}
		}
	}
}

// AllPtr returns an iterator over keys and pointers to values in slot order.
// The loop body may modify values but must not insert or remove.
func (a *Arena[K, V, T]) AllPtr() iter.Seq2[K, *T] {
	return func(yield func(K, *T) bool) {
		it := a.Iter()
		for k, v, ok := it.Next(); ok; k, v, ok = it.Next() {
			if !yield(k, v) {
				return
			}
		}
	}
}

// Keys returns an iterator over keys in slot order.
func (a *Arena[K, V, T]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range a.AllPtr() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values returns an iterator over values in slot order.
func (a *Arena[K, V, T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range a.AllPtr() {
			if !yield(*v) {
				return
			}
		}
	}
}

// ValuesPtr returns an iterator over pointers to values in slot order.
func (a *Arena[K, V, T]) ValuesPtr() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for _, v := range a.AllPtr() {
			if !yield(v) {
				return
			}
		}
	}
}

// Drain returns an iterator that yields every key and value and leaves the
// arena empty, even if the loop stops early.
func (a *Arena[K, V, T]) Drain() iter.Seq2[K, T] {
	return func(yield func(K, T) bool) {
		defer a.Clear()

		it := a.Iter()
		for k, v, ok := it.Next(); ok; k, v, ok = it.Next() {
			if !yield(k, *v) {
				return
			}
		}
	}
}
