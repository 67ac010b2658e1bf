// Package slotarena provides a generational slot arena for Go.
//
// An arena stores values of one type in a growable table of slots and hands
// back a key for each value. Removing a value pushes its slot onto a free list
// threaded through the vacant slots themselves, so insert, lookup and remove
// are all O(1). Every slot carries a version that advances on removal; keys
// remember the version they were issued with, so a key to a recycled slot is
// rejected instead of silently reading someone else's value (the ABA problem).
//
// # Quick Start
//
//	a := slotarena.NewDefault[string]()
//
//	hello := a.Insert("Hello")
//	world := a.Insert("World")
//
//	a.At(hello)            // "Hello"
//	a.Remove(hello)        // "Hello"
//	_, ok := a.Get(hello)  // ok == false
//
//	moon := a.Insert("Moon") // reuses hello's slot with a new version
//	moon == hello            // false
//
// # Keys and Versions
//
// The arena is generic over its key and version types:
//
//	type Small = key.ID[uint16, version.Checked16]
//	a := slotarena.New[Small, version.Checked16, Node]()
//
// See the key and version packages for the available strategies. With
// version.Nil stale keys are not detected and removed slots are reused
// immediately.
//
// # Error Handling
//
// Fallible operations come in pairs:
//
//	k, ok := a.TryInsert(v)   // false when the key type runs out of indices
//	k := a.Insert(v)          // panics instead
//
//	v, ok := a.TryRemove(k)   // false for stale keys or exhausted versions
//	v := a.Remove(k)          // panics instead
//	v, err := a.Take(k)       // reports which of the two happened
//
// Get, GetPtr and Contains never panic. At and AtPtr panic on invalid keys.
//
// # Version Exhaustion
//
// With a checked version strategy a slot that has been reused until its
// counter reaches the maximum cannot be removed again: Take returns
// ErrVersionExhausted, the value stays reachable through its key and the slot
// is never recycled. Retired reports such slots and Stats counts them.
//
// # Iteration
//
// All, Backward, Keys, Values, AllPtr, ValuesPtr and Drain return range-over-func
// iterators. Iter returns a double-ended cursor with an exact remaining count.
// Iterators visit occupied slots only and must not outlive a structural
// change to the arena.
//
// # Thread Safety
//
// An Arena is owned by one goroutine at a time. Callers that share an arena
// must synchronize access themselves. Loggers, metrics collectors and the
// resource.Controller may be shared between arenas.
package slotarena
