// Package key defines the handles returned by the arena.
//
// A key pairs a slot index with the slot's version at insertion time. Keys
// are plain comparable values and do not keep anything alive: once the slot
// is recycled under a new version the key stops matching.
//
// ID is the stock implementation. Its index width and version strategy are
// type parameters, so memory-constrained callers can use narrow keys:
//
//	type Small = key.ID[uint16, version.Checked16] // 4 bytes, 65536 slots
//	type Wide  = key.ID[uint64, version.Checked64] // 16 bytes
//
// Custom key types implement Key; implementing Bounded as well lets the arena
// report a capacity capped by the index range.
package key
