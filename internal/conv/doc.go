// Package conv provides safe integer type conversion utilities.
//
// These functions perform bounds checking to prevent integer overflow/underflow
// when converting between Go's int and the fixed-width unsigned types chosen
// for key indices and version counters.
//
// Use cases:
//   - Narrowing a slot position into a key index of arbitrary width
//   - Widening a key index back into a slice position
//
// For conversions that are provably safe by domain constraints (e.g., loop
// indices, bounded counters), use direct type casts instead to avoid overhead.
package conv
