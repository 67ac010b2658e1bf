// Package version defines the strategies used to stamp arena slots.
//
// A strategy decides what "advance the version" means and when a version is
// exhausted. The arena is generic over any type satisfying Version, so the
// choice is made at compile time:
//
//   - Checked counts up from 1 and reports exhaustion at the maximum of its
//     integer width. An exhausted slot is never recycled.
//   - Wrapping wraps another strategy and restarts it at its initial value
//     instead of reporting exhaustion.
//   - Nil carries no data, always compares equal and always advances. Stale
//     keys are not detected.
//
// # Choosing a width
//
//	version.Checked8   // 255 reuses per slot, smallest keys
//	version.Checked32  // default
//	version.Checked64  // effectively never exhausted
//	version.Wrapping32 // unbounded reuse, residual ABA risk after 2^32-1 reuses
package version
