// Package resource implements a memory budget shared between arenas.
//
// Slot tables acquire bytes from a Controller before growing their backing
// storage and release them when the storage is freed. Acquisition is
// non-blocking: when the limit would be exceeded AcquireMemory returns
// ErrMemoryLimitExceeded immediately and the arena reports the insert as
// failed.
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes: 64 << 20, // 64MB across all attached arenas
//	})
//
//	if err := rc.AcquireMemory(4096); err != nil {
//	    // ErrMemoryLimitExceeded - caller decides what to do
//	}
//	defer rc.ReleaseMemory(4096)
//
// # Thread Safety
//
// All Controller methods are safe for concurrent use, so one Controller may
// govern arenas owned by different goroutines. The arenas themselves remain
// single-owner.
//
// # Nil Safety
//
// All methods handle nil Controller gracefully - they become no-ops.
// This allows optional resource limiting without nil checks everywhere.
package resource
