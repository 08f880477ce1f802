// Package arena implements a fixed-capacity linear (bump) allocator for Go.
//
// # Overview
//
// A linear allocator carves sub-allocations out of one contiguous,
// pre-sized buffer by advancing a single offset. Allocation is a
// handful of arithmetic instructions, deallocation is resetting the
// offset. Consecutive allocations sit next to each other in memory,
// which keeps short-lived working sets cache-friendly. This is
// particularly useful for:
//
//   - Per-frame or per-request scratch allocations with batch cleanup
//   - Parsing passes that build many small transient objects
//   - Reducing garbage collection pressure
//   - Hot paths that need predictable, constant-time allocation
//
// # Basic Usage
//
//	a, err := arena.NewArena(1 << 20) // 1 MiB, fixed
//	if err != nil {
//		return err
//	}
//	defer a.Release() // Clean up when done
//
//	// Allocate raw bytes
//	buf := a.AllocBytes(1024)
//
//	// Allocate typed values
//	p := arena.New(a, MyStruct{ID: 7})
//	slice := arena.AllocArray[int](a, 100)
//
//	// Reset for reuse (O(1) operation)
//	a.Reset()
//
// # Exhaustion
//
// The arena never grows. When a request does not fit in the remaining
// capacity, Alloc and the typed helpers return nil and the arena is
// left exactly as it was. Running out of space is an expected,
// recoverable outcome: check the result and decide locally whether to
// reset, fall back, or fail the surrounding operation.
//
// # Markers
//
// Marker and ResetTo give a stack-like scoped discipline on top of
// plain Reset: take a marker, allocate a transient sub-scope, then
// roll back to the marker to reclaim exactly that sub-scope while
// keeping everything allocated before it. Markers must be unwound in
// LIFO order; the arena does not check this.
//
//	m := a.Marker()
//	scratch := arena.AllocArray[float64](a, 4096)
//	process(scratch)
//	a.ResetTo(m) // scratch bytes reclaimed, earlier allocations intact
//
// # Reset never tears down contained values
//
// Reset, ResetTo and Release reclaim raw bytes only. Values placed in
// the arena get no finalization of any kind, no matter what teardown
// logic their types carry. Keep arena-held types to plain data, or
// track and tear down non-trivial values manually before resetting.
//
// # Thread Safety
//
// The arena is strictly single-goroutine: no locks, no atomics.
// Mutating it from several goroutines at once is a caller bug, not a
// checked condition. For concurrent workloads give each worker its
// own arena; an internally locked arena would forfeit the speed that
// justifies using one.
//
// # Performance Characteristics
//
//   - Allocation: O(1), branch-light, no per-allocation bookkeeping
//   - Reset / ResetTo: O(1)
//   - Release: O(1)
//   - Memory overhead: none beyond alignment padding
//
// # Metrics and Monitoring
//
// The arena exposes its usage for monitoring:
//
//	metrics := a.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", metrics.Utilization * 100)
//	fmt.Printf("Memory in use: %d bytes\n", metrics.SizeInUse)
//	fmt.Printf("Remaining: %d bytes\n", metrics.Remaining)
package arena
