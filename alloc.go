package arena

import (
	"math"
	"runtime"
	"unsafe"
)

// New reserves an aligned slot for a T inside the arena, stores v in
// it, and returns a pointer to the stored copy. The arena keeps
// ownership of the bytes; the caller gets use of the value. Returns
// nil if the arena cannot fit the slot, with nothing stored.
func New[T any](a *Arena, v T) *T {
	p := AllocUninitialized[T](a)
	if p == nil {
		return nil
	}
	*p = v
	return p
}

// Alloc reserves an aligned slot for a T and returns a pointer to a
// zeroed value. Returns nil if the arena cannot fit the slot.
func Alloc[T any](a *Arena) *T {
	p := AllocUninitialized[T](a)
	if p == nil {
		return nil
	}
	var zero T
	*p = zero
	return p
}

// AllocUninitialized reserves an aligned slot for a T without zeroing
// it. Faster than Alloc, but once the arena has been reset and reused
// the slot holds whatever bytes were there before. Returns nil if the
// arena cannot fit the slot.
func AllocUninitialized[T any](a *Arena) *T {
	var zero T
	size := unsafe.Sizeof(zero)
	if size == 0 {
		// Zero-size types need no arena space.
		return new(T)
	}
	return (*T)(a.Alloc(int(size), unsafe.Alignof(zero)))
}

// AllocArray reserves n contiguous, uninitialized slots of type T and
// returns them as a slice. Elements sit at a uniform sizeof(T) stride;
// the caller initializes each slot before use. Returns nil if n <= 0
// or the arena cannot fit the array.
func AllocArray[T any](a *Arena, n int) []T {
	if n <= 0 {
		return nil
	}
	var zero T
	size := unsafe.Sizeof(zero)
	if size == 0 {
		return make([]T, n)
	}
	if uintptr(n) > math.MaxInt/size {
		return nil
	}
	p := a.Alloc(n*int(size), unsafe.Alignof(zero))
	if p == nil {
		return nil
	}
	return unsafe.Slice((*T)(p), n)
}

// AllocArrayZeroed is AllocArray with every slot zeroed. Slower, but
// safe to read before the caller writes.
func AllocArrayZeroed[T any](a *Arena, n int) []T {
	s := AllocArray[T](a, n)
	if s == nil {
		return nil
	}
	clear(s)
	return s
}

// PtrAndKeepAlive returns t and calls runtime.KeepAlive on the arena.
// This is useful to prevent the arena from being garbage collected
// while the pointer is still in use in unsafe code.
func PtrAndKeepAlive[T any](a *Arena, t *T) *T {
	runtime.KeepAlive(a)
	return t
}
