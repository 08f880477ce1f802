package arena

import (
	"errors"
	"unsafe"
)

// MaxAlign is the default allocation alignment: the strictest natural
// alignment required by the platform.
const MaxAlign = unsafe.Sizeof(uintptr(0))

// ErrInvalidSize is returned by NewArena when the requested capacity
// is not a positive byte count.
var ErrInvalidSize = errors.New("arena: size must be positive")

// Arena is a fixed-capacity bump allocator over a single contiguous
// buffer. It never grows: when the buffer is exhausted, allocations
// return nil until the arena is reset. Not goroutine-safe; give each
// worker its own arena rather than sharing one behind a lock.
type Arena struct {
	noCopy noCopy

	buf    []byte  // backing memory, nil after Release
	offset uintptr // bytes consumed so far, 0 <= offset <= len(buf)
}

// Marker is a snapshot of an arena's allocation position, taken with
// Arena.Marker and consumed by Arena.ResetTo. A Marker is a plain
// value tied to the arena that produced it; it holds no memory.
type Marker uintptr

// NewArena creates an arena backed by a buffer of exactly size bytes.
// Returns ErrInvalidSize if size is not positive.
func NewArena(size int) (*Arena, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	return &Arena{buf: make([]byte, size)}, nil
}

// Alloc reserves size bytes whose starting address is a multiple of
// align, and returns a pointer to the reserved range. align must be a
// power of two. If the remaining capacity cannot fit the padded
// request, Alloc returns nil and the arena is left untouched; running
// out of space is an expected outcome, not an error.
//
// The returned memory is not zeroed once the arena has been reused
// after a Reset. The pointer is valid until the next Reset, a ResetTo
// rolling back past it, or Release.
func (a *Arena) Alloc(size int, align uintptr) unsafe.Pointer {
	if size <= 0 {
		return nil
	}
	if align == 0 || align&(align-1) != 0 {
		panic("arena: align must be a power of two")
	}
	if a.buf == nil {
		panic("arena: use after Release()")
	}

	// Mask arithmetic instead of modulo: pad is the distance from the
	// current absolute address up to the next multiple of align.
	cur := uintptr(unsafe.Pointer(&a.buf[0])) + a.offset
	pad := -cur & (align - 1)

	if pad+uintptr(size) > uintptr(len(a.buf))-a.offset {
		return nil
	}

	p := unsafe.Pointer(&a.buf[a.offset+pad])
	a.offset += pad + uintptr(size)
	return p
}

// AllocBytes reserves n bytes at MaxAlign alignment and returns them
// as a []byte backed by the arena. Returns nil if n <= 0 or the arena
// cannot fit the request.
func (a *Arena) AllocBytes(n int) []byte {
	p := a.Alloc(n, MaxAlign)
	if p == nil {
		return nil
	}
	return unsafe.Slice((*byte)(p), n)
}

// Reset rewinds the allocation offset to zero so the buffer can be
// reused from the start, in O(1).
//
// Reset never tears down contained values: objects previously placed
// in the arena get no finalization of any kind, their bytes are simply
// up for reuse. Callers holding types with teardown logic must run it
// themselves before resetting, or restrict the arena to plain data.
func (a *Arena) Reset() {
	a.panicIfReleased()
	a.offset = 0
}

// Marker returns the current allocation position. Allocate, then pass
// the marker to ResetTo to reclaim exactly the bytes allocated since.
func (a *Arena) Marker() Marker {
	return Marker(a.offset)
}

// ResetTo rewinds the allocation offset to a position previously
// obtained from Marker on this same arena, in O(1). Everything
// allocated after the marker is reclaimed; everything before it is
// preserved.
//
// Markers must be consumed in LIFO order with respect to the
// allocations between them. ResetTo does not validate the marker:
// restoring a marker from another arena, or out of order, corrupts
// the allocation state. Like Reset, ResetTo never tears down values
// in the reclaimed range.
func (a *Arena) ResetTo(m Marker) {
	a.panicIfReleased()
	a.offset = uintptr(m)
}

// Release drops the backing buffer and makes the arena unusable.
// Subsequent allocations and resets panic. The buffer is returned to
// the runtime; pointers previously handed out must no longer be used.
func (a *Arena) Release() {
	a.buf = nil
	a.offset = 0
}

// panicIfReleased panics if the arena has been released.
func (a *Arena) panicIfReleased() {
	if a.buf == nil {
		panic("arena: use after Release()")
	}
}

// noCopy flags copies of an Arena value to go vet. The buffer has one
// logical owner; pass arenas by pointer.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
