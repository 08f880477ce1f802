package arena_test

import (
	"fmt"
	"testing"

	arena "github.com/FurkanKirat/arena-allocator"
)

// BenchmarkSmallAllocations tests small allocation patterns (8-64 bytes)
// These are common for small objects, pointers, and basic data structures
func BenchmarkSmallAllocations(b *testing.B) {
	sizes := []int{8, 16, 32, 64}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("Arena_%dB", size), func(b *testing.B) {
			a, err := arena.NewArena(64 * 1024)
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if a.AllocBytes(size) == nil {
					a.Reset()
				}
			}
		})

		b.Run(fmt.Sprintf("Builtin_%dB", size), func(b *testing.B) {
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_ = make([]byte, size)
			}
		})
	}
}

// BenchmarkMediumAllocations tests medium allocation patterns (128-1024 bytes)
// These are common for structs, small buffers, and data processing
func BenchmarkMediumAllocations(b *testing.B) {
	sizes := []int{128, 256, 512, 1024}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("Arena_%dB", size), func(b *testing.B) {
			a, err := arena.NewArena(256 * 1024)
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if a.AllocBytes(size) == nil {
					a.Reset()
				}
			}
		})

		b.Run(fmt.Sprintf("Builtin_%dB", size), func(b *testing.B) {
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_ = make([]byte, size)
			}
		})
	}
}

// BenchmarkMixedAlignments measures the cost of the padding arithmetic
// when requests alternate between loose and strict alignment.
func BenchmarkMixedAlignments(b *testing.B) {
	aligns := []uintptr{1, 4, 8, 16}

	b.Run("Arena", func(b *testing.B) {
		a, err := arena.NewArena(256 * 1024)
		if err != nil {
			b.Fatal(err)
		}
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			if a.Alloc(24, aligns[i%len(aligns)]) == nil {
				a.Reset()
			}
		}
	})
}

// BenchmarkMarkerScoping compares marker-based partial resets against
// a full reset per batch.
func BenchmarkMarkerScoping(b *testing.B) {
	b.Run("ResetTo", func(b *testing.B) {
		a, err := arena.NewArena(256 * 1024)
		if err != nil {
			b.Fatal(err)
		}
		// Long-lived header the rollbacks must preserve
		arena.AllocArray[int64](a, 64)
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			m := a.Marker()
			for j := 0; j < 16; j++ {
				a.AllocBytes(256)
			}
			a.ResetTo(m)
		}
	})

	b.Run("FullReset", func(b *testing.B) {
		a, err := arena.NewArena(256 * 1024)
		if err != nil {
			b.Fatal(err)
		}
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			for j := 0; j < 16; j++ {
				a.AllocBytes(256)
			}
			a.Reset()
		}
	})
}

// BenchmarkExhaustionPath measures the failure path: requests that
// never fit must cost no more than a bounds check.
func BenchmarkExhaustionPath(b *testing.B) {
	a, err := arena.NewArena(64)
	if err != nil {
		b.Fatal(err)
	}
	a.AllocBytes(64) // fill it

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if a.AllocBytes(128) != nil {
			b.Fatal("allocation unexpectedly succeeded")
		}
	}
}
