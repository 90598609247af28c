// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

// Storage is a fixed-capacity, possibly-uninitialized backing region for
// ring buffer elements. It knows nothing about read/write indices or
// initialization state — that bookkeeping belongs entirely to Buffer.
//
// Slice returns a view of the slots [lo, hi). The caller must ensure
// 0 <= lo <= hi <= Capacity().
type Storage[T any] interface {
	Capacity() int
	Slice(lo, hi int) []T
}

// dynamicStorage is a heap-allocated Storage backed by a single make([]T, n)
// slice. This is the default, used by New and NewLocal.
type dynamicStorage[T any] struct {
	data []T
}

// newDynamicStorage allocates a dynamicStorage of the given capacity.
// Panics if capacity is not strictly positive.
func newDynamicStorage[T any](capacity int) *dynamicStorage[T] {
	if capacity <= 0 {
		panic("ring: capacity must be > 0")
	}
	return &dynamicStorage[T]{data: make([]T, capacity)}
}

func (s *dynamicStorage[T]) Capacity() int { return len(s.data) }

func (s *dynamicStorage[T]) Slice(lo, hi int) []T { return s.data[lo:hi] }

// staticStorage wraps a caller-supplied slice as Storage, without
// allocating. This is the Go stand-in for an inline fixed-size array
// variant: the caller owns a fixed-length array (or a slice over one)
// and hands it to the ring buffer instead of letting the buffer
// allocate its own.
type staticStorage[T any] struct {
	data []T
}

// newStaticStorage wraps backing as Storage. Panics if backing is empty.
// The full length of backing becomes the buffer's capacity; backing must
// not be reused elsewhere while the Storage is in use.
func newStaticStorage[T any](backing []T) *staticStorage[T] {
	if len(backing) == 0 {
		panic("ring: static storage must have capacity > 0")
	}
	return &staticStorage[T]{data: backing}
}

func (s *staticStorage[T]) Capacity() int { return len(s.data) }

func (s *staticStorage[T]) Slice(lo, hi int) []T { return s.data[lo:hi] }

// NewStaticStorage wraps an existing slice as Storage[T], for use with
// FromRawParts or as the backing region of a buffer whose memory the
// caller wants to control (e.g. pre-allocated, pooled, or pinned).
//
// The returned Storage takes the full length of backing as its capacity.
// Panics if backing is empty.
func NewStaticStorage[T any](backing []T) Storage[T] {
	return newStaticStorage(backing)
}
