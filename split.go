// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

// New creates a Buffer of the given capacity backed by a freshly
// allocated slice, with a cache-line-padded atomic index pair. The
// buffer returned by New is safe to Split into a Producer and Consumer
// running on different goroutines.
func New[T any](capacity int) *Buffer[T] {
	storage := newDynamicStorage[T](capacity)
	return newBuffer[T](storage, &atomicIndices{})
}

// NewLocal creates a Buffer of the given capacity with a plain,
// non-atomic index pair. Both endpoints obtained from Split must be
// driven from the same goroutine; using them across goroutines without
// external synchronization is a data race.
func NewLocal[T any](capacity int) *Buffer[T] {
	storage := newDynamicStorage[T](capacity)
	return newBuffer[T](storage, &localIndices{})
}

// Split decomposes the buffer into a Producer and a Consumer, the only
// way to obtain either endpoint. Split panics if called more than once
// on the same buffer: a second pair would share the index fields with
// the first, silently breaking the single-writer/single-reader
// discipline those fields depend on.
func (b *Buffer[T]) Split() (*Producer[T], *Consumer[T]) {
	var prod *Producer[T]
	var cons *Consumer[T]
	b.splitOnce.Do(func() {
		prod = &Producer[T]{buf: b}
		cons = &Consumer[T]{buf: b}
	})
	if prod == nil {
		panic("ring: buffer already split")
	}
	return prod, cons
}
