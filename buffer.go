// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

import "sync"

// Buffer is the core ring buffer: a Storage[T] plus a read_end/write_end
// index pair. Buffer itself exposes no Push/Pop — callers go through the
// Producer and Consumer endpoints obtained from Split, which enforce the
// single-writer/single-reader discipline each index field depends on.
//
// Both indices advance through [0, 2*capacity) rather than wrapping at
// capacity directly. This "modulus" trick (modulus = 2*capacity) lets
// read_end == write_end mean empty unambiguously, while a full buffer
// (occupied_len == capacity) never collides with that encoding — no slot
// is sacrificed to tell the two states apart, unlike a plain mask scheme
// that needs capacity+1 slots or a separate counter.
type Buffer[T any] struct {
	storage   Storage[T]
	idx       indices
	splitOnce sync.Once
}

// newBuffer assembles a Buffer from storage and an index pair already at
// the given read/write positions. Both positions must be < 2*capacity.
func newBuffer[T any](storage Storage[T], idx indices) *Buffer[T] {
	return &Buffer[T]{storage: storage, idx: idx}
}

// Capacity returns the number of slots in the buffer. Constant for the
// life of the buffer.
func (b *Buffer[T]) Capacity() int {
	return b.storage.Capacity()
}

func (b *Buffer[T]) modulus() uint64 {
	return 2 * uint64(b.storage.Capacity())
}

// occupiedLenFrom computes occupied length given a read index snapshot
// and a write index snapshot, both already read by the caller.
func (b *Buffer[T]) occupiedLenFrom(readEnd, writeEnd uint64) int {
	m := b.modulus()
	return int((m + writeEnd - readEnd) % m)
}

// OccupiedLen returns the number of elements currently in the buffer.
//
// The result may be stale the instant it is returned if the counterpart
// endpoint is concurrently active: for a producer the real value can only
// be smaller than the one returned (the consumer may have already taken
// more); for a consumer it can only be larger (the producer may have
// already added more). Each endpoint's own contribution is always
// reflected immediately.
func (b *Buffer[T]) OccupiedLen() int {
	return b.occupiedLenFrom(b.idx.loadCounterpartRead(), b.idx.loadCounterpartWrite())
}

// VacantLen returns the number of free slots currently in the buffer.
// Subject to the same staleness caveat as OccupiedLen.
func (b *Buffer[T]) VacantLen() int {
	return b.Capacity() - b.OccupiedLen()
}

// IsEmpty reports whether OccupiedLen() == 0.
func (b *Buffer[T]) IsEmpty() bool {
	return b.OccupiedLen() == 0
}

// IsFull reports whether VacantLen() == 0.
func (b *Buffer[T]) IsFull() bool {
	return b.VacantLen() == 0
}

// sliceRange is a half-open slot range [lo, hi) within [0, capacity), one
// of the at most two contiguous pieces regionRanges splits a region into.
type sliceRange struct {
	lo, hi int
}

// regionRanges returns, in order, the slot ranges covered by n elements
// starting at position start (a raw index already reduced modulo
// capacity via start%capacity, with wrap handled here).
func (b *Buffer[T]) regionRanges(start uint64, n int) (sliceRange, sliceRange) {
	capacity := b.storage.Capacity()
	if n == 0 {
		return sliceRange{}, sliceRange{}
	}
	lo := int(start % uint64(capacity))
	if lo+n <= capacity {
		return sliceRange{lo, lo + n}, sliceRange{}
	}
	return sliceRange{lo, capacity}, sliceRange{0, n - (capacity - lo)}
}

// occupiedSlices returns, in order, up to two contiguous slices covering
// every currently occupied slot. The slices observe a snapshot of the
// indices taken at call time; concurrent activity by the producer may
// add elements not reflected here, but never removes what is already
// reflected (that is the consumer's own doing).
func (b *Buffer[T]) occupiedSlices() ([]T, []T) {
	readEnd := b.idx.loadSelfRead()
	writeEnd := b.idx.loadCounterpartWrite()
	n := b.occupiedLenFrom(readEnd, writeEnd)
	r1, r2 := b.regionRanges(readEnd, n)
	return b.storage.Slice(r1.lo, r1.hi), sliceOrNil(b.storage, r2)
}

// vacantSlices returns, in order, up to two contiguous slices covering
// every currently vacant slot, symmetric to occupiedSlices.
func (b *Buffer[T]) vacantSlices() ([]T, []T) {
	writeEnd := b.idx.loadSelfWrite()
	readEnd := b.idx.loadCounterpartRead()
	occupied := b.occupiedLenFrom(readEnd, writeEnd)
	n := b.storage.Capacity() - occupied
	r1, r2 := b.regionRanges(writeEnd, n)
	return b.storage.Slice(r1.lo, r1.hi), sliceOrNil(b.storage, r2)
}

func sliceOrNil[T any](s Storage[T], r sliceRange) []T {
	if r.lo == r.hi {
		return nil
	}
	return s.Slice(r.lo, r.hi)
}

// advanceRead moves the read index forward by count, wrapping modulo
// 2*capacity. It does not check count against the occupied length —
// callers (Consumer) are expected to have already bounded count
// against a slice or length they obtained from this same buffer.
func (b *Buffer[T]) advanceRead(count int) {
	if count == 0 {
		return
	}
	m := b.modulus()
	cur := b.idx.loadSelfRead()
	b.idx.storeRead((cur + uint64(count)) % m)
}

// advanceWrite moves the write index forward by count, wrapping modulo
// 2*capacity. See advanceRead for the bounding contract.
func (b *Buffer[T]) advanceWrite(count int) {
	if count == 0 {
		return
	}
	m := b.modulus()
	cur := b.idx.loadSelfWrite()
	b.idx.storeWrite((cur + uint64(count)) % m)
}

// Close zeroes every occupied slot and drops the buffer's hold on its
// storage. It is not safe to call Close while a Producer or Consumer
// obtained from Split is still in use.
func (b *Buffer[T]) Close() {
	left, right := b.occupiedSlices()
	var zero T
	for i := range left {
		left[i] = zero
	}
	for i := range right {
		right[i] = zero
	}
	b.storage = nil
}

// FromRawParts assembles a Buffer directly from storage and raw index
// values. readEnd and writeEnd must each be < 2*storage.Capacity(), and
// the occupied region they describe must already hold valid elements of
// T. Most callers want [New] or [NewLocal] instead; FromRawParts exists
// for reconstructing a buffer whose state was persisted or transferred
// out of process.
func FromRawParts[T any](storage Storage[T], readEnd, writeEnd uint64, atomic bool) *Buffer[T] {
	var idx indices
	if atomic {
		ai := &atomicIndices{}
		ai.readEnd.StoreRelaxed(readEnd)
		ai.writeEnd.StoreRelaxed(writeEnd)
		idx = ai
	} else {
		idx = &localIndices{readEnd: readEnd, writeEnd: writeEnd}
	}
	return newBuffer[T](storage, idx)
}

// IntoRawParts decomposes the buffer into its storage and current raw
// index values, consuming it. The buffer must not be used afterward.
func IntoRawParts[T any](b *Buffer[T]) (storage Storage[T], readEnd, writeEnd uint64) {
	return b.storage, b.idx.loadSelfRead(), b.idx.loadSelfWrite()
}
