// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

import "iter"

// Consumer is the read end of a split Buffer. A Consumer must not be
// used from more than one goroutine at a time, symmetric to [Producer].
type Consumer[T any] struct {
	buf *Buffer[T]
}

// Capacity returns the buffer's total capacity.
func (c *Consumer[T]) Capacity() int { return c.buf.Capacity() }

// OccupiedLen returns the number of elements currently available to pop.
// See [Buffer.OccupiedLen] for the staleness caveat.
func (c *Consumer[T]) OccupiedLen() int { return c.buf.OccupiedLen() }

// VacantLen returns the number of free slots the producer currently has.
func (c *Consumer[T]) VacantLen() int { return c.buf.VacantLen() }

// IsEmpty reports whether the buffer currently holds no elements.
func (c *Consumer[T]) IsEmpty() bool { return c.buf.IsEmpty() }

// IsFull reports whether the buffer currently has no vacant slots.
func (c *Consumer[T]) IsFull() bool { return c.buf.IsFull() }

// TryPop removes and returns the oldest element in the buffer. Returns
// ErrWouldBlock and the zero value of T if the buffer is empty at the
// moment of the call.
func (c *Consumer[T]) TryPop() (T, error) {
	left, _ := c.buf.occupiedSlices()
	if len(left) == 0 {
		var zero T
		return zero, ErrWouldBlock
	}
	v := left[0]
	var zero T
	left[0] = zero
	c.buf.advanceRead(1)
	return v, nil
}

// PeekSlices returns, in order, up to two contiguous slices covering
// every currently occupied slot. The caller may read (but must not
// mutate element identity beyond what T's own methods allow) these
// slices directly and then call Skip with the number of elements
// actually consumed, in order starting from the first slice.
//
// The slices reflect a snapshot taken at call time; concurrent producer
// activity may only grow the occupied region further, never shrink it.
func (c *Consumer[T]) PeekSlices() ([]T, []T) {
	return c.buf.occupiedSlices()
}

// Skip discards count elements already read from the slices returned by
// the most recent PeekSlices call, zeroing them to drop any references
// they held. Panics if count exceeds OccupiedLen().
func (c *Consumer[T]) Skip(count int) int {
	occupied := c.buf.OccupiedLen()
	if count < 0 || count > occupied {
		panic("ring: Skip count out of range")
	}
	left, right := c.buf.occupiedSlices()
	zeroPrefix(left, right, count)
	c.buf.advanceRead(count)
	return count
}

// Clear removes every currently occupied element, zeroing each slot, and
// returns the number of elements removed.
func (c *Consumer[T]) Clear() int {
	left, right := c.buf.occupiedSlices()
	n := len(left) + len(right)
	zeroPrefix(left, right, n)
	c.buf.advanceRead(n)
	return n
}

// PopSlice copies as many elements as fit from the buffer's current
// occupied region into dst and returns the number copied. PopSlice never
// blocks and never returns an error: a partial (including zero-length)
// copy simply means the buffer was, or became, empty.
func (c *Consumer[T]) PopSlice(dst []T) int {
	if len(dst) == 0 {
		return 0
	}
	left, right := c.buf.occupiedSlices()
	n := copy(dst, left)
	if n < len(dst) {
		n += copy(dst[n:], right)
	}
	zeroPrefix(left, right, n)
	c.buf.advanceRead(n)
	return n
}

// PopIter returns an iterator over the elements occupied at the moment
// PopIter is called, in FIFO order, zeroing each slot as it is yielded.
// The snapshot is fixed at call time: concurrent producer activity after
// PopIter returns is not reflected in the sequence. The read index is
// advanced once, by the number of elements actually yielded, when the
// iteration stops — whether by running out or by the range loop
// breaking early — rather than once per element.
//
// No other method on c may be called until the returned sequence has
// been fully ranged over or abandoned: c owns the read index exclusively
// while the batched advance is pending, the same exclusivity a borrow
// checker would enforce on the original Rust PopIter.
func (c *Consumer[T]) PopIter() iter.Seq[T] {
	left, right := c.buf.occupiedSlices()
	return func(yield func(T) bool) {
		consumed := 0
		defer func() {
			zeroPrefix(left, right, consumed)
			c.buf.advanceRead(consumed)
		}()
		for i := range left {
			consumed++
			if !yield(left[i]) {
				return
			}
		}
		for i := range right {
			consumed++
			if !yield(right[i]) {
				return
			}
		}
	}
}

// Values returns a non-destructive iterator over every currently
// occupied element, in FIFO order, without advancing the read index.
// Concurrent producer activity may extend, but never invalidate, the
// elements already being iterated.
func (c *Consumer[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		left, right := c.buf.occupiedSlices()
		for i := range left {
			if !yield(left[i]) {
				return
			}
		}
		for i := range right {
			if !yield(right[i]) {
				return
			}
		}
	}
}

// Close releases this endpoint's reference to the underlying buffer.
// See [Producer.Close] for the use-after-close caveat.
func (c *Consumer[T]) Close() {
	c.buf = nil
}

// zeroPrefix zeros the first n elements across left then right, in
// order, matching the layout returned by occupiedSlices.
func zeroPrefix[T any](left, right []T, n int) {
	var zero T
	for i := 0; i < n && i < len(left); i++ {
		left[i] = zero
	}
	if n > len(left) {
		for i := 0; i < n-len(left) && i < len(right); i++ {
			right[i] = zero
		}
	}
}
