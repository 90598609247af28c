// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

import "iter"

// Producer is the write end of a split Buffer. A Producer must not be
// used from more than one goroutine at a time; obtaining it from
// [Buffer.Split] (or [New]/[NewLocal] plus Split) establishes that as the
// sole owner of the buffer's write index.
type Producer[T any] struct {
	buf *Buffer[T]
}

// Capacity returns the buffer's total capacity.
func (p *Producer[T]) Capacity() int { return p.buf.Capacity() }

// OccupiedLen returns the number of elements currently queued for the
// consumer. See [Buffer.OccupiedLen] for the staleness caveat.
func (p *Producer[T]) OccupiedLen() int { return p.buf.OccupiedLen() }

// VacantLen returns the number of slots this producer can still push
// into before the next TryPush would return ErrWouldBlock.
func (p *Producer[T]) VacantLen() int { return p.buf.VacantLen() }

// IsEmpty reports whether the buffer currently holds no elements.
func (p *Producer[T]) IsEmpty() bool { return p.buf.IsEmpty() }

// IsFull reports whether the buffer currently has no vacant slots.
func (p *Producer[T]) IsFull() bool { return p.buf.IsFull() }

// TryPush writes elem into the buffer. Returns ErrWouldBlock if the
// buffer is full at the moment of the call.
func (p *Producer[T]) TryPush(elem T) error {
	left, _ := p.buf.vacantSlices()
	if len(left) == 0 {
		return ErrWouldBlock
	}
	left[0] = elem
	p.buf.advanceWrite(1)
	return nil
}

// VacantSlices returns, in order, up to two contiguous slices covering
// every slot currently free for writing. The caller may write directly
// into these slices and then call Advance with the number of elements
// actually written, in order starting from the first slice.
//
// The slices reflect a snapshot taken at call time; concurrent consumer
// activity may only grow the vacant region further, never shrink it.
func (p *Producer[T]) VacantSlices() ([]T, []T) {
	return p.buf.vacantSlices()
}

// Advance commits count elements already written into the slices
// returned by the most recent VacantSlices call. Panics if count
// exceeds VacantLen().
func (p *Producer[T]) Advance(count int) {
	if count < 0 || count > p.buf.VacantLen() {
		panic("ring: Advance count out of range")
	}
	p.buf.advanceWrite(count)
}

// PushSlice copies as many elements of src as fit into the buffer's
// current vacant region and returns the number copied. PushSlice never
// blocks and never returns an error: a partial (including zero-length)
// copy simply means the buffer was, or became, full.
func (p *Producer[T]) PushSlice(src []T) int {
	if len(src) == 0 {
		return 0
	}
	left, right := p.buf.vacantSlices()
	n := copy(left, src)
	src = src[n:]
	if len(src) > 0 {
		n += copy(right, src)
	}
	p.buf.advanceWrite(n)
	return n
}

// PushIter pushes elements from seq until the buffer is full or seq is
// exhausted, whichever comes first, and returns the number of elements
// pushed. The vacant region is taken once, at the start; PushIter stops
// requesting elements as soon as that region is filled, so every element
// taken from seq is stored. The write index is advanced once, by the
// number of elements stored, when seq returns (or panics).
func (p *Producer[T]) PushIter(seq iter.Seq[T]) int {
	left, right := p.buf.vacantSlices()
	room := len(left) + len(right)
	if room == 0 {
		return 0
	}
	n := 0
	defer func() { p.buf.advanceWrite(n) }()
	seq(func(v T) bool {
		if n < len(left) {
			left[n] = v
		} else {
			right[n-len(left)] = v
		}
		n++
		return n < room
	})
	return n
}

// Close releases this endpoint's reference to the underlying buffer.
// After Close, further calls on this Producer panic with a nil pointer
// dereference, since Go cannot statically forbid use-after-close the
// way a linear type system would.
func (p *Producer[T]) Close() {
	p.buf = nil
}
