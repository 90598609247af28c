// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

import "io"

// ReadFrom issues exactly one r.Read call against the first contiguous
// sub-slice of the producer's vacant region (capped to max bytes, or
// the whole sub-slice if max <= 0) and returns the number of bytes moved
// into the buffer and the error r.Read reported. If the buffer is full,
// ReadFrom returns 0 and ErrWouldBlock without calling r.Read. A caller
// that wants to fill the buffer across several reads calls ReadFrom
// again; ReadFrom itself never loops.
//
// Go cannot specialize a method to Producer[byte] (methods may not add
// type parameters, and Producer[T] cannot be restricted to one
// instantiation), so this and the other stream helpers are free
// functions instead of methods.
//
// Bytes r.Read reports as read are always committed via advanceWrite
// before ReadFrom returns, even when r.Read also returns an error, so a
// failed read never leaves a partial advance uncommitted.
func ReadFrom(p *Producer[byte], r io.Reader, max int) (int, error) {
	left, _ := p.buf.vacantSlices()
	if len(left) == 0 {
		return 0, ErrWouldBlock
	}
	if max > 0 && len(left) > max {
		left = left[:max]
	}
	n, err := r.Read(left)
	if n > 0 {
		p.buf.advanceWrite(n)
	}
	return n, err
}

// WriteInto issues exactly one w.Write call against the first contiguous
// sub-slice of the consumer's occupied region (capped to max bytes, or
// the whole sub-slice if max <= 0) and returns the number of bytes moved
// out of the buffer and the error w.Write reported, or io.ErrShortWrite
// if w.Write accepted fewer bytes without reporting an error. If the
// buffer is empty, WriteInto returns 0 and ErrWouldBlock without calling
// w.Write. A caller that wants to drain the buffer across several writes
// calls WriteInto again; WriteInto itself never loops.
//
// Bytes w.Write reports as written are skipped (zeroed) and committed
// via advanceRead before WriteInto returns, so a failed or short write
// never drops bytes that were never actually delivered.
func WriteInto(c *Consumer[byte], w io.Writer, max int) (int, error) {
	left, _ := c.buf.occupiedSlices()
	if len(left) == 0 {
		return 0, ErrWouldBlock
	}
	if max > 0 && len(left) > max {
		left = left[:max]
	}
	n, err := w.Write(left)
	if n > 0 {
		zeroPrefix(left[:n], nil, n)
		c.buf.advanceRead(n)
	}
	if err != nil {
		return n, err
	}
	if n < len(left) {
		return n, io.ErrShortWrite
	}
	return n, nil
}

// Transfer moves up to max elements (or no limit if max <= 0) from src
// directly into dst, bounded by the lesser of src's occupied length and
// dst's vacant length as seen when Transfer starts. src and dst may
// belong to different buffers or to the same buffer; on the same buffer
// the moved elements are taken from the front and appended at the back.
// Returns the number of elements moved.
func Transfer[T any](src *Consumer[T], dst *Producer[T], max int) int {
	if limit := min(src.buf.OccupiedLen(), dst.buf.VacantLen()); max <= 0 || max > limit {
		max = limit
	}
	total := 0
	for total < max {
		srcLeft, _ := src.buf.occupiedSlices()
		dstLeft, _ := dst.buf.vacantSlices()
		if len(srcLeft) == 0 || len(dstLeft) == 0 {
			break
		}
		n := len(srcLeft)
		if n > len(dstLeft) {
			n = len(dstLeft)
		}
		if max > 0 && n > max-total {
			n = max - total
		}
		if n == 0 {
			break
		}
		copy(dstLeft, srcLeft[:n])
		var zero T
		for i := 0; i < n; i++ {
			srcLeft[i] = zero
		}
		src.buf.advanceRead(n)
		dst.buf.advanceWrite(n)
		total += n
	}
	return total
}
