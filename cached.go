// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

// CachedMode selects how a cached endpoint publishes its own advances to
// the counterpart.
type CachedMode int

const (
	// Immediate publishes every advance to the shared index right away,
	// same as the plain Producer/Consumer.
	Immediate CachedMode = iota
	// Postponed buffers advances locally and only publishes them on
	// Sync, a mode switch to Immediate, or Close. The counterpart does
	// not observe postponed work until one of those happens.
	Postponed
)

// CachedProducer wraps a Producer with a thread-private snapshot of the
// consumer's read index, refreshed only when the cached view appears
// full, the same technique code.hybscloud.com/lfq's SPSC[T] uses for its
// cachedHead field. In Postponed mode it additionally defers publishing
// its own advances, so a batch of pushes costs one release-store instead
// of one per element.
type CachedProducer[T any] struct {
	buf        *Buffer[T]
	mode       CachedMode
	cachedRead uint64
	pending    uint64
}

// NewCachedProducer wraps p for cached access. p must not be used
// directly afterward.
func NewCachedProducer[T any](p *Producer[T], mode CachedMode) *CachedProducer[T] {
	buf := p.buf
	return &CachedProducer[T]{
		buf:        buf,
		mode:       mode,
		cachedRead: buf.idx.loadCounterpartRead(),
	}
}

// TryPush writes elem into the buffer, consulting the cached read index
// snapshot before falling back to a fresh acquire-load. Returns
// ErrWouldBlock if the buffer is full even after refreshing the
// snapshot.
func (cp *CachedProducer[T]) TryPush(elem T) error {
	virtualWrite := (cp.buf.idx.loadSelfWrite() + cp.pending) % cp.buf.modulus()
	if cp.buf.occupiedLenFrom(cp.cachedRead, virtualWrite) == cp.buf.Capacity() {
		cp.cachedRead = cp.buf.idx.loadCounterpartRead()
		if cp.buf.occupiedLenFrom(cp.cachedRead, virtualWrite) == cp.buf.Capacity() {
			return ErrWouldBlock
		}
	}
	r, _ := cp.buf.regionRanges(virtualWrite, 1)
	cp.buf.storage.Slice(r.lo, r.hi)[0] = elem
	cp.pending++
	if cp.mode == Immediate {
		cp.flush()
	}
	return nil
}

func (cp *CachedProducer[T]) flush() {
	if cp.pending == 0 {
		return
	}
	cp.buf.advanceWrite(int(cp.pending))
	cp.pending = 0
}

// Sync publishes any advances buffered in Postponed mode. A no-op in
// Immediate mode, since there is never anything buffered.
func (cp *CachedProducer[T]) Sync() {
	cp.flush()
}

// ToImmediate switches the producer to Immediate mode, first publishing
// any buffered advances.
func (cp *CachedProducer[T]) ToImmediate() {
	cp.flush()
	cp.mode = Immediate
}

// ToPostponed switches the producer to Postponed mode.
func (cp *CachedProducer[T]) ToPostponed() {
	cp.mode = Postponed
}

// Close publishes any buffered advances and releases the underlying
// buffer reference.
func (cp *CachedProducer[T]) Close() {
	cp.flush()
	cp.buf = nil
}

// CachedConsumer wraps a Consumer with a thread-private snapshot of the
// producer's write index, symmetric to CachedProducer.
type CachedConsumer[T any] struct {
	buf         *Buffer[T]
	mode        CachedMode
	cachedWrite uint64
	pending     uint64
}

// NewCachedConsumer wraps c for cached access. c must not be used
// directly afterward.
func NewCachedConsumer[T any](c *Consumer[T], mode CachedMode) *CachedConsumer[T] {
	buf := c.buf
	return &CachedConsumer[T]{
		buf:         buf,
		mode:        mode,
		cachedWrite: buf.idx.loadCounterpartWrite(),
	}
}

// TryPop removes and returns the oldest element, consulting the cached
// write index snapshot before falling back to a fresh acquire-load.
// Returns ErrWouldBlock if the buffer is empty even after refreshing.
func (cc *CachedConsumer[T]) TryPop() (T, error) {
	virtualRead := (cc.buf.idx.loadSelfRead() + cc.pending) % cc.buf.modulus()
	if cc.buf.occupiedLenFrom(virtualRead, cc.cachedWrite) == 0 {
		cc.cachedWrite = cc.buf.idx.loadCounterpartWrite()
		if cc.buf.occupiedLenFrom(virtualRead, cc.cachedWrite) == 0 {
			var zero T
			return zero, ErrWouldBlock
		}
	}
	r, _ := cc.buf.regionRanges(virtualRead, 1)
	slot := cc.buf.storage.Slice(r.lo, r.hi)
	v := slot[0]
	var zero T
	slot[0] = zero
	cc.pending++
	if cc.mode == Immediate {
		cc.flush()
	}
	return v, nil
}

func (cc *CachedConsumer[T]) flush() {
	if cc.pending == 0 {
		return
	}
	cc.buf.advanceRead(int(cc.pending))
	cc.pending = 0
}

// Sync publishes any advances buffered in Postponed mode.
func (cc *CachedConsumer[T]) Sync() {
	cc.flush()
}

// ToImmediate switches the consumer to Immediate mode, first publishing
// any buffered advances.
func (cc *CachedConsumer[T]) ToImmediate() {
	cc.flush()
	cc.mode = Immediate
}

// ToPostponed switches the consumer to Postponed mode.
func (cc *CachedConsumer[T]) ToPostponed() {
	cc.mode = Postponed
}

// Close publishes any buffered advances and releases the underlying
// buffer reference.
func (cc *CachedConsumer[T]) Close() {
	cc.flush()
	cc.buf = nil
}
