// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

import "code.hybscloud.com/atomix"

// pad is a cache-line-sized gap used to keep independently-written fields
// on separate cache lines.
type pad [64]byte

// indices owns the read_end/write_end pair for a Buffer. Both indices live
// in [0, modulus) where modulus is twice the buffer's capacity; the caller is
// responsible for wrapping slot offsets with modulo capacity separately
// from advancing these indices modulo 2*capacity.
//
// Method names are from the perspective of a single caller: self is the
// index this caller owns and advances, counterpart is the other side's
// index. loadSelf is relaxed because only the owner ever writes self.
// loadCounterpart is acquire because it synchronizes with the
// counterpart's storeRead/storeWrite (release), making any slot writes the
// counterpart published visible before this caller reads them.
type indices interface {
	loadSelfRead() uint64
	loadCounterpartRead() uint64
	storeRead(v uint64)

	loadSelfWrite() uint64
	loadCounterpartWrite() uint64
	storeWrite(v uint64)
}

// atomicIndices is the cross-goroutine index pair: read_end and write_end
// are each an atomix.Uint64, cache-line padded so the producer's writes to
// write_end never false-share with the consumer's writes to read_end.
type atomicIndices struct {
	_        pad
	readEnd  atomix.Uint64
	_        pad
	writeEnd atomix.Uint64
	_        pad
}

func (idx *atomicIndices) loadSelfRead() uint64        { return idx.readEnd.LoadRelaxed() }
func (idx *atomicIndices) loadCounterpartRead() uint64 { return idx.readEnd.LoadAcquire() }
func (idx *atomicIndices) storeRead(v uint64)          { idx.readEnd.StoreRelease(v) }

func (idx *atomicIndices) loadSelfWrite() uint64        { return idx.writeEnd.LoadRelaxed() }
func (idx *atomicIndices) loadCounterpartWrite() uint64 { return idx.writeEnd.LoadAcquire() }
func (idx *atomicIndices) storeWrite(v uint64)          { idx.writeEnd.StoreRelease(v) }

// localIndices is the single-goroutine index pair: plain uint64 fields,
// no atomics, no padding. Both endpoints must be driven from the same
// goroutine (directly or with external synchronization), as with the
// Rust ringbuf crate's LocalRb.
type localIndices struct {
	readEnd  uint64
	writeEnd uint64
}

func (idx *localIndices) loadSelfRead() uint64        { return idx.readEnd }
func (idx *localIndices) loadCounterpartRead() uint64 { return idx.readEnd }
func (idx *localIndices) storeRead(v uint64)          { idx.readEnd = v }

func (idx *localIndices) loadSelfWrite() uint64        { return idx.writeEnd }
func (idx *localIndices) loadCounterpartWrite() uint64 { return idx.writeEnd }
func (idx *localIndices) storeWrite(v uint64)          { idx.writeEnd = v }
