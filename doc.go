// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package ring provides a single-producer/single-consumer lock-free ring
// buffer.
//
// Unlike code.hybscloud.com/lfq, which trades a fixed element copy for
// raw throughput, ring is built around exposing the buffer's occupied and
// vacant regions as contiguous slices, so callers can batch operations
// (bulk copies, io.Reader/io.Writer adaptors) without going through the
// queue's single-item API one item at a time.
//
// # Quick Start
//
//	buf := ring.New[Event](1024)
//	prod, cons := buf.Split()
//
//	go func() { // Producer
//		backoff := iox.Backoff{}
//		for ev := range events {
//			for prod.TryPush(ev) != nil {
//				backoff.Wait()
//			}
//			backoff.Reset()
//		}
//	}()
//
//	go func() { // Consumer
//		backoff := iox.Backoff{}
//		for {
//			ev, err := cons.TryPop()
//			if err != nil {
//				backoff.Wait()
//				continue
//			}
//			backoff.Reset()
//			process(ev)
//		}
//	}()
//
// # Index Discipline
//
// Occupied length is tracked without a dedicated counter: both the read
// and write index live in [0, 2·capacity) and their difference modulo
// 2·capacity gives occupied_len in [0, capacity], so read_end == write_end
// unambiguously means empty and a full buffer never aliases that state.
//
// # Two Flavors
//
// New creates a buffer with a cache-line-padded atomic index pair, safe
// to Split and move each endpoint to its own goroutine. NewLocal creates
// a buffer with a plain (non-atomic) index pair, for use entirely within
// one goroutine — its endpoints must never cross a goroutine boundary.
//
// # Cached Endpoints
//
// CachedProducer and CachedConsumer wrap the plain endpoints with a
// thread-private snapshot of the counterpart's index, refreshed only
// when the local view appears full or empty. In Postponed mode the
// local advance is buffered until Sync, ToImmediate, or Close — useful
// when a batch of operations can tolerate the counterpart seeing them
// late in exchange for fewer atomic round trips.
//
// # Byte Streams
//
// ReadFrom and WriteInto let a byte-element buffer act as a staging
// area between a producer and an io.Reader, or a consumer and an
// io.Writer, moving at most one contiguous sub-slice per call so a
// failed call never leaves a partial advance behind.
//
// # Error Handling
//
// Operations that cannot proceed immediately return
// [code.hybscloud.com/iox.ErrWouldBlock] rather than blocking. The
// buffer never blocks, spins, or parks internally — see
// [code.hybscloud.com/iox.Backoff] for a caller-side retry helper.
package ring
