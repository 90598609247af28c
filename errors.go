// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

import "code.hybscloud.com/iox"

// ErrWouldBlock is returned by TryPush when the buffer is full and by
// TryPop when it is empty — there is no separate sentinel per endpoint
// since both conditions mean the same thing to a caller: nothing
// happened, try again once the other side has moved.
//
// It is a control flow signal rather than a failure, so ring reuses
// [iox.ErrWouldBlock] directly instead of defining a second sentinel
// that callers would need to compare against both.
//
// Example, retrying a pop with a spin-wait instead of a sleep-backed
// backoff:
//
//	var sw spin.Wait
//	for {
//	    v, err := cons.TryPop()
//	    if err == nil {
//	        process(v)
//	        break
//	    }
//	    if !ring.IsWouldBlock(err) {
//	        return err
//	    }
//	    sw.Once()
//	}
var ErrWouldBlock = iox.ErrWouldBlock

// IsWouldBlock reports whether err is (or wraps) ErrWouldBlock.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is one of ring's control flow signals
// rather than an actual failure.
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition —
// a superset of IsSemantic that also covers sentinels like io.EOF.
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}
