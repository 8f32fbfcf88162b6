// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lockq

import "code.hybscloud.com/iox"

// ErrWouldBlock indicates the operation cannot proceed immediately.
//
// For Enqueue: the queue is full or the tail is claimed (backpressure)
// For Dequeue: the queue is empty or the head is claimed
//
// ErrWouldBlock is a control flow signal, not a failure. The caller should
// retry later (with backoff or yield), or switch to the Force or Yield
// strategy, rather than propagating the error.
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency.
//
// Example:
//
//	backoff := iox.Backoff{}
//	deadline := time.Now().Add(time.Millisecond)
//	for {
//	    err := q.Enqueue(&item)
//	    if err == nil {
//	        break
//	    }
//	    if !lockq.IsWouldBlock(err) || time.Now().After(deadline) {
//	        return err
//	    }
//	    backoff.Wait()
//	}
var ErrWouldBlock = iox.ErrWouldBlock

// IsWouldBlock reports whether err indicates the operation would block.
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal (not a failure).
// Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition.
// Returns true for nil, ErrWouldBlock, or ErrMore.
// Delegates to [iox.IsNonFailure].
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}
