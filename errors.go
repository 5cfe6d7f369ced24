// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package syncq

import (
	"errors"

	"code.hybscloud.com/iox"
)

// ErrClosed indicates the queue has entered its terminal state.
//
// For Push: the queue no longer accepts items; the value was not
// enqueued and was not silently dropped.
// For Pop: the queue is closed and fully drained; no more data will
// ever arrive.
//
// ErrClosed is the end-of-stream signal, not a failure. A consumer loop
// terminates cleanly by checking exactly this condition:
//
//	for {
//	    v, err := q.Pop()
//	    if syncq.IsClosed(err) {
//	        break // end of stream
//	    }
//	    process(v)
//	}
var ErrClosed = errors.New("syncq: queue closed")

// ErrTimeout indicates a timed operation could not complete within its
// bound. Queue state is unchanged; the caller decides whether to retry,
// abandon, or escalate.
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency.
// It is returned by [Status.Err] for [StatusTimeout] and never surfaces
// from the blocking Push/Pop variants.
var ErrTimeout = iox.ErrWouldBlock

// IsClosed reports whether err signals the terminal closed state.
func IsClosed(err error) bool {
	return errors.Is(err, ErrClosed)
}

// IsTimeout reports whether err indicates the operation timed out.
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsTimeout(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsNonFailure reports whether err represents a non-failure condition:
// nil, a timeout (retry is fine), or the closed end-of-stream signal.
func IsNonFailure(err error) bool {
	return err == nil || IsClosed(err) || iox.IsNonFailure(err)
}
