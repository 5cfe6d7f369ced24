// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package syncq

// Status is the outcome of a timed queue operation.
//
// The three values are mutually exclusive and exhaustive: an operation
// either transferred a value, observed the terminal closed state, or
// ran out of time with queue state unchanged. Timeout and Closed are
// always distinguishable so that callers can tell "retry later" from
// "never retry".
type Status uint8

const (
	// StatusSuccess: the value's ownership was transferred.
	StatusSuccess Status = iota
	// StatusClosed: the queue is closed (and, for pops, drained).
	StatusClosed
	// StatusTimeout: the bound elapsed; queue state is unchanged.
	StatusTimeout
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusClosed:
		return "closed"
	case StatusTimeout:
		return "timeout"
	default:
		return "unknown"
	}
}

// Err converts the status to the error domain: nil for StatusSuccess,
// [ErrClosed] for StatusClosed, [ErrTimeout] for StatusTimeout.
func (s Status) Err() error {
	switch s {
	case StatusSuccess:
		return nil
	case StatusClosed:
		return ErrClosed
	default:
		return ErrTimeout
	}
}
