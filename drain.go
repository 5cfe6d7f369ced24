// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package syncq

import "iter"

// Drain pops values and invokes sink on each until the queue is closed
// and empty, which is reported as nil (normal termination).
//
// The queue is closed when Drain returns, on every exit path: normal
// end of stream, a sink failure, or a panic in the sink. Any producer
// blocked on a full queue is therefore unblocked even when the consumer
// abandons the pipeline mid-stream.
//
// An error returned by the sink is the consumer's own failure, never
// conflated with end-of-stream: it propagates to the caller unmodified,
// even if it happens to be [ErrClosed] from some other queue.
func (q *Queue[T]) Drain(sink func(T) error) error {
	defer q.Close()

	for {
		v, err := q.Pop()
		if err != nil {
			return nil // closed and drained
		}
		if err := sink(v); err != nil {
			return err
		}
	}
}

// All adapts the consuming side of the queue as a range-over-func
// iterator. Iteration ends when the queue is closed and empty.
//
//	for v := range q.All() {
//	    process(v)
//	}
//
// Breaking out of the loop does not close the queue; producers keep
// running. Use [Queue.Drain] (or an explicit Close) when abandoning the
// stream should unblock them.
func (q *Queue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, err := q.Pop()
			if err != nil || !yield(v) {
				return
			}
		}
	}
}
