// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package syncq

import (
	"sync"
	"time"

	"code.hybscloud.com/atomix"
)

// Queue is an optionally-bounded blocking MPMC queue.
//
// Producers and consumers work on separate internal FIFOs: pushes go to
// a push-side queue under the push lock, pops drain a pop-side queue
// under the pop lock, and a consumer that finds the pop side empty
// swaps the two FIFOs in O(1) under the push lock. Contention between
// the two sides is confined to that swap point.
//
// The wait conditions are single-token channels plus a done channel
// closed exactly once on Close. At most one producer waits for room at
// a time (producers are serialized by a throttle lock, which also keeps
// a swapping consumer from being starved by a stampede of pushers) and
// at most one consumer waits for data at a time (consumers serialize on
// the pop lock), so a one-token signal is never lost. This wait scheme
// only needs Lock/Unlock from the locks, so any Lockable works.
//
// A Queue must not be copied after first use. Like a mutex, it is a
// synchronization primitive rather than a plain container; there are no
// copy or move semantics, and no reopen after Close.
type Queue[T any] struct {
	// Push-side group: producers and the swap step.
	_      pad
	pushMu Lockable // guards pushq, closed transitions, wait predicates
	gate   Lockable // serializes producers; at most one waits on room
	pushq  []T
	room   chan struct{} // token: room or escape hatch may be available
	data   chan struct{} // token: push side became non-empty

	// Pop-side group: consumers only.
	_      pad
	popMu  Lockable // guards popq, popIdx
	popq   []T
	popIdx int

	_        pad
	size     atomix.Int64 // advisory while operations are in flight
	closed   atomix.Bool  // one-way; flipped under pushMu
	done     chan struct{} // closed exactly once on Close; wakes all waiters
	capacity int
}

// NewQueue creates a queue with the given capacity, using blocking
// mutexes. Capacity 0 (or negative) is normalized to 1; use [Unbounded]
// to disable the bound. For spin locks, use the [Builder].
func NewQueue[T any](capacity int) *Queue[T] {
	if capacity < 1 {
		capacity = 1
	}
	return newQueue[T](Options{capacity: capacity})
}

func newQueue[T any](opts Options) *Queue[T] {
	q := &Queue[T]{
		room:     make(chan struct{}, 1),
		data:     make(chan struct{}, 1),
		done:     make(chan struct{}),
		capacity: opts.capacity,
	}
	if opts.spinLocks {
		q.pushMu = &SpinLock{Interval: opts.spinInterval}
		q.popMu = &SpinLock{Interval: opts.spinInterval}
		q.gate = &SpinLock{Interval: opts.spinInterval}
	} else {
		q.pushMu = new(sync.Mutex)
		q.popMu = new(sync.Mutex)
		q.gate = new(sync.Mutex)
	}
	return q
}

// TryPush blocks up to timeout for room and enqueues v.
//
// Returns StatusSuccess when v was accepted, StatusClosed when the
// queue is closed (v is not enqueued), StatusTimeout when the bound
// elapsed with the queue still full (state unchanged; v remains the
// caller's). A timeout <= 0 performs a single non-blocking check.
//
// A push is admitted whenever the push-side queue is empty, even at
// capacity, so that a waiting consumer can always be fed. See the
// package documentation on backpressure.
func (q *Queue[T]) TryPush(v T, timeout time.Duration) Status {
	if timeout <= 0 {
		return q.push(v, nil, true)
	}
	tm := time.NewTimer(timeout)
	defer tm.Stop()
	return q.push(v, tm.C, false)
}

// Push blocks until v is enqueued or the queue is closed. Returns
// [ErrClosed] if the queue is closed; v is then not enqueued and not
// silently dropped.
func (q *Queue[T]) Push(v T) error {
	switch st := q.push(v, nil, false); st {
	case StatusSuccess:
		return nil
	case StatusClosed:
		return ErrClosed
	default:
		panic("syncq: timeout status from unbounded push")
	}
}

// push enqueues v into the push-side queue, waiting for room.
// expire == nil means no deadline; immediate means a single
// predicate check without waiting.
func (q *Queue[T]) push(v T, expire <-chan time.Time, immediate bool) Status {
	q.gate.Lock()
	defer q.gate.Unlock()

	q.pushMu.Lock()
	for !q.closed.Load() && !q.roomAvailable() {
		if immediate {
			q.pushMu.Unlock()
			return StatusTimeout
		}
		if !q.await(q.room, expire) {
			// Deadline fired; one final predicate check under the lock.
			if q.closed.Load() || q.roomAvailable() {
				break
			}
			q.pushMu.Unlock()
			return StatusTimeout
		}
	}
	if q.closed.Load() {
		q.pushMu.Unlock()
		return StatusClosed
	}

	q.pushq = append(q.pushq, v)
	q.size.Add(1)
	q.pushMu.Unlock()

	signal(q.data)
	return StatusSuccess
}

// roomAvailable is the push wait predicate; callers hold pushMu.
// The empty-push-side clause is the forward-progress escape hatch.
func (q *Queue[T]) roomAvailable() bool {
	return int(q.size.Load()) < q.capacity || len(q.pushq) == 0
}

// TryPop blocks up to timeout for a value and assigns it to *out.
//
// Returns StatusSuccess when a value was transferred, StatusClosed when
// the queue is closed and fully drained, StatusTimeout when the bound
// elapsed with no data (state and *out unchanged). A timeout <= 0
// performs a single non-blocking check. out must not be nil.
func (q *Queue[T]) TryPop(out *T, timeout time.Duration) Status {
	if timeout <= 0 {
		return q.pop(out, nil, true)
	}
	tm := time.NewTimer(timeout)
	defer tm.Stop()
	return q.pop(out, tm.C, false)
}

// Pop blocks until a value is available and returns it. Returns
// [ErrClosed] once the queue is closed and fully drained.
func (q *Queue[T]) Pop() (T, error) {
	var v T
	switch st := q.pop(&v, nil, false); st {
	case StatusSuccess:
		return v, nil
	case StatusClosed:
		return v, ErrClosed
	default:
		panic("syncq: timeout status from unbounded pop")
	}
}

// pop drains the pop-side queue, refilling it via the swap protocol
// when empty.
func (q *Queue[T]) pop(out *T, expire <-chan time.Time, immediate bool) Status {
	q.popMu.Lock()
	defer q.popMu.Unlock()

	if q.popIdx >= len(q.popq) {
		if st := q.refill(expire, immediate); st != StatusSuccess {
			return st
		}
	}

	*out = q.popq[q.popIdx]
	var zero T
	q.popq[q.popIdx] = zero // release the reference for GC
	q.popIdx++
	q.size.Add(-1)

	signal(q.room)
	return StatusSuccess
}

// refill performs the swap protocol: wait for the push-side queue to be
// non-empty (or closed), then exchange the two FIFOs in O(1). Callers
// hold popMu; at most one consumer is ever in here.
func (q *Queue[T]) refill(expire <-chan time.Time, immediate bool) Status {
	// A producer may be waiting on the escape hatch; make sure it runs
	// so the push side can become non-empty.
	signal(q.room)

	q.pushMu.Lock()
	for len(q.pushq) == 0 {
		if q.closed.Load() {
			q.pushMu.Unlock()
			return StatusClosed
		}
		if immediate {
			q.pushMu.Unlock()
			return StatusTimeout
		}
		if !q.await(q.data, expire) {
			if len(q.pushq) > 0 {
				break
			}
			q.pushMu.Unlock()
			if q.closed.Load() {
				return StatusClosed
			}
			return StatusTimeout
		}
	}

	q.popq, q.pushq = q.pushq, q.popq[:0]
	q.popIdx = 0
	q.pushMu.Unlock()

	// The push side is empty again: the escape hatch is open.
	signal(q.room)
	return StatusSuccess
}

// await releases pushMu, sleeps until a token, close, or the deadline,
// and reacquires pushMu. Reports false on deadline. A stale token from
// an earlier signal wakes the waiter spuriously; callers recheck their
// predicate in a loop.
func (q *Queue[T]) await(tok <-chan struct{}, expire <-chan time.Time) bool {
	q.pushMu.Unlock()
	var ok bool
	select {
	case <-tok:
		ok = true
	case <-q.done:
		ok = true
	case <-expire:
		ok = false
	}
	q.pushMu.Lock()
	return ok
}

// Close transitions the queue to its terminal state, waking every
// blocked producer and consumer. Pushes fail with the closed signal
// from now on; pops keep succeeding until the queue is drained and fail
// thereafter. Close never blocks, never drains, and is idempotent, so
// defer it at the top of a producing scope so that early returns and
// panics can never leave the other side blocked:
//
//	defer q.Close()
//
// An explicit early Close makes the deferred call a no-op.
func (q *Queue[T]) Close() {
	q.pushMu.Lock()
	already := q.closed.Load()
	q.closed.Store(true)
	q.pushMu.Unlock()

	if !already {
		close(q.done)
	}
}

// Len returns the current item count. The count is advisory while
// pushes and pops are in flight and exact at quiescence.
func (q *Queue[T]) Len() int {
	if n := q.size.Load(); n > 0 {
		return int(n)
	}
	return 0
}

// Cap returns the capacity bound, or [Unbounded].
func (q *Queue[T]) Cap() int {
	return q.capacity
}

// Empty reports whether the queue holds no items. Advisory under
// concurrent mutation, exact at quiescence.
func (q *Queue[T]) Empty() bool {
	return q.size.Load() <= 0
}

// Closed reports whether Close has been called. Once true it stays
// true for the remainder of the queue's lifetime.
func (q *Queue[T]) Closed() bool {
	return q.closed.Load()
}

// signal deposits a wake-up token without blocking. Conflation with an
// undelivered token is fine: the waiter rechecks its predicate.
func signal(ch chan struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}
