// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package syncq provides an optionally-bounded blocking MPMC queue.
//
// The queue is the synchronization backbone of parallel pipelines:
// producers push work items, consumers drain them, the capacity bound
// provides backpressure, and a one-way close signal cleanly unblocks
// every waiter when input ends or a consumer abandons the pipeline.
//
// # Quick Start
//
// Direct constructor (blocking mutexes, recommended for most cases):
//
//	q := syncq.NewQueue[Job](1024)
//
// Builder API selects the lock implementation and tuning:
//
//	q := syncq.Build[Job](syncq.New(1024))             // → sync.Mutex
//	q := syncq.Build[Job](syncq.New(1024).SpinLocks()) // → SpinLock
//
// # Basic Usage
//
// Blocking operations pair with the distinguished [ErrClosed]:
//
//	// Producer
//	if err := q.Push(job); err != nil {
//	    // syncq.IsClosed(err): a consumer abandoned the pipeline
//	}
//
//	// Consumer
//	for {
//	    job, err := q.Pop()
//	    if err != nil {
//	        break // closed and drained: end of stream
//	    }
//	    process(job)
//	}
//
// Timed operations report a three-valued [Status] instead:
//
//	switch q.TryPush(job, 50*time.Millisecond) {
//	case syncq.StatusSuccess:
//	case syncq.StatusTimeout: // queue still full; job untouched, retry or shed
//	case syncq.StatusClosed:  // terminal; job was not accepted
//	}
//
// A timeout of zero (or negative) performs a single non-blocking check.
//
// # Close Semantics
//
// Close transitions the queue to its terminal state: pushes fail with
// the closed signal, pops keep succeeding until the queue is drained and
// fail thereafter. Close is non-blocking, idempotent, safe from any
// goroutine, and wakes every blocked producer and consumer. There is no
// reopen. The idiomatic producer pattern defers the close so that early
// returns and panics can never leave consumers blocked:
//
//	go func() {
//	    defer q.Close() // end-of-input on every exit path
//	    for job := range input {
//	        if q.Push(job) != nil {
//	            return
//	        }
//	    }
//	}()
//
// # Backpressure
//
// With capacity n, at most n items reside in the queue and fast
// producers block until consumers create room. One exception keeps the
// pipeline live: a push is admitted whenever the producer-side staging
// queue is empty, even at capacity. Without this escape hatch a producer
// could wait for room that a consumer can never create, because the
// consumer is itself waiting for staged items. Capacity 0 is normalized
// to 1; [Unbounded] disables the bound entirely.
//
// # Contention Design
//
// Internally the queue keeps two FIFOs: a push-side queue touched by
// producers and a pop-side queue touched by consumers. A consumer that
// finds the pop side empty swaps the two in O(1) under the push-side
// lock, moving a whole ordered batch at once. Producer/consumer
// contention is confined to that swap point; global FIFO order is
// preserved because each side is FIFO and the swap never reorders.
//
// # Lock Selection
//
// The queue works with any lock satisfying [Lockable]: the blocking
// *sync.Mutex (default) or [SpinLock], a test-and-set lock that sleeps a
// short fixed interval between acquisition attempts. SpinLock trades
// fairness for latency: it can outperform a blocking mutex under heavy
// contention on short critical sections, but offers no FIFO ordering
// among waiters and may starve one of them. See [SpinLock] for details.
//
// # Error Handling
//
// Exactly two recoverable conditions exist:
//
//	syncq.IsClosed(err)  // terminal: no more data will ever arrive
//	syncq.IsTimeout(err) // advisory: state unchanged, retry is fine
//
// [ErrTimeout] is an alias for [iox.ErrWouldBlock] for ecosystem
// consistency. It never surfaces from the blocking Push/Pop: those wait
// indefinitely, so observing a timeout there is a programming error and
// panics.
//
// # Pipelines
//
// [Async] runs a generator in its own goroutine, pushing into a fresh
// queue that is closed when the generator returns. [Queue.All] adapts
// the consuming side as a range-over-func iterator:
//
//	q, wait := syncq.Async(16, func(push func(int) error) error {
//	    for i := range 100 {
//	        if err := push(i); err != nil {
//	            return err
//	        }
//	    }
//	    return nil
//	})
//	for v := range q.All() {
//	    process(v)
//	}
//	if err := wait(); err != nil { // generator failure, if any
//	    return err
//	}
//
// [Queue.Drain] is the sink-side counterpart: it closes the queue on
// exit (unblocking stuck producers even when the sink fails) and pops
// until closed-and-empty.
//
// # Thread Safety
//
// All operations are safe for arbitrary concurrent use. Values are
// delivered in the exact global order they were accepted; no ordering
// is defined among producers racing to push, nor among consumers racing
// to pop. [Queue.Len] is advisory while operations are in flight and
// exact at quiescence.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors,
// [code.hybscloud.com/atomix] for atomic primitives with explicit
// memory ordering, [code.hybscloud.com/spin] for CPU pause instructions,
// and [golang.org/x/sync/errgroup] for the pipeline helpers.
package syncq
