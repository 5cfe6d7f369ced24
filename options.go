// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package syncq

import "time"

// Unbounded disables the capacity bound: producers never block for
// room. Internally it is simply the largest representable capacity.
const Unbounded = int(^uint(0) >> 1)

// DefaultCapacity is a reasonable bound for callers that have no
// particular capacity in mind.
const DefaultCapacity = 1024

// Options configures queue creation.
type Options struct {
	// Capacity (0 and negative normalize to 1)
	capacity int

	// Lock selection
	spinLocks    bool
	spinInterval time.Duration
}

// Builder creates queues with fluent configuration.
//
// Example:
//
//	// Blocking-mutex queue (default, fair)
//	q := syncq.Build[Request](syncq.New(4096))
//
//	// Spin-lock queue for contention-heavy short-lived items
//	q := syncq.Build[Event](syncq.New(1024).SpinLocks())
//
//	// Tuned spin interval
//	q := syncq.Build[Event](syncq.New(1024).SpinInterval(5 * time.Microsecond))
type Builder struct {
	opts Options
}

// New creates a queue builder with the given capacity.
//
// Capacity 0 (or negative) is normalized to 1. Use [Unbounded] to
// disable the bound.
func New(capacity int) *Builder {
	if capacity < 1 {
		capacity = 1
	}
	return &Builder{opts: Options{capacity: capacity}}
}

// SpinLocks selects [SpinLock] instead of *sync.Mutex for the queue's
// internal locks. Trade-off: higher throughput on short critical
// sections under contention, no fairness among waiters.
func (b *Builder) SpinLocks() *Builder {
	b.opts.spinLocks = true
	return b
}

// SpinInterval sets the sleep between failed acquisition attempts for
// the queue's spin locks and implies SpinLocks. Zero keeps
// [DefaultSpinInterval].
func (b *Builder) SpinInterval(d time.Duration) *Builder {
	b.opts.spinLocks = true
	b.opts.spinInterval = d
	return b
}

// Build creates a Queue[T] from the builder's configuration.
func Build[T any](b *Builder) *Queue[T] {
	return newQueue[T](b.opts)
}
