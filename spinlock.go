// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package syncq

import (
	"sync"
	"time"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// Lockable is the exclusive-lock capability set the queue is generic
// over. It is satisfied by *sync.Mutex (Go 1.18+) and by *SpinLock;
// any other implementation works as long as Lock blocks until
// acquisition, TryLock never blocks, and Unlock is called only by the
// current holder.
type Lockable interface {
	Lock()
	TryLock() bool
	Unlock()
}

var (
	_ Lockable = (*sync.Mutex)(nil)
	_ Lockable = (*SpinLock)(nil)
)

// DefaultSpinInterval is the sleep between failed acquisition attempts
// in [SpinLock.Lock] when Interval is zero.
const DefaultSpinInterval = 20 * time.Microsecond

// spinAttempts is the number of CPU-pause retries before Lock starts
// sleeping between attempts.
const spinAttempts = 16

// SpinLock is a test-and-set exclusive lock that sleeps a small fixed
// interval between acquisition attempts.
//
// It is faster than a blocking mutex under heavy contention on short
// critical sections, yet does not aggressively max out the CPUs: Lock
// pauses briefly (CPU pause instructions) and then sleeps between
// attempts rather than hard-spinning. Sleeping while not holding the
// lock is deliberate: a tight spin would deadlock on a single-core
// machine whenever the holder thread is descheduled.
//
// SpinLock provides no ordering guarantee among waiters and may starve
// one of them under adversarial many-to-one contention. That trade-off
// is accepted, not a bug; use *sync.Mutex when fairness matters.
//
// The zero value is an unlocked SpinLock. A SpinLock is non-reentrant
// and must not be copied after first use.
type SpinLock struct {
	_     pad
	state atomix.Uint64
	_     pad

	// Interval is the sleep between failed acquisition attempts.
	// Zero means DefaultSpinInterval. Set before first use.
	Interval time.Duration
}

// TryLock attempts to acquire the lock without blocking and reports
// whether it succeeded.
func (l *SpinLock) TryLock() bool {
	return l.state.CompareAndSwapAcqRel(0, 1)
}

// Lock blocks until the lock is acquired.
func (l *SpinLock) Lock() {
	sw := spin.Wait{}
	for range spinAttempts {
		if l.TryLock() {
			return
		}
		sw.Once()
	}

	d := l.Interval
	if d <= 0 {
		d = DefaultSpinInterval
	}
	for !l.TryLock() {
		time.Sleep(d)
	}
}

// Unlock releases the lock. It must be called by the current holder
// only; unlocking an unheld SpinLock leaves it in an undefined state,
// as with sync.Mutex.
func (l *SpinLock) Unlock() {
	l.state.StoreRelease(0)
}

// pad is cache line padding to prevent false sharing.
type pad [64]byte
