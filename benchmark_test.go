// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !race

package syncq_test

import (
	"sync"
	"testing"

	"code.hybscloud.com/syncq"
)

// =============================================================================
// Queue Throughput
// =============================================================================

func benchmarkPingPong(b *testing.B, q *syncq.Queue[int]) {
	// Each worker pushes one item and pops one item, keeping the queue
	// balanced regardless of parallelism.
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if err := q.Push(1); err != nil {
				b.Error(err)
				return
			}
			if _, err := q.Pop(); err != nil {
				b.Error(err)
				return
			}
		}
	})
}

func BenchmarkQueueMutex(b *testing.B) {
	benchmarkPingPong(b, syncq.NewQueue[int](1024))
}

func BenchmarkQueueSpinLocks(b *testing.B) {
	benchmarkPingPong(b, syncq.Build[int](syncq.New(1024).SpinLocks()))
}

func BenchmarkQueueSequential(b *testing.B) {
	q := syncq.NewQueue[int](1024)
	b.ResetTimer()
	for range b.N {
		_ = q.Push(1)
		_, _ = q.Pop()
	}
}

func BenchmarkQueueBatchedHandoff(b *testing.B) {
	// Batches amortize the swap: fill half the capacity, then drain it.
	const batch = 512
	q := syncq.NewQueue[int](1024)
	b.ResetTimer()
	for i := 0; i < b.N; i += batch {
		for range batch {
			_ = q.Push(1)
		}
		for range batch {
			_, _ = q.Pop()
		}
	}
}

// =============================================================================
// Lock Primitives
// =============================================================================

func BenchmarkSpinLockUncontended(b *testing.B) {
	var l syncq.SpinLock
	for range b.N {
		l.Lock()
		l.Unlock()
	}
}

func BenchmarkMutexUncontended(b *testing.B) {
	var l sync.Mutex
	for range b.N {
		l.Lock()
		l.Unlock()
	}
}

func BenchmarkSpinLockContended(b *testing.B) {
	var l syncq.SpinLock
	counter := 0
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			l.Lock()
			counter++
			l.Unlock()
		}
	})
	_ = counter
}

func BenchmarkMutexContended(b *testing.B) {
	var l sync.Mutex
	counter := 0
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			l.Lock()
			counter++
			l.Unlock()
		}
	})
	_ = counter
}
