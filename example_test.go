// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !race

// This file contains examples that run producers and consumers
// concurrently. The queue's internal counters use atomix primitives,
// which establish happens-before through explicit memory orderings the
// race detector cannot observe. The examples are correct; they're
// excluded from race testing.

package syncq_test

import (
	"fmt"
	"time"

	"code.hybscloud.com/syncq"
)

// ExampleNewQueue demonstrates basic push/pop with close semantics.
func ExampleNewQueue() {
	q := syncq.NewQueue[int](8)

	for i := 1; i <= 3; i++ {
		q.Push(i * 10)
	}
	q.Close()

	for {
		v, err := q.Pop()
		if err != nil {
			fmt.Println("closed and drained")
			break
		}
		fmt.Println(v)
	}

	// Output:
	// 10
	// 20
	// 30
	// closed and drained
}

// ExampleQueue_TryPush demonstrates backpressure with a timed push.
func ExampleQueue_TryPush() {
	q := syncq.NewQueue[string](1)

	fmt.Println(q.TryPush("first", 0))
	fmt.Println(q.TryPush("second", 10*time.Millisecond)) // no room

	q.Close()
	fmt.Println(q.TryPush("third", 0)) // terminal

	// Output:
	// success
	// timeout
	// closed
}

// ExampleQueue_Drain demonstrates the auto-closing sink helper.
func ExampleQueue_Drain() {
	q := syncq.NewQueue[int](16)

	go func() {
		defer q.Close()
		for i := 1; i <= 5; i++ {
			if q.Push(i) != nil {
				return
			}
		}
	}()

	total := 0
	q.Drain(func(v int) error {
		total += v
		return nil
	})
	fmt.Println(total)

	// Output:
	// 15
}

// ExampleAsync demonstrates an asynchronous pipeline stage: the
// generator runs in its own goroutine and yields through the queue.
func ExampleAsync() {
	q, wait := syncq.Async(4, func(push func(int) error) error {
		for i := 1; i <= 5; i++ {
			if err := push(i * i); err != nil {
				return err
			}
		}
		return nil
	})

	for v := range q.All() {
		fmt.Println(v)
	}
	if err := wait(); err != nil {
		fmt.Println("producer failed:", err)
	}

	// Output:
	// 1
	// 4
	// 9
	// 16
	// 25
}

// ExampleBuild demonstrates selecting spin locks for contention-heavy
// workloads.
func ExampleBuild() {
	q := syncq.Build[int](syncq.New(1024).SpinLocks())

	q.Push(42)
	v, _ := q.Pop()
	fmt.Println(v)

	// Output:
	// 42
}
