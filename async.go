// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package syncq

import "golang.org/x/sync/errgroup"

// Feed runs fn in its own goroutine, handing it the queue's blocking
// push. The queue is closed when fn returns, signalling end-of-input to
// consumers on every exit path. The returned wait function blocks until
// fn has returned and reports its error, if any. The natural place to
// surface producer failures after the consuming side has drained:
//
//	wait := syncq.Feed(q, produce)
//	for v := range q.All() {
//	    process(v)
//	}
//	if err := wait(); err != nil {
//	    return err
//	}
//
// fn should treat an [ErrClosed] from push as a request to stop: it
// means the consuming side abandoned the pipeline.
func Feed[T any](q *Queue[T], fn func(push func(T) error) error) (wait func() error) {
	var g errgroup.Group
	g.Go(func() error {
		defer q.Close()
		return fn(q.Push)
	})
	return g.Wait
}

// Async creates a queue of the given capacity and runs fn as its
// producer via [Feed]. It is the pipeline-stage constructor: the
// generator runs concurrently, consumers read from the returned queue
// until it closes, and wait reports the generator's error.
func Async[T any](capacity int, fn func(push func(T) error) error) (*Queue[T], func() error) {
	q := NewQueue[T](capacity)
	return q, Feed(q, fn)
}
