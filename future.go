// Copyright 2025 The future Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package future

import (
	"context"
	"sync"

	"go.uber.org/atomic"

	"github.com/broomburgo/future/result"
)

const (
	nilCallbackPanicMsg = "future: the provided callback is nil"
	nilTaskPanicMsg     = "future: the provided task is nil"
	nilFuturePanicMsg   = "future: the provided future is nil"
)

// Future is a single-assignment container for the eventual Result of an
// asynchronous computation. It moves from pending to completed at most
// once; completion is irreversible and the Result never changes afterwards.
//
// Registered callbacks are each invoked exactly once with the final
// Result, on the owning scheduler's home lane, in registration order,
// whether they were registered before or after completion. A callback
// registered while the future was still pending always runs before one
// registered after completion.
//
// The zero value is not usable. Futures are created by NewPromise, Go,
// the settled constructors, and the combinators.
type Future[T any] struct {
	// sched owns the home lane this future delivers callbacks on.
	// Derived futures inherit it.
	sched Scheduler

	// report receives values recovered from panicking callbacks, when
	// the scheduler provides a reporting hook. nil otherwise.
	report func(v any)

	// done is closed exactly once, by the winning completion.
	// res is immutable by the time done is closed.
	done chan struct{}

	// completed flips to true exactly once, under mu, after res is set.
	completed atomic.Bool

	// mu guards res and callbacks.
	mu sync.Mutex

	// res holds the final outcome.
	// written once, under mu, before completed flips; don't read it
	// unless completed is known to be true.
	res result.Result[T]

	// callbacks holds registrations not yet handed to a delivery round.
	// a delivery round swaps the slice out and invokes it in order.
	callbacks []func(result.Result[T])
}

// panicReporter is implemented by schedulers that want to be told about
// panicking callbacks, instead of having the panic propagate through
// their home lane.
type panicReporter interface {
	reportPanic(v any)
}

func newFuture[T any](s Scheduler) *Future[T] {
	f := &Future[T]{
		sched: s,
		done:  make(chan struct{}),
	}
	if r, ok := s.(panicReporter); ok {
		f.report = r.reportPanic
	}
	return f
}

// complete resolves the future to r. The first call wins and returns true;
// every later call changes nothing and returns false. Safe to call from
// any goroutine.
func (f *Future[T]) complete(r result.Result[T]) bool {
	f.mu.Lock()
	if f.completed.Load() {
		f.mu.Unlock()
		return false
	}
	f.res = r
	f.completed.Store(true)
	f.mu.Unlock()

	close(f.done)
	f.sched.RunOnHome(f.deliver)
	return true
}

// deliver runs completion callbacks. It only ever runs on the home lane.
//
// Each round swaps the pending list out and invokes it in registration
// order; callbacks registered during a round are picked up by the next
// swap, so re-entrant registration can't recurse or grow the stack.
func (f *Future[T]) deliver() {
	for {
		f.mu.Lock()
		cbs := f.callbacks
		f.callbacks = nil
		f.mu.Unlock()

		if len(cbs) == 0 {
			return
		}
		for _, cb := range cbs {
			f.invoke(cb)
		}
	}
}

// invoke runs one callback with the final result, keeping a panicking
// callback from aborting the rest of its delivery round. The recovered
// value goes to the scheduler's reporting hook when it has one, and
// otherwise resumes panicking on the lane.
func (f *Future[T]) invoke(cb func(result.Result[T])) {
	defer func() {
		if v := recover(); v != nil {
			if f.report == nil {
				panic(v)
			}
			f.report(v)
		}
	}()
	cb(f.res)
}

// OnComplete registers fn to be invoked exactly once with the final
// Result. Delivery happens on the owning scheduler's home lane, never in
// the registering goroutine, even when the future has already completed.
// A nil fn panics. It returns the receiver, for chaining.
func (f *Future[T]) OnComplete(fn func(result.Result[T])) *Future[T] {
	if fn == nil {
		panic(nilCallbackPanicMsg)
	}

	f.mu.Lock()
	f.callbacks = append(f.callbacks, fn)
	settled := f.completed.Load()
	f.mu.Unlock()

	if settled {
		// the round scheduled by complete may have drained already.
		// an extra round over an empty list is a no-op.
		f.sched.RunOnHome(f.deliver)
	}
	return f
}

// OnSuccess registers fn to be invoked with the value if the future
// completes successfully. A nil fn panics.
func (f *Future[T]) OnSuccess(fn func(val T)) *Future[T] {
	if fn == nil {
		panic(nilCallbackPanicMsg)
	}
	return f.OnComplete(func(r result.Result[T]) {
		if r.Succeeded() {
			fn(r.Val())
		}
	})
}

// OnFailure registers fn to be invoked with the error if the future
// completes with a failure. A nil fn panics.
func (f *Future[T]) OnFailure(fn func(err error)) *Future[T] {
	if fn == nil {
		panic(nilCallbackPanicMsg)
	}
	return f.OnComplete(func(r result.Result[T]) {
		if err := r.Err(); err != nil {
			fn(err)
		}
	})
}

// Done returns a channel that's closed when the future completes.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Completed reports whether the future has completed, without blocking.
func (f *Future[T]) Completed() bool {
	return f.completed.Load()
}

// TryResult returns the final Result and true if the future has
// completed, and the zero Result and false otherwise.
func (f *Future[T]) TryResult() (result.Result[T], bool) {
	if !f.completed.Load() {
		return result.Result[T]{}, false
	}
	return f.res, true
}

// Await blocks until the future completes, returning its Result, or until
// ctx is done, returning ctx's error. Abandoning a wait doesn't affect
// the future: it stays pending and can still complete later.
// A nil ctx behaves like context.Background.
func (f *Future[T]) Await(ctx context.Context) (result.Result[T], error) {
	select {
	case <-f.done:
		return f.res, nil
	default:
	}

	if ctx == nil {
		ctx = context.Background()
	}
	select {
	case <-f.done:
		return f.res, nil
	case <-ctx.Done():
		return result.Result[T]{}, ctx.Err()
	}
}
