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

import "github.com/broomburgo/future/result"

// defScheduler backs every constructor that's called without a Scheduler.
// It runs unlimited workers and discards diagnostics.
var defScheduler = NewScheduler()

// Default returns the package default Scheduler: unlimited workers,
// discarded diagnostics. It's meant as a boundary convenience; anything
// that wants control over scheduling should build its own with
// NewScheduler and pass it around explicitly.
func Default() Scheduler {
	return defScheduler
}

// pickScheduler resolves the optional trailing Scheduler argument that
// all constructors accept.
func pickScheduler(s []Scheduler) Scheduler {
	if len(s) != 0 && s[0] != nil {
		return s[0]
	}
	return defScheduler
}

// Completed returns a future that has already completed with r.
// Callbacks registered on it are still delivered asynchronously on the
// scheduler's home lane, never in the registering goroutine.
func Completed[T any](r result.Result[T], s ...Scheduler) *Future[T] {
	f := newFuture[T](pickScheduler(s))
	f.complete(r)
	return f
}

// Fulfilled returns a future that has already completed with the success
// of val.
func Fulfilled[T any](val T, s ...Scheduler) *Future[T] {
	return Completed(result.Val(val), s...)
}

// Unfulfilled returns a future that has already completed with the
// failure err.
func Unfulfilled[T any](err error, s ...Scheduler) *Future[T] {
	return Completed(result.Err[T](err), s...)
}

// Pure is the applicative unit: a fulfilled future of val.
func Pure[T any](val T, s ...Scheduler) *Future[T] {
	return Fulfilled(val, s...)
}

// Go submits task to the scheduler's workers and returns the future of
// its result. When the task returns, the result hops to the scheduler's
// home lane and the future completes there. A panicking task completes
// the future with a failure carrying a PanicError. A nil task panics.
func Go[T any](task func() result.Result[T], s ...Scheduler) *Future[T] {
	if task == nil {
		panic(nilTaskPanicMsg)
	}

	sched := pickScheduler(s)
	f := newFuture[T](sched)
	sched.RunAsync(func() {
		r := runTask(task)
		sched.RunOnHome(func() {
			f.complete(r)
		})
	})
	return f
}

// runTask invokes task, converting a panic into a failure Result.
func runTask[T any](task func() result.Result[T]) (r result.Result[T]) {
	defer func() {
		if v := recover(); v != nil {
			r = result.Err[T](PanicError{V: v})
		}
	}()
	return task()
}
