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

// Promise is the write side of a Future: the capability to complete it.
// The Future itself exposes no public completion, so handing a Future out
// while keeping its Promise keeps the write capability private.
//
// A Promise completes its Future at most once. Competing completions,
// whether direct or adopted through CompleteWith, are resolved by the
// single-assignment rule: the first one wins, the rest are no-ops.
type Promise[T any] struct {
	fut *Future[T]
}

// NewPromise returns a Promise owning a fresh pending Future. The future
// delivers its callbacks on s, when given and non-nil, and on the package
// default scheduler otherwise.
func NewPromise[T any](s ...Scheduler) *Promise[T] {
	return &Promise[T]{fut: newFuture[T](pickScheduler(s))}
}

// Future returns the read side. Every call returns the same instance.
func (p *Promise[T]) Future() *Future[T] {
	return p.fut
}

// Complete resolves the owned future to r. It returns true if this call
// won the completion, and false if the future had already completed; a
// lost completion is advisory, never an error.
func (p *Promise[T]) Complete(r result.Result[T]) bool {
	return p.fut.complete(r)
}

// Fulfill completes the owned future with the success of val.
func (p *Promise[T]) Fulfill(val T) bool {
	return p.fut.complete(result.Val(val))
}

// Reject completes the owned future with the failure err.
func (p *Promise[T]) Reject(err error) bool {
	return p.fut.complete(result.Err[T](err))
}

// CompleteWith adopts src: whenever src completes, its Result is forwarded
// to the owned future. If another completion arrives first, from any
// source, the forwarded Result loses the race and is discarded. A nil src
// panics. It returns the receiver, for chaining.
func (p *Promise[T]) CompleteWith(src *Future[T]) *Promise[T] {
	if src == nil {
		panic(nilFuturePanicMsg)
	}
	src.OnComplete(func(r result.Result[T]) {
		p.fut.complete(r)
	})
	return p
}
