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

// The combinators are free functions, not methods, as Go methods can't
// introduce new type parameters. Each derived future is owned by the
// source future's scheduler, and the supplied functions run as completion
// callbacks on its home lane, so they should stay cheap and must not
// block on other callbacks' effects.

// Pair holds the two values produced by Zip.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Map returns a future that completes with fn applied to f's value. A
// failure passes through to the derived future untouched, and fn is never
// invoked for it.
func Map[T, U any](f *Future[T], fn func(T) U) *Future[U] {
	if f == nil {
		panic(nilFuturePanicMsg)
	}
	if fn == nil {
		panic(nilCallbackPanicMsg)
	}

	out := newFuture[U](f.sched)
	f.OnComplete(func(r result.Result[T]) {
		if err := r.Err(); err != nil {
			out.complete(result.Err[U](err))
			return
		}
		out.complete(result.Val(fn(r.Val())))
	})
	return out
}

// FlatMap sequences f with fn: once f succeeds, the future returned by fn
// determines the outcome of the derived future. If f fails, fn is never
// invoked and the error short-circuits. If fn returns a nil future, the
// derived future fails with ErrNilFuture.
func FlatMap[T, U any](f *Future[T], fn func(T) *Future[U]) *Future[U] {
	if f == nil {
		panic(nilFuturePanicMsg)
	}
	if fn == nil {
		panic(nilCallbackPanicMsg)
	}

	out := newFuture[U](f.sched)
	f.OnComplete(func(r result.Result[T]) {
		if err := r.Err(); err != nil {
			out.complete(result.Err[U](err))
			return
		}
		next := fn(r.Val())
		if next == nil {
			out.complete(result.Err[U](ErrNilFuture))
			return
		}
		next.OnComplete(func(r result.Result[U]) {
			out.complete(r)
		})
	})
	return out
}

// Bind is FlatMap under its monadic name.
func Bind[T, U any](f *Future[T], fn func(T) *Future[U]) *Future[U] {
	return FlatMap(f, fn)
}

// Zip pairs the values of a, then b. The composition is sequential: b's
// outcome is only consulted after a succeeds, so if a fails, its error
// wins no matter what b did; if a succeeds and b fails, b's error
// propagates.
func Zip[T, U any](a *Future[T], b *Future[U]) *Future[Pair[T, U]] {
	if a == nil || b == nil {
		panic(nilFuturePanicMsg)
	}
	return FlatMap(a, func(v T) *Future[Pair[T, U]] {
		return Map(b, func(u U) Pair[T, U] {
			return Pair[T, U]{First: v, Second: u}
		})
	})
}

// Apply applies a future function to a future argument. The sequencing
// follows Zip: the function side settles first.
func Apply[T, U any](ff *Future[func(T) U], fa *Future[T]) *Future[U] {
	return Map(Zip(ff, fa), func(p Pair[func(T) U, T]) U {
		return p.First(p.Second)
	})
}

// Lift turns a plain function into one between futures.
// Lift(fn)(f) and Map(f, fn) complete identically.
func Lift[T, U any](fn func(T) U) func(*Future[T]) *Future[U] {
	if fn == nil {
		panic(nilCallbackPanicMsg)
	}
	return func(f *Future[T]) *Future[U] {
		return Map(f, fn)
	}
}
