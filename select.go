package future

import "github.com/broomburgo/future/result"

// All collects the values of fs into one future of a slice, in input
// order. The composition is sequential, like Zip: each future is
// consulted only after every future before it has succeeded, so the
// first failure in input order wins and later futures are never
// observed. With no input futures, the returned future is immediately
// fulfilled with an empty slice. A nil future panics.
func All[T any](fs ...*Future[T]) *Future[[]T] {
	for _, f := range fs {
		if f == nil {
			panic(nilFuturePanicMsg)
		}
	}

	acc := Fulfilled(make([]T, 0, len(fs)), schedulerOf(fs))
	for _, f := range fs {
		f := f
		acc = FlatMap(acc, func(vals []T) *Future[[]T] {
			return Map(f, func(val T) []T {
				return append(vals, val)
			})
		})
	}
	return acc
}

// Select returns a future that completes with the first of fs to
// complete, whether it succeeded or failed. The completions of the rest
// lose the single-assignment race and are discarded. With no input
// futures, the returned future never completes. A nil future panics.
func Select[T any](fs ...*Future[T]) *Future[T] {
	for _, f := range fs {
		if f == nil {
			panic(nilFuturePanicMsg)
		}
	}

	p := NewPromise[T](schedulerOf(fs))
	for _, f := range fs {
		f.OnComplete(func(r result.Result[T]) {
			p.Complete(r)
		})
	}
	return p.Future()
}

// schedulerOf picks the owner for a future derived from fs: the first
// input's scheduler, or the package default when there are no inputs.
func schedulerOf[T any](fs []*Future[T]) Scheduler {
	if len(fs) != 0 {
		return fs[0].sched
	}
	return defScheduler
}
