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

// Package future provides a single-assignment container for the eventual
// result of an asynchronous computation, split into a read side (Future)
// and a write side (Promise).
//
// A Future is in one of two states, and moves between them at most once:
// Pending: the computation hasn't produced its outcome yet.
// Completed: the outcome is known, final, and immutable.
//
// The outcome is a result.Result: success carrying a value, or failure
// carrying a non-nil error.
//
// Completion Notes:-
//
// * A Future completes at most once. Competing completions are resolved
// by a race whose winner is reported through a boolean: losing is
// advisory, never an error.
//
// * Every registered callback is invoked exactly once with the final
// Result, whether it was registered before or after completion.
//
// * Callbacks run on the owning Scheduler's home lane, one at a time, in
// registration order, and never in the goroutine that registered them.
// Registering callbacks from inside a callback is safe: delivery drains
// an explicit work list instead of recursing.
//
// Scheduling Notes:-
//
// * Every Future is owned by a Scheduler, picked at construction and
// inherited by derived futures. Constructors accept an optional trailing
// Scheduler; without one they fall back to the package default, which is
// meant for program boundaries rather than library code.
//
// * Tasks submitted through Go run on the scheduler's workers; their
// results hop to the home lane and completion happens there.
//
// * Blocking reads (Await, Done) don't go through the home lane, so
// waiting for a future inside a callback can't deadlock completion.
// Still, callbacks shouldn't block on the effects of callbacks queued
// behind them.
//
// Composition Notes:-
//
// * Type-changing composition is done with free functions (Map, FlatMap,
// Zip, Apply, Lift), as Go methods can't introduce type parameters.
//
// * Composition is sequential: FlatMap subscribes to the continuation's
// future only after the source succeeds, and Zip consults its second
// future only after the first one settles. Failures short-circuit.
package future
