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

	"github.com/go-logr/logr"
	"go.uber.org/atomic"
	"golang.org/x/sync/semaphore"

	"github.com/broomburgo/future/internal/lane"
)

// Scheduler abstracts where futures run tasks and deliver completions.
// Every future is owned by exactly one Scheduler, picked at construction.
type Scheduler interface {
	// RunAsync submits a unit of work to an arbitrary worker context.
	// It may block the caller while the scheduler is at its concurrency
	// limit, but never runs fn in the calling goroutine.
	RunAsync(fn func())

	// RunOnHome enqueues action on the scheduler's home lane: a serialized
	// context where actions run one at a time, in submission order.
	// All completion delivery goes through the home lane. RunOnHome never
	// blocks and never runs action in the calling goroutine.
	RunOnHome(action func())
}

// Config configures a GoScheduler.
type Config struct {
	// Workers is the allowed number of concurrently running units of work
	// submitted through RunAsync. Submitters block while the limit is
	// reached. If it's 0 or less, the number is unlimited.
	//
	// The limit doesn't apply to the home lane, so completion delivery
	// can't be starved by a saturated scheduler.
	Workers int

	// Logger receives diagnostics: panics recovered from tasks submitted
	// directly through RunAsync, and panics recovered from completion
	// callbacks. The zero value discards them.
	Logger logr.Logger
}

// GoScheduler is the default Scheduler implementation. It runs each unit
// of work on its own goroutine, optionally capped, and serializes
// completion delivery on an internal home lane.
type GoScheduler struct {
	// sem caps concurrent RunAsync work. nil means unlimited.
	sem *semaphore.Weighted

	// home runs completions and callbacks, one at a time, FIFO.
	home *lane.Lane

	log logr.Logger

	running atomic.Int64
}

// NewScheduler returns a GoScheduler configured by c, if provided.
func NewScheduler(c ...*Config) *GoScheduler {
	s := &GoScheduler{}

	if len(c) != 0 && c[0] != nil {
		if workers := c[0].Workers; workers > 0 {
			s.sem = semaphore.NewWeighted(int64(workers))
		}
		s.log = c[0].Logger
	}

	s.home = lane.New(s.reportPanic)
	return s
}

// RunAsync runs fn on a new goroutine, blocking the caller first while the
// scheduler is at its Workers limit. A panic in fn is recovered and logged.
func (s *GoScheduler) RunAsync(fn func()) {
	if fn == nil {
		panic(nilTaskPanicMsg)
	}
	if s.sem != nil {
		// Acquire can only fail on ctx expiry, and Background never expires.
		_ = s.sem.Acquire(context.Background(), 1)
	}

	s.running.Inc()
	go func() {
		defer func() {
			s.running.Dec()
			if s.sem != nil {
				s.sem.Release(1)
			}
			if v := recover(); v != nil {
				s.reportPanic(v)
			}
		}()
		fn()
	}()
}

// RunOnHome enqueues action on the home lane.
func (s *GoScheduler) RunOnHome(action func()) {
	if action == nil {
		panic(nilCallbackPanicMsg)
	}
	s.home.Exec(action)
}

// Running reports the number of units of work currently running through
// RunAsync.
func (s *GoScheduler) Running() int64 {
	return s.running.Load()
}

func (s *GoScheduler) reportPanic(v any) {
	s.log.Error(PanicError{V: v}, "future: recovered panic")
}
