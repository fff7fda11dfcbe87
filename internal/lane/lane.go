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

// Package lane implements a serialized execution lane: a FIFO queue of
// functions that run one at a time, in submission order, without keeping
// a goroutine parked while the lane is idle.
package lane

import (
	"sync"

	"github.com/gammazero/deque"
)

// Lane is a single-worker execution queue. Functions submitted with Exec
// run in FIFO order and never concurrently with each other. A Lane must
// be created with New.
type Lane struct {
	mu       sync.Mutex
	q        *deque.Deque[func()]
	draining bool

	// report receives values recovered from panicking functions,
	// so one faulty submission can't kill the lane.
	report func(recovered any)
}

// New returns an idle Lane. The report hook, if non-nil, is called with
// the value recovered from any submitted function that panics.
func New(report func(recovered any)) *Lane {
	return &Lane{
		q:      deque.New[func()](),
		report: report,
	}
}

// Exec enqueues fn on the lane. It never blocks on the queue and never
// runs fn in the calling goroutine. The submitter that finds the lane
// idle starts a drain worker; the worker retires once the queue is empty.
// Exec is safe to call from inside a running lane function: the current
// drain picks the new submission up in a later iteration.
func (l *Lane) Exec(fn func()) {
	l.mu.Lock()
	l.q.PushBack(fn)
	if l.draining {
		l.mu.Unlock()
		return
	}
	l.draining = true
	l.mu.Unlock()

	go l.drain()
}

func (l *Lane) drain() {
	for {
		l.mu.Lock()
		if l.q.Len() == 0 {
			l.draining = false
			l.mu.Unlock()
			return
		}
		fn := l.q.PopFront()
		l.mu.Unlock()

		l.invoke(fn)
	}
}

func (l *Lane) invoke(fn func()) {
	defer func() {
		if v := recover(); v != nil && l.report != nil {
			l.report(v)
		}
	}()
	fn()
}
