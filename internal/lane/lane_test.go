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

package lane

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"
)

func TestExecOrder(t *testing.T) {
	l := New(nil)

	const n = 100
	var got []int
	done := make(chan struct{})

	for i := 0; i < n; i++ {
		i := i
		l.Exec(func() {
			got = append(got, i)
			if i == n-1 {
				close(done)
			}
		})
	}

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lane didn't drain in time")
	}

	require.Len(t, got, n)
	for i, v := range got {
		assert.Equal(t, i, v)
	}
}

func TestExecSerialized(t *testing.T) {
	l := New(nil)

	var (
		inFlight atomic.Int64
		maxSeen  atomic.Int64
		ran      atomic.Int64
	)

	const (
		submitters = 8
		perSubmit  = 50
	)

	var wg sync.WaitGroup
	for i := 0; i < submitters; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perSubmit; j++ {
				l.Exec(func() {
					cur := inFlight.Inc()
					if cur > maxSeen.Load() {
						maxSeen.Store(cur)
					}
					inFlight.Dec()
					ran.Inc()
				})
			}
		}()
	}
	wg.Wait()

	assert.Eventually(t, func() bool {
		return ran.Load() == submitters*perSubmit
	}, time.Second, time.Millisecond)
	assert.EqualValues(t, 1, maxSeen.Load(), "lane functions overlapped")
}

func TestExecReentrant(t *testing.T) {
	l := New(nil)

	var got []string
	done := make(chan struct{})

	l.Exec(func() {
		got = append(got, "outer")
		l.Exec(func() {
			got = append(got, "inner")
			close(done)
		})
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("re-entrant submission never ran")
	}
	assert.Equal(t, []string{"outer", "inner"}, got)
}

func TestExecPanicReported(t *testing.T) {
	var recovered atomic.Value
	l := New(func(v any) { recovered.Store(v) })

	done := make(chan struct{})
	l.Exec(func() { panic("boom") })
	l.Exec(func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lane died after a panicking function")
	}
	assert.Equal(t, "boom", recovered.Load())
}

func TestDrainRetiresAndRestarts(t *testing.T) {
	l := New(nil)

	run := func() {
		done := make(chan struct{})
		l.Exec(func() { close(done) })
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("lane didn't run the submission")
		}
	}

	// Two separate batches, with the lane going idle in between.
	run()
	assert.Eventually(t, func() bool {
		l.mu.Lock()
		defer l.mu.Unlock()
		return !l.draining
	}, time.Second, time.Millisecond)
	run()
}
