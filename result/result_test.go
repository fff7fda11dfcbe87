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

package result

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVal(t *testing.T) {
	r := Val(42)
	assert.Equal(t, 42, r.Val())
	assert.NoError(t, r.Err())
	assert.True(t, r.Succeeded())
	assert.False(t, r.Failed())
}

func TestErr(t *testing.T) {
	t.Run("non-nil error", func(t *testing.T) {
		errTest := errors.New("boom")
		r := Err[int](errTest)
		assert.Zero(t, r.Val())
		assert.Equal(t, errTest, r.Err())
		assert.False(t, r.Succeeded())
		assert.True(t, r.Failed())
	})

	t.Run("nil error means success", func(t *testing.T) {
		r := Err[string](nil)
		assert.True(t, r.Succeeded())
		assert.Zero(t, r.Val())
	})
}

func TestOf(t *testing.T) {
	t.Run("value pair", func(t *testing.T) {
		r := Of("ok", nil)
		v, err := r.Get()
		assert.Equal(t, "ok", v)
		assert.NoError(t, err)
	})

	t.Run("error pair", func(t *testing.T) {
		errTest := errors.New("boom")
		r := Of(0, errTest)
		v, err := r.Get()
		assert.Zero(t, v)
		assert.Equal(t, errTest, err)
	})
}

func TestZeroValue(t *testing.T) {
	var r Result[int]
	assert.True(t, r.Succeeded())
	assert.Zero(t, r.Val())
	assert.NoError(t, r.Err())
}

func TestString(t *testing.T) {
	assert.Equal(t, "success: 7", Val(7).String())
	assert.Equal(t, "failure: boom", Err[int](errors.New("boom")).String())
}
