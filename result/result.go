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

// Package result holds the outcome container used by futures and promises.
// A Result is a single immutable value with exactly two variants: success,
// carrying a value of type T, or failure, carrying a non-nil error.
package result

import "fmt"

// Result is the outcome of a computation that can fail.
// The zero value is the success of T's zero value.
type Result[T any] struct {
	val T
	err error
}

// Val returns a successful Result carrying val.
func Val[T any](val T) Result[T] {
	return Result[T]{val: val}
}

// Err returns a failed Result carrying err.
// If err is nil, the returned Result is the success of T's zero value,
// as a Result is a failure if and only if it carries a non-nil error.
func Err[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// Of builds a Result from a conventional (value, error) return pair.
func Of[T any](val T, err error) Result[T] {
	return Result[T]{val: val, err: err}
}

// Val returns the carried value, or T's zero value on failure.
func (r Result[T]) Val() T {
	return r.val
}

// Err returns the carried error, or nil on success.
func (r Result[T]) Err() error {
	return r.err
}

// Get unpacks the Result into a conventional (value, error) return pair.
func (r Result[T]) Get() (T, error) {
	return r.val, r.err
}

// Succeeded reports whether the Result carries a value.
func (r Result[T]) Succeeded() bool {
	return r.err == nil
}

// Failed reports whether the Result carries an error.
func (r Result[T]) Failed() bool {
	return r.err != nil
}

func (r Result[T]) String() string {
	if r.err != nil {
		return fmt.Sprintf("failure: %v", r.err)
	}
	return fmt.Sprintf("success: %v", r.val)
}
