// Copyright 2024 The LUCI Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package testcase defines TestCase, an immutable bundle of a deferred
// computation, what it is expected to produce, and how to render both.
//
// Example:
//
//	tc := testcase.MakeEq(format.Int, "2 + 2", 4, testcase.Func(func() int {
//	  return 2 + 2
//	}))
//
// A TestCase does nothing until it is evaluated (usually by the runner
// package). Evaluation happens at most once; the result is memoized.
package testcase

import (
	"go.chromium.org/tinytest/format"
)

// Computation produces the actual value of a test case.
//
// A non-nil error and a panic are both faults.
type Computation[T any] func() (T, error)

// AcceptFunc decides whether `actual` satisfies `expected`.
type AcceptFunc[T any] func(expected, actual T) bool

// AcceptFaultFunc decides whether a fault is the one the test expects.
type AcceptFaultFunc func(fault error) bool

// Formatter renders a value for a failure report.
type Formatter[T any] func(value T) string

// FaultFormatter renders a fault for a failure report.
type FaultFormatter func(fault error) string

// Func adapts a function which can only fail by panicking.
func Func[T any](fn func() T) Computation[T] {
	return func() (T, error) {
		return fn(), nil
	}
}

// Returning is a Computation which always yields (value, err).
func Returning[T any](value T, err error) Computation[T] {
	return func() (T, error) {
		return value, err
	}
}

// TestCase is a single test: a deferred computation plus its expectation.
//
// TestCase values are immutable; running the same TestCase many times
// evaluates its computation only once.
type TestCase[T any] struct {
	input       string
	expectation Expectation
	format      Formatter[T]
	formatFault FaultFormatter
	cell        *deferred[T]
}

// Make returns a TestCase expecting `compute` to produce a value which
// `accept` finds acceptable against `expected`.
//
// Nothing is evaluated or validated here.
func Make[T any](accept AcceptFunc[T], fmt Formatter[T], input string, expected T, compute Computation[T]) *TestCase[T] {
	return &TestCase[T]{
		input:       input,
		expectation: &ValueExpectation[T]{Expected: expected, Accept: accept},
		format:      fmt,
		formatFault: format.Fault,
		cell:        &deferred[T]{compute: compute},
	}
}

// MakeEq is Make, using `==` as the acceptance predicate.
func MakeEq[T comparable](fmt Formatter[T], input string, expected T, compute Computation[T]) *TestCase[T] {
	return Make(func(a, b T) bool { return a == b }, fmt, input, expected, compute)
}

// MakeFault returns a TestCase expecting `compute` to fault with something
// that `accept` recognizes.
//
// `description` describes the expected fault in failure reports. If
// `compute` succeeds instead, its value is rendered with format.Default.
func MakeFault[T any](accept AcceptFaultFunc, fmtFault FaultFormatter, input, description string, compute Computation[T]) *TestCase[T] {
	return &TestCase[T]{
		input:       input,
		expectation: &FaultExpectation{Accept: accept, Description: description},
		format:      format.Default[T],
		formatFault: fmtFault,
		cell:        &deferred[T]{compute: compute},
	}
}

// Input returns the description of the test input.
func (tc *TestCase[T]) Input() string {
	if tc == nil {
		return ""
	}
	return tc.input
}

// Expectation returns either a *ValueExpectation[T] or a *FaultExpectation.
//
// It is nil for a nil or zero TestCase.
func (tc *TestCase[T]) Expectation() Expectation {
	if tc == nil {
		return nil
	}
	return tc.expectation
}

// Evaluate runs the computation if it has not run yet, and returns its
// memoized result.
//
// Panics are recovered and returned as *PanicError. A computation which ends
// its goroutine (e.g. via testing.T.FailNow) yields ErrAbnormalExit. A nil or
// zero TestCase yields ErrNoComputation.
//
// The computation must not call Evaluate on its own TestCase: that deadlocks,
// just as a computation which never returns hangs the runner.
func (tc *TestCase[T]) Evaluate() (T, error) {
	if tc == nil || tc.cell == nil {
		var zero T
		return zero, ErrNoComputation
	}
	return tc.cell.get()
}

// Evaluated reports whether the computation has already run.
func (tc *TestCase[T]) Evaluated() bool {
	return tc != nil && tc.cell != nil && tc.cell.done.Load()
}

// Format renders a value with the test case's Formatter.
func (tc *TestCase[T]) Format(value T) string {
	if tc == nil || tc.format == nil {
		return format.Default(value)
	}
	return tc.format(value)
}

// FormatFault renders a fault with the test case's FaultFormatter.
func (tc *TestCase[T]) FormatFault(fault error) string {
	if tc == nil || tc.formatFault == nil {
		return format.Fault(fault)
	}
	return tc.formatFault(fault)
}
