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

// Package runner executes test cases and prints a console report.
//
// Test cases run one at a time, in order. Each computation runs on a helper
// goroutine which the caller waits for, so a panic or a runtime.Goexit in the
// code under test never escapes: every test case yields exactly one Outcome.
// There is no timeout, so a computation which never returns hangs the run.
// A computation which evaluates its own test case deadlocks it.
//
// Reports go to Output(ctx), which is os.Stdout unless replaced with
// UseOutput.
package runner

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"go.chromium.org/tinytest/common/logging"
	"go.chromium.org/tinytest/common/runtime/paniccatcher"
	"go.chromium.org/tinytest/format"
	"go.chromium.org/tinytest/testcase"
)

const predicatePrefix = "Predicate panicked" + dash

// errNoExpectation is the fault of a TestCase built without a constructor.
var errNoExpectation = errors.New("test case has no expectation")

// RunOne evaluates `tc`, classifies the result and prints its verdict.
//
// Nothing is printed for a passing test unless `showPass` is set. If
// `showInput` is set, the verdict line includes the input description.
func RunOne[T any](ctx context.Context, name string, showInput, showPass bool, tc *testcase.TestCase[T]) testcase.Outcome[T] {
	if tc == nil {
		tc = &testcase.TestCase[T]{}
	}

	logging.Debugf(ctx, "running %q", name)
	outcome, rep := judge(ctx, name, tc)
	logging.Debugf(ctx, "%q: %s", name, outcome.Kind())

	if outcome.Passed() && !showPass {
		return outcome
	}

	rep.name = name
	rep.showInput = showInput
	rep.input = tc.Input()
	write(Output(ctx), rep.render(ColorEnabled(ctx)))
	return outcome
}

// RunOneUnit is RunOne for callers which only want the printed report.
func RunOneUnit[T any](ctx context.Context, name string, showInput, showPass bool, tc *testcase.TestCase[T]) {
	RunOne(ctx, name, showInput, showPass, tc)
}

// IsPass returns true for PassedWithValue and PassedWithFault outcomes.
func IsPass[T any](o testcase.Outcome[T]) bool {
	return o.Kind().Passed()
}

// judge evaluates tc and classifies the result. The returned report has
// `expected` and `actual` filled in only for failures.
func judge[T any](ctx context.Context, name string, tc *testcase.TestCase[T]) (testcase.Outcome[T], report) {
	value, fault := tc.Evaluate()
	if fault != nil {
		logFault(ctx, name, fault)
	}

	switch exp := tc.Expectation().(type) {
	case *testcase.ValueExpectation[T]:
		expected := func() string {
			return safeString(func() string { return tc.Format(exp.Expected) })
		}
		if fault != nil {
			return testcase.FailedWithFault[T](fault), report{
				expected: expected(),
				actual:   exceptionPrefix + safeString(func() string { return tc.FormatFault(fault) }),
			}
		}

		accepted, perr := safeAccept(func() bool { return exp.Accept(exp.Expected, value) })
		switch {
		case perr != nil:
			logFault(ctx, name, perr)
			return testcase.FailedWithFault[T](perr), report{
				expected: expected(),
				actual:   predicatePrefix + format.Fault(perr),
			}
		case accepted:
			return testcase.Passed(value), report{passed: true}
		}
		return testcase.Failed(value), report{
			expected: expected(),
			actual:   safeString(func() string { return tc.Format(value) }),
		}

	case *testcase.FaultExpectation:
		if fault == nil {
			return testcase.Failed(value), report{
				expected: exp.Description,
				actual:   safeString(func() string { return tc.Format(value) }),
			}
		}

		accepted, perr := safeAccept(func() bool { return exp.Accept(fault) })
		switch {
		case perr != nil:
			logFault(ctx, name, perr)
			return testcase.FailedWithFault[T](perr), report{
				expected: exp.Description,
				actual:   predicatePrefix + format.Fault(perr),
			}
		case accepted:
			return testcase.PassedFault[T](fault), report{passed: true}
		}
		return testcase.FailedWithFault[T](fault), report{
			expected: exp.Description,
			actual:   safeString(func() string { return tc.FormatFault(fault) }),
		}
	}

	if fault == nil {
		fault = errNoExpectation
	}
	return testcase.FailedWithFault[T](fault), report{
		expected: errNoExpectation.Error(),
		actual:   exceptionPrefix + format.Fault(fault),
	}
}

// safeAccept runs a predicate, converting a panic into a fault.
func safeAccept(pred func() bool) (accepted bool, fault error) {
	if p := paniccatcher.PCall(func() { accepted = pred() }); p != nil {
		return false, testcase.Recovered(p)
	}
	return accepted, nil
}

// safeString runs a formatter, rendering a panic in its place.
func safeString(render func() string) (s string) {
	if p := paniccatcher.PCall(func() { s = render() }); p != nil {
		return fmt.Sprintf("<formatter panicked: %v>", p.Reason)
	}
	return s
}

func logFault(ctx context.Context, name string, fault error) {
	var pe *testcase.PanicError
	if errors.As(fault, &pe) {
		logging.DebugWithStackTrace(ctx, logging.StackTrace{Standard: pe.Stack},
			"%q panicked: %s", name, pe)
		return
	}
	logging.Debugf(ctx, "%q returned error: %s", name, fault)
}
