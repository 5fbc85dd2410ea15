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

package runner

import (
	"context"
	"fmt"
	"slices"

	"go.chromium.org/tinytest/common/logging"
	"go.chromium.org/tinytest/testcase"
)

// Tally counts the outcomes of a batch of test cases.
type Tally struct {
	Passed      int
	FailedValue int
	FailedFault int
}

// Total is the number of test cases counted.
func (t Tally) Total() int {
	return t.Passed + t.FailedValue + t.FailedFault
}

// Failed is the number of failed test cases, for either reason.
func (t Tally) Failed() int {
	return t.FailedValue + t.FailedFault
}

// Add returns the sum of two tallies.
func (t Tally) Add(o Tally) Tally {
	return Tally{
		Passed:      t.Passed + o.Passed,
		FailedValue: t.FailedValue + o.FailedValue,
		FailedFault: t.FailedFault + o.FailedFault,
	}
}

func (t Tally) String() string {
	return fmt.Sprintf("%d/%d tests passed", t.Passed, t.Total())
}

func (t *Tally) record(k testcase.Kind) {
	switch k {
	case testcase.PassedWithValue, testcase.PassedWithFault:
		t.Passed++
	case testcase.FailedValue:
		t.FailedValue++
	default:
		t.FailedFault++
	}
}

// RunMany runs `cases` in order under a "Running tests for <name>:" header.
//
// The i-th case (0-based) is reported as "<name> #<i+1>". If `showCount` is
// set, a "<passed>/<total> tests passed for <name>" line follows the cases.
// A blank line always ends the batch.
func RunMany[T any](ctx context.Context, name string, showInputs, showPasses, showCount bool, cases []*testcase.TestCase[T]) Tally {
	w := Output(ctx)
	write(w, fmt.Sprintf("Running tests for %s:\n", name))

	var tally Tally
	for i, tc := range cases {
		outcome := RunOne(ctx, caseName(name, i), showInputs, showPasses, tc)
		tally.record(outcome.Kind())
	}

	if showCount {
		write(w, fmt.Sprintf("%s for %s\n", tally, name))
	}
	write(w, "\n")

	logging.Debugf(ctx, "suite %q: %d passed, %d failed values, %d failed faults",
		name, tally.Passed, tally.FailedValue, tally.FailedFault)
	return tally
}

// RunManyUnit is RunMany for callers which only want the printed report.
func RunManyUnit[T any](ctx context.Context, name string, showInputs, showPasses, showCount bool, cases []*testcase.TestCase[T]) {
	RunMany(ctx, name, showInputs, showPasses, showCount, cases)
}

func caseName(suite string, i int) string {
	return fmt.Sprintf("%s #%d", suite, i+1)
}

// Flags are the display switches of RunMany.
type Flags struct {
	ShowInputs bool
	ShowPasses bool
	ShowCount  bool
}

// Batch is a named group of test cases which can be run as a unit.
//
// It lets suites of different value types live in one list.
type Batch interface {
	Name() string
	Len() int
	Run(ctx context.Context, flags Flags) Tally
}

// Suite is a named, ordered collection of test cases.
type Suite[T any] struct {
	name  string
	cases []*testcase.TestCase[T]
}

var _ Batch = (*Suite[int])(nil)

// NewSuite returns a Suite holding a copy of `cases`.
func NewSuite[T any](name string, cases ...*testcase.TestCase[T]) *Suite[T] {
	return &Suite[T]{name: name, cases: slices.Clone(cases)}
}

// Add appends cases to the suite and returns it.
func (s *Suite[T]) Add(cases ...*testcase.TestCase[T]) *Suite[T] {
	s.cases = append(s.cases, cases...)
	return s
}

// Name implements Batch.
func (s *Suite[T]) Name() string {
	return s.name
}

// Len implements Batch.
func (s *Suite[T]) Len() int {
	return len(s.cases)
}

// Run implements Batch by calling RunMany.
func (s *Suite[T]) Run(ctx context.Context, flags Flags) Tally {
	return RunMany(ctx, s.name, flags.ShowInputs, flags.ShowPasses, flags.ShowCount, s.cases)
}

// RunAll runs each batch in order and returns the combined tally.
func RunAll(ctx context.Context, flags Flags, batches ...Batch) Tally {
	var total Tally
	for _, b := range batches {
		total = total.Add(b.Run(ctx, flags))
	}
	return total
}
