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

package main

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"go.chromium.org/tinytest/accept"
	"go.chromium.org/tinytest/format"
	"go.chromium.org/tinytest/runner"
	"go.chromium.org/tinytest/testcase"
)

// bundledSuites returns fresh copies of the sample suites, in run order.
//
// Suites memoize their results, so every run builds new ones.
func bundledSuites() []runner.Batch {
	return []runner.Batch{
		arithmeticSuite(),
		stringsSuite(),
		faultsSuite(),
	}
}

// selectSuites returns the bundled suites named in `names`, in that order.
// No names selects all of them.
func selectSuites(names []string) ([]runner.Batch, error) {
	all := bundledSuites()
	if len(names) == 0 {
		return all, nil
	}

	byName := make(map[string]runner.Batch, len(all))
	for _, b := range all {
		byName[b.Name()] = b
	}
	out := make([]runner.Batch, 0, len(names))
	for _, n := range names {
		b, ok := byName[n]
		if !ok {
			return nil, errors.Errorf("unknown suite %q", n)
		}
		out = append(out, b)
	}
	return out, nil
}

func arithmeticSuite() *runner.Suite[float64] {
	sum := func(a, b float64) testcase.Computation[float64] {
		return testcase.Func(func() float64 { return a + b })
	}
	almost := accept.AlmostEqual[float64]()

	return runner.NewSuite("arithmetic",
		testcase.MakeEq(format.Float, "2 + 2", 4, sum(2, 2)),
		testcase.Make(almost, format.Float, "0.1 + 0.2", 0.3, sum(0.1, 0.2)),
		testcase.MakeEq(format.Float, "7 / 2", 3.5, testcase.Func(func() float64 { return 7.0 / 2 })),
		testcase.Make(accept.AlmostEqual(1e-9), format.Float, "sqrt(2) * sqrt(2)", 2,
			testcase.Func(func() float64 { return math.Sqrt(2) * math.Sqrt(2) })),
		testcase.Make(accept.NaN[float64], format.Float, "sqrt(-1)", math.NaN(),
			testcase.Func(func() float64 { return math.Sqrt(-1) })),
	)
}

func stringsSuite() *runner.Suite[string] {
	return runner.NewSuite("strings",
		testcase.MakeEq(format.Quote, `upper("go")`, "GO",
			testcase.Func(func() string { return strings.ToUpper("go") })),
		testcase.MakeEq(format.Quote, `repeat("ab", 3)`, "ababab",
			testcase.Func(func() string { return strings.Repeat("ab", 3) })),
		testcase.MakeEq(format.Quote, `join(fields(" a  b c "), "-")`, "a-b-c",
			testcase.Func(func() string { return strings.Join(strings.Fields(" a  b c "), "-") })),
		testcase.Make(accept.Not(accept.Equal[string]), format.Quote, `trim("  x ")`, "  x ",
			testcase.Func(func() string { return strings.TrimSpace("  x ") })),
	)
}

func faultsSuite() *runner.Suite[int] {
	index := func(s []int, i int) testcase.Computation[int] {
		return testcase.Func(func() int { return s[i] })
	}
	divide := func(a, b int) testcase.Computation[int] {
		return testcase.Func(func() int { return a / b })
	}
	atoi := func(s string) testcase.Computation[int] {
		return func() (int, error) { return strconv.Atoi(s) }
	}

	return runner.NewSuite("faults",
		testcase.MakeFault[int](accept.Panicked, format.FaultWithType,
			"1 / 0", "a division by zero panic", divide(1, 0)),
		testcase.MakeFault[int](accept.FaultLike("index out of range"), format.FaultWithType,
			"[1 2 3][3]", "an index out of range panic", index([]int{1, 2, 3}, 3)),
		testcase.MakeFault[int](accept.FaultAs[*strconv.NumError](), format.FaultWithType,
			`atoi("seven")`, "a *strconv.NumError", atoi("seven")),
		testcase.MakeFault[int](accept.FaultIs(strconv.ErrRange), format.Fault,
			`atoi("99999999999999999999")`, "strconv.ErrRange", atoi("99999999999999999999")),
		testcase.MakeEq(format.Int, `atoi("42")`, 42, atoi("42")),
	)
}
