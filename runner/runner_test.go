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
	"bytes"
	"context"
	"runtime"
	"strconv"
	"strings"
	"testing"

	"github.com/mgutz/ansi"
	"github.com/pkg/errors"
	. "github.com/smartystreets/goconvey/convey"

	"go.chromium.org/tinytest/accept"
	"go.chromium.org/tinytest/common/logging"
	"go.chromium.org/tinytest/common/logging/gologger"
	"go.chromium.org/tinytest/format"
	"go.chromium.org/tinytest/testcase"
)

func addition(expected int) *testcase.TestCase[int] {
	return testcase.MakeEq(format.Int, "2 + 2", expected, testcase.Func(func() int { return 2 + 2 }))
}

func divide(a, b int) testcase.Computation[int] {
	return testcase.Func(func() int { return a / b })
}

func TestRunOne(t *testing.T) {
	t.Parallel()

	Convey(`RunOne`, t, func() {
		buf := &bytes.Buffer{}
		ctx := UseOutput(context.Background(), buf)

		Convey(`a passing value case`, func() {
			Convey(`prints the OK line when asked`, func() {
				o := RunOne(ctx, "addition", true, true, addition(4))
				So(buf.String(), ShouldEqual, "PASS – addition <- 2 + 2 OK\n")
				So(o.Kind(), ShouldEqual, testcase.PassedWithValue)
				v, err := o.Value()
				So(err, ShouldBeNil)
				So(v, ShouldEqual, 4)
			})

			Convey(`omits the input unless asked`, func() {
				RunOne(ctx, "addition", false, true, addition(4))
				So(buf.String(), ShouldEqual, "PASS – addition OK\n")
			})

			Convey(`prints nothing at all by default`, func() {
				o := RunOne(ctx, "addition", true, false, addition(4))
				So(buf.Len(), ShouldEqual, 0)
				So(IsPass(o), ShouldBeTrue)
			})
		})

		Convey(`a failing value case always prints`, func() {
			for _, showPass := range []bool{false, true} {
				buf.Reset()
				o := RunOne(ctx, "addition", false, showPass, addition(5))
				So(buf.String(), ShouldEqual, "FAIL – addition\n    Expected: 5\n      Actual: 4\n")
				So(o.Kind(), ShouldEqual, testcase.FailedValue)
				So(IsPass(o), ShouldBeFalse)
			}

			buf.Reset()
			RunOne(ctx, "addition", true, false, addition(5))
			So(buf.String(), ShouldEqual, "FAIL – addition <- 2 + 2\n    Expected: 5\n      Actual: 4\n")
		})

		Convey(`shows the input separator even for an empty input`, func() {
			tc := testcase.MakeEq(format.Int, "", 1, testcase.Returning(1, nil))
			RunOne(ctx, "empty", true, true, tc)
			So(buf.String(), ShouldEqual, "PASS – empty <-  OK\n")
		})

		Convey(`an unexpected panic in value mode`, func() {
			o := RunOne(ctx, "div", false, false, testcase.MakeEq(format.Int, "1 / 0", 0, divide(1, 0)))
			So(o.Kind(), ShouldEqual, testcase.FailedFault)
			So(buf.String(), ShouldEqual,
				"FAIL – div\n    Expected: 0\n      Actual: Exception occurred – runtime error: integer divide by zero\n")

			fault, err := o.Fault()
			So(err, ShouldBeNil)
			So(accept.Panicked(fault), ShouldBeTrue)
		})

		Convey(`an unexpected returned error in value mode`, func() {
			tc := testcase.MakeEq(format.Int, "", 7, func() (int, error) { return strconv.Atoi("seven") })
			o := RunOne(ctx, "atoi", false, false, tc)
			So(o.Kind(), ShouldEqual, testcase.FailedFault)
			So(buf.String(), ShouldEqual,
				"FAIL – atoi\n    Expected: 7\n      Actual: Exception occurred – strconv.Atoi: parsing \"seven\": invalid syntax\n")
		})

		Convey(`fault mode`, func() {
			expectDivZero := func(compute testcase.Computation[int]) *testcase.TestCase[int] {
				return testcase.MakeFault(accept.FaultLike("divide by zero"), format.FaultWithType,
					"1 / b", "integer divide by zero", compute)
			}

			Convey(`passes on an accepted fault`, func() {
				o := RunOne(ctx, "div", true, true, expectDivZero(divide(1, 0)))
				So(o.Kind(), ShouldEqual, testcase.PassedWithFault)
				So(IsPass(o), ShouldBeTrue)
				So(buf.String(), ShouldEqual, "PASS – div <- 1 / b OK\n")
			})

			Convey(`fails with the value when nothing faults`, func() {
				o := RunOne(ctx, "div", false, false, expectDivZero(divide(4, 2)))
				So(o.Kind(), ShouldEqual, testcase.FailedValue)
				v, err := o.Value()
				So(err, ShouldBeNil)
				So(v, ShouldEqual, 2)
				So(buf.String(), ShouldEqual, "FAIL – div\n    Expected: integer divide by zero\n      Actual: 2\n")
			})

			Convey(`fails on a rejected fault, using the fault formatter`, func() {
				tc := expectDivZero(func() (int, error) { return 0, errors.New("overflow") })
				o := RunOne(ctx, "div", false, false, tc)
				So(o.Kind(), ShouldEqual, testcase.FailedFault)
				So(buf.String(), ShouldStartWith, "FAIL – div\n    Expected: integer divide by zero\n      Actual: *errors.fundamental: overflow\n")
			})
		})

		Convey(`reports a computation which exits its goroutine`, func() {
			tc := testcase.MakeEq(format.Int, "", 0, testcase.Func(func() int {
				runtime.Goexit()
				return 1
			}))
			want := "FAIL – goexit\n    Expected: 0\n      Actual: Exception occurred – computation exited without returning\n"

			o := RunOne(ctx, "goexit", false, true, tc)
			So(o.Kind(), ShouldEqual, testcase.FailedFault)
			So(buf.String(), ShouldEqual, want)

			buf.Reset()
			again := RunOne(ctx, "goexit", false, true, tc)
			So(again.Kind(), ShouldEqual, testcase.FailedFault)
			So(buf.String(), ShouldEqual, want)

			fault, err := again.Fault()
			So(err, ShouldBeNil)
			So(errors.Is(fault, testcase.ErrAbnormalExit), ShouldBeTrue)
		})

		Convey(`accepts an expected goroutine exit in fault mode`, func() {
			tc := testcase.MakeFault(accept.FaultIs(testcase.ErrAbnormalExit), format.Fault, "", "a goroutine exit",
				testcase.Func(func() int {
					runtime.Goexit()
					return 1
				}))
			So(IsPass(RunOne(ctx, "goexit", false, false, tc)), ShouldBeTrue)
			So(buf.Len(), ShouldEqual, 0)
		})

		Convey(`memoizes across runs`, func() {
			calls := 0
			tc := testcase.MakeEq(format.Int, "", 1, testcase.Func(func() int {
				calls++
				return 1
			}))
			first := RunOne(ctx, "once", false, false, tc)
			second := RunOne(ctx, "once", false, false, tc)
			So(calls, ShouldEqual, 1)
			So(second, ShouldResemble, first)
		})

		Convey(`contains panicking predicates`, func() {
			tc := testcase.Make(func(int, int) bool { panic("bad predicate") }, format.Int, "", 1, testcase.Returning(1, nil))
			var o testcase.Outcome[int]
			So(func() { o = RunOne(ctx, "pred", false, false, tc) }, ShouldNotPanic)
			So(o.Kind(), ShouldEqual, testcase.FailedFault)
			So(buf.String(), ShouldEqual, "FAIL – pred\n    Expected: 1\n      Actual: Predicate panicked – bad predicate\n")
		})

		Convey(`contains panicking formatters`, func() {
			tc := testcase.MakeEq(func(int) string { panic("no") }, "", 1, testcase.Returning(2, nil))
			RunOne(ctx, "fmt", false, false, tc)
			So(buf.String(), ShouldEqual, "FAIL – fmt\n    Expected: <formatter panicked: no>\n      Actual: <formatter panicked: no>\n")
		})

		Convey(`treats a nil or zero test case as a fault`, func() {
			o := RunOne[int](ctx, "nil", false, false, nil)
			So(o.Kind(), ShouldEqual, testcase.FailedFault)
			So(buf.String(), ShouldEqual,
				"FAIL – nil\n    Expected: test case has no expectation\n      Actual: Exception occurred – test case has no computation\n")
		})

		Convey(`RunOneUnit prints the same report`, func() {
			RunOneUnit(ctx, "addition", false, false, addition(5))
			So(buf.String(), ShouldStartWith, "FAIL – addition\n")
		})

		Convey(`colorizes verdicts when asked`, func() {
			ctx = UseColor(ctx, true)
			RunOne(ctx, "addition", false, true, addition(4))
			RunOne(ctx, "addition", false, true, addition(5))
			out := buf.String()
			So(out, ShouldStartWith, ansi.Green+"PASS"+ansi.Reset+" – addition OK\n")
			So(out, ShouldContainSubstring, ansi.Red+"FAIL"+ansi.Reset+" – addition\n")
		})

		Convey(`logs faults with their stack`, func() {
			logs := &bytes.Buffer{}
			lc := &gologger.LoggerConfig{Out: logs}
			ctx = logging.SetLevel(lc.Use(ctx), logging.Debug)

			RunOne(ctx, "div", false, false, testcase.MakeEq(format.Int, "", 0, divide(1, 0)))
			So(logs.String(), ShouldContainSubstring, `"div" panicked: runtime error: integer divide by zero`)
			So(logs.String(), ShouldContainSubstring, "goroutine")
			So(strings.Count(buf.String(), "FAIL"), ShouldEqual, 1)
		})
	})
}

func TestOutputDefaults(t *testing.T) {
	t.Parallel()

	Convey(`Without configuration`, t, func() {
		ctx := context.Background()
		So(Output(ctx), ShouldNotBeNil)
		So(ColorEnabled(ctx), ShouldBeFalse)
		So(ColorEnabled(UseColor(ctx, true)), ShouldBeTrue)
	})
}
