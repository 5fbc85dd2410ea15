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

// Package accept holds ready-made acceptance predicates for test cases.
//
// Value predicates have the shape of testcase.AcceptFunc and compare an
// expected value with an actual one. Fault predicates have the shape of
// testcase.AcceptFaultFunc and look at a single fault.
package accept

import (
	"math"
	"reflect"

	"github.com/google/go-cmp/cmp"
)

// Equal accepts when `expected == actual`.
//
// Notably, NaN never equals itself. Use AlmostEqual or NaN for floats.
func Equal[T comparable](expected, actual T) bool {
	return expected == actual
}

// NotEqual accepts when `expected != actual`.
func NotEqual[T comparable](expected, actual T) bool {
	return expected != actual
}

// Resemble accepts when `actual` is deeply equal to `expected`, as computed
// by "github.com/google/go-cmp/cmp".
//
// The comparison uses Options(): protobuf messages compare by value and
// funcs by identity. Types with unexported fields need an explicit option
// via ResembleWith.
func Resemble[T any](expected, actual T) bool {
	return cmp.Equal(expected, actual, Options()...)
}

// ResembleWith is Resemble with extra cmp.Options.
func ResembleWith[T any](opts ...cmp.Option) func(expected, actual T) bool {
	return func(expected, actual T) bool {
		return cmp.Equal(expected, actual, Options(opts...)...)
	}
}

// Diff returns the cmp.Diff between `expected` and `actual` under
// Options(opts...), for use in custom formatters.
func Diff[T any](expected, actual T, opts ...cmp.Option) string {
	return cmp.Diff(expected, actual, Options(opts...)...)
}

// AlmostEqual returns a predicate which accepts `actual` within `|epsilon|`
// of `expected`.
//
// By default, `epsilon` is `math.Nextafter(1, 2) - 1` (or the 32 bit
// equivalent), i.e. the distance between 1 and the next representable value.
//
// Passing more than one epsilon, or a negative one, yields a predicate which
// rejects everything.
func AlmostEqual[T ~float32 | ~float64](epsilon ...T) func(expected, actual T) bool {
	var ep T
	switch {
	case len(epsilon) > 1:
		return func(T, T) bool { return false }
	case len(epsilon) == 1:
		ep = epsilon[0]
	default:
		ep = defaultEpsilon[T]()
	}
	if ep < 0 {
		return func(T, T) bool { return false }
	}

	return func(expected, actual T) bool {
		delta := actual - expected
		if delta < 0 {
			delta = -delta
		}
		return delta <= ep
	}
}

func defaultEpsilon[T ~float32 | ~float64]() T {
	if reflect.TypeOf((*T)(nil)).Elem().Bits() == 32 {
		return T(math.Nextafter32(1, 2) - 1)
	}
	return T(math.Nextafter(1, 2) - 1)
}

// NaN accepts when `actual` is NaN. `expected` is ignored.
func NaN[T ~float32 | ~float64](_, actual T) bool {
	return math.IsNaN(float64(actual))
}

// Not inverts a value predicate.
func Not[T any](accept func(expected, actual T) bool) func(expected, actual T) bool {
	return func(expected, actual T) bool {
		return !accept(expected, actual)
	}
}
