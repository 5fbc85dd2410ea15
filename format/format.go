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

// Package format holds ready-made formatters for test case values and
// faults.
//
// Every function here has the shape `func(T) string` (or returns one), so
// it can be passed straight to testcase.Make and friends.
package format

import (
	"fmt"
	"strconv"
	"strings"
)

// Default renders with "%v".
func Default[T any](v T) string {
	return fmt.Sprintf("%v", v)
}

// GoSyntax renders with "%#v".
func GoSyntax[T any](v T) string {
	return fmt.Sprintf("%#v", v)
}

// Int renders an int in base 10.
func Int(v int) string {
	return strconv.Itoa(v)
}

// Int64 renders an int64 in base 10.
func Int64(v int64) string {
	return strconv.FormatInt(v, 10)
}

// Float renders a float64 with the fewest digits that round-trip.
func Float(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Bool renders "true" or "false".
func Bool(v bool) string {
	return strconv.FormatBool(v)
}

// String renders a string as-is.
func String(v string) string {
	return v
}

// Quote renders a string as a double-quoted Go literal.
func Quote(v string) string {
	return strconv.Quote(v)
}

// Slice renders a slice as "[a, b, c]", formatting elements with elem.
func Slice[T any](elem func(T) string) func([]T) string {
	return func(vs []T) string {
		parts := make([]string, len(vs))
		for i, v := range vs {
			parts[i] = elem(v)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	}
}

// Truncate wraps f so that renderings longer than limit runes are cut short
// and annotated with their full length.
func Truncate[T any](f func(T) string, limit int) func(T) string {
	return func(v T) string {
		s := f(v)
		runes := []rune(s)
		if limit <= 0 || len(runes) <= limit {
			return s
		}
		return fmt.Sprintf("%s... [len=%d]", string(runes[:limit]), len(runes))
	}
}

// Fault renders a fault by its error message.
func Fault(err error) string {
	if err == nil {
		return "<nil>"
	}
	return err.Error()
}

// FaultWithType renders a fault as "<type>: <message>".
func FaultWithType(err error) string {
	if err == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%T: %s", err, err)
}
