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

package accept

import (
	"strings"

	"github.com/pkg/errors"

	"go.chromium.org/tinytest/testcase"
)

// AnyFault accepts every fault.
func AnyFault(fault error) bool {
	return fault != nil
}

// Panicked accepts faults which came from a panic, rather than a returned
// error.
func Panicked(fault error) bool {
	var pe *testcase.PanicError
	return errors.As(fault, &pe)
}

// Returned accepts faults which were returned as errors, rather than
// panicked.
func Returned(fault error) bool {
	return fault != nil && !Panicked(fault)
}

// FaultLike accepts faults whose message contains `substring`.
//
// This covers panics with a string or error reason as well as returned
// errors.
func FaultLike(substring string) testcase.AcceptFaultFunc {
	return func(fault error) bool {
		return fault != nil && strings.Contains(fault.Error(), substring)
	}
}

// FaultIs accepts faults which match `target` according to errors.Is.
//
// A panic with an error reason matches that error.
func FaultIs(target error) testcase.AcceptFaultFunc {
	return func(fault error) bool {
		return fault != nil && errors.Is(fault, target)
	}
}

// FaultAs accepts faults which contain an error of type E, according to
// errors.As.
func FaultAs[E error]() testcase.AcceptFaultFunc {
	return func(fault error) bool {
		var target E
		return fault != nil && errors.As(fault, &target)
	}
}

// PanicReason accepts panics whose reason passes `check`.
func PanicReason(check func(reason any) bool) testcase.AcceptFaultFunc {
	return func(fault error) bool {
		var pe *testcase.PanicError
		if !errors.As(fault, &pe) {
			return false
		}
		return check(pe.Reason)
	}
}
