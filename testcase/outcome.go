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

package testcase

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies the Outcome of running a TestCase.
type Kind int

const (
	// PassedWithValue means the computation succeeded and its value was
	// accepted.
	PassedWithValue Kind = iota + 1
	// PassedWithFault means the computation faulted, as expected.
	PassedWithFault
	// FailedValue means the computation succeeded, but its value was rejected
	// or a fault was expected.
	FailedValue
	// FailedFault means the computation faulted, and the fault was either
	// unexpected or rejected.
	FailedFault
)

func (k Kind) String() string {
	switch k {
	case PassedWithValue:
		return "PassedWithValue"
	case PassedWithFault:
		return "PassedWithFault"
	case FailedValue:
		return "FailedValue"
	case FailedFault:
		return "FailedFault"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Passed is true for PassedWithValue and PassedWithFault.
func (k Kind) Passed() bool {
	return k == PassedWithValue || k == PassedWithFault
}

// Outcome is the result of running one TestCase.
//
// PassedWithValue and FailedValue carry the computed value; PassedWithFault
// and FailedFault carry the fault.
type Outcome[T any] struct {
	kind  Kind
	value T
	fault error
}

// Passed returns a PassedWithValue outcome.
func Passed[T any](value T) Outcome[T] {
	return Outcome[T]{kind: PassedWithValue, value: value}
}

// PassedFault returns a PassedWithFault outcome.
func PassedFault[T any](fault error) Outcome[T] {
	return Outcome[T]{kind: PassedWithFault, fault: fault}
}

// Failed returns a FailedValue outcome.
func Failed[T any](value T) Outcome[T] {
	return Outcome[T]{kind: FailedValue, value: value}
}

// FailedWithFault returns a FailedFault outcome.
func FailedWithFault[T any](fault error) Outcome[T] {
	return Outcome[T]{kind: FailedFault, fault: fault}
}

// Kind returns the classification of this outcome. The zero Outcome has
// Kind 0, which is none of the defined kinds.
func (o Outcome[T]) Kind() Kind {
	return o.kind
}

// Passed is shorthand for o.Kind().Passed().
func (o Outcome[T]) Passed() bool {
	return o.kind.Passed()
}

// Value returns the computed value of a PassedWithValue or FailedValue
// outcome.
//
// For any other kind it returns an error wrapping ErrWrongKind.
func (o Outcome[T]) Value() (T, error) {
	switch o.kind {
	case PassedWithValue, FailedValue:
		return o.value, nil
	}
	var zero T
	return zero, errors.Wrapf(ErrWrongKind, "Value() on %s outcome", o.kind)
}

// Fault returns the fault of a PassedWithFault or FailedFault outcome.
//
// For any other kind it returns an error wrapping ErrWrongKind.
func (o Outcome[T]) Fault() (fault, err error) {
	switch o.kind {
	case PassedWithFault, FailedFault:
		return o.fault, nil
	}
	return nil, errors.Wrapf(ErrWrongKind, "Fault() on %s outcome", o.kind)
}

func (o Outcome[T]) String() string {
	switch o.kind {
	case PassedWithValue, FailedValue:
		return fmt.Sprintf("%s(%v)", o.kind, o.value)
	case PassedWithFault, FailedFault:
		return fmt.Sprintf("%s(%v)", o.kind, o.fault)
	}
	return o.kind.String()
}
