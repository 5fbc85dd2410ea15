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

	"go.chromium.org/tinytest/common/runtime/paniccatcher"
)

var (
	// ErrNoComputation is the fault of a TestCase without a computation.
	ErrNoComputation = errors.New("test case has no computation")

	// ErrAbnormalExit is the fault of a computation which stopped its
	// goroutine (runtime.Goexit) instead of returning or panicking.
	ErrAbnormalExit = errors.New("computation exited without returning")

	// ErrWrongKind is returned when asking an Outcome for a payload its Kind
	// does not carry.
	ErrWrongKind = errors.New("outcome kind does not carry this payload")
)

// PanicError is the fault produced by a computation which panicked.
type PanicError struct {
	// Reason is the value passed to panic().
	Reason any
	// Stack is the stack trace at the point of the panic.
	Stack string
}

// Recovered converts a caught panic into a PanicError.
func Recovered(p *paniccatcher.Panic) *PanicError {
	return &PanicError{Reason: p.Reason, Stack: p.Stack}
}

// Error renders the panic reason alone.
func (e *PanicError) Error() string {
	if err, ok := e.Reason.(error); ok {
		return err.Error()
	}
	return fmt.Sprint(e.Reason)
}

// Unwrap exposes an error panic reason to errors.Is and errors.As.
func (e *PanicError) Unwrap() error {
	err, _ := e.Reason.(error)
	return err
}
