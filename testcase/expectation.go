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

// Expectation is what a TestCase expects of its computation.
//
// The set of implementations is closed: *ValueExpectation[T] and
// *FaultExpectation.
type Expectation interface {
	isExpectation()
}

// ValueExpectation expects the computation to succeed with a value that
// Accept finds acceptable against Expected.
type ValueExpectation[T any] struct {
	Expected T
	Accept   AcceptFunc[T]
}

// FaultExpectation expects the computation to fault with something Accept
// recognizes.
type FaultExpectation struct {
	Accept AcceptFaultFunc
	// Description is shown as the "Expected" side of a failure.
	Description string
}

func (*ValueExpectation[T]) isExpectation() {}
func (*FaultExpectation) isExpectation()    {}
