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
	"sync"
	"sync/atomic"

	"go.chromium.org/tinytest/common/runtime/paniccatcher"
)

// deferred is a compute-once cell around a Computation.
type deferred[T any] struct {
	once    sync.Once
	done    atomic.Bool
	compute Computation[T]

	value T
	err   error
}

func (d *deferred[T]) get() (T, error) {
	d.once.Do(func() {
		// Whatever happens below, the cell ends up done, and never holds a
		// success it did not observe.
		d.err = ErrAbnormalExit
		defer func() {
			d.compute = nil
			d.done.Store(true)
		}()
		d.value, d.err = capture(d.compute)
	})
	return d.value, d.err
}

// capture runs compute to completion on a helper goroutine and waits for it.
//
// A panic becomes a *PanicError. A goroutine exit (runtime.Goexit, as done by
// testing.T.FailNow and friends) becomes ErrAbnormalExit instead of
// silently ending the caller's goroutine.
func capture[T any](compute Computation[T]) (value T, err error) {
	if compute == nil {
		return value, ErrNoComputation
	}

	finished := make(chan struct{})
	go func() {
		defer close(finished)

		normalReturn := false
		defer func() {
			if !normalReturn {
				var zero T
				value, err = zero, ErrAbnormalExit
			}
		}()

		if p := paniccatcher.PCall(func() { value, err = compute() }); p != nil {
			var zero T
			value, err = zero, Recovered(p)
		}
		normalReturn = true
	}()
	<-finished
	return value, err
}
