// Copyright 2024 The LUCI Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package accept

import (
	"reflect"
	"sync"

	"github.com/google/go-cmp/cmp"
	"google.golang.org/protobuf/testing/protocmp"
)

var (
	processMu      sync.RWMutex
	processOptions []cmp.Option
)

// defaultOptions are the cmp options every deep comparison starts from.
//
// Computations often return generated protobuf messages. cmp panics on their
// unexported internals, which the runner would report as a predicate panic
// rather than a verdict, so messages are compared by value.
//
// Values holding callbacks (handlers, hooks) are equal when they hold the
// same function. cmp alone considers every non-nil func unequal, even to
// itself.
func defaultOptions() []cmp.Option {
	return []cmp.Option{
		protocmp.Transform(),
		cmp.FilterValues(bothFuncs, cmp.Comparer(sameFunc)),
	}
}

func bothFuncs(a, b any) bool {
	return reflect.ValueOf(a).Kind() == reflect.Func &&
		reflect.ValueOf(b).Kind() == reflect.Func
}

func sameFunc(a, b any) bool {
	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}

// RegisterCmpOption adds an option to every later Resemble, ResembleWith
// and Diff call in this process, e.g. a Comparer for a type used across
// many suites.
//
// Panics if opt is nil.
func RegisterCmpOption(opt cmp.Option) {
	if opt == nil {
		panic("accept.RegisterCmpOption: nil option")
	}
	processMu.Lock()
	defer processMu.Unlock()
	processOptions = append(processOptions, opt)
}

// Options returns the option set of one comparison: the defaults, then the
// registered options, then `extra`.
//
// The result is freshly allocated and may be modified.
func Options(extra ...cmp.Option) []cmp.Option {
	processMu.RLock()
	defer processMu.RUnlock()

	opts := defaultOptions()
	opts = append(opts, processOptions...)
	return append(opts, extra...)
}
