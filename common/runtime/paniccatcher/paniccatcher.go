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

// Package paniccatcher turns panics into values.
//
// It is used at the boundary where tinytest calls into code under test: a
// panic there must never unwind through the runner.
package paniccatcher

import (
	"runtime/debug"
)

// Panic is a snapshot of a recovered panic.
type Panic struct {
	// Reason is the value passed to panic().
	Reason any
	// Stack is the stack of the panicking goroutine, as rendered by
	// debug.Stack.
	Stack string
}

// Catch recovers from an in-flight panic and hands it to cb.
//
// Catch must be called directly via defer:
//
//	defer paniccatcher.Catch(func(p *paniccatcher.Panic) {
//	  ...
//	})
//
// If there is no panic in flight, cb is not called.
func Catch(cb func(p *Panic)) {
	if reason := recover(); reason != nil {
		cb(&Panic{
			Reason: reason,
			Stack:  string(debug.Stack()),
		})
	}
}

// Do executes f. If f panics, the panic is recovered and passed to cb.
func Do(f func(), cb func(p *Panic)) {
	defer Catch(cb)
	f()
}

// PCall executes f and returns the recovered panic, or nil if f returned
// normally.
func PCall(f func()) (caught *Panic) {
	Do(f, func(p *Panic) {
		caught = p
	})
	return
}
