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
	"fmt"
	"io"
	"strings"

	"github.com/mgutz/ansi"
)

const (
	// dash separates the verdict from the test name (U+2013 EN DASH).
	dash = " – "

	exceptionPrefix = "Exception occurred" + dash
)

// report is everything printed for one test case.
type report struct {
	name      string
	showInput bool
	input     string

	passed bool
	// Only set when !passed.
	expected string
	actual   string
}

// render renders a report as:
//
//	PASS – <name>[ <- <input>] OK
//
// or
//
//	FAIL – <name>[ <- <input>]
//	    Expected: <expected>
//	      Actual: <actual>
func (r *report) render(colorize bool) string {
	var sb strings.Builder

	verdict, code := "FAIL", ansi.Red
	if r.passed {
		verdict, code = "PASS", ansi.Green
	}
	if colorize {
		verdict = code + verdict + ansi.Reset
	}

	sb.WriteString(verdict)
	sb.WriteString(dash)
	sb.WriteString(r.name)
	if r.showInput {
		sb.WriteString(" <- ")
		sb.WriteString(r.input)
	}

	if r.passed {
		sb.WriteString(" OK\n")
		return sb.String()
	}

	fmt.Fprintf(&sb, "\n    Expected: %s\n      Actual: %s\n", r.expected, r.actual)
	return sb.String()
}

// write ignores errors: console output is assumed to be infallible.
func write(w io.Writer, s string) {
	_, _ = io.WriteString(w, s)
}
