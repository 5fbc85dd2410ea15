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

package main

import (
	"fmt"
	"io"

	"github.com/maruel/subcommands"
)

var cmdSuites = &subcommands.Command{
	UsageLine: "suites",
	ShortDesc: "lists the bundled test suites",
	LongDesc:  "Lists the bundled test suites in run order, with their test counts.",
	CommandRun: func() subcommands.CommandRun {
		return &suitesRun{}
	},
}

type suitesRun struct {
	subcommands.CommandRunBase
}

func (r *suitesRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	if len(args) != 0 {
		fmt.Fprintf(a.GetErr(), "%s: position arguments not expected\n", a.GetName())
		return 1
	}
	listSuites(a.GetOut())
	return 0
}

func listSuites(w io.Writer) {
	for _, b := range bundledSuites() {
		fmt.Fprintf(w, "%-12s %d tests\n", b.Name(), b.Len())
	}
}
