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

// Command tinytest runs the bundled sample suites through the runner.
//
// It is both a smoke test of the library and an example of wiring it into
// a binary.
package main

import (
	"os"

	"github.com/maruel/subcommands"
)

var application = &subcommands.DefaultApplication{
	Name:  "tinytest",
	Title: "Runs tiny unit test suites and reports their outcomes.",
	// Keep in alphabetical order of their name.
	Commands: []*subcommands.Command{
		subcommands.CmdHelp,
		cmdRun,
		cmdSuites,
	},
}

func main() {
	os.Exit(subcommands.Run(application, nil))
}
