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
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/maruel/subcommands"
	"github.com/pkg/errors"

	"go.chromium.org/tinytest/common/logging"
	"go.chromium.org/tinytest/common/logging/gologger"
	"go.chromium.org/tinytest/runner"
)

// errFailed is returned by runRun.main when some test case failed.
var errFailed = errors.New("some tests failed")

var cmdRun = &subcommands.Command{
	UsageLine: "run [-config FILE] [options] [SUITE...]",
	ShortDesc: "runs the bundled test suites",
	LongDesc: `Runs the bundled test suites and prints a report for each.

Positional arguments select suites by name, overriding the config file.
Flags override the config file as well. Exits with 1 if any test failed.`,
	CommandRun: func() subcommands.CommandRun {
		r := &runRun{}
		r.init()
		return r
	},
}

type runRun struct {
	subcommands.CommandRunBase

	configPath string
	showInputs bool
	showPasses bool
	showCount  bool
	color      colorMode
	logLevel   logging.Level
}

func (r *runRun) init() {
	r.color = colorAuto
	r.logLevel = logging.Warning

	r.Flags.StringVar(&r.configPath, "config", "", "Path to a YAML config file.")
	r.Flags.BoolVar(&r.showInputs, "inputs", false, "Print the input description of each test.")
	r.Flags.BoolVar(&r.showPasses, "passes", false, "Print a line for passing tests too.")
	r.Flags.BoolVar(&r.showCount, "count", true, "Print a pass count after each suite.")
	r.Flags.Var(&r.color, "color", "Color the verdicts: auto, always or never.")
	r.Flags.Var(&r.logLevel, "log-level", "Log level: debug, info, warning or error.")
}

func (r *runRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := gologger.StdConfig.Use(context.Background())
	ctx = logging.SetLevel(ctx, r.logLevel)

	switch err := r.main(ctx, a.GetOut(), args); {
	case err == nil:
		return 0
	case errors.Is(err, errFailed):
		logging.Infof(ctx, "%s", err)
	default:
		fmt.Fprintf(a.GetErr(), "%s: %s\n", a.GetName(), err)
	}
	return 1
}

func (r *runRun) main(ctx context.Context, out io.Writer, args []string) error {
	cfg, err := loadConfig(r.configPath)
	if err != nil {
		return err
	}
	r.override(cfg)
	if len(args) > 0 {
		cfg.Suites = args
	}

	suites, err := selectSuites(cfg.Suites)
	if err != nil {
		return err
	}

	ctx = runner.UseOutput(ctx, out)
	ctx = runner.UseColor(ctx, cfg.Color.enabled(out))

	tally := runner.RunAll(ctx, cfg.Flags(), suites...)
	logging.Debugf(ctx, "ran %d suites: %s", len(suites), tally)
	if tally.Failed() > 0 {
		return errors.Wrapf(errFailed, "%d of %d", tally.Failed(), tally.Total())
	}
	return nil
}

// override copies the explicitly set flags into `cfg`.
func (r *runRun) override(cfg *Config) {
	r.Flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "inputs":
			cfg.ShowInputs = r.showInputs
		case "passes":
			cfg.ShowPasses = r.showPasses
		case "count":
			cfg.ShowCount = r.showCount
		case "color":
			cfg.Color = r.color
		}
	})
}
