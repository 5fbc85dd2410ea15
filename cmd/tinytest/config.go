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
	"flag"
	"io"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/term"
	"gopkg.in/yaml.v2"

	"go.chromium.org/tinytest/runner"
)

// ErrInvalidConfig is wrapped by every config loading failure caused by the
// file's contents.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the YAML run configuration. Flags override it.
type Config struct {
	ShowInputs bool      `yaml:"show_inputs"`
	ShowPasses bool      `yaml:"show_passes"`
	ShowCount  bool      `yaml:"show_count"`
	Color      colorMode `yaml:"color"`
	// Suites to run, in order. Empty means all bundled suites.
	Suites []string `yaml:"suites"`
}

func defaultConfig() *Config {
	return &Config{
		ShowCount: true,
		Color:     colorAuto,
	}
}

// Flags returns the runner display switches.
func (c *Config) Flags() runner.Flags {
	return runner.Flags{
		ShowInputs: c.ShowInputs,
		ShowPasses: c.ShowPasses,
		ShowCount:  c.ShowCount,
	}
}

// loadConfig reads the config at `path` on top of the defaults.
//
// An empty path yields the defaults.
func loadConfig(path string) (*Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	blob, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %q", path)
	}
	if err := parseConfig(blob, cfg); err != nil {
		return nil, errors.Wrapf(err, "config %q", path)
	}
	return cfg, nil
}

func parseConfig(blob []byte, cfg *Config) error {
	if err := yaml.UnmarshalStrict(blob, cfg); err != nil {
		return errors.Wrapf(ErrInvalidConfig, "%s", err)
	}
	return nil
}

// colorMode decides whether verdicts are colored.
type colorMode string

const (
	colorAuto   colorMode = "auto"
	colorAlways colorMode = "always"
	colorNever  colorMode = "never"
)

var _ flag.Value = (*colorMode)(nil)

// Set implements flag.Value.
func (m *colorMode) Set(v string) error {
	switch mode := colorMode(v); mode {
	case colorAuto, colorAlways, colorNever:
		*m = mode
		return nil
	}
	return errors.Errorf("unknown color mode %q, want auto, always or never", v)
}

// String implements flag.Value.
func (m *colorMode) String() string {
	if m == nil || *m == "" {
		return string(colorAuto)
	}
	return string(*m)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (m *colorMode) UnmarshalYAML(unmarshal func(any) error) error {
	var v string
	if err := unmarshal(&v); err != nil {
		return err
	}
	return m.Set(v)
}

// enabled resolves the mode for output going to `w`. In auto mode only a
// terminal gets colors.
func (m *colorMode) enabled(w io.Writer) bool {
	switch *m {
	case colorAlways:
		return true
	case colorNever:
		return false
	}
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}
