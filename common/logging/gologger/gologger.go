// Copyright 2015 The LUCI Authors.
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

// Package gologger is a logging.Logger implementation backed by the
// github.com/op/go-logging library.
package gologger

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	gol "github.com/op/go-logging"

	"go.chromium.org/tinytest/common/logging"
)

// StandardFormat prints the level, time, process ID and file location,
// colored. Then the message.
const StandardFormat = `%{color}[%{level:.1s}%{time:2006-01-02T15:04:05.000000-07:00} ` +
	`%{pid} 0 %{shortfile}]%{color:reset} %{message}`

// StdConfig writes StandardFormat messages to stderr.
var StdConfig = LoggerConfig{Out: os.Stderr}

// LoggerConfig owns a go-logging logger and hands out logging.Logger
// instances that write to it.
type LoggerConfig struct {
	// Out is where messages go. Defaults to os.Stderr.
	Out io.Writer
	// Format is a go-logging format string. Defaults to StandardFormat.
	Format string

	once sync.Once
	l    *gol.Logger
}

// Use registers this config as the logging factory of ctx.
func (lc *LoggerConfig) Use(ctx context.Context) context.Context {
	return logging.SetFactory(ctx, lc.NewLogger)
}

// NewLogger returns a logging.Logger bound to lctx.
//
// A nil lctx logs everything, with no stack trace.
func (lc *LoggerConfig) NewLogger(_ context.Context, lctx *logging.LogContext) logging.Logger {
	lc.once.Do(lc.init)
	if lctx == nil {
		lctx = &logging.LogContext{Level: logging.Debug}
	}
	return &loggerImpl{l: lc.l, lctx: lctx}
}

func (lc *LoggerConfig) init() {
	out := lc.Out
	if out == nil {
		out = os.Stderr
	}
	format := lc.Format
	if format == "" {
		format = StandardFormat
	}

	backend := gol.NewBackendFormatter(gol.NewLogBackend(out, "", 0), gol.MustStringFormatter(format))
	leveled := gol.AddModuleLevel(backend)
	// Level filtering happens in loggerImpl against the LogContext.
	leveled.SetLevel(gol.DEBUG, "")

	lc.l = &gol.Logger{
		Module: "tinytest",
		// Skip loggerImpl.LogCall and its caller in this package (or in
		// package logging), so %{shortfile} points at the call site.
		ExtraCalldepth: 2,
	}
	lc.l.SetBackend(leveled)
}

type loggerImpl struct {
	l    *gol.Logger
	lctx *logging.LogContext
}

func (li *loggerImpl) Debugf(format string, args ...any) {
	li.LogCall(logging.Debug, 1, format, args)
}

func (li *loggerImpl) Infof(format string, args ...any) {
	li.LogCall(logging.Info, 1, format, args)
}

func (li *loggerImpl) Warningf(format string, args ...any) {
	li.LogCall(logging.Warning, 1, format, args)
}

func (li *loggerImpl) Errorf(format string, args ...any) {
	li.LogCall(logging.Error, 1, format, args)
}

func (li *loggerImpl) LogCall(l logging.Level, calldepth int, format string, args []any) {
	if l < li.lctx.Level {
		return
	}

	text := fmt.Sprintf(format, args...)
	if !li.lctx.StackTrace.IsEmpty() {
		text += "\n" + li.lctx.StackTrace.Standard
	}

	switch l {
	case logging.Debug:
		li.l.Debugf("%s", text)
	case logging.Info:
		li.l.Infof("%s", text)
	case logging.Warning:
		li.l.Warningf("%s", text)
	default:
		li.l.Errorf("%s", text)
	}
}
