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

// Package logging defines a context-bound logging interface.
//
// Libraries log through the package-level functions (Debugf, Infof, ...) and
// never pick a backend themselves. Binaries install one (e.g. gologger) into
// the root context. With no backend installed, all logging is discarded.
package logging

import (
	"context"
)

// Logger is a logging interface.
type Logger interface {
	// Debugf formats its arguments according to the format, analogous to
	// fmt.Printf and records the text as a log message at Debug level.
	Debugf(format string, args ...any)

	// Infof is like Debugf, but logs at Info level.
	Infof(format string, args ...any)

	// Warningf is like Debugf, but logs at Warning level.
	Warningf(format string, args ...any)

	// Errorf is like Debugf, but logs at Error level.
	Errorf(format string, args ...any)

	// LogCall is a generic logging function. This is oriented more towards
	// utility functions than direct end-user usage.
	LogCall(l Level, calldepth int, format string, args []any)
}

// StackTrace is a stack trace attached to a log message.
type StackTrace struct {
	// Standard is the stack trace in the format produced by
	// runtime/debug.Stack.
	Standard string
}

// IsEmpty returns true if there's nothing in the stack trace.
func (st StackTrace) IsEmpty() bool {
	return st.Standard == ""
}

// LogContext is the logging state carried by a context.
type LogContext struct {
	// Level is the minimum level a message must have to be logged.
	Level Level
	// StackTrace, if set, is attached to every message.
	StackTrace StackTrace
}

// Factory returns a Logger bound to the given LogContext.
type Factory func(ctx context.Context, lc *LogContext) Logger

type contextKey int

const (
	factoryKey contextKey = iota
	logContextKey
)

// SetFactory sets the Logger factory for this context.
//
// The factory will be called each time Get(context) is used.
func SetFactory(ctx context.Context, f Factory) context.Context {
	return context.WithValue(ctx, factoryKey, f)
}

// GetFactory returns the currently-configured logging factory (or nil).
func GetFactory(ctx context.Context) Factory {
	if f, ok := ctx.Value(factoryKey).(Factory); ok {
		return f
	}
	return nil
}

// Get the current Logger, or a logger that ignores all messages if none
// is defined.
func Get(ctx context.Context) Logger {
	if f := GetFactory(ctx); f != nil {
		return f(ctx, CurrentLogContext(ctx))
	}
	return Null
}

// CurrentLogContext returns a copy of the LogContext in ctx.
func CurrentLogContext(ctx context.Context) *LogContext {
	if lc, ok := ctx.Value(logContextKey).(*LogContext); ok {
		cpy := *lc
		return &cpy
	}
	return &LogContext{Level: DefaultLevel}
}

// SetLevel sets the minimum logging level.
func SetLevel(ctx context.Context, l Level) context.Context {
	return modifyCtx(ctx, func(lc *LogContext) { lc.Level = l })
}

// GetLevel returns the minimum logging level.
func GetLevel(ctx context.Context) Level {
	return CurrentLogContext(ctx).Level
}

func modifyCtx(ctx context.Context, cb func(lc *LogContext)) context.Context {
	lc := CurrentLogContext(ctx)
	cb(lc)
	return context.WithValue(ctx, logContextKey, lc)
}

// Null is a Logger that discards everything.
var Null Logger = nullLogger{}

type nullLogger struct{}

func (nullLogger) Debugf(string, ...any)             {}
func (nullLogger) Infof(string, ...any)              {}
func (nullLogger) Warningf(string, ...any)           {}
func (nullLogger) Errorf(string, ...any)             {}
func (nullLogger) LogCall(Level, int, string, []any) {}
