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

package logging

import "context"

// Enabled reports whether a message at level `l` passes the context's
// minimum level. Logger implementations use it to drop messages early.
func Enabled(ctx context.Context, l Level) bool {
	return l >= GetLevel(ctx)
}

// Logf logs at level `l` through the context's Logger.
func Logf(ctx context.Context, l Level, fmt string, args ...any) {
	Get(ctx).LogCall(l, 1, fmt, args)
}

// Debugf logs at Debug level.
func Debugf(ctx context.Context, fmt string, args ...any) {
	Get(ctx).LogCall(Debug, 1, fmt, args)
}

// Infof logs at Info level.
func Infof(ctx context.Context, fmt string, args ...any) {
	Get(ctx).LogCall(Info, 1, fmt, args)
}

// Warningf logs at Warning level.
func Warningf(ctx context.Context, fmt string, args ...any) {
	Get(ctx).LogCall(Warning, 1, fmt, args)
}

// Errorf logs at Error level.
func Errorf(ctx context.Context, fmt string, args ...any) {
	Get(ctx).LogCall(Error, 1, fmt, args)
}

// SetStackTrace returns a context whose messages all carry `stack`.
//
// Most callers want DebugWithStackTrace or ErrorWithStackTrace instead.
func SetStackTrace(ctx context.Context, stack StackTrace) context.Context {
	return modifyCtx(ctx, func(lc *LogContext) { lc.StackTrace = stack })
}

// DebugWithStackTrace logs at Debug level with `stack` appended.
func DebugWithStackTrace(ctx context.Context, stack StackTrace, fmt string, args ...any) {
	Get(SetStackTrace(ctx, stack)).LogCall(Debug, 1, fmt, args)
}

// ErrorWithStackTrace logs at Error level with `stack` appended.
func ErrorWithStackTrace(ctx context.Context, stack StackTrace, fmt string, args ...any) {
	Get(SetStackTrace(ctx, stack)).LogCall(Error, 1, fmt, args)
}
