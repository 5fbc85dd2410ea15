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
	"context"
	"io"
	"os"
)

type contextKey int

const (
	outputKey contextKey = iota
	colorKey
)

// UseOutput returns a context whose reports are written to w.
func UseOutput(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, outputKey, w)
}

// Output returns the report sink of ctx. Defaults to os.Stdout.
func Output(ctx context.Context) io.Writer {
	if w, ok := ctx.Value(outputKey).(io.Writer); ok && w != nil {
		return w
	}
	return os.Stdout
}

// UseColor returns a context in which PASS and FAIL verdicts are wrapped in
// ANSI color codes.
//
// Color is off by default, which keeps reports byte-for-byte stable.
func UseColor(ctx context.Context, enabled bool) context.Context {
	return context.WithValue(ctx, colorKey, enabled)
}

// ColorEnabled returns true if UseColor(ctx, true) is in effect.
func ColorEnabled(ctx context.Context) bool {
	enabled, _ := ctx.Value(colorKey).(bool)
	return enabled
}
