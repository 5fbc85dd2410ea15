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

package logging

import (
	"context"
	"flag"
	"fmt"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

type recordingLogger struct {
	lc    *LogContext
	lines *[]string
}

func (r recordingLogger) Debugf(f string, a ...any)   { r.LogCall(Debug, 1, f, a) }
func (r recordingLogger) Infof(f string, a ...any)    { r.LogCall(Info, 1, f, a) }
func (r recordingLogger) Warningf(f string, a ...any) { r.LogCall(Warning, 1, f, a) }
func (r recordingLogger) Errorf(f string, a ...any)   { r.LogCall(Error, 1, f, a) }
func (r recordingLogger) LogCall(l Level, _ int, f string, a []any) {
	if l < r.lc.Level {
		return
	}
	*r.lines = append(*r.lines, fmt.Sprintf("%s: %s", l, fmt.Sprintf(f, a...)))
}

func TestContextLogging(t *testing.T) {
	t.Parallel()

	Convey(`With no factory installed`, t, func() {
		ctx := context.Background()

		So(Get(ctx), ShouldEqual, Null)
		So(GetLevel(ctx), ShouldEqual, DefaultLevel)
		So(func() { Errorf(ctx, "dropped") }, ShouldNotPanic)
	})

	Convey(`With a factory installed`, t, func() {
		var lines []string
		ctx := SetFactory(context.Background(), func(_ context.Context, lc *LogContext) Logger {
			return recordingLogger{lc, &lines}
		})

		Convey(`filters by level`, func() {
			ctx = SetLevel(ctx, Warning)
			So(Enabled(ctx, Info), ShouldBeFalse)
			So(Enabled(ctx, Error), ShouldBeTrue)

			Infof(ctx, "quiet")
			Warningf(ctx, "loud %d", 1)
			Logf(ctx, Error, "louder")
			So(lines, ShouldResemble, []string{"warning: loud 1", "error: louder"})
		})

		Convey(`carries stack traces without touching the parent`, func() {
			st := StackTrace{Standard: "trace"}
			child := SetStackTrace(ctx, st)
			So(CurrentLogContext(child).StackTrace, ShouldResemble, st)
			So(CurrentLogContext(ctx).StackTrace.IsEmpty(), ShouldBeTrue)
		})
	})
}

func TestLevelFlag(t *testing.T) {
	t.Parallel()

	Convey(`Level works as a flag`, t, func() {
		var l Level
		fs := flag.NewFlagSet("test", flag.ContinueOnError)
		fs.Var(&l, "log-level", "")

		So(fs.Parse([]string{"-log-level", "warning"}), ShouldBeNil)
		So(l, ShouldEqual, Warning)
		So(l.String(), ShouldEqual, "warning")

		So(l.Set("chatty"), ShouldNotBeNil)
	})
}
