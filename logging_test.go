// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package rankn_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	. "github.com/wdamron/rankn"
	. "github.com/wdamron/rankn/construct"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	ctx := NewContext()
	ctx.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	expectType(t, ctx, newEnv(), Ann(Lam("x", Var("x")), tId()), "forall t1. t1 -> t1")

	out := buf.String()
	for _, msg := range []string{"skolemize", "generalize"} {
		if !strings.Contains(out, "msg=\""+msg+"\"") && !strings.Contains(out, "msg="+msg) {
			t.Fatalf("expected %q in log output:\n%s", msg, out)
		}
	}
	if !strings.Contains(out, `type="forall t1. t1 -> t1"`) {
		t.Fatalf("expected generalized type in log output:\n%s", out)
	}

	// A nil logger disables tracing:
	buf.Reset()
	ctx.SetLogger(nil)
	expectType(t, ctx, newEnv(), Lit(1), "int")
	if buf.Len() != 0 {
		t.Fatalf("unexpected log output: %s", buf.String())
	}
}
