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

package astutil

import (
	"reflect"
	"testing"

	. "github.com/wdamron/rankn/construct"

	"github.com/wdamron/rankn/ast"
)

func TestComponents(t *testing.T) {
	x := Var("x")
	intFn := TFunc(TPrim("int"), TPrim("int"))

	uses := LetRec([]ast.RecBinding{
		RecBinding("f", Lam("x", App(Var("id"), x))),
		RecBinding("id", Lam("x", x)),
	}, Var("f"))
	mutual := LetRec([]ast.RecBinding{
		RecBinding("even", Lam("x", App(Var("odd"), x))),
		RecBinding("odd", Lam("x", App(Var("even"), x))),
	}, Var("even"))
	declared := LetRec([]ast.RecBinding{
		RecBinding("f", Lam("x", App(Var("g"), x))),
		TypedRecBinding("g", intFn, Lam("x", App(Var("f"), x))),
	}, Var("f"))
	shadowed := LetRec([]ast.RecBinding{
		RecBinding("f", Lam("g", App(Var("g"), Lit(1)))),
		RecBinding("g", Lam("x", Let("f", x, App(Var("f"), x)))),
	}, Var("f"))

	root := Let("a", uses, Let("b", mutual, Let("c", declared, shadowed)))
	a, err := Analyze(root)
	if err != nil {
		t.Fatal(err)
	}

	for _, tc := range []struct {
		expr     *ast.LetRec
		expected [][]int
	}{
		{uses, [][]int{{1}, {0}}},
		{mutual, [][]int{{0, 1}}},
		{declared, [][]int{{0}, {1}}},
	} {
		if sccs := a.Components(tc.expr); !reflect.DeepEqual(sccs, tc.expected) {
			t.Fatalf("%s: expected %v, got %v", ast.ExprString(tc.expr), tc.expected, sccs)
		}
	}

	if sccs := a.Components(shadowed); len(sccs) != 2 || len(sccs[0]) != 1 || len(sccs[1]) != 1 {
		t.Fatalf("%s: expected independent bindings, got %v", ast.ExprString(shadowed), sccs)
	}
}

func TestNestedComponents(t *testing.T) {
	x := Var("x")

	// The inner group refers to the outer binding h, adding an edge to the outer group:
	inner := LetRec([]ast.RecBinding{
		RecBinding("k", Lam("x", App(Var("h"), x))),
	}, Var("k"))
	outer := LetRec([]ast.RecBinding{
		RecBinding("g", Lam("x", inner)),
		RecBinding("h", Lam("x", x)),
	}, Var("g"))

	a, err := Analyze(outer)
	if err != nil {
		t.Fatal(err)
	}
	if sccs := a.Components(outer); !reflect.DeepEqual(sccs, [][]int{{1}, {0}}) {
		t.Fatalf("outer: %v", sccs)
	}
	if sccs := a.Components(inner); !reflect.DeepEqual(sccs, [][]int{{0}}) {
		t.Fatalf("inner: %v", sccs)
	}
}

func TestUnanalyzed(t *testing.T) {
	group := LetRec([]ast.RecBinding{RecBinding("a", Lit(1)), RecBinding("b", Lit(2))}, Var("a"))

	var a *Analysis
	if sccs := a.Components(group); !reflect.DeepEqual(sccs, [][]int{{0, 1}}) {
		t.Fatalf("expected a single component, got %v", sccs)
	}

	if _, err := Analyze(nil); err == nil {
		t.Fatalf("expected failure for nil expression")
	}
	if _, err := Analyze(App(Var("f"), nil)); err == nil {
		t.Fatalf("expected failure for nil sub-expression")
	}
}
