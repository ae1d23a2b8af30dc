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

package core

import (
	"errors"
	"testing"

	"github.com/davecgh/go-spew/spew"

	"github.com/wdamron/rankn/types"
)

var (
	tInt  = types.NewPrimitive(types.IntName)
	tBool = types.NewPrimitive(types.BoolName)
)

func TestBetaRedex(t *testing.T) {
	a, b := types.NewSlot("a"), types.NewSlot("b")
	sk := types.NewSkolem(1, "a")
	f := &Var{Name: "f", Type: types.NewForAll([]string{"a", "b"}, types.Func(a, types.Func(b, a)))}
	x := &Var{Name: "x", Type: a}
	one := &Lit{Value: 1, Type: tInt}

	cases := []struct {
		expr     Expr
		expected string
	}{
		{&CoApp{Coercion: &Tag{Type: tInt}, Arg: one}, "1"},
		{&CoApp{Coercion: &Inst{}, Arg: one}, "1"},
		{
			&CoApp{Coercion: &Inst{Args: []TypeArg{{"b", tBool}}}, Arg: &CoApp{Coercion: &Inst{Args: []TypeArg{{"a", tInt}}}, Arg: f}},
			"inst[a := int, b := bool] f",
		},
		{&TyAbs{Vars: []*types.Slot{a}, Body: &TyAbs{Vars: []*types.Slot{b}, Body: x}}, `/\a b. x`},
		{&TyAbs{Body: x}, "x"},
		{
			&CoApp{Coercion: &Inst{Args: []TypeArg{{"a", tInt}}}, Arg: &TyAbs{Vars: []*types.Slot{a}, Body: &Lam{Param: "x", ParamType: a, Body: x}}},
			"fun (x : int) -> x",
		},
		{
			// Only the matching abstraction is instantiated:
			&CoApp{Coercion: &Inst{Args: []TypeArg{{"a", tInt}}}, Arg: &TyAbs{Vars: []*types.Slot{b, sk}, Body: &Lam{Param: "x", ParamType: types.Func(sk, b), Body: x}}},
			`/\b. fun (x : int -> b) -> x`,
		},
		{
			&CoApp{Coercion: &Inst{Args: []TypeArg{{"c", tInt}}}, Arg: &TyAbs{Vars: []*types.Slot{a}, Body: x}},
			`inst[c := int] (/\a. x)`,
		},
		{
			&CoApp{
				Coercion: &CoLam{Param: "x", ParamType: tInt, Body: &App{Func: &Var{Name: "g"}, Arg: &Var{Name: "x"}, Type: tInt}},
				Arg:      one,
			},
			"g 1",
		},
		{
			// Coercion parameters are shadowed by lambdas:
			&CoApp{
				Coercion: &CoLam{Param: "x", ParamType: tInt, Body: &Lam{Param: "x", ParamType: tInt, Body: &Var{Name: "x"}}},
				Arg:      one,
			},
			"fun (x : int) -> x",
		},
		{
			// Coercions nested within coercions are reduced after substitution:
			&CoApp{
				Coercion: &CoLam{Param: "y", ParamType: tInt, Body: &CoApp{Coercion: &Tag{Type: tInt}, Arg: &Var{Name: "y"}}},
				Arg:      &CoApp{Coercion: &Tag{Type: tInt}, Arg: one},
			},
			"1",
		},
		{
			&Let{
				Bindings: []Binding{{Name: "y", Type: tInt, Value: &CoApp{Coercion: &Tag{Type: tInt}, Arg: one}}},
				Body:     &Var{Name: "y"},
			},
			"let y : int = 1 in y",
		},
	}
	for _, tc := range cases {
		out := BetaRedex(tc.expr)
		if s := ExprString(out); s != tc.expected {
			t.Fatalf("%s: expected %s, got %s", ExprString(tc.expr), tc.expected, s)
		}
		if again := ExprString(BetaRedex(out)); again != tc.expected {
			t.Fatalf("expected idempotent reduction of %s, got %s", tc.expected, again)
		}
	}
}

func TestBetaRedexDoesNotModifyInput(t *testing.T) {
	a := types.NewSlot("a")
	lam := &Lam{Param: "x", ParamType: a, Body: &CoApp{Coercion: &Tag{Type: a}, Arg: &Var{Name: "x", Type: a}}}
	expr := &CoApp{Coercion: &Inst{Args: []TypeArg{{"a", tInt}}}, Arg: &TyAbs{Vars: []*types.Slot{a}, Body: lam}}

	before := spew.Sdump(expr)
	BetaRedex(expr)
	if after := spew.Sdump(expr); after != before {
		t.Fatalf("input was modified:\n%s\n%s", before, after)
	}
}

func TestVerify(t *testing.T) {
	m := types.NewMetaSlot(1)
	open := &Lam{Param: "x", ParamType: m, Body: &Var{Name: "x", Type: m}}

	err := Verify(open)
	var verifyErr *VerifyError
	if !errors.Is(err, ErrOpenType) || !errors.As(err, &verifyErr) || verifyErr.Type != types.Type(m) {
		t.Fatalf("expected open type, got %v", err)
	}
	if metas := MetaSlots(open); len(metas) != 1 || metas[0] != m {
		t.Fatalf("meta-slots: %v", metas)
	}

	err = Verify(&App{Func: &Var{Name: "f", Type: tInt}, Arg: &CoApp{Coercion: &Tag{Type: tInt}, Arg: &Lit{Value: 1, Type: tInt}}, Type: tInt})
	if !errors.Is(err, ErrResidualCoercion) {
		t.Fatalf("expected residual coercion, got %v", err)
	}

	m.SetRef(tBool)
	closed := ZonkTypes(open)
	if err := Verify(closed); err != nil {
		t.Fatal(err)
	}
	if s := ExprString(closed); s != "fun (x : bool) -> x" {
		t.Fatalf("zonked: %s", s)
	}
	if len(MetaSlots(closed)) != 0 {
		t.Fatalf("expected no meta-slots")
	}
}

func TestSubstTypes(t *testing.T) {
	a := types.NewSlot("a")
	body := &Lam{Param: "x", ParamType: a, Body: &TyAbs{Vars: []*types.Slot{a}, Body: &Var{Name: "x", Type: a}}}
	out := SubstTypes(body, map[types.Slot]types.Type{*a: tInt})
	if s := ExprString(out); s != `fun (x : int) -> /\a. x` {
		t.Fatalf("substituted: %s", s)
	}
	inner := out.(*Lam).Body.(*TyAbs).Body.(*Var)
	if inner.Type != types.Type(a) {
		t.Fatalf("expected shadowed slot to be preserved: %s", types.TypeString(inner.Type))
	}
}
