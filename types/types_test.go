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

package types

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
)

var (
	tInt  = NewPrimitive(IntName)
	tBool = NewPrimitive(BoolName)
)

func pair(a, b Type) Type {
	return NewComposite(NewComposite(NewPrimitive("*"), a, false), b, false)
}

func forall(body Type, names ...string) Type { return NewForAll(names, body) }

func TestTypeString(t *testing.T) {
	a, b := NewSlot("a"), NewSlot("b")
	list := NewPrimitive("list")
	m := NewMetaSlot(3)

	cases := []struct {
		t        Type
		expected string
	}{
		{Func(tInt, tBool), "int -> bool"},
		{Func(tInt, Func(tInt, tBool)), "int -> int -> bool"},
		{Func(Func(tInt, tInt), tBool), "(int -> int) -> bool"},
		{forall(Func(a, Func(b, a)), "a", "b"), "forall a b. a -> b -> a"},
		{Func(forall(Func(a, a), "a"), tInt), "(forall a. a -> a) -> int"},
		{Func(tInt, forall(Func(a, a), "a")), "int -> forall a. a -> a"},
		{pair(pair(tInt, tBool), tInt), "(int * bool) * int"},
		{pair(Func(tInt, tBool), tInt), "(int -> bool) * int"},
		{NewComposite(list, NewComposite(list, tInt, false), false), "list (list int)"},
		{Func(NewComposite(list, a, false), tBool), "list a -> bool"},
		{NewSkolem(7, "a"), "a#7"},
		{m, "?3"},
		{NewPrimitive(ArrowName), "(->)"},
		{nil, "<nil>"},
	}
	for _, tc := range cases {
		if s := TypeString(tc.t); s != tc.expected {
			t.Fatalf("expected %s, got %s", tc.expected, s)
		}
	}

	m.SetRef(tInt)
	if s := TypeString(Func(m, m)); s != "int -> int" {
		t.Fatalf("resolved meta-slot: %s", s)
	}
}

func TestZonk(t *testing.T) {
	m1, m2, m3 := NewMetaSlot(1), NewMetaSlot(2), NewMetaSlot(3)
	m1.SetRef(m2)
	m2.SetRef(Func(m3, tInt))

	z := Zonk(Func(m1, m3))
	if s := TypeString(z); s != "(?3 -> int) -> ?3" {
		t.Fatalf("zonked: %s", s)
	}
	if len(MetaSlots(z)) != 1 || IsClosed(z) {
		t.Fatalf("expected one unresolved meta-slot: %s", spew.Sdump(z))
	}
	// Path compression points m1 directly at the final resolution:
	if _, ok := m1.Ref().(*Composite); !ok {
		t.Fatalf("expected compressed path: %s", spew.Sdump(m1.Ref()))
	}

	again := Zonk(z)
	if !Equal(z, again) || TypeString(z) != TypeString(again) {
		t.Fatalf("expected zonk to be idempotent:\n%s\n%s", spew.Sdump(z), spew.Sdump(again))
	}

	m3.SetRef(tBool)
	if z := Zonk(Func(m1, m3)); !IsClosed(z) || TypeString(z) != "(bool -> int) -> bool" {
		t.Fatalf("zonked: %s", TypeString(z))
	}
}

func TestSubst(t *testing.T) {
	a, b := NewSlot("a"), NewSlot("b")

	// forall a. a -> b, with b := int and a := bool
	sigma := forall(Func(a, b), "a")
	out := Subst(Func(a, sigma), map[string]Type{"a": tBool, "b": tInt})
	if s := TypeString(out); s != "bool -> forall a. a -> int" {
		t.Fatalf("substituted: %s", s)
	}

	// Skolems are not replaced by name:
	sk := NewSkolem(1, "a")
	if s := TypeString(Subst(Func(sk, a), map[string]Type{"a": tInt})); s != "a#1 -> int" {
		t.Fatalf("substituted: %s", s)
	}
	if s := TypeString(SubstSlots(Func(sk, a), map[Slot]Type{*sk: tInt})); s != "int -> a" {
		t.Fatalf("substituted: %s", s)
	}
}

func TestFreeSlots(t *testing.T) {
	a, b := NewSlot("a"), NewSlot("b")
	sk := NewSkolem(4, "a")
	m := NewMetaSlot(5)
	m.SetRef(sk)

	free := FreeSlots(Func(forall(Func(a, b), "a"), m))
	if free.Size() != 2 || !free.Contains(b.Key()) || !free.Contains(sk.Key()) || free.Contains(a.Key()) {
		t.Fatalf("free slots: %v", free.Slice())
	}

	// Skolems compare by the name of the quantifier they replaced:
	if !SlotsEqual(sk, NewSkolem(9, "a")) || SlotsEqual(sk, a) {
		t.Fatalf("unexpected slot equality")
	}

	binders := Binders(forall(Func(forall(a, "c"), a), "a", "b"))
	if binders.Size() != 3 || !binders.Contains("c") {
		t.Fatalf("binders: %v", binders.Slice())
	}
}

func TestOccurs(t *testing.T) {
	m1, m2 := NewMetaSlot(1), NewMetaSlot(2)
	m2.SetRef(pair(m1, tInt))
	if !Occurs(m1, Func(tBool, m2)) {
		t.Fatalf("expected m1 to occur through m2")
	}
	if Occurs(m2, Func(tBool, m1)) {
		t.Fatalf("unexpected occurrence")
	}
}

func TestSplitFunc(t *testing.T) {
	m := NewMetaSlot(1)
	m.SetRef(Func(tInt, tBool))
	dom, cod, ok := SplitFunc(m)
	if !ok || dom != tInt || cod != tBool {
		t.Fatalf("split: %v %v %v", dom, cod, ok)
	}
	if _, _, ok := SplitFunc(pair(tInt, tBool)); ok {
		t.Fatalf("expected pair not to split as a function")
	}
	if !IsMonotype(m) || IsMonotype(Func(tInt, forall(tInt, "a"))) {
		t.Fatalf("unexpected monotype classification")
	}
}
