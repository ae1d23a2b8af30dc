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

// Package core contains the explicitly-typed terms produced by elaboration, along with the
// coercion calculus used to make instantiation and generalization manifest.
//
// Coercions (Tag, Inst and CoLam) only ever appear in the Coercion position of a CoApp.
// BetaRedex contracts coercion applications into ordinary annotated terms.
package core

import (
	"github.com/wdamron/rankn/types"
)

// Expr is the base for all elaborated expressions. Elaborated trees are never modified after construction.
type Expr interface {
	// Name of the syntax-type of the expression.
	ExprName() string
}

var (
	_ Expr = (*Lit)(nil)
	_ Expr = (*Var)(nil)
	_ Expr = (*App)(nil)
	_ Expr = (*Lam)(nil)
	_ Expr = (*Let)(nil)
	_ Expr = (*LetRec)(nil)
	_ Expr = (*TyAbs)(nil)
	_ Expr = (*Tag)(nil)
	_ Expr = (*Inst)(nil)
	_ Expr = (*CoLam)(nil)
	_ Expr = (*CoApp)(nil)
)

// Literal value with its primitive type
type Lit struct {
	Value interface{}
	Type  types.Type
}

// "Lit"
func (e *Lit) ExprName() string { return "Lit" }

// Variable, annotated with the type it was bound at
type Var struct {
	Name string
	Type types.Type
}

// "Var"
func (e *Var) ExprName() string { return "Var" }

// Application, annotated with the type of its result
type App struct {
	Func Expr
	Arg  Expr
	Type types.Type
}

// "App"
func (e *App) ExprName() string { return "App" }

// Abstraction with an explicitly-typed parameter
type Lam struct {
	Param     string
	ParamType types.Type
	Body      Expr
}

// "Lam"
func (e *Lam) ExprName() string { return "Lam" }

// Non-recursive let-binding
type Let struct {
	Bindings []Binding
	Body     Expr
}

// "Let"
func (e *Let) ExprName() string { return "Let" }

// Recursive let-binding group
type LetRec struct {
	Bindings []Binding
	Body     Expr
}

// "LetRec"
func (e *LetRec) ExprName() string { return "LetRec" }

// Binding of a name to a value at a (possibly polymorphic) type
type Binding struct {
	Name  string
	Type  types.Type
	Value Expr
}

// Type abstraction: `/\a b. e`
//
// Checking against a type with nested foralls abstracts over all of its Skolem constants at once, outside any
// lambdas. Checking `fun x -> fun y -> x` against `forall a. a -> forall b. b -> a` elaborates to
// `/\a#1 b#2. fun (x : a#1) -> fun (y : b#2) -> x`, so the types of elaborated terms agree with the types they
// were checked against only up to floating foralls outward.
type TyAbs struct {
	Vars []*types.Slot
	Body Expr
}

// "TyAbs"
func (e *TyAbs) ExprName() string { return "TyAbs" }

// Identity coercion, treating its argument as exactly Type. Erased by BetaRedex.
type Tag struct {
	Type types.Type
}

// "Tag"
func (e *Tag) ExprName() string { return "Tag" }

// Explicit instantiation coercion, applying type arguments to a type abstraction by quantifier name.
type Inst struct {
	Args []TypeArg
}

// "Inst"
func (e *Inst) ExprName() string { return "Inst" }

// Type argument of an instantiation
type TypeArg struct {
	Name string
	Type types.Type
}

// Coercion abstraction. Applying a CoLam substitutes its argument for Param within Body.
type CoLam struct {
	Param     string
	ParamType types.Type
	Body      Expr
}

// "CoLam"
func (e *CoLam) ExprName() string { return "CoLam" }

// Coercion application
type CoApp struct {
	Coercion Expr
	Arg      Expr
}

// "CoApp"
func (e *CoApp) ExprName() string { return "CoApp" }

// IsIdentity reports whether the coercion co has no effect on its argument.
func IsIdentity(co Expr) bool {
	switch co := co.(type) {
	case *Tag:
		return true
	case *Inst:
		return len(co.Args) == 0
	}
	return false
}

// Abstract abstracts e over vars, omitting empty abstractions.
func Abstract(vars []*types.Slot, e Expr) Expr {
	if len(vars) == 0 {
		return e
	}
	return &TyAbs{Vars: vars, Body: e}
}
