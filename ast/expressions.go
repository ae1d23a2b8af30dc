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

package ast

import (
	"github.com/wdamron/rankn/types"
)

// Expr is the base for all source expressions. Source expressions are never modified by inference.
type Expr interface {
	// Name of the syntax-type of the expression.
	ExprName() string
}

var (
	_ Expr = (*Lit)(nil)
	_ Expr = (*Var)(nil)
	_ Expr = (*App)(nil)
	_ Expr = (*Lam)(nil)
	_ Expr = (*ALam)(nil)
	_ Expr = (*Let)(nil)
	_ Expr = (*LetRec)(nil)
	_ Expr = (*Ann)(nil)
)

// Literal value. The type of a literal is determined by the kind of its value:
// integers and floats are `int`, strings are `string`, booleans are `bool`, and anything else is `unit`.
type Lit struct {
	Value interface{}
}

// "Lit"
func (e *Lit) ExprName() string { return "Lit" }

// Variable
type Var struct {
	Name string
}

// "Var"
func (e *Var) ExprName() string { return "Var" }

// Application: `f x`
type App struct {
	Func Expr
	Arg  Expr
}

// "App"
func (e *App) ExprName() string { return "App" }

// Abstraction: `fun x -> x`
type Lam struct {
	Param string
	Body  Expr
}

// "Lam"
func (e *Lam) ExprName() string { return "Lam" }

// Annotated abstraction: `fun (x : forall a. a -> a) -> x`
type ALam struct {
	Param     string
	ParamType types.Type
	Body      Expr
}

// "ALam"
func (e *ALam) ExprName() string { return "ALam" }

// Non-recursive let-binding: `let x = 1 and y = 2 in x`
//
// Bindings are independent; no binding may refer to itself or to another binding in the same list.
type Let struct {
	Bindings []Binding
	Body     Expr
}

// "Let"
func (e *Let) ExprName() string { return "Let" }

// Binding of a name to a value within a let-expression
type Binding struct {
	Name  string
	Value Expr
}

// Recursive let-binding group: `let rec f = fun x -> g x and g : forall a. a -> a = fun x -> f x in f`
//
// Bindings may refer to themselves and to each other.
type LetRec struct {
	Bindings []RecBinding
	Body     Expr
}

// "LetRec"
func (e *LetRec) ExprName() string { return "LetRec" }

// Binding within a recursive let-group. Type is the declared type of the binding, or nil.
type RecBinding struct {
	Name  string
	Type  types.Type
	Value Expr
}

// Type ascription: `(e : forall a. a -> a)`
type Ann struct {
	Body Expr
	Type types.Type
}

// "Ann"
func (e *Ann) ExprName() string { return "Ann" }
