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

// Package construct provides short-hand constructors for types and expressions.
package construct

import (
	"github.com/wdamron/rankn/ast"
	"github.com/wdamron/rankn/types"
)

// Types

// Primitive type: `int`, `bool`, `list`, etc
func TPrim(name string) *types.Primitive {
	return types.NewPrimitive(name)
}

// Rigid type variable: `a`
func TSlot(name string) *types.Slot {
	return types.NewSlot(name)
}

// Curried function type: `int -> int -> bool`
func TFunc(dom types.Type, rest ...types.Type) types.Type {
	if len(rest) == 0 {
		return dom
	}
	return types.Func(dom, TFunc(rest[0], rest[1:]...))
}

// Type application: `list int`
func TApp(constructor types.Type, args ...types.Type) types.Type {
	t := constructor
	for _, arg := range args {
		t = types.NewComposite(t, arg, false)
	}
	return t
}

// Pair type: `a * b`
func TPair(a, b types.Type) types.Type {
	return TApp(pair, a, b)
}

var pair = types.NewPrimitive(PairName)

// PairName is the name of the pair type-constructor.
const PairName = "*"

// Universally-quantified type: `forall a b. a -> b -> a`
func TForAll(names []string, body types.Type) types.Type {
	return types.NewForAll(names, body)
}

// Universally-quantified type over a single name: `forall a. a -> a`
func TForAll1(name string, body types.Type) types.Type {
	return types.NewForAll([]string{name}, body)
}

// Expressions

// Literal: `1`, `true`, `"s"`
func Lit(value interface{}) *ast.Lit {
	return &ast.Lit{Value: value}
}

// Variable
func Var(name string) *ast.Var {
	return &ast.Var{Name: name}
}

// Curried application: `f x y`
func App(f ast.Expr, args ...ast.Expr) ast.Expr {
	for _, arg := range args {
		f = &ast.App{Func: f, Arg: arg}
	}
	return f
}

// Abstraction: `fun x -> x`
func Lam(param string, body ast.Expr) *ast.Lam {
	return &ast.Lam{Param: param, Body: body}
}

// Curried abstraction: `fun x -> fun y -> x`
func LamN(params []string, body ast.Expr) ast.Expr {
	for i := len(params) - 1; i >= 0; i-- {
		body = &ast.Lam{Param: params[i], Body: body}
	}
	return body
}

// Annotated abstraction: `fun (x : int) -> x`
func ALam(param string, paramType types.Type, body ast.Expr) *ast.ALam {
	return &ast.ALam{Param: param, ParamType: paramType, Body: body}
}

// Let-binding: `let a = 1 in e`
func Let(name string, value ast.Expr, body ast.Expr) *ast.Let {
	return &ast.Let{Bindings: []ast.Binding{{Name: name, Value: value}}, Body: body}
}

// Grouped let-bindings: `let a = 1 and b = 2 in e`
func LetGroup(bindings []ast.Binding, body ast.Expr) *ast.Let {
	return &ast.Let{Bindings: bindings, Body: body}
}

// Paired identifier and value
func Binding(name string, value ast.Expr) ast.Binding {
	return ast.Binding{Name: name, Value: value}
}

// Recursive let-bindings: `let rec f = fun x -> f x in f`
func LetRec(bindings []ast.RecBinding, body ast.Expr) *ast.LetRec {
	return &ast.LetRec{Bindings: bindings, Body: body}
}

// Recursive binding without a declared type
func RecBinding(name string, value ast.Expr) ast.RecBinding {
	return ast.RecBinding{Name: name, Value: value}
}

// Recursive binding with a declared type: `f : int -> int = ...`
func TypedRecBinding(name string, t types.Type, value ast.Expr) ast.RecBinding {
	return ast.RecBinding{Name: name, Type: t, Value: value}
}

// Type annotation: `(e : int)`
func Ann(body ast.Expr, t types.Type) *ast.Ann {
	return &ast.Ann{Body: body, Type: t}
}
