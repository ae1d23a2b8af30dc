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
	"strings"

	"github.com/wdamron/rankn/ast"
	"github.com/wdamron/rankn/types"
)

// ExprString returns a string representation of an elaborated expression.
//
// Type abstractions print as `/\a b. e`, instantiations as `inst[a := int]`, identity coercions as `tag[int]`,
// and coercion abstractions as `cofun (x : int) -> e`.
func ExprString(expr Expr) string {
	var sb strings.Builder
	exprString(&sb, false, expr)
	return sb.String()
}

func exprString(sb *strings.Builder, simple bool, expr Expr) {
	switch et := expr.(type) {
	case *Lit:
		sb.WriteString(ast.LitString(et.Value))

	case *Var:
		sb.WriteString(et.Name)

	case *App:
		application(sb, simple, et.Func, et.Arg)

	case *CoApp:
		application(sb, simple, et.Coercion, et.Arg)

	case *Lam:
		abstraction(sb, simple, "fun (", et.Param, et.ParamType, et.Body)

	case *CoLam:
		abstraction(sb, simple, "cofun (", et.Param, et.ParamType, et.Body)

	case *Let:
		letString(sb, simple, "let ", et.Bindings, et.Body)

	case *LetRec:
		letString(sb, simple, "let rec ", et.Bindings, et.Body)

	case *TyAbs:
		if simple {
			sb.WriteByte('(')
		}
		sb.WriteString("/\\")
		for i, v := range et.Vars {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(types.TypeString(v))
		}
		sb.WriteString(". ")
		exprString(sb, false, et.Body)
		if simple {
			sb.WriteByte(')')
		}

	case *Tag:
		sb.WriteString("tag[")
		sb.WriteString(types.TypeString(et.Type))
		sb.WriteByte(']')

	case *Inst:
		sb.WriteString("inst[")
		for i, arg := range et.Args {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(arg.Name)
			sb.WriteString(" := ")
			sb.WriteString(types.TypeString(arg.Type))
		}
		sb.WriteByte(']')

	case nil:
		sb.WriteString("<nil>")
	}
}

func application(sb *strings.Builder, simple bool, fn, arg Expr) {
	if simple {
		sb.WriteByte('(')
	}
	switch fn.(type) {
	case *App, *CoApp:
		exprString(sb, false, fn)
	default:
		exprString(sb, true, fn)
	}
	sb.WriteByte(' ')
	exprString(sb, true, arg)
	if simple {
		sb.WriteByte(')')
	}
}

func abstraction(sb *strings.Builder, simple bool, keyword, param string, paramType types.Type, body Expr) {
	if simple {
		sb.WriteByte('(')
	}
	sb.WriteString(keyword)
	sb.WriteString(param)
	sb.WriteString(" : ")
	sb.WriteString(types.TypeString(paramType))
	sb.WriteString(") -> ")
	exprString(sb, false, body)
	if simple {
		sb.WriteByte(')')
	}
}

func letString(sb *strings.Builder, simple bool, keyword string, bindings []Binding, body Expr) {
	if simple {
		sb.WriteByte('(')
	}
	sb.WriteString(keyword)
	for i, b := range bindings {
		if i > 0 {
			sb.WriteString(" and ")
		}
		sb.WriteString(b.Name)
		sb.WriteString(" : ")
		sb.WriteString(types.TypeString(b.Type))
		sb.WriteString(" = ")
		exprString(sb, false, b.Value)
	}
	sb.WriteString(" in ")
	exprString(sb, false, body)
	if simple {
		sb.WriteByte(')')
	}
}
