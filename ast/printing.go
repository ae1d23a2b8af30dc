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
	"fmt"
	"strconv"
	"strings"

	"github.com/wdamron/rankn/types"
)

// ExprString returns a string representation of an expression, such as `let id = fun x -> x in id 1`.
func ExprString(expr Expr) string {
	var sb strings.Builder
	exprString(&sb, false, expr)
	return sb.String()
}

// LitString returns the syntax of a literal value.
func LitString(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return "()"
	case string:
		return strconv.Quote(v)
	default:
		return fmt.Sprint(v)
	}
}

func exprString(sb *strings.Builder, simple bool, expr Expr) {
	switch et := expr.(type) {
	case *Lit:
		sb.WriteString(LitString(et.Value))

	case *Var:
		sb.WriteString(et.Name)

	case *App:
		if simple {
			sb.WriteByte('(')
		}
		// Application associates to the left:
		if _, ok := et.Func.(*App); ok {
			exprString(sb, false, et.Func)
		} else {
			exprString(sb, true, et.Func)
		}
		sb.WriteByte(' ')
		exprString(sb, true, et.Arg)
		if simple {
			sb.WriteByte(')')
		}

	case *Lam:
		if simple {
			sb.WriteByte('(')
		}
		sb.WriteString("fun ")
		sb.WriteString(et.Param)
		sb.WriteString(" -> ")
		exprString(sb, false, et.Body)
		if simple {
			sb.WriteByte(')')
		}

	case *ALam:
		if simple {
			sb.WriteByte('(')
		}
		sb.WriteString("fun (")
		sb.WriteString(et.Param)
		sb.WriteString(" : ")
		sb.WriteString(types.TypeString(et.ParamType))
		sb.WriteString(") -> ")
		exprString(sb, false, et.Body)
		if simple {
			sb.WriteByte(')')
		}

	case *Let:
		if simple {
			sb.WriteByte('(')
		}
		sb.WriteString("let ")
		for i, b := range et.Bindings {
			if i > 0 {
				sb.WriteString(" and ")
			}
			sb.WriteString(b.Name)
			sb.WriteString(" = ")
			exprString(sb, false, b.Value)
		}
		sb.WriteString(" in ")
		exprString(sb, false, et.Body)
		if simple {
			sb.WriteByte(')')
		}

	case *LetRec:
		if simple {
			sb.WriteByte('(')
		}
		sb.WriteString("let rec ")
		for i, b := range et.Bindings {
			if i > 0 {
				sb.WriteString(" and ")
			}
			sb.WriteString(b.Name)
			if b.Type != nil {
				sb.WriteString(" : ")
				sb.WriteString(types.TypeString(b.Type))
			}
			sb.WriteString(" = ")
			exprString(sb, false, b.Value)
		}
		sb.WriteString(" in ")
		exprString(sb, false, et.Body)
		if simple {
			sb.WriteByte(')')
		}

	case *Ann:
		sb.WriteByte('(')
		exprString(sb, false, et.Body)
		sb.WriteString(" : ")
		sb.WriteString(types.TypeString(et.Type))
		sb.WriteByte(')')

	case nil:
		sb.WriteString("<nil>")
	}
}
