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
	"github.com/samber/lo"

	"github.com/wdamron/rankn/types"
)

// BetaRedex contracts coercion redexes bottom-up, returning a new tree. The input is not modified.
//
//   - `tag[t] e` reduces to `e`
//   - `inst[s1] (inst[s2] e)` reduces to `inst[s2, s1] e`
//   - `(cofun (x : t) -> b) e` reduces to `b` with `e` substituted for `x`
//   - `/\a. /\b. e` reduces to `/\a b. e`
//   - `inst[a := t] (/\a. e)` reduces to `e` with `t` substituted for `a` within its type annotations
//   - empty instantiations and type abstractions are dropped
//
// Coercion parameters are minted fresh, so substitution never captures. BetaRedex is idempotent.
func BetaRedex(expr Expr) Expr {
	switch e := expr.(type) {
	case *App:
		return &App{Func: BetaRedex(e.Func), Arg: BetaRedex(e.Arg), Type: e.Type}

	case *Lam:
		return &Lam{Param: e.Param, ParamType: e.ParamType, Body: BetaRedex(e.Body)}

	case *CoLam:
		return &CoLam{Param: e.Param, ParamType: e.ParamType, Body: BetaRedex(e.Body)}

	case *Let:
		return &Let{Bindings: reduceBindings(e.Bindings), Body: BetaRedex(e.Body)}

	case *LetRec:
		return &LetRec{Bindings: reduceBindings(e.Bindings), Body: BetaRedex(e.Body)}

	case *TyAbs:
		return abstract(e.Vars, BetaRedex(e.Body))

	case *CoApp:
		return applyCoercion(BetaRedex(e.Coercion), BetaRedex(e.Arg))

	default:
		return expr
	}
}

func reduceBindings(bindings []Binding) []Binding {
	return lo.Map(bindings, func(b Binding, _ int) Binding {
		return Binding{Name: b.Name, Type: b.Type, Value: BetaRedex(b.Value)}
	})
}

// abstract merges nested type abstractions and drops empty ones.
func abstract(vars []*types.Slot, body Expr) Expr {
	if inner, ok := body.(*TyAbs); ok {
		merged := make([]*types.Slot, 0, len(vars)+len(inner.Vars))
		merged = append(append(merged, vars...), inner.Vars...)
		return abstract(merged, inner.Body)
	}
	return Abstract(vars, body)
}

// applyCoercion applies an already-reduced coercion to an already-reduced argument.
func applyCoercion(co, arg Expr) Expr {
	switch c := co.(type) {
	case *Tag:
		return arg

	case *Inst:
		if len(c.Args) == 0 {
			return arg
		}
		switch a := arg.(type) {
		case *CoApp:
			if inner, ok := a.Coercion.(*Inst); ok {
				merged := make([]TypeArg, 0, len(inner.Args)+len(c.Args))
				merged = append(append(merged, inner.Args...), c.Args...)
				return applyCoercion(&Inst{Args: merged}, a.Arg)
			}
		case *TyAbs:
			return instantiate(c, a)
		}

	case *CoLam:
		return BetaRedex(substExpr(c.Body, c.Param, arg))
	}
	return &CoApp{Coercion: co, Arg: arg}
}

// instantiate applies type arguments to a type abstraction. Each argument is matched by name to the first
// abstracted slot of the same name which has not been matched yet; unmatched arguments remain applied to
// the result.
func instantiate(inst *Inst, abs *TyAbs) Expr {
	mapping := make(map[types.Slot]types.Type, len(inst.Args))
	matched := make([]bool, len(abs.Vars))
	var rest []TypeArg
	for _, arg := range inst.Args {
		found := false
		for i, v := range abs.Vars {
			if !matched[i] && v.Name == arg.Name {
				matched[i], found = true, true
				mapping[*v] = arg.Type
				break
			}
		}
		if !found {
			rest = append(rest, arg)
		}
	}
	if len(mapping) == 0 {
		return &CoApp{Coercion: inst, Arg: abs}
	}
	remaining := make([]*types.Slot, 0, len(abs.Vars)-len(mapping))
	for i, v := range abs.Vars {
		if !matched[i] {
			remaining = append(remaining, v)
		}
	}
	result := Abstract(remaining, SubstTypes(abs.Body, mapping))
	if len(rest) == 0 {
		return result
	}
	return applyCoercion(&Inst{Args: rest}, result)
}

// substExpr substitutes value for free occurrences of the variable name within expr.
func substExpr(expr Expr, name string, value Expr) Expr {
	switch e := expr.(type) {
	case *Var:
		if e.Name == name {
			return value
		}
		return e

	case *App:
		return &App{Func: substExpr(e.Func, name, value), Arg: substExpr(e.Arg, name, value), Type: e.Type}

	case *CoApp:
		return &CoApp{Coercion: substExpr(e.Coercion, name, value), Arg: substExpr(e.Arg, name, value)}

	case *Lam:
		if e.Param == name {
			return e
		}
		return &Lam{Param: e.Param, ParamType: e.ParamType, Body: substExpr(e.Body, name, value)}

	case *CoLam:
		if e.Param == name {
			return e
		}
		return &CoLam{Param: e.Param, ParamType: e.ParamType, Body: substExpr(e.Body, name, value)}

	case *TyAbs:
		return &TyAbs{Vars: e.Vars, Body: substExpr(e.Body, name, value)}

	case *Let:
		bindings := lo.Map(e.Bindings, func(b Binding, _ int) Binding {
			return Binding{Name: b.Name, Type: b.Type, Value: substExpr(b.Value, name, value)}
		})
		body := e.Body
		if !bindsName(e.Bindings, name) {
			body = substExpr(body, name, value)
		}
		return &Let{Bindings: bindings, Body: body}

	case *LetRec:
		if bindsName(e.Bindings, name) {
			return e
		}
		bindings := lo.Map(e.Bindings, func(b Binding, _ int) Binding {
			return Binding{Name: b.Name, Type: b.Type, Value: substExpr(b.Value, name, value)}
		})
		return &LetRec{Bindings: bindings, Body: substExpr(e.Body, name, value)}

	default:
		return expr
	}
}

func bindsName(bindings []Binding, name string) bool {
	return lo.ContainsBy(bindings, func(b Binding) bool { return b.Name == name })
}
