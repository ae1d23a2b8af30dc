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

	set "github.com/hashicorp/go-set/v3"
	"github.com/samber/lo"

	"github.com/wdamron/rankn/types"
)

type typeMapper interface {
	mapType(t types.Type) types.Type
	// enter returns the mapper to use within a type abstraction over vars.
	enter(vars []*types.Slot) typeMapper
}

type zonker struct{}

func (z zonker) mapType(t types.Type) types.Type { return types.Zonk(t) }
func (z zonker) enter([]*types.Slot) typeMapper { return z }

type substituter map[types.Slot]types.Type

func (s substituter) mapType(t types.Type) types.Type { return types.SubstSlots(t, s) }

func (s substituter) enter(vars []*types.Slot) typeMapper {
	inner := s
	for _, v := range vars {
		if _, shadowed := inner[*v]; !shadowed {
			continue
		}
		if len(inner) == len(s) {
			inner = make(substituter, len(s))
			for k, t := range s {
				inner[k] = t
			}
		}
		delete(inner, *v)
	}
	return inner
}

// ZonkTypes returns a copy of expr with every type annotation zonked.
func ZonkTypes(expr Expr) Expr { return mapTypes(expr, zonker{}) }

// SubstTypes returns a copy of expr in which slots are replaced within type annotations.
// A type abstraction over a slot shadows it.
func SubstTypes(expr Expr, mapping map[types.Slot]types.Type) Expr {
	if len(mapping) == 0 {
		return expr
	}
	return mapTypes(expr, substituter(mapping))
}

func mapTypes(expr Expr, m typeMapper) Expr {
	mapBindings := func(bindings []Binding) []Binding {
		return lo.Map(bindings, func(b Binding, _ int) Binding {
			return Binding{Name: b.Name, Type: m.mapType(b.Type), Value: mapTypes(b.Value, m)}
		})
	}
	switch e := expr.(type) {
	case *Lit:
		return &Lit{Value: e.Value, Type: m.mapType(e.Type)}
	case *Var:
		return &Var{Name: e.Name, Type: m.mapType(e.Type)}
	case *App:
		return &App{Func: mapTypes(e.Func, m), Arg: mapTypes(e.Arg, m), Type: m.mapType(e.Type)}
	case *Lam:
		return &Lam{Param: e.Param, ParamType: m.mapType(e.ParamType), Body: mapTypes(e.Body, m)}
	case *CoLam:
		return &CoLam{Param: e.Param, ParamType: m.mapType(e.ParamType), Body: mapTypes(e.Body, m)}
	case *Let:
		return &Let{Bindings: mapBindings(e.Bindings), Body: mapTypes(e.Body, m)}
	case *LetRec:
		return &LetRec{Bindings: mapBindings(e.Bindings), Body: mapTypes(e.Body, m)}
	case *TyAbs:
		return &TyAbs{Vars: e.Vars, Body: mapTypes(e.Body, m.enter(e.Vars))}
	case *Tag:
		return &Tag{Type: m.mapType(e.Type)}
	case *Inst:
		return &Inst{Args: lo.Map(e.Args, func(arg TypeArg, _ int) TypeArg {
			return TypeArg{Name: arg.Name, Type: m.mapType(arg.Type)}
		})}
	case *CoApp:
		return &CoApp{Coercion: mapTypes(e.Coercion, m), Arg: mapTypes(e.Arg, m)}
	default:
		return expr
	}
}

// MetaSlots returns the unresolved meta-slots referenced by type annotations within expr, in order of
// first occurrence.
func MetaSlots(expr Expr) []*types.MetaSlot {
	var metas []*types.MetaSlot
	seen := set.New[int](8)
	visitTypes(expr, func(t types.Type) bool {
		types.CollectMetaSlots(seen, &metas, t)
		return true
	})
	return metas
}

// visitTypes calls f for each type annotation within expr until f returns false.
func visitTypes(expr Expr, f func(types.Type) bool) bool {
	visitBindings := func(bindings []Binding) bool {
		for _, b := range bindings {
			if !f(b.Type) || !visitTypes(b.Value, f) {
				return false
			}
		}
		return true
	}
	switch e := expr.(type) {
	case *Lit:
		return f(e.Type)
	case *Var:
		return f(e.Type)
	case *App:
		return visitTypes(e.Func, f) && visitTypes(e.Arg, f) && f(e.Type)
	case *Lam:
		return f(e.ParamType) && visitTypes(e.Body, f)
	case *CoLam:
		return f(e.ParamType) && visitTypes(e.Body, f)
	case *Let:
		return visitBindings(e.Bindings) && visitTypes(e.Body, f)
	case *LetRec:
		return visitBindings(e.Bindings) && visitTypes(e.Body, f)
	case *TyAbs:
		return visitTypes(e.Body, f)
	case *Tag:
		return f(e.Type)
	case *Inst:
		for _, arg := range e.Args {
			if !f(arg.Type) {
				return false
			}
		}
		return true
	case *CoApp:
		return visitTypes(e.Coercion, f) && visitTypes(e.Arg, f)
	}
	return true
}

// ErrResidualCoercion is returned by Verify for coercions which survived reduction.
var ErrResidualCoercion = errors.New("residual coercion")

// ErrOpenType is returned by Verify for type annotations which hold unresolved meta-slots.
var ErrOpenType = errors.New("open type annotation")

// VerifyError describes the first violation found by Verify. It wraps ErrResidualCoercion or ErrOpenType.
type VerifyError struct {
	Kind error
	Expr Expr
	Type types.Type
}

func (e *VerifyError) Error() string {
	if e.Type != nil {
		return e.Kind.Error() + " " + types.TypeString(e.Type) + " in " + ExprString(e.Expr)
	}
	return e.Kind.Error() + " " + e.Expr.ExprName() + " in " + ExprString(e.Expr)
}

func (e *VerifyError) Unwrap() error { return e.Kind }

// Verify checks that a reduced expression is a fully explicit term: the only remaining coercions are
// instantiations, and every type annotation is closed (holds no unresolved meta-slots).
func Verify(expr Expr) error {
	var err error
	var check func(Expr) bool
	check = func(expr Expr) bool {
		switch e := expr.(type) {
		case *Tag, *CoLam:
			err = &VerifyError{Kind: ErrResidualCoercion, Expr: expr}
			return false
		case *CoApp:
			if _, ok := e.Coercion.(*Inst); !ok {
				err = &VerifyError{Kind: ErrResidualCoercion, Expr: e.Coercion}
				return false
			}
			return check(e.Arg)
		case *App:
			return check(e.Func) && check(e.Arg)
		case *Lam:
			return check(e.Body)
		case *Let:
			return lo.EveryBy(e.Bindings, func(b Binding) bool { return check(b.Value) }) && check(e.Body)
		case *LetRec:
			return lo.EveryBy(e.Bindings, func(b Binding) bool { return check(b.Value) }) && check(e.Body)
		case *TyAbs:
			return check(e.Body)
		}
		return true
	}
	if !check(expr) {
		return err
	}
	visitTypes(expr, func(t types.Type) bool {
		if !types.IsClosed(t) {
			err = &VerifyError{Kind: ErrOpenType, Expr: expr, Type: t}
			return false
		}
		return true
	})
	return err
}
