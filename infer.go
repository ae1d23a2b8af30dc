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

package rankn

import (
	"reflect"

	"github.com/samber/lo"

	"github.com/wdamron/rankn/ast"
	"github.com/wdamron/rankn/core"
	"github.com/wdamron/rankn/internal/astutil"
	"github.com/wdamron/rankn/types"
)

// expectation is the mode of a rho-type judgment: checking against a known rho-type, or inferring one.
type expectation struct {
	check    types.Type // rho-type to check against; nil when inferring
	inferred types.Type // rho-type assigned when inferring
}

func (ti *InferenceContext) inferRho(env *TypeEnv, e ast.Expr) (types.Type, core.Expr, error) {
	exp := &expectation{}
	out, err := ti.tcRho(env, e, exp)
	if err != nil {
		return nil, nil, err
	}
	return exp.inferred, out, nil
}

func (ti *InferenceContext) checkRho(env *TypeEnv, e ast.Expr, rho types.Type) (core.Expr, error) {
	return ti.tcRho(env, e, &expectation{check: rho})
}

// inferSigma infers a rho-type for e, then generalizes over the meta-slots which are free in the rho-type
// but not in env.
func (ti *InferenceContext) inferSigma(env *TypeEnv, e ast.Expr) (types.Type, core.Expr, error) {
	rho, out, err := ti.inferRho(env, e)
	if err != nil {
		return nil, nil, err
	}
	envMetas := env.MetaSlots()
	metas := lo.Filter(types.MetaSlots(rho), func(m *types.MetaSlot, _ int) bool { return !envMetas.Contains(m.Id()) })
	sigma, slots := env.generalize(rho, metas)
	if len(slots) > 0 {
		ti.logger.Debug("generalize", "expr", e.ExprName(), "type", typeValue{sigma})
	}
	return sigma, core.Abstract(slots, out), nil
}

// checkSigma checks e against a possibly-polymorphic type. The Skolem constants which replace the quantifiers
// of sigma may not escape into env.
func (ti *InferenceContext) checkSigma(env *TypeEnv, e ast.Expr, sigma types.Type) (core.Expr, error) {
	skolems, rho := env.Skolemize(sigma)
	if len(skolems) > 0 {
		ti.logger.Debug("skolemize", "type", typeValue{sigma}, "skolems", slotsValue(skolems))
	}
	out, err := ti.checkRho(env, e, rho)
	if err != nil {
		return nil, err
	}
	if len(skolems) == 0 {
		return out, nil
	}
	free := env.FreeSlots()
	types.CollectFreeSlots(free, sigma)
	for _, sk := range skolems {
		if free.Contains(sk.Key()) {
			ti.logger.Debug("skolem escapes", "skolem", typeValue{sk}, "sigma", typeValue{sigma})
			return nil, ti.fail(e, &SubsumptionError{Sigma1: types.Zonk(rho), Sigma2: sigma, Escaped: sk, NotPolymorphicEnough: true})
		}
	}
	return &core.TyAbs{Vars: skolems, Body: out}, nil
}

// instSigma instantiates sigma (when inferring) or checks it against the expected rho-type, applying the
// resulting coercion to out.
func (ti *InferenceContext) instSigma(env *TypeEnv, sigma types.Type, out core.Expr, exp *expectation) (core.Expr, error) {
	if exp.check == nil {
		rho, args := env.Instantiate(sigma)
		exp.inferred = rho
		if len(args) == 0 {
			return out, nil
		}
		return &core.CoApp{Coercion: &core.Inst{Args: args}, Arg: out}, nil
	}
	co, err := ti.subsCheckRho(env, sigma, exp.check)
	if err != nil {
		return nil, err
	}
	return &core.CoApp{Coercion: co, Arg: out}, nil
}

// fail records e as the invalid expression, unless a more deeply nested expression was already recorded.
func (ti *InferenceContext) fail(e ast.Expr, err error) error {
	if ti.invalid == nil {
		ti.invalid = e
	}
	return err
}

func (ti *InferenceContext) tcRho(env *TypeEnv, e ast.Expr, exp *expectation) (core.Expr, error) {
	out, err := ti.tcRhoExpr(env, e, exp)
	if err != nil {
		return nil, ti.fail(e, err)
	}
	return out, nil
}

func (ti *InferenceContext) tcRhoExpr(env *TypeEnv, e ast.Expr, exp *expectation) (core.Expr, error) {
	switch e := e.(type) {
	case *ast.Lit:
		t := litType(e.Value)
		return ti.instSigma(env, t, &core.Lit{Value: e.Value, Type: t}, exp)

	case *ast.Var:
		sigma, err := env.Lookup(e.Name)
		if err != nil {
			return nil, err
		}
		return ti.instSigma(env, sigma, &core.Var{Name: e.Name, Type: sigma}, exp)

	case *ast.App:
		fnRho, fn, err := ti.inferRho(env, e.Func)
		if err != nil {
			return nil, err
		}
		argType, resType, err := ti.unifyFun(env, fnRho)
		if err != nil {
			return nil, err
		}
		arg, err := ti.checkSigma(env, e.Arg, argType)
		if err != nil {
			return nil, err
		}
		return ti.instSigma(env, resType, &core.App{Func: fn, Arg: arg, Type: resType}, exp)

	case *ast.Lam:
		if exp.check != nil {
			argType, resType, err := ti.unifyFun(env, exp.check)
			if err != nil {
				return nil, err
			}
			body, err := ti.checkRho(env.Extend(e.Param, argType), e.Body, resType)
			if err != nil {
				return nil, err
			}
			return &core.Lam{Param: e.Param, ParamType: argType, Body: body}, nil
		}
		argType := env.NewMetaSlot()
		resType, body, err := ti.inferRho(env.Extend(e.Param, argType), e.Body)
		if err != nil {
			return nil, err
		}
		exp.inferred = types.Func(argType, resType)
		return &core.Lam{Param: e.Param, ParamType: argType, Body: body}, nil

	case *ast.ALam:
		if exp.check != nil {
			argType, resType, err := ti.unifyFun(env, exp.check)
			if err != nil {
				return nil, err
			}
			// Callers supply argType; the body relies on the declared type:
			co, err := ti.subsCheck(env, argType, e.ParamType)
			if err != nil {
				return nil, err
			}
			body, err := ti.checkRho(env.Extend(e.Param, e.ParamType), e.Body, resType)
			if err != nil {
				return nil, err
			}
			// fun (x : argType) -> (cofun (x : declared) -> body) (co x)
			return &core.Lam{Param: e.Param, ParamType: argType, Body: &core.CoApp{
				Coercion: &core.CoLam{Param: e.Param, ParamType: e.ParamType, Body: body},
				Arg:      &core.CoApp{Coercion: co, Arg: &core.Var{Name: e.Param, Type: argType}},
			}}, nil
		}
		resType, body, err := ti.inferRho(env.Extend(e.Param, e.ParamType), e.Body)
		if err != nil {
			return nil, err
		}
		exp.inferred = types.Func(e.ParamType, resType)
		return &core.Lam{Param: e.Param, ParamType: e.ParamType, Body: body}, nil

	case *ast.Let:
		if dup := lo.FindDuplicates(lo.Map(e.Bindings, func(b ast.Binding, _ int) string { return b.Name })); len(dup) > 0 {
			return nil, &DuplicateBindingError{Name: dup[0]}
		}
		bound := make([]TypeBinding, len(e.Bindings))
		bindings := make([]core.Binding, len(e.Bindings))
		for i, b := range e.Bindings {
			sigma, value, err := ti.inferSigma(env, b.Value)
			if err != nil {
				return nil, err
			}
			bound[i] = TypeBinding{Name: b.Name, Type: sigma}
			bindings[i] = core.Binding{Name: b.Name, Type: sigma, Value: value}
		}
		body, err := ti.tcRho(env.ExtendN(bound), e.Body, exp)
		if err != nil {
			return nil, err
		}
		return &core.Let{Bindings: bindings, Body: body}, nil

	case *ast.LetRec:
		return ti.tcLetRec(env, e, exp)

	case *ast.Ann:
		body, err := ti.checkSigma(env, e.Body, e.Type)
		if err != nil {
			return nil, err
		}
		return ti.instSigma(env, e.Type, &core.CoApp{Coercion: &core.Tag{Type: e.Type}, Arg: body}, exp)

	default:
		return nil, &UndecidableError{Expr: e}
	}
}

// tcLetRec checks a recursive let-group. Bindings are checked one strongly-connected component at a time
// (or all at once, without dependency analysis). Within a component, bindings without a declared type are
// monomorphic until the component is generalized. Bindings with a declared type are in scope at their declared
// type for every component.
func (ti *InferenceContext) tcLetRec(env *TypeEnv, e *ast.LetRec, exp *expectation) (core.Expr, error) {
	if dup := lo.FindDuplicates(lo.Map(e.Bindings, func(b ast.RecBinding, _ int) string { return b.Name })); len(dup) > 0 {
		return nil, &DuplicateBindingError{Name: dup[0]}
	}

	// Bindings with a declared type are in scope for every component:
	declared := lo.FilterMap(e.Bindings, func(b ast.RecBinding, _ int) (TypeBinding, bool) {
		return TypeBinding{Name: b.Name, Type: b.Type}, b.Type != nil
	})

	var groups [][]core.Binding
	outer := env.ExtendN(declared)
	for _, component := range ti.components(e) {
		placeholders := lo.Map(component, func(i int, _ int) TypeBinding {
			b := e.Bindings[i]
			if b.Type != nil {
				return TypeBinding{Name: b.Name, Type: b.Type}
			}
			return TypeBinding{Name: b.Name, Type: outer.NewMetaSlot()}
		})
		inner := outer.ExtendN(placeholders)

		rhos := make([]types.Type, len(component))
		values := make([]core.Expr, len(component))
		for j, i := range component {
			rho, value, err := ti.inferRho(inner, e.Bindings[i].Value)
			if err != nil {
				return nil, err
			}
			if e.Bindings[i].Type == nil {
				if err := ti.unify(placeholders[j].Type, rho); err != nil {
					return nil, ti.fail(e.Bindings[i].Value, err)
				}
			}
			rhos[j], values[j] = rho, value
		}

		seen := outer.MetaSlots()
		var metas []*types.MetaSlot
		for _, rho := range rhos {
			types.CollectMetaSlots(seen, &metas, rho)
		}
		sigmas, slots := outer.generalizeGroup(rhos, metas)

		bound := make([]TypeBinding, len(component))
		bindings := make([]core.Binding, len(component))
		for j, i := range component {
			b := e.Bindings[i]
			sigma, value := sigmas[j], core.Abstract(slots[j], values[j])
			if b.Type != nil {
				co, err := ti.subsCheck(outer, sigma, b.Type)
				if err != nil {
					return nil, ti.fail(b.Value, err)
				}
				sigma, value = b.Type, &core.CoApp{Coercion: co, Arg: value}
			}
			ti.logger.Debug("let rec binding", "name", b.Name, "type", typeValue{sigma})
			bound[j] = TypeBinding{Name: b.Name, Type: sigma}
			bindings[j] = core.Binding{Name: b.Name, Type: sigma, Value: value}
		}
		outer = outer.ExtendN(bound)
		groups = append(groups, bindings)
	}

	body, err := ti.tcRho(outer, e.Body, exp)
	if err != nil {
		return nil, err
	}
	for i := len(groups) - 1; i >= 0; i-- {
		body = &core.LetRec{Bindings: groups[i], Body: body}
	}
	return body, nil
}

// components returns the order in which the bindings of e are checked. Without dependency analysis,
// the whole group is a single component.
func (ti *InferenceContext) components(e *ast.LetRec) [][]int {
	if !ti.dependencyAnalysis {
		return (*astutil.Analysis)(nil).Components(e)
	}
	return ti.analysis.Components(e)
}

var (
	intType    = types.NewPrimitive(types.IntName)
	stringType = types.NewPrimitive(types.StringName)
	boolType   = types.NewPrimitive(types.BoolName)
	unitType   = types.NewPrimitive(types.UnitName)
)

// litType returns the primitive type of a literal value, determined by the kind of the value.
func litType(value interface{}) types.Type {
	if value == nil {
		return unitType
	}
	switch reflect.TypeOf(value).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return intType
	case reflect.String:
		return stringType
	case reflect.Bool:
		return boolType
	}
	return unitType
}
