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
	"github.com/wdamron/rankn/core"
	"github.com/wdamron/rankn/types"
)

// subsCheck checks that sigma1 is at least as polymorphic as sigma2, returning a coercion from sigma1 to sigma2.
//
// sigma2 is deeply skolemized; none of the resulting Skolem constants may occur free in sigma1 afterwards.
func (ti *InferenceContext) subsCheck(env *TypeEnv, sigma1, sigma2 types.Type) (core.Expr, error) {
	skolems, rho2 := env.Skolemize(sigma2)
	co, err := ti.subsCheckRho(env, sigma1, rho2)
	if err != nil {
		return nil, err
	}
	if len(skolems) == 0 {
		return co, nil
	}
	free := types.FreeSlots(sigma1)
	for _, sk := range skolems {
		if free.Contains(sk.Key()) {
			ti.logger.Debug("skolem escapes", "skolem", typeValue{sk}, "sigma1", typeValue{sigma1}, "sigma2", typeValue{sigma2})
			return nil, &SubsumptionError{Sigma1: types.Zonk(sigma1), Sigma2: sigma2, Escaped: sk}
		}
	}
	// /\skolems. co x
	x := env.freshName("x")
	return &core.CoLam{
		Param:     x,
		ParamType: sigma1,
		Body:      &core.TyAbs{Vars: skolems, Body: &core.CoApp{Coercion: co, Arg: &core.Var{Name: x, Type: sigma1}}},
	}, nil
}

// subsCheckRho checks that sigma is at least as polymorphic as rho, returning a coercion from sigma to rho.
func (ti *InferenceContext) subsCheckRho(env *TypeEnv, sigma, rho types.Type) (core.Expr, error) {
	sigma, rho = types.Resolve(sigma), types.Resolve(rho)

	if fa, ok := sigma.(*types.ForAll); ok {
		rho1, args := env.Instantiate(fa)
		co, err := ti.subsCheckRho(env, rho1, rho)
		if err != nil {
			return nil, err
		}
		inst := &core.Inst{Args: args}
		if core.IsIdentity(co) {
			return inst, nil
		}
		return compose(env, co, inst, sigma), nil
	}

	// Subsumption between monotypes is equality:
	if types.IsMonotype(sigma) && types.IsMonotype(rho) {
		if err := ti.unify(sigma, rho); err != nil {
			return nil, err
		}
		return &core.Tag{Type: rho}, nil
	}

	if c1, ok := sigma.(*types.Composite); ok {
		f2, a2, err := ti.unifyComposite(env, rho, c1.Contravariant)
		if err != nil {
			return nil, err
		}
		return ti.subsCheckComposite(env, c1.Contravariant, c1.Fn, f2, c1.Arg, a2, sigma, rho)
	}

	if c2, ok := rho.(*types.Composite); ok {
		f1, a1, err := ti.unifyComposite(env, sigma, c2.Contravariant)
		if err != nil {
			return nil, err
		}
		return ti.subsCheckComposite(env, c2.Contravariant, f1, c2.Fn, a1, c2.Arg, sigma, rho)
	}

	if err := ti.unify(sigma, rho); err != nil {
		return nil, err
	}
	return &core.Tag{Type: rho}, nil
}

// subsCheckComposite checks the parts of two composites. Constructors are always checked covariantly;
// arguments are checked contravariantly when the composite is marked contravariant.
//
// For the domain composite of a function type, the returned coercion converts the second domain into the
// first. For a function type, the returned coercion wraps the function with coercions of its argument and result.
// Other composites are coerced by identity.
func (ti *InferenceContext) subsCheckComposite(env *TypeEnv, contravariant bool, f1, f2, a1, a2, sigma, rho types.Type) (core.Expr, error) {
	fnCo, err := ti.subsCheck(env, f1, f2)
	if err != nil {
		return nil, err
	}
	if contravariant {
		return ti.subsCheck(env, a2, a1)
	}
	argCo, err := ti.subsCheckRho(env, a1, a2)
	if err != nil {
		return nil, err
	}
	dom2, isFunc := types.FuncDomain(f2)
	if !isFunc || (core.IsIdentity(fnCo) && core.IsIdentity(argCo)) {
		return &core.Tag{Type: rho}, nil
	}
	// fun (y : dom2) -> argCo (f (fnCo y))
	f, y := env.freshName("f"), env.freshName("y")
	call := &core.App{
		Func: &core.Var{Name: f, Type: sigma},
		Arg:  &core.CoApp{Coercion: fnCo, Arg: &core.Var{Name: y, Type: dom2}},
		Type: a1,
	}
	return &core.CoLam{
		Param:     f,
		ParamType: sigma,
		Body:      &core.Lam{Param: y, ParamType: dom2, Body: &core.CoApp{Coercion: argCo, Arg: call}},
	}, nil
}

// compose returns the coercion `outer . inner` over values of type t.
func compose(env *TypeEnv, outer, inner core.Expr, t types.Type) core.Expr {
	x := env.freshName("x")
	return &core.CoLam{
		Param:     x,
		ParamType: t,
		Body:      &core.CoApp{Coercion: outer, Arg: &core.CoApp{Coercion: inner, Arg: &core.Var{Name: x, Type: t}}},
	}
}
