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

// Instantiate replaces the outermost quantifiers of sigma with fresh meta-slots, returning the instantiated
// type and the type arguments which were applied. Types which are not foralls are returned unchanged.
//
// Nested foralls below the outermost position are not instantiated.
func (e *TypeEnv) Instantiate(sigma types.Type) (types.Type, []core.TypeArg) {
	var args []core.TypeArg
	for {
		fa, ok := types.Resolve(sigma).(*types.ForAll)
		if !ok {
			return sigma, args
		}
		mapping := make(map[string]types.Type, len(fa.Quantifiers))
		for _, q := range fa.Quantifiers {
			m := e.NewMetaSlot()
			mapping[q] = m
			args = append(args, core.TypeArg{Name: q, Type: m})
		}
		sigma = types.Subst(fa.Body, mapping)
	}
}

// Skolemize replaces every quantifier of sigma which is reachable without crossing a contravariant
// position with a fresh Skolem constant, returning the minted Skolems and the resulting rho-type.
//
// The contravariant argument of a composite (the domain of a function type) is left untouched, so
// `forall a. a -> forall b. b -> a` becomes `a#1 -> b#2 -> a#1`, while `(forall a. a -> a) -> int`
// is unchanged.
func (e *TypeEnv) Skolemize(sigma types.Type) ([]*types.Slot, types.Type) {
	var skolems []*types.Slot
	rho := e.skolemize(sigma, &skolems)
	return skolems, rho
}

func (e *TypeEnv) skolemize(t types.Type, skolems *[]*types.Slot) types.Type {
	switch t := types.Resolve(t).(type) {
	case *types.ForAll:
		mapping := make(map[string]types.Type, len(t.Quantifiers))
		for _, q := range t.Quantifiers {
			sk := e.NewSkolem(q)
			mapping[q] = sk
			*skolems = append(*skolems, sk)
		}
		return e.skolemize(types.Subst(t.Body, mapping), skolems)

	case *types.Composite:
		fn := e.skolemize(t.Fn, skolems)
		if t.Contravariant {
			return types.NewComposite(fn, t.Arg, true)
		}
		return types.NewComposite(fn, e.skolemize(t.Arg, skolems), false)

	default:
		return t
	}
}
