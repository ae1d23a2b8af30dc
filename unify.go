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
	"github.com/wdamron/rankn/types"
)

func isRigid(t types.Type) bool {
	s, ok := t.(*types.Slot)
	return ok && !s.Skolem
}

// unify makes a and b equal by binding unresolved meta-slots. Bindings made before a failure are kept.
func (ti *InferenceContext) unify(a, b types.Type) error {
	if isRigid(a) {
		return &InvariantError{Type: a}
	}
	if isRigid(b) {
		return &InvariantError{Type: b}
	}

	switch a := a.(type) {
	case *types.Slot:
		if b, ok := b.(*types.Slot); ok {
			if types.SlotsEqual(a, b) {
				return nil
			}
			return &UnifyError{A: a, B: b}
		}
	case *types.MetaSlot:
		if b, ok := b.(*types.MetaSlot); ok && a.Id() == b.Id() {
			return nil
		}
	}

	if m, ok := a.(*types.MetaSlot); ok {
		return ti.unifyMetaSlot(m, b)
	}
	if m, ok := b.(*types.MetaSlot); ok {
		return ti.unifyMetaSlot(m, a)
	}

	switch a := a.(type) {
	case *types.Composite:
		if b, ok := b.(*types.Composite); ok {
			if err := ti.unify(a.Fn, b.Fn); err != nil {
				return err
			}
			return ti.unify(a.Arg, b.Arg)
		}
	case *types.Primitive:
		if b, ok := b.(*types.Primitive); ok && a.Name == b.Name {
			return nil
		}
	}
	return &UnifyError{A: a, B: b}
}

func (ti *InferenceContext) unifyMetaSlot(m *types.MetaSlot, t types.Type) error {
	if m.Resolved() {
		return ti.unify(m.Ref(), t)
	}
	return ti.unifyUnbound(m, t)
}

func (ti *InferenceContext) unifyUnbound(m *types.MetaSlot, t types.Type) error {
	if tm, ok := t.(*types.MetaSlot); ok {
		if tm.Resolved() {
			return ti.unify(m, tm.Ref())
		}
		if tm.Id() != m.Id() {
			ti.bind(m, tm)
		}
		return nil
	}
	if types.Occurs(m, t) {
		return &RecursiveTypeError{Meta: m, Type: types.Zonk(t)}
	}
	ti.bind(m, t)
	return nil
}

func (ti *InferenceContext) bind(m *types.MetaSlot, t types.Type) {
	ti.logger.Debug("bind meta-slot", "meta", m.Id(), "type", typeValue{t})
	m.SetRef(t)
}

// unifyFun returns the domain and codomain of t, forcing t to be a function type if it is not one already.
func (ti *InferenceContext) unifyFun(env *TypeEnv, t types.Type) (dom, cod types.Type, err error) {
	if dom, cod, ok := types.SplitFunc(t); ok {
		return dom, cod, nil
	}
	dom, cod = env.NewMetaSlot(), env.NewMetaSlot()
	if err = ti.unify(types.Func(dom, cod), t); err != nil {
		return nil, nil, err
	}
	return dom, cod, nil
}

// unifyComposite returns the parts of t, forcing t to be a composite type if it is not one already.
// The contravariance flag is only used when a new composite must be built.
func (ti *InferenceContext) unifyComposite(env *TypeEnv, t types.Type, contravariant bool) (fn, arg types.Type, err error) {
	if c, ok := types.Resolve(t).(*types.Composite); ok {
		return c.Fn, c.Arg, nil
	}
	fn, arg = env.NewMetaSlot(), env.NewMetaSlot()
	if err = ti.unify(types.NewComposite(fn, arg, contravariant), t); err != nil {
		return nil, nil, err
	}
	return fn, arg, nil
}
