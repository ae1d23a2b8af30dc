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
	"strconv"

	set "github.com/hashicorp/go-set/v3"
	"github.com/samber/lo"

	"github.com/wdamron/rankn/types"
)

// Generalize binds each unresolved meta-slot in metas to a new rigid type variable, and quantifies the zonked
// type over the new variables in the order of metas. Variables are named t1, t2, ..., skipping names which are
// already bound or free within t.
//
// If metas holds no unresolved meta-slots, the zonked type is returned without a quantifier.
func (e *TypeEnv) Generalize(t types.Type, metas []*types.MetaSlot) types.Type {
	sigma, _ := e.generalize(t, metas)
	return sigma
}

func (e *TypeEnv) generalize(t types.Type, metas []*types.MetaSlot) (types.Type, []*types.Slot) {
	slots := e.bindMetaSlots([]types.Type{t}, metas)
	names := lo.Map(slots, func(s *types.Slot, _ int) string { return s.Name })
	return types.NewForAll(names, types.Zonk(t)), slots
}

// generalizeGroup generalizes the types of a group of mutually-recursive bindings which share meta-slots.
// Each type is quantified over the new variables which occur free within it.
func (e *TypeEnv) generalizeGroup(ts []types.Type, metas []*types.MetaSlot) ([]types.Type, [][]*types.Slot) {
	slots := e.bindMetaSlots(ts, metas)
	sigmas := make([]types.Type, len(ts))
	owned := make([][]*types.Slot, len(ts))
	for i, t := range ts {
		z := types.Zonk(t)
		free := types.FreeSlots(z)
		owned[i] = lo.Filter(slots, func(s *types.Slot, _ int) bool { return free.Contains(s.Key()) })
		names := lo.Map(owned[i], func(s *types.Slot, _ int) string { return s.Name })
		sigmas[i] = types.NewForAll(names, z)
	}
	return sigmas, owned
}

// bindMetaSlots binds each unresolved meta-slot to a new rigid type variable. Names already bound or free
// within any of ts are skipped.
func (e *TypeEnv) bindMetaSlots(ts []types.Type, metas []*types.MetaSlot) []*types.Slot {
	used := set.New[string](8)
	for _, t := range ts {
		used.InsertSet(types.Binders(t))
		for _, k := range types.FreeSlots(t).Slice() {
			used.Insert(k.Name)
		}
	}
	var slots []*types.Slot
	n := 0
	for _, m := range metas {
		if m.Resolved() {
			continue
		}
		var name string
		for {
			n++
			name = "t" + strconv.Itoa(n)
			if !used.Contains(name) {
				break
			}
		}
		slot := types.NewSlot(name)
		m.SetRef(slot)
		slots = append(slots, slot)
	}
	return slots
}
