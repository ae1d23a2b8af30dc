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

package types

import (
	set "github.com/hashicorp/go-set/v3"
)

// SlotKey identifies a slot under the slot equality rule: Skolems compare by the name of the quantifier
// they replaced, rigid slots by name.
type SlotKey struct {
	Name   string
	Skolem bool
}

// Key returns the equality key of the slot.
func (s *Slot) Key() SlotKey { return SlotKey{Name: s.Name, Skolem: s.Skolem} }

// FreeSlots returns the keys of all slots (rigid or Skolem) occurring outside any binding forall in t.
// Resolved meta-slots are followed.
func FreeSlots(t Type) *set.Set[SlotKey] {
	free := set.New[SlotKey](8)
	collectFreeSlots(free, nil, t)
	return free
}

// CollectFreeSlots adds the free slots of t to free.
func CollectFreeSlots(free *set.Set[SlotKey], t Type) { collectFreeSlots(free, nil, t) }

func collectFreeSlots(free *set.Set[SlotKey], bound []string, t Type) {
	switch t := Resolve(t).(type) {
	case *Slot:
		if !t.Skolem {
			for _, name := range bound {
				if name == t.Name {
					return
				}
			}
		}
		free.Insert(t.Key())
	case *Composite:
		collectFreeSlots(free, bound, t.Fn)
		collectFreeSlots(free, bound, t.Arg)
	case *ForAll:
		collectFreeSlots(free, append(bound[:len(bound):len(bound)], t.Quantifiers...), t.Body)
	}
}

// Binders returns every name bound by a forall anywhere within t.
func Binders(t Type) *set.Set[string] {
	binders := set.New[string](4)
	collectBinders(binders, t)
	return binders
}

func collectBinders(binders *set.Set[string], t Type) {
	switch t := Resolve(t).(type) {
	case *Composite:
		collectBinders(binders, t.Fn)
		collectBinders(binders, t.Arg)
	case *ForAll:
		binders.InsertSlice(t.Quantifiers)
		collectBinders(binders, t.Body)
	}
}

// MetaSlots returns the unresolved meta-slots reachable from t, in order of first occurrence.
// Resolved meta-slots are followed transitively.
func MetaSlots(t Type) []*MetaSlot {
	var metas []*MetaSlot
	CollectMetaSlots(set.New[int](8), &metas, t)
	return metas
}

// CollectMetaSlots appends the unresolved meta-slots reachable from t whose ids are not in seen.
func CollectMetaSlots(seen *set.Set[int], metas *[]*MetaSlot, t Type) {
	switch t := Resolve(t).(type) {
	case *MetaSlot:
		if seen.Insert(t.id) {
			*metas = append(*metas, t)
		}
	case *Composite:
		CollectMetaSlots(seen, metas, t.Fn)
		CollectMetaSlots(seen, metas, t.Arg)
	case *ForAll:
		CollectMetaSlots(seen, metas, t.Body)
	}
}

// Occurs reports whether the unresolved meta-slot m is reachable from t.
func Occurs(m *MetaSlot, t Type) bool {
	switch t := Resolve(t).(type) {
	case *MetaSlot:
		return t.id == m.id
	case *Composite:
		return Occurs(m, t.Fn) || Occurs(m, t.Arg)
	case *ForAll:
		return Occurs(m, t.Body)
	}
	return false
}

// Subst replaces free rigid slots by name. A forall removes its own quantifiers from the mapping before
// substituting within its body; quantifiers are not renamed.
func Subst(t Type, mapping map[string]Type) Type {
	if len(mapping) == 0 {
		return t
	}
	exact := make(map[Slot]Type, len(mapping))
	for name, ty := range mapping {
		exact[Slot{Name: name}] = ty
	}
	return subst(t, exact)
}

// SubstSlots replaces slots which are identical (name, id and flavor) to a key of the mapping.
// Rigid keys are shadowed by forall quantifiers of the same name.
func SubstSlots(t Type, mapping map[Slot]Type) Type {
	if len(mapping) == 0 {
		return t
	}
	return subst(t, mapping)
}

func subst(t Type, mapping map[Slot]Type) Type {
	switch t := Resolve(t).(type) {
	case *Slot:
		if ty, ok := mapping[*t]; ok {
			return ty
		}
		return t
	case *Composite:
		return &Composite{Fn: subst(t.Fn, mapping), Arg: subst(t.Arg, mapping), Contravariant: t.Contravariant}
	case *ForAll:
		inner := mapping
		for _, q := range t.Quantifiers {
			if _, shadowed := mapping[Slot{Name: q}]; shadowed {
				if len(inner) == len(mapping) {
					inner = make(map[Slot]Type, len(mapping))
					for k, v := range mapping {
						inner[k] = v
					}
				}
				delete(inner, Slot{Name: q})
			}
		}
		if len(inner) == 0 {
			return t
		}
		return &ForAll{Quantifiers: t.Quantifiers, Body: subst(t.Body, inner)}
	default:
		return t
	}
}

// Zonk returns a copy of t in which every resolved meta-slot is replaced by its final resolution.
// The cells of resolved meta-slots are compressed to point directly at their zonked resolution.
func Zonk(t Type) Type {
	switch t := t.(type) {
	case *MetaSlot:
		if t.ref == nil {
			return t
		}
		z := Zonk(t.ref)
		t.ref = z
		return z
	case *Composite:
		return &Composite{Fn: Zonk(t.Fn), Arg: Zonk(t.Arg), Contravariant: t.Contravariant}
	case *ForAll:
		return &ForAll{Quantifiers: t.Quantifiers, Body: Zonk(t.Body)}
	default:
		return t
	}
}

// IsClosed reports whether t contains no unresolved meta-slots.
func IsClosed(t Type) bool {
	switch t := Resolve(t).(type) {
	case *MetaSlot:
		return false
	case *Composite:
		return IsClosed(t.Fn) && IsClosed(t.Arg)
	case *ForAll:
		return IsClosed(t.Body)
	}
	return true
}

// IsMonotype reports whether t contains no forall, following resolved meta-slots.
func IsMonotype(t Type) bool {
	switch t := Resolve(t).(type) {
	case *Composite:
		return IsMonotype(t.Fn) && IsMonotype(t.Arg)
	case *ForAll:
		return false
	}
	return true
}
