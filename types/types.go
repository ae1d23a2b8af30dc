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

// Type is the base interface for all types.
type Type interface {
	TypeName() string
}

func (t *Primitive) TypeName() string { return "Primitive" }
func (t *Slot) TypeName() string      { return "Slot" }
func (t *Composite) TypeName() string { return "Composite" }
func (t *ForAll) TypeName() string    { return "ForAll" }
func (t *MetaSlot) TypeName() string  { return "MetaSlot" }

var (
	_ Type = (*Primitive)(nil)
	_ Type = (*Slot)(nil)
	_ Type = (*Composite)(nil)
	_ Type = (*ForAll)(nil)
	_ Type = (*MetaSlot)(nil)
)

// Name of the built-in function type constructor.
const ArrowName = "->"

// Names of the primitive types assigned to literals.
const (
	IntName    = "int"
	StringName = "string"
	BoolName   = "bool"
	UnitName   = "unit"
)

// Atomic base type, such as `int`
type Primitive struct {
	Name string
}

// Bound type variable. Rigid slots come from a surface `forall`; Skolem slots are minted during skolemization
// and carry a unique id alongside the name of the quantifier they replaced.
type Slot struct {
	Name   string
	Id     int
	Skolem bool
}

// Application of one type to another. Contravariant marks the argument as occurring in a negative position;
// it is set only for the hidden application which builds a function's domain.
type Composite struct {
	Fn            Type
	Arg           Type
	Contravariant bool
}

// Universal quantification over an ordered list of names.
type ForAll struct {
	Quantifiers []string
	Body        Type
}

// Unification placeholder. A meta-slot is identified by its id; its cell is empty until unification
// (or generalization) assigns it a type.
type MetaSlot struct {
	id  int
	ref Type
}

// NewPrimitive returns the primitive type with the given name.
func NewPrimitive(name string) *Primitive { return &Primitive{Name: name} }

// NewSlot returns a rigid type variable.
func NewSlot(name string) *Slot { return &Slot{Name: name} }

// NewSkolem returns a Skolem constant standing for the quantifier name, tagged with a unique id.
func NewSkolem(id int, name string) *Slot { return &Slot{Name: name, Id: id, Skolem: true} }

// NewComposite applies fn to arg.
func NewComposite(fn, arg Type, contravariant bool) *Composite {
	return &Composite{Fn: fn, Arg: arg, Contravariant: contravariant}
}

// NewForAll quantifies body over names. An empty list of names returns body unchanged.
func NewForAll(names []string, body Type) Type {
	if len(names) == 0 {
		return body
	}
	return &ForAll{Quantifiers: names, Body: body}
}

// NewMetaSlot returns an unresolved meta-slot with the given id. Ids must be unique within an environment lineage.
func NewMetaSlot(id int) *MetaSlot { return &MetaSlot{id: id} }

var arrow = &Primitive{Name: ArrowName}

// Func returns the function type `dom -> cod`, encoded as `((-> dom) cod)` with a contravariant domain.
func Func(dom, cod Type) *Composite {
	return &Composite{Fn: &Composite{Fn: arrow, Arg: dom, Contravariant: true}, Arg: cod}
}

// SplitFunc returns the domain and codomain of t if t is shaped as a function type.
// Resolved meta-slots are followed at each level.
func SplitFunc(t Type) (dom, cod Type, ok bool) {
	outer, isComposite := Resolve(t).(*Composite)
	if !isComposite {
		return nil, nil, false
	}
	if dom, ok = FuncDomain(outer.Fn); !ok {
		return nil, nil, false
	}
	return dom, outer.Arg, true
}

// FuncDomain returns the domain of t if t is the partial application `(-> dom)`.
func FuncDomain(t Type) (Type, bool) {
	inner, ok := Resolve(t).(*Composite)
	if !ok || !inner.Contravariant {
		return nil, false
	}
	if p, ok := Resolve(inner.Fn).(*Primitive); !ok || p.Name != ArrowName {
		return nil, false
	}
	return inner.Arg, true
}

// Id returns the unique id of the meta-slot.
func (m *MetaSlot) Id() int { return m.id }

// Ref returns the type currently held in the meta-slot's cell, or nil.
func (m *MetaSlot) Ref() Type { return m.ref }

// Resolved reports whether the meta-slot's cell holds a type.
func (m *MetaSlot) Resolved() bool { return m.ref != nil }

// SetRef assigns the meta-slot's cell. Only unification, generalization and path compression assign cells.
func (m *MetaSlot) SetRef(t Type) { m.ref = t }

// Resolve follows resolved meta-slots until it reaches a type which is not a resolved meta-slot.
func Resolve(t Type) Type {
	for {
		m, ok := t.(*MetaSlot)
		if !ok || m.ref == nil {
			return t
		}
		t = m.ref
	}
}

// SlotsEqual compares slots: rigid slots by name, Skolems by the name of the quantifier they replaced.
// A Skolem is never equal to a rigid slot.
func SlotsEqual(a, b *Slot) bool {
	return a.Skolem == b.Skolem && a.Name == b.Name
}

// Equal reports whether a and b are structurally equal after following resolved meta-slots.
// Unresolved meta-slots are equal iff they share an id; foralls must agree on quantifier names.
func Equal(a, b Type) bool {
	a, b = Resolve(a), Resolve(b)
	switch a := a.(type) {
	case *Primitive:
		b, ok := b.(*Primitive)
		return ok && a.Name == b.Name
	case *Slot:
		b, ok := b.(*Slot)
		return ok && SlotsEqual(a, b) && a.Id == b.Id
	case *MetaSlot:
		b, ok := b.(*MetaSlot)
		return ok && a.id == b.id
	case *Composite:
		b, ok := b.(*Composite)
		return ok && a.Contravariant == b.Contravariant && Equal(a.Fn, b.Fn) && Equal(a.Arg, b.Arg)
	case *ForAll:
		b, ok := b.(*ForAll)
		if !ok || len(a.Quantifiers) != len(b.Quantifiers) {
			return false
		}
		for i := range a.Quantifiers {
			if a.Quantifiers[i] != b.Quantifiers[i] {
				return false
			}
		}
		return Equal(a.Body, b.Body)
	}
	return false
}
