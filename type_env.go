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

	"github.com/benbjohnson/immutable"
	set "github.com/hashicorp/go-set/v3"

	"github.com/wdamron/rankn/types"
)

// TypeEnv is a persistent type-environment containing mappings from identifiers to declared types.
//
// Extending a type-environment returns a new environment which shares structure with its parent; the parent
// is never modified. Every environment derived from a common root shares a single counter, used to mint
// unique ids for meta-slots and Skolem constants.
//
// A type-environment cannot be used concurrently for inference.
type TypeEnv struct {
	uniques *uniqueCounter
	vars    *immutable.SortedMap // string -> types.Type
}

type uniqueCounter struct {
	last int
}

// TypeBinding maps a name to a type within a type-environment.
type TypeBinding struct {
	Name string
	Type types.Type
}

// Create an empty root type-environment with a new unique-id counter.
func NewTypeEnv() *TypeEnv {
	return &TypeEnv{
		uniques: &uniqueCounter{},
		vars:    immutable.NewSortedMap(nil),
	}
}

// Extend returns a new environment in which name is bound to t, shadowing any existing binding.
func (e *TypeEnv) Extend(name string, t types.Type) *TypeEnv {
	return &TypeEnv{uniques: e.uniques, vars: e.vars.Set(name, t)}
}

// ExtendN returns a new environment with all bindings added at once. Later bindings shadow earlier ones.
func (e *TypeEnv) ExtendN(bindings []TypeBinding) *TypeEnv {
	vars := e.vars
	for _, b := range bindings {
		vars = vars.Set(b.Name, b.Type)
	}
	return &TypeEnv{uniques: e.uniques, vars: vars}
}

// Lookup returns the type bound to name, or a *VariableNotFoundError.
func (e *TypeEnv) Lookup(name string) (types.Type, error) {
	t, ok := e.vars.Get(name)
	if !ok {
		return nil, &VariableNotFoundError{Name: name}
	}
	return t.(types.Type), nil
}

// Len returns the number of names bound in the environment.
func (e *TypeEnv) Len() int { return e.vars.Len() }

// Names returns the names bound in the environment, in sorted order.
func (e *TypeEnv) Names() []string {
	names := make([]string, 0, e.vars.Len())
	e.each(func(name string, _ types.Type) { names = append(names, name) })
	return names
}

func (e *TypeEnv) each(f func(name string, t types.Type)) {
	iter := e.vars.Iterator()
	for !iter.Done() {
		k, v := iter.Next()
		f(k.(string), v.(types.Type))
	}
}

// NewUnique returns the next id from the counter shared by all environments derived from the same root.
func (e *TypeEnv) NewUnique() int {
	e.uniques.last++
	return e.uniques.last
}

// Create an unresolved meta-slot with a unique id.
func (e *TypeEnv) NewMetaSlot() *types.MetaSlot { return types.NewMetaSlot(e.NewUnique()) }

// Create a Skolem constant with a unique id, standing for the quantifier name.
func (e *TypeEnv) NewSkolem(name string) *types.Slot { return types.NewSkolem(e.NewUnique(), name) }

// freshName returns a unique term-level name for a parameter introduced by elaboration.
func (e *TypeEnv) freshName(prefix string) string {
	return "_" + prefix + strconv.Itoa(e.NewUnique())
}

// MetaSlots returns the ids of the unresolved meta-slots reachable from any type bound in the environment.
func (e *TypeEnv) MetaSlots() *set.Set[int] {
	seen := set.New[int](16)
	var metas []*types.MetaSlot
	e.each(func(_ string, t types.Type) { types.CollectMetaSlots(seen, &metas, t) })
	return seen
}

// FreeSlots returns the free slots (rigid or Skolem) of every type bound in the environment.
func (e *TypeEnv) FreeSlots() *set.Set[types.SlotKey] {
	free := set.New[types.SlotKey](16)
	e.each(func(_ string, t types.Type) { types.CollectFreeSlots(free, t) })
	return free
}
