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

package astutil

import (
	"errors"

	"github.com/samber/lo"

	"github.com/wdamron/rankn/ast"
	"github.com/wdamron/rankn/internal/util"
)

// Dependency analysis for recursive let-groups; borrowed from Haskell.
// https://prime.haskell.org/wiki/RelaxedDependencyAnalysis
//
//   In Haskell 98, a group of bindings is sorted into strongly-connected components, and then type-checked
//   in dependency order (H98 s4.5.1). As each dependency group is type-checked, any binders of the group
//   that have an explicit type signature are put in the type environment with the specified polymorphic type,
//   and all others are monomorphic until the group is generalized (H98 s4.5.2).
//
//   The initial dependency analysis should ignore references to variables that have an explicit type signature.
type Analysis struct {
	scopes  map[string]int // map from variable to let-group number (or -1 for variables not bound by let-groups)
	stash   []stashedScope // shadowed variable-scope mappings
	groups  []group        // indexed by let-group number
	current []int          // binding being analyzed, indexed by let-group number
	sccs    map[*ast.LetRec][][]int
}

type stashedScope struct {
	name     string
	groupNum int
}

type group struct {
	expr  *ast.LetRec
	verts map[string]int
	graph util.Graph
}

// Analyze computes the strongly-connected components of every recursive let-group within root.
func Analyze(root ast.Expr) (*Analysis, error) {
	a := &Analysis{scopes: make(map[string]int, 32)}
	if err := a.analyzeExpr(root); err != nil {
		return nil, err
	}
	a.sccs = make(map[*ast.LetRec][][]int, len(a.groups))
	for _, g := range a.groups {
		a.sccs[g.expr] = g.graph.SCC()
	}
	return a, nil
}

// Components returns the bindings of a let-group as strongly-connected components in dependency order:
// every binding without a declared type is preceded by the bindings it refers to, except those in its
// own component. Let-groups which were not analyzed are returned as a single component.
func (a *Analysis) Components(expr *ast.LetRec) [][]int {
	if a != nil {
		if sccs, ok := a.sccs[expr]; ok {
			return sccs
		}
	}
	all := make([]int, len(expr.Bindings))
	for i := range all {
		all[i] = i
	}
	return [][]int{all}
}

// returns 1 if the variable was stashed, otherwise 0
func (a *Analysis) push(name string, groupNum int) int {
	stashed := 0
	if prev, exists := a.scopes[name]; exists {
		a.stash = append(a.stash, stashedScope{name, prev})
		stashed = 1
	}
	a.scopes[name] = groupNum
	return stashed
}

// pop removes names from scope, then restores the most recent count stashed mappings.
func (a *Analysis) pop(names []string, count int) {
	for _, name := range names {
		delete(a.scopes, name)
	}
	stash := a.stash
	for i := 0; i < count; i++ {
		s := stash[len(stash)-1-i]
		a.scopes[s.name] = s.groupNum
	}
	a.stash = stash[:len(stash)-count]
}

func (a *Analysis) reference(name string) {
	groupNum, ok := a.scopes[name]
	if !ok || groupNum < 0 || a.current[groupNum] < 0 {
		return
	}
	g := &a.groups[groupNum]
	dep := g.verts[name]
	if g.expr.Bindings[dep].Type != nil {
		return
	}
	g.graph.AddEdge(dep, a.current[groupNum])
}

func (a *Analysis) analyzeExpr(expr ast.Expr) error {
	switch expr := expr.(type) {
	case *ast.Lit:
		// nothing to check

	case *ast.Var:
		a.reference(expr.Name)

	case *ast.App:
		if err := a.analyzeExpr(expr.Func); err != nil {
			return err
		}
		if err := a.analyzeExpr(expr.Arg); err != nil {
			return err
		}

	case *ast.Lam:
		stashed := a.push(expr.Param, -1)
		if err := a.analyzeExpr(expr.Body); err != nil {
			return err
		}
		a.pop([]string{expr.Param}, stashed)

	case *ast.ALam:
		stashed := a.push(expr.Param, -1)
		if err := a.analyzeExpr(expr.Body); err != nil {
			return err
		}
		a.pop([]string{expr.Param}, stashed)

	case *ast.Ann:
		if err := a.analyzeExpr(expr.Body); err != nil {
			return err
		}

	case *ast.Let:
		for _, b := range expr.Bindings {
			if err := a.analyzeExpr(b.Value); err != nil {
				return err
			}
		}
		names := lo.Uniq(lo.Map(expr.Bindings, func(b ast.Binding, _ int) string { return b.Name }))
		stashed := 0
		for _, name := range names {
			stashed += a.push(name, -1)
		}
		if err := a.analyzeExpr(expr.Body); err != nil {
			return err
		}
		a.pop(names, stashed)

	case *ast.LetRec:
		num := len(a.groups)
		a.groups = append(a.groups, group{
			expr:  expr,
			verts: make(map[string]int, len(expr.Bindings)),
			graph: util.NewGraph(len(expr.Bindings)),
		})
		a.current = append(a.current, -1)
		verts := a.groups[num].verts
		for i, b := range expr.Bindings {
			// Duplicate bindings are reported during inference; the first binding wins here.
			if _, exists := verts[b.Name]; !exists {
				verts[b.Name] = i
			}
		}
		names := lo.Uniq(lo.Map(expr.Bindings, func(b ast.RecBinding, _ int) string { return b.Name }))
		stashed := 0
		for _, name := range names {
			stashed += a.push(name, num)
		}
		for i, b := range expr.Bindings {
			a.current[num] = i
			if err := a.analyzeExpr(b.Value); err != nil {
				return err
			}
		}
		a.current[num] = -1
		if err := a.analyzeExpr(expr.Body); err != nil {
			return err
		}
		a.pop(names, stashed)

	case nil:
		return errors.New("failed to analyze nil expression")

	default:
		return errors.New("failed to analyze " + expr.ExprName() + " expression")
	}

	return nil
}
