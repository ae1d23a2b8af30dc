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
	"errors"
	"log/slog"

	"github.com/wdamron/rankn/ast"
	"github.com/wdamron/rankn/core"
	"github.com/wdamron/rankn/internal/astutil"
	"github.com/wdamron/rankn/types"
)

// InferenceContext is a re-usable context for type inference.
type InferenceContext struct {
	logger             *slog.Logger
	analysis           *astutil.Analysis
	dependencyAnalysis bool
	err                error
	invalid            ast.Expr
	needsReset         bool
}

// Create a new type-inference context. A context may be re-used across calls of Infer, Elaborate, Annotate and Check.
func NewContext() *InferenceContext {
	return &InferenceContext{logger: discardLogger}
}

// SetLogger sets the logger used to trace inference at the debug level. A nil logger disables tracing.
func (ti *InferenceContext) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = discardLogger
	}
	ti.logger = logger
}

// EnableDependencyAnalysis enables or disables dependency analysis for recursive let-groups.
//
// With dependency analysis, the bindings of each group are sorted into strongly-connected components which are
// checked and generalized in dependency order, so a binding may be used polymorphically by later components.
// Without it, every binding of a group is monomorphic within the whole group.
//
// By default, dependency analysis is disabled.
func (ti *InferenceContext) EnableDependencyAnalysis(enable bool) { ti.dependencyAnalysis = enable }

// Infer the principal type of expr within env.
func (ti *InferenceContext) Infer(expr ast.Expr, env *TypeEnv) (types.Type, error) {
	sigma, _, err := ti.Elaborate(expr, env)
	return sigma, err
}

// Infer the principal type of expr within env. The elaborated expression will be returned with all coercions intact.
func (ti *InferenceContext) Elaborate(expr ast.Expr, env *TypeEnv) (types.Type, core.Expr, error) {
	if err := ti.begin(expr); err != nil {
		return nil, nil, err
	}
	sigma, out, err := ti.inferSigma(env, expr)
	if err != nil {
		ti.err = err
		return nil, nil, err
	}
	return types.Zonk(sigma), core.ZonkTypes(out), nil
}

// Infer the principal type of expr within env. The elaborated expression will be returned with all coercions reduced.
//
// Meta-slots which remain unresolved after inference are ambiguous (any type satisfies them) and are resolved
// to `unit`, so every type annotation within the returned expression is closed.
func (ti *InferenceContext) Annotate(expr ast.Expr, env *TypeEnv) (types.Type, core.Expr, error) {
	sigma, out, err := ti.Elaborate(expr, env)
	if err != nil {
		return nil, nil, err
	}
	envMetas := env.MetaSlots()
	for _, m := range core.MetaSlots(out) {
		if !envMetas.Contains(m.Id()) {
			m.SetRef(unitType)
		}
	}
	return sigma, core.BetaRedex(core.ZonkTypes(out)), nil
}

// Check expr against the possibly-polymorphic type sigma within env, returning the elaborated expression.
func (ti *InferenceContext) Check(expr ast.Expr, env *TypeEnv, sigma types.Type) (core.Expr, error) {
	if err := ti.begin(expr); err != nil {
		return nil, err
	}
	out, err := ti.checkSigma(env, expr, sigma)
	if err != nil {
		ti.err = err
		return nil, err
	}
	return core.ZonkTypes(out), nil
}

// Subsumes checks that sigma1 is at least as polymorphic as sigma2 within env. Meta-slots within either type
// may be resolved, even if the check fails.
func (ti *InferenceContext) Subsumes(env *TypeEnv, sigma1, sigma2 types.Type) error {
	ti.Reset()
	ti.needsReset = true
	if _, err := ti.subsCheck(env, sigma1, sigma2); err != nil {
		ti.err = err
		return err
	}
	return nil
}

// Unify makes a and b equal by resolving meta-slots. Meta-slots resolved before a failure remain resolved.
func (ti *InferenceContext) Unify(a, b types.Type) error {
	ti.Reset()
	ti.needsReset = true
	if err := ti.unify(a, b); err != nil {
		ti.err = err
		return err
	}
	return nil
}

// Get the error which caused inference to fail.
func (ti *InferenceContext) Error() error { return ti.err }

// Get the expression which caused inference to fail.
func (ti *InferenceContext) InvalidExpr() ast.Expr { return ti.invalid }

// Reset the state of the context. The context will be reset automatically between calls.
func (ti *InferenceContext) Reset() {
	if !ti.needsReset {
		return
	}
	ti.analysis, ti.err, ti.invalid, ti.needsReset = nil, nil, nil, false
}

func (ti *InferenceContext) begin(root ast.Expr) error {
	ti.Reset()
	ti.needsReset = true
	if root == nil {
		ti.err = &UndecidableError{}
		return ti.err
	}
	if !ti.dependencyAnalysis {
		return nil
	}
	analysis, err := astutil.Analyze(root)
	if err != nil {
		ti.err = errors.Join(ErrUndecidable, err)
		return ti.err
	}
	ti.analysis = analysis
	return nil
}
