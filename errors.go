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

	"github.com/wdamron/rankn/ast"
	"github.com/wdamron/rankn/types"
)

var (
	// A variable was referenced which is not bound in the type-environment.
	ErrVariableNotFound = errors.New("variable not found")
	// Two types could not be unified.
	ErrCannotUnify = errors.New("cannot unify")
	// Unification would create an infinite type.
	ErrRecursiveType = errors.New("recursive type")
	// A Skolem constant escaped a subsumption check.
	ErrSubsumption = errors.New("subsumption check failed")
	// A Skolem constant escaped into the type-environment while checking against a polymorphic type.
	ErrNotPolymorphicEnough = errors.New("type is not polymorphic enough")
	// A rigid type variable reached unification. This indicates a bug in the checker, or a declared type
	// with free type variables.
	ErrInvariant = errors.New("should not be here")
	// No type could be inferred for an expression.
	ErrUndecidable = errors.New("cannot decide type")
	// A name was bound more than once within a single let-expression.
	ErrDuplicateBinding = errors.New("duplicate binding")
)

// VariableNotFoundError is returned when a variable is not bound in the type-environment.
type VariableNotFoundError struct {
	Name string
}

func (e *VariableNotFoundError) Error() string { return "variable " + e.Name + " not found" }
func (e *VariableNotFoundError) Unwrap() error { return ErrVariableNotFound }

// UnifyError is returned when two types are structurally incompatible.
type UnifyError struct {
	A, B types.Type
}

func (e *UnifyError) Error() string {
	return "cannot unify " + types.TypeString(e.A) + " with " + types.TypeString(e.B)
}
func (e *UnifyError) Unwrap() error { return ErrCannotUnify }

// RecursiveTypeError is returned when a meta-slot would be bound to a type containing itself.
type RecursiveTypeError struct {
	Meta *types.MetaSlot
	Type types.Type
}

func (e *RecursiveTypeError) Error() string {
	return "recursive type: " + types.TypeString(e.Meta) + " occurs in " + types.TypeString(e.Type)
}
func (e *RecursiveTypeError) Unwrap() error { return ErrRecursiveType }

// SubsumptionError is returned when a Skolem constant escapes.
//
// When NotPolymorphicEnough is set, the Skolem escaped into the type-environment while checking an expression
// against Sigma2; otherwise it escaped into Sigma1 while checking that Sigma1 is at least as polymorphic as Sigma2.
type SubsumptionError struct {
	Sigma1, Sigma2       types.Type
	Escaped              *types.Slot
	NotPolymorphicEnough bool
}

func (e *SubsumptionError) Error() string {
	if e.NotPolymorphicEnough {
		return "type is not polymorphic enough: " + types.TypeString(e.Escaped) + " escapes while checking against " +
			types.TypeString(e.Sigma2)
	}
	return "subsumption check failed: " + types.TypeString(e.Sigma1) + " is not as polymorphic as " +
		types.TypeString(e.Sigma2) + " (" + types.TypeString(e.Escaped) + " escapes)"
}

func (e *SubsumptionError) Unwrap() error {
	if e.NotPolymorphicEnough {
		return ErrNotPolymorphicEnough
	}
	return ErrSubsumption
}

// InvariantError is returned when a rigid type variable reaches unification.
type InvariantError struct {
	Type types.Type
}

func (e *InvariantError) Error() string {
	return "should not be here: rigid type variable " + types.TypeString(e.Type) + " reached unification"
}
func (e *InvariantError) Unwrap() error { return ErrInvariant }

// UndecidableError is returned when no type can be inferred for an expression.
type UndecidableError struct {
	Expr ast.Expr
}

func (e *UndecidableError) Error() string {
	if e.Expr == nil {
		return "cannot decide type of nil expression"
	}
	return "cannot decide type of " + e.Expr.ExprName() + " expression"
}
func (e *UndecidableError) Unwrap() error { return ErrUndecidable }

// DuplicateBindingError is returned when a name is bound more than once within a single let-expression.
type DuplicateBindingError struct {
	Name string
}

func (e *DuplicateBindingError) Error() string { return "duplicate binding for " + e.Name + " within let-group" }
func (e *DuplicateBindingError) Unwrap() error { return ErrDuplicateBinding }
