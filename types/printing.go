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
	"strconv"
	"strings"
	"sync"
	"unicode"
)

var printerPool = sync.Pool{
	New: func() interface{} { return &typePrinter{} },
}

type typePrinter struct {
	sb strings.Builder
}

func newTypePrinter() *typePrinter { return printerPool.Get().(*typePrinter) }

func (p *typePrinter) Release() {
	p.sb.Reset()
	printerPool.Put(p)
}

// Precedence of the context a type is printed in.
const (
	precTop   = iota // forall bodies and the outermost type
	precInfix        // operand of an infix constructor
	precArg          // argument of a prefix application
)

// TypeString returns a string representation of a Type, such as `forall a b. a -> b -> a`.
//
// Skolem constants print as `name#id` and unresolved meta-slots as `?id`.
func TypeString(t Type) string {
	p := newTypePrinter()
	typeString(p, precTop, t)
	s := p.sb.String()
	p.Release()
	return s
}

// infixOp returns the operator and operands of t if t is a saturated application of a symbolic
// binary constructor, such as `a -> b` or `a * b`.
func infixOp(t *Composite) (op string, left, right Type, ok bool) {
	inner, isComposite := Resolve(t.Fn).(*Composite)
	if !isComposite {
		return "", nil, nil, false
	}
	prim, isPrim := Resolve(inner.Fn).(*Primitive)
	if !isPrim || !isSymbolic(prim.Name) {
		return "", nil, nil, false
	}
	return prim.Name, inner.Arg, t.Arg, true
}

func isSymbolic(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			return false
		}
	}
	return true
}

func typeString(p *typePrinter, prec int, t Type) {
	switch t := t.(type) {
	case *Primitive:
		if isSymbolic(t.Name) {
			p.sb.WriteByte('(')
			p.sb.WriteString(t.Name)
			p.sb.WriteByte(')')
			return
		}
		p.sb.WriteString(t.Name)

	case *Slot:
		p.sb.WriteString(t.Name)
		if t.Skolem {
			p.sb.WriteByte('#')
			p.sb.WriteString(strconv.Itoa(t.Id))
		}

	case *MetaSlot:
		if t.ref != nil {
			typeString(p, prec, t.ref)
			return
		}
		p.sb.WriteByte('?')
		p.sb.WriteString(strconv.Itoa(t.id))

	case *ForAll:
		if prec > precTop {
			p.sb.WriteByte('(')
		}
		p.sb.WriteString("forall")
		for _, q := range t.Quantifiers {
			p.sb.WriteByte(' ')
			p.sb.WriteString(q)
		}
		p.sb.WriteString(". ")
		typeString(p, precTop, t.Body)
		if prec > precTop {
			p.sb.WriteByte(')')
		}

	case *Composite:
		if op, left, right, ok := infixOp(t); ok {
			if prec > precTop {
				p.sb.WriteByte('(')
			}
			typeString(p, precInfix, left)
			p.sb.WriteByte(' ')
			p.sb.WriteString(op)
			p.sb.WriteByte(' ')
			// Arrows associate to the right; other operators to the left.
			if op == ArrowName {
				typeString(p, precTop, right)
			} else {
				typeString(p, precInfix, right)
			}
			if prec > precTop {
				p.sb.WriteByte(')')
			}
			return
		}
		if prec == precArg {
			p.sb.WriteByte('(')
		}
		typeString(p, precInfix, t.Fn)
		p.sb.WriteByte(' ')
		typeString(p, precArg, t.Arg)
		if prec == precArg {
			p.sb.WriteByte(')')
		}

	case nil:
		p.sb.WriteString("<nil>")
	}
}
