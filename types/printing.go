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
)

var printerPool = sync.Pool{
	New: func() interface{} {
		return &typePrinter{names: make(map[string]string, 16)}
	},
}

func newTypePrinter(canonical bool) *typePrinter {
	p := printerPool.Get().(*typePrinter)
	p.canonical = canonical
	return p
}

func (p *typePrinter) Release() {
	for k := range p.names {
		delete(p.names, k)
	}
	p.sb.Reset()
	p.canonical = false
	printerPool.Put(p)
}

type typePrinter struct {
	names     map[string]string
	canonical bool
	sb        strings.Builder
}

// TypeString returns a string representation of a Type. Type-variables are printed with their names,
// functions as `(from->to)`, and type constructors as `name` or `name<arg1,arg2>`.
func TypeString(t Type) string {
	p := newTypePrinter(false)
	typeString(p, t)
	s := p.sb.String()
	p.Release()
	return s
}

// CanonicalString returns a string representation of a Type with type-variables renamed to `'a`, `'b`, ...
// in order of first appearance. Types which are equal up to renaming of type-variables have the same
// canonical string.
func CanonicalString(t Type) string {
	p := newTypePrinter(true)
	typeString(p, t)
	s := p.sb.String()
	p.Release()
	return s
}

// Canonical renames type-variables in t to `'a`, `'b`, ... in order of first appearance.
func Canonical(t Type) Type {
	vars := FreeVars(t)
	if len(vars) == 0 {
		return t
	}
	fresh := make(map[string]Type, len(vars))
	for i, v := range vars {
		fresh[v.Name] = &Var{Name: getVarName(uint(i))}
	}
	return rename(t, fresh)
}

var _names [128]string

func init() {
	for i := range _names {
		_names[i] = varName(uint(i))
	}
}

func varName(i uint) string {
	if i >= 26 {
		return "'" + string(rune('a'+i%26)) + strconv.Itoa(int(i/26))
	}
	return "'" + string(rune('a'+i%26))
}

func getVarName(i uint) string {
	if i < uint(len(_names)) {
		return _names[i]
	}
	return varName(i)
}

func typeString(p *typePrinter, t Type) {
	switch t := t.(type) {
	case *Var:
		if !p.canonical {
			p.sb.WriteString(t.Name)
			return
		}
		name, ok := p.names[t.Name]
		if !ok {
			name = getVarName(uint(len(p.names)))
			p.names[t.Name] = name
		}
		p.sb.WriteString(name)

	case *Arrow:
		p.sb.WriteByte('(')
		typeString(p, t.From)
		p.sb.WriteString("->")
		typeString(p, t.To)
		p.sb.WriteByte(')')

	case *Cons:
		p.sb.WriteString(t.Name)
		if len(t.Args) == 0 {
			return
		}
		p.sb.WriteByte('<')
		for i, arg := range t.Args {
			if i > 0 {
				p.sb.WriteByte(',')
			}
			typeString(p, arg)
		}
		p.sb.WriteByte('>')

	case nil:
		p.sb.WriteString("<nil>")

	default:
		panic("unexpected type " + t.TypeName())
	}
}
