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
	"strings"
)

// Scheme is a polymorphic type: a type together with its universally quantified type-variables.
type Scheme struct {
	Vars []*Var
	Type Type
}

// Create a type-scheme quantifying vars over t.
func NewScheme(vars []*Var, t Type) *Scheme { return &Scheme{Vars: vars, Type: t} }

// Create a type-scheme without quantified type-variables.
func Mono(t Type) *Scheme { return &Scheme{Type: t} }

// Create a type-scheme quantifying all type-variables of t.
func Closed(t Type) *Scheme { return &Scheme{Vars: FreeVars(t), Type: t} }

// IsMono reports whether the scheme has no quantified type-variables.
func (s *Scheme) IsMono() bool { return len(s.Vars) == 0 }

// NewInstance replaces each quantified type-variable with a fresh type-variable allocated from names.
// Unquantified type-variables are left unchanged.
func (s *Scheme) NewInstance(names NameSource) Type {
	if len(s.Vars) == 0 {
		return s.Type
	}
	fresh := make(map[string]Type, len(s.Vars))
	for _, v := range s.Vars {
		if _, ok := fresh[v.Name]; !ok {
			fresh[v.Name] = names.NewVar()
		}
	}
	return rename(s.Type, fresh)
}

// Replace type-variables in a single pass; replacements are not renamed again.
func rename(t Type, fresh map[string]Type) Type {
	switch t := t.(type) {
	case *Var:
		if next, ok := fresh[t.Name]; ok {
			return next
		}
		return t
	case *Arrow:
		return &Arrow{From: rename(t.From, fresh), To: rename(t.To, fresh)}
	case *Cons:
		if len(t.Args) == 0 {
			return t
		}
		args := make([]Type, len(t.Args))
		for i, arg := range t.Args {
			args[i] = rename(arg, fresh)
		}
		return &Cons{Name: t.Name, Args: args}
	}
	panic("unexpected type " + t.TypeName())
}

// Apply a substitution to the scheme's type. Quantified type-variables are not substituted.
func (s *Scheme) Apply(sub *Subst) *Scheme {
	if sub.Len() == 0 {
		return s
	}
	var t Type
	if len(s.Vars) == 0 {
		t = sub.Apply(s.Type)
	} else {
		bound := make(map[string]struct{}, len(s.Vars))
		for _, v := range s.Vars {
			bound[v.Name] = struct{}{}
		}
		t = sub.applyExcept(s.Type, bound)
	}
	if t == s.Type {
		return s
	}
	return &Scheme{Vars: s.Vars, Type: t}
}

// FreeVars returns the unquantified type-variables of the scheme, in order of first appearance.
func (s *Scheme) FreeVars() []*Var {
	vars := FreeVars(s.Type)
	if len(s.Vars) == 0 {
		return vars
	}
	free := vars[:0]
	for _, v := range vars {
		if !s.quantifies(v) {
			free = append(free, v)
		}
	}
	return free
}

func (s *Scheme) quantifies(v *Var) bool {
	for _, q := range s.Vars {
		if q.Name == v.Name {
			return true
		}
	}
	return false
}

// String returns a string representation of the scheme: `forall a0 a1. (a0->a1)`
func (s *Scheme) String() string {
	if len(s.Vars) == 0 {
		return TypeString(s.Type)
	}
	var sb strings.Builder
	sb.WriteString("forall")
	for _, v := range s.Vars {
		sb.WriteByte(' ')
		sb.WriteString(v.Name)
	}
	sb.WriteString(". ")
	sb.WriteString(TypeString(s.Type))
	return sb.String()
}
