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
	"sort"
	"strings"

	"github.com/benbjohnson/immutable"
)

var emptySubst = &Subst{m: immutable.NewMap(nil)}

// Subst is an immutable substitution, mapping type-variables to types.
//
// Extending a substitution never modifies the receiver; previously obtained substitutions remain valid.
type Subst struct {
	m *immutable.Map
}

// EmptySubst returns the substitution which maps every type-variable to itself.
func EmptySubst() *Subst { return emptySubst }

// Len returns the number of bound type-variables.
func (s *Subst) Len() int { return s.m.Len() }

// Lookup returns the type bound to v, or v itself if v is unbound.
func (s *Subst) Lookup(v *Var) Type {
	if t, ok := s.m.Get(v.Name); ok {
		return t.(Type)
	}
	return v
}

// Extend returns a substitution which maps v to t and delegates all other type-variables to s.
//
// Extend does not check whether binding v would create a cycle; see Unify.
func (s *Subst) Extend(v *Var, t Type) *Subst {
	return &Subst{m: s.m.Set(v.Name, t)}
}

// Apply the substitution to t. Chains of bound type-variables are resolved completely.
func (s *Subst) Apply(t Type) Type {
	if s.m.Len() == 0 {
		return t
	}
	return s.apply(t, nil)
}

// Apply the substitution to t, leaving the named type-variables unchanged.
func (s *Subst) applyExcept(t Type, bound map[string]struct{}) Type {
	if s.m.Len() == 0 {
		return t
	}
	return s.apply(t, bound)
}

func (s *Subst) apply(t Type, bound map[string]struct{}) Type {
	switch t := t.(type) {
	case *Var:
		if _, ok := bound[t.Name]; ok {
			return t
		}
		u, ok := s.m.Get(t.Name)
		if !ok {
			return t
		}
		return s.apply(u.(Type), bound)

	case *Arrow:
		from, to := s.apply(t.From, bound), s.apply(t.To, bound)
		if from == t.From && to == t.To {
			return t
		}
		return &Arrow{From: from, To: to}

	case *Cons:
		if len(t.Args) == 0 {
			return t
		}
		var args []Type
		for i, arg := range t.Args {
			next := s.apply(arg, bound)
			if next != arg && args == nil {
				args = make([]Type, len(t.Args))
				copy(args, t.Args[:i])
			}
			if args != nil {
				args[i] = next
			}
		}
		if args == nil {
			return t
		}
		return &Cons{Name: t.Name, Args: args}
	}
	panic("unexpected type " + t.TypeName())
}

// Range iterates over bindings in the substitution, sorted by type-variable name.
// If f returns false, iteration will be stopped.
func (s *Subst) Range(f func(*Var, Type) bool) {
	names := make([]string, 0, s.m.Len())
	iter := s.m.Iterator()
	for !iter.Done() {
		k, _ := iter.Next()
		names = append(names, k.(string))
	}
	sort.Strings(names)
	for _, name := range names {
		t, _ := s.m.Get(name)
		if !f(&Var{Name: name}, t.(Type)) {
			return
		}
	}
}

// String returns the bindings of s: `{a0 := Int, a1 := (a0->a0)}`
func (s *Subst) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	i := 0
	s.Range(func(v *Var, t Type) bool {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(v.Name)
		sb.WriteString(" := ")
		sb.WriteString(TypeString(t))
		i++
		return true
	})
	sb.WriteByte('}')
	return sb.String()
}
