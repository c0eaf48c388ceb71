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

package hm

import (
	"strings"

	"github.com/benbjohnson/immutable"
	"github.com/hashicorp/go-set/v3"

	"github.com/wdamron/hm/internal/typeutil"
	"github.com/wdamron/hm/types"
)

// LiteralResolver assigns a type to a variable name which is not bound within a type-environment,
// such as an integer literal. The resolved type must not contain type-variables.
type LiteralResolver func(name string) (types.Type, bool)

var emptyEnv = &TypeEnv{m: immutable.NewSortedMap(nil)}

// TypeEnv is an immutable type-environment containing mappings from identifiers to type-schemes.
//
// Methods which update a type-environment return a new environment; the receiver is never modified,
// so a type-environment may be shared across threads and inference runs.
type TypeEnv struct {
	m        *immutable.SortedMap
	literals LiteralResolver
}

// Create an empty type-environment.
func NewTypeEnv() *TypeEnv { return emptyEnv }

// Len returns the number of identifiers bound within the environment.
func (e *TypeEnv) Len() int { return e.m.Len() }

// Lookup the type-scheme for an identifier.
func (e *TypeEnv) Lookup(name string) (*types.Scheme, bool) {
	v, ok := e.m.Get(name)
	if !ok {
		return nil, false
	}
	return v.(*types.Scheme), true
}

// Literal resolves the type of an unbound identifier with the environment's literal resolver, if any.
func (e *TypeEnv) Literal(name string) (types.Type, bool) {
	if e.literals == nil {
		return nil, false
	}
	return e.literals(name)
}

// Create a type-environment which resolves unbound identifiers with r. A nil resolver disables literals.
func (e *TypeEnv) WithLiterals(r LiteralResolver) *TypeEnv {
	return &TypeEnv{m: e.m, literals: r}
}

// Append a binding for an identifier. Any existing binding for the identifier is shadowed within the
// returned environment only.
func (e *TypeEnv) Append(name string, scheme *types.Scheme) *TypeEnv {
	return &TypeEnv{m: e.m.Set(name, scheme), literals: e.literals}
}

// Declare a type for an identifier within the type environment.
//
// Type-variables which are not free within the environment will be generalized.
func (e *TypeEnv) Declare(name string, t types.Type) *TypeEnv {
	return e.Append(name, e.Generalize(t))
}

// Declare a type for an identifier within the type environment.
//
// Type-variables will not be generalized. They must not be named like the fresh type-variables of the
// name source used for inference (a0, a1, ... for types.GlobalNames); a clash makes inference treat the
// declared variable and a fresh one as the same variable.
func (e *TypeEnv) DeclareInvariant(name string, t types.Type) *TypeEnv {
	return e.Append(name, types.Mono(t))
}

// Remove the binding for an identifier.
func (e *TypeEnv) Remove(name string) *TypeEnv {
	m := e.m.Delete(name)
	if m == e.m {
		return e
	}
	return &TypeEnv{m: m, literals: e.literals}
}

// Apply a substitution to the type of every binding. Bindings which are unaffected by the substitution
// are shared with the receiver.
func (e *TypeEnv) Apply(s *types.Subst) *TypeEnv {
	if s.Len() == 0 {
		return e
	}
	m := e.m
	iter := e.m.Iterator()
	for !iter.Done() {
		k, v := iter.Next()
		scheme := v.(*types.Scheme)
		if next := scheme.Apply(s); next != scheme {
			m = m.Set(k, next)
		}
	}
	if m == e.m {
		return e
	}
	return &TypeEnv{m: m, literals: e.literals}
}

// FreeVars returns the names of all type-variables which are free within some binding of the environment.
func (e *TypeEnv) FreeVars() *set.Set[string] {
	free := set.New[string](8)
	iter := e.m.Iterator()
	for !iter.Done() {
		_, v := iter.Next()
		for _, tv := range v.(*types.Scheme).FreeVars() {
			free.Insert(tv.Name)
		}
	}
	return free
}

// Generalize t relative to the environment: all type-variables of t which are not free within the
// environment are quantified.
func (e *TypeEnv) Generalize(t types.Type) *types.Scheme {
	return typeutil.Generalize(e.FreeVars(), t)
}

// Iterate over bindings in the environment, sorted by identifier.
// If f returns false, iteration will be stopped.
func (e *TypeEnv) Range(f func(string, *types.Scheme) bool) {
	iter := e.m.Iterator()
	for !iter.Done() {
		k, v := iter.Next()
		if !f(k.(string), v.(*types.Scheme)) {
			return
		}
	}
}

// String returns the bindings of the environment: `{id : forall a0. (a0->a0), x : Int}`
func (e *TypeEnv) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	i := 0
	e.Range(func(name string, scheme *types.Scheme) bool {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(name)
		sb.WriteString(" : ")
		sb.WriteString(scheme.String())
		i++
		return true
	})
	sb.WriteByte('}')
	return sb.String()
}
