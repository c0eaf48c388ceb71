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

package typeutil

import (
	"github.com/wdamron/hm/types"
)

// DefaultMaxUnifyDepth bounds the recursion depth of unification when no other limit is configured.
const DefaultMaxUnifyDepth = 10000

// Unify computes the most general unifier of s(t) and s(u), extending s.
//
// If unification fails, s is left unchanged and no partial substitution is returned. The only failures are
// *types.OccursError, *types.MismatchError, and *types.DepthError (when types are nested more deeply than
// DefaultMaxUnifyDepth).
func Unify(t, u types.Type, s *types.Subst) (*types.Subst, error) {
	return unify(t, u, s, 0, DefaultMaxUnifyDepth)
}

// UnifyLimit is Unify with an explicit recursion limit. A limit <= 0 disables the limit.
func UnifyLimit(t, u types.Type, s *types.Subst, limit int) (*types.Subst, error) {
	return unify(t, u, s, 0, limit)
}

func unify(t, u types.Type, s *types.Subst, depth, limit int) (*types.Subst, error) {
	if limit > 0 && depth > limit {
		return nil, &types.DepthError{Limit: limit}
	}
	st, su := s.Apply(t), s.Apply(u)

	if a, ok := st.(*types.Var); ok {
		if b, ok := su.(*types.Var); ok && a.Name == b.Name {
			return s, nil
		}
		// prevent cyclical types:
		if types.Occurs(a, su) {
			return nil, &types.OccursError{Var: a, Type: su}
		}
		return s.Extend(a, su), nil
	}
	if _, ok := su.(*types.Var); ok {
		return unify(u, t, s, depth+1, limit)
	}

	switch a := st.(type) {
	case *types.Arrow:
		b, ok := su.(*types.Arrow)
		if !ok {
			break
		}
		// Return types are unified before argument types:
		s1, err := unify(a.To, b.To, s, depth+1, limit)
		if err != nil {
			return nil, err
		}
		return unify(a.From, b.From, s1, depth+1, limit)

	case *types.Cons:
		b, ok := su.(*types.Cons)
		if !ok || a.Name != b.Name || a.Arity() != b.Arity() {
			break
		}
		next := s
		for i := range a.Args {
			var err error
			if next, err = unify(a.Args[i], b.Args[i], next, depth+1, limit); err != nil {
				return nil, err
			}
		}
		return next, nil
	}

	return nil, &types.MismatchError{Left: st, Right: su}
}
