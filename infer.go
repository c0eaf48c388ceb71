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
	"errors"

	"github.com/wdamron/hm/ast"
	"github.com/wdamron/hm/internal/typeutil"
	"github.com/wdamron/hm/types"
)

func (ti *InferenceContext) unify(e ast.Expr, t, u types.Type, s *types.Subst) (*types.Subst, error) {
	next, err := typeutil.UnifyLimit(t, u, s, ti.maxDepth)
	if err != nil {
		ti.invalid, ti.err = e, err
		return nil, err
	}
	return next, nil
}

// tp checks e against the expected type t, extending s.
func (ti *InferenceContext) tp(env *TypeEnv, e ast.Expr, t types.Type, s *types.Subst) (*types.Subst, error) {
	switch e := e.(type) {
	case *ast.Var:
		var u types.Type
		if scheme, ok := env.Lookup(e.Name); ok {
			u = ti.varTracker.Instantiate(scheme)
		} else if lit, ok := env.Literal(e.Name); ok {
			u = lit
		} else {
			ti.invalid, ti.err = e, &types.UndefinedError{Name: e.Name}
			return nil, ti.err
		}
		return ti.unify(e, u, t, s)

	case *ast.Lambda:
		a, b := ti.varTracker.NewVar(), ti.varTracker.NewVar()
		s1, err := ti.unify(e, t, types.NewArrow(a, b), s)
		if err != nil {
			return nil, err
		}
		return ti.tp(env.Append(e.Param, types.Mono(a)), e.Body, b, s1)

	case *ast.Apply:
		a := ti.varTracker.NewVar()
		s1, err := ti.tp(env, e.Func, types.NewArrow(a, t), s)
		if err != nil {
			return nil, err
		}
		return ti.tp(env, e.Arg, a, s1)

	case *ast.Let:
		a := ti.varTracker.NewVar()
		s1, err := ti.tp(env, e.Value, a, s)
		if err != nil {
			return nil, err
		}
		scheme := env.Apply(s1).Generalize(s1.Apply(a))
		return ti.tp(env.Append(e.Var, scheme), e.Body, t, s1)

	case *ast.LetRec:
		a, b := ti.varTracker.NewVar(), ti.varTracker.NewVar()
		s1, err := ti.tp(env.Append(e.Var, types.Mono(a)), e.Value, b, s)
		if err != nil {
			return nil, err
		}
		s2, err := ti.unify(e, a, b, s1)
		if err != nil {
			return nil, err
		}
		scheme := env.Apply(s2).Generalize(s2.Apply(a))
		return ti.tp(env.Append(e.Var, scheme), e.Body, t, s2)
	}

	name := "<nil>"
	if e != nil {
		name = e.ExprName()
	}
	ti.invalid, ti.err = e, errors.New("Unhandled expression type ("+name+")")
	return nil, ti.err
}
