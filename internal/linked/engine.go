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

package linked

import (
	"errors"

	"github.com/benbjohnson/immutable"

	"github.com/wdamron/hm/ast"
	"github.com/wdamron/hm/types"
)

// Env is the outer type-environment for inference.
type Env interface {
	Lookup(name string) (*types.Scheme, bool)
	Literal(name string) (types.Type, bool)
}

// Engine infers types by binding type-variables in place. An engine performs a single inference run
// and cannot be used concurrently.
//
// Sub-terms are checked against expected types in the same order as substitution-based inference, so
// both engines fail on the same sub-term with the same kind of error.
type Engine struct {
	env   Env
	names types.NameSource
	limit int
	level int

	imported map[*types.Scheme]node
	outer    map[string]*tvar
	inst     map[*tvar]*tvar

	invalid ast.Expr
}

// Create an engine which infers types within env. Type-variables of inferred types are named from names.
// When limit > 0, unification fails with *types.DepthError for types nested more deeply than limit.
func NewEngine(env Env, names types.NameSource, limit int) *Engine {
	if names == nil {
		names = types.GlobalNames()
	}
	return &Engine{
		env:      env,
		names:    names,
		limit:    limit,
		imported: make(map[*types.Scheme]node),
		outer:    make(map[string]*tvar),
		inst:     make(map[*tvar]*tvar),
	}
}

// Get the expression which caused inference to fail.
func (en *Engine) InvalidExpr() ast.Expr { return en.invalid }

// Infer the type of expr.
func (en *Engine) Infer(expr ast.Expr) (types.Type, error) {
	if expr == nil {
		return nil, errors.New("Empty expression")
	}
	en.level, en.invalid = topLevel+1, nil
	a := en.newVar()
	if err := en.tp(immutable.NewMap(nil), expr, a); err != nil {
		return nil, err
	}
	return en.export(a), nil
}

func (en *Engine) newVar() *tvar { return &tvar{level: en.level} }

func (en *Engine) fail(e ast.Expr, err error) error {
	en.invalid = e
	return err
}

func (en *Engine) tp(locals *immutable.Map, e ast.Expr, t node) error {
	switch e := e.(type) {
	case *ast.Var:
		u, err := en.lookup(locals, e.Name)
		if err != nil {
			return en.fail(e, err)
		}
		if err = en.unify(u, t, 0); err != nil {
			return en.fail(e, err)
		}
		return nil

	case *ast.Lambda:
		a, b := en.newVar(), en.newVar()
		if err := en.unify(t, &arrow{from: a, to: b}, 0); err != nil {
			return en.fail(e, err)
		}
		return en.tp(locals.Set(e.Param, a), e.Body, b)

	case *ast.Apply:
		a := en.newVar()
		if err := en.tp(locals, e.Func, &arrow{from: a, to: t}); err != nil {
			return err
		}
		return en.tp(locals, e.Arg, a)

	case *ast.Let:
		en.level++
		a := en.newVar()
		err := en.tp(locals, e.Value, a)
		en.level--
		if err != nil {
			return err
		}
		generalize(en.level, a)
		return en.tp(locals.Set(e.Var, a), e.Body, t)

	case *ast.LetRec:
		en.level++
		a, b := en.newVar(), en.newVar()
		err := en.tp(locals.Set(e.Var, a), e.Value, b)
		if err == nil {
			if err = en.unify(a, b, 0); err != nil {
				en.invalid = e
			}
		}
		en.level--
		if err != nil {
			return err
		}
		generalize(en.level, a)
		return en.tp(locals.Set(e.Var, a), e.Body, t)
	}

	name := "<nil>"
	if e != nil {
		name = e.ExprName()
	}
	return en.fail(e, errors.New("Unhandled expression type ("+name+")"))
}

// Lookup the type of an identifier, instantiating generic type-variables at the current level.
func (en *Engine) lookup(locals *immutable.Map, name string) (node, error) {
	if n, ok := locals.Get(name); ok {
		return en.instantiate(n.(node)), nil
	}
	if scheme, ok := en.env.Lookup(name); ok {
		n, ok := en.imported[scheme]
		if !ok {
			bound := make(map[string]*tvar, len(scheme.Vars))
			for _, v := range scheme.Vars {
				bound[v.Name] = &tvar{level: genericLevel}
			}
			n = importType(scheme.Type, bound, en.outer)
			en.imported[scheme] = n
		}
		return en.instantiate(n), nil
	}
	if t, ok := en.env.Literal(name); ok {
		return importType(t, nil, en.outer), nil
	}
	return nil, &types.UndefinedError{Name: name}
}

func (en *Engine) instantiate(n node) node {
	if !isGeneric(n) {
		return n
	}
	clear(en.inst)
	return en.instantiateRecursive(n)
}

func (en *Engine) instantiateRecursive(n node) node {
	switch n := prune(n).(type) {
	case *tvar:
		if n.level != genericLevel {
			return n
		}
		if tv, ok := en.inst[n]; ok {
			return tv
		}
		tv := en.newVar()
		en.inst[n] = tv
		return tv
	case *arrow:
		return &arrow{from: en.instantiateRecursive(n.from), to: en.instantiateRecursive(n.to)}
	case *cons:
		if len(n.args) == 0 {
			return n
		}
		args := make([]node, len(n.args))
		for i, arg := range n.args {
			args[i] = en.instantiateRecursive(arg)
		}
		return &cons{name: n.name, args: args}
	}
	panic("unexpected type " + n.nodeName())
}

func (en *Engine) unify(t, u node, depth int) error {
	if en.limit > 0 && depth > en.limit {
		return &types.DepthError{Limit: en.limit}
	}
	st, su := prune(t), prune(u)

	if a, ok := st.(*tvar); ok {
		if b, ok := su.(*tvar); ok && a == b {
			return nil
		}
		// prevent cyclical types:
		if occursAdjust(a, su) {
			return &types.OccursError{Var: en.export(a).(*types.Var), Type: en.export(su)}
		}
		a.link = su
		return nil
	}
	if _, ok := su.(*tvar); ok {
		return en.unify(u, t, depth+1)
	}

	switch a := st.(type) {
	case *arrow:
		b, ok := su.(*arrow)
		if !ok {
			break
		}
		// Return types are unified before argument types:
		if err := en.unify(a.to, b.to, depth+1); err != nil {
			return err
		}
		return en.unify(a.from, b.from, depth+1)

	case *cons:
		b, ok := su.(*cons)
		if !ok || a.name != b.name || len(a.args) != len(b.args) {
			break
		}
		for i := range a.args {
			if err := en.unify(a.args[i], b.args[i], depth+1); err != nil {
				return err
			}
		}
		return nil
	}

	return &types.MismatchError{Left: en.export(st), Right: en.export(su)}
}

// Convert n to a type, naming unbound type-variables on first export.
func (en *Engine) export(n node) types.Type {
	switch n := prune(n).(type) {
	case *tvar:
		if n.name == "" {
			n.name = en.names.NewVar().Name
		}
		return &types.Var{Name: n.name}
	case *arrow:
		return &types.Arrow{From: en.export(n.from), To: en.export(n.to)}
	case *cons:
		c := &types.Cons{Name: n.name}
		if len(n.args) > 0 {
			c.Args = make([]types.Type, len(n.args))
			for i, arg := range n.args {
				c.Args[i] = en.export(arg)
			}
		}
		return c
	}
	panic("unexpected type " + n.nodeName())
}
