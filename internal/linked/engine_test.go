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
	"testing"

	"github.com/wdamron/hm/ast"
	"github.com/wdamron/hm/types"
)

type mapEnv map[string]*types.Scheme

func (e mapEnv) Lookup(name string) (*types.Scheme, bool) {
	s, ok := e[name]
	return s, ok
}

func (e mapEnv) Literal(name string) (types.Type, bool) {
	if name == "1" {
		return types.NewCons("Int"), true
	}
	return nil, false
}

var (
	tInt  = types.NewCons("Int")
	tBool = types.NewCons("Bool")
)

func testEnv() mapEnv {
	a := types.NewVar("a")
	return mapEnv{
		"true": types.Mono(tBool),
		"zero": types.Mono(tInt),
		"if":   types.Closed(types.NewArrow(tBool, types.NewArrow(a, types.NewArrow(a, a)))),
		"r":    types.Mono(types.NewVar("r")),
	}
}

func v(name string) *ast.Var { return &ast.Var{Name: name} }

func app(f ast.Expr, args ...ast.Expr) ast.Expr {
	for _, arg := range args {
		f = &ast.Apply{Func: f, Arg: arg}
	}
	return f
}

func infer(t *testing.T, expr ast.Expr) (types.Type, *Engine, error) {
	t.Helper()
	en := NewEngine(testEnv(), types.NewCounter("t"), 0)
	ty, err := en.Infer(expr)
	return ty, en, err
}

func TestEngineIdentity(t *testing.T) {
	ty, _, err := infer(t, &ast.Lambda{Param: "x", Body: v("x")})
	if err != nil {
		t.Fatal(err)
	}
	// Names are allocated on export:
	if s := types.TypeString(ty); s != "(t0->t0)" {
		t.Fatalf("type: %s", s)
	}
}

func TestEngineLetPolymorphism(t *testing.T) {
	id := v("id")
	expr := &ast.Let{
		Var:   "id",
		Value: &ast.Lambda{Param: "x", Body: v("x")},
		Body:  app(v("if"), app(id, v("true")), app(id, v("1")), app(id, v("zero"))),
	}
	ty, _, err := infer(t, expr)
	if err != nil {
		t.Fatal(err)
	}
	if s := types.TypeString(ty); s != "Int" {
		t.Fatalf("type: %s", s)
	}
}

func TestEngineLevels(t *testing.T) {
	// y shares the type of the lambda-bound x, so it must not be generalized:
	expr := &ast.Lambda{Param: "x", Body: &ast.Let{
		Var:   "y",
		Value: v("x"),
		Body:  app(v("if"), v("true"), v("y"), v("zero")),
	}}
	ty, _, err := infer(t, expr)
	if err != nil {
		t.Fatal(err)
	}
	if s := types.TypeString(ty); s != "(Int->Int)" {
		t.Fatalf("type: %s", s)
	}

	// Free type-variables of the outer environment are never generalized:
	ty, _, err = infer(t, &ast.Let{Var: "s", Value: v("r"), Body: app(v("if"), v("true"), v("s"), v("zero"))})
	if err != nil {
		t.Fatal(err)
	}
	if s := types.TypeString(ty); s != "Int" {
		t.Fatalf("type: %s", s)
	}
}

func TestEngineLetRec(t *testing.T) {
	f := v("f")
	expr := &ast.LetRec{
		Var:   "f",
		Value: &ast.Lambda{Param: "x", Body: app(f, v("x"))},
		Body:  app(v("if"), app(f, v("true")), app(f, v("zero")), app(f, v("zero"))),
	}
	ty, _, err := infer(t, expr)
	if err != nil {
		t.Fatal(err)
	}
	if s := types.CanonicalString(ty); s != "'a" {
		t.Fatalf("type: %s", s)
	}
}

func TestEngineErrors(t *testing.T) {
	nope := v("nope")
	_, en, err := infer(t, app(nope, v("true")))
	var undefined *types.UndefinedError
	if !errors.As(err, &undefined) || en.InvalidExpr() != ast.Expr(nope) {
		t.Fatalf("expected undefined symbol, found %v", err)
	}

	f := v("f")
	_, _, err = infer(t, &ast.Lambda{Param: "f", Body: app(v("if"), app(f, v("true")), app(f, v("zero")), v("zero"))})
	var mismatch *types.MismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected mismatch, found %v", err)
	}

	x := v("x")
	_, en, err = infer(t, &ast.Lambda{Param: "x", Body: app(v("x"), x)})
	var occurs *types.OccursError
	if !errors.As(err, &occurs) || en.InvalidExpr() != ast.Expr(x) {
		t.Fatalf("expected occurs check failure, found %v", err)
	}
	if s := err.Error(); s != "Implicitly recursive type: t0 occurs in (t0->t1)" {
		t.Fatalf("error: %s", s)
	}

	if _, _, err := infer(t, nil); err == nil {
		t.Fatalf("expected empty expression error")
	}
}

func TestEngineDepthLimit(t *testing.T) {
	var deep, other types.Type = tInt, tBool
	for i := 0; i < 10; i++ {
		deep, other = types.NewArrow(tInt, deep), types.NewArrow(tInt, other)
	}
	env := testEnv()
	env["deep"], env["other"] = types.Mono(deep), types.Mono(other)
	expr := app(v("if"), v("true"), v("deep"), v("other"))

	_, err := NewEngine(env, types.NewCounter("t"), 3).Infer(expr)
	var depth *types.DepthError
	if !errors.As(err, &depth) || depth.Limit != 3 {
		t.Fatalf("expected depth error, found %v", err)
	}
	_, err = NewEngine(env, types.NewCounter("t"), 0).Infer(expr)
	var mismatch *types.MismatchError
	if !errors.As(err, &mismatch) || err.Error() != "Failed to unify Bool with Int" {
		t.Fatalf("expected mismatch, found %v", err)
	}
}

func TestPrune(t *testing.T) {
	c := &cons{name: "Int"}
	a := &tvar{level: 1}
	b := &tvar{level: 1, link: c}
	a.link = b
	if prune(a) != node(c) || a.link != node(c) {
		t.Fatalf("expected path compression")
	}
	unbound := &tvar{level: 1}
	if prune(unbound) != node(unbound) {
		t.Fatalf("expected unbound variable to be its own representative")
	}
}
