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
	"testing"

	"github.com/wdamron/hm/ast"
	"github.com/wdamron/hm/types"
)

func TestTypeEnvPersistence(t *testing.T) {
	tInt, tBool := types.NewCons("Int"), types.NewCons("Bool")
	e0 := NewTypeEnv()
	e1 := e0.DeclareInvariant("x", tInt)
	e2 := e1.DeclareInvariant("y", tBool)
	e3 := e2.DeclareInvariant("x", tBool)

	if e0.Len() != 0 || e1.Len() != 1 || e2.Len() != 2 || e3.Len() != 2 {
		t.Fatalf("lengths: %d %d %d %d", e0.Len(), e1.Len(), e2.Len(), e3.Len())
	}
	if _, ok := e1.Lookup("y"); ok {
		t.Fatalf("expected y to be unbound in e1")
	}
	if x, _ := e2.Lookup("x"); x.String() != "Int" {
		t.Fatalf("x: %s", x)
	}
	if x, _ := e3.Lookup("x"); x.String() != "Bool" {
		t.Fatalf("expected x to be shadowed: %s", x)
	}
	e4 := e3.Remove("x")
	if _, ok := e4.Lookup("x"); ok || e4.Len() != 1 {
		t.Fatalf("expected x to be removed")
	}
	if _, ok := e3.Lookup("x"); !ok {
		t.Fatalf("expected x to remain in e3")
	}
	if e4.Remove("missing") != e4 {
		t.Fatalf("expected removing a missing binding to return the same environment")
	}
	if s := e3.String(); s != "{x : Bool, y : Bool}" {
		t.Fatalf("env: %s", s)
	}
}

func TestTypeEnvApply(t *testing.T) {
	a, b := types.NewVar("a"), types.NewVar("b")
	env := NewTypeEnv().
		DeclareInvariant("f", types.NewArrow(a, b)).
		Append("id", types.NewScheme([]*types.Var{a}, types.NewArrow(a, a)))

	s := types.EmptySubst().Extend(a, types.NewCons("Int"))
	applied := env.Apply(s)
	if str := applied.String(); str != "{f : (Int->b), id : forall a. (a->a)}" {
		t.Fatalf("env: %s", str)
	}
	if str := env.String(); str != "{f : (a->b), id : forall a. (a->a)}" {
		t.Fatalf("expected env to be unchanged: %s", str)
	}
	if env.Apply(types.EmptySubst().Extend(types.NewVar("c"), types.NewCons("Int"))) != env {
		t.Fatalf("expected unaffected environment to be shared")
	}

	free := env.FreeVars()
	if free.Size() != 2 || !free.Contains("a") || !free.Contains("b") {
		t.Fatalf("free: %s", free)
	}
	if free := applied.FreeVars(); free.Size() != 1 || !free.Contains("b") {
		t.Fatalf("free: %s", free)
	}
}

func TestTypeEnvGeneralize(t *testing.T) {
	a, b, c := types.NewVar("a"), types.NewVar("b"), types.NewVar("c")
	env := NewTypeEnv().DeclareInvariant("x", a)

	if s := env.Generalize(types.NewArrow(a, types.NewArrow(b, c))).String(); s != "forall b c. (a->(b->c))" {
		t.Fatalf("scheme: %s", s)
	}
	if scheme := env.Generalize(a); !scheme.IsMono() {
		t.Fatalf("expected monotype: %s", scheme)
	}
	env = env.Declare("k", types.NewArrow(b, a))
	if k, _ := env.Lookup("k"); k.String() != "forall b. (b->a)" {
		t.Fatalf("k: %s", k)
	}
}

func TestTypeEnvLiterals(t *testing.T) {
	env := NewTypeEnv()
	if _, ok := env.Literal("1"); ok {
		t.Fatalf("expected no literal resolver")
	}
	env = env.WithLiterals(func(name string) (types.Type, bool) {
		if name == "one" {
			return types.NewCons("Int"), true
		}
		return nil, false
	}).DeclareInvariant("x", types.NewCons("Bool"))
	if ty, ok := env.Literal("one"); !ok || ty.String() != "Int" {
		t.Fatalf("literal: %v", ty)
	}
	if _, ok := env.Literal("two"); ok {
		t.Fatalf("unexpected literal")
	}
	if env.Remove("x").Apply(types.EmptySubst()).WithLiterals(nil).Len() != 0 {
		t.Fatalf("expected empty environment")
	}
}

func TestTypeEnvInvariantNames(t *testing.T) {
	expr := &ast.Lambda{Param: "y", Body: &ast.Var{Name: "x"}}
	infer := func(declared string) string {
		ti := NewContext()
		ti.SetNameSource(types.NewCounter("t"))
		ty, err := ti.Infer(expr, NewTypeEnv().DeclareInvariant("x", types.NewVar(declared)))
		if err != nil {
			t.Fatal(err)
		}
		return types.CanonicalString(ty)
	}
	if s := infer("r"); s != "('a->'b)" {
		t.Fatalf("type: %s", s)
	}
	// A declared variable named like a fresh one is the same variable:
	if s := infer("t1"); s != "('a->'a)" {
		t.Fatalf("type: %s", s)
	}
}
