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
	"sync"
	"testing"
)

var (
	tInt  = NewCons("Int")
	tBool = NewCons("Bool")
)

func TestTypeString(t *testing.T) {
	a, b := NewVar("a"), NewVar("b")
	for _, c := range []struct {
		t    Type
		want string
	}{
		{a, "a"},
		{tInt, "Int"},
		{NewArrow(a, b), "(a->b)"},
		{NewArrow(NewArrow(a, b), NewCons("List", a)), "((a->b)->List<a>)"},
		{NewCons("Pair", tInt, NewArrow(tBool, b)), "Pair<Int,(Bool->b)>"},
	} {
		if s := TypeString(c.t); s != c.want {
			t.Fatalf("type: %s, expected %s", s, c.want)
		}
		if s := c.t.String(); s != c.want {
			t.Fatalf("type: %s, expected %s", s, c.want)
		}
	}
}

func TestCanonicalString(t *testing.T) {
	a, b := NewVar("a17"), NewVar("a3")
	ty := NewArrow(a, NewArrow(b, NewCons("Pair", a, b)))
	if s := CanonicalString(ty); s != "('a->('b->Pair<'a,'b>))" {
		t.Fatalf("type: %s", s)
	}
	if s := TypeString(Canonical(ty)); s != "('a->('b->Pair<'a,'b>))" {
		t.Fatalf("type: %s", s)
	}
	// Printing must not retain names between calls:
	if s := CanonicalString(NewArrow(b, a)); s != "('a->'b)" {
		t.Fatalf("type: %s", s)
	}
	if s := getVarName(27); s != "'b1" {
		t.Fatalf("name: %s", s)
	}
}

func TestEqual(t *testing.T) {
	a := NewVar("a")
	if !Equal(NewArrow(a, tInt), NewArrow(NewVar("a"), NewCons("Int"))) {
		t.Fatalf("expected equal arrows")
	}
	if Equal(NewArrow(a, tInt), NewArrow(NewVar("b"), tInt)) {
		t.Fatalf("expected variables with different names to differ")
	}
	if NewCons("List", tInt).Arity() != 1 || tInt.Arity() != 0 {
		t.Fatalf("unexpected arity")
	}
	if Equal(NewCons("List", tInt), NewCons("List", tInt, tInt)) {
		t.Fatalf("expected constructors with different arities to differ")
	}
	if Equal(tInt, NewArrow(tInt, tInt)) {
		t.Fatalf("expected constructor and arrow to differ")
	}
}

func TestFreeVarsOrder(t *testing.T) {
	a, b, c := NewVar("a"), NewVar("b"), NewVar("c")
	vars := FreeVars(NewArrow(NewCons("Pair", b, a), NewArrow(a, NewArrow(c, b))))
	if len(vars) != 3 || vars[0].Name != "b" || vars[1].Name != "a" || vars[2].Name != "c" {
		t.Fatalf("vars: %v", vars)
	}
	if vars := FreeVars(tInt); len(vars) != 0 {
		t.Fatalf("vars: %v", vars)
	}
	if !Occurs(c, NewCons("List", NewArrow(tInt, c))) || Occurs(c, NewArrow(a, b)) {
		t.Fatalf("unexpected occurs result")
	}
}

func TestSubstPersistence(t *testing.T) {
	a, b := NewVar("a"), NewVar("b")
	s0 := EmptySubst()
	s1 := s0.Extend(a, tInt)
	s2 := s1.Extend(b, NewArrow(a, a))

	if s0.Len() != 0 || s1.Len() != 1 || s2.Len() != 2 {
		t.Fatalf("lengths: %d %d %d", s0.Len(), s1.Len(), s2.Len())
	}
	if s1.Lookup(b) != Type(b) {
		t.Fatalf("expected b to be unbound in s1")
	}
	if s := TypeString(s2.Apply(b)); s != "(Int->Int)" {
		t.Fatalf("type: %s", s)
	}
	if s := TypeString(s2.Lookup(b)); s != "(a->a)" {
		t.Fatalf("lookup: %s", s)
	}
	if ty := NewArrow(a, b); s0.Apply(ty) != Type(ty) {
		t.Fatalf("expected the empty substitution to be the identity")
	}
	unbound := NewArrow(NewVar("c"), tInt)
	if s2.Apply(unbound) != Type(unbound) {
		t.Fatalf("expected unaffected types to be shared")
	}
	if s := s2.String(); s != "{a := Int, b := (a->a)}" {
		t.Fatalf("subst: %s", s)
	}
}

func TestSchemeNewInstance(t *testing.T) {
	a, b, free := NewVar("a"), NewVar("b"), NewVar("f")
	scheme := NewScheme([]*Var{a, b}, NewArrow(a, NewArrow(b, NewArrow(free, a))))
	names := NewCounter("t")

	i1 := scheme.NewInstance(names)
	i2 := scheme.NewInstance(names)
	if s := TypeString(i1); s != "(t0->(t1->(f->t0)))" {
		t.Fatalf("instance: %s", s)
	}
	if s := TypeString(i2); s != "(t2->(t3->(f->t2)))" {
		t.Fatalf("instance: %s", s)
	}
	if s := TypeString(scheme.Type); s != "(a->(b->(f->a)))" {
		t.Fatalf("expected scheme to be unchanged: %s", s)
	}

	// Fresh names which collide with quantified names are not renamed twice:
	swap := NewScheme([]*Var{NewVar("t1"), NewVar("t0")}, NewArrow(NewVar("t1"), NewVar("t0")))
	if s := TypeString(swap.NewInstance(NewCounter("t"))); s != "(t0->t1)" {
		t.Fatalf("instance: %s", s)
	}

	mono := Mono(NewArrow(a, a))
	if mono.NewInstance(names) != mono.Type {
		t.Fatalf("expected monotype instance to be the type itself")
	}
}

func TestSchemeApply(t *testing.T) {
	a, b := NewVar("a"), NewVar("b")
	scheme := NewScheme([]*Var{a}, NewArrow(a, b))
	s := EmptySubst().Extend(a, tInt).Extend(b, tBool)

	next := scheme.Apply(s)
	if str := next.String(); str != "forall a. (a->Bool)" {
		t.Fatalf("scheme: %s", str)
	}
	if str := scheme.String(); str != "forall a. (a->b)" {
		t.Fatalf("expected scheme to be unchanged: %s", str)
	}
	if free := scheme.FreeVars(); len(free) != 1 || free[0].Name != "b" {
		t.Fatalf("free: %v", free)
	}
	if free := next.FreeVars(); len(free) != 0 {
		t.Fatalf("free: %v", free)
	}
	if str := Closed(NewArrow(b, a)).String(); str != "forall b a. (b->a)" {
		t.Fatalf("scheme: %s", str)
	}
	if str := Mono(tInt).String(); str != "Int" {
		t.Fatalf("scheme: %s", str)
	}
}

func TestErrorMessages(t *testing.T) {
	for _, c := range []struct {
		err  error
		want string
	}{
		{&UndefinedError{Name: "nope"}, "Variable nope not found"},
		{&MismatchError{Left: tBool, Right: tInt}, "Failed to unify Bool with Int"},
		{&OccursError{Var: NewVar("a"), Type: NewArrow(NewVar("a"), tInt)}, "Implicitly recursive type: a occurs in (a->Int)"},
		{&DepthError{Limit: 10}, "Maximum nesting depth of 10 exceeded"},
	} {
		if s := c.err.Error(); s != c.want {
			t.Fatalf("error: %s, expected %s", s, c.want)
		}
	}
}

func TestCounterConcurrent(t *testing.T) {
	names := NewCounter("x")
	const workers, perWorker = 8, 100

	var mu sync.Mutex
	seen := make(map[string]bool, workers*perWorker)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := make([]string, 0, perWorker)
			for i := 0; i < perWorker; i++ {
				local = append(local, names.NewVar().Name)
			}
			mu.Lock()
			for _, name := range local {
				seen[name] = true
			}
			mu.Unlock()
		}()
	}
	wg.Wait()

	if len(seen) != workers*perWorker {
		t.Fatalf("expected %d distinct names, found %d", workers*perWorker, len(seen))
	}
	if names.Next() != workers*perWorker {
		t.Fatalf("next: %d", names.Next())
	}
	if a, b := Fresh(), Fresh(); a.Name == b.Name {
		t.Fatalf("expected distinct global names")
	}
}
