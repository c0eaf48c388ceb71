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
	"errors"
	"testing"

	"github.com/hashicorp/go-set/v3"

	"github.com/wdamron/hm/types"
)

var (
	tInt  = types.NewCons("Int")
	tBool = types.NewCons("Bool")
)

func TestUnifyAgreement(t *testing.T) {
	a, b, c := types.NewVar("a"), types.NewVar("b"), types.NewVar("c")
	for _, pair := range [][2]types.Type{
		{a, tInt},
		{tInt, a},
		{a, b},
		{types.NewArrow(a, b), types.NewArrow(tInt, types.NewArrow(a, c))},
		{types.NewCons("List", a), types.NewCons("List", types.NewArrow(b, tBool))},
		{types.NewCons("Pair", a, b), types.NewCons("Pair", b, tInt)},
		{types.NewArrow(a, a), types.NewArrow(b, b)},
	} {
		s, err := Unify(pair[0], pair[1], types.EmptySubst())
		if err != nil {
			t.Fatalf("unify %s with %s: %v", pair[0], pair[1], err)
		}
		left, right := s.Apply(pair[0]), s.Apply(pair[1])
		if !types.Equal(left, right) {
			t.Fatalf("unify %s with %s: %s != %s", pair[0], pair[1], left, right)
		}
	}
}

func TestUnifyBindsVariable(t *testing.T) {
	a := types.NewVar("a")
	s, err := Unify(tInt, a, types.EmptySubst())
	if err != nil {
		t.Fatal(err)
	}
	if s.Len() != 1 || types.TypeString(s.Lookup(a)) != "Int" {
		t.Fatalf("subst: %s", s)
	}
	same, err := Unify(a, a, s)
	if err != nil || same != s {
		t.Fatalf("expected unifying a variable with itself to return the same substitution")
	}
}

func TestUnifyOccursCheck(t *testing.T) {
	a, b := types.NewVar("a"), types.NewVar("b")
	s := types.EmptySubst().Extend(b, tBool)
	_, err := Unify(a, types.NewArrow(a, b), s)
	var occurs *types.OccursError
	if !errors.As(err, &occurs) {
		t.Fatalf("expected occurs error, found %v", err)
	}
	if occurs.Var.Name != "a" || types.TypeString(occurs.Type) != "(a->Bool)" {
		t.Fatalf("error: %v", err)
	}
	if s.Len() != 1 {
		t.Fatalf("expected substitution to be unchanged")
	}
}

func TestUnifyMismatch(t *testing.T) {
	for _, pair := range [][2]types.Type{
		{tInt, tBool},
		{types.NewCons("List", tInt), types.NewCons("List", tInt, tInt)},
		{types.NewArrow(tInt, tInt), tInt},
		{tInt, types.NewArrow(tInt, tInt)},
	} {
		_, err := Unify(pair[0], pair[1], types.EmptySubst())
		var mismatch *types.MismatchError
		if !errors.As(err, &mismatch) {
			t.Fatalf("unify %s with %s: expected mismatch, found %v", pair[0], pair[1], err)
		}
	}
}

func TestUnifyReturnTypeFirst(t *testing.T) {
	_, err := Unify(types.NewArrow(tInt, tBool), types.NewArrow(tBool, tInt), types.EmptySubst())
	if err == nil || err.Error() != "Failed to unify Bool with Int" {
		t.Fatalf("error: %v", err)
	}
}

func TestUnifyAtomicFailure(t *testing.T) {
	a, b := types.NewVar("a"), types.NewVar("b")
	s := types.EmptySubst()
	// a := Int succeeds before Bool fails to unify with Int:
	_, err := Unify(types.NewCons("Pair", a, tBool), types.NewCons("Pair", tInt, tInt), s)
	if err == nil {
		t.Fatalf("expected failure")
	}
	if s.Len() != 0 || s.Lookup(a) != types.Type(a) {
		t.Fatalf("expected substitution to be unchanged: %s", s)
	}
	if _, err := Unify(a, b, s); err != nil {
		t.Fatal(err)
	}
}

func TestUnifyDepthLimit(t *testing.T) {
	var deep, other types.Type = tInt, tBool
	for i := 0; i < 20; i++ {
		deep, other = types.NewArrow(tInt, deep), types.NewArrow(tInt, other)
	}
	_, err := UnifyLimit(deep, other, types.EmptySubst(), 5)
	var depth *types.DepthError
	if !errors.As(err, &depth) || depth.Limit != 5 {
		t.Fatalf("expected depth error, found %v", err)
	}
	if _, err := UnifyLimit(deep, deep, types.EmptySubst(), 0); err != nil {
		t.Fatal(err)
	}
}

func TestGeneralize(t *testing.T) {
	a, b := types.NewVar("a"), types.NewVar("b")
	envFree := set.From([]string{"a"})
	scheme := Generalize(envFree, types.NewArrow(a, types.NewArrow(b, b)))
	if s := scheme.String(); s != "forall b. (a->(b->b))" {
		t.Fatalf("scheme: %s", s)
	}
	if scheme := Generalize(envFree, types.NewArrow(a, tInt)); !scheme.IsMono() {
		t.Fatalf("expected monotype, found %s", scheme)
	}
}

func TestVarTracker(t *testing.T) {
	vt := VarTracker{Names: types.NewCounter("v")}
	scheme := types.NewScheme([]*types.Var{types.NewVar("a")}, types.NewArrow(types.NewVar("a"), types.NewVar("a")))
	if s := types.TypeString(vt.Instantiate(scheme)); s != "(v0->v0)" {
		t.Fatalf("instance: %s", s)
	}
	if v := vt.NewVar(); v.Name != "v1" {
		t.Fatalf("var: %s", v.Name)
	}
	var global VarTracker
	if a, b := global.NewVar(), global.NewVar(); a.Name == b.Name {
		t.Fatalf("vars: %s, %s", a.Name, b.Name)
	}
}
