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

// Package predef provides a standard type-environment of primitive bindings for booleans, integers,
// lists, and fixed points.
package predef

import (
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/wdamron/hm"
	"github.com/wdamron/hm/construct"
	"github.com/wdamron/hm/program"
	"github.com/wdamron/hm/types"
)

var (
	Bool = types.NewCons("Bool")
	Int  = types.NewCons("Int")
)

// List<t>
func List(t types.Type) *types.Cons { return types.NewCons("List", t) }

var env = build()

func build() *hm.TypeEnv {
	a, fn := types.NewVar("a"), construct.TArrowN

	e := hm.NewTypeEnv().WithLiterals(IntLiteral)
	for _, b := range []struct {
		name string
		t    types.Type
	}{
		{"true", Bool},
		{"false", Bool},
		{"if", fn(Bool, a, a, a)},
		{"zero", Int},
		{"succ", fn(Int, Int)},
		{"prev", fn(Int, Int)},
		{"isZero", fn(Int, Bool)},
		{"times", fn(Int, Int, Int)},
		{"nil", List(a)},
		{"cons", fn(a, List(a), List(a))},
		{"isEmpty", fn(List(a), Bool)},
		{"head", fn(List(a), a)},
		{"tail", fn(List(a), List(a))},
		{"fix", fn(fn(a, a), a)},
	} {
		e = e.Append(b.name, types.Closed(b.t))
	}
	return e
}

// Env returns the standard type-environment. Integer literals such as "5" or "-1" resolve to Int.
func Env() *hm.TypeEnv { return env }

// IntLiteral resolves decimal integer literals to Int.
func IntLiteral(name string) (types.Type, bool) {
	if _, err := strconv.ParseInt(name, 10, 64); err != nil {
		return nil, false
	}
	return Int, true
}

// Load declares the bindings of a YAML mapping from identifiers to type nodes within base
// (see package program for the format of type nodes).
func Load(base *hm.TypeEnv, r io.Reader) (*hm.TypeEnv, error) {
	var node yaml.Node
	if err := yaml.NewDecoder(r).Decode(&node); err != nil {
		if err == io.EOF {
			return base, nil
		}
		return nil, fmt.Errorf("loading bindings: %w", err)
	}
	bindings, err := program.DecodeBindings(&node)
	if err != nil {
		return nil, fmt.Errorf("loading bindings: %w", err)
	}
	p := program.Program{Bindings: bindings}
	return p.Env(base), nil
}
