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

package program

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/wdamron/hm/ast"
	"github.com/wdamron/hm/types"
)

// Type nodes:
//
//	{var: a}                           type-variable
//	Int or {cons: Int}                 type constant
//	{cons: List, args: [Int]}          type constructor
//	{arrow: [Int, Int, Bool]}          function type; right-associative: (Int->(Int->Bool))
type typeNode struct {
	types.Type
}

type typeSpec struct {
	Var   string     `yaml:"var"`
	Cons  string     `yaml:"cons"`
	Args  []typeNode `yaml:"args"`
	Arrow []typeNode `yaml:"arrow"`
}

func (n *typeNode) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		if value.Value == "" {
			return fmt.Errorf("line %d: empty type", value.Line)
		}
		n.Type = types.NewCons(value.Value)
		return nil
	}
	var spec typeSpec
	if err := value.Decode(&spec); err != nil {
		return err
	}
	forms := 0
	for _, set := range [...]bool{spec.Var != "", spec.Cons != "", spec.Arrow != nil} {
		if set {
			forms++
		}
	}
	if forms != 1 {
		return fmt.Errorf("line %d: type must have exactly one of var, cons, or arrow", value.Line)
	}
	if spec.Args != nil && spec.Cons == "" {
		return fmt.Errorf("line %d: args are only valid with cons", value.Line)
	}

	switch {
	case spec.Var != "":
		n.Type = types.NewVar(spec.Var)
	case spec.Cons != "":
		args := make([]types.Type, len(spec.Args))
		for i, arg := range spec.Args {
			if arg.Type == nil {
				return fmt.Errorf("line %d: args[%d] of %s is empty", value.Line, i, spec.Cons)
			}
			args[i] = arg.Type
		}
		n.Type = types.NewCons(spec.Cons, args...)
	default:
		if len(spec.Arrow) < 2 {
			return fmt.Errorf("line %d: arrow requires at least 2 types", value.Line)
		}
		for i, arg := range spec.Arrow {
			if arg.Type == nil {
				return fmt.Errorf("line %d: arrow[%d] is empty", value.Line, i)
			}
		}
		t := spec.Arrow[len(spec.Arrow)-1].Type
		for i := len(spec.Arrow) - 2; i >= 0; i-- {
			t = types.NewArrow(spec.Arrow[i].Type, t)
		}
		n.Type = t
	}
	return nil
}

// Term nodes:
//
//	x or {var: x}                                  variable
//	{lambda: {params: [x, y], body: ...}}          abstraction; curried over params
//	{apply: [f, x, y]}                             application; left-associative: ((f x) y)
//	{let: {name: x, value: ..., body: ...}}        let-binding
//	{letrec: {name: f, value: ..., body: ...}}     recursive let-binding
type termNode struct {
	ast.Expr
}

type termSpec struct {
	Var    string      `yaml:"var"`
	Lambda *lambdaSpec `yaml:"lambda"`
	Apply  []termNode  `yaml:"apply"`
	Let    *letSpec    `yaml:"let"`
	LetRec *letSpec    `yaml:"letrec"`
}

type lambdaSpec struct {
	Params []string `yaml:"params"`
	Body   termNode `yaml:"body"`
}

type letSpec struct {
	Name  string   `yaml:"name"`
	Value termNode `yaml:"value"`
	Body  termNode `yaml:"body"`
}

func (n *termNode) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		if value.Value == "" {
			return fmt.Errorf("line %d: empty term", value.Line)
		}
		n.Expr = &ast.Var{Name: value.Value}
		return nil
	}
	var spec termSpec
	if err := value.Decode(&spec); err != nil {
		return err
	}
	forms := 0
	for _, set := range [...]bool{spec.Var != "", spec.Lambda != nil, spec.Apply != nil, spec.Let != nil, spec.LetRec != nil} {
		if set {
			forms++
		}
	}
	if forms != 1 {
		return fmt.Errorf("line %d: term must have exactly one of var, lambda, apply, let, or letrec", value.Line)
	}

	switch {
	case spec.Var != "":
		n.Expr = &ast.Var{Name: spec.Var}

	case spec.Lambda != nil:
		if len(spec.Lambda.Params) == 0 {
			return fmt.Errorf("line %d: lambda requires at least 1 parameter", value.Line)
		}
		if spec.Lambda.Body.Expr == nil {
			return fmt.Errorf("line %d: lambda requires a body", value.Line)
		}
		body := spec.Lambda.Body.Expr
		for i := len(spec.Lambda.Params) - 1; i >= 0; i-- {
			body = &ast.Lambda{Param: spec.Lambda.Params[i], Body: body}
		}
		n.Expr = body

	case spec.Apply != nil:
		if len(spec.Apply) < 2 {
			return fmt.Errorf("line %d: apply requires a function and at least 1 argument", value.Line)
		}
		for i, arg := range spec.Apply {
			if arg.Expr == nil {
				return fmt.Errorf("line %d: apply[%d] is empty", value.Line, i)
			}
		}
		e := spec.Apply[0].Expr
		for _, arg := range spec.Apply[1:] {
			e = &ast.Apply{Func: e, Arg: arg.Expr}
		}
		n.Expr = e

	default:
		let, recursive := spec.Let, false
		if let == nil {
			let, recursive = spec.LetRec, true
		}
		if let.Name == "" || let.Value.Expr == nil || let.Body.Expr == nil {
			return fmt.Errorf("line %d: let requires a name, value, and body", value.Line)
		}
		if recursive {
			n.Expr = &ast.LetRec{Var: let.Name, Value: let.Value.Expr, Body: let.Body.Expr}
		} else {
			n.Expr = &ast.Let{Var: let.Name, Value: let.Value.Expr, Body: let.Body.Expr}
		}
	}
	return nil
}
