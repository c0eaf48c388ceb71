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

// Package program decodes YAML program files: declared bindings together with named terms to be
// type-checked within them.
//
//	bindings:
//	  pair: {arrow: [{var: a}, {var: b}, {cons: Pair, args: [{var: a}, {var: b}]}]}
//	terms:
//	  - name: twice
//	    term: {lambda: {params: [f, x], body: {apply: [f, {apply: [f, x]}]}}}
//
// Terms are structured data; no source syntax is parsed.
package program

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wdamron/hm"
	"github.com/wdamron/hm/ast"
	"github.com/wdamron/hm/types"
)

// Program is a decoded program file.
type Program struct {
	Path     string
	Bindings []Binding
	Terms    []Term
}

// Binding declares the type of an identifier. Type-variables are generalized on declaration.
type Binding struct {
	Name string
	Type types.Type
}

// Term is a named expression.
type Term struct {
	Name string
	Expr ast.Expr
}

type file struct {
	Bindings yaml.Node `yaml:"bindings"`
	Terms    []struct {
		Name string   `yaml:"name"`
		Term termNode `yaml:"term"`
	} `yaml:"terms"`
}

// Load reads and decodes the program file at path.
func Load(path string) (*Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading program %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes a program file. The path is only used for error messages.
func Parse(data []byte, path string) (*Program, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	bindings, err := DecodeBindings(&f.Bindings)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	p := &Program{Path: path, Bindings: bindings}
	for i, t := range f.Terms {
		if t.Name == "" {
			return nil, fmt.Errorf("%s: terms[%d]: name is required", path, i)
		}
		if t.Term.Expr == nil {
			return nil, fmt.Errorf("%s: terms[%d] (%s): term is required", path, i, t.Name)
		}
		p.Terms = append(p.Terms, Term{Name: t.Name, Expr: t.Term.Expr})
	}
	return p, nil
}

// DecodeBindings decodes a mapping from identifiers to type nodes, in document order. An empty node
// or null node decodes to no bindings.
func DecodeBindings(node *yaml.Node) ([]Binding, error) {
	if node.Kind == 0 || (node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null") {
		return nil, nil
	}
	if node.Kind == yaml.DocumentNode && len(node.Content) == 1 {
		node = node.Content[0]
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: bindings must be a mapping", node.Line)
	}
	bindings := make([]Binding, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		var t typeNode
		if err := value.Decode(&t); err != nil {
			return nil, fmt.Errorf("bindings (%s): %w", key.Value, err)
		}
		if t.Type == nil {
			return nil, fmt.Errorf("line %d: bindings (%s): empty type", value.Line, key.Value)
		}
		bindings = append(bindings, Binding{Name: key.Value, Type: t.Type})
	}
	return bindings, nil
}

// Env declares the program's bindings within base.
func (p *Program) Env(base *hm.TypeEnv) *hm.TypeEnv {
	env := base
	for _, b := range p.Bindings {
		env = env.Declare(b.Name, b.Type)
	}
	return env
}

// Exprs returns the expressions of all terms, in document order.
func (p *Program) Exprs() []ast.Expr {
	exprs := make([]ast.Expr, len(p.Terms))
	for i, t := range p.Terms {
		exprs[i] = t.Expr
	}
	return exprs
}

// Check infers the type of every term within base extended with the program's bindings, with at most
// workers terms inferred concurrently (see hm.InferAllN). Results are indexed by term.
func (p *Program) Check(ctx context.Context, base *hm.TypeEnv, newContext func() *hm.InferenceContext, workers int) []hm.Result {
	return hm.InferAllN(ctx, p.Env(base), p.Exprs(), newContext, workers)
}
