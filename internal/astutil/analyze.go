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

package astutil

import (
	"github.com/wdamron/hm/ast"
	"github.com/wdamron/hm/types"
)

// Analysis of a term prior to inference: nesting depth and free identifiers.
//
// Terms are traversed with an explicit stack, so arbitrarily deep terms are analyzed without
// exhausting the goroutine stack.
type Analysis struct {
	Depth int      // maximum nesting depth; the root is at depth 1
	Free  []string // identifiers referenced outside the scope of any binder, in order of first reference

	Scopes map[string]int // number of enclosing binders for each identifier
	seen   map[string]bool
	stack  []frame

	// initial space:
	_stack [32]frame
	_free  [8]string
}

type frameKind uint8

const (
	visitFrame frameKind = iota
	enterFrame
	exitFrame
)

type frame struct {
	kind  frameKind
	depth int
	expr  ast.Expr
	name  string
}

func (a *Analysis) Init() {
	a.Scopes = make(map[string]int, 16)
	a.seen = make(map[string]bool, 8)
	a.stack, a.Free = a._stack[:0], a._free[:0]
}

func (a *Analysis) Reset() {
	if a.Scopes == nil {
		return
	}
	for name := range a.Scopes {
		delete(a.Scopes, name)
	}
	for name := range a.seen {
		delete(a.seen, name)
	}
	for i := range a._stack {
		a._stack[i] = frame{}
	}
	for i := range a._free {
		a._free[i] = ""
	}
	a.stack, a.Free, a.Depth = a._stack[:0], a._free[:0], 0
}

// Analyze root. When limit > 0 and root is nested more deeply than limit, analysis stops with
// a *types.DepthError.
func (a *Analysis) Analyze(root ast.Expr, limit int) error {
	if a.Scopes == nil {
		a.Init()
	} else {
		a.Reset()
	}
	a.push(frame{kind: visitFrame, depth: 1, expr: root})
	for len(a.stack) > 0 {
		f := a.stack[len(a.stack)-1]
		a.stack = a.stack[:len(a.stack)-1]

		switch f.kind {
		case enterFrame:
			a.Scopes[f.name]++
			continue
		case exitFrame:
			if a.Scopes[f.name]--; a.Scopes[f.name] <= 0 {
				delete(a.Scopes, f.name)
			}
			continue
		}

		if f.depth > a.Depth {
			a.Depth = f.depth
			if limit > 0 && a.Depth > limit {
				return &types.DepthError{Limit: limit}
			}
		}
		d := f.depth + 1

		// Frames are pushed in reverse order of evaluation:
		switch e := f.expr.(type) {
		case *ast.Var:
			if a.Scopes[e.Name] == 0 && !a.seen[e.Name] {
				a.seen[e.Name] = true
				a.Free = append(a.Free, e.Name)
			}

		case *ast.Lambda:
			a.push(
				frame{kind: exitFrame, name: e.Param},
				frame{kind: visitFrame, depth: d, expr: e.Body},
				frame{kind: enterFrame, name: e.Param},
			)

		case *ast.Apply:
			a.push(
				frame{kind: visitFrame, depth: d, expr: e.Arg},
				frame{kind: visitFrame, depth: d, expr: e.Func},
			)

		case *ast.Let:
			// The bound variable is not in scope within the value:
			a.push(
				frame{kind: exitFrame, name: e.Var},
				frame{kind: visitFrame, depth: d, expr: e.Body},
				frame{kind: enterFrame, name: e.Var},
				frame{kind: visitFrame, depth: d, expr: e.Value},
			)

		case *ast.LetRec:
			a.push(
				frame{kind: exitFrame, name: e.Var},
				frame{kind: visitFrame, depth: d, expr: e.Body},
				frame{kind: visitFrame, depth: d, expr: e.Value},
				frame{kind: enterFrame, name: e.Var},
			)
		}
	}
	return nil
}

func (a *Analysis) push(frames ...frame) {
	a.stack = append(a.stack, frames...)
}
