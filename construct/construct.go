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

package construct

import (
	"github.com/wdamron/hm/ast"
	"github.com/wdamron/hm/types"
)

// Types

// Create a type-variable with the given name.
func TVar(name string) *types.Var {
	return types.NewVar(name)
}

// Type constant: `Int`, `Bool`, etc
func TConst(name string) *types.Cons {
	return &types.Cons{Name: name}
}

// Type constructor: `List<Int>`
func TCons(name string, args ...types.Type) *types.Cons {
	return &types.Cons{Name: name, Args: args}
}

// Function type: `(Int->Int)`
func TArrow(from, to types.Type) *types.Arrow {
	return &types.Arrow{From: from, To: to}
}

// Curried function type: `(Int->(Int->Int))`
//
// The last type is the return type.
func TArrowN(ts ...types.Type) types.Type {
	if len(ts) == 0 {
		panic("TArrowN requires at least one type")
	}
	t := ts[len(ts)-1]
	for i := len(ts) - 2; i >= 0; i-- {
		t = &types.Arrow{From: ts[i], To: t}
	}
	return t
}

// Type-scheme quantifying all type-variables of t.
func TScheme(t types.Type) *types.Scheme {
	return types.Closed(t)
}

// Expressions:

// Variable
func Var(name string) *ast.Var {
	return &ast.Var{Name: name}
}

// Abstraction: `fun x -> x`
func Lambda(param string, body ast.Expr) *ast.Lambda {
	return &ast.Lambda{Param: param, Body: body}
}

// Curried abstraction: `fun x y -> x`
func LambdaN(params []string, body ast.Expr) ast.Expr {
	for i := len(params) - 1; i >= 0; i-- {
		body = &ast.Lambda{Param: params[i], Body: body}
	}
	return body
}

// Application: `f x`
func Apply(f ast.Expr, arg ast.Expr) *ast.Apply {
	return &ast.Apply{Func: f, Arg: arg}
}

// Curried application: `f x y`
func ApplyN(f ast.Expr, args ...ast.Expr) ast.Expr {
	for _, arg := range args {
		f = &ast.Apply{Func: f, Arg: arg}
	}
	return f
}

// Let-binding: `let a = e1 in e2`
func Let(varName string, value ast.Expr, body ast.Expr) *ast.Let {
	return &ast.Let{Var: varName, Value: value, Body: body}
}

// Recursive let-binding: `letrec f = e1 in e2`
func LetRec(varName string, value ast.Expr, body ast.Expr) *ast.LetRec {
	return &ast.LetRec{Var: varName, Value: value, Body: body}
}
