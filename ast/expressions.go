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

package ast

// Expr is the base for all expressions. Expressions are immutable after construction.
type Expr interface {
	// Name of the syntax-type of the expression.
	ExprName() string
}

var (
	_ Expr = (*Var)(nil)
	_ Expr = (*Lambda)(nil)
	_ Expr = (*Apply)(nil)
	_ Expr = (*Let)(nil)
	_ Expr = (*LetRec)(nil)
)

// Variable: `x`
type Var struct {
	Name string
}

// "Var"
func (e *Var) ExprName() string { return "Var" }

// Abstraction: `fun x -> x`
type Lambda struct {
	Param string
	Body  Expr
}

// "Lambda"
func (e *Lambda) ExprName() string { return "Lambda" }

// Application: `f x`
type Apply struct {
	Func Expr
	Arg  Expr
}

// "Apply"
func (e *Apply) ExprName() string { return "Apply" }

// Let-binding: `let a = e1 in e2`
//
// The bound variable is not visible within its own value.
type Let struct {
	Var   string
	Value Expr
	Body  Expr
}

// "Let"
func (e *Let) ExprName() string { return "Let" }

// Recursive let-binding: `letrec f = e1 in e2`
//
// The bound variable is visible (monomorphically) within its own value.
type LetRec struct {
	Var   string
	Value Expr
	Body  Expr
}

// "LetRec"
func (e *LetRec) ExprName() string { return "LetRec" }
