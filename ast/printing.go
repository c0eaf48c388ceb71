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

import (
	"strings"
)

type position int

const (
	topPosition position = iota
	funcPosition
	argPosition
)

// ExprString returns a string representation of an expression.
func ExprString(expr Expr) string {
	var sb strings.Builder
	exprString(&sb, topPosition, expr)
	return sb.String()
}

func exprString(sb *strings.Builder, pos position, expr Expr) {
	switch et := expr.(type) {
	case *Var:
		sb.WriteString(et.Name)

	case *Apply:
		if pos == argPosition {
			sb.WriteByte('(')
		}
		exprString(sb, funcPosition, et.Func)
		sb.WriteByte(' ')
		exprString(sb, argPosition, et.Arg)
		if pos == argPosition {
			sb.WriteByte(')')
		}

	case *Lambda:
		if pos != topPosition {
			sb.WriteByte('(')
		}
		sb.WriteString("fun ")
		sb.WriteString(et.Param)
		body := et.Body
		for {
			next, ok := body.(*Lambda)
			if !ok {
				break
			}
			sb.WriteByte(' ')
			sb.WriteString(next.Param)
			body = next.Body
		}
		sb.WriteString(" -> ")
		exprString(sb, topPosition, body)
		if pos != topPosition {
			sb.WriteByte(')')
		}

	case *Let:
		letString(sb, pos, "let ", et.Var, et.Value, et.Body)

	case *LetRec:
		letString(sb, pos, "letrec ", et.Var, et.Value, et.Body)

	case nil:
		sb.WriteString("<nil>")

	default:
		panic("unknown expression type: " + expr.ExprName())
	}
}

func letString(sb *strings.Builder, pos position, keyword, name string, value, body Expr) {
	if pos != topPosition {
		sb.WriteByte('(')
	}
	sb.WriteString(keyword)
	sb.WriteString(name)
	sb.WriteString(" = ")
	exprString(sb, topPosition, value)
	sb.WriteString(" in ")
	exprString(sb, topPosition, body)
	if pos != topPosition {
		sb.WriteByte(')')
	}
}
