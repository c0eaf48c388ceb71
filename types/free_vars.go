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
	"github.com/hashicorp/go-set/v3"
)

// FreeVars returns the distinct type-variables of t, in order of first appearance.
func FreeVars(t Type) []*Var {
	seen := set.New[string](8)
	return appendFreeVars(nil, seen, t)
}

func appendFreeVars(vars []*Var, seen *set.Set[string], t Type) []*Var {
	switch t := t.(type) {
	case *Var:
		if seen.Insert(t.Name) {
			vars = append(vars, t)
		}
		return vars
	case *Arrow:
		vars = appendFreeVars(vars, seen, t.From)
		return appendFreeVars(vars, seen, t.To)
	case *Cons:
		for _, arg := range t.Args {
			vars = appendFreeVars(vars, seen, arg)
		}
		return vars
	}
	panic("unexpected type " + t.TypeName())
}
