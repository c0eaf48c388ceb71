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

package linked

import (
	"github.com/wdamron/hm/types"
)

// Type-variables at the generic level have been generalized, and will be replaced when instantiated.
const genericLevel = 1<<31 - 1

// Type-variables at the top level are free within the outer type-environment, and are never generalized.
const topLevel = 0

type node interface {
	nodeName() string
}

// Type-variable. A bound type-variable links to the type it was unified with.
type tvar struct {
	link  node
	level int
	name  string // assigned when first exported, unless imported from the type-environment
}

func (tv *tvar) nodeName() string { return "Var" }

// Function type
type arrow struct {
	from, to node
}

func (t *arrow) nodeName() string { return "Arrow" }

// Type constructor
type cons struct {
	name string
	args []node
}

func (t *cons) nodeName() string { return "Cons" }

// Follow links to the representative of n, compressing the path along the way.
func prune(n node) node {
	root := n
	for {
		tv, ok := root.(*tvar)
		if !ok || tv.link == nil {
			break
		}
		root = tv.link
	}
	for n != root {
		tv := n.(*tvar)
		n, tv.link = tv.link, root
	}
	return root
}

// Mark unbound type-variables above level as generic.
func generalize(level int, n node) {
	switch n := prune(n).(type) {
	case *tvar:
		if n.level > level && n.level != genericLevel {
			n.level = genericLevel
		}
	case *arrow:
		generalize(level, n.from)
		generalize(level, n.to)
	case *cons:
		for _, arg := range n.args {
			generalize(level, arg)
		}
	}
}

// Check whether tv occurs within n, lowering the level of type-variables within n to the level of tv.
func occursAdjust(tv *tvar, n node) bool {
	switch n := prune(n).(type) {
	case *tvar:
		if n == tv {
			return true
		}
		if n.level > tv.level {
			n.level = tv.level
		}
		return false
	case *arrow:
		return occursAdjust(tv, n.from) || occursAdjust(tv, n.to)
	case *cons:
		for _, arg := range n.args {
			if occursAdjust(tv, arg) {
				return true
			}
		}
		return false
	}
	panic("unexpected type " + n.nodeName())
}

func isGeneric(n node) bool {
	switch n := prune(n).(type) {
	case *tvar:
		return n.level == genericLevel
	case *arrow:
		return isGeneric(n.from) || isGeneric(n.to)
	case *cons:
		for _, arg := range n.args {
			if isGeneric(arg) {
				return true
			}
		}
	}
	return false
}

// Convert a type from the outer type-environment. Quantified type-variables become generic; all other
// type-variables are shared through outer, by name.
func importType(t types.Type, bound map[string]*tvar, outer map[string]*tvar) node {
	switch t := t.(type) {
	case *types.Var:
		if tv, ok := bound[t.Name]; ok {
			return tv
		}
		tv, ok := outer[t.Name]
		if !ok {
			tv = &tvar{level: topLevel, name: t.Name}
			outer[t.Name] = tv
		}
		return tv
	case *types.Arrow:
		return &arrow{from: importType(t.From, bound, outer), to: importType(t.To, bound, outer)}
	case *types.Cons:
		c := &cons{name: t.Name}
		if len(t.Args) > 0 {
			c.args = make([]node, len(t.Args))
			for i, arg := range t.Args {
				c.args[i] = importType(arg, bound, outer)
			}
		}
		return c
	}
	panic("unexpected type " + t.TypeName())
}
