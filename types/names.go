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
	"strconv"
	"sync/atomic"
)

// NameSource allocates fresh type-variables. Every call to NewVar must return a variable whose name
// has not been returned before by the same source.
type NameSource interface {
	NewVar() *Var
}

// Counter is a monotonic NameSource producing names `<prefix>0`, `<prefix>1`, ...
//
// A counter may be shared across goroutines.
type Counter struct {
	prefix string
	next   atomic.Uint64
}

// Create a counter which names type-variables with the given prefix.
func NewCounter(prefix string) *Counter { return &Counter{prefix: prefix} }

// Allocate a type-variable with the next unused name.
func (c *Counter) NewVar() *Var {
	n := c.next.Add(1) - 1
	return &Var{Name: c.prefix + strconv.FormatUint(n, 10)}
}

// Next returns the number of names allocated so far.
func (c *Counter) Next() uint64 { return c.next.Load() }

var globalNames = NewCounter("a")

// GlobalNames returns the process-wide NameSource, naming type-variables a0, a1, ... Type-variables
// allocated by separate inference runs never share names when both runs draw from this source.
// User-declared type-variables named like these may be confused with fresh ones.
func GlobalNames() NameSource { return globalNames }

// Allocate a type-variable from the process-wide NameSource.
func Fresh() *Var { return globalNames.NewVar() }
