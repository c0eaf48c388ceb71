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
)

var (
	_ error = (*UndefinedError)(nil)
	_ error = (*MismatchError)(nil)
	_ error = (*OccursError)(nil)
	_ error = (*DepthError)(nil)
)

// UndefinedError is returned when a variable is not bound within the type-environment.
type UndefinedError struct {
	Name string
}

func (e *UndefinedError) Error() string { return "Variable " + e.Name + " not found" }

// MismatchError is returned when two types have no common structure: constructors with different names
// or arities, or a function type and a type constructor.
type MismatchError struct {
	Left  Type
	Right Type
}

func (e *MismatchError) Error() string {
	return "Failed to unify " + TypeString(e.Left) + " with " + TypeString(e.Right)
}

// OccursError is returned when binding a type-variable would create an infinite type.
type OccursError struct {
	Var  *Var
	Type Type
}

func (e *OccursError) Error() string {
	return "Implicitly recursive type: " + e.Var.Name + " occurs in " + TypeString(e.Type)
}

// DepthError is returned when a term or type is nested more deeply than an inference context permits.
type DepthError struct {
	Limit int
}

func (e *DepthError) Error() string {
	return "Maximum nesting depth of " + strconv.Itoa(e.Limit) + " exceeded"
}
