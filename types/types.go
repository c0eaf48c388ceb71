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

var (
	_ Type = (*Var)(nil)
	_ Type = (*Arrow)(nil)
	_ Type = (*Cons)(nil)
)

// Type is the base interface for all types.
type Type interface {
	// Name of the kind of type.
	TypeName() string
	String() string
}

func (t *Var) TypeName() string   { return "Var" }
func (t *Arrow) TypeName() string { return "Arrow" }
func (t *Cons) TypeName() string  { return "Cons" }

func (t *Var) String() string   { return TypeString(t) }
func (t *Arrow) String() string { return TypeString(t) }
func (t *Cons) String() string  { return TypeString(t) }

// Type-variable. Type-variables are identified solely by name.
type Var struct {
	Name string
}

// Function type: `(int->int)`
type Arrow struct {
	From Type
	To   Type
}

// Type constructor: `Bool` or `List<a>`
//
// Args must not be modified after construction.
type Cons struct {
	Name string
	Args []Type
}

// Arity returns the number of arguments applied to the constructor.
func (t *Cons) Arity() int { return len(t.Args) }

// Create a type-variable with the given name.
func NewVar(name string) *Var { return &Var{Name: name} }

// Create a function type.
func NewArrow(from, to Type) *Arrow { return &Arrow{From: from, To: to} }

// Create a type constructor applied to args.
func NewCons(name string, args ...Type) *Cons { return &Cons{Name: name, Args: args} }

// Equal reports whether a and b are structurally equal. Type-variables are equal when their names are equal.
func Equal(a, b Type) bool {
	switch a := a.(type) {
	case *Var:
		b, ok := b.(*Var)
		return ok && a.Name == b.Name
	case *Arrow:
		b, ok := b.(*Arrow)
		return ok && Equal(a.From, b.From) && Equal(a.To, b.To)
	case *Cons:
		b, ok := b.(*Cons)
		if !ok || a.Name != b.Name || a.Arity() != b.Arity() {
			return false
		}
		for i := range a.Args {
			if !Equal(a.Args[i], b.Args[i]) {
				return false
			}
		}
		return true
	case nil:
		return b == nil
	}
	panic("unexpected type " + a.TypeName())
}

// Occurs reports whether the type-variable v occurs within t.
func Occurs(v *Var, t Type) bool {
	switch t := t.(type) {
	case *Var:
		return t.Name == v.Name
	case *Arrow:
		return Occurs(v, t.From) || Occurs(v, t.To)
	case *Cons:
		for _, arg := range t.Args {
			if Occurs(v, arg) {
				return true
			}
		}
		return false
	}
	panic("unexpected type " + t.TypeName())
}
