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

// Type is the base interface for all types.
//
// The set of types is closed: Const, Var, Arrow, and Tuple are the only implementations.
type Type interface {
	TypeName() string
	isType()
}

func (t *Const) TypeName() string { return "Const" }
func (t *Var) TypeName() string   { return "Var" }
func (t *Arrow) TypeName() string { return "Arrow" }
func (t *Tuple) TypeName() string { return "Tuple" }

func (t *Const) isType() {}
func (t *Var) isType()   {}
func (t *Arrow) isType() {}
func (t *Tuple) isType() {}

// Kind of a type constant
type ConstKind uint8

const (
	IntKind ConstKind = iota
	BoolKind
)

// Type constant: `Int` or `Bool`
type Const struct {
	Kind ConstKind
}

var (
	Int  = &Const{IntKind}
	Bool = &Const{BoolKind}
)

// Name returns the printed name of the constant.
func (t *Const) Name() string {
	switch t.Kind {
	case IntKind:
		return "Int"
	case BoolKind:
		return "Bool"
	}
	panic("unknown type constant")
}

// Type-variable: `v1`
//
// Type-variables are identified by name; names are unique within one inference run.
type Var struct {
	Name string
}

// Create a type-variable with the given name.
func NewVar(name string) *Var { return &Var{Name: name} }

// Function type: `(Int -> Bool)`
type Arrow struct {
	Param  Type
	Return Type
}

// Tuple type: `(Int, Bool)`
type Tuple struct {
	Elems TypeList
}

// Create a tuple type with the given element types, in order.
func NewTuple(elems ...Type) *Tuple {
	b := NewTypeListBuilder()
	for _, t := range elems {
		b.Append(t)
	}
	return &Tuple{Elems: b.Build()}
}

// Len returns the arity of the tuple.
func (t *Tuple) Len() int { return t.Elems.Len() }

func (t *Const) String() string { return TypeString(t) }
func (t *Var) String() string   { return TypeString(t) }
func (t *Arrow) String() string { return TypeString(t) }
func (t *Tuple) String() string { return TypeString(t) }

// Equal reports whether a and b are structurally identical.
func Equal(a, b Type) bool {
	switch a := a.(type) {
	case *Const:
		b, ok := b.(*Const)
		return ok && a.Kind == b.Kind

	case *Var:
		b, ok := b.(*Var)
		return ok && a.Name == b.Name

	case *Arrow:
		b, ok := b.(*Arrow)
		return ok && Equal(a.Param, b.Param) && Equal(a.Return, b.Return)

	case *Tuple:
		b, ok := b.(*Tuple)
		if !ok || a.Len() != b.Len() {
			return false
		}
		equal := true
		a.Elems.Range(func(i int, t Type) bool {
			equal = Equal(t, b.Elems.Get(i))
			return equal
		})
		return equal

	case nil:
		return b == nil
	}
	panic("unexpected type " + a.TypeName())
}

// Replace substitutes with for every occurrence of the type-variable name within t.
// Types which do not contain the variable are returned as-is.
func Replace(t Type, name string, with Type) Type {
	switch t := t.(type) {
	case *Const:
		return t

	case *Var:
		if t.Name == name {
			return with
		}
		return t

	case *Arrow:
		param, ret := Replace(t.Param, name, with), Replace(t.Return, name, with)
		if param == t.Param && ret == t.Return {
			return t
		}
		return &Arrow{Param: param, Return: ret}

	case *Tuple:
		return &Tuple{Elems: t.Elems.Map(func(elem Type) Type { return Replace(elem, name, with) })}
	}
	panic("unexpected type " + t.TypeName())
}
