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
	"github.com/pkg/errors"
)

// Validate reports the first malformed node within e: a missing (nil) sub-expression, an empty
// identifier, or a negative tuple index. Trees produced by the parser are always valid.
func Validate(e Expr) error {
	if isNil(e) {
		return errors.New("empty expression")
	}
	return validate(e)
}

func validate(e Expr) error {
	missing := func(what string) error {
		return errors.Errorf("%s is missing %s", e.ExprName(), what)
	}
	switch e := e.(type) {
	case *Var:
		if e.Name == "" {
			return missing("a name")
		}
	case *Add:
		if isNil(e.Left) || isNil(e.Right) {
			return missing("an operand")
		}
		return validateAll(e.Left, e.Right)
	case *Sub:
		if isNil(e.Left) || isNil(e.Right) {
			return missing("an operand")
		}
		return validateAll(e.Left, e.Right)
	case *Let:
		switch {
		case e.Var == "":
			return missing("a variable name")
		case isNil(e.Value):
			return missing("a value")
		case isNil(e.Body):
			return missing("a body")
		}
		return validateAll(e.Value, e.Body)
	case *If:
		if isNil(e.Cond) || isNil(e.Then) || isNil(e.Else) {
			return missing("a branch")
		}
		return validateAll(e.Cond, e.Then, e.Else)
	case *Func:
		switch {
		case e.Param == "":
			return missing("a parameter name")
		case isNil(e.Body):
			return missing("a body")
		}
		return validate(e.Body)
	case *Call:
		if isNil(e.Func) || isNil(e.Arg) {
			return missing("an operand")
		}
		return validateAll(e.Func, e.Arg)
	case *Tuple:
		for _, elem := range e.Elems {
			if isNil(elem) {
				return missing("an element")
			}
		}
		return validateAll(e.Elems...)
	case *TupleAccess:
		if isNil(e.Tuple) {
			return missing("a tuple")
		}
		if e.Index < 0 {
			return errors.Errorf("TupleAccess index %d is negative", e.Index)
		}
		return validate(e.Tuple)
	}
	return nil
}

func validateAll(es ...Expr) error {
	for _, e := range es {
		if err := validate(e); err != nil {
			return err
		}
	}
	return nil
}

// isNil reports whether e is a nil interface or a nil pointer to an expression node.
func isNil(e Expr) bool {
	switch e := e.(type) {
	case nil:
		return true
	case *IntLit:
		return e == nil
	case *BoolLit:
		return e == nil
	case *Var:
		return e == nil
	case *Add:
		return e == nil
	case *Sub:
		return e == nil
	case *Let:
		return e == nil
	case *If:
		return e == nil
	case *Func:
		return e == nil
	case *Call:
		return e == nil
	case *Tuple:
		return e == nil
	case *TupleAccess:
		return e == nil
	}
	return false
}
