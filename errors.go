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

package mono

import (
	"strconv"

	"github.com/wdamron/mono/types"
)

// UnboundVariableError is returned by inference when a variable is not declared in the type-environment.
type UnboundVariableError struct {
	Name string
}

func (e *UnboundVariableError) Error() string { return "Unbound variable " + e.Name }

// UnifyMismatchError is returned by unification when two types have incompatible shapes.
type UnifyMismatchError struct {
	A, B types.Type
}

func (e *UnifyMismatchError) Error() string {
	return "Cannot unify " + types.TypeString(e.A) + " with " + types.TypeString(e.B)
}

// ArityMismatchError is returned by unification when two tuple-types have differing lengths.
type ArityMismatchError struct {
	Left, Right int
}

func (e *ArityMismatchError) Error() string {
	return "Cannot unify tuples with differing arity " + strconv.Itoa(e.Left) + " and " + strconv.Itoa(e.Right)
}

// IndexOutOfRangeError is returned by unification when a tuple element is selected beyond the tuple's arity.
type IndexOutOfRangeError struct {
	Index, Arity int
}

func (e *IndexOutOfRangeError) Error() string {
	return "Tuple index " + strconv.Itoa(e.Index) + " out of range for tuple of arity " + strconv.Itoa(e.Arity)
}

// NotATupleError is returned by unification when an element is selected from a type which is not a tuple.
type NotATupleError struct {
	Type  types.Type
	Index int
}

func (e *NotATupleError) Error() string {
	return "Cannot select element " + strconv.Itoa(e.Index) + " from non-tuple type " + types.TypeString(e.Type)
}

// UnresolvedTupleError is returned by unification when an element is selected from a value whose
// tuple-type could not be determined.
type UnresolvedTupleError struct {
	Type  types.Type
	Index int
}

func (e *UnresolvedTupleError) Error() string {
	return "Cannot determine the tuple type of " + types.TypeString(e.Type) + " for element " + strconv.Itoa(e.Index)
}

// InfiniteTypeError is returned by unification with the occurs-check enabled, when a type-variable
// would be bound to a type containing itself.
type InfiniteTypeError struct {
	Var  *types.Var
	Type types.Type
}

func (e *InfiniteTypeError) Error() string {
	return "Implicitly recursive type " + e.Var.Name + " = " + types.TypeString(e.Type)
}
