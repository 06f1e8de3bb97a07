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

// Expr is the base for all expressions.
//
// The set of expressions is closed; expressions are immutable after construction.
type Expr interface {
	// Name of the syntax-type of the expression.
	ExprName() string
	isExpr()
}

var (
	_ Expr = (*IntLit)(nil)
	_ Expr = (*BoolLit)(nil)
	_ Expr = (*Var)(nil)
	_ Expr = (*Add)(nil)
	_ Expr = (*Sub)(nil)
	_ Expr = (*Let)(nil)
	_ Expr = (*If)(nil)
	_ Expr = (*Func)(nil)
	_ Expr = (*Call)(nil)
	_ Expr = (*Tuple)(nil)
	_ Expr = (*TupleAccess)(nil)
)

// Integer literal: `42`
type IntLit struct {
	Value int64
}

// "IntLit"
func (e *IntLit) ExprName() string { return "IntLit" }

// Boolean literal: `true`
type BoolLit struct {
	Value bool
}

// "BoolLit"
func (e *BoolLit) ExprName() string { return "BoolLit" }

// Variable
type Var struct {
	Name string
}

// "Var"
func (e *Var) ExprName() string { return "Var" }

// Addition: `a + b`
type Add struct {
	Left  Expr
	Right Expr
}

// "Add"
func (e *Add) ExprName() string { return "Add" }

// Subtraction: `a - b`
type Sub struct {
	Left  Expr
	Right Expr
}

// "Sub"
func (e *Sub) ExprName() string { return "Sub" }

// Let-binding: `let a = 1 in e`
type Let struct {
	Var   string
	Value Expr
	Body  Expr
}

// "Let"
func (e *Let) ExprName() string { return "Let" }

// Conditional: `if c then a else b`
type If struct {
	Cond Expr
	Then Expr
	Else Expr
}

// "If"
func (e *If) ExprName() string { return "If" }

// Abstraction: `fun x -> x`
type Func struct {
	Param string
	Body  Expr
}

// "Func"
func (e *Func) ExprName() string { return "Func" }

// Application: `f x`
type Call struct {
	Func Expr
	Arg  Expr
}

// "Call"
func (e *Call) ExprName() string { return "Call" }

// Tuple: `(a, b)`
type Tuple struct {
	Elems []Expr
}

// "Tuple"
func (e *Tuple) ExprName() string { return "Tuple" }

// Selecting a tuple element by position: `t.0`
type TupleAccess struct {
	Tuple Expr
	Index int
}

// "TupleAccess"
func (e *TupleAccess) ExprName() string { return "TupleAccess" }

func (e *IntLit) isExpr()      {}
func (e *BoolLit) isExpr()     {}
func (e *Var) isExpr()         {}
func (e *Add) isExpr()         {}
func (e *Sub) isExpr()         {}
func (e *Let) isExpr()         {}
func (e *If) isExpr()          {}
func (e *Func) isExpr()        {}
func (e *Call) isExpr()        {}
func (e *Tuple) isExpr()       {}
func (e *TupleAccess) isExpr() {}
