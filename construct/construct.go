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

package construct

import (
	"github.com/wdamron/mono/ast"
	"github.com/wdamron/mono/types"
)

// Types

// Create a new type-variable with the given name.
func TVar(name string) *types.Var {
	return types.NewVar(name)
}

// Type constant: `Int`
func TInt() *types.Const { return types.Int }

// Type constant: `Bool`
func TBool() *types.Const { return types.Bool }

// Function type: `(Int -> Bool)`
func TArrow(param, ret types.Type) *types.Arrow {
	return &types.Arrow{Param: param, Return: ret}
}

// Curried function type: `(Int -> (Int -> Int))`
func TArrowN(params []types.Type, ret types.Type) types.Type {
	for i := len(params) - 1; i >= 0; i-- {
		ret = &types.Arrow{Param: params[i], Return: ret}
	}
	return ret
}

// Tuple type: `(Int, Bool)`
func TTuple(elems ...types.Type) *types.Tuple {
	return types.NewTuple(elems...)
}

// Expressions:

// Integer literal
func Int(value int64) *ast.IntLit {
	return &ast.IntLit{Value: value}
}

// Boolean literal
func Bool(value bool) *ast.BoolLit {
	return &ast.BoolLit{Value: value}
}

// Variable
func Var(name string) *ast.Var {
	return &ast.Var{Name: name}
}

// Addition: `a + b`
func Add(left, right ast.Expr) *ast.Add {
	return &ast.Add{Left: left, Right: right}
}

// Subtraction: `a - b`
func Sub(left, right ast.Expr) *ast.Sub {
	return &ast.Sub{Left: left, Right: right}
}

// Let-binding: `let a = 1 in e`
func Let(varName string, value ast.Expr, body ast.Expr) *ast.Let {
	return &ast.Let{Var: varName, Value: value, Body: body}
}

// Conditional: `if c then a else b`
func If(cond, then, els ast.Expr) *ast.If {
	return &ast.If{Cond: cond, Then: then, Else: els}
}

// Abstraction: `fun x -> x`
func Func(param string, body ast.Expr) *ast.Func {
	return &ast.Func{Param: param, Body: body}
}

// Curried abstraction: `fun x -> fun y -> x`
func FuncN(params []string, body ast.Expr) ast.Expr {
	for i := len(params) - 1; i >= 0; i-- {
		body = &ast.Func{Param: params[i], Body: body}
	}
	return body
}

// Application: `f x`
//
// Multiple arguments are applied one at a time: `Call(f, x, y)` is `(f x) y`.
func Call(f ast.Expr, args ...ast.Expr) ast.Expr {
	for _, arg := range args {
		f = &ast.Call{Func: f, Arg: arg}
	}
	return f
}

// Tuple: `(a, b)`
func Tuple(elems ...ast.Expr) *ast.Tuple {
	return &ast.Tuple{Elems: elems}
}

// Selecting a tuple element: `t.0`
func TupleAccess(tuple ast.Expr, index int) *ast.TupleAccess {
	return &ast.TupleAccess{Tuple: tuple, Index: index}
}
