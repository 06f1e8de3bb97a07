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

package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wdamron/mono/ast"
	. "github.com/wdamron/mono/construct"
)

func TestExprString(t *testing.T) {
	tests := []struct {
		expr ast.Expr
		want string
	}{
		{Int(5), "5"},
		{Bool(false), "false"},
		{Add(Var("x"), Int(1)), "x + 1"},
		{Sub(Sub(Int(3), Int(2)), Int(1)), "3 - 2 - 1"},
		{Sub(Int(3), Sub(Int(2), Int(1))), "3 - (2 - 1)"},
		{Func("x", Add(Var("x"), Int(1))), "fun x -> x + 1"},
		{Call(Func("x", Var("x")), Bool(true)), "(fun x -> x) true"},
		{Call(Var("f"), Var("x"), Var("y")), "f x y"},
		{Call(Var("f"), Call(Var("g"), Var("x"))), "f (g x)"},
		{Add(Call(Var("f"), Int(1)), Int(2)), "f 1 + 2"},
		{Add(Int(1), If(Bool(true), Int(2), Int(3))), "1 + (if true then 2 else 3)"},
		{
			Let("id", Func("x", Var("x")), Tuple(Call(Var("id"), Int(5)), Call(Var("id"), Int(1)))),
			"let id = fun x -> x in (id 5, id 1)",
		},
		{Tuple(), "()"},
		{Tuple(Int(1)), "(1,)"},
		{TupleAccess(Tuple(Int(1), Bool(true)), 1), "(1, true).1"},
		{TupleAccess(Call(Var("f"), Var("x")), 0), "(f x).0"},
		{Call(Var("f"), TupleAccess(Var("p"), 0)), "f p.0"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ast.ExprString(tt.expr))
	}
}

func TestWalkExpr(t *testing.T) {
	expr := Let("f", Func("x", Var("x")), If(Bool(true), Call(Var("f"), Int(1)), TupleAccess(Tuple(Int(2)), 0)))
	var names []string
	ast.WalkExpr(expr, func(e ast.Expr) { names = append(names, e.ExprName()) })
	assert.Equal(t, []string{
		"Let", "Func", "Var", "If", "BoolLit", "Call", "Var", "IntLit", "TupleAccess", "Tuple", "IntLit",
	}, names)
}

func TestValidate(t *testing.T) {
	require.NoError(t, ast.Validate(Let("x", Int(1), Add(Var("x"), Int(2)))))

	tests := []struct {
		expr ast.Expr
		want string
	}{
		{nil, "empty expression"},
		{Var(""), "Var is missing a name"},
		{Add(Int(1), nil), "Add is missing an operand"},
		{Let("", Int(1), Int(2)), "Let is missing a variable name"},
		{Let("x", Int(1), Func("y", nil)), "Func is missing a body"},
		{If(Bool(true), Int(1), nil), "If is missing a branch"},
		{Tuple(Int(1), nil), "Tuple is missing an element"},
		{TupleAccess(Tuple(Int(1)), -1), "TupleAccess index -1 is negative"},
		{(*ast.Add)(nil), "empty expression"},
		{Add(Int(1), (*ast.Var)(nil)), "Add is missing an operand"},
		{Func("x", Sub(Var("x"), (*ast.Add)(nil))), "Sub is missing an operand"},
		{Call(Var("f"), Tuple(Int(1), Var(""))), "Var is missing a name"},
	}
	for _, tt := range tests {
		err := ast.Validate(tt.expr)
		if assert.Error(t, err, ast.ExprString(tt.expr)) {
			assert.Equal(t, tt.want, err.Error())
		}
	}
}
