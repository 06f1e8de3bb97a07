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
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/kr/pretty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/wdamron/mono/ast"
	. "github.com/wdamron/mono/construct"
	"github.com/wdamron/mono/types"
)

func typeOf(t *testing.T, expr ast.Expr, env *TypeEnv) string {
	t.Helper()
	ty, err := NewContext().TypeOf(expr, env)
	require.NoError(t, err, ast.ExprString(expr))
	return types.TypeString(ty)
}

func TestLiterals(t *testing.T) {
	ctx := NewContext()
	for _, expr := range []ast.Expr{Int(0), Int(-7), Bool(true), Bool(false)} {
		ty, cs, err := ctx.Infer(expr, nil)
		require.NoError(t, err)
		assert.Empty(t, cs)
		if _, ok := expr.(*ast.IntLit); ok {
			assert.Same(t, types.Int, ty)
		} else {
			assert.Same(t, types.Bool, ty)
		}
	}
}

func TestEmptyUnification(t *testing.T) {
	s, err := Unify(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())

	tv := TVar("v1")
	ty := TArrow(tv, TTuple(TInt(), tv))
	assert.Same(t, ty, ApplySubstitution(ty, s))
}

func TestInferTypes(t *testing.T) {
	tests := []struct {
		expr ast.Expr
		want string
	}{
		{Let("id", Func("x", Var("x")), Tuple(Call(Var("id"), Int(5)), Call(Var("id"), Int(1)))), "(Int, Int)"},
		{Func("x", Add(Var("x"), Int(1))), "(Int -> Int)"},
		{If(Bool(true), Int(1), Int(2)), "Int"},
		{Call(Func("x", Var("x")), Bool(true)), "Bool"},
		{Func("x", Var("x")), "(v1 -> v1)"},
		{FuncN([]string{"f", "x"}, Call(Var("f"), Var("x"))), "((v2 -> v3) -> (v2 -> v3))"},
		{Sub(Int(3), Sub(Int(2), Int(1))), "Int"},
		{Tuple(), "()"},
		{Tuple(Int(1), Tuple(Bool(true), Int(2))), "(Int, (Bool, Int))"},
		{Func("x", If(Var("x"), Tuple(Var("x"), Int(1)), Tuple(Bool(false), Int(2)))), "(Bool -> (Bool, Int))"},
		{TupleAccess(Tuple(Int(1), Bool(true)), 1), "Bool"},
		{TupleAccess(TupleAccess(Tuple(Tuple(Int(1), Bool(true))), 0), 0), "Int"},
		{
			// the projection from p waits until p is bound to a tuple
			Func("p", Let("q", TupleAccess(Var("p"), 0), If(Bool(true), Var("p"), Tuple(Int(1), Bool(true))))),
			"((Int, Bool) -> (Int, Bool))",
		},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, typeOf(t, tt.expr, nil), ast.ExprString(tt.expr))
	}
}

func TestUnboundVariable(t *testing.T) {
	ctx := NewContext()
	y := Var("y")
	_, err := ctx.TypeOf(Add(y, Int(1)), nil)

	var unbound *UnboundVariableError
	require.True(t, errors.As(err, &unbound), "error: %v", err)
	assert.Equal(t, "y", unbound.Name)
	assert.Equal(t, "Unbound variable y", err.Error())
	assert.Same(t, y, ctx.InvalidExpr())
	assert.Equal(t, err, ctx.Error())
}

func TestUnifyMismatch(t *testing.T) {
	ctx := NewContext()
	expr := If(Bool(true), Int(1), Bool(false))
	_, err := ctx.TypeOf(expr, nil)

	var mismatch *UnifyMismatchError
	require.True(t, errors.As(err, &mismatch), "error: %v", err)
	assert.Same(t, types.Int, mismatch.A)
	assert.Same(t, types.Bool, mismatch.B)
	assert.Equal(t, "Cannot unify Int with Bool", err.Error())
	assert.Same(t, expr, ctx.InvalidExpr())

	_, err = ctx.TypeOf(Add(Int(1), Bool(true)), nil)
	assert.True(t, errors.As(err, &mismatch))

	_, err = ctx.TypeOf(Call(Int(1), Int(2)), nil)
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, "Cannot unify Int with (Int -> v1)", err.Error())
}

func TestArityMismatch(t *testing.T) {
	_, err := Unify(Constraints{Eq(TTuple(TInt(), TBool()), TTuple(TInt(), TBool(), TInt()))})

	var arity *ArityMismatchError
	require.True(t, errors.As(err, &arity), "error: %v", err)
	assert.Equal(t, ArityMismatchError{Left: 2, Right: 3}, *arity)

	_, err = NewContext().TypeOf(If(Bool(true), Tuple(Int(1)), Tuple(Int(1), Int(2))), nil)
	require.True(t, errors.As(err, &arity))
	assert.Equal(t, ArityMismatchError{Left: 1, Right: 2}, *arity)
}

func TestTupleAccessErrors(t *testing.T) {
	ctx := NewContext()

	_, err := ctx.TypeOf(TupleAccess(Tuple(Int(1), Bool(true)), 2), nil)
	var outOfRange *IndexOutOfRangeError
	require.True(t, errors.As(err, &outOfRange), "error: %v", err)
	assert.Equal(t, IndexOutOfRangeError{Index: 2, Arity: 2}, *outOfRange)

	expr := Func("p", TupleAccess(Var("p"), 0))
	_, err = ctx.TypeOf(expr, nil)
	var unresolved *UnresolvedTupleError
	require.True(t, errors.As(err, &unresolved), "error: %v", err)
	assert.Equal(t, "v1", types.TypeString(unresolved.Type))
	assert.Equal(t, 0, unresolved.Index)
	assert.Same(t, expr.Body, ctx.InvalidExpr())

	_, err = ctx.TypeOf(TupleAccess(Func("x", Var("x")), 0), nil)
	var notTuple *NotATupleError
	require.True(t, errors.As(err, &notTuple), "error: %v", err)
	assert.Equal(t, "(v1 -> v1)", types.TypeString(notTuple.Type))

	_, err = Unify(Constraints{Proj(TBool(), 3, TVar("a"))})
	require.True(t, errors.As(err, &notTuple))
	assert.Equal(t, "Cannot select element 3 from non-tuple type Bool", err.Error())

	s, err := Unify(Constraints{Proj(TVar("t"), 1, TVar("b")), Eq(TVar("t"), TTuple(TInt(), TBool()))})
	require.NoError(t, err)
	assert.Equal(t, "{b: Bool, t: (Int, Bool)}", s.String())
}

func TestOccursCheck(t *testing.T) {
	expr := Func("x", Call(Var("x"), Var("x")))

	ctx := NewContext()
	ty, err := ctx.TypeOf(expr, nil)
	require.NoError(t, err)
	assert.Equal(t, "((v1 -> v2) -> v2)", types.TypeString(ty))

	ctx.EnableOccursCheck(true)
	_, err = ctx.TypeOf(expr, nil)
	var infinite *InfiniteTypeError
	require.True(t, errors.As(err, &infinite), "error: %v", err)
	assert.Equal(t, "v1", infinite.Var.Name)
	assert.Equal(t, "(v1 -> v2)", types.TypeString(infinite.Type))

	_, err = Unify(Constraints{Eq(TVar("a"), TTuple(TVar("a")))}, WithOccursCheck())
	assert.True(t, errors.As(err, &infinite))
}

func TestConstraintOrder(t *testing.T) {
	ctx := NewContext()
	expr := Func("f", Func("x", If(Var("x"), Call(Var("f"), Var("x")), Add(Int(1), Int(2)))))
	ty, cs, err := ctx.Infer(expr, nil)
	require.NoError(t, err)
	assert.Equal(t, "(v1 -> (v2 -> v3))", types.TypeString(ty))

	want := []string{
		"v2 = Bool",
		"v3 = Int",
		"v1 = (v2 -> v3)",
		"Int = Int",
		"Int = Int",
	}
	if diff := pretty.Diff(want, cs.Strings()); len(diff) > 0 {
		t.Fatalf("constraints: %s\n%s", cs, diff)
	}

	s, err := Unify(cs)
	require.NoError(t, err)
	assert.Equal(t, "{v1: (Bool -> Int), v2: Bool, v3: Int}", s.String())
	assert.Equal(t, "((Bool -> Int) -> (Bool -> Int))", types.TypeString(ApplySubstitution(ty, s)))
}

func TestSolvedSubstitution(t *testing.T) {
	exprs := []ast.Expr{
		Let("id", Func("x", Var("x")), Tuple(Call(Var("id"), Int(5)), Call(Var("id"), Int(1)))),
		FuncN([]string{"f", "g", "x"}, Call(Var("f"), Call(Var("g"), Var("x")))),
		Func("p", Let("q", TupleAccess(Var("p"), 1), If(Var("q"), Tuple(Int(1), Var("q")), Var("p")))),
	}
	ctx := NewContext()
	for _, expr := range exprs {
		sol, err := ctx.Solve(expr, nil)
		require.NoError(t, err, ast.ExprString(expr))
		assert.True(t, sol.Subst.IsSolved(), sol.Subst.String())

		once := ApplySubstitution(sol.Unresolved, sol.Subst)
		twice := ApplySubstitution(once, sol.Subst)
		assert.True(t, types.Equal(once, twice), "%s != %s", once, twice)
		assert.True(t, types.Equal(sol.Type, once))
	}
}

func TestSiblingScopesAreIsolated(t *testing.T) {
	env := NewTypeEnv().Extend("b", types.Bool)

	_, err := NewContext().TypeOf(If(Var("b"), Let("x", Int(1), Var("x")), Var("x")), env)
	var unbound *UnboundVariableError
	require.True(t, errors.As(err, &unbound), "error: %v", err)
	assert.Equal(t, "x", unbound.Name)

	_, err = NewContext().TypeOf(Tuple(Func("y", Var("y")), Var("y")), env)
	require.True(t, errors.As(err, &unbound))
	assert.Equal(t, "y", unbound.Name)

	// shadowing within one branch does not leak into the other
	expr := Let("x", Bool(true), If(Var("b"), Let("x", Int(1), Var("x")), Let("y", Var("x"), Int(2))))
	assert.Equal(t, "Int", typeOf(t, expr, env))
	assert.Equal(t, 1, env.Len())
}

func TestTypeEnvExtend(t *testing.T) {
	base := NewTypeEnv().Extend("x", types.Int)
	shadowed := base.Extend("x", types.Bool).Extend("f", TArrow(TInt(), TInt()))

	ty, ok := base.Lookup("x")
	require.True(t, ok)
	assert.Same(t, types.Int, ty)
	_, ok = base.Lookup("f")
	assert.False(t, ok)

	ty, _ = shadowed.Lookup("x")
	assert.Same(t, types.Bool, ty)
	assert.Equal(t, "{f: (Int -> Int), x: Bool}", shadowed.String())
	assert.Equal(t, "{x: Int}", base.String())

	var empty *TypeEnv
	_, ok = empty.Lookup("x")
	assert.False(t, ok)
	assert.Equal(t, 0, empty.Len())
}

func TestFreshVarsRestartPerRun(t *testing.T) {
	ctx := NewContext()
	expr := Func("x", Func("y", Var("x")))
	for i := 0; i < 3; i++ {
		ty, err := ctx.TypeOf(expr, nil)
		require.NoError(t, err)
		assert.Equal(t, "(v1 -> (v2 -> v1))", types.TypeString(ty))
	}

	// a failed run does not leak state into the next run
	_, err := ctx.TypeOf(Var("missing"), nil)
	require.Error(t, err)
	ty, err := ctx.TypeOf(expr, nil)
	require.NoError(t, err)
	assert.Equal(t, "(v1 -> (v2 -> v1))", types.TypeString(ty))
	assert.Nil(t, ctx.Error())
	assert.Nil(t, ctx.InvalidExpr())
}

func TestConcurrentContexts(t *testing.T) {
	env := NewTypeEnv().
		Extend("pair", TArrowN([]types.Type{TInt(), TBool()}, TTuple(TInt(), TBool()))).
		Extend("n", TInt())
	expr := Let("p", Call(Var("pair"), Var("n"), Bool(true)),
		Func("f", Tuple(Call(Var("f"), TupleAccess(Var("p"), 0)), TupleAccess(Var("p"), 1))))

	want := typeOf(t, expr, env)
	assert.Equal(t, "((Int -> v5) -> (v5, Bool))", want)

	results := make([]string, 16)
	g, _ := errgroup.WithContext(context.Background())
	for i := range results {
		g.Go(func() error {
			ctx := NewContext()
			for j := 0; j < 50; j++ {
				ty, err := ctx.TypeOf(expr, env)
				if err != nil {
					return err
				}
				results[i] = types.TypeString(ty)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestUnifyLogsBindings(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	s, err := Unify(Constraints{Eq(TVar("a"), TInt()), Eq(TVar("b"), TArrow(TVar("a"), TVar("a")))}, WithLogger(logger))
	require.NoError(t, err)
	assert.Equal(t, "{a: Int, b: (Int -> Int)}", s.String())
	assert.Contains(t, buf.String(), "msg=bind var=a type=Int")
	assert.Contains(t, buf.String(), "var=b")
}

func TestEmptyExpression(t *testing.T) {
	_, _, err := NewContext().Infer(nil, nil)
	assert.EqualError(t, err, "Empty expression")
}

func TestUnifyNilLogger(t *testing.T) {
	var s types.Subst
	require.NotPanics(t, func() {
		var err error
		s, err = Unify(Constraints{Eq(TVar("a"), TInt())}, WithLogger(nil))
		require.NoError(t, err)
	})
	assert.Equal(t, "{a: Int}", s.String())
}

func TestInvalidExpression(t *testing.T) {
	tests := []struct {
		expr ast.Expr
		want string
	}{
		{Add(Int(1), (*ast.Var)(nil)), "Invalid expression: Add is missing an operand"},
		{Let("x", Int(1), Tuple(Var("x"), (*ast.Tuple)(nil))), "Invalid expression: Tuple is missing an element"},
		{Func("", Int(1)), "Invalid expression: Func is missing a parameter name"},
		{TupleAccess(Tuple(Int(1)), -1), "Invalid expression: TupleAccess index -1 is negative"},
	}
	for _, tt := range tests {
		ctx := NewContext()
		var err error
		require.NotPanics(t, func() { _, _, err = ctx.Infer(tt.expr, nil) })
		assert.EqualError(t, err, tt.want)
		assert.Equal(t, err, ctx.Error())
		assert.Same(t, tt.expr, ctx.InvalidExpr())
	}
}

func TestFreshVarsAvoidEnvVars(t *testing.T) {
	env := NewTypeEnv().Extend("g", TVar("v1"))
	assert.Equal(t, "((Int -> Int), v1)", typeOf(t, Tuple(Func("x", Add(Var("x"), Int(1))), Var("g")), env))
	assert.Equal(t, "(v2 -> (v2, v1))", typeOf(t, Func("x", Tuple(Var("x"), Var("g"))), env))

	env = env.Extend("h", TArrow(TVar("v2"), TTuple(TVar("v3"), TInt())))
	assert.Equal(t, "(v4 -> (v4, v1))", typeOf(t, Func("x", Tuple(Var("x"), Var("g"))), env))

	// reserved names are released once the context is reused without them
	ctx := NewContext()
	_, err := ctx.TypeOf(Var("g"), env)
	require.NoError(t, err)
	ty, err := ctx.TypeOf(Func("x", Var("x")), nil)
	require.NoError(t, err)
	assert.Equal(t, "(v1 -> v1)", types.TypeString(ty))
}
