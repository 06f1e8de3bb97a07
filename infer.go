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
	"github.com/pkg/errors"

	"github.com/wdamron/mono/ast"
	"github.com/wdamron/mono/types"
)

func (ti *InferenceContext) fail(e ast.Expr, err error) (types.Type, Constraints, error) {
	ti.invalid, ti.err = e, err
	return nil, nil, err
}

func (ti *InferenceContext) infer(env *TypeEnv, e ast.Expr) (types.Type, Constraints, error) {
	switch e := e.(type) {
	case *ast.IntLit:
		return types.Int, nil, nil

	case *ast.BoolLit:
		return types.Bool, nil, nil

	case *ast.Var:
		t, ok := env.Lookup(e.Name)
		if !ok {
			return ti.fail(e, &UnboundVariableError{Name: e.Name})
		}
		return t, nil, nil

	case *ast.Add:
		return ti.inferArith(env, e, e.Left, e.Right)

	case *ast.Sub:
		return ti.inferArith(env, e, e.Left, e.Right)

	case *ast.Let:
		// Let-bound types are not generalized; every use of the variable shares the inferred type.
		valueType, valueCs, err := ti.infer(env, e.Value)
		if err != nil {
			return nil, nil, err
		}
		bodyType, bodyCs, err := ti.infer(env.Extend(e.Var, valueType), e.Body)
		if err != nil {
			return nil, nil, err
		}
		return bodyType, concat(valueCs, bodyCs), nil

	case *ast.If:
		condType, condCs, err := ti.infer(env, e.Cond)
		if err != nil {
			return nil, nil, err
		}
		thenType, thenCs, err := ti.infer(env, e.Then)
		if err != nil {
			return nil, nil, err
		}
		elseType, elseCs, err := ti.infer(env, e.Else)
		if err != nil {
			return nil, nil, err
		}
		cs := Constraints{
			{Kind: Equal, Left: condType, Right: types.Bool, Origin: e.Cond},
			{Kind: Equal, Left: thenType, Right: elseType, Origin: e},
		}
		return thenType, concat(cs, condCs, thenCs, elseCs), nil

	case *ast.Func:
		tv := ti.varTracker.New()
		ret, bodyCs, err := ti.infer(env.Extend(e.Param, tv), e.Body)
		if err != nil {
			return nil, nil, err
		}
		return &types.Arrow{Param: tv, Return: ret}, bodyCs, nil

	case *ast.Call:
		funcType, funcCs, err := ti.infer(env, e.Func)
		if err != nil {
			return nil, nil, err
		}
		argType, argCs, err := ti.infer(env, e.Arg)
		if err != nil {
			return nil, nil, err
		}
		ret := ti.varTracker.New()
		cs := Constraints{
			{Kind: Equal, Left: funcType, Right: &types.Arrow{Param: argType, Return: ret}, Origin: e},
		}
		return ret, concat(cs, funcCs, argCs), nil

	case *ast.Tuple:
		elems := types.NewTypeListBuilder()
		var cs Constraints
		for _, elem := range e.Elems {
			t, elemCs, err := ti.infer(env, elem)
			if err != nil {
				return nil, nil, err
			}
			elems.Append(t)
			cs = append(cs, elemCs...)
		}
		return &types.Tuple{Elems: elems.Build()}, cs, nil

	case *ast.TupleAccess:
		tupleType, tupleCs, err := ti.infer(env, e.Tuple)
		if err != nil {
			return nil, nil, err
		}
		elem := ti.varTracker.New()
		cs := Constraints{
			{Kind: Project, Left: tupleType, Right: elem, Index: e.Index, Origin: e},
		}
		return elem, concat(cs, tupleCs), nil
	}

	var exprName string
	if e != nil {
		exprName = "(" + e.ExprName() + ")"
	} else {
		exprName = "(nil)"
	}
	return ti.fail(e, errors.New("Unhandled expression "+exprName))
}

func (ti *InferenceContext) inferArith(env *TypeEnv, e, left, right ast.Expr) (types.Type, Constraints, error) {
	leftType, leftCs, err := ti.infer(env, left)
	if err != nil {
		return nil, nil, err
	}
	rightType, rightCs, err := ti.infer(env, right)
	if err != nil {
		return nil, nil, err
	}
	cs := Constraints{
		{Kind: Equal, Left: leftType, Right: types.Int, Origin: left},
		{Kind: Equal, Left: rightType, Right: types.Int, Origin: right},
	}
	return types.Int, concat(cs, leftCs, rightCs), nil
}
