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
	"strings"

	"github.com/wdamron/mono/ast"
	"github.com/wdamron/mono/types"
)

// ConstraintKind distinguishes equality constraints from tuple projections.
type ConstraintKind uint8

const (
	// Left and Right must be equal after substitution.
	Equal ConstraintKind = iota
	// Left must be a tuple-type whose element at Index is equal to Right after substitution.
	Project
)

// Constraint is a requirement on types, resolved by unification.
type Constraint struct {
	Kind        ConstraintKind
	Left, Right types.Type
	Index       int
	// Expression which produced the constraint, if any. Constraints derived during
	// unification keep the origin of the constraint they were derived from.
	Origin ast.Expr
}

// Create an equality constraint: `a = b`
func Eq(a, b types.Type) Constraint { return Constraint{Kind: Equal, Left: a, Right: b} }

// Create a projection constraint: `tuple.index = elem`
func Proj(tuple types.Type, index int, elem types.Type) Constraint {
	return Constraint{Kind: Project, Left: tuple, Right: elem, Index: index}
}

func (c Constraint) derive(left, right types.Type) Constraint {
	return Constraint{Kind: Equal, Left: left, Right: right, Origin: c.Origin}
}

// replace rewrites both sides of the constraint with a single binding.
func (c Constraint) replace(name string, with types.Type) Constraint {
	c.Left, c.Right = types.Replace(c.Left, name, with), types.Replace(c.Right, name, with)
	return c
}

// String formats the constraint as `Int = v1` or `v2.0 = v3`.
func (c Constraint) String() string {
	var sb strings.Builder
	sb.WriteString(types.TypeString(c.Left))
	if c.Kind == Project {
		sb.WriteByte('.')
		sb.WriteString(strconv.Itoa(c.Index))
	}
	sb.WriteString(" = ")
	sb.WriteString(types.TypeString(c.Right))
	return sb.String()
}

// Constraints is an ordered collection of constraints. Unification processes constraints in order.
type Constraints []Constraint

// Strings formats each constraint.
func (cs Constraints) Strings() []string {
	ss := make([]string, len(cs))
	for i, c := range cs {
		ss[i] = c.String()
	}
	return ss
}

func (cs Constraints) String() string { return "[" + strings.Join(cs.Strings(), ", ") + "]" }

func concat(lists ...Constraints) Constraints {
	n := 0
	for _, cs := range lists {
		n += len(cs)
	}
	if n == 0 {
		return nil
	}
	out := make(Constraints, 0, n)
	for _, cs := range lists {
		out = append(out, cs...)
	}
	return out
}
