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
	"context"
	"log/slog"

	"github.com/hashicorp/go-set/v3"
	"github.com/pkg/errors"

	"github.com/wdamron/mono/ast"
	"github.com/wdamron/mono/internal/typeutil"
	"github.com/wdamron/mono/types"
)

// InferenceContext is a reusable context for type inference.
//
// Each call of Infer, Solve, or TypeOf is a separate inference run; fresh type-variables are
// numbered from `v1` within each run. An inference context cannot be used concurrently; use a
// separate context for each goroutine.
type InferenceContext struct {
	occursCheck bool
	needsReset  bool

	varTracker typeutil.VarTracker
	rootExpr   ast.Expr
	logger     *slog.Logger

	err     error
	invalid ast.Expr
}

// Solution is the outcome of a successful inference run.
type Solution struct {
	// Resolved type of the expression
	Type types.Type
	// Type of the expression before substitution
	Unresolved  types.Type
	Constraints Constraints
	Subst       types.Subst
}

// Create a new type-inference context. A context may be reused for inference.
func NewContext() *InferenceContext { return &InferenceContext{} }

func (ti *InferenceContext) reset() {
	ti.varTracker.Reset()
	ti.rootExpr, ti.err, ti.invalid, ti.needsReset = nil, nil, nil, false
}

// Reset the state of the context. The context will be reset automatically before inference.
func (ti *InferenceContext) Reset() {
	if !ti.needsReset {
		return
	}
	ti.reset()
}

// The occurs-check rejects constraints which would bind a type-variable to a type containing
// itself, failing with an InfiniteTypeError. Without it, such bindings are accepted and
// produce a self-referential substitution.
//
// By default, the occurs-check is disabled.
func (ti *InferenceContext) EnableOccursCheck(enabled bool) { ti.occursCheck = enabled }

// Set the logger used for debug output. By default, slog.Default() is used.
func (ti *InferenceContext) SetLogger(logger *slog.Logger) { ti.logger = logger }

// Get the error which caused inference to fail.
func (ti *InferenceContext) Error() error { return ti.err }

// Get the expression which caused inference to fail.
func (ti *InferenceContext) InvalidExpr() ast.Expr { return ti.invalid }

// Infer the type of expr within env, along with the constraints which the type must satisfy.
// The returned type may contain type-variables which are resolved by unifying the constraints.
func (ti *InferenceContext) Infer(expr ast.Expr, env *TypeEnv) (types.Type, Constraints, error) {
	if expr == nil {
		return nil, nil, errors.New("Empty expression")
	}
	if ti.needsReset {
		ti.reset()
	}
	ti.needsReset = true
	if err := ast.Validate(expr); err != nil {
		ti.invalid, ti.err = expr, errors.Wrap(err, "Invalid expression")
		return nil, nil, ti.err
	}
	if env.Len() > 0 {
		// Fresh variables must not capture variables which are free in the environment.
		envVars := set.New[string](env.Len())
		env.Range(func(_ string, t types.Type) bool {
			types.CollectFreeVars(envVars, t)
			return true
		})
		ti.varTracker.Reserve(envVars)
	}
	ti.rootExpr = expr
	t, cs, err := ti.infer(env, expr)
	ti.rootExpr = nil
	if err != nil {
		return nil, nil, err
	}
	if log := ti.log(); log.Enabled(context.Background(), slog.LevelDebug) {
		log.Debug("generated constraints",
			"expr", ast.ExprString(expr),
			"type", types.TypeString(t),
			"constraints", len(cs),
			"vars", ti.varTracker.Count())
	}
	return t, cs, nil
}

// Solve infers the type of expr within env, unifies the generated constraints, and resolves the type.
func (ti *InferenceContext) Solve(expr ast.Expr, env *TypeEnv) (*Solution, error) {
	t, cs, err := ti.Infer(expr, env)
	if err != nil {
		return nil, err
	}
	u := newUnifier(ti.log(), ti.occursCheck)
	s, err := u.solve(cs)
	if err != nil {
		ti.invalid, ti.err = u.failed.Origin, err
		return nil, err
	}
	return &Solution{Type: s.Apply(t), Unresolved: t, Constraints: cs, Subst: s}, nil
}

// TypeOf infers the resolved type of expr within env.
func (ti *InferenceContext) TypeOf(expr ast.Expr, env *TypeEnv) (types.Type, error) {
	sol, err := ti.Solve(expr, env)
	if err != nil {
		return nil, err
	}
	return sol.Type, nil
}

func (ti *InferenceContext) log() *slog.Logger {
	if ti.logger == nil {
		return slog.Default()
	}
	return ti.logger
}
