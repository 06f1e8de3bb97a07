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

	"github.com/wdamron/mono/types"
)

// UnifyOption configures a call to Unify.
type UnifyOption func(*unifier)

// WithOccursCheck rejects bindings of a type-variable to a type containing itself.
func WithOccursCheck() UnifyOption { return func(u *unifier) { u.occursCheck = true } }

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) UnifyOption {
	return func(u *unifier) {
		if logger != nil {
			u.log = logger
		}
	}
}

// Unify solves a set of constraints, processing constraints in order. The returned substitution
// is solved: applying it to a type is idempotent.
//
// Unification fails with UnifyMismatchError, ArityMismatchError, IndexOutOfRangeError,
// NotATupleError, UnresolvedTupleError, or (with the occurs-check enabled) InfiniteTypeError.
// No partial substitution is returned on failure.
func Unify(cs Constraints, opts ...UnifyOption) (types.Subst, error) {
	u := newUnifier(slog.Default(), false)
	for _, opt := range opts {
		opt(u)
	}
	return u.solve(cs)
}

// ApplySubstitution resolves t against s.
func ApplySubstitution(t types.Type, s types.Subst) types.Type { return s.Apply(t) }

type unifier struct {
	occursCheck bool
	log         *slog.Logger

	queue Constraints
	// projections from a type-variable, waiting for the variable to be bound
	deferred Constraints
	subst    types.Subst
	failed   Constraint
}

func newUnifier(log *slog.Logger, occursCheck bool) *unifier {
	return &unifier{log: log, occursCheck: occursCheck, subst: types.NewSubst()}
}

func (u *unifier) solve(cs Constraints) (types.Subst, error) {
	u.queue = append(make(Constraints, 0, len(cs)), cs...)
	for len(u.queue) > 0 {
		c := u.queue[0]
		u.queue = u.queue[1:]
		if err := u.step(c); err != nil {
			u.failed = c
			return types.EmptySubst, err
		}
	}
	if len(u.deferred) > 0 {
		c := u.deferred[0]
		u.failed = c
		return types.EmptySubst, &UnresolvedTupleError{Type: c.Left, Index: c.Index}
	}
	return u.subst, nil
}

func (u *unifier) step(c Constraint) error {
	if c.Kind == Project {
		return u.project(c)
	}
	a, b := c.Left, c.Right
	if types.Equal(a, b) {
		return nil
	}
	if tv, ok := a.(*types.Var); ok {
		return u.bind(tv, b)
	}
	if tv, ok := b.(*types.Var); ok {
		return u.bind(tv, a)
	}
	switch a := a.(type) {
	case *types.Arrow:
		if b, ok := b.(*types.Arrow); ok {
			u.queue = append(u.queue, c.derive(a.Param, b.Param), c.derive(a.Return, b.Return))
			return nil
		}

	case *types.Tuple:
		if b, ok := b.(*types.Tuple); ok {
			if a.Len() != b.Len() {
				return &ArityMismatchError{Left: a.Len(), Right: b.Len()}
			}
			a.Elems.Range(func(i int, elem types.Type) bool {
				u.queue = append(u.queue, c.derive(elem, b.Elems.Get(i)))
				return true
			})
			return nil
		}
	}
	return &UnifyMismatchError{A: a, B: b}
}

func (u *unifier) project(c Constraint) error {
	switch t := c.Left.(type) {
	case *types.Tuple:
		if c.Index < 0 || c.Index >= t.Len() {
			return &IndexOutOfRangeError{Index: c.Index, Arity: t.Len()}
		}
		u.queue = append(u.queue, c.derive(t.Elems.Get(c.Index), c.Right))
		return nil

	case *types.Var:
		u.deferred = append(u.deferred, c)
		return nil
	}
	return &NotATupleError{Type: c.Left, Index: c.Index}
}

func (u *unifier) bind(tv *types.Var, t types.Type) error {
	if u.occursCheck && types.Occurs(tv.Name, t) {
		return &InfiniteTypeError{Var: tv, Type: t}
	}
	if u.log.Enabled(context.Background(), slog.LevelDebug) {
		u.log.Debug("bind", "var", tv.Name, "type", types.TypeString(t), "pending", len(u.queue))
	}
	u.subst = u.subst.Bind(tv.Name, t)
	for i, c := range u.queue {
		u.queue[i] = c.replace(tv.Name, t)
	}
	if len(u.deferred) > 0 {
		for _, c := range u.deferred {
			u.queue = append(u.queue, c.replace(tv.Name, t))
		}
		u.deferred = u.deferred[:0]
	}
	return nil
}
