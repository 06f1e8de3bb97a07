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

package types

import (
	"strings"

	"github.com/benbjohnson/immutable"
)

var emptyMap = immutable.NewSortedMap(nil)

var EmptySubst = Subst{emptyMap}

// Subst contains immutable mappings from type-variable names to types.
//
// The zero value is an empty substitution.
type Subst struct {
	m *immutable.SortedMap
}

func NewSubst() Subst { return Subst{emptyMap} }

// Create a substitution with a single entry.
func SingletonSubst(name string, t Type) Subst {
	return Subst{emptyMap.Set(name, t)}
}

func (s Subst) sorted() *immutable.SortedMap {
	if s.m == nil {
		return emptyMap
	}
	return s.m
}

// Get the number of entries in the substitution.
func (s Subst) Len() int { return s.sorted().Len() }

// Get the type bound to a type-variable.
func (s Subst) Get(name string) (Type, bool) {
	t, ok := s.sorted().Get(name)
	if !ok {
		return nil, false
	}
	return t.(Type), true
}

// Set returns a copy of s with name bound to t. Existing entries are not rewritten.
func (s Subst) Set(name string, t Type) Subst {
	return Subst{s.sorted().Set(name, t)}
}

// Bind returns a copy of s with name bound to t, after rewriting occurrences of name
// within existing entries. If s is solved and t contains no variable bound in s,
// the result is solved.
func (s Subst) Bind(name string, t Type) Subst {
	m := s.sorted()
	iter := m.Iterator()
	for !iter.Done() {
		k, v := iter.Next()
		if bound := v.(Type); Occurs(name, bound) {
			m = m.Set(k, Replace(bound, name, t))
		}
	}
	return Subst{m.Set(name, t)}
}

// Iterate over entries in the substitution, sorted by name.
// If f returns false, iteration will be stopped.
func (s Subst) Range(f func(string, Type) bool) {
	iter := s.sorted().Iterator()
	for !iter.Done() {
		k, v := iter.Next()
		if !f(k.(string), v.(Type)) {
			return
		}
	}
}

// Apply resolves t against the substitution. Each component of a function or tuple
// type is resolved independently; the type bound to a variable is used as-is.
func (s Subst) Apply(t Type) Type {
	if s.Len() == 0 {
		return t
	}
	switch t := t.(type) {
	case *Const:
		return t

	case *Var:
		if bound, ok := s.Get(t.Name); ok {
			return bound
		}
		return t

	case *Arrow:
		return &Arrow{Param: s.Apply(t.Param), Return: s.Apply(t.Return)}

	case *Tuple:
		return &Tuple{Elems: t.Elems.Map(s.Apply)}
	}
	panic("unexpected type " + t.TypeName())
}

// IsSolved reports whether no entry refers to a type-variable bound by another entry
// (or by itself). Applying a solved substitution is idempotent.
func (s Subst) IsSolved() bool {
	solved := true
	s.Range(func(_ string, t Type) bool {
		for _, name := range FreeVars(t).Slice() {
			if _, bound := s.Get(name); bound {
				solved = false
				break
			}
		}
		return solved
	})
	return solved
}

// String formats the substitution as `{v1: Int, v2: (Int -> Bool)}`.
func (s Subst) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	s.Range(func(name string, t Type) bool {
		if sb.Len() > 1 {
			sb.WriteString(", ")
		}
		sb.WriteString(name)
		sb.WriteString(": ")
		sb.WriteString(TypeString(t))
		return true
	})
	sb.WriteByte('}')
	return sb.String()
}
