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
	"strings"

	"github.com/benbjohnson/immutable"

	"github.com/wdamron/mono/types"
)

var emptyEnv = immutable.NewSortedMap(nil)

// TypeEnv is an immutable type-environment containing mappings from identifiers to declared types.
//
// Extending a type-environment returns a new environment and never modifies the receiver, so
// a type-environment may be shared across threads. A nil *TypeEnv is an empty environment.
type TypeEnv struct {
	types *immutable.SortedMap
}

// Create an empty type-environment.
func NewTypeEnv() *TypeEnv { return &TypeEnv{types: emptyEnv} }

func (e *TypeEnv) sorted() *immutable.SortedMap {
	if e == nil || e.types == nil {
		return emptyEnv
	}
	return e.types
}

// Lookup the type declared for an identifier.
func (e *TypeEnv) Lookup(name string) (types.Type, bool) {
	t, ok := e.sorted().Get(name)
	if !ok {
		return nil, false
	}
	return t.(types.Type), true
}

// Extend returns a new type-environment in which name is declared with type t, shadowing any
// existing declaration of name. The receiver is not modified.
func (e *TypeEnv) Extend(name string, t types.Type) *TypeEnv {
	return &TypeEnv{types: e.sorted().Set(name, t)}
}

// Get the number of declared identifiers.
func (e *TypeEnv) Len() int { return e.sorted().Len() }

// Iterate over declarations, sorted by identifier.
// If f returns false, iteration will be stopped.
func (e *TypeEnv) Range(f func(string, types.Type) bool) {
	iter := e.sorted().Iterator()
	for !iter.Done() {
		k, v := iter.Next()
		if !f(k.(string), v.(types.Type)) {
			return
		}
	}
}

// String formats the environment as `{f: (Int -> Int), x: Bool}`.
func (e *TypeEnv) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	e.Range(func(name string, t types.Type) bool {
		if sb.Len() > 1 {
			sb.WriteString(", ")
		}
		sb.WriteString(name)
		sb.WriteString(": ")
		sb.WriteString(types.TypeString(t))
		return true
	})
	sb.WriteByte('}')
	return sb.String()
}
