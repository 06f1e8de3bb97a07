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
	"slices"

	"github.com/hashicorp/go-set/v3"
)

// FreeVars returns the names of all type-variables occurring in t.
func FreeVars(t Type) *set.Set[string] {
	vars := set.New[string](4)
	collectVars(vars, t)
	return vars
}

// CollectFreeVars inserts the names of all type-variables occurring in t into vars.
func CollectFreeVars(vars *set.Set[string], t Type) { collectVars(vars, t) }

// SortedFreeVars returns the names of all type-variables occurring in t, sorted by name.
func SortedFreeVars(t Type) []string {
	names := FreeVars(t).Slice()
	slices.Sort(names)
	return names
}

// Occurs reports whether the type-variable name occurs within t.
func Occurs(name string, t Type) bool {
	switch t := t.(type) {
	case *Var:
		return t.Name == name
	case *Const:
		return false
	}
	return FreeVars(t).Contains(name)
}

func collectVars(vars *set.Set[string], t Type) {
	switch t := t.(type) {
	case *Var:
		vars.Insert(t.Name)

	case *Arrow:
		collectVars(vars, t.Param)
		collectVars(vars, t.Return)

	case *Tuple:
		t.Elems.Range(func(_ int, t Type) bool {
			collectVars(vars, t)
			return true
		})
	}
}
