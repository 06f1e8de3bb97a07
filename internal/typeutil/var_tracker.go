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

package typeutil

import (
	"strconv"

	"github.com/hashicorp/go-set/v3"

	"github.com/wdamron/mono/types"
)

// VarPrefix is prepended to the sequence number of each fresh type-variable.
const VarPrefix = "v"

// VarTracker allocates fresh type-variables for a single inference run and tracks allocations.
//
// Variables are named `v1`, `v2`, ... in allocation order, skipping reserved names.
// A VarTracker cannot be used concurrently.
type VarTracker struct {
	NextId   uint
	vars     []*types.Var
	reserved *set.Set[string]
}

// Reset restarts numbering at `v1`, forgets tracked variables, and releases reserved names.
func (vt *VarTracker) Reset() {
	for i := range vt.vars {
		vt.vars[i] = nil
	}
	vt.NextId, vt.vars, vt.reserved = 0, vt.vars[:0], nil
}

// Reserve prevents New from allocating any of the given names until the next reset.
func (vt *VarTracker) Reserve(names *set.Set[string]) {
	if names == nil || names.Empty() {
		return
	}
	if vt.reserved == nil {
		vt.reserved = set.New[string](names.Size())
	}
	for _, name := range names.Slice() {
		vt.reserved.Insert(name)
	}
}

// Count returns the number of variables allocated since the last reset.
func (vt *VarTracker) Count() int { return len(vt.vars) }

// Vars returns the variables allocated since the last reset, in allocation order.
func (vt *VarTracker) Vars() []*types.Var { return vt.vars }

// New allocates a fresh type-variable.
func (vt *VarTracker) New() *types.Var {
	for {
		vt.NextId++
		name := VarPrefix + strconv.FormatUint(uint64(vt.NextId), 10)
		if vt.reserved != nil && vt.reserved.Contains(name) {
			continue
		}
		tv := types.NewVar(name)
		vt.vars = append(vt.vars, tv)
		return tv
	}
}
