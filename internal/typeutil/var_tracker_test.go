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
	"testing"

	"github.com/hashicorp/go-set/v3"
)

func TestVarTracker(t *testing.T) {
	var vt VarTracker
	for i, want := range []string{"v1", "v2", "v3"} {
		if name := vt.New().Name; name != want {
			t.Fatalf("variable %d: expected %s, found %s", i, want, name)
		}
	}
	if vt.Count() != 3 {
		t.Fatalf("expected 3 tracked variables, found %d", vt.Count())
	}

	vt.Reset()
	if vt.Count() != 0 {
		t.Fatalf("expected no tracked variables after reset, found %d", vt.Count())
	}
	if name := vt.New().Name; name != "v1" {
		t.Fatalf("expected numbering to restart at v1, found %s", name)
	}
	if vars := vt.Vars(); len(vars) != 1 || vars[0].Name != "v1" {
		t.Fatalf("unexpected tracked variables: %v", vars)
	}
}

func TestVarTrackerSkipsReservedNames(t *testing.T) {
	var vt VarTracker
	vt.Reserve(set.From([]string{"v1", "v3", "a"}))
	vt.Reserve(nil)
	for i, want := range []string{"v2", "v4", "v5"} {
		if name := vt.New().Name; name != want {
			t.Fatalf("variable %d: expected %s, found %s", i, want, name)
		}
	}
	if vt.Count() != 3 {
		t.Fatalf("expected 3 tracked variables, found %d", vt.Count())
	}

	vt.Reset()
	if name := vt.New().Name; name != "v1" {
		t.Fatalf("expected reserved names to be released after reset, found %s", name)
	}
}
