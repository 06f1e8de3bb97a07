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

package main

import (
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/wdamron/mono"
	"github.com/wdamron/mono/syntax"
)

// Prelude declares the types of identifiers available to every input.
//
//	occurs_check = true
//
//	[bindings]
//	succ = "Int -> Int"
//	origin = "(Int, Int)"
type Prelude struct {
	OccursCheck bool              `toml:"occurs_check"`
	Bindings    map[string]string `toml:"bindings"`
}

// LoadPrelude loads a prelude file from the given path.
func LoadPrelude(path string) (*Prelude, error) {
	var prelude Prelude
	md, err := toml.DecodeFile(path, &prelude)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load prelude %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.Errorf("prelude %s: unknown key %q", path, undecoded[0].String())
	}
	return &prelude, nil
}

// Env parses each binding and declares it within a new type-environment.
func (p *Prelude) Env() (*mono.TypeEnv, error) {
	env := mono.NewTypeEnv()
	if p == nil {
		return env, nil
	}
	names := make([]string, 0, len(p.Bindings))
	for name := range p.Bindings {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if toks, err := syntax.Tokenize(name); err != nil || len(toks) != 2 || toks[0].Type != syntax.IDENT {
			return nil, errors.Errorf("prelude binding %q is not an identifier", name)
		}
		t, err := syntax.ParseType(p.Bindings[name])
		if err != nil {
			return nil, errors.Wrapf(err, "prelude binding %s", name)
		}
		env = env.Extend(name, t)
	}
	return env, nil
}
