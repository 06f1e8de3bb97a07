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

// Package mono provides constraint-based type inference for a small functional language
// with integers, booleans, arithmetic, let-bindings, conditionals, single-argument
// functions, application, and tuples.
//
// Inference runs in three stages: Infer walks an expression and generates fresh
// type-variables and constraints; Unify solves the constraints into a substitution; and
// ApplySubstitution resolves the inferred type against the substitution.
//
// Let-bound types are monomorphic: a let-bound variable has exactly one type, shared by
// every use of the variable within the body.
//
// Supported Features:
//
//   - Tuple types with indexed element access (`(1, true).1`)
//   - Persistent type-environments and substitutions
//   - An optional occurs-check
//
// Links:
//
// Hindley-Milner type system: https://en.wikipedia.org/wiki/Hindley–Milner_type_system
//
// Unification: https://en.wikipedia.org/wiki/Unification_(computer_science)
package mono
