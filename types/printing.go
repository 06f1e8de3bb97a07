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
	"sync"
)

var printerPool = sync.Pool{
	New: func() interface{} { return &typePrinter{} },
}

func newTypePrinter() *typePrinter { return printerPool.Get().(*typePrinter) }

func (p *typePrinter) Release() {
	p.sb.Reset()
	printerPool.Put(p)
}

type typePrinter struct {
	sb strings.Builder
}

// TypeString returns a string representation of a Type.
//
//	Int, Bool, v1, (Int -> Bool), (Int, Bool)
func TypeString(t Type) string {
	p := newTypePrinter()
	typeString(p, t)
	s := p.sb.String()
	p.Release()
	return s
}

func typeString(p *typePrinter, t Type) {
	switch t := t.(type) {
	case *Const:
		p.sb.WriteString(t.Name())

	case *Var:
		p.sb.WriteString(t.Name)

	case *Arrow:
		p.sb.WriteByte('(')
		typeString(p, t.Param)
		p.sb.WriteString(" -> ")
		typeString(p, t.Return)
		p.sb.WriteByte(')')

	case *Tuple:
		p.sb.WriteByte('(')
		t.Elems.Range(func(i int, t Type) bool {
			if i > 0 {
				p.sb.WriteString(", ")
			}
			typeString(p, t)
			return true
		})
		p.sb.WriteByte(')')

	case nil:
		p.sb.WriteString("<nil>")
	}
}
