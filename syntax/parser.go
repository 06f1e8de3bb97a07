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

// Package syntax parses the textual form of expressions and type annotations.
//
//	expr    := "let" IDENT "=" expr "in" expr
//	         | "if" expr "then" expr "else" expr
//	         | "fun" IDENT "->" expr
//	         | arith
//	arith   := app (("+" | "-") app)*
//	app     := postfix postfix*
//	postfix := atom ("." INT)*
//	atom    := INT | "true" | "false" | IDENT | "(" [expr ("," expr)* [","]] ")"
//
//	type    := tatom ["->" type]
//	tatom   := "Int" | "Bool" | IDENT | "(" [type ("," type)* [","]] ")"
//
// A parenthesized expression or type without a comma is a grouping; `(e,)` is a
// one-element tuple. `#` starts a comment which runs to the end of the line.
package syntax

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"

	"github.com/wdamron/mono/ast"
	"github.com/wdamron/mono/types"
)

// Error is a syntax error at a position within the source. Line and Col are 1-based.
type Error struct {
	Line, Col int
	Msg       string
	Err       error
}

func (e *Error) Error() string {
	s := strconv.Itoa(e.Line) + ":" + strconv.Itoa(e.Col) + ": " + e.Msg
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *Error) Cause() error  { return e.Err }
func (e *Error) Unwrap() error { return e.Err }

type parser struct {
	toks []Token
	i    int
}

// ParseExpr parses a complete expression.
func ParseExpr(src string) (ast.Expr, error) {
	p, err := newParser(src)
	if err != nil {
		return nil, err
	}
	e, err := p.expr()
	if err != nil {
		return nil, err
	}
	if err := p.end(); err != nil {
		return nil, err
	}
	return e, nil
}

// ParseType parses a complete type annotation. Identifiers other than `Int` and `Bool`
// are type-variables.
func ParseType(src string) (types.Type, error) {
	p, err := newParser(src)
	if err != nil {
		return nil, err
	}
	t, err := p.typ()
	if err != nil {
		return nil, err
	}
	if err := p.end(); err != nil {
		return nil, err
	}
	return t, nil
}

func newParser(src string) (*parser, error) {
	toks, err := Tokenize(src)
	if err != nil {
		return nil, err
	}
	return &parser{toks: toks}, nil
}

func (p *parser) peek() Token { return p.toks[p.i] }

func (p *parser) next() Token {
	tok := p.toks[p.i]
	if tok.Type != EOF {
		p.i++
	}
	return tok
}

func (p *parser) match(t TokenType) bool {
	if p.peek().Type == t {
		p.i++
		return true
	}
	return false
}

func (p *parser) errorf(tok Token, format string, args ...interface{}) error {
	return &Error{Line: tok.Line, Col: tok.Col, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) need(t TokenType) (Token, error) {
	tok := p.next()
	if tok.Type != t {
		return tok, p.errorf(tok, "expected %s, found %s", t, tok)
	}
	return tok, nil
}

func (p *parser) end() error {
	if tok := p.peek(); tok.Type != EOF {
		return p.errorf(tok, "unexpected %s after end of input", tok)
	}
	return nil
}

func (p *parser) expr() (ast.Expr, error) {
	switch p.peek().Type {
	case LET:
		p.next()
		name, err := p.need(IDENT)
		if err != nil {
			return nil, err
		}
		if _, err := p.need(EQUALS); err != nil {
			return nil, err
		}
		value, err := p.expr()
		if err != nil {
			return nil, err
		}
		if _, err := p.need(IN); err != nil {
			return nil, err
		}
		body, err := p.expr()
		if err != nil {
			return nil, err
		}
		return &ast.Let{Var: name.Lexeme, Value: value, Body: body}, nil

	case IF:
		p.next()
		cond, err := p.expr()
		if err != nil {
			return nil, err
		}
		if _, err := p.need(THEN); err != nil {
			return nil, err
		}
		then, err := p.expr()
		if err != nil {
			return nil, err
		}
		if _, err := p.need(ELSE); err != nil {
			return nil, err
		}
		els, err := p.expr()
		if err != nil {
			return nil, err
		}
		return &ast.If{Cond: cond, Then: then, Else: els}, nil

	case FUN:
		p.next()
		param, err := p.need(IDENT)
		if err != nil {
			return nil, err
		}
		if _, err := p.need(ARROW); err != nil {
			return nil, err
		}
		body, err := p.expr()
		if err != nil {
			return nil, err
		}
		return &ast.Func{Param: param.Lexeme, Body: body}, nil
	}
	return p.arith()
}

func (p *parser) arith() (ast.Expr, error) {
	left, err := p.app()
	if err != nil {
		return nil, err
	}
	for {
		op := p.peek().Type
		if op != PLUS && op != MINUS {
			return left, nil
		}
		p.next()
		right, err := p.app()
		if err != nil {
			return nil, err
		}
		if op == PLUS {
			left = &ast.Add{Left: left, Right: right}
		} else {
			left = &ast.Sub{Left: left, Right: right}
		}
	}
}

func startsAtom(t TokenType) bool {
	switch t {
	case INT, TRUE, FALSE, IDENT, LPAREN:
		return true
	}
	return false
}

func (p *parser) app() (ast.Expr, error) {
	f, err := p.postfix()
	if err != nil {
		return nil, err
	}
	for startsAtom(p.peek().Type) {
		arg, err := p.postfix()
		if err != nil {
			return nil, err
		}
		f = &ast.Call{Func: f, Arg: arg}
	}
	return f, nil
}

func (p *parser) postfix() (ast.Expr, error) {
	e, err := p.atom()
	if err != nil {
		return nil, err
	}
	for p.match(DOT) {
		tok, err := p.need(INT)
		if err != nil {
			return nil, err
		}
		index, err := strconv.Atoi(tok.Lexeme)
		if err != nil {
			return nil, &Error{Line: tok.Line, Col: tok.Col, Msg: "invalid tuple index", Err: errors.WithStack(err)}
		}
		e = &ast.TupleAccess{Tuple: e, Index: index}
	}
	return e, nil
}

func (p *parser) atom() (ast.Expr, error) {
	tok := p.next()
	switch tok.Type {
	case INT:
		v, err := strconv.ParseInt(tok.Lexeme, 10, 64)
		if err != nil {
			return nil, &Error{Line: tok.Line, Col: tok.Col, Msg: "invalid integer literal", Err: errors.WithStack(err)}
		}
		return &ast.IntLit{Value: v}, nil
	case TRUE:
		return &ast.BoolLit{Value: true}, nil
	case FALSE:
		return &ast.BoolLit{Value: false}, nil
	case IDENT:
		return &ast.Var{Name: tok.Lexeme}, nil
	case LPAREN:
		var elems []ast.Expr
		trailingComma := false
		for p.peek().Type != RPAREN {
			elem, err := p.expr()
			if err != nil {
				return nil, err
			}
			elems = append(elems, elem)
			if trailingComma = p.match(COMMA); !trailingComma {
				break
			}
		}
		if _, err := p.need(RPAREN); err != nil {
			return nil, err
		}
		if len(elems) == 1 && !trailingComma {
			return elems[0], nil
		}
		return &ast.Tuple{Elems: elems}, nil
	}
	return nil, p.errorf(tok, "unexpected %s", tok)
}

func (p *parser) typ() (types.Type, error) {
	param, err := p.typeAtom()
	if err != nil {
		return nil, err
	}
	if !p.match(ARROW) {
		return param, nil
	}
	ret, err := p.typ()
	if err != nil {
		return nil, err
	}
	return &types.Arrow{Param: param, Return: ret}, nil
}

func (p *parser) typeAtom() (types.Type, error) {
	tok := p.next()
	switch tok.Type {
	case IDENT:
		switch tok.Lexeme {
		case "Int":
			return types.Int, nil
		case "Bool":
			return types.Bool, nil
		}
		return types.NewVar(tok.Lexeme), nil
	case LPAREN:
		elems := types.NewTypeListBuilder()
		trailingComma := false
		for p.peek().Type != RPAREN {
			elem, err := p.typ()
			if err != nil {
				return nil, err
			}
			elems.Append(elem)
			if trailingComma = p.match(COMMA); !trailingComma {
				break
			}
		}
		if _, err := p.need(RPAREN); err != nil {
			return nil, err
		}
		if elems.Len() == 1 && !trailingComma {
			return elems.Build().Get(0), nil
		}
		return &types.Tuple{Elems: elems.Build()}, nil
	}
	return nil, p.errorf(tok, "unexpected %s in type", tok)
}
