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

package syntax

import (
	"strconv"
)

// TokenType is the kind of a lexical token.
type TokenType uint8

const (
	EOF TokenType = iota
	INT
	IDENT

	// keywords
	LET
	IN
	IF
	THEN
	ELSE
	FUN
	TRUE
	FALSE

	// punctuation
	LPAREN
	RPAREN
	COMMA
	DOT
	ARROW
	PLUS
	MINUS
	EQUALS
)

var tokenNames = [...]string{
	EOF:    "end of input",
	INT:    "integer",
	IDENT:  "identifier",
	LET:    "'let'",
	IN:     "'in'",
	IF:     "'if'",
	THEN:   "'then'",
	ELSE:   "'else'",
	FUN:    "'fun'",
	TRUE:   "'true'",
	FALSE:  "'false'",
	LPAREN: "'('",
	RPAREN: "')'",
	COMMA:  "','",
	DOT:    "'.'",
	ARROW:  "'->'",
	PLUS:   "'+'",
	MINUS:  "'-'",
	EQUALS: "'='",
}

func (t TokenType) String() string {
	if int(t) < len(tokenNames) {
		return tokenNames[t]
	}
	return "token(" + strconv.Itoa(int(t)) + ")"
}

var keywords = map[string]TokenType{
	"let":   LET,
	"in":    IN,
	"if":    IF,
	"then":  THEN,
	"else":  ELSE,
	"fun":   FUN,
	"true":  TRUE,
	"false": FALSE,
}

// Token is a lexical token. Line and Col are 1-based.
type Token struct {
	Type   TokenType
	Lexeme string
	Line   int
	Col    int
}

func (t Token) String() string {
	switch t.Type {
	case INT, IDENT:
		return t.Type.String() + " " + strconv.Quote(t.Lexeme)
	}
	return t.Type.String()
}

type lexer struct {
	src       string
	cur       int
	line, col int
}

func newLexer(src string) *lexer { return &lexer{src: src, line: 1, col: 1} }

func (l *lexer) peekByte(n int) byte {
	if l.cur+n >= len(l.src) {
		return 0
	}
	return l.src[l.cur+n]
}

func (l *lexer) advance() byte {
	ch := l.src[l.cur]
	l.cur++
	if ch == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return ch
}

// skip whitespace and `#` line comments
func (l *lexer) skipSpace() {
	for l.cur < len(l.src) {
		switch l.src[l.cur] {
		case ' ', '\t', '\r', '\n':
			l.advance()
		case '#':
			for l.cur < len(l.src) && l.src[l.cur] != '\n' {
				l.advance()
			}
		default:
			return
		}
	}
}

func isDigit(b byte) bool    { return b >= '0' && b <= '9' }
func isAlpha(b byte) bool    { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_' }
func isAlphaNum(b byte) bool { return isAlpha(b) || isDigit(b) || b == '\'' }

// Tokenize scans src into tokens, ending with an EOF token.
func Tokenize(src string) ([]Token, error) {
	l := newLexer(src)
	var toks []Token
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Type == EOF {
			return toks, nil
		}
	}
}

func (l *lexer) next() (Token, error) {
	l.skipSpace()
	tok := Token{Line: l.line, Col: l.col}
	if l.cur >= len(l.src) {
		tok.Type = EOF
		return tok, nil
	}
	start := l.cur
	ch := l.advance()
	switch {
	case isDigit(ch):
		for isDigit(l.peekByte(0)) {
			l.advance()
		}
		tok.Type = INT
	case isAlpha(ch):
		for isAlphaNum(l.peekByte(0)) {
			l.advance()
		}
		tok.Type = IDENT
		if kw, ok := keywords[l.src[start:l.cur]]; ok {
			tok.Type = kw
		}
	case ch == '(':
		tok.Type = LPAREN
	case ch == ')':
		tok.Type = RPAREN
	case ch == ',':
		tok.Type = COMMA
	case ch == '.':
		tok.Type = DOT
	case ch == '+':
		tok.Type = PLUS
	case ch == '=':
		tok.Type = EQUALS
	case ch == '-':
		tok.Type = MINUS
		if l.peekByte(0) == '>' {
			l.advance()
			tok.Type = ARROW
		}
	default:
		return tok, &Error{Line: tok.Line, Col: tok.Col, Msg: "unexpected character " + strconv.QuoteRune(rune(ch))}
	}
	tok.Lexeme = l.src[start:l.cur]
	return tok, nil
}
