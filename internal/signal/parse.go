package signal

import (
	"strconv"
	"strings"
	"unicode"
)

// tokenKind enumerates lexer output for the canonical grammar.
type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNumber
	tokIdent
	tokOp     // + - * / ^
	tokLParen // (
	tokRParen // )
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

type lexer struct {
	src string
	pos int
}

func (l *lexer) next() (token, error) {
	for l.pos < len(l.src) && unicode.IsSpace(rune(l.src[l.pos])) {
		l.pos++
	}
	if l.pos >= len(l.src) {
		return token{kind: tokEOF, pos: l.pos}, nil
	}

	start := l.pos
	c := l.src[l.pos]
	switch {
	case c >= '0' && c <= '9' || c == '.':
		for l.pos < len(l.src) && (l.src[l.pos] >= '0' && l.src[l.pos] <= '9' || l.src[l.pos] == '.') {
			l.pos++
		}
		return token{kind: tokNumber, text: l.src[start:l.pos], pos: start}, nil
	case c == '_' || unicode.IsLetter(rune(c)):
		for l.pos < len(l.src) {
			r := rune(l.src[l.pos])
			if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
				break
			}
			l.pos++
		}
		return token{kind: tokIdent, text: l.src[start:l.pos], pos: start}, nil
	case strings.ContainsRune("+-*/^", rune(c)):
		l.pos++
		return token{kind: tokOp, text: string(c), pos: start}, nil
	case c == '(':
		l.pos++
		return token{kind: tokLParen, text: "(", pos: start}, nil
	case c == ')':
		l.pos++
		return token{kind: tokRParen, text: ")", pos: start}, nil
	}
	return token{}, exprErr(l.src, start, ErrSyntax, "unexpected character %q", string(c))
}

// parser is a recursive-descent parser over the canonical grammar:
//
//	expr   := term (('+' | '-') term)*
//	term   := unary (('*' | '/') unary)*
//	unary  := ('+' | '-') unary | power
//	power  := atom ('^' unary)?          right-associative
//	atom   := number | variable | const | func '(' expr ')' | '(' expr ')'
type parser struct {
	lex      *lexer
	tok      token
	variable string
}

// parse compiles canonical text into an expression tree. variable is the
// single admissible free-variable name ("t" or "n").
func parse(src, variable string) (node, error) {
	p := &parser{lex: &lexer{src: src}, variable: variable}
	if err := p.advance(); err != nil {
		return nil, err
	}
	root, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.tok.kind != tokEOF {
		return nil, exprErr(src, p.tok.pos, ErrSyntax, "unexpected %q after expression", p.tok.text)
	}
	return root, nil
}

func (p *parser) advance() error {
	tok, err := p.lex.next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func (p *parser) parseExpr() (node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.tok.kind == tokOp && (p.tok.text == "+" || p.tok.text == "-") {
		op := p.tok.text[0]
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = binaryNode{op: op, left: left, right: right}
	}
	return left, nil
}

func (p *parser) parseTerm() (node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.tok.kind == tokOp && (p.tok.text == "*" || p.tok.text == "/") {
		op := p.tok.text[0]
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = binaryNode{op: op, left: left, right: right}
	}
	return left, nil
}

func (p *parser) parseUnary() (node, error) {
	if p.tok.kind == tokOp && (p.tok.text == "+" || p.tok.text == "-") {
		neg := p.tok.text == "-"
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		if neg {
			return unaryNode{op: '-', operand: operand}, nil
		}
		return operand, nil
	}
	return p.parsePower()
}

func (p *parser) parsePower() (node, error) {
	base, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	if p.tok.kind == tokOp && p.tok.text == "^" {
		if err := p.advance(); err != nil {
			return nil, err
		}
		exp, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return binaryNode{op: '^', left: base, right: exp}, nil
	}
	return base, nil
}

func (p *parser) parseAtom() (node, error) {
	switch p.tok.kind {
	case tokNumber:
		v, err := strconv.ParseFloat(p.tok.text, 64)
		if err != nil {
			return nil, exprErr(p.lex.src, p.tok.pos, ErrSyntax, "malformed number %q", p.tok.text)
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return numNode(v), nil

	case tokIdent:
		name := p.tok.text
		pos := p.tok.pos
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.tok.kind == tokLParen {
			fn, ok := functions[name]
			if !ok {
				return nil, exprErr(p.lex.src, pos, ErrUnknownIdent, "unknown function %q", name)
			}
			if err := p.advance(); err != nil {
				return nil, err
			}
			arg, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			if p.tok.kind != tokRParen {
				return nil, exprErr(p.lex.src, p.tok.pos, ErrSyntax, "expected ')' after %s argument", name)
			}
			if err := p.advance(); err != nil {
				return nil, err
			}
			return callNode{fn: name, f: fn, arg: arg}, nil
		}
		if name == p.variable {
			return varNode{name: name}, nil
		}
		if v, ok := constants[name]; ok {
			return numNode(v), nil
		}
		return nil, exprErr(p.lex.src, pos, ErrUnknownIdent, "unknown identifier %q (variable is %q)", name, p.variable)

	case tokLParen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.tok.kind != tokRParen {
			return nil, exprErr(p.lex.src, p.tok.pos, ErrSyntax, "expected ')'")
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return inner, nil
	}
	return nil, exprErr(p.lex.src, p.tok.pos, ErrSyntax, "unexpected %q", p.tok.text)
}
