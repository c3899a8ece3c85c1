// Package parser implements a recursive-descent (Pratt) parser that
// turns one line of computorv2 source into an AST (spec §4.P).
package parser

import (
	"fmt"
	"math/big"

	"computorv2/internal/ast"
	"computorv2/internal/evalerr"
	"computorv2/internal/lexer"
)

// Precedence levels, lowest to highest. Unary sits below Power so that
// "-x^2" parses as "-(x^2)" (spec §4.P), even though unary appears
// later in the spec's prose ordering — the explicit worked example
// there overrides the prose list, which is the usual Pratt-parser
// gotcha with a right-associative power operator.
const (
	_ int = iota
	LOWEST
	SUM     // + -
	PRODUCT // * / %
	PREFIX  // unary + -
	POWER   // ^ **
)

var precedences = map[lexer.TokenType]int{
	lexer.PLUS:     SUM,
	lexer.MINUS:    SUM,
	lexer.ASTERISK: PRODUCT,
	lexer.SLASH:    PRODUCT,
	lexer.PERCENT:  PRODUCT,
	lexer.POW:      POWER,
}

type (
	prefixParseFn func() (ast.Expression, error)
	infixParseFn  func(ast.Expression) (ast.Expression, error)
)

// Parser consumes a token stream from the Lexer and builds an AST.
type Parser struct {
	l    *lexer.Lexer
	cur  lexer.Token
	peek lexer.Token

	prefixFns map[lexer.TokenType]prefixParseFn
	infixFns  map[lexer.TokenType]infixParseFn
}

// New creates a Parser over l and primes the two-token lookahead.
func New(l *lexer.Lexer) (*Parser, error) {
	p := &Parser{l: l}
	p.prefixFns = map[lexer.TokenType]prefixParseFn{
		lexer.NUMBER:   p.parseNumber,
		lexer.IDENT:    p.parseIdentOrCall,
		lexer.IMAG:     p.parseImagUnit,
		lexer.LPAREN:   p.parseGroupedExpr,
		lexer.LBRACKET: p.parseMatrixLiteral,
		lexer.MINUS:    p.parseUnary,
		lexer.PLUS:     p.parseUnary,
	}
	p.infixFns = map[lexer.TokenType]infixParseFn{
		lexer.PLUS:     p.parseBinary,
		lexer.MINUS:    p.parseBinary,
		lexer.ASTERISK: p.parseBinary,
		lexer.SLASH:    p.parseBinary,
		lexer.PERCENT:  p.parseBinary,
		lexer.POW:      p.parseBinary,
	}

	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Parser) advance() error {
	p.cur = p.peek
	tok, err := p.l.NextToken()
	if err != nil {
		return err
	}
	p.peek = tok
	return nil
}

func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.cur.Type]; ok {
		return prec
	}
	return LOWEST
}

func (p *Parser) expect(t lexer.TokenType) error {
	if p.cur.Type != t {
		return &evalerr.ParseError{
			Col: p.cur.Pos.Column,
			Msg: fmt.Sprintf("expected %s, got %s", t, p.cur.Type),
		}
	}
	return p.advance()
}

// ParseLine parses exactly one of: a bare expression, a variable or
// function assignment, or a query (`EXPR = ?` / `EXPR1 = EXPR2 ?`),
// per spec §6's input grammar.
func ParseLine(input string) (ast.Expression, error) {
	p, err := New(lexer.New(input))
	if err != nil {
		return nil, err
	}
	return p.parseLine()
}

func (p *Parser) parseLine() (ast.Expression, error) {
	if p.cur.Type == lexer.EOF {
		return nil, &evalerr.ParseError{Msg: "empty input"}
	}

	pos := p.cur.Pos
	lhs, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}

	if p.cur.Type != lexer.ASSIGN {
		if p.cur.Type != lexer.EOF {
			return nil, &evalerr.ParseError{Col: p.cur.Pos.Column, Msg: fmt.Sprintf("unexpected token %s", p.cur.Type)}
		}
		return lhs, nil
	}
	if err := p.advance(); err != nil { // consume '='
		return nil, err
	}

	if p.cur.Type == lexer.QUESTION {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.cur.Type != lexer.EOF {
			return nil, &evalerr.ParseError{Col: p.cur.Pos.Column, Msg: fmt.Sprintf("unexpected token %s after '?'", p.cur.Type)}
		}
		return &ast.Query{Lhs: lhs, Position: pos}, nil
	}

	rhs, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}

	if p.cur.Type == lexer.QUESTION {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.cur.Type != lexer.EOF {
			return nil, &evalerr.ParseError{Col: p.cur.Pos.Column, Msg: fmt.Sprintf("unexpected token %s after '?'", p.cur.Type)}
		}
		return &ast.Query{Lhs: lhs, Rhs: rhs, Position: pos}, nil
	}

	if p.cur.Type != lexer.EOF {
		return nil, &evalerr.ParseError{Col: p.cur.Pos.Column, Msg: fmt.Sprintf("unexpected token %s", p.cur.Type)}
	}

	if err := validAssignTarget(lhs); err != nil {
		return nil, err
	}
	return &ast.Assign{Target: lhs, Value: rhs, Position: pos}, nil
}

// validAssignTarget enforces spec §4.P: the LHS of a plain assignment
// is either a bare identifier, or a call whose every argument is a
// distinct plain identifier (a function definition).
func validAssignTarget(lhs ast.Expression) error {
	switch t := lhs.(type) {
	case *ast.Var:
		return nil
	case *ast.Call:
		seen := map[string]bool{}
		for _, arg := range t.Args {
			v, ok := arg.(*ast.Var)
			if !ok {
				return &evalerr.ParseError{Col: t.Pos().Column, Msg: "function parameters must be plain identifiers"}
			}
			if seen[v.Name] {
				return &evalerr.ParseError{Col: t.Pos().Column, Msg: fmt.Sprintf("duplicate parameter %q", v.Name)}
			}
			seen[v.Name] = true
		}
		return nil
	default:
		return &evalerr.ParseError{Col: lhs.Pos().Column, Msg: "invalid assignment target"}
	}
}

func (p *Parser) parseExpression(precedence int) (ast.Expression, error) {
	prefix, ok := p.prefixFns[p.cur.Type]
	if !ok {
		return nil, &evalerr.ParseError{Col: p.cur.Pos.Column, Msg: fmt.Sprintf("unexpected token %s", p.cur.Type)}
	}
	left, err := prefix()
	if err != nil {
		return nil, err
	}

	for precedence < p.curPrecedence() {
		infix, ok := p.infixFns[p.cur.Type]
		if !ok {
			return left, nil
		}
		left, err = infix(left)
		if err != nil {
			return nil, err
		}
	}
	return left, nil
}

func (p *Parser) parseNumber() (ast.Expression, error) {
	tok := p.cur
	r, ok := new(big.Rat).SetString(tok.Literal)
	if !ok {
		return nil, &evalerr.ParseError{Col: tok.Pos.Column, Msg: fmt.Sprintf("invalid number literal %q", tok.Literal)}
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return &ast.Num{Value: r, Position: tok.Pos}, nil
}

func (p *Parser) parseImagUnit() (ast.Expression, error) {
	tok := p.cur
	if err := p.advance(); err != nil {
		return nil, err
	}
	return &ast.ImagUnit{Position: tok.Pos}, nil
}

func (p *Parser) parseIdentOrCall() (ast.Expression, error) {
	tok := p.cur
	if err := p.advance(); err != nil {
		return nil, err
	}
	if p.cur.Type != lexer.LPAREN {
		return &ast.Var{Name: tok.Literal, Position: tok.Pos}, nil
	}
	if err := p.advance(); err != nil { // consume '('
		return nil, err
	}
	var args []ast.Expression
	if p.cur.Type != lexer.RPAREN {
		for {
			arg, err := p.parseExpression(LOWEST)
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if p.cur.Type != lexer.COMMA {
				break
			}
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
	}
	if err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	return &ast.Call{Name: tok.Literal, Args: args, Position: tok.Pos}, nil
}

func (p *Parser) parseGroupedExpr() (ast.Expression, error) {
	if err := p.advance(); err != nil { // consume '('
		return nil, err
	}
	inner, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	return inner, nil
}

func (p *Parser) parseUnary() (ast.Expression, error) {
	tok := p.cur
	op := ast.Plus
	if tok.Type == lexer.MINUS {
		op = ast.Neg
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	child, err := p.parseExpression(PREFIX)
	if err != nil {
		return nil, err
	}
	return &ast.Unary{Op: op, Child: child, Position: tok.Pos}, nil
}

func (p *Parser) parseBinary(left ast.Expression) (ast.Expression, error) {
	tok := p.cur
	op := binOpFor(tok.Type)
	precedence := p.curPrecedence()
	if err := p.advance(); err != nil {
		return nil, err
	}

	rightPrec := precedence
	if tok.Type == lexer.POW {
		rightPrec = precedence - 1 // right-associative: a^b^c == a^(b^c)
	}
	right, err := p.parseExpression(rightPrec)
	if err != nil {
		return nil, err
	}
	return &ast.Binary{Op: op, Left: left, Right: right, Position: tok.Pos}, nil
}

func binOpFor(t lexer.TokenType) ast.BinOp {
	switch t {
	case lexer.PLUS:
		return ast.Add
	case lexer.MINUS:
		return ast.Sub
	case lexer.ASTERISK:
		return ast.Mul
	case lexer.SLASH:
		return ast.Div
	case lexer.PERCENT:
		return ast.Mod
	case lexer.POW:
		return ast.Pow
	}
	panic("parser: unreachable binOpFor")
}

// parseMatrixLiteral parses `[[a,b,c];[d,e,f]]`; a row-length mismatch
// is a ParseError (spec §4.P).
func (p *Parser) parseMatrixLiteral() (ast.Expression, error) {
	pos := p.cur.Pos
	if err := p.advance(); err != nil { // consume outer '['
		return nil, err
	}

	var rows [][]ast.Expression
	for {
		if err := p.expect(lexer.LBRACKET); err != nil {
			return nil, err
		}
		var row []ast.Expression
		if p.cur.Type != lexer.RBRACKET {
			for {
				el, err := p.parseExpression(LOWEST)
				if err != nil {
					return nil, err
				}
				row = append(row, el)
				if p.cur.Type != lexer.COMMA {
					break
				}
				if err := p.advance(); err != nil {
					return nil, err
				}
			}
		}
		if err := p.expect(lexer.RBRACKET); err != nil {
			return nil, err
		}
		rows = append(rows, row)

		if p.cur.Type == lexer.SEMICOLON {
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		break
	}
	if err := p.expect(lexer.RBRACKET); err != nil {
		return nil, err
	}

	for i := 1; i < len(rows); i++ {
		if len(rows[i]) != len(rows[0]) {
			return nil, &evalerr.ParseError{Col: pos.Column, Msg: "matrix rows must have equal length"}
		}
	}
	if len(rows[0]) == 0 {
		return nil, &evalerr.ParseError{Col: pos.Column, Msg: "matrix rows must not be empty"}
	}
	return &ast.MatLit{Rows: rows, Position: pos}, nil
}
