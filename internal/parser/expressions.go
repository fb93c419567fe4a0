package parser

import (
	"strconv"

	"github.com/coal-lang/coal/internal/ast"
	"github.com/coal-lang/coal/internal/token"
)

const (
	LOWEST = iota
	EQUALITY
	COMPARISON
	BITOR
	BITXOR
	BITAND
	SHIFT
	SUM
	PRODUCT
	UNARY
)

var precedences = map[token.TokenType]int{
	token.EQ:      EQUALITY,
	token.NOT_EQ:  EQUALITY,
	token.LT:      COMPARISON,
	token.GT:      COMPARISON,
	token.LE:      COMPARISON,
	token.GE:      COMPARISON,
	token.PIPE:    BITOR,
	token.CARET:   BITXOR,
	token.AMP:     BITAND,
	token.SHL:     SHIFT,
	token.SHR:     SHIFT,
	token.PLUS:    SUM,
	token.MINUS:   SUM,
	token.STAR:    PRODUCT,
	token.SLASH:   PRODUCT,
	token.PERCENT: PRODUCT,
}

func (p *Parser) peekPrecedence() int {
	if pr, ok := precedences[p.peek.Type]; ok {
		return pr
	}
	return LOWEST
}

func (p *Parser) parseExpression(minPrec int) ast.Expression {
	left := p.parseUnary()

	for {
		prec, ok := precedences[p.cur.Type]
		if !ok || prec <= minPrec {
			break
		}
		opTok := p.cur
		op := opTok.Lexeme
		p.next()
		right := p.parseExpression(prec)
		left = &ast.BinaryExpr{Token: opTok, Op: op, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseUnary() ast.Expression {
	if p.curIs(token.MINUS) {
		tok := p.cur
		p.next()
		right := p.parseUnary()
		return &ast.UnaryExpr{Token: tok, Op: "-", Right: right}
	}
	return p.parsePrimary()
}

func (p *Parser) parsePrimary() ast.Expression {
	switch p.cur.Type {
	case token.INT:
		tok := p.cur
		v, _ := strconv.ParseInt(tok.Lexeme, 10, 64)
		p.next()
		return &ast.IntLit{Token: tok, Value: v}
	case token.FLOAT:
		tok := p.cur
		v, _ := strconv.ParseFloat(tok.Lexeme, 64)
		p.next()
		return &ast.FloatLit{Token: tok, Value: v}
	case token.STRING:
		tok := p.cur
		p.next()
		s, _ := tok.Literal.(string)
		return &ast.StringLit{Token: tok, Value: s}
	case token.TRUE:
		tok := p.cur
		p.next()
		return &ast.BoolLit{Token: tok, Value: true}
	case token.FALSE:
		tok := p.cur
		p.next()
		return &ast.BoolLit{Token: tok, Value: false}
	case token.SELF:
		tok := p.cur
		p.next()
		if p.curIs(token.DOT) {
			p.next()
			name := p.expect(token.IDENT).Lexeme
			return &ast.SelfAttr{Token: tok, Name: name}
		}
		return &ast.SelfExpr{Token: tok}
	case token.LPAREN:
		return p.parseParenOrList()
	case token.LBRACKET:
		return p.parseCall()
	case token.IDENT:
		tok := p.cur
		name := p.cur.Lexeme
		p.next()
		if p.curIs(token.LBRACE) {
			return p.parseIndexRead(tok, name)
		}
		return &ast.Ident{Token: tok, Name: name}
	default:
		p.errorf("unexpected token %s (%q) in expression", p.cur.Type, p.cur.Lexeme)
		tok := p.cur
		p.next()
		return &ast.Ident{Token: tok, Name: tok.Lexeme}
	}
}

func (p *Parser) parseIndexRead(tok token.Token, name string) ast.Expression {
	p.expect(token.LBRACE)
	start := p.parseExpression(LOWEST)
	var end ast.Expression
	if p.curIs(token.COMMA) {
		p.next()
		end = p.parseExpression(LOWEST)
	}
	p.expect(token.RBRACE)
	return &ast.IndexExpr{Token: tok, Name: name, Start: start, End: end}
}

// parseParenOrList disambiguates `(expr)` grouping from `(a, b, c)` / `()`
// list literals: a top-level comma (or an empty pair) makes it a list.
func (p *Parser) parseParenOrList() ast.Expression {
	tok := p.expect(token.LPAREN)
	if p.curIs(token.RPAREN) {
		p.next()
		return &ast.ListLit{Token: tok}
	}
	first := p.parseExpression(LOWEST)
	if p.curIs(token.COMMA) {
		elems := []ast.Expression{first}
		for p.curIs(token.COMMA) {
			p.next()
			elems = append(elems, p.parseExpression(LOWEST))
		}
		p.expect(token.RPAREN)
		return &ast.ListLit{Token: tok, Elements: elems}
	}
	p.expect(token.RPAREN)
	return first
}

// parseCall parses a bracketed call: `[sel: arg ...]`, `[recv sel: arg ...]`,
// or a bare simple-function invocation `[name]`.
func (p *Parser) parseCall() ast.Expression {
	tok := p.expect(token.LBRACKET)

	// Local call: starts directly with `keyword:`.
	if p.curIs(token.IDENT) && p.peekIs(token.COLON) {
		call := &ast.CallExpr{Token: tok}
		p.parseSelectorArgs(call)
		p.expect(token.RBRACKET)
		return call
	}

	// Bare simple-function invocation: `[name]`.
	if p.curIs(token.IDENT) && p.peekIs(token.RBRACKET) {
		name := p.cur.Lexeme
		p.next()
		p.expect(token.RBRACKET)
		return &ast.CallExpr{Token: tok, Selectors: []string{name}}
	}

	// Otherwise: receiver expression followed by one or more keywords.
	receiver := p.parseExpression(LOWEST)
	call := &ast.CallExpr{Token: tok, Receiver: receiver}
	p.parseSelectorArgs(call)
	p.expect(token.RBRACKET)
	return call
}

// parseSelectorArgs parses the `keyword: expr?` sequence inside a bracket
// call, stopping at `]`. A keyword with nothing following it before the
// next keyword or `]` is a zero-arg getter/selector segment.
func (p *Parser) parseSelectorArgs(call *ast.CallExpr) {
	for p.curIs(token.IDENT) && p.peekIs(token.COLON) {
		keyword := p.cur.Lexeme + ":"
		p.next() // ident
		p.next() // colon
		call.Selectors = append(call.Selectors, keyword)

		if p.curIs(token.RBRACKET) {
			continue
		}
		if p.curIs(token.IDENT) && p.peekIs(token.COLON) {
			continue
		}
		call.Args = append(call.Args, p.parseExpression(LOWEST))
	}
}
