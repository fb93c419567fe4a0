package parser

import (
	"github.com/coal-lang/coal/internal/ast"
	"github.com/coal-lang/coal/internal/token"
)

func (p *Parser) parseStatement() ast.Statement {
	switch p.cur.Type {
	case token.IMPORT:
		return p.parseImport()
	case token.LET:
		return p.parseLet()
	case token.DEF:
		return p.parseFuncDef()
	case token.TYPE:
		return p.parseTypeDef()
	case token.IF:
		return p.parseIf()
	case token.FOR:
		return p.parseFor()
	case token.EACH:
		return p.parseEach()
	case token.WHILE:
		return p.parseWhile()
	case token.BREAK:
		tok := p.cur
		p.next()
		return &ast.BreakStmt{Token: tok}
	case token.NEXT:
		tok := p.cur
		p.next()
		return &ast.NextStmt{Token: tok}
	case token.RETURN:
		tok := p.cur
		p.next()
		return &ast.FuncRet{Token: tok, Value: p.parseExpression(LOWEST)}
	case token.EXIT:
		tok := p.cur
		p.next()
		return &ast.ExitStmt{Token: tok, Value: p.parseExpression(LOWEST)}
	case token.IDENT:
		if p.peekIs(token.ASSIGN) || p.peekIs(token.PLUS_EQ) || p.peekIs(token.MINUS_EQ) ||
			p.peekIs(token.STAR_EQ) || p.peekIs(token.SLASH_EQ) {
			return p.parseAssign()
		}
		if p.peekIs(token.LBRACE) {
			return p.parseIndexAssign()
		}
		fallthrough
	default:
		tok := p.cur
		expr := p.parseExpression(LOWEST)
		return &ast.ExprStmt{Token: tok, Expr: expr}
	}
}

func (p *Parser) parseImport() ast.Statement {
	tok := p.expect(token.IMPORT)
	name := p.expect(token.IDENT).Lexeme
	alias := ""
	if p.curIs(token.AS) {
		p.next()
		alias = p.expect(token.IDENT).Lexeme
	}
	return &ast.ImportStmt{Token: tok, Name: name, Alias: alias}
}

func (p *Parser) parseLet() ast.Statement {
	tok := p.expect(token.LET)
	name := p.expect(token.IDENT).Lexeme
	p.expect(token.COLON)
	typeName := p.parseTypeName()
	if p.curIs(token.QUESTION) {
		p.next()
		return &ast.LetStmt{Token: tok, Name: name, Type: typeName}
	}
	p.expect(token.ASSIGN)
	value := p.parseExpression(LOWEST)
	return &ast.LetStmt{Token: tok, Name: name, Type: typeName, Value: value}
}

func (p *Parser) parseAssign() ast.Statement {
	tok := p.cur
	name := p.expect(token.IDENT).Lexeme
	op := string(p.cur.Type)
	p.next()
	value := p.parseExpression(LOWEST)
	return &ast.AssignStmt{Token: tok, Name: name, Op: op, Value: value}
}

func (p *Parser) parseIndexAssign() ast.Statement {
	tok := p.cur
	name := p.expect(token.IDENT).Lexeme
	p.expect(token.LBRACE)
	index := p.parseExpression(LOWEST)
	p.expect(token.RBRACE)
	p.expect(token.ASSIGN)
	value := p.parseExpression(LOWEST)
	return &ast.IndexAssignStmt{Token: tok, Name: name, Index: index, Value: value}
}

// parseParams parses zero or more `keyword: (alias:)? (Type)` clauses up to `->`.
func (p *Parser) parseParams() []ast.Param {
	var params []ast.Param
	for p.curIs(token.IDENT) && p.peekIs(token.COLON) {
		keyword := p.cur.Lexeme
		p.next() // keyword ident
		p.next() // colon

		alias := ""
		if p.curIs(token.IDENT) && p.peekIs(token.COLON) {
			alias = p.cur.Lexeme
			p.next()
			p.next()
		}

		p.expect(token.LPAREN)
		typeName := p.parseTypeName()
		p.expect(token.RPAREN)

		params = append(params, ast.Param{Keyword: keyword, Type: typeName, Alias: alias})
	}
	return params
}

func (p *Parser) parseFuncDef() ast.Statement {
	tok := p.expect(token.DEF)

	// Simple (zero-keyword) form: `def name -> Type`.
	if p.curIs(token.IDENT) && p.peekIs(token.ARROW) {
		name := p.cur.Lexeme
		p.next()
		p.next() // ->
		retType := p.parseTypeName()
		body := p.parseBlock()
		p.expect(token.END)
		return &ast.FuncDef{Token: tok, Name: name, Simple: true, ReturnType: retType, Body: body}
	}

	params := p.parseParams()
	p.expect(token.ARROW)
	retType := p.parseTypeName()
	body := p.parseBlock()
	p.expect(token.END)
	return &ast.FuncDef{Token: tok, Params: params, ReturnType: retType, Body: body}
}

func (p *Parser) parseTypeDef() ast.Statement {
	tok := p.expect(token.TYPE)
	name := p.expect(token.IDENT).Lexeme
	extends := ""
	if p.curIs(token.AS) {
		p.next()
		extends = p.expect(token.IDENT).Lexeme
	}
	p.skipNewlines()

	var inits []*ast.InitDef
	for p.curIs(token.INIT) {
		initTok := p.cur
		p.next()
		params := p.parseParams()
		body := p.parseBlock()
		p.expect(token.END)
		inits = append(inits, &ast.InitDef{Token: initTok, Params: params, Body: body})
		p.skipNewlines()
	}

	p.expect(token.END)
	return &ast.TypeDef{Token: tok, Name: name, Extends: extends, Inits: inits}
}

func (p *Parser) parseIf() ast.Statement {
	tok := p.expect(token.IF)
	test := p.parseExpression(LOWEST)
	if p.curIs(token.DO) {
		p.next()
	}
	body := p.parseBlock()

	stmt := &ast.IfStmt{Token: tok, Test: test, Body: body}
	for p.curIs(token.ELIF) {
		p.next()
		elifTest := p.parseExpression(LOWEST)
		if p.curIs(token.DO) {
			p.next()
		}
		elifBody := p.parseBlock()
		stmt.Elifs = append(stmt.Elifs, ast.ElifClause{Test: elifTest, Body: elifBody})
	}
	if p.curIs(token.ELSE) {
		p.next()
		stmt.ElseBody = p.parseBlock()
	}
	p.expect(token.END)
	return stmt
}

func (p *Parser) parseFor() ast.Statement {
	tok := p.expect(token.FOR)
	start := p.parseExpression(LOWEST)
	p.expect(token.COMMA)
	end := p.parseExpression(LOWEST)
	var interval ast.Expression
	if p.curIs(token.COMMA) {
		p.next()
		interval = p.parseExpression(LOWEST)
	}
	p.expect(token.AS)
	name := p.expect(token.IDENT).Lexeme
	body := p.parseBlock()
	p.expect(token.END)
	return &ast.ForStmt{Token: tok, Start: start, End: end, Interval: interval, Name: name, Body: body}
}

func (p *Parser) parseEach() ast.Statement {
	tok := p.expect(token.EACH)
	iterable := p.parseExpression(LOWEST)
	p.expect(token.AS)
	name := p.expect(token.IDENT).Lexeme
	body := p.parseBlock()
	p.expect(token.END)
	return &ast.EachStmt{Token: tok, Iterable: iterable, Name: name, Body: body}
}

func (p *Parser) parseWhile() ast.Statement {
	tok := p.expect(token.WHILE)
	test := p.parseExpression(LOWEST)
	if p.curIs(token.DO) {
		p.next()
	}
	body := p.parseBlock()
	p.expect(token.END)
	return &ast.WhileStmt{Token: tok, Test: test, Body: body}
}
