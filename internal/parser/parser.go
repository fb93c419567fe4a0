// Package parser implements a recursive-descent parser for Coal source,
// producing the AST defined in internal/ast.
package parser

import (
	"fmt"

	"github.com/coal-lang/coal/internal/ast"
	"github.com/coal-lang/coal/internal/lexer"
	"github.com/coal-lang/coal/internal/token"
)

// Parser turns a token stream into an *ast.Program.
type Parser struct {
	l *lexer.Lexer

	cur  token.Token
	peek token.Token

	errors []string
}

// New constructs a Parser reading from l.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}
	p.next()
	p.next()
	return p
}

// Errors returns every parse error accumulated so far.
func (p *Parser) Errors() []string { return p.errors }

func (p *Parser) next() {
	p.cur = p.peek
	p.peek = p.l.NextToken()
}

func (p *Parser) errorf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	p.errors = append(p.errors, fmt.Sprintf("SyntaxError at %d:%d: %s", p.cur.Line, p.cur.Column, msg))
}

func (p *Parser) curIs(tt token.TokenType) bool  { return p.cur.Type == tt }
func (p *Parser) peekIs(tt token.TokenType) bool { return p.peek.Type == tt }

func (p *Parser) expect(tt token.TokenType) token.Token {
	tok := p.cur
	if p.cur.Type != tt {
		p.errorf("expected %s, got %s (%q)", tt, p.cur.Type, p.cur.Lexeme)
	}
	p.next()
	return tok
}

func (p *Parser) skipNewlines() {
	for p.curIs(token.NEWLINE) {
		p.next()
	}
}

// ParseProgram parses the full input and returns the resulting AST.
func (p *Parser) ParseProgram() *ast.Program {
	prog := &ast.Program{}
	p.skipNewlines()
	for !p.curIs(token.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			prog.Statements = append(prog.Statements, stmt)
		}
		p.skipNewlines()
	}
	return prog
}

// isBlockTerminator reports whether tt ends the current suite.
func isBlockTerminator(tt token.TokenType) bool {
	switch tt {
	case token.END, token.ELIF, token.ELSE, token.EOF:
		return true
	}
	return false
}

func (p *Parser) parseBlock() []ast.Statement {
	var stmts []ast.Statement
	p.skipNewlines()
	for !isBlockTerminator(p.cur.Type) {
		stmt := p.parseStatement()
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
		p.skipNewlines()
	}
	return stmts
}

// parseTypeName accepts a bare identifier as a type name (Int, Float,
// String, Bool, List, Void, Any, or a user type name).
func (p *Parser) parseTypeName() string {
	tok := p.expect(token.IDENT)
	return tok.Lexeme
}
