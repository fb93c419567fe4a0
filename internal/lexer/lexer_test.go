package lexer

import (
	"testing"

	"github.com/coal-lang/coal/internal/token"
)

func TestNextTokenOperatorsAndDelimiters(t *testing.T) {
	input := `+ - * / % += -= *= /= & | ^ << >> < > <= >= == != -> . : , ? ( ) { } [ ]`

	expected := []token.TokenType{
		token.PLUS, token.MINUS, token.STAR, token.SLASH, token.PERCENT,
		token.PLUS_EQ, token.MINUS_EQ, token.STAR_EQ, token.SLASH_EQ,
		token.AMP, token.PIPE, token.CARET, token.SHL, token.SHR,
		token.LT, token.GT, token.LE, token.GE, token.EQ, token.NOT_EQ,
		token.ARROW, token.DOT, token.COLON, token.COMMA, token.QUESTION,
		token.LPAREN, token.RPAREN, token.LBRACE, token.RBRACE,
		token.LBRACKET, token.RBRACKET, token.EOF,
	}

	l := New(input)
	for i, want := range expected {
		got := l.NextToken()
		if got.Type != want {
			t.Fatalf("token %d: got %s, want %s (lexeme %q)", i, got.Type, want, got.Lexeme)
		}
	}
}

func TestNextTokenKeywords(t *testing.T) {
	input := "let def if elif else for each while break next return type init end do as import self true false exit"
	expected := []token.TokenType{
		token.LET, token.DEF, token.IF, token.ELIF, token.ELSE, token.FOR,
		token.EACH, token.WHILE, token.BREAK, token.NEXT, token.RETURN,
		token.TYPE, token.INIT, token.END, token.DO, token.AS, token.IMPORT,
		token.SELF, token.TRUE, token.FALSE, token.EXIT, token.EOF,
	}

	l := New(input)
	for i, want := range expected {
		got := l.NextToken()
		if got.Type != want {
			t.Fatalf("token %d: got %s, want %s", i, got.Type, want)
		}
	}
}

func TestNextTokenIdentifier(t *testing.T) {
	l := New("myVar_1 replace:with:")

	tok := l.NextToken()
	if tok.Type != token.IDENT || tok.Lexeme != "myVar_1" {
		t.Fatalf("got %s %q, want IDENT myVar_1", tok.Type, tok.Lexeme)
	}

	tok = l.NextToken()
	if tok.Type != token.IDENT || tok.Lexeme != "replace" {
		t.Fatalf("got %s %q, want IDENT replace", tok.Type, tok.Lexeme)
	}
	tok = l.NextToken()
	if tok.Type != token.COLON {
		t.Fatalf("got %s, want COLON", tok.Type)
	}
	tok = l.NextToken()
	if tok.Type != token.IDENT || tok.Lexeme != "with" {
		t.Fatalf("got %s %q, want IDENT with", tok.Type, tok.Lexeme)
	}
}

func TestNextTokenNumbers(t *testing.T) {
	tests := []struct {
		input string
		typ   token.TokenType
	}{
		{"42", token.INT},
		{"3.14", token.FLOAT},
		{"1e10", token.FLOAT},
		{"1.5e-3", token.FLOAT},
		{"0", token.INT},
	}

	for _, tt := range tests {
		l := New(tt.input)
		tok := l.NextToken()
		if tok.Type != tt.typ || tok.Lexeme != tt.input {
			t.Errorf("New(%q): got %s %q, want %s %q", tt.input, tok.Type, tok.Lexeme, tt.typ, tt.input)
		}
	}
}

func TestNextTokenStringEscapes(t *testing.T) {
	l := New(`"hello\nworld\t\"quoted\""`)
	tok := l.NextToken()
	if tok.Type != token.STRING {
		t.Fatalf("got %s, want STRING", tok.Type)
	}
	want := "hello\nworld\t\"quoted\""
	if tok.Literal != want {
		t.Errorf("got literal %q, want %q", tok.Literal, want)
	}
}

func TestNextTokenCommentsAndNewlines(t *testing.T) {
	input := "let x = 1 // a comment\nlet y = 2"
	l := New(input)

	want := []token.TokenType{
		token.LET, token.IDENT, token.ASSIGN, token.INT, token.NEWLINE,
		token.LET, token.IDENT, token.ASSIGN, token.INT, token.EOF,
	}
	for i, w := range want {
		got := l.NextToken()
		if got.Type != w {
			t.Fatalf("token %d: got %s, want %s", i, got.Type, w)
		}
	}
}

func TestNextTokenIllegal(t *testing.T) {
	l := New("@")
	tok := l.NextToken()
	if tok.Type != token.ILLEGAL {
		t.Fatalf("got %s, want ILLEGAL", tok.Type)
	}
}

func TestLineAndColumnTracking(t *testing.T) {
	l := New("a\nbb")
	first := l.NextToken() // a
	if first.Line != 1 {
		t.Errorf("first token line = %d, want 1", first.Line)
	}
	l.NextToken() // NEWLINE
	third := l.NextToken() // bb
	if third.Line != 2 {
		t.Errorf("third token line = %d, want 2", third.Line)
	}
}
