package parser

import (
	"testing"

	"github.com/coal-lang/coal/internal/ast"
	"github.com/coal-lang/coal/internal/lexer"
)

func parseProgram(t *testing.T, src string) *ast.Program {
	t.Helper()
	p := New(lexer.New(src))
	prog := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		t.Fatalf("parse errors for %q: %v", src, errs)
	}
	return prog
}

func TestParseLet(t *testing.T) {
	prog := parseProgram(t, "let x: Int = 5\n")
	if len(prog.Statements) != 1 {
		t.Fatalf("got %d statements, want 1", len(prog.Statements))
	}
	let, ok := prog.Statements[0].(*ast.LetStmt)
	if !ok {
		t.Fatalf("got %T, want *ast.LetStmt", prog.Statements[0])
	}
	if let.Name != "x" || let.Type != "Int" {
		t.Errorf("got Name=%q Type=%q, want x Int", let.Name, let.Type)
	}
	if lit, ok := let.Value.(*ast.IntLit); !ok || lit.Value != 5 {
		t.Errorf("got Value=%#v, want IntLit{5}", let.Value)
	}
}

func TestParseAssignOps(t *testing.T) {
	tests := []struct {
		input string
		op    string
	}{
		{"x = 1\n", "="},
		{"x += 1\n", "+="},
		{"x -= 1\n", "-="},
		{"x *= 1\n", "*="},
		{"x /= 1\n", "/="},
	}
	for _, tt := range tests {
		prog := parseProgram(t, tt.input)
		a, ok := prog.Statements[0].(*ast.AssignStmt)
		if !ok {
			t.Fatalf("%q: got %T, want *ast.AssignStmt", tt.input, prog.Statements[0])
		}
		if a.Op != tt.op {
			t.Errorf("%q: got op %q, want %q", tt.input, a.Op, tt.op)
		}
	}
}

func TestParseIndexAssignAndRead(t *testing.T) {
	prog := parseProgram(t, "xs{0} = 9\n")
	ia, ok := prog.Statements[0].(*ast.IndexAssignStmt)
	if !ok {
		t.Fatalf("got %T, want *ast.IndexAssignStmt", prog.Statements[0])
	}
	if ia.Name != "xs" {
		t.Errorf("got Name %q, want xs", ia.Name)
	}

	prog = parseProgram(t, "y = xs{0, 2}\n")
	assign := prog.Statements[0].(*ast.AssignStmt)
	idx, ok := assign.Value.(*ast.IndexExpr)
	if !ok {
		t.Fatalf("got %T, want *ast.IndexExpr", assign.Value)
	}
	if idx.Start == nil || idx.End == nil {
		t.Error("expected both Start and End to be set for a slice read")
	}
}

func TestParseLocalCall(t *testing.T) {
	prog := parseProgram(t, "[print: 5]\n")
	stmt, ok := prog.Statements[0].(*ast.ExprStmt)
	if !ok {
		t.Fatalf("got %T, want *ast.ExprStmt", prog.Statements[0])
	}
	call, ok := stmt.Expr.(*ast.CallExpr)
	if !ok {
		t.Fatalf("got %T, want *ast.CallExpr", stmt.Expr)
	}
	if call.Receiver != nil {
		t.Error("expected nil Receiver for a local call")
	}
	if call.Selector() != "print:" {
		t.Errorf("got selector %q, want print:", call.Selector())
	}
	if len(call.Args) != 1 {
		t.Fatalf("got %d args, want 1", len(call.Args))
	}
}

func TestParseBareSimpleCall(t *testing.T) {
	prog := parseProgram(t, "[main]\n")
	stmt := prog.Statements[0].(*ast.ExprStmt)
	call := stmt.Expr.(*ast.CallExpr)
	if call.Receiver != nil {
		t.Error("expected nil Receiver for a bare simple call")
	}
	if len(call.Selectors) != 1 || call.Selectors[0] != "main" {
		t.Errorf("got selectors %v, want [main]", call.Selectors)
	}
}

func TestParseReceiverCall(t *testing.T) {
	prog := parseProgram(t, "[s replace: a with: b]\n")
	stmt := prog.Statements[0].(*ast.ExprStmt)
	call := stmt.Expr.(*ast.CallExpr)
	if call.Receiver == nil {
		t.Fatal("expected a non-nil Receiver")
	}
	recv, ok := call.Receiver.(*ast.Ident)
	if !ok || recv.Name != "s" {
		t.Fatalf("got receiver %#v, want Ident{s}", call.Receiver)
	}
	if call.Selector() != "replace:with:" {
		t.Errorf("got selector %q, want replace:with:", call.Selector())
	}
	if len(call.Args) != 2 {
		t.Fatalf("got %d args, want 2", len(call.Args))
	}
}

func TestParseKeywordGetterNoArg(t *testing.T) {
	prog := parseProgram(t, "[license:]\n")
	stmt := prog.Statements[0].(*ast.ExprStmt)
	call := stmt.Expr.(*ast.CallExpr)
	if call.Selector() != "license:" {
		t.Errorf("got selector %q, want license:", call.Selector())
	}
	if len(call.Args) != 0 {
		t.Errorf("got %d args, want 0 for a keyword getter", len(call.Args))
	}
}

func TestParseListLiteralVsGrouping(t *testing.T) {
	prog := parseProgram(t, "x = (1 + 2)\n")
	assign := prog.Statements[0].(*ast.AssignStmt)
	if _, ok := assign.Value.(*ast.BinaryExpr); !ok {
		t.Errorf("got %T, want *ast.BinaryExpr (grouped, not a list)", assign.Value)
	}

	prog = parseProgram(t, "x = (1, 2, 3)\n")
	assign = prog.Statements[0].(*ast.AssignStmt)
	list, ok := assign.Value.(*ast.ListLit)
	if !ok {
		t.Fatalf("got %T, want *ast.ListLit", assign.Value)
	}
	if len(list.Elements) != 3 {
		t.Errorf("got %d elements, want 3", len(list.Elements))
	}

	prog = parseProgram(t, "x = ()\n")
	assign = prog.Statements[0].(*ast.AssignStmt)
	list, ok = assign.Value.(*ast.ListLit)
	if !ok || len(list.Elements) != 0 {
		t.Fatalf("got %#v, want an empty *ast.ListLit", assign.Value)
	}
}

func TestParseFuncDefSimpleAndKeyword(t *testing.T) {
	prog := parseProgram(t, "def main -> Void\nend\n")
	fn := prog.Statements[0].(*ast.FuncDef)
	if !fn.Simple || fn.Name != "main" {
		t.Errorf("got Simple=%v Name=%q, want Simple=true Name=main", fn.Simple, fn.Name)
	}

	prog = parseProgram(t, "def add: (Int) to: (Int) -> Int\nend\n")
	fn = prog.Statements[0].(*ast.FuncDef)
	if fn.Simple {
		t.Error("expected a keyword function, not Simple")
	}
	if len(fn.Params) != 2 {
		t.Fatalf("got %d params, want 2", len(fn.Params))
	}
	if fn.Params[0].Keyword != "add" || fn.Params[0].Type != "Int" {
		t.Errorf("got param 0 = %#v", fn.Params[0])
	}
	if fn.Params[1].Keyword != "to" || fn.Params[1].Type != "Int" {
		t.Errorf("got param 1 = %#v", fn.Params[1])
	}
}

func TestParseParamAlias(t *testing.T) {
	prog := parseProgram(t, "def set: x: (Int) -> Void\nend\n")
	fn := prog.Statements[0].(*ast.FuncDef)
	if len(fn.Params) != 1 {
		t.Fatalf("got %d params, want 1", len(fn.Params))
	}
	p := fn.Params[0]
	if p.Keyword != "set" || p.Alias != "x" || p.Type != "Int" {
		t.Errorf("got %#v, want Keyword=set Alias=x Type=Int", p)
	}
}

func TestParseIfElifElse(t *testing.T) {
	src := "if a\nlet x: Int = 1\nelif b\nlet x: Int = 2\nelse\nlet x: Int = 3\nend\n"
	prog := parseProgram(t, src)
	ifs := prog.Statements[0].(*ast.IfStmt)
	if len(ifs.Elifs) != 1 {
		t.Fatalf("got %d elifs, want 1", len(ifs.Elifs))
	}
	if ifs.ElseBody == nil {
		t.Error("expected a non-nil ElseBody")
	}
}

func TestParseEachAndFor(t *testing.T) {
	prog := parseProgram(t, "each xs as item\n[print: item]\nend\n")
	each := prog.Statements[0].(*ast.EachStmt)
	if each.Name != "item" {
		t.Errorf("got Name %q, want item", each.Name)
	}

	prog = parseProgram(t, "for 0, 10, 2 as i\n[print: i]\nend\n")
	forStmt := prog.Statements[0].(*ast.ForStmt)
	if forStmt.Name != "i" || forStmt.Interval == nil {
		t.Errorf("got Name=%q Interval=%#v, want i and a non-nil interval", forStmt.Name, forStmt.Interval)
	}
}

func TestParseTypeDefWithInit(t *testing.T) {
	src := "type Point\ninit x: (Int) y: (Int)\n[self x: x]\n[self y: y]\nend\nend\n"
	prog := parseProgram(t, src)
	td := prog.Statements[0].(*ast.TypeDef)
	if td.Name != "Point" {
		t.Errorf("got Name %q, want Point", td.Name)
	}
	if len(td.Inits) != 1 {
		t.Fatalf("got %d inits, want 1", len(td.Inits))
	}
	if len(td.Inits[0].Params) != 2 {
		t.Fatalf("got %d init params, want 2", len(td.Inits[0].Params))
	}
}

func TestParseErrorsOnMalformedInput(t *testing.T) {
	p := New(lexer.New("let = 5\n"))
	p.ParseProgram()
	if len(p.Errors()) == 0 {
		t.Error("expected parse errors for malformed `let`, got none")
	}
}
