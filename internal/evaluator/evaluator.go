package evaluator

import (
	"fmt"
	"io"
	"os"

	"github.com/coal-lang/coal/internal/ast"
)

// Evaluator drives the tree walk over a parsed Program. It owns the one
// Scope stack for the run (Coal is single-threaded, see spec §5) and the
// built-in module registry.
type Evaluator struct {
	Scope   *Scope
	Out     io.Writer
	Modules map[string]func() *Module
}

// New builds an Evaluator writing to out.
func New(out io.Writer) *Evaluator {
	e := &Evaluator{Scope: NewScope(), Out: out}
	e.Modules = moduleFactories()
	return e
}

// Run evaluates every top-level statement in prog, short-circuiting (and
// returning) on the first Error. Reaching EOF cleanly returns nil.
func (e *Evaluator) Run(prog *ast.Program) Object {
	for _, stmt := range prog.Statements {
		res := e.Eval(stmt, nil)
		if isError(res) {
			return res
		}
		if _, ok := res.(*BreakSignal); ok {
			return newError("SyntaxError", "break outside a loop")
		}
		if _, ok := res.(*NextSignal); ok {
			return newError("SyntaxError", "next outside a loop")
		}
	}
	return nil
}

// evalSuite runs a statement list under self, stopping at the first
// signal (Break, Next, Return, or Error) and propagating it to the caller.
func (e *Evaluator) evalSuite(stmts []ast.Statement, self *Instance) Object {
	for _, stmt := range stmts {
		res := e.Eval(stmt, self)
		if isSignal(res) {
			return res
		}
	}
	return nil
}

// Eval dispatches on node's concrete type. self is non-nil only while
// executing a type's constructor suite (spec §9's "self channel").
func (e *Evaluator) Eval(node ast.Node, self *Instance) Object {
	switch n := node.(type) {

	// Statements
	case *ast.ImportStmt:
		return e.evalImport(n)
	case *ast.LetStmt:
		return e.evalLet(n, self)
	case *ast.AssignStmt:
		return e.evalAssign(n, self)
	case *ast.IndexAssignStmt:
		return e.evalIndexAssign(n, self)
	case *ast.ExprStmt:
		res := e.Eval(n.Expr, self)
		if isError(res) {
			return res
		}
		return nil
	case *ast.FuncDef:
		return e.evalFuncDef(n)
	case *ast.FuncRet:
		v := e.Eval(n.Value, self)
		if isError(v) {
			return v
		}
		return &ReturnValue{Value: v}
	case *ast.TypeDef:
		return e.evalTypeDef(n)
	case *ast.IfStmt:
		return e.evalIf(n, self)
	case *ast.ForStmt:
		return e.evalFor(n, self)
	case *ast.EachStmt:
		return e.evalEach(n, self)
	case *ast.WhileStmt:
		return e.evalWhile(n, self)
	case *ast.BreakStmt:
		return &BreakSignal{}
	case *ast.NextStmt:
		return &NextSignal{}
	case *ast.ExitStmt:
		return e.evalExit(n, self)

	// Expressions
	case *ast.IntLit:
		return &Int{Value: n.Value}
	case *ast.FloatLit:
		return &Float{Value: n.Value}
	case *ast.StringLit:
		return &String{Value: n.Value}
	case *ast.BoolLit:
		return &Bool{Value: n.Value}
	case *ast.ListLit:
		elems := make([]Object, len(n.Elements))
		for i, el := range n.Elements {
			v := e.Eval(el, self)
			if isError(v) {
				return v
			}
			elems[i] = v
		}
		return &List{Elements: elems}
	case *ast.Ident:
		v, ok := e.Scope.LookupName(n.Name)
		if !ok {
			return newErrorAt("NameError", n.Token.Line, n.Token.Column, "name %q is not bound", n.Name)
		}
		return v
	case *ast.SelfAttr:
		if self == nil {
			return newErrorAt("NameError", n.Token.Line, n.Token.Column, "self.%s used outside a constructor", n.Name)
		}
		v, ok := self.Attributes[n.Name]
		if !ok {
			return newErrorAt("NameError", n.Token.Line, n.Token.Column, "self has no attribute %q", n.Name)
		}
		return v
	case *ast.IndexExpr:
		return e.evalIndexExpr(n, self)
	case *ast.BinaryExpr:
		left := e.Eval(n.Left, self)
		if isError(left) {
			return left
		}
		right := e.Eval(n.Right, self)
		if isError(right) {
			return right
		}
		return evalBinary(n.Op, left, right)
	case *ast.UnaryExpr:
		v := e.Eval(n.Right, self)
		if isError(v) {
			return v
		}
		return evalUnary(n.Op, v)
	case *ast.CallExpr:
		return e.evalCall(n, self)
	}

	return newError("SyntaxError", "unhandled node %T", node)
}

func (e *Evaluator) evalImport(n *ast.ImportStmt) Object {
	factory, ok := e.Modules[n.Name]
	if !ok {
		return newErrorAt("ImportError", n.Token.Line, n.Token.Column, "unknown module %q", n.Name)
	}
	name := n.Name
	if n.Alias != "" {
		name = n.Alias
	}
	e.Scope.SetName(name, factory())
	return nil
}

func (e *Evaluator) evalLet(n *ast.LetStmt, self *Instance) Object {
	if n.Value == nil {
		if !isBuiltinTypeName(n.Type) {
			if _, ok := e.Scope.LookupType(n.Type); !ok {
				return newErrorAt("TypeError", n.Token.Line, n.Token.Column, "unknown type %q", n.Type)
			}
		}
		e.Scope.SetName(n.Name, &Void{OfType: n.Type})
		return nil
	}

	v := e.Eval(n.Value, self)
	if isError(v) {
		return v
	}
	if isBuiltinTypeName(n.Type) {
		if _, ok := wrapBuiltin(n.Type, v); !ok {
			return newErrorAt("TypeError", n.Token.Line, n.Token.Column,
				"cannot assign %s to a declared %s", v.Type(), n.Type)
		}
	} else if string(v.Type()) != n.Type {
		return newErrorAt("TypeError", n.Token.Line, n.Token.Column,
			"cannot assign %s to a declared %s", v.Type(), n.Type)
	}
	e.Scope.SetName(n.Name, v)
	return nil
}

func (e *Evaluator) evalAssign(n *ast.AssignStmt, self *Instance) Object {
	cur, ok := e.Scope.LookupName(n.Name)
	if !ok {
		return newErrorAt("NameError", n.Token.Line, n.Token.Column, "name %q is not bound", n.Name)
	}

	rhs := e.Eval(n.Value, self)
	if isError(rhs) {
		return rhs
	}

	if n.Op == "=" {
		if void, ok := cur.(*Void); ok {
			if void.OfType != "Any" && string(rhs.Type()) != void.OfType {
				return newErrorAt("TypeError", n.Token.Line, n.Token.Column,
					"cannot assign %s to %q declared %s", rhs.Type(), n.Name, void.OfType)
			}
		} else if string(rhs.Type()) != string(cur.Type()) {
			return newErrorAt("TypeError", n.Token.Line, n.Token.Column,
				"cannot assign %s to %q currently %s", rhs.Type(), n.Name, cur.Type())
		}
		e.Scope.SetName(n.Name, rhs)
		return nil
	}

	// Compound assignment: +=, -=, *=, /=. Void-held slots are rejected
	// (spec Open Question 4's given resolution).
	if _, ok := cur.(*Void); ok {
		return newErrorAt("TypeError", n.Token.Line, n.Token.Column,
			"compound assignment on unbound %q", n.Name)
	}
	op := n.Op[:1]
	result := evalBinary(op, cur, rhs)
	if isError(result) {
		return result
	}
	if string(result.Type()) != string(cur.Type()) {
		return newErrorAt("TypeError", n.Token.Line, n.Token.Column,
			"compound assignment changed type of %q from %s to %s", n.Name, cur.Type(), result.Type())
	}
	e.Scope.SetName(n.Name, result)
	return nil
}

func (e *Evaluator) evalIndexAssign(n *ast.IndexAssignStmt, self *Instance) Object {
	cur, ok := e.Scope.LookupName(n.Name)
	if !ok {
		return newErrorAt("NameError", n.Token.Line, n.Token.Column, "name %q is not bound", n.Name)
	}
	it, ok := cur.(Iterable)
	if !ok {
		return newErrorAt("Exception", n.Token.Line, n.Token.Column, "%q is not a writable iterable", n.Name)
	}
	idx := e.Eval(n.Index, self)
	if isError(idx) {
		return idx
	}
	iv, ok := idx.(*Int)
	if !ok {
		return newErrorAt("TypeError", n.Token.Line, n.Token.Column, "index must be an Int")
	}
	val := e.Eval(n.Value, self)
	if isError(val) {
		return val
	}
	return it.Assign(iv.Value, val)
}

func (e *Evaluator) evalIndexExpr(n *ast.IndexExpr, self *Instance) Object {
	v, ok := e.Scope.LookupName(n.Name)
	if !ok {
		return newErrorAt("NameError", n.Token.Line, n.Token.Column, "name %q is not bound", n.Name)
	}
	it, ok := v.(Iterable)
	if !ok {
		return newErrorAt("Exception", n.Token.Line, n.Token.Column, "%q is not iterable", n.Name)
	}
	start := e.Eval(n.Start, self)
	if isError(start) {
		return start
	}
	si, ok := start.(*Int)
	if !ok {
		return newErrorAt("TypeError", n.Token.Line, n.Token.Column, "index must be an Int")
	}
	if n.End == nil {
		return it.Iter(si.Value, nil)
	}
	end := e.Eval(n.End, self)
	if isError(end) {
		return end
	}
	ei, ok := end.(*Int)
	if !ok {
		return newErrorAt("TypeError", n.Token.Line, n.Token.Column, "index must be an Int")
	}
	return it.Iter(si.Value, &ei.Value)
}

func (e *Evaluator) evalFuncDef(n *ast.FuncDef) Object {
	fn := &Function{Params: n.Params, ReturnType: n.ReturnType, Body: n.Body, Simple: n.Simple}
	if n.Simple {
		fn.Selector = n.Name
	} else {
		sel := ""
		for _, p := range n.Params {
			sel += p.Keyword + ":"
		}
		fn.Selector = sel
	}
	e.Scope.SetMethod(fn.Selector, fn)
	return nil
}

func (e *Evaluator) evalTypeDef(n *ast.TypeDef) Object {
	t := &Type{Name: n.Name, Extends: n.Extends, Inits: map[string]*ast.InitDef{}, Attributes: map[string]bool{}}
	for _, init := range n.Inits {
		sel := ""
		for _, p := range init.Params {
			sel += p.Keyword + ":"
		}
		t.Inits[sel] = init
		collectSelfAssignNames(init.Body, t.Attributes)
	}
	e.Scope.SetType(n.Name, t)
	return nil
}

// collectSelfAssignNames walks a constructor suite gathering every
// `[self name: value]` target so attribute getters/setters have a public
// name set immediately after construction (see object_types.go).
func collectSelfAssignNames(stmts []ast.Statement, out map[string]bool) {
	for _, stmt := range stmts {
		switch s := stmt.(type) {
		case *ast.ExprStmt:
			collectSelfAssignFromExpr(s.Expr, out)
		case *ast.IfStmt:
			collectSelfAssignNames(s.Body, out)
			for _, el := range s.Elifs {
				collectSelfAssignNames(el.Body, out)
			}
			collectSelfAssignNames(s.ElseBody, out)
		case *ast.WhileStmt:
			collectSelfAssignNames(s.Body, out)
		case *ast.ForStmt:
			collectSelfAssignNames(s.Body, out)
		case *ast.EachStmt:
			collectSelfAssignNames(s.Body, out)
		}
	}
}

func collectSelfAssignFromExpr(expr ast.Expression, out map[string]bool) {
	call, ok := expr.(*ast.CallExpr)
	if !ok {
		return
	}
	if _, ok := call.Receiver.(*ast.SelfExpr); ok && len(call.Selectors) == 1 {
		name := call.Selectors[0]
		if len(name) > 0 && name[len(name)-1] == ':' {
			name = name[:len(name)-1]
		}
		out[name] = true
	}
}

func (e *Evaluator) evalIf(n *ast.IfStmt, self *Instance) Object {
	test := e.Eval(n.Test, self)
	if isError(test) {
		return test
	}
	if Truthy(test) {
		return e.evalSuite(n.Body, self)
	}
	for _, el := range n.Elifs {
		t := e.Eval(el.Test, self)
		if isError(t) {
			return t
		}
		if Truthy(t) {
			return e.evalSuite(el.Body, self)
		}
	}
	if n.ElseBody != nil {
		return e.evalSuite(n.ElseBody, self)
	}
	return nil
}

func (e *Evaluator) evalFor(n *ast.ForStmt, self *Instance) Object {
	start := e.Eval(n.Start, self)
	if isError(start) {
		return start
	}
	end := e.Eval(n.End, self)
	if isError(end) {
		return end
	}
	si, ok1 := start.(*Int)
	ei, ok2 := end.(*Int)
	if !ok1 || !ok2 {
		return newErrorAt("TypeError", n.Token.Line, n.Token.Column, "for loop bounds must be Int")
	}
	step := int64(1)
	if n.Interval != nil {
		iv := e.Eval(n.Interval, self)
		if isError(iv) {
			return iv
		}
		ii, ok := iv.(*Int)
		if !ok {
			return newErrorAt("TypeError", n.Token.Line, n.Token.Column, "for loop interval must be Int")
		}
		step = ii.Value
	}
	if step == 0 {
		return newErrorAt("Exception", n.Token.Line, n.Token.Column, "for loop interval must be non-zero")
	}

	if existing, ok := e.Scope.LookupName(n.Name); ok {
		if void, isVoid := existing.(*Void); !(isVoid && void.OfType == "Any") {
			if _, isInt := existing.(*Int); !isInt {
				return newErrorAt("TypeError", n.Token.Line, n.Token.Column,
					"loop variable %q is bound to an incompatible value", n.Name)
			}
		}
	}

	for i := si.Value; (step > 0 && i <= ei.Value) || (step < 0 && i >= ei.Value); i += step {
		e.Scope.SetName(n.Name, &Int{Value: i})
		res := e.evalSuite(n.Body, self)
		if isError(res) {
			e.Scope.DeleteName(n.Name)
			return res
		}
		if _, ok := res.(*BreakSignal); ok {
			break
		}
		if rv, ok := res.(*ReturnValue); ok {
			e.Scope.DeleteName(n.Name)
			return rv
		}
	}
	e.Scope.DeleteName(n.Name)
	return nil
}

func (e *Evaluator) evalEach(n *ast.EachStmt, self *Instance) Object {
	iterable := e.Eval(n.Iterable, self)
	if isError(iterable) {
		return iterable
	}
	it, ok := iterable.(Iterable)
	if !ok {
		return newErrorAt("TypeError", n.Token.Line, n.Token.Column, "each requires an iterable")
	}

	// Pre-existing binding suppresses the whole loop; preserved verbatim
	// from the original interpreter (spec Open Question 2).
	if _, ok := e.Scope.LookupName(n.Name); ok {
		return nil
	}

	length := it.Length()
	for i := int64(0); i < length; i++ {
		e.Scope.SetName(n.Name, it.Iter(i, nil))
		res := e.evalSuite(n.Body, self)
		if isError(res) {
			e.Scope.DeleteName(n.Name)
			return res
		}
		if _, ok := res.(*BreakSignal); ok {
			break
		}
		if rv, ok := res.(*ReturnValue); ok {
			e.Scope.DeleteName(n.Name)
			return rv
		}
	}
	e.Scope.DeleteName(n.Name)
	return nil
}

func (e *Evaluator) evalWhile(n *ast.WhileStmt, self *Instance) Object {
	for {
		test := e.Eval(n.Test, self)
		if isError(test) {
			return test
		}
		if !Truthy(test) {
			return nil
		}
		res := e.evalSuite(n.Body, self)
		if isError(res) {
			return res
		}
		if _, ok := res.(*BreakSignal); ok {
			return nil
		}
		if rv, ok := res.(*ReturnValue); ok {
			return rv
		}
	}
}

func (e *Evaluator) evalExit(n *ast.ExitStmt, self *Instance) Object {
	v := e.Eval(n.Value, self)
	if isError(v) {
		return v
	}
	switch val := v.(type) {
	case *Int:
		os.Exit(int(val.Value))
	case *Bool:
		if val.Value {
			os.Exit(1)
		}
		os.Exit(0)
	default:
		return newErrorAt("TypeError", n.Token.Line, n.Token.Column, "exit requires Int or Bool")
	}
	return nil
}

// Fatal prints an Error the way the top-level driver does and exits 1 —
// exposed so pkg/cli doesn't duplicate the error-channel's format.
func (e *Evaluator) Fatal(err *Error) {
	fmt.Fprintln(os.Stderr, err.Inspect())
	os.Exit(1)
}
