package evaluator

import "github.com/coal-lang/coal/internal/ast"

// evalCall implements §4.3 Selector Dispatch over the one CallExpr shape:
// a nil Receiver is a local call, a Receiver naming a bound Type is a
// TypeCall, `self` as Receiver is a constructor SelfAssign, and anything
// else is an ordinary receiver call.
func (e *Evaluator) evalCall(n *ast.CallExpr, self *Instance) Object {
	selector := n.Selector()

	if n.Receiver == nil {
		return e.evalLocalCall(n, selector, self)
	}

	if _, ok := n.Receiver.(*ast.SelfExpr); ok {
		return e.evalSelfAssign(n, self)
	}

	if ident, ok := n.Receiver.(*ast.Ident); ok {
		if t, ok := e.Scope.LookupType(ident.Name); ok {
			args, err := e.evalArgs(n.Args, self)
			if err != nil {
				return err
			}
			return e.evalTypeCall(n, t, selector, args)
		}
	}

	recv := e.Eval(n.Receiver, self)
	if isError(recv) {
		return recv
	}
	args, err := e.evalArgs(n.Args, self)
	if err != nil {
		return err
	}
	caller, ok := recv.(Caller)
	if !ok {
		return newErrorAt("MethodError", n.Token.Line, n.Token.Column, "%s does not support method calls", recv.Type())
	}
	return caller.Call(e, selector, args)
}

func (e *Evaluator) evalArgs(exprs []ast.Expression, self *Instance) ([]Object, Object) {
	out := make([]Object, len(exprs))
	for i, expr := range exprs {
		v := e.Eval(expr, self)
		if isError(v) {
			return nil, v
		}
		out[i] = v
	}
	return out, nil
}

func (e *Evaluator) evalLocalCall(n *ast.CallExpr, selector string, self *Instance) Object {
	args, err := e.evalArgs(n.Args, self)
	if err != nil {
		return err
	}

	if b, ok := builtins[selector]; ok {
		return b(e, args)
	}

	if fn, ok := e.Scope.LookupMethod(selector); ok {
		return e.callFunction(n, fn, args)
	}

	return newErrorAt("MethodError", n.Token.Line, n.Token.Column, "no function bound to %q", selector)
}

func (e *Evaluator) evalSelfAssign(n *ast.CallExpr, self *Instance) Object {
	if self == nil {
		return newErrorAt("SyntaxError", n.Token.Line, n.Token.Column, "self used outside a constructor")
	}
	if len(n.Selectors) != 1 {
		return newErrorAt("SyntaxError", n.Token.Line, n.Token.Column, "self assignment takes exactly one keyword")
	}
	name := n.Selectors[0]
	if len(name) > 0 && name[len(name)-1] == ':' {
		name = name[:len(name)-1]
	}
	args, err := e.evalArgs(n.Args, self)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return newErrorAt("Exception", n.Token.Line, n.Token.Column, "self.%s: expects exactly one value", name)
	}
	self.Attributes[name] = args[0]
	return &Void{OfType: "Any"}
}

// callFunction implements §4.5's Function Call Protocol.
func (e *Evaluator) callFunction(n *ast.CallExpr, fn *Function, args []Object) Object {
	if fn.Simple {
		if len(args) != 0 {
			return newErrorAt("Exception", n.Token.Line, n.Token.Column, "%q takes no arguments, got %d", fn.Selector, len(args))
		}
	} else if len(args) != len(fn.Params) {
		return newErrorAt("Exception", n.Token.Line, n.Token.Column,
			"%q expects %d arguments, got %d", fn.Selector, len(fn.Params), len(args))
	}

	exit := e.Scope.EnterCall()
	defer exit()

	for i, p := range fn.Params {
		if string(args[i].Type()) != p.Type {
			return newErrorAt("TypeError", n.Token.Line, n.Token.Column,
				"argument %d to %q must be %s, got %s", i+1, fn.Selector, p.Type, args[i].Type())
		}
		name := p.Alias
		if name == "" {
			name = p.Keyword
		}
		e.Scope.SetName(name, args[i])
	}

	result := e.evalSuite(fn.Body, nil)
	switch r := result.(type) {
	case nil:
		return &Void{OfType: fn.ReturnType}
	case *ReturnValue:
		if string(r.Value.Type()) != fn.ReturnType {
			return newErrorAt("TypeError", n.Token.Line, n.Token.Column,
				"%q declared to return %s, got %s", fn.Selector, fn.ReturnType, r.Value.Type())
		}
		return r.Value
	case *BreakSignal, *NextSignal:
		return newErrorAt("SyntaxError", n.Token.Line, n.Token.Column, "break/next outside a loop")
	default:
		return result // *Error
	}
}

// evalTypeCall implements the TypeCall contract: find the initializer
// under selector, run it through Scope.EnterCall (a fresh frame at depth 0,
// the caller's own frame when nested) with self set to a new Instance, and
// return that Instance.
func (e *Evaluator) evalTypeCall(n *ast.CallExpr, t *Type, selector string, args []Object) Object {
	init, ok := t.Inits[selector]
	if !ok {
		return newErrorAt("MethodError", n.Token.Line, n.Token.Column, "%s has no initializer %q", t.Name, selector)
	}
	if len(args) != len(init.Params) {
		return newErrorAt("Exception", n.Token.Line, n.Token.Column,
			"%s init %q expects %d arguments, got %d", t.Name, selector, len(init.Params), len(args))
	}

	instance := &Instance{TypeName: t.Name, Attributes: map[string]Object{}, typeDef: t}

	exit := e.Scope.EnterCall()
	defer exit()

	for i, p := range init.Params {
		if string(args[i].Type()) != p.Type {
			return newErrorAt("TypeError", n.Token.Line, n.Token.Column,
				"argument %d to %s init %q must be %s, got %s", i+1, t.Name, selector, p.Type, args[i].Type())
		}
		name := p.Alias
		if name == "" {
			name = p.Keyword
		}
		e.Scope.SetName(name, args[i])
	}

	result := e.evalSuite(init.Body, instance)
	if isError(result) {
		return result
	}
	return instance
}
