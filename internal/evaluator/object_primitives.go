package evaluator

import (
	"fmt"
	"strings"
)

// Void is the empty/unbound value; OfType is "Any" when unconstrained.
type Void struct{ OfType string }

func (v *Void) Type() ObjectType     { return VOID_OBJ }
func (v *Void) Inspect() string      { return fmt.Sprintf("Void(%s)", v.OfType) }
func (v *Void) DisplayString() string { return v.Inspect() }

// Bool is Coal's truth value.
type Bool struct{ Value bool }

func (b *Bool) Type() ObjectType      { return BOOL_OBJ }
func (b *Bool) Inspect() string       { return fmt.Sprintf("Bool(%t)", b.Value) }
func (b *Bool) DisplayString() string { return fmt.Sprintf("%t", b.Value) }

func (b *Bool) Call(e *Evaluator, selector string, args []Object) Object {
	return newError("MethodError", "Bool has no method %q", selector)
}

// NewBoolFromString accepts the lowercase string forms "true"/"false",
// mirroring the spec's Bool(bool) "constructed from string form" clause.
func NewBoolFromString(s string) *Bool {
	return &Bool{Value: s == "true"}
}

// Int is a 64-bit signed integer value.
type Int struct{ Value int64 }

func (i *Int) Type() ObjectType      { return INT_OBJ }
func (i *Int) Inspect() string       { return fmt.Sprintf("Int(%d)", i.Value) }
func (i *Int) DisplayString() string { return fmt.Sprintf("%d", i.Value) }

func (i *Int) Call(e *Evaluator, selector string, args []Object) Object {
	return newError("MethodError", "Int has no method %q", selector)
}

// Float is a double-precision floating point value.
type Float struct{ Value float64 }

func (f *Float) Type() ObjectType      { return FLOAT_OBJ }
func (f *Float) Inspect() string       { return fmt.Sprintf("Float(%g)", f.Value) }
func (f *Float) DisplayString() string { return fmt.Sprintf("%g", f.Value) }

func (f *Float) Call(e *Evaluator, selector string, args []Object) Object {
	return newError("MethodError", "Float has no method %q", selector)
}

// String is Coal's UTF-8 text value. replace:with: and replace:with:times:
// rewrite the receiver in place and return Void; the stringAfter... methods
// leave the receiver unchanged and return a new String.
type String struct{ Value string }

func (s *String) Type() ObjectType { return STRING_OBJ }
func (s *String) Inspect() string {
	escaped := strings.ReplaceAll(s.Value, `\`, `\\`)
	escaped = strings.ReplaceAll(escaped, `"`, `\"`)
	return `"` + escaped + `"`
}
func (s *String) DisplayString() string { return s.Value }

func (s *String) Call(e *Evaluator, selector string, args []Object) Object {
	switch selector {
	case "length:":
		return &Int{Value: int64(len([]rune(s.Value)))}
	case "concat:":
		if len(args) != 1 {
			return newError("Exception", "concat: expects 1 argument, got %d", len(args))
		}
		other, ok := args[0].(*String)
		if !ok {
			return newError("TypeError", "concat: expects a String argument")
		}
		return &String{Value: s.Value + other.Value}
	case "format:":
		if len(args) != 1 {
			return newError("Exception", "format: expects 1 argument, got %d", len(args))
		}
		it, ok := args[0].(Iterable)
		if !ok {
			return newError("TypeError", "format: expects an iterable argument")
		}
		n := it.Length()
		out := s.Value
		for i := int64(0); i < n; i++ {
			v := it.Iter(i, nil)
			out = strings.Replace(out, "{}", reprAsString(v), 1)
		}
		return &String{Value: out}
	case "toUpper:":
		return &String{Value: strings.ToUpper(s.Value)}
	case "toLower:":
		return &String{Value: strings.ToLower(s.Value)}
	case "replace:with:":
		if len(args) != 2 {
			return newError("Exception", "replace:with: expects 2 arguments, got %d", len(args))
		}
		old, ok1 := args[0].(*String)
		repl, ok2 := args[1].(*String)
		if !ok1 || !ok2 {
			return newError("TypeError", "replace:with: expects String arguments")
		}
		s.Value = strings.ReplaceAll(s.Value, old.Value, repl.Value)
		return &Void{OfType: "String"}
	case "replace:with:times:":
		if len(args) != 3 {
			return newError("Exception", "replace:with:times: expects 3 arguments, got %d", len(args))
		}
		old, ok1 := args[0].(*String)
		repl, ok2 := args[1].(*String)
		times, ok3 := args[2].(*Int)
		if !ok1 || !ok2 || !ok3 {
			return newError("TypeError", "replace:with:times: expects (String, String, Int) arguments")
		}
		s.Value = strings.Replace(s.Value, old.Value, repl.Value, int(times.Value))
		return &Void{OfType: "String"}
	case "stringAfterReplacing:with:":
		if len(args) != 2 {
			return newError("Exception", "stringAfterReplacing:with: expects 2 arguments, got %d", len(args))
		}
		old, ok1 := args[0].(*String)
		repl, ok2 := args[1].(*String)
		if !ok1 || !ok2 {
			return newError("TypeError", "stringAfterReplacing:with: expects String arguments")
		}
		return &String{Value: strings.ReplaceAll(s.Value, old.Value, repl.Value)}
	case "stringAfterReplacing:with:times:":
		if len(args) != 3 {
			return newError("Exception", "stringAfterReplacing:with:times: expects 3 arguments, got %d", len(args))
		}
		old, ok1 := args[0].(*String)
		repl, ok2 := args[1].(*String)
		times, ok3 := args[2].(*Int)
		if !ok1 || !ok2 || !ok3 {
			return newError("TypeError", "stringAfterReplacing:with:times: expects (String, String, Int) arguments")
		}
		return &String{Value: strings.Replace(s.Value, old.Value, repl.Value, int(times.Value))}
	case "stringAfterTrimming:":
		if len(args) != 1 {
			return newError("Exception", "stringAfterTrimming: expects 1 argument, got %d", len(args))
		}
		cut, ok := args[0].(*String)
		if !ok {
			return newError("TypeError", "stringAfterTrimming: expects a String argument")
		}
		return &String{Value: strings.ReplaceAll(s.Value, cut.Value, "")}
	}
	return newError("MethodError", "String has no method %q", selector)
}

// reprAsString renders v the way print: and String formatting do:
// strings pass through verbatim, values with a user-facing form (Stringer)
// use it, and anything else falls back to its Raw repr.
func reprAsString(v Object) string {
	if s, ok := v.(*String); ok {
		return s.Value
	}
	if d, ok := v.(Stringer); ok {
		return d.DisplayString()
	}
	return v.Inspect()
}

// Truthy implements the spec's uniform truthiness rule: a Void is always
// false; every other value's truthiness is its payload's truthiness.
func Truthy(v Object) bool {
	switch o := v.(type) {
	case *Void:
		return false
	case *Bool:
		return o.Value
	case *Int:
		return o.Value != 0
	case *Float:
		return o.Value != 0
	case *String:
		return o.Value != ""
	case *List:
		return true // empty Lists are truthy (spec Open Question 3)
	default:
		return true
	}
}
