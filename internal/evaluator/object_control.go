package evaluator

import "fmt"

// Error is Coal's single typed error channel: a tagged kind, a message,
// and the source position it occurred at. Adapted directly from the
// teacher's Error object (internal/evaluator/object_control.go), trimmed
// of stack-trace plumbing the spec doesn't call for.
type Error struct {
	Kind    string
	Message string
	Line    int
	Column  int
}

func (e *Error) Type() ObjectType { return ERROR_OBJ }

func (e *Error) Inspect() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s at %d:%d: %s", e.Kind, e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// ReturnValue wraps a value produced by `return`, letting the function
// call protocol distinguish a returned value from a fall-through one.
type ReturnValue struct{ Value Object }

func (r *ReturnValue) Type() ObjectType { return "ReturnValue" }
func (r *ReturnValue) Inspect() string  { return r.Value.Inspect() }

// BreakSignal and NextSignal implement the suite-result enum the design
// notes call for ({Normal, Next, Break, Return(Value)}) in place of the
// original's process-wide boolean flags.
type BreakSignal struct{}

func (b *BreakSignal) Type() ObjectType { return "Break" }
func (b *BreakSignal) Inspect() string  { return "Break" }

type NextSignal struct{}

func (n *NextSignal) Type() ObjectType { return "Next" }
func (n *NextSignal) Inspect() string  { return "Next" }

// isError reports whether obj is a propagating Error.
func isError(obj Object) bool {
	if obj == nil {
		return false
	}
	return obj.Type() == ERROR_OBJ
}

// isSignal reports whether obj is a control-flow signal (Break, Next, or
// Return) that must short-circuit ordinary suite execution.
func isSignal(obj Object) bool {
	if obj == nil {
		return false
	}
	switch obj.Type() {
	case "Break", "Next", "ReturnValue":
		return true
	}
	return isError(obj)
}
