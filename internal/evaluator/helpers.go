package evaluator

import "fmt"

// newError constructs a tagged Error Object. Pattern lifted directly from
// the teacher's newError/newErrorWithLocation helpers
// (internal/evaluator/helpers.go), trimmed to Coal's simpler Error shape.
func newError(kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func newErrorAt(kind string, line, column int, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Line: line, Column: column}
}

// builtinTypeNames is the closed set of built-in `object_type` tags a
// declared type annotation may name besides a user-defined Type.
var builtinTypeNames = map[string]bool{
	"Void": true, "Any": true, "Bool": true, "Int": true,
	"Float": true, "String": true, "List": true, "Function": true,
}

func isBuiltinTypeName(name string) bool { return builtinTypeNames[name] }

// wrapBuiltin constructs the Value matching a declared built-in type from
// an already-evaluated raw Object of that same concrete kind; used by
// NameDef when the declared type is built-in (the value is already the
// correct concrete Object — this just validates the tag matches).
func wrapBuiltin(declared string, v Object) (Object, bool) {
	if string(v.Type()) == declared || declared == "Any" {
		return v, true
	}
	return nil, false
}
