// Package evaluator implements Coal's value model, scope, selector
// dispatch, and tree-walking evaluator.
package evaluator

// ObjectType tags every Value's dynamic type; these strings are exactly
// the `object_type` values user code and invariants compare against.
type ObjectType string

const (
	VOID_OBJ     ObjectType = "Void"
	BOOL_OBJ     ObjectType = "Bool"
	INT_OBJ      ObjectType = "Int"
	FLOAT_OBJ    ObjectType = "Float"
	STRING_OBJ   ObjectType = "String"
	LIST_OBJ     ObjectType = "List"
	FUNCTION_OBJ ObjectType = "Function"
	TYPE_OBJ     ObjectType = "Type"
	INSTANCE_OBJ ObjectType = "Instance"
	MODULE_OBJ   ObjectType = "Module"
	ERROR_OBJ    ObjectType = "Error"
)

// Object is the interface every Coal value implements.
type Object interface {
	// Type returns the object_type tag used for all nominal type checks.
	Type() ObjectType
	// Inspect renders the Raw (debug) representation.
	Inspect() string
}

// Stringer is implemented by values with a distinct user-facing "String"
// representation (see repr(as_type) in the spec's Value Model).
type Stringer interface {
	DisplayString() string
}

// Caller is implemented by every Value that can receive a selector call:
// built-in method, user-function, or an attribute getter/setter fallback.
type Caller interface {
	Call(e *Evaluator, selector string, args []Object) Object
}

// Iterable is implemented by values supporting the iterable protocol.
type Iterable interface {
	Iter(start int64, end *int64) Object
	Assign(index int64, value Object) Object
	Length() int64
}
