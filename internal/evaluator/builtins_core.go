package evaluator

import (
	"os"

	"github.com/google/uuid"
)

// newCoreModule backs spec.md's `core` module, supplemented per
// SPEC_FULL.md §7.2 with a real UUID generator and environment access.
func newCoreModule() *Module {
	m := NewModule("core")
	m.Attributes["version"] = &List{Elements: []Object{
		&Int{Value: 0}, &Int{Value: 1}, &Int{Value: 0},
	}}

	m.Methods["uuid:"] = func(e *Evaluator, args []Object) Object {
		if len(args) != 0 {
			return newError("Exception", "uuid: expects 0 arguments, got %d", len(args))
		}
		return &String{Value: uuid.NewString()}
	}
	m.Methods["env:"] = func(e *Evaluator, args []Object) Object {
		if len(args) != 1 {
			return newError("Exception", "env: expects 1 argument, got %d", len(args))
		}
		name, ok := args[0].(*String)
		if !ok {
			return newError("TypeError", "env: expects a String argument")
		}
		v, ok := os.LookupEnv(name.Value)
		if !ok {
			return &Void{OfType: "String"}
		}
		return &String{Value: v}
	}
	return m
}
