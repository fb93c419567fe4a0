package evaluator

import "github.com/coal-lang/coal/internal/ast"

// Function is a callable value bound under a concatenated selector (or,
// for a "simple" function, its bare name) in a scope frame's methods map.
type Function struct {
	Selector   string
	Params     []ast.Param
	ReturnType string
	Body       []ast.Statement
	Simple     bool
}

func (f *Function) Type() ObjectType { return FUNCTION_OBJ }
func (f *Function) Inspect() string  { return "Function(" + f.Selector + ")" }
