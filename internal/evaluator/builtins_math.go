package evaluator

import "math"

// newMathModule backs spec.md's `math` module, supplemented with the rest
// of Go's math package per SPEC_FULL.md §7.1.
func newMathModule() *Module {
	m := NewModule("math")
	m.Attributes["e"] = &Float{Value: math.E}
	m.Attributes["pi"] = &Float{Value: math.Pi}

	m.Methods["atan:"] = func(e *Evaluator, args []Object) Object {
		x, err := floatArg(args, 0, "atan:")
		if err != nil {
			return err
		}
		return &Float{Value: math.Atan(x)}
	}
	m.Methods["sqrt:"] = func(e *Evaluator, args []Object) Object {
		x, err := floatArg(args, 0, "sqrt:")
		if err != nil {
			return err
		}
		return &Float{Value: math.Sqrt(x)}
	}
	m.Methods["floor:"] = func(e *Evaluator, args []Object) Object {
		x, err := floatArg(args, 0, "floor:")
		if err != nil {
			return err
		}
		return &Float{Value: math.Floor(x)}
	}
	m.Methods["ceil:"] = func(e *Evaluator, args []Object) Object {
		x, err := floatArg(args, 0, "ceil:")
		if err != nil {
			return err
		}
		return &Float{Value: math.Ceil(x)}
	}
	m.Methods["pow:exp:"] = func(e *Evaluator, args []Object) Object {
		if len(args) != 2 {
			return newError("Exception", "pow:exp: expects 2 arguments, got %d", len(args))
		}
		base, ok1 := args[0].(*Float)
		exp, ok2 := args[1].(*Float)
		if !ok1 || !ok2 {
			return newError("TypeError", "pow:exp: expects two Float arguments")
		}
		return &Float{Value: math.Pow(base.Value, exp.Value)}
	}
	return m
}

func floatArg(args []Object, i int, selector string) (float64, *Error) {
	if len(args) != 1 {
		return 0, newError("Exception", "%s expects 1 argument, got %d", selector, len(args))
	}
	f, ok := args[i].(*Float)
	if !ok {
		return 0, newError("TypeError", "%s expects a Float argument", selector)
	}
	return f.Value, nil
}
