package evaluator

import (
	"fmt"
	"os"
	"strings"
)

// builtins is the local (receiver-less) function table — the closed set
// of names every Coal program gets for free without an import, grounded
// on original_source/stdlib.py's CoalBuiltin registrations.
var builtins = map[string]func(e *Evaluator, args []Object) Object{
	"print:":     builtinPrint,
	"print:sep:": builtinPrintSep,
	"license:":   builtinLicense,
	"quit:":      builtinQuit,
	"chr:":       builtinChr,
	"ord:":       builtinOrd,
}

func builtinPrint(e *Evaluator, args []Object) Object {
	if len(args) != 1 {
		return newError("Exception", "print: expects 1 argument, got %d", len(args))
	}
	fmt.Fprintln(e.Out, reprAsString(args[0]))
	return &Void{OfType: "Any"}
}

func builtinPrintSep(e *Evaluator, args []Object) Object {
	if len(args) != 2 {
		return newError("Exception", "print:sep: expects 2 arguments, got %d", len(args))
	}
	list, ok := args[0].(*List)
	if !ok {
		return newError("TypeError", "print:sep: expects a List as its first argument")
	}
	sep, ok := args[1].(*String)
	if !ok {
		return newError("TypeError", "print:sep: expects a String separator")
	}
	parts := make([]string, len(list.Elements))
	for i, el := range list.Elements {
		parts[i] = reprAsString(el)
	}
	fmt.Fprintln(e.Out, strings.Join(parts, sep.Value))
	return &Void{OfType: "Any"}
}

func builtinLicense(e *Evaluator, args []Object) Object {
	if len(args) != 0 {
		return newError("Exception", "license: expects 0 arguments, got %d", len(args))
	}
	fmt.Fprintln(e.Out, "Coal is distributed under the terms of its project license.")
	return &Void{OfType: "Any"}
}

func builtinQuit(e *Evaluator, args []Object) Object {
	if len(args) != 0 {
		return newError("Exception", "quit: expects 0 arguments, got %d", len(args))
	}
	os.Exit(0)
	return &Void{OfType: "Any"}
}

func builtinChr(e *Evaluator, args []Object) Object {
	if len(args) != 1 {
		return newError("Exception", "chr: expects 1 argument, got %d", len(args))
	}
	code, ok := args[0].(*Int)
	if !ok {
		return newError("TypeError", "chr: expects an Int argument")
	}
	return &String{Value: string(rune(code.Value))}
}

func builtinOrd(e *Evaluator, args []Object) Object {
	if len(args) != 1 {
		return newError("Exception", "ord: expects 1 argument, got %d", len(args))
	}
	s, ok := args[0].(*String)
	if !ok {
		return newError("TypeError", "ord: expects a String argument")
	}
	runes := []rune(s.Value)
	if len(runes) != 1 {
		return newError("Exception", "ord: expects a single-character String")
	}
	return &Int{Value: int64(runes[0])}
}

// moduleFactories is the import table: `import math` etc. looks up its
// name here and gets a fresh Module instance per import.
func moduleFactories() map[string]func() *Module {
	return map[string]func() *Module{
		"math": newMathModule,
		"core": newCoreModule,
		"data": newDataModule,
		"db":   newDBModule,
		"net":  newNetModule,
	}
}
