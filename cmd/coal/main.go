package main

import (
	"fmt"
	"os"

	"github.com/coal-lang/coal/internal/config"
	"github.com/coal-lang/coal/pkg/cli"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			if os.Getenv("COAL_DEBUG") == "1" {
				panic(r) // re-panic to get the stack trace
			}
			fmt.Fprintf(os.Stderr, "Internal error: %v\n", r)
			fmt.Fprintln(os.Stderr, "This is a bug. Please report it.")
			os.Exit(1)
		}
	}()

	if len(os.Args) < 2 {
		cli.RunREPL(os.Stdin, os.Stdout)
		return
	}

	path := os.Args[1]
	if !config.HasSourceExt(path) {
		fmt.Fprintf(os.Stderr, "%s: not a %s source file\n", path, config.SourceFileExt)
		os.Exit(1)
	}
	cli.RunFile(path, os.Stdout)
}
