// Package cli drives Coal both interactively (a line-buffered REPL with
// keyword interception and auto-indent) and in file mode, mirroring
// original_source/coal.py's own driver loop.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/coal-lang/coal/internal/config"
	"github.com/coal-lang/coal/internal/evaluator"
	"github.com/coal-lang/coal/internal/lexer"
	"github.com/coal-lang/coal/internal/parser"
)

// RunREPL drives an interactive session against in/out, intercepting the
// same reserved words the original prototype's REPL does (help, copyright,
// credits, license, quit) before ever touching the parser.
func RunREPL(in io.Reader, out io.Writer) {
	reader := bufio.NewReader(in)
	stdinTTY := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	stdoutTTY := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	tty := stdinTTY && stdoutTTY

	if tty {
		fmt.Fprintf(out, "Coal %s\n", config.Version)
		fmt.Fprintln(out, `Type "help", "copyright", "credits" or "license" for more information.`)
	}

	eval := evaluator.New(out)

	for {
		if tty {
			fmt.Fprint(out, ">>> ")
		}
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return // EOF
		}
		code := strings.TrimRight(line, "\n")

		switch strings.TrimSpace(code) {
		case "":
			continue
		case "help":
			fmt.Fprintln(out, "You can check the online documentation at coal-lang.github.io/coal.")
			continue
		case "copyright":
			fmt.Fprintln(out, "Copyright (c) the Coal authors. All rights reserved.")
			continue
		case "credits":
			fmt.Fprintln(out, "See coal-lang.github.io/coal for a full list of contributors.")
			continue
		case "license":
			fmt.Fprintln(out, `Type "[license:]" to see the license notice.`)
			continue
		case "quit":
			fmt.Fprintln(out, "Use [quit:] or Ctrl-D (EOF) to exit.")
			continue
		}

		if startsWithBlockOpener(code) {
			code = readBlock(reader, out, tty, code)
		}

		execute(eval, code)
	}
}

func startsWithBlockOpener(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	for _, kw := range config.BlockOpeners {
		if strings.HasPrefix(trimmed, kw) {
			return true
		}
	}
	return false
}

// readBlock implements the original's auto-indent accumulation: depth
// starts at 4, grows by 4 for every nested block opener, holds steady for
// elif/else, and otherwise tracks the indentation of the last typed line.
// The block is done once an "end" line is read at depth 0.
func readBlock(reader *bufio.Reader, out io.Writer, tty bool, first string) string {
	code := first + "\n"
	depth := 4

	for {
		if tty {
			fmt.Fprint(out, "... ")
			fmt.Fprint(out, strings.Repeat(" ", depth))
		}
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return code
		}
		raw := strings.TrimRight(line, "\n")
		trimmed := strings.TrimLeft(raw, " \t")

		if strings.TrimSpace(trimmed) == "" {
			continue
		}

		switch {
		case startsWithBlockOpener(trimmed):
			depth += 4
		case strings.HasPrefix(trimmed, "elif") || strings.HasPrefix(trimmed, "else"):
			// depth unchanged
		default:
			depth = len(raw) - len(trimmed)
		}

		code += raw + "\n"

		if strings.HasPrefix(trimmed, "end") {
			if depth == 0 {
				return code
			}
			depth -= 4
		}
	}
}

func execute(eval *evaluator.Evaluator, src string) {
	l := lexer.New(src)
	p := parser.New(l)
	prog := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		fmt.Fprintln(os.Stderr, "SyntaxError: "+strings.Join(errs, "; "))
		return
	}
	if res := eval.Run(prog); res != nil {
		if err, ok := res.(*evaluator.Error); ok {
			fmt.Fprintln(os.Stderr, err.Inspect())
		}
	}
}

// RunFile parses and evaluates a single source file, exiting the process
// with a non-zero status on the first Error (the Error Channel's single
// process-fatal surface, spec §7).
func RunFile(path string, out io.Writer) {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	l := lexer.New(string(src))
	p := parser.New(l)
	prog := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		fmt.Fprintln(os.Stderr, "SyntaxError: "+strings.Join(errs, "; "))
		os.Exit(1)
	}

	eval := evaluator.New(out)
	if res := eval.Run(prog); res != nil {
		if errObj, ok := res.(*evaluator.Error); ok {
			eval.Fatal(errObj)
		}
	}
}
