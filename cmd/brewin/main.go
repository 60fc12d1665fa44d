// Brewin is an interpreter for the Brewin teaching language.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"

	"brewin/interpreter-go/pkg/interpreter"
	"brewin/interpreter-go/pkg/parser"
)

const usage = `brewin

Usage:
  brewin SCRIPT
  brewin -e SOURCE
  brewin [-i]
  brewin -h | --version

Arguments:
  SCRIPT  Path to a Brewin program (conventionally .br).

Options:
  -e, --eval=SOURCE  Run the given program text.
  -i, --interactive  Start the REPL even when stdin is not a terminal.
  -h, --help         Display this help.
  --version          Print brewin version.

With no operands, brewin starts an interactive session when stdin is a TTY
and otherwise reads a whole program from stdin.
`

const version = "brewin 4.0"

func main() {
	opts, err := docopt.ParseArgs(usage, os.Args[1:], version)
	if err != nil {
		// Error in the usage doc. This should never happen.
		panic(err.Error())
	}

	script, _ := opts.String("SCRIPT")
	source, _ := opts.String("--eval")
	interactive, _ := opts.Bool("--interactive")

	switch {
	case script != "":
		text, err := os.ReadFile(script)
		if err != nil {
			fmt.Fprintf(os.Stderr, "brewin: %v\n", err)
			os.Exit(1)
		}
		os.Exit(run(string(text)))
	case source != "":
		os.Exit(run(source))
	case interactive || isatty.IsTerminal(os.Stdin.Fd()):
		repl()
	default:
		text, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "brewin: %v\n", err)
			os.Exit(1)
		}
		os.Exit(run(string(text)))
	}
}

// run parses and evaluates one program, reporting any fatal error the way
// the language defines it: kind and message, then a nonzero exit.
func run(source string) int {
	program, err := parser.ParseProgram(source)
	if err != nil {
		fmt.Fprintf(os.Stderr, "brewin: %v\n", err)
		return 1
	}
	if err := interpreter.New(nil).Run(program); err != nil {
		var runtimeErr *interpreter.RuntimeError
		if errors.As(err, &runtimeErr) {
			fmt.Fprintln(os.Stderr, runtimeErr.Error())
		} else {
			fmt.Fprintf(os.Stderr, "brewin: %v\n", err)
		}
		return 1
	}
	return 0
}
