// Package interpreter evaluates Brewin programs.
package interpreter

import (
	"bufio"
	"io"
	"os"
	"strings"

	"brewin/interpreter-go/pkg/ast"
	"brewin/interpreter-go/pkg/runtime"
)

// Host supplies the two I/O primitives visible to Brewin programs.
type Host interface {
	// Output writes one line of program output.
	Output(text string)
	// ReadInput blocks until one line of input is available.
	ReadInput() (string, error)
}

// StandardHost is the default host: stdout plus line-buffered stdin.
type StandardHost struct {
	Out io.Writer
	In  *bufio.Reader
}

func NewStandardHost() *StandardHost {
	return &StandardHost{Out: os.Stdout, In: bufio.NewReader(os.Stdin)}
}

func (h *StandardHost) Output(text string) {
	io.WriteString(h.Out, text+"\n")
}

func (h *StandardHost) ReadInput() (string, error) {
	line, err := h.In.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Interpreter bundles all evaluation state: the overload table, the
// interface table, the environment, and the host. Nothing is process-wide.
type Interpreter struct {
	funcs      map[funcKey]*runtime.Function
	funcNames  map[string]int // overload count per bare name
	interfaces map[string]*Interface
	env        *runtime.Environment
	host       Host
}

// New returns an interpreter bound to the given host. A nil host gets the
// standard stdout/stdin host.
func New(host Host) *Interpreter {
	if host == nil {
		host = NewStandardHost()
	}
	return &Interpreter{
		funcs:      make(map[funcKey]*runtime.Function),
		funcNames:  make(map[string]int),
		interfaces: make(map[string]*Interface),
		env:        runtime.NewEnvironment(),
		host:       host,
	}
}

// Run builds the interface and function tables, then invokes main. Both
// table builders perform their static-shape checks before any statement
// executes. Any returned error is a *RuntimeError.
func (i *Interpreter) Run(program *ast.Program) error {
	if err := i.buildInterfaceTable(program); err != nil {
		return err
	}
	if err := i.buildFunctionTable(program); err != nil {
		return err
	}
	_, err := i.runCall(ast.NewCall("main", nil))
	return err
}
