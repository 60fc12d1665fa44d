package interpreter

import (
	"errors"
	"io"
	"testing"

	"brewin/interpreter-go/pkg/parser"
)

// scriptedHost captures output lines and replays scripted input lines.
type scriptedHost struct {
	outputs []string
	inputs  []string
}

func (h *scriptedHost) Output(text string) {
	h.outputs = append(h.outputs, text)
}

func (h *scriptedHost) ReadInput() (string, error) {
	if len(h.inputs) == 0 {
		return "", io.EOF
	}
	line := h.inputs[0]
	h.inputs = h.inputs[1:]
	return line, nil
}

// runSource parses and runs a program against a scripted host, returning
// the captured output and the evaluation error, if any.
func runSource(t *testing.T, source string, input ...string) ([]string, error) {
	t.Helper()
	program, err := parser.ParseProgram(source)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	host := &scriptedHost{inputs: input}
	runErr := New(host).Run(program)
	return host.outputs, runErr
}

// mustRun fails the test on any evaluation error.
func mustRun(t *testing.T, source string, input ...string) []string {
	t.Helper()
	outputs, err := runSource(t, source, input...)
	if err != nil {
		t.Fatalf("evaluation failed: %v", err)
	}
	return outputs
}

// wantKind asserts that err is a RuntimeError of the given kind.
func wantKind(t *testing.T, err error, kind ErrorKind) *RuntimeError {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s, got no error", kind)
	}
	var runtimeErr *RuntimeError
	if !errors.As(err, &runtimeErr) {
		t.Fatalf("expected RuntimeError, got %T: %v", err, err)
	}
	if runtimeErr.Kind != kind {
		t.Fatalf("expected %s, got %v", kind, runtimeErr)
	}
	return runtimeErr
}
