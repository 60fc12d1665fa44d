package interpreter

import (
	"strconv"
	"strings"

	"brewin/interpreter-go/pkg/ast"
	"brewin/interpreter-go/pkg/runtime"
)

// handlePrint concatenates the string form of each evaluated argument and
// writes the result through the host.
func (i *Interpreter) handlePrint(args []ast.Expression) (*runtime.Value, error) {
	var out strings.Builder
	for _, arg := range args {
		val, err := i.evalExpr(arg)
		if err != nil {
			return nil, err
		}
		if val.Tag == runtime.TypeVoid {
			return nil, typeErrorf("cannot pass void argument to function")
		}
		out.WriteString(render(val))
	}
	i.host.Output(out.String())
	return runtime.VoidValue(), nil
}

// handleInput runs inputi/inputs: an optional prompt, then one line read
// through the host.
func (i *Interpreter) handleInput(name string, args []ast.Expression) (*runtime.Value, error) {
	if len(args) > 1 {
		return nil, nameErrorf("too many arguments for input function")
	}
	if len(args) == 1 {
		if _, err := i.handlePrint(args); err != nil {
			return nil, err
		}
	}
	line, err := i.host.ReadInput()
	if err != nil {
		return nil, typeErrorf("unable to read input")
	}
	if name == "inputi" {
		parsed, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
		if err != nil {
			return nil, typeErrorf("cannot convert input %q to int", line)
		}
		return runtime.IntValue(parsed), nil
	}
	return runtime.StringValue(line), nil
}

// render is the print-form of a value. Booleans render lowercase; nil
// objects and functions render as nil.
func render(val *runtime.Value) string {
	switch val.Tag {
	case runtime.TypeInt:
		return strconv.FormatInt(val.Int, 10)
	case runtime.TypeString:
		return val.Str
	case runtime.TypeBool:
		if val.Bool {
			return "true"
		}
		return "false"
	case runtime.TypeObject:
		if val.Obj == nil {
			return "nil"
		}
		return "<object>"
	case runtime.TypeFunction:
		if val.Fn == nil {
			return "nil"
		}
		return "<function>"
	default:
		return ""
	}
}
