package interpreter

import (
	"strconv"
	"strings"

	"brewin/interpreter-go/pkg/ast"
	"brewin/interpreter-go/pkg/runtime"
)

// evalConvert applies an explicit conversion. Identity conversions are
// no-ops; object, function and void values convert to nothing.
func (i *Interpreter) evalConvert(n *ast.ConvertExpr) (*runtime.Value, error) {
	val, err := i.evalExpr(n.Value)
	if err != nil {
		return nil, err
	}

	switch n.To {
	case "int":
		switch val.Tag {
		case runtime.TypeInt:
			return val, nil
		case runtime.TypeString:
			parsed, err := strconv.ParseInt(strings.TrimSpace(val.Str), 10, 64)
			if err != nil {
				return nil, typeErrorf("cannot convert string %q to int", val.Str)
			}
			return runtime.IntValue(parsed), nil
		case runtime.TypeBool:
			if val.Bool {
				return runtime.IntValue(1), nil
			}
			return runtime.IntValue(0), nil
		default:
			return nil, typeErrorf("cannot convert %s to int", val.Tag)
		}
	case "str":
		switch val.Tag {
		case runtime.TypeString:
			return val, nil
		case runtime.TypeInt:
			return runtime.StringValue(strconv.FormatInt(val.Int, 10)), nil
		case runtime.TypeBool:
			if val.Bool {
				return runtime.StringValue("true"), nil
			}
			return runtime.StringValue("false"), nil
		default:
			return nil, typeErrorf("cannot convert %s to string", val.Tag)
		}
	case "bool":
		switch val.Tag {
		case runtime.TypeBool:
			return val, nil
		case runtime.TypeInt:
			return runtime.BoolValue(val.Int != 0), nil
		case runtime.TypeString:
			return runtime.BoolValue(val.Str != ""), nil
		default:
			return nil, typeErrorf("cannot convert %s to bool", val.Tag)
		}
	default:
		return nil, typeErrorf("invalid conversion type %s", n.To)
	}
}
