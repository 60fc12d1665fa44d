package interpreter

import (
	"brewin/interpreter-go/pkg/ast"
	"brewin/interpreter-go/pkg/runtime"
)

func (i *Interpreter) evalBinary(op string, left, right *runtime.Value) (*runtime.Value, error) {
	switch op {
	case "==":
		return runtime.BoolValue(valuesEqual(left, right)), nil
	case "!=":
		return runtime.BoolValue(!valuesEqual(left, right)), nil
	}

	if left.Tag == runtime.TypeString && right.Tag == runtime.TypeString && op == "+" {
		return runtime.StringValue(left.Str + right.Str), nil
	}

	if left.Tag == runtime.TypeInt && right.Tag == runtime.TypeInt {
		switch op {
		case "+":
			return runtime.IntValue(left.Int + right.Int), nil
		case "-":
			return runtime.IntValue(left.Int - right.Int), nil
		case "*":
			return runtime.IntValue(left.Int * right.Int), nil
		case "/":
			if right.Int == 0 {
				return nil, typeErrorf("division by zero")
			}
			return runtime.IntValue(floorDiv(left.Int, right.Int)), nil
		case "<":
			return runtime.BoolValue(left.Int < right.Int), nil
		case "<=":
			return runtime.BoolValue(left.Int <= right.Int), nil
		case ">":
			return runtime.BoolValue(left.Int > right.Int), nil
		case ">=":
			return runtime.BoolValue(left.Int >= right.Int), nil
		}
	}

	if left.Tag == runtime.TypeBool && right.Tag == runtime.TypeBool {
		switch op {
		case "&&":
			return runtime.BoolValue(left.Bool && right.Bool), nil
		case "||":
			return runtime.BoolValue(left.Bool || right.Bool), nil
		}
	}

	return nil, typeErrorf("invalid binary operation")
}

// floorDiv truncates toward negative infinity, not toward zero.
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// valuesEqual: nil payloads are equal regardless of tag; objects and
// functions compare by identity; a function against a nil object is always
// unequal; everything else needs identical tag and payload.
func valuesEqual(left, right *runtime.Value) bool {
	if left.IsNilPayload() && right.IsNilPayload() {
		return true
	}
	if left.Tag == runtime.TypeObject && right.Tag == runtime.TypeObject {
		return left.Obj == right.Obj
	}
	if left.Tag == runtime.TypeFunction && right.Tag == runtime.TypeFunction {
		return left.Fn == right.Fn
	}
	if left.Tag == runtime.TypeFunction && right.Tag == runtime.TypeObject {
		return false
	}
	if right.Tag == runtime.TypeFunction && left.Tag == runtime.TypeObject {
		return false
	}
	if left.Tag != right.Tag {
		return false
	}
	switch left.Tag {
	case runtime.TypeInt:
		return left.Int == right.Int
	case runtime.TypeString:
		return left.Str == right.Str
	case runtime.TypeBool:
		return left.Bool == right.Bool
	case runtime.TypeVoid:
		return true
	}
	return false
}

func (i *Interpreter) evalUnary(n *ast.UnaryExpr) (*runtime.Value, error) {
	operand, err := i.evalExpr(n.Operand)
	if err != nil {
		return nil, err
	}
	switch n.Op {
	case "-":
		if operand.Tag != runtime.TypeInt {
			return nil, typeErrorf("cannot negate non-integer")
		}
		return runtime.IntValue(-operand.Int), nil
	case "!":
		if operand.Tag != runtime.TypeBool {
			return nil, typeErrorf("cannot apply NOT to non-boolean")
		}
		return runtime.BoolValue(!operand.Bool), nil
	default:
		return nil, typeErrorf("invalid unary operation %s", n.Op)
	}
}
