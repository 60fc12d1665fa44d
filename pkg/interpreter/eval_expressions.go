package interpreter

import (
	"strings"

	"brewin/interpreter-go/pkg/ast"
	"brewin/interpreter-go/pkg/runtime"
)

// evalExpr evaluates an expression. Expression evaluation never creates or
// destroys scopes; it only reads cells and, through calls, frames.
func (i *Interpreter) evalExpr(expr ast.Expression) (*runtime.Value, error) {
	switch n := expr.(type) {
	case *ast.IntLiteral:
		return runtime.IntValue(n.Value), nil
	case *ast.StringLiteral:
		return runtime.StringValue(n.Value), nil
	case *ast.BoolLiteral:
		return runtime.BoolValue(n.Value), nil
	case *ast.NilLiteral:
		return runtime.NilObject(), nil
	case *ast.NewObject:
		return runtime.ObjectValue(runtime.NewObject()), nil
	case *ast.QualifiedName:
		return i.qualifiedValue(n.Name)
	case *ast.Call:
		return i.runCall(n)
	case *ast.LambdaExpr:
		return i.createLambda(n)
	case *ast.BinaryExpr:
		// Both operands evaluate eagerly; logical operators do not
		// short-circuit.
		left, err := i.evalExpr(n.Left)
		if err != nil {
			return nil, err
		}
		right, err := i.evalExpr(n.Right)
		if err != nil {
			return nil, err
		}
		return i.evalBinary(n.Op, left, right)
	case *ast.UnaryExpr:
		return i.evalUnary(n)
	case *ast.ConvertExpr:
		return i.evalConvert(n)
	default:
		return nil, typeErrorf("unsupported expression type: %s", expr.NodeType())
	}
}

// qualifiedValue resolves a plain or dotted name. A bare name that matches
// exactly one declared function denotes that function as a value; matching
// several overloads is ambiguous.
func (i *Interpreter) qualifiedValue(name string) (*runtime.Value, error) {
	parts := strings.Split(name, ".")

	if len(parts) == 1 {
		fn, count := i.soleOverload(parts[0])
		if count == 1 {
			return runtime.FunctionValue(fn), nil
		}
		if count > 1 {
			return nil, nameErrorf("ambiguous reference to overloaded function %s", parts[0])
		}
	}

	return i.resolvePath(parts)
}

// resolvePath walks a dotted path from a root variable through object
// fields and returns the terminal cell. Every intermediate segment must
// resolve to a non-nil object.
func (i *Interpreter) resolvePath(parts []string) (*runtime.Value, error) {
	if !i.env.Exists(parts[0]) {
		return nil, nameErrorf("variable %s not defined", parts[0])
	}
	value := i.env.Get(parts[0])

	if len(parts) > 1 && !objectTypedName(parts[0]) {
		return nil, typeErrorf("cannot dereference a non-object")
	}
	for idx, sub := range parts[1:] {
		if value.IsNilPayload() {
			return nil, faultErrorf("nil reference access")
		}
		if value.Tag != runtime.TypeObject {
			return nil, typeErrorf("member access on non-object")
		}
		field, ok := value.Obj.Fields[sub]
		if !ok {
			return nil, nameErrorf("object member %s not found", sub)
		}
		if idx < len(parts)-2 && !objectTypedName(sub) {
			return nil, typeErrorf("member %s must be an object", sub)
		}
		value = field
	}
	return value, nil
}

// resolveContainer walks all but the final segment of a dotted path and
// returns the object that owns the terminal field. The caller has already
// established that the root variable exists.
func (i *Interpreter) resolveContainer(parts []string) (*runtime.Value, error) {
	value := i.env.Get(parts[0])
	if value.Tag != runtime.TypeObject {
		return nil, typeErrorf("cannot access member of non-object")
	}
	if value.Obj == nil {
		return nil, faultErrorf("cannot dereference nil object")
	}
	for _, sub := range parts[1 : len(parts)-1] {
		field, ok := value.Obj.Fields[sub]
		if !ok {
			return nil, nameErrorf("object member %s not found", sub)
		}
		if !objectTypedName(sub) {
			return nil, typeErrorf("member %s must be an object", sub)
		}
		if field.Tag != runtime.TypeObject {
			return nil, typeErrorf("member access on non-object")
		}
		if field.Obj == nil {
			return nil, faultErrorf("cannot dereference nil member object")
		}
		value = field
	}
	return value, nil
}

// objectTypedName reports whether a path segment declares an object: a
// trailing 'o' or an interface letter.
func objectTypedName(name string) bool {
	return runtime.TypeFromName(name) == runtime.TypeObject
}

// createLambda builds a closure: a function descriptor plus a snapshot of
// every variable visible in the current frame, fixed at creation time.
func (i *Interpreter) createLambda(n *ast.LambdaExpr) (*runtime.Value, error) {
	returnType := runtime.TypeFromName(n.Name)
	if returnType == runtime.TypeError {
		return nil, typeErrorf("invalid return type for lambda %s", n.Name)
	}
	params := make([]runtime.Param, 0, len(n.Params))
	for _, p := range n.Params {
		params = append(params, runtime.Param{Name: p.Name, Ref: p.Ref})
	}
	fn := &runtime.Function{
		Name:       n.Name,
		Params:     params,
		Statements: n.Statements,
		ReturnType: returnType,
		Captured:   i.env.CaptureSnapshot(),
	}
	return runtime.FunctionValue(fn), nil
}
