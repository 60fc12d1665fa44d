package interpreter

import (
	"strings"

	"brewin/interpreter-go/pkg/ast"
	"brewin/interpreter-go/pkg/runtime"
)

// runCall resolves a call in order: host intrinsics, dotted-path method
// call, call through a function-valued variable, then overload-resolved
// function call.
func (i *Interpreter) runCall(call *ast.Call) (*runtime.Value, error) {
	switch call.Name {
	case "print":
		return i.handlePrint(call.Args)
	case "inputi", "inputs":
		return i.handleInput(call.Name, call.Args)
	}

	if strings.Contains(call.Name, ".") {
		return i.runMethodCall(call.Name, call.Args)
	}

	if i.env.InFrame() {
		if cell := i.env.Get(call.Name); cell != nil && cell.Tag == runtime.TypeFunction {
			if cell.Fn == nil {
				return nil, faultErrorf("cannot call a nil function")
			}
			return i.callFunctionValue(cell.Fn, call.Args, nil)
		}
	}

	return i.callOverload(call.Name, call.Args)
}

// callOverload is the ordinary call protocol: evaluate actuals left to
// right, resolve by runtime signature, check interface-typed formals, then
// bind a fresh frame and run the body.
func (i *Interpreter) callOverload(name string, args []ast.Expression) (*runtime.Value, error) {
	actuals, err := i.evalArgs(args)
	if err != nil {
		return nil, err
	}
	sig, err := argumentSignature(actuals)
	if err != nil {
		return nil, err
	}
	fn, err := i.resolveFunction(name, sig)
	if err != nil {
		return nil, err
	}

	// Interface satisfaction is checked before frame entry.
	for idx, formal := range fn.Params {
		letter, ok := runtime.InterfaceLetter(formal.Name)
		if !ok {
			continue
		}
		if actuals[idx].Tag != runtime.TypeObject {
			return nil, typeErrorf("argument for %s must be an object", formal.Name)
		}
		if err := i.checkInterface(letter, actuals[idx]); err != nil {
			return nil, err
		}
	}

	i.env.EnterFrame()
	defer i.env.ExitFrame()
	for idx, formal := range fn.Params {
		i.env.DefineFuncScope(formal.Name, cloneForPassing(actuals[idx], formal.Ref))
	}
	result, _, err := i.runStatements(fn, fn.Statements)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// callFunctionValue invokes through a function value: a method, a lambda,
// or a first-class function reference. Resolution already happened, so the
// actuals are checked against this descriptor's formals directly.
func (i *Interpreter) callFunctionValue(fn *runtime.Function, args []ast.Expression, receiver *runtime.Value) (*runtime.Value, error) {
	actuals, err := i.evalArgs(args)
	if err != nil {
		return nil, err
	}
	if len(actuals) != len(fn.Params) {
		return nil, typeErrorf("number of arguments doesn't match")
	}
	for idx, formal := range fn.Params {
		if runtime.TypeFromName(formal.Name) != actuals[idx].Tag {
			return nil, typeErrorf("argument type mismatch for %s", formal.Name)
		}
		if letter, ok := runtime.InterfaceLetter(formal.Name); ok {
			if err := i.checkInterface(letter, actuals[idx]); err != nil {
				return nil, err
			}
		}
	}

	i.env.EnterFrame()
	defer i.env.ExitFrame()

	// Method calls see their receiver as selfo.
	if receiver != nil {
		i.env.DefineFuncScope("selfo", receiver)
	}

	// Lambdas see their capture snapshot as function-scoped bindings.
	for name, val := range fn.Captured {
		i.env.DefineFuncScope(name, val)
	}

	for idx, formal := range fn.Params {
		actual := cloneForPassing(actuals[idx], formal.Ref)
		if i.env.Exists(formal.Name) {
			// A formal sharing a captured (or receiver) name overwrites
			// that cell's payload in place rather than re-declaring.
			i.env.Get(formal.Name).Set(actual)
		} else {
			i.env.DefineFuncScope(formal.Name, actual)
		}
	}
	result, _, err := i.runStatements(fn, fn.Statements)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// runMethodCall walks a dotted path to a function-valued field and invokes
// it with the owning object bound as the implicit receiver.
func (i *Interpreter) runMethodCall(path string, args []ast.Expression) (*runtime.Value, error) {
	parts := strings.Split(path, ".")
	if !i.env.Exists(parts[0]) {
		return nil, nameErrorf("variable %s not defined", parts[0])
	}
	value := i.env.Get(parts[0])
	for _, sub := range parts[1 : len(parts)-1] {
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
		if !objectTypedName(sub) {
			return nil, typeErrorf("member %s must be an object", sub)
		}
		value = field
	}

	if value.IsNilPayload() {
		return nil, faultErrorf("nil reference access")
	}
	if value.Tag != runtime.TypeObject {
		return nil, typeErrorf("member access on non-object")
	}
	methodName := parts[len(parts)-1]
	method, ok := value.Obj.Fields[methodName]
	if !ok {
		return nil, nameErrorf("method %s not found", methodName)
	}
	if method.Tag != runtime.TypeFunction {
		return nil, typeErrorf("calling a non-function")
	}
	if method.Fn == nil {
		return nil, faultErrorf("calling a nil function")
	}
	return i.callFunctionValue(method.Fn, args, value)
}

// evalArgs evaluates every actual-argument expression exactly once, left
// to right.
func (i *Interpreter) evalArgs(args []ast.Expression) ([]*runtime.Value, error) {
	actuals := make([]*runtime.Value, 0, len(args))
	for _, arg := range args {
		val, err := i.evalExpr(arg)
		if err != nil {
			return nil, err
		}
		actuals = append(actuals, val)
	}
	return actuals, nil
}

// cloneForPassing binds a by-reference formal to the caller's cell itself;
// a by-value formal gets a fresh wrapper (object and function payloads
// remain identity-shared).
func cloneForPassing(actual *runtime.Value, ref bool) *runtime.Value {
	if ref {
		return actual
	}
	return actual.Copy()
}
