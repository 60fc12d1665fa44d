package interpreter

import (
	"brewin/interpreter-go/pkg/ast"
	"brewin/interpreter-go/pkg/runtime"
)

// funcKey identifies one overload: the bare name plus the concatenated
// declared-type letters of its formal parameters.
type funcKey struct {
	name string
	sig  string
}

// paramSignature concatenates each formal parameter's declared-type letter.
// Interface constraints normalize to 'o'. Only {i,s,b,o,f} are legal.
func paramSignature(params []*ast.Parameter) (string, error) {
	sig := make([]byte, 0, len(params))
	for _, p := range params {
		letter := byte(0)
		switch runtime.TypeFromName(p.Name) {
		case runtime.TypeInt:
			letter = 'i'
		case runtime.TypeString:
			letter = 's'
		case runtime.TypeBool:
			letter = 'b'
		case runtime.TypeObject:
			letter = 'o'
		case runtime.TypeFunction:
			letter = 'f'
		default:
			return "", typeErrorf("invalid type in formal parameter")
		}
		sig = append(sig, letter)
	}
	return string(sig), nil
}

// argumentSignature derives the callee signature from the runtime tags of
// already-evaluated arguments.
func argumentSignature(args []*runtime.Value) (string, error) {
	sig := make([]byte, 0, len(args))
	for _, arg := range args {
		switch arg.Tag {
		case runtime.TypeInt:
			sig = append(sig, 'i')
		case runtime.TypeString:
			sig = append(sig, 's')
		case runtime.TypeBool:
			sig = append(sig, 'b')
		case runtime.TypeObject:
			sig = append(sig, 'o')
		case runtime.TypeFunction:
			sig = append(sig, 'f')
		case runtime.TypeVoid:
			return "", typeErrorf("void type not allowed as parameter")
		default:
			return "", typeErrorf("invalid argument type")
		}
	}
	return string(sig), nil
}

func newFunction(name string, params []*ast.Parameter, statements []ast.Statement) (*runtime.Function, error) {
	returnType := runtime.ReturnTypeFromName(name)
	if returnType == runtime.TypeError {
		return nil, typeErrorf("invalid return type for function %s", name)
	}
	formals := make([]runtime.Param, 0, len(params))
	for _, p := range params {
		formals = append(formals, runtime.Param{Name: p.Name, Ref: p.Ref})
	}
	return &runtime.Function{
		Name:       name,
		Params:     formals,
		Statements: statements,
		ReturnType: returnType,
	}, nil
}

// buildFunctionTable registers every declared overload, keyed by
// (name, signature). Duplicate pairs are a definition-time NameError.
func (i *Interpreter) buildFunctionTable(program *ast.Program) error {
	for _, decl := range program.Functions {
		sig, err := paramSignature(decl.Params)
		if err != nil {
			return err
		}
		fn, err := newFunction(decl.Name, decl.Params, decl.Statements)
		if err != nil {
			return err
		}
		key := funcKey{name: decl.Name, sig: sig}
		if _, ok := i.funcs[key]; ok {
			return nameErrorf("function %s already defined", decl.Name)
		}
		i.funcs[key] = fn
		i.funcNames[decl.Name]++
	}
	return nil
}

// resolveFunction performs exact-match overload lookup. A missing signature
// is a TypeError when other overloads share the name, a NameError otherwise.
func (i *Interpreter) resolveFunction(name, sig string) (*runtime.Function, error) {
	if fn, ok := i.funcs[funcKey{name: name, sig: sig}]; ok {
		return fn, nil
	}
	if i.funcNames[name] > 0 {
		return nil, typeErrorf("argument type mismatch for function %s", name)
	}
	return nil, nameErrorf("function %s not found", name)
}

// soleOverload returns the unique descriptor for a bare function name, used
// when a function is referenced as a value. The second result counts the
// overloads sharing the name.
func (i *Interpreter) soleOverload(name string) (*runtime.Function, int) {
	count := i.funcNames[name]
	if count != 1 {
		return nil, count
	}
	for key, fn := range i.funcs {
		if key.name == name {
			return fn, count
		}
	}
	return nil, count
}
