package interpreter

import (
	"strings"

	"brewin/interpreter-go/pkg/ast"
	"brewin/interpreter-go/pkg/runtime"
)

// runStatements executes a statement sequence for fn, threading the
// (result, returned) pair explicitly. A sequence with no executed return
// yields the declared return type's zero value.
func (i *Interpreter) runStatements(fn *runtime.Function, statements []ast.Statement) (*runtime.Value, bool, error) {
	result := runtime.Zero(fn.ReturnType)
	for _, stmt := range statements {
		switch s := stmt.(type) {
		case *ast.VarDecl:
			if err := i.runVarDecl(s.Name, false); err != nil {
				return nil, false, err
			}
		case *ast.BlockVarDecl:
			if err := i.runVarDecl(s.Name, true); err != nil {
				return nil, false, err
			}
		case *ast.Assignment:
			if err := i.runAssign(s); err != nil {
				return nil, false, err
			}
		case *ast.Call:
			if _, err := i.runCall(s); err != nil {
				return nil, false, err
			}
		case *ast.If:
			res, returned, err := i.runIf(fn, s)
			if err != nil {
				return nil, false, err
			}
			if returned {
				return res, true, nil
			}
			result = res
		case *ast.While:
			res, returned, err := i.runWhile(fn, s)
			if err != nil {
				return nil, false, err
			}
			if returned {
				return res, true, nil
			}
			result = res
		case *ast.Return:
			return i.runReturn(fn, s)
		default:
			return nil, false, typeErrorf("unsupported statement type: %s", stmt.NodeType())
		}
	}
	return result, false, nil
}

// runVarDecl declares a zero-valued variable at function scope, or in the
// innermost block when block is true.
func (i *Interpreter) runVarDecl(name string, block bool) error {
	varType := runtime.TypeFromName(name)
	if varType == runtime.TypeError || varType == runtime.TypeVoid {
		return typeErrorf("invalid variable type for %s", name)
	}
	cell := runtime.Zero(varType)
	if block {
		if !i.env.DefineBlockScope(name, cell) {
			return nameErrorf("variable %s already defined", name)
		}
		return nil
	}
	if !i.env.DefineFuncScope(name, cell) {
		return nameErrorf("variable %s already defined", name)
	}
	return nil
}

// runAssign evaluates the right-hand side once, type-checks it against the
// target's declared type, then overwrites either the variable's cell or the
// terminal field in place.
func (i *Interpreter) runAssign(stmt *ast.Assignment) error {
	parts := strings.Split(stmt.Target, ".")
	rvalue, err := i.evalExpr(stmt.Value)
	if err != nil {
		return err
	}

	if !i.env.Exists(parts[0]) {
		return nameErrorf("variable %s not defined", parts[0])
	}

	terminal := parts[len(parts)-1]
	if letter, ok := runtime.InterfaceLetter(terminal); ok {
		if rvalue.Tag != runtime.TypeObject {
			return typeErrorf("interface variable can only be assigned an object")
		}
		if err := i.checkInterface(letter, rvalue); err != nil {
			return err
		}
	} else {
		targetType := runtime.TypeFromName(terminal)
		if rvalue.IsNilPayload() {
			if targetType != runtime.TypeObject && targetType != runtime.TypeFunction {
				return typeErrorf("type mismatch in assignment to %s", stmt.Target)
			}
		} else if targetType != rvalue.Tag {
			return typeErrorf("type mismatch in assignment to %s", stmt.Target)
		}
	}

	if len(parts) == 1 {
		// Overwrite the cell's payload so every alias observes the write.
		i.env.Get(parts[0]).Set(rvalue)
		return nil
	}

	owner, err := i.resolveContainer(parts)
	if err != nil {
		return err
	}
	if rvalue.Tag == runtime.TypeObject {
		owner.Obj.Fields[terminal] = rvalue
	} else {
		owner.Obj.Fields[terminal] = rvalue.Copy()
	}
	return nil
}

func (i *Interpreter) runIf(fn *runtime.Function, stmt *ast.If) (*runtime.Value, bool, error) {
	cond, err := i.evalExpr(stmt.Condition)
	if err != nil {
		return nil, false, err
	}
	if cond.Tag != runtime.TypeBool {
		return nil, false, typeErrorf("condition must be boolean")
	}

	i.env.EnterBlock()
	defer i.env.ExitBlock()

	if cond.Bool {
		return i.runStatements(fn, stmt.Then)
	}
	if stmt.Else != nil {
		return i.runStatements(fn, stmt.Else)
	}
	return runtime.Zero(fn.ReturnType), false, nil
}

func (i *Interpreter) runWhile(fn *runtime.Function, stmt *ast.While) (*runtime.Value, bool, error) {
	result := runtime.Zero(fn.ReturnType)
	for {
		cond, err := i.evalExpr(stmt.Condition)
		if err != nil {
			return nil, false, err
		}
		if cond.Tag != runtime.TypeBool {
			return nil, false, typeErrorf("condition must be boolean")
		}
		if !cond.Bool {
			return result, false, nil
		}

		i.env.EnterBlock()
		res, returned, err := i.runStatements(fn, stmt.Body)
		i.env.ExitBlock()
		if err != nil {
			return nil, false, err
		}
		if returned {
			return res, true, nil
		}
		result = res
	}
}

// runReturn checks the returned value's tag against the declared return
// type; a bare return yields the zero value.
func (i *Interpreter) runReturn(fn *runtime.Function, stmt *ast.Return) (*runtime.Value, bool, error) {
	if stmt.Value == nil {
		return runtime.Zero(fn.ReturnType), true, nil
	}
	result, err := i.evalExpr(stmt.Value)
	if err != nil {
		return nil, false, err
	}
	if result.Tag != fn.ReturnType {
		return nil, false, typeErrorf("return type mismatch")
	}
	return result, true, nil
}
