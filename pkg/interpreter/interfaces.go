package interpreter

import (
	"brewin/interpreter-go/pkg/ast"
	"brewin/interpreter-go/pkg/runtime"
)

// MethodParam is one slot of a required method signature: declared type
// plus reference flag. Return types are never recorded.
type MethodParam struct {
	Type runtime.Type
	Ref  bool
}

// Interface is the plain-data descriptor a structural match runs against.
type Interface struct {
	Name    string
	Fields  map[string]runtime.Type
	Methods map[string][]MethodParam
}

// buildInterfaceTable registers every declared interface. Names must be a
// single uppercase letter; duplicate interfaces and duplicate field names
// are definition-time NameErrors, malformed member types are TypeErrors.
func (i *Interpreter) buildInterfaceTable(program *ast.Program) error {
	for _, decl := range program.Interfaces {
		if len(decl.Name) != 1 || decl.Name[0] < 'A' || decl.Name[0] > 'Z' {
			return nameErrorf("interface name must be an uppercase letter")
		}
		if _, ok := i.interfaces[decl.Name]; ok {
			return nameErrorf("interface %s already defined", decl.Name)
		}
		iface := &Interface{
			Name:    decl.Name,
			Fields:  make(map[string]runtime.Type),
			Methods: make(map[string][]MethodParam),
		}
		for _, field := range decl.Fields {
			if _, dup := iface.Fields[field.Name]; dup {
				return nameErrorf("duplicate field %s in interface %s", field.Name, decl.Name)
			}
			if _, dup := iface.Methods[field.Name]; dup {
				return nameErrorf("duplicate field %s in interface %s", field.Name, decl.Name)
			}
			if field.Method {
				sig := make([]MethodParam, 0, len(field.Params))
				for _, p := range field.Params {
					t := runtime.TypeFromName(p.Name)
					if t == runtime.TypeError || t == runtime.TypeVoid {
						return typeErrorf("invalid parameter type in interface %s", decl.Name)
					}
					sig = append(sig, MethodParam{Type: t, Ref: p.Ref})
				}
				iface.Methods[field.Name] = sig
			} else {
				t := runtime.TypeFromName(field.Name)
				if t == runtime.TypeError || t == runtime.TypeVoid {
					return typeErrorf("invalid field type in interface %s", decl.Name)
				}
				iface.Fields[field.Name] = t
			}
		}
		i.interfaces[decl.Name] = iface
	}
	return nil
}

// satisfies is the pure structural matcher: a nil candidate vacuously
// satisfies any interface; otherwise the candidate must be an object whose
// fields match every required field's tag and whose function-valued fields
// match every required method signature in order.
func satisfies(candidate *runtime.Value, iface *Interface) bool {
	if candidate.IsNilPayload() {
		return true
	}
	if candidate.Tag != runtime.TypeObject {
		return false
	}
	fields := candidate.Obj.Fields
	for name, want := range iface.Fields {
		field, ok := fields[name]
		if !ok || field.Tag != want {
			return false
		}
	}
	for name, sig := range iface.Methods {
		field, ok := fields[name]
		if !ok || field.Tag != runtime.TypeFunction || field.Fn == nil {
			return false
		}
		if !signatureMatches(field.Fn, sig) {
			return false
		}
	}
	return true
}

// signatureMatches checks parameter count, declared types, and reference
// flags against a required method signature, position by position.
func signatureMatches(fn *runtime.Function, sig []MethodParam) bool {
	if len(fn.Params) != len(sig) {
		return false
	}
	for idx, want := range sig {
		formal := fn.Params[idx]
		if runtime.TypeFromName(formal.Name) != want.Type {
			return false
		}
		if formal.Ref != want.Ref {
			return false
		}
	}
	return true
}

// checkInterface enforces structural satisfaction when a value is bound to
// an interface-constrained variable, field, or parameter.
func (i *Interpreter) checkInterface(letter string, value *runtime.Value) error {
	iface, ok := i.interfaces[letter]
	if !ok {
		return nameErrorf("interface %s does not exist", letter)
	}
	if !satisfies(value, iface) {
		return typeErrorf("object does not satisfy interface %s", letter)
	}
	return nil
}
