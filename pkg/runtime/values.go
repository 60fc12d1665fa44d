package runtime

import (
	"fmt"

	"brewin/interpreter-go/pkg/ast"
)

// Type identifies the runtime value category.
type Type int

const (
	TypeInt Type = iota
	TypeString
	TypeBool
	TypeObject
	TypeVoid
	TypeFunction
	// TypeError marks an undecodable declared type. It never tags a live
	// value; it only surfaces from TypeFromName during table construction.
	TypeError
)

func (t Type) String() string {
	switch t {
	case TypeInt:
		return "int"
	case TypeString:
		return "string"
	case TypeBool:
		return "bool"
	case TypeObject:
		return "object"
	case TypeVoid:
		return "void"
	case TypeFunction:
		return "function"
	case TypeError:
		return "error"
	default:
		return fmt.Sprintf("unknown_type_%d", int(t))
	}
}

// TypeFromName decodes an identifier's declared type from its trailing
// letter. An uppercase trailing letter is an interface constraint and
// decodes to TypeObject.
func TypeFromName(name string) Type {
	if name == "" {
		return TypeError
	}
	last := name[len(name)-1]
	switch last {
	case 'i':
		return TypeInt
	case 's':
		return TypeString
	case 'b':
		return TypeBool
	case 'o':
		return TypeObject
	case 'v':
		return TypeVoid // return types only
	case 'f':
		return TypeFunction
	}
	if last >= 'A' && last <= 'Z' {
		return TypeObject
	}
	return TypeError
}

// ReturnTypeFromName decodes a function's declared return type. main always
// returns void regardless of its trailing letter.
func ReturnTypeFromName(name string) Type {
	if name == "main" {
		return TypeVoid
	}
	return TypeFromName(name)
}

// InterfaceLetter reports the interface constraint encoded in an identifier,
// if any: a trailing uppercase letter names the interface.
func InterfaceLetter(name string) (string, bool) {
	if name == "" {
		return "", false
	}
	last := name[len(name)-1]
	if last >= 'A' && last <= 'Z' {
		return string(last), true
	}
	return "", false
}

// Object is the identity-shared payload of an object value. Two Value
// wrappers holding the same *Object observe each other's field mutations.
type Object struct {
	Fields map[string]*Value
}

func NewObject() *Object {
	return &Object{Fields: make(map[string]*Value)}
}

// Param is a formal parameter: its name encodes the declared type, Ref
// marks by-reference binding.
type Param struct {
	Name string
	Ref  bool
}

// Function is the identity-shared descriptor of a function value. Captured
// is non-nil only for lambdas and holds the closure's capture snapshot.
type Function struct {
	Name       string
	Params     []Param
	Statements []ast.Statement
	ReturnType Type
	Captured   map[string]*Value
}

// IsLambda reports whether the descriptor carries a capture snapshot.
func (f *Function) IsLambda() bool { return f.Captured != nil }

// Value is a tagged cell. Primitive tags own their payload; Object and
// Function tags reach a shared payload through a pointer, so copying the
// cell copies only the wrapper. A nil Obj/Fn pointer is the language's nil.
type Value struct {
	Tag  Type
	Int  int64
	Str  string
	Bool bool
	Obj  *Object
	Fn   *Function
}

// Zero returns a fresh cell holding the declared type's zero value:
// 0 / "" / false / nil-object / nil-function / void.
func Zero(t Type) *Value {
	return &Value{Tag: t}
}

func IntValue(v int64) *Value        { return &Value{Tag: TypeInt, Int: v} }
func StringValue(v string) *Value    { return &Value{Tag: TypeString, Str: v} }
func BoolValue(v bool) *Value        { return &Value{Tag: TypeBool, Bool: v} }
func ObjectValue(o *Object) *Value   { return &Value{Tag: TypeObject, Obj: o} }
func FunctionValue(f *Function) *Value { return &Value{Tag: TypeFunction, Fn: f} }
func VoidValue() *Value              { return &Value{Tag: TypeVoid} }

// NilObject is the nil literal: an object-tagged cell with no payload.
func NilObject() *Value { return &Value{Tag: TypeObject} }

// Set overwrites this cell's tag and payload in place. Every alias of the
// cell observes the new contents.
func (v *Value) Set(other *Value) { *v = *other }

// Copy duplicates the wrapper only: primitive payloads are copied, Object
// and Function payloads stay identity-shared with the original.
func (v *Value) Copy() *Value {
	c := *v
	return &c
}

// IsNilPayload reports whether the cell holds no payload: a nil object, a
// nil function, or void. Nil payloads compare equal across tags.
func (v *Value) IsNilPayload() bool {
	switch v.Tag {
	case TypeObject:
		return v.Obj == nil
	case TypeFunction:
		return v.Fn == nil
	case TypeVoid:
		return true
	}
	return false
}
