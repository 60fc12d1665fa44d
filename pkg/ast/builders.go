package ast

// Compact builders for constructing programs in tests.

func Prog(functions ...*FunctionDecl) *Program {
	return NewProgram(functions, nil)
}

func ProgIfaces(interfaces []*InterfaceDecl, functions ...*FunctionDecl) *Program {
	return NewProgram(functions, interfaces)
}

func Fn(name string, params []*Parameter, statements ...Statement) *FunctionDecl {
	if statements == nil {
		statements = []Statement{}
	}
	return NewFunctionDecl(name, params, statements)
}

func Params(params ...*Parameter) []*Parameter { return params }

func P(name string) *Parameter    { return NewParameter(name, false) }
func RefP(name string) *Parameter { return NewParameter(name, true) }

func Iface(name string, fields ...*InterfaceField) *InterfaceDecl {
	return NewInterfaceDecl(name, fields)
}

func IFld(name string) *InterfaceField { return NewInterfaceField(name) }

func IMeth(name string, params ...*Parameter) *InterfaceField {
	return NewInterfaceMethod(name, params)
}

func Var(name string) *VarDecl       { return NewVarDecl(name) }
func BVar(name string) *BlockVarDecl { return NewBlockVarDecl(name) }

func Assign(target string, value Expression) *Assignment {
	return NewAssignment(target, value)
}

func IfStmt(condition Expression, then ...Statement) *If {
	return NewIf(condition, then, nil)
}

func IfElse(condition Expression, then, otherwise []Statement) *If {
	return NewIf(condition, then, otherwise)
}

func Stmts(statements ...Statement) []Statement { return statements }

func WhileStmt(condition Expression, body ...Statement) *While {
	return NewWhile(condition, body)
}

func Ret(value Expression) *Return { return NewReturn(value) }
func RetVoid() *Return             { return NewReturn(nil) }

func Int(value int64) *IntLiteral    { return NewIntLiteral(value) }
func Str(value string) *StringLiteral { return NewStringLiteral(value) }
func Bool(value bool) *BoolLiteral   { return NewBoolLiteral(value) }
func Nil() *NilLiteral               { return NewNilLiteral() }
func Obj() *NewObject                { return NewNewObject() }

func Name(name string) *QualifiedName { return NewQualifiedName(name) }

func CallExpr(name string, args ...Expression) *Call {
	if args == nil {
		args = []Expression{}
	}
	return NewCall(name, args)
}

func Bin(op string, left, right Expression) *BinaryExpr {
	return NewBinaryExpr(op, left, right)
}

func Neg(operand Expression) *UnaryExpr { return NewUnaryExpr("-", operand) }
func Not(operand Expression) *UnaryExpr { return NewUnaryExpr("!", operand) }

func Conv(to string, value Expression) *ConvertExpr {
	return NewConvertExpr(to, value)
}

func Lam(name string, params []*Parameter, statements ...Statement) *LambdaExpr {
	if statements == nil {
		statements = []Statement{}
	}
	return NewLambdaExpr(name, params, statements)
}
