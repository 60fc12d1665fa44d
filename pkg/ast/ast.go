package ast

type NodeType string

const (
	NodeProgram         NodeType = "Program"
	NodeFunctionDecl    NodeType = "FunctionDecl"
	NodeInterfaceDecl   NodeType = "InterfaceDecl"
	NodeInterfaceField  NodeType = "InterfaceField"
	NodeParameter       NodeType = "Parameter"
	NodeVarDecl         NodeType = "VarDecl"
	NodeBlockVarDecl    NodeType = "BlockVarDecl"
	NodeAssignment      NodeType = "Assignment"
	NodeIf              NodeType = "If"
	NodeWhile           NodeType = "While"
	NodeReturn          NodeType = "Return"
	NodeIntLiteral      NodeType = "IntLiteral"
	NodeStringLiteral   NodeType = "StringLiteral"
	NodeBoolLiteral     NodeType = "BoolLiteral"
	NodeNilLiteral      NodeType = "NilLiteral"
	NodeNewObject       NodeType = "NewObject"
	NodeQualifiedName   NodeType = "QualifiedName"
	NodeCall            NodeType = "Call"
	NodeBinaryExpr      NodeType = "BinaryExpr"
	NodeUnaryExpr       NodeType = "UnaryExpr"
	NodeConvertExpr     NodeType = "ConvertExpr"
	NodeLambdaExpr      NodeType = "LambdaExpr"
)

type Node interface {
	NodeType() NodeType
	isNode()
}

type nodeImpl struct {
	Type NodeType `json:"type"`
}

func newNodeImpl(kind NodeType) nodeImpl {
	return nodeImpl{Type: kind}
}

func (n nodeImpl) NodeType() NodeType { return n.Type }
func (nodeImpl) isNode()              {}

// Marker interfaces.

type Statement interface {
	Node
	statementNode()
}

type statementMarker struct{}

func (statementMarker) statementNode() {}

type Expression interface {
	Node
	expressionNode()
}

type expressionMarker struct{}

func (expressionMarker) expressionNode() {}

// Program

type Program struct {
	nodeImpl

	Functions  []*FunctionDecl  `json:"functions"`
	Interfaces []*InterfaceDecl `json:"interfaces,omitempty"`
}

func NewProgram(functions []*FunctionDecl, interfaces []*InterfaceDecl) *Program {
	return &Program{nodeImpl: newNodeImpl(NodeProgram), Functions: functions, Interfaces: interfaces}
}

// Declarations

// Parameter is a formal parameter; Ref marks a by-reference binding (&name).
type Parameter struct {
	nodeImpl

	Name string `json:"name"`
	Ref  bool   `json:"ref,omitempty"`
}

func NewParameter(name string, ref bool) *Parameter {
	return &Parameter{nodeImpl: newNodeImpl(NodeParameter), Name: name, Ref: ref}
}

type FunctionDecl struct {
	nodeImpl

	Name       string       `json:"name"`
	Params     []*Parameter `json:"params"`
	Statements []Statement  `json:"statements"`
}

func NewFunctionDecl(name string, params []*Parameter, statements []Statement) *FunctionDecl {
	return &FunctionDecl{nodeImpl: newNodeImpl(NodeFunctionDecl), Name: name, Params: params, Statements: statements}
}

// InterfaceField is one requirement of an interface: a typed field when
// Method is false, a method signature when Method is true.
type InterfaceField struct {
	nodeImpl

	Name   string       `json:"name"`
	Method bool         `json:"method,omitempty"`
	Params []*Parameter `json:"params,omitempty"`
}

func NewInterfaceField(name string) *InterfaceField {
	return &InterfaceField{nodeImpl: newNodeImpl(NodeInterfaceField), Name: name}
}

func NewInterfaceMethod(name string, params []*Parameter) *InterfaceField {
	return &InterfaceField{nodeImpl: newNodeImpl(NodeInterfaceField), Name: name, Method: true, Params: params}
}

type InterfaceDecl struct {
	nodeImpl

	Name   string            `json:"name"`
	Fields []*InterfaceField `json:"fields"`
}

func NewInterfaceDecl(name string, fields []*InterfaceField) *InterfaceDecl {
	return &InterfaceDecl{nodeImpl: newNodeImpl(NodeInterfaceDecl), Name: name, Fields: fields}
}

// Statements

// VarDecl declares a variable at function scope.
type VarDecl struct {
	nodeImpl
	statementMarker

	Name string `json:"name"`
}

func NewVarDecl(name string) *VarDecl {
	return &VarDecl{nodeImpl: newNodeImpl(NodeVarDecl), Name: name}
}

// BlockVarDecl declares a variable in the innermost block scope, shadowing
// any enclosing binding of the same name.
type BlockVarDecl struct {
	nodeImpl
	statementMarker

	Name string `json:"name"`
}

func NewBlockVarDecl(name string) *BlockVarDecl {
	return &BlockVarDecl{nodeImpl: newNodeImpl(NodeBlockVarDecl), Name: name}
}

// Assignment writes to a plain variable or a dotted field path.
type Assignment struct {
	nodeImpl
	statementMarker

	Target string     `json:"var"`
	Value  Expression `json:"expression"`
}

func NewAssignment(target string, value Expression) *Assignment {
	return &Assignment{nodeImpl: newNodeImpl(NodeAssignment), Target: target, Value: value}
}

type If struct {
	nodeImpl
	statementMarker

	Condition Expression  `json:"condition"`
	Then      []Statement `json:"statements"`
	Else      []Statement `json:"else_statements,omitempty"`
}

func NewIf(condition Expression, then, otherwise []Statement) *If {
	return &If{nodeImpl: newNodeImpl(NodeIf), Condition: condition, Then: then, Else: otherwise}
}

type While struct {
	nodeImpl
	statementMarker

	Condition Expression  `json:"condition"`
	Body      []Statement `json:"statements"`
}

func NewWhile(condition Expression, body []Statement) *While {
	return &While{nodeImpl: newNodeImpl(NodeWhile), Condition: condition, Body: body}
}

// Return carries an optional value; a nil Value means a bare `return;`.
type Return struct {
	nodeImpl
	statementMarker

	Value Expression `json:"expression,omitempty"`
}

func NewReturn(value Expression) *Return {
	return &Return{nodeImpl: newNodeImpl(NodeReturn), Value: value}
}

// Expressions

type IntLiteral struct {
	nodeImpl
	expressionMarker

	Value int64 `json:"val"`
}

func NewIntLiteral(value int64) *IntLiteral {
	return &IntLiteral{nodeImpl: newNodeImpl(NodeIntLiteral), Value: value}
}

type StringLiteral struct {
	nodeImpl
	expressionMarker

	Value string `json:"val"`
}

func NewStringLiteral(value string) *StringLiteral {
	return &StringLiteral{nodeImpl: newNodeImpl(NodeStringLiteral), Value: value}
}

type BoolLiteral struct {
	nodeImpl
	expressionMarker

	Value bool `json:"val"`
}

func NewBoolLiteral(value bool) *BoolLiteral {
	return &BoolLiteral{nodeImpl: newNodeImpl(NodeBoolLiteral), Value: value}
}

type NilLiteral struct {
	nodeImpl
	expressionMarker
}

func NewNilLiteral() *NilLiteral {
	return &NilLiteral{nodeImpl: newNodeImpl(NodeNilLiteral)}
}

// NewObject is the `@` expression: a fresh empty object.
type NewObject struct {
	nodeImpl
	expressionMarker
}

func NewNewObject() *NewObject {
	return &NewObject{nodeImpl: newNodeImpl(NodeNewObject)}
}

// QualifiedName references a variable, a declared function, or a dotted
// field path rooted at a variable.
type QualifiedName struct {
	nodeImpl
	expressionMarker

	Name string `json:"name"`
}

func NewQualifiedName(name string) *QualifiedName {
	return &QualifiedName{nodeImpl: newNodeImpl(NodeQualifiedName), Name: name}
}

// Call names a function, intrinsic, function-valued variable, or dotted
// method path. Calls appear in both statement and expression position.
type Call struct {
	nodeImpl
	statementMarker
	expressionMarker

	Name string       `json:"name"`
	Args []Expression `json:"args"`
}

func NewCall(name string, args []Expression) *Call {
	return &Call{nodeImpl: newNodeImpl(NodeCall), Name: name, Args: args}
}

type BinaryExpr struct {
	nodeImpl
	expressionMarker

	Op    string     `json:"op"`
	Left  Expression `json:"op1"`
	Right Expression `json:"op2"`
}

func NewBinaryExpr(op string, left, right Expression) *BinaryExpr {
	return &BinaryExpr{nodeImpl: newNodeImpl(NodeBinaryExpr), Op: op, Left: left, Right: right}
}

type UnaryExpr struct {
	nodeImpl
	expressionMarker

	Op      string     `json:"op"`
	Operand Expression `json:"op1"`
}

func NewUnaryExpr(op string, operand Expression) *UnaryExpr {
	return &UnaryExpr{nodeImpl: newNodeImpl(NodeUnaryExpr), Op: op, Operand: operand}
}

// ConvertExpr is an explicit int()/str()/bool() conversion.
type ConvertExpr struct {
	nodeImpl
	expressionMarker

	To    string     `json:"to_type"`
	Value Expression `json:"expr"`
}

func NewConvertExpr(to string, value Expression) *ConvertExpr {
	return &ConvertExpr{nodeImpl: newNodeImpl(NodeConvertExpr), To: to, Value: value}
}

// LambdaExpr is a function literal. Its name exists only to declare the
// return type through the usual trailing-letter rule.
type LambdaExpr struct {
	nodeImpl
	expressionMarker

	Name       string       `json:"name"`
	Params     []*Parameter `json:"args"`
	Statements []Statement  `json:"statements"`
}

func NewLambdaExpr(name string, params []*Parameter, statements []Statement) *LambdaExpr {
	return &LambdaExpr{nodeImpl: newNodeImpl(NodeLambdaExpr), Name: name, Params: params, Statements: statements}
}
