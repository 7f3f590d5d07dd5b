package ast

// Node is implemented by every syntax tree element. NodeType().String() is
// the discriminant consumers match on.
type Node interface {
	NodePos() Position
	NodeEndPos() Position
	NodeType() NodeType
}

// Position tracks location information for error reporting and tooling
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

// Span is embedded by every node and carries its source extent.
type Span struct {
	Pos    Position
	EndPos Position
}

func (s Span) NodePos() Position    { return s.Pos }
func (s Span) NodeEndPos() Position { return s.EndPos }

// Expr is any node that may appear where an expression is expected.
type Expr interface {
	Node
	isExpr()
}

// TypeName is any node that may appear where a type is expected.
type TypeName interface {
	Node
	isTypeName()
}

// Stmt is any node that may appear inside a Block.
type Stmt interface {
	Node
	isStmt()
}

func (*Identifier) isExpr()          {}
func (*BooleanLiteral) isExpr()      {}
func (*NumberLiteral) isExpr()       {}
func (*StringLiteral) isExpr()       {}
func (*HexLiteral) isExpr()          {}
func (*UnaryOperation) isExpr()      {}
func (*BinaryOperation) isExpr()     {}
func (*Conditional) isExpr()         {}
func (*FunctionCall) isExpr()        {}
func (*NameValueExpression) isExpr() {}
func (*IndexAccess) isExpr()         {}
func (*IndexRangeAccess) isExpr()    {}
func (*MemberAccess) isExpr()        {}
func (*TupleExpression) isExpr()     {}
func (*TypeNameExpression) isExpr()  {}
func (*NewExpression) isExpr()       {}

func (*ElementaryTypeName) isTypeName()  {}
func (*UserDefinedTypeName) isTypeName() {}
func (*ArrayTypeName) isTypeName()       {}
func (*Mapping) isTypeName()             {}
func (*FunctionTypeName) isTypeName()    {}

func (*Block) isStmt()                        {}
func (*ExpressionStatement) isStmt()          {}
func (*VariableDeclarationStatement) isStmt() {}
func (*IfStatement) isStmt()                  {}
func (*WhileStatement) isStmt()               {}
func (*DoWhileStatement) isStmt()             {}
func (*ForStatement) isStmt()                 {}
func (*ReturnStatement) isStmt()              {}
func (*ThrowStatement) isStmt()               {}
func (*EmitStatement) isStmt()                {}
func (*BreakStatement) isStmt()               {}
func (*ContinueStatement) isStmt()            {}
func (*TryStatement) isStmt()                 {}
func (*InlineAssemblyStatement) isStmt()      {}
func (*UncheckedStatement) isStmt()           {}
func (*RevertStatement) isStmt()              {}

// Str returns a pointer to s, for the nullable string fields.
func Str(s string) *string {
	return &s
}
