package ast

type Block struct {
	Span
	Statements []Stmt
}

type ExpressionStatement struct {
	Span
	Expression Expr
}

// VariableDeclarationStatement covers "uint a = 1;" as well as the tuple
// forms "(uint a,, uint b) = f();" and "var (a,,b) = f();". Nil entries in
// Variables mark elided slots.
type VariableDeclarationStatement struct {
	Span
	Variables    []*VariableDeclaration
	InitialValue Expr
}

type IfStatement struct {
	Span
	Condition Expr
	TrueBody  Stmt
	FalseBody Stmt
}

type WhileStatement struct {
	Span
	Condition Expr
	Body      Stmt
}

type DoWhileStatement struct {
	Span
	Condition Expr
	Body      Stmt
}

// ForStatement: every header part may be nil.
type ForStatement struct {
	Span
	InitExpression      Stmt
	ConditionExpression Expr
	LoopExpression      *ExpressionStatement
	Body                Stmt
}

type ReturnStatement struct {
	Span
	Expression Expr
}

type ThrowStatement struct {
	Span
}

type EmitStatement struct {
	Span
	EventCall *FunctionCall
}

type BreakStatement struct {
	Span
}

type ContinueStatement struct {
	Span
}

type TryStatement struct {
	Span
	Expression       Expr
	ReturnParameters []*VariableDeclaration
	Body             *Block
	CatchClauses     []*CatchClause
}

// CatchClause: IsReasonStringType marks "catch Error(string memory r)".
// Parameters is nil for a bare "catch { ... }".
type CatchClause struct {
	Span
	IsReasonStringType bool
	Kind               *string
	Parameters         []*VariableDeclaration
	Body               *Block
}

type InlineAssemblyStatement struct {
	Span
	Language *string
	Body     *AssemblyBlock
}

type UncheckedStatement struct {
	Span
	Block *Block
}

// RevertStatement represents "revert CustomError(args);".
type RevertStatement struct {
	Span
	RevertCall *FunctionCall
}

func (n *Block) NodeType() NodeType                        { return BLOCK }
func (n *ExpressionStatement) NodeType() NodeType          { return EXPRESSION_STATEMENT }
func (n *VariableDeclarationStatement) NodeType() NodeType { return VARIABLE_DECLARATION_STATEMENT }
func (n *IfStatement) NodeType() NodeType                  { return IF_STATEMENT }
func (n *WhileStatement) NodeType() NodeType               { return WHILE_STATEMENT }
func (n *DoWhileStatement) NodeType() NodeType             { return DO_WHILE_STATEMENT }
func (n *ForStatement) NodeType() NodeType                 { return FOR_STATEMENT }
func (n *ReturnStatement) NodeType() NodeType              { return RETURN_STATEMENT }
func (n *ThrowStatement) NodeType() NodeType               { return THROW_STATEMENT }
func (n *EmitStatement) NodeType() NodeType                { return EMIT_STATEMENT }
func (n *BreakStatement) NodeType() NodeType               { return BREAK_STATEMENT }
func (n *ContinueStatement) NodeType() NodeType            { return CONTINUE_STATEMENT }
func (n *TryStatement) NodeType() NodeType                 { return TRY_STATEMENT }
func (n *CatchClause) NodeType() NodeType                  { return CATCH_CLAUSE }
func (n *InlineAssemblyStatement) NodeType() NodeType      { return INLINE_ASSEMBLY_STATEMENT }
func (n *UncheckedStatement) NodeType() NodeType           { return UNCHECKED_STATEMENT }
func (n *RevertStatement) NodeType() NodeType              { return REVERT_STATEMENT }
