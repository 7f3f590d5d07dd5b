package ast

// Identifier represents any name used as an expression, including contextual
// words such as "calldata" or "type".
type Identifier struct {
	Span
	Name string
}

type BooleanLiteral struct {
	Span
	Value bool
}

// NumberLiteral keeps the raw digits, e.g. "1_000", "2.3e5", ".1" or "0xff".
type NumberLiteral struct {
	Span
	Number          string
	Subdenomination *string
}

// StringLiteral holds the concatenated contents of one or more adjacent
// string tokens.
type StringLiteral struct {
	Span
	Value string
}

// HexLiteral keeps the full delimited text, e.g. `hex"00ff"`.
type HexLiteral struct {
	Span
	Value string
}

// UnaryOperation: IsPrefix distinguishes "++i" from "i++".
type UnaryOperation struct {
	Span
	Operator      string
	SubExpression Expr
	IsPrefix      bool
}

// BinaryOperation also represents assignments ("=", "+=", ...).
type BinaryOperation struct {
	Span
	Operator string
	Left     Expr
	Right    Expr
}

type Conditional struct {
	Span
	Condition       Expr
	TrueExpression  Expr
	FalseExpression Expr
}

// FunctionCall: Names is non-empty only for named-argument calls such as
// f({a: 1, b: 2}), in which case it is parallel to Arguments.
type FunctionCall struct {
	Span
	Expression Expr
	Arguments  []Expr
	Names      []string
}

// NameValueExpression represents call options: addr.call{value: 1}.
type NameValueExpression struct {
	Span
	Expression Expr
	Arguments  *NameValueList
}

type NameValueList struct {
	Span
	Names     []string
	Arguments []Expr
}

type IndexAccess struct {
	Span
	Base  Expr
	Index Expr
}

// IndexRangeAccess represents slices: data[start:end]. Either bound may be
// nil.
type IndexRangeAccess struct {
	Span
	Base       Expr
	IndexStart Expr
	IndexEnd   Expr
}

type MemberAccess struct {
	Span
	Expression Expr
	MemberName string
}

// TupleExpression covers "(a, b)" and array literals "[a, b]". Nil
// components mark elided slots.
type TupleExpression struct {
	Span
	Components []Expr
	IsArray    bool
}

// TypeNameExpression is a type used in expression position, e.g. the callee
// of uint(x) or a bare "A[]".
type TypeNameExpression struct {
	Span
	TypeName TypeName
}

type NewExpression struct {
	Span
	TypeName TypeName
}

func (n *Identifier) NodeType() NodeType          { return IDENTIFIER }
func (n *BooleanLiteral) NodeType() NodeType      { return BOOLEAN_LITERAL }
func (n *NumberLiteral) NodeType() NodeType       { return NUMBER_LITERAL }
func (n *StringLiteral) NodeType() NodeType       { return STRING_LITERAL }
func (n *HexLiteral) NodeType() NodeType          { return HEX_LITERAL }
func (n *UnaryOperation) NodeType() NodeType      { return UNARY_OPERATION }
func (n *BinaryOperation) NodeType() NodeType     { return BINARY_OPERATION }
func (n *Conditional) NodeType() NodeType         { return CONDITIONAL }
func (n *FunctionCall) NodeType() NodeType        { return FUNCTION_CALL }
func (n *NameValueExpression) NodeType() NodeType { return NAME_VALUE_EXPRESSION }
func (n *NameValueList) NodeType() NodeType       { return NAME_VALUE_LIST }
func (n *IndexAccess) NodeType() NodeType         { return INDEX_ACCESS }
func (n *IndexRangeAccess) NodeType() NodeType    { return INDEX_RANGE_ACCESS }
func (n *MemberAccess) NodeType() NodeType        { return MEMBER_ACCESS }
func (n *TupleExpression) NodeType() NodeType     { return TUPLE_EXPRESSION }
func (n *TypeNameExpression) NodeType() NodeType  { return TYPE_NAME_EXPRESSION }
func (n *NewExpression) NodeType() NodeType       { return NEW_EXPRESSION }
