package ast

// ElementaryTypeName is a built-in type. StateMutability is only set for
// "address payable".
type ElementaryTypeName struct {
	Span
	Name            string
	StateMutability *string
}

// UserDefinedTypeName holds a dotted path such as "Foo.Bar"; it is never
// resolved.
type UserDefinedTypeName struct {
	Span
	NamePath string
}

// ArrayTypeName: Length is nil for dynamic arrays. BaseTypeName is a
// TypeName, except for "A.B[]" in expression position where it keeps the
// MemberAccess expression.
type ArrayTypeName struct {
	Span
	BaseTypeName Node
	Length       Expr
}

type Mapping struct {
	Span
	KeyType   TypeName
	ValueType TypeName
}

type FunctionTypeName struct {
	Span
	ParameterTypes  []*VariableDeclaration
	ReturnTypes     []*VariableDeclaration
	Visibility      string
	StateMutability *string
}

func (n *ElementaryTypeName) NodeType() NodeType  { return ELEMENTARY_TYPE_NAME }
func (n *UserDefinedTypeName) NodeType() NodeType { return USER_DEFINED_TYPE_NAME }
func (n *ArrayTypeName) NodeType() NodeType       { return ARRAY_TYPE_NAME }
func (n *Mapping) NodeType() NodeType             { return MAPPING }
func (n *FunctionTypeName) NodeType() NodeType    { return FUNCTION_TYPE_NAME }
