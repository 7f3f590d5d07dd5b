package ast

// AssemblyBlock is "{ ... }" inside inline assembly.
type AssemblyBlock struct {
	Span
	Operations []Node
}

// AssemblyCall is produced for every identifier in value position, with or
// without parentheses. Arguments is never nil.
type AssemblyCall struct {
	Span
	FunctionName string
	Arguments    []Node
}

// AssemblyLocalDefinition represents "let a, b := e". Expression may be nil.
type AssemblyLocalDefinition struct {
	Span
	Names      []*Identifier
	Expression Node
}

// AssemblyAssignment represents "a, b := e".
type AssemblyAssignment struct {
	Span
	Names      []*Identifier
	Expression Node
}

// AssemblyStackAssignment represents "=: a".
type AssemblyStackAssignment struct {
	Span
	Name string
}

// LabelDefinition represents "name:".
type LabelDefinition struct {
	Span
	Name string
}

type AssemblyIf struct {
	Span
	Condition Node
	Body      *AssemblyBlock
}

// AssemblyFor: Pre and Post are usually blocks but may be expressions.
type AssemblyFor struct {
	Span
	Pre       Node
	Condition Node
	Post      Node
	Body      *AssemblyBlock
}

type AssemblySwitch struct {
	Span
	Expression Node
	Cases      []*AssemblyCase
}

// AssemblyCase holds either a literal Value or Default set, never both.
type AssemblyCase struct {
	Span
	Block   *AssemblyBlock
	Value   Node
	Default bool
}

type AssemblyFunctionDefinition struct {
	Span
	Name            string
	Arguments       []*Identifier
	ReturnArguments []*Identifier
	Body            *AssemblyBlock
}

type AssemblyBreak struct {
	Span
}

type AssemblyContinue struct {
	Span
}

type AssemblyLeave struct {
	Span
}

type HexNumber struct {
	Span
	Value string
}

type DecimalNumber struct {
	Span
	Value string
}

func (n *AssemblyBlock) NodeType() NodeType              { return ASSEMBLY_BLOCK }
func (n *AssemblyCall) NodeType() NodeType               { return ASSEMBLY_CALL }
func (n *AssemblyLocalDefinition) NodeType() NodeType    { return ASSEMBLY_LOCAL_DEFINITION }
func (n *AssemblyAssignment) NodeType() NodeType         { return ASSEMBLY_ASSIGNMENT }
func (n *AssemblyStackAssignment) NodeType() NodeType    { return ASSEMBLY_STACK_ASSIGNMENT }
func (n *LabelDefinition) NodeType() NodeType            { return LABEL_DEFINITION }
func (n *AssemblyIf) NodeType() NodeType                 { return ASSEMBLY_IF }
func (n *AssemblyFor) NodeType() NodeType                { return ASSEMBLY_FOR }
func (n *AssemblySwitch) NodeType() NodeType             { return ASSEMBLY_SWITCH }
func (n *AssemblyCase) NodeType() NodeType               { return ASSEMBLY_CASE }
func (n *AssemblyFunctionDefinition) NodeType() NodeType { return ASSEMBLY_FUNCTION_DEFINITION }
func (n *AssemblyBreak) NodeType() NodeType              { return ASSEMBLY_BREAK }
func (n *AssemblyContinue) NodeType() NodeType           { return ASSEMBLY_CONTINUE }
func (n *AssemblyLeave) NodeType() NodeType              { return ASSEMBLY_LEAVE }
func (n *HexNumber) NodeType() NodeType                  { return HEX_NUMBER }
func (n *DecimalNumber) NodeType() NodeType              { return DECIMAL_NUMBER }
