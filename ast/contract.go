package ast

// SourceUnit is the root of every parse; Children holds the top-level
// declarations in source order.
type SourceUnit struct {
	Span
	Children []Node
}

// PragmaDirective represents "pragma solidity ^0.8.0;". Value is the raw
// source text between the name and the semicolon.
type PragmaDirective struct {
	Span
	Name  string
	Value string
}

// SymbolAlias is one entry of a selective import: {original as alias}.
type SymbolAlias struct {
	Symbol string
	Alias  *string
}

// ImportDirective represents the four import forms:
//
//	import "path";
//	import "path" as x;
//	import * as x from "path";
//	import {a as b, c} from "path";
type ImportDirective struct {
	Span
	Path          string
	UnitAlias     *string
	SymbolAliases []SymbolAlias // nil unless the selective form is used
}

// Contract kinds
const (
	KindContract  = "contract"
	KindLibrary   = "library"
	KindInterface = "interface"
)

// ContractDefinition represents contract, library and interface bodies.
type ContractDefinition struct {
	Span
	Name          string
	Natspec       *Natspec
	BaseContracts []*InheritanceSpecifier
	SubNodes      []Node
	Kind          string
	IsAbstract    bool
}

// InheritanceSpecifier represents one entry of "is A, B(1)".
type InheritanceSpecifier struct {
	Span
	BaseName  *UserDefinedTypeName
	Arguments []Expr
}

// StateVariableDeclaration is a contract-level (or file-level constant)
// variable. Variables always holds exactly one declaration.
type StateVariableDeclaration struct {
	Span
	Variables    []*VariableDeclaration
	InitialValue Expr
	Natspec      *Natspec
}

// VarContext selects which attribute subset a VariableDeclaration carries.
type VarContext int

const (
	// Parameters, locals and struct members.
	VarLocal VarContext = iota
	// Contract-level variables.
	VarState
	// Event parameters.
	VarEvent
)

// VariableDeclaration is shared by parameters, locals, struct members, event
// parameters and state variables. Context decides which fields are part of
// its serialized shape.
type VariableDeclaration struct {
	Span
	Context         VarContext
	TypeName        TypeName // nil for `var (a, b) = ...` slots
	Name            *string
	StorageLocation *string
	IsStateVar      bool
	IsIndexed       bool

	// State variables only.
	Expression      Expr
	Visibility      string
	IsDeclaredConst bool
	IsImmutable     bool
	Override        []*UserDefinedTypeName // nil when absent, empty for bare override
}

// UsingForDeclaration represents "using L for T;". TypeName is nil for "*".
type UsingForDeclaration struct {
	Span
	TypeName    TypeName
	LibraryName string
}

type StructDefinition struct {
	Span
	Name    string
	Natspec *Natspec
	Members []*VariableDeclaration
}

type EnumDefinition struct {
	Span
	Name    string
	Members []*EnumValue
}

type EnumValue struct {
	Span
	Name string
}

type EventDefinition struct {
	Span
	Name        string
	Natspec     *Natspec
	Parameters  []*VariableDeclaration
	IsAnonymous bool
}

// CustomErrorDefinition represents "error Unauthorized(address caller);".
type CustomErrorDefinition struct {
	Span
	Name       string
	Parameters []*VariableDeclaration
}

// ModifierDefinition: Parameters is nil when the parentheses are omitted,
// Body is nil for "modifier m();".
type ModifierDefinition struct {
	Span
	Name       string
	Natspec    *Natspec
	Parameters []*VariableDeclaration
	Body       *Block
	IsVirtual  bool
	Override   []*UserDefinedTypeName
}

// ModifierInvocation: Arguments is nil when the parentheses are omitted.
type ModifierInvocation struct {
	Span
	Name      string
	Arguments []Expr
}

// Function visibilities
const (
	VisibilityDefault  = "default"
	VisibilityPublic   = "public"
	VisibilityPrivate  = "private"
	VisibilityInternal = "internal"
	VisibilityExternal = "external"
)

// FunctionDefinition covers ordinary functions, constructors, fallback and
// receive functions.
//
// Name is nil for the constructor, fallback and receive keyword forms and
// points at "" for the legacy "function () external {}" fallback.
type FunctionDefinition struct {
	Span
	Natspec          *Natspec
	Name             *string
	Parameters       []*VariableDeclaration
	ReturnParameters []*VariableDeclaration // nil without a returns clause
	Body             *Block                 // nil for declarations ending in ';'
	Visibility       string
	Modifiers        []*ModifierInvocation
	Override         []*UserDefinedTypeName // nil when absent, empty for bare override
	IsConstructor    bool
	IsFallback       bool
	IsReceiveEther   bool
	IsVirtual        bool
	StateMutability  *string
}

func (n *SourceUnit) NodeType() NodeType               { return SOURCE_UNIT }
func (n *PragmaDirective) NodeType() NodeType          { return PRAGMA_DIRECTIVE }
func (n *ImportDirective) NodeType() NodeType          { return IMPORT_DIRECTIVE }
func (n *ContractDefinition) NodeType() NodeType       { return CONTRACT_DEFINITION }
func (n *InheritanceSpecifier) NodeType() NodeType     { return INHERITANCE_SPECIFIER }
func (n *StateVariableDeclaration) NodeType() NodeType { return STATE_VARIABLE_DECLARATION }
func (n *VariableDeclaration) NodeType() NodeType      { return VARIABLE_DECLARATION }
func (n *UsingForDeclaration) NodeType() NodeType      { return USING_FOR_DECLARATION }
func (n *StructDefinition) NodeType() NodeType         { return STRUCT_DEFINITION }
func (n *EnumDefinition) NodeType() NodeType           { return ENUM_DEFINITION }
func (n *EnumValue) NodeType() NodeType                { return ENUM_VALUE }
func (n *EventDefinition) NodeType() NodeType          { return EVENT_DEFINITION }
func (n *CustomErrorDefinition) NodeType() NodeType    { return CUSTOM_ERROR_DEFINITION }
func (n *ModifierDefinition) NodeType() NodeType       { return MODIFIER_DEFINITION }
func (n *ModifierInvocation) NodeType() NodeType       { return MODIFIER_INVOCATION }
func (n *FunctionDefinition) NodeType() NodeType       { return FUNCTION_DEFINITION }
