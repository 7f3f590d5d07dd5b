package ast

type NodeType int

const (
	ILLEGAL NodeType = iota

	// Source unit and directives
	SOURCE_UNIT
	PRAGMA_DIRECTIVE
	IMPORT_DIRECTIVE

	// Declarations
	CONTRACT_DEFINITION
	INHERITANCE_SPECIFIER
	STATE_VARIABLE_DECLARATION
	VARIABLE_DECLARATION
	USING_FOR_DECLARATION
	STRUCT_DEFINITION
	ENUM_DEFINITION
	ENUM_VALUE
	EVENT_DEFINITION
	CUSTOM_ERROR_DEFINITION
	MODIFIER_DEFINITION
	MODIFIER_INVOCATION
	FUNCTION_DEFINITION

	// Types
	ELEMENTARY_TYPE_NAME
	USER_DEFINED_TYPE_NAME
	ARRAY_TYPE_NAME
	MAPPING
	FUNCTION_TYPE_NAME

	// Statements
	BLOCK
	EXPRESSION_STATEMENT
	VARIABLE_DECLARATION_STATEMENT
	IF_STATEMENT
	WHILE_STATEMENT
	DO_WHILE_STATEMENT
	FOR_STATEMENT
	RETURN_STATEMENT
	THROW_STATEMENT
	EMIT_STATEMENT
	BREAK_STATEMENT
	CONTINUE_STATEMENT
	TRY_STATEMENT
	CATCH_CLAUSE
	INLINE_ASSEMBLY_STATEMENT
	UNCHECKED_STATEMENT
	REVERT_STATEMENT

	// Expressions
	IDENTIFIER
	BOOLEAN_LITERAL
	NUMBER_LITERAL
	STRING_LITERAL
	HEX_LITERAL
	UNARY_OPERATION
	BINARY_OPERATION
	CONDITIONAL
	FUNCTION_CALL
	NAME_VALUE_EXPRESSION
	NAME_VALUE_LIST
	INDEX_ACCESS
	INDEX_RANGE_ACCESS
	MEMBER_ACCESS
	TUPLE_EXPRESSION
	TYPE_NAME_EXPRESSION
	NEW_EXPRESSION

	// Inline assembly
	ASSEMBLY_BLOCK
	ASSEMBLY_CALL
	ASSEMBLY_LOCAL_DEFINITION
	ASSEMBLY_ASSIGNMENT
	ASSEMBLY_STACK_ASSIGNMENT
	LABEL_DEFINITION
	ASSEMBLY_IF
	ASSEMBLY_FOR
	ASSEMBLY_SWITCH
	ASSEMBLY_CASE
	ASSEMBLY_FUNCTION_DEFINITION
	ASSEMBLY_BREAK
	ASSEMBLY_CONTINUE
	ASSEMBLY_LEAVE
	HEX_NUMBER
	DECIMAL_NUMBER
)

var nodeTypeNames = [...]string{
	ILLEGAL:                        "Illegal",
	SOURCE_UNIT:                    "SourceUnit",
	PRAGMA_DIRECTIVE:               "PragmaDirective",
	IMPORT_DIRECTIVE:               "ImportDirective",
	CONTRACT_DEFINITION:            "ContractDefinition",
	INHERITANCE_SPECIFIER:          "InheritanceSpecifier",
	STATE_VARIABLE_DECLARATION:     "StateVariableDeclaration",
	VARIABLE_DECLARATION:           "VariableDeclaration",
	USING_FOR_DECLARATION:          "UsingForDeclaration",
	STRUCT_DEFINITION:              "StructDefinition",
	ENUM_DEFINITION:                "EnumDefinition",
	ENUM_VALUE:                     "EnumValue",
	EVENT_DEFINITION:               "EventDefinition",
	CUSTOM_ERROR_DEFINITION:        "CustomErrorDefinition",
	MODIFIER_DEFINITION:            "ModifierDefinition",
	MODIFIER_INVOCATION:            "ModifierInvocation",
	FUNCTION_DEFINITION:            "FunctionDefinition",
	ELEMENTARY_TYPE_NAME:           "ElementaryTypeName",
	USER_DEFINED_TYPE_NAME:         "UserDefinedTypeName",
	ARRAY_TYPE_NAME:                "ArrayTypeName",
	MAPPING:                        "Mapping",
	FUNCTION_TYPE_NAME:             "FunctionTypeName",
	BLOCK:                          "Block",
	EXPRESSION_STATEMENT:           "ExpressionStatement",
	VARIABLE_DECLARATION_STATEMENT: "VariableDeclarationStatement",
	IF_STATEMENT:                   "IfStatement",
	WHILE_STATEMENT:                "WhileStatement",
	DO_WHILE_STATEMENT:             "DoWhileStatement",
	FOR_STATEMENT:                  "ForStatement",
	RETURN_STATEMENT:               "ReturnStatement",
	THROW_STATEMENT:                "ThrowStatement",
	EMIT_STATEMENT:                 "EmitStatement",
	BREAK_STATEMENT:                "BreakStatement",
	CONTINUE_STATEMENT:             "ContinueStatement",
	TRY_STATEMENT:                  "TryStatement",
	CATCH_CLAUSE:                   "CatchClause",
	INLINE_ASSEMBLY_STATEMENT:      "InlineAssemblyStatement",
	UNCHECKED_STATEMENT:            "UncheckedStatement",
	REVERT_STATEMENT:               "RevertStatement",
	IDENTIFIER:                     "Identifier",
	BOOLEAN_LITERAL:                "BooleanLiteral",
	NUMBER_LITERAL:                 "NumberLiteral",
	STRING_LITERAL:                 "StringLiteral",
	HEX_LITERAL:                    "HexLiteral",
	UNARY_OPERATION:                "UnaryOperation",
	BINARY_OPERATION:               "BinaryOperation",
	CONDITIONAL:                    "Conditional",
	FUNCTION_CALL:                  "FunctionCall",
	NAME_VALUE_EXPRESSION:          "NameValueExpression",
	NAME_VALUE_LIST:                "NameValueList",
	INDEX_ACCESS:                   "IndexAccess",
	INDEX_RANGE_ACCESS:             "IndexRangeAccess",
	MEMBER_ACCESS:                  "MemberAccess",
	TUPLE_EXPRESSION:               "TupleExpression",
	TYPE_NAME_EXPRESSION:           "TypeNameExpression",
	NEW_EXPRESSION:                 "NewExpression",
	ASSEMBLY_BLOCK:                 "AssemblyBlock",
	ASSEMBLY_CALL:                  "AssemblyCall",
	ASSEMBLY_LOCAL_DEFINITION:      "AssemblyLocalDefinition",
	ASSEMBLY_ASSIGNMENT:            "AssemblyAssignment",
	ASSEMBLY_STACK_ASSIGNMENT:      "AssemblyStackAssignment",
	LABEL_DEFINITION:               "LabelDefinition",
	ASSEMBLY_IF:                    "AssemblyIf",
	ASSEMBLY_FOR:                   "AssemblyFor",
	ASSEMBLY_SWITCH:                "AssemblySwitch",
	ASSEMBLY_CASE:                  "AssemblyCase",
	ASSEMBLY_FUNCTION_DEFINITION:   "AssemblyFunctionDefinition",
	ASSEMBLY_BREAK:                 "AssemblyBreak",
	ASSEMBLY_CONTINUE:              "AssemblyContinue",
	ASSEMBLY_LEAVE:                 "AssemblyLeave",
	HEX_NUMBER:                     "HexNumber",
	DECIMAL_NUMBER:                 "DecimalNumber",
}

// String returns the discriminant used in serialized trees, e.g.
// "FunctionDefinition".
func (t NodeType) String() string {
	if t < 0 || int(t) >= len(nodeTypeNames) {
		return "Illegal"
	}
	return nodeTypeNames[t]
}
