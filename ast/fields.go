package ast

import "reflect"

// Field is one named attribute of a node, in serialization order.
//
// Value is one of: nil, string, bool, *string, Node, []Node, []string,
// []any or *Natspec.
type Field struct {
	Key   string
	Value any
}

// Fields returns the serialized attributes of n, without the "type"
// discriminant. The key set and order are the stable external shape of each
// node kind.
func Fields(n Node) []Field {
	switch n := n.(type) {
	case *SourceUnit:
		return []Field{{"children", list(n.Children)}}
	case *PragmaDirective:
		return []Field{{"name", n.Name}, {"value", n.Value}}
	case *ImportDirective:
		var aliases any
		if n.SymbolAliases != nil {
			pairs := make([]any, len(n.SymbolAliases))
			for i, a := range n.SymbolAliases {
				pairs[i] = []any{a.Symbol, a.Alias}
			}
			aliases = pairs
		}
		return []Field{{"path", n.Path}, {"unitAlias", n.UnitAlias}, {"symbolAliases", aliases}}
	case *ContractDefinition:
		fields := []Field{
			{"name", n.Name},
			{"natspec", n.Natspec},
			{"baseContracts", list(n.BaseContracts)},
			{"subNodes", list(n.SubNodes)},
			{"kind", n.Kind},
		}
		if n.IsAbstract {
			fields = append(fields, Field{"isAbstract", true})
		}
		return fields
	case *InheritanceSpecifier:
		return []Field{{"baseName", node(n.BaseName)}, {"arguments", list(n.Arguments)}}
	case *StateVariableDeclaration:
		return []Field{{"variables", list(n.Variables)}, {"initialValue", node(n.InitialValue)}, {"natspec", n.Natspec}}
	case *VariableDeclaration:
		return variableFields(n)
	case *UsingForDeclaration:
		return []Field{{"typeName", node(n.TypeName)}, {"libraryName", n.LibraryName}}
	case *StructDefinition:
		return []Field{{"name", n.Name}, {"natspec", n.Natspec}, {"members", list(n.Members)}}
	case *EnumDefinition:
		return []Field{{"name", n.Name}, {"members", list(n.Members)}}
	case *EnumValue:
		return []Field{{"name", n.Name}}
	case *EventDefinition:
		return []Field{{"name", n.Name}, {"natspec", n.Natspec}, {"parameters", list(n.Parameters)}, {"isAnonymous", n.IsAnonymous}}
	case *CustomErrorDefinition:
		return []Field{{"name", n.Name}, {"parameters", list(n.Parameters)}}
	case *ModifierDefinition:
		fields := []Field{
			{"name", n.Name},
			{"natspec", n.Natspec},
			{"parameters", optList(n.Parameters)},
			{"body", node(n.Body)},
		}
		if n.IsVirtual {
			fields = append(fields, Field{"isVirtual", true})
		}
		if n.Override != nil {
			fields = append(fields, Field{"override", list(n.Override)})
		}
		return fields
	case *ModifierInvocation:
		return []Field{{"name", n.Name}, {"arguments", optList(n.Arguments)}}
	case *FunctionDefinition:
		return []Field{
			{"natspec", n.Natspec},
			{"name", n.Name},
			{"parameters", list(n.Parameters)},
			{"returnParameters", optList(n.ReturnParameters)},
			{"body", node(n.Body)},
			{"visibility", n.Visibility},
			{"modifiers", list(n.Modifiers)},
			{"override", optList(n.Override)},
			{"isConstructor", n.IsConstructor},
			{"isFallback", n.IsFallback},
			{"isReceiveEther", n.IsReceiveEther},
			{"isVirtual", n.IsVirtual},
			{"stateMutability", n.StateMutability},
		}

	case *ElementaryTypeName:
		fields := []Field{{"name", n.Name}}
		if n.StateMutability != nil {
			fields = append(fields, Field{"stateMutability", n.StateMutability})
		}
		return fields
	case *UserDefinedTypeName:
		return []Field{{"namePath", n.NamePath}}
	case *ArrayTypeName:
		return []Field{{"baseTypeName", node(n.BaseTypeName)}, {"length", node(n.Length)}}
	case *Mapping:
		return []Field{{"keyType", node(n.KeyType)}, {"valueType", node(n.ValueType)}}
	case *FunctionTypeName:
		return []Field{
			{"parameterTypes", list(n.ParameterTypes)},
			{"returnTypes", list(n.ReturnTypes)},
			{"visibility", n.Visibility},
			{"stateMutability", n.StateMutability},
		}

	case *Block:
		return []Field{{"statements", list(n.Statements)}}
	case *ExpressionStatement:
		return []Field{{"expression", node(n.Expression)}}
	case *VariableDeclarationStatement:
		return []Field{{"variables", list(n.Variables)}, {"initialValue", node(n.InitialValue)}}
	case *IfStatement:
		return []Field{{"condition", node(n.Condition)}, {"trueBody", node(n.TrueBody)}, {"falseBody", node(n.FalseBody)}}
	case *WhileStatement:
		return []Field{{"condition", node(n.Condition)}, {"body", node(n.Body)}}
	case *DoWhileStatement:
		return []Field{{"condition", node(n.Condition)}, {"body", node(n.Body)}}
	case *ForStatement:
		return []Field{
			{"initExpression", node(n.InitExpression)},
			{"conditionExpression", node(n.ConditionExpression)},
			{"loopExpression", node(n.LoopExpression)},
			{"body", node(n.Body)},
		}
	case *ReturnStatement:
		return []Field{{"expression", node(n.Expression)}}
	case *ThrowStatement, *BreakStatement, *ContinueStatement:
		return nil
	case *EmitStatement:
		return []Field{{"eventCall", node(n.EventCall)}}
	case *TryStatement:
		return []Field{
			{"expression", node(n.Expression)},
			{"returnParameters", optList(n.ReturnParameters)},
			{"body", node(n.Body)},
			{"catchClauses", list(n.CatchClauses)},
		}
	case *CatchClause:
		fields := []Field{
			{"isReasonStringType", n.IsReasonStringType},
			{"parameters", optList(n.Parameters)},
			{"body", node(n.Body)},
		}
		if n.Kind != nil {
			fields = append(fields, Field{"kind", n.Kind})
		}
		return fields
	case *InlineAssemblyStatement:
		return []Field{{"language", n.Language}, {"body", node(n.Body)}}
	case *UncheckedStatement:
		return []Field{{"block", node(n.Block)}}
	case *RevertStatement:
		return []Field{{"revertCall", node(n.RevertCall)}}

	case *Identifier:
		return []Field{{"name", n.Name}}
	case *BooleanLiteral:
		return []Field{{"value", n.Value}}
	case *NumberLiteral:
		return []Field{{"number", n.Number}, {"subdenomination", n.Subdenomination}}
	case *StringLiteral:
		return []Field{{"value", n.Value}}
	case *HexLiteral:
		return []Field{{"value", n.Value}}
	case *UnaryOperation:
		return []Field{{"operator", n.Operator}, {"subExpression", node(n.SubExpression)}, {"isPrefix", n.IsPrefix}}
	case *BinaryOperation:
		return []Field{{"operator", n.Operator}, {"left", node(n.Left)}, {"right", node(n.Right)}}
	case *Conditional:
		return []Field{
			{"condition", node(n.Condition)},
			{"trueExpression", node(n.TrueExpression)},
			{"falseExpression", node(n.FalseExpression)},
		}
	case *FunctionCall:
		return []Field{{"expression", node(n.Expression)}, {"arguments", list(n.Arguments)}, {"names", stringList(n.Names)}}
	case *NameValueExpression:
		return []Field{{"expression", node(n.Expression)}, {"arguments", node(n.Arguments)}}
	case *NameValueList:
		return []Field{{"names", stringList(n.Names)}, {"arguments", list(n.Arguments)}}
	case *IndexAccess:
		return []Field{{"base", node(n.Base)}, {"index", node(n.Index)}}
	case *IndexRangeAccess:
		return []Field{{"base", node(n.Base)}, {"indexStart", node(n.IndexStart)}, {"indexEnd", node(n.IndexEnd)}}
	case *MemberAccess:
		return []Field{{"expression", node(n.Expression)}, {"memberName", n.MemberName}}
	case *TupleExpression:
		return []Field{{"components", list(n.Components)}, {"isArray", n.IsArray}}
	case *TypeNameExpression:
		return []Field{{"typeName", node(n.TypeName)}}
	case *NewExpression:
		return []Field{{"typeName", node(n.TypeName)}}

	case *AssemblyBlock:
		return []Field{{"operations", list(n.Operations)}}
	case *AssemblyCall:
		return []Field{{"functionName", n.FunctionName}, {"arguments", list(n.Arguments)}}
	case *AssemblyLocalDefinition:
		return []Field{{"names", list(n.Names)}, {"expression", node(n.Expression)}}
	case *AssemblyAssignment:
		return []Field{{"names", list(n.Names)}, {"expression", node(n.Expression)}}
	case *AssemblyStackAssignment:
		return []Field{{"name", n.Name}}
	case *LabelDefinition:
		return []Field{{"name", n.Name}}
	case *AssemblyIf:
		return []Field{{"condition", node(n.Condition)}, {"body", node(n.Body)}}
	case *AssemblyFor:
		return []Field{{"pre", node(n.Pre)}, {"condition", node(n.Condition)}, {"post", node(n.Post)}, {"body", node(n.Body)}}
	case *AssemblySwitch:
		return []Field{{"expression", node(n.Expression)}, {"cases", list(n.Cases)}}
	case *AssemblyCase:
		if n.Default {
			return []Field{{"block", node(n.Block)}, {"default", true}}
		}
		return []Field{{"block", node(n.Block)}, {"value", node(n.Value)}}
	case *AssemblyFunctionDefinition:
		return []Field{
			{"name", n.Name},
			{"arguments", list(n.Arguments)},
			{"returnArguments", list(n.ReturnArguments)},
			{"body", node(n.Body)},
		}
	case *AssemblyBreak, *AssemblyContinue, *AssemblyLeave:
		return nil
	case *HexNumber:
		return []Field{{"value", n.Value}}
	case *DecimalNumber:
		return []Field{{"value", n.Value}}
	}
	return nil
}

func variableFields(n *VariableDeclaration) []Field {
	switch n.Context {
	case VarState:
		fields := []Field{
			{"typeName", node(n.TypeName)},
			{"name", n.Name},
			{"expression", node(n.Expression)},
			{"visibility", n.Visibility},
			{"isStateVar", n.IsStateVar},
			{"isDeclaredConst", n.IsDeclaredConst},
			{"isIndexed", n.IsIndexed},
		}
		if n.IsImmutable {
			fields = append(fields, Field{"isImmutable", true})
		}
		if n.Override != nil {
			fields = append(fields, Field{"override", list(n.Override)})
		}
		return fields
	case VarEvent:
		return []Field{
			{"typeName", node(n.TypeName)},
			{"name", n.Name},
			{"isStateVar", n.IsStateVar},
			{"isIndexed", n.IsIndexed},
		}
	default:
		return []Field{
			{"typeName", node(n.TypeName)},
			{"name", n.Name},
			{"storageLocation", n.StorageLocation},
			{"isStateVar", n.IsStateVar},
			{"isIndexed", n.IsIndexed},
		}
	}
}

// node normalizes typed nil pointers to an untyped nil.
func node(n Node) Node {
	if isNil(n) {
		return nil
	}
	return n
}

func list[T Node](xs []T) []Node {
	out := make([]Node, len(xs))
	for i, x := range xs {
		out[i] = node(x)
	}
	return out
}

func optList[T Node](xs []T) any {
	if xs == nil {
		return nil
	}
	return list(xs)
}

func stringList(xs []string) []string {
	if xs == nil {
		return []string{}
	}
	return xs
}

func isNil(n Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
