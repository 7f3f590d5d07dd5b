package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"solparse/ast"
)

func documentSymbols(unit *ast.SourceUnit) []protocol.DocumentSymbol {
	symbols := []protocol.DocumentSymbol{}
	for _, child := range unit.Children {
		if sym, ok := symbolFor(child); ok {
			symbols = append(symbols, sym)
		}
	}
	return symbols
}

func symbolFor(n ast.Node) (protocol.DocumentSymbol, bool) {
	switch n := n.(type) {
	case *ast.ImportDirective:
		return newSymbol(n.Path, protocol.SymbolKindModule, n), true
	case *ast.ContractDefinition:
		kind := protocol.SymbolKindClass
		switch n.Kind {
		case ast.KindInterface:
			kind = protocol.SymbolKindInterface
		case ast.KindLibrary:
			kind = protocol.SymbolKindModule
		}
		sym := newSymbol(n.Name, kind, n)
		sym.Detail = ptrString(n.Kind)
		sym.Children = []protocol.DocumentSymbol{}
		for _, sub := range n.SubNodes {
			if child, ok := symbolFor(sub); ok {
				sym.Children = append(sym.Children, child)
			}
		}
		return sym, true
	case *ast.FunctionDefinition:
		return newSymbol(functionName(n), functionKind(n), n), true
	case *ast.ModifierDefinition:
		return newSymbol(n.Name, protocol.SymbolKindMethod, n), true
	case *ast.StateVariableDeclaration:
		v := n.Variables[0]
		if v.Name == nil {
			return protocol.DocumentSymbol{}, false
		}
		kind := protocol.SymbolKindField
		if v.IsDeclaredConst || v.IsImmutable {
			kind = protocol.SymbolKindConstant
		}
		return newSymbol(*v.Name, kind, n), true
	case *ast.StructDefinition:
		sym := newSymbol(n.Name, protocol.SymbolKindStruct, n)
		for _, m := range n.Members {
			if m.Name != nil {
				sym.Children = append(sym.Children, newSymbol(*m.Name, protocol.SymbolKindField, m))
			}
		}
		return sym, true
	case *ast.EnumDefinition:
		sym := newSymbol(n.Name, protocol.SymbolKindEnum, n)
		for _, v := range n.Members {
			sym.Children = append(sym.Children, newSymbol(v.Name, protocol.SymbolKindEnumMember, v))
		}
		return sym, true
	case *ast.EventDefinition:
		return newSymbol(n.Name, protocol.SymbolKindEvent, n), true
	case *ast.CustomErrorDefinition:
		return newSymbol(n.Name, protocol.SymbolKindObject, n), true
	}
	return protocol.DocumentSymbol{}, false
}

func functionName(fn *ast.FunctionDefinition) string {
	switch {
	case fn.IsConstructor:
		return "constructor"
	case fn.IsReceiveEther:
		return "receive"
	case fn.IsFallback || fn.Name == nil || *fn.Name == "":
		return "fallback"
	}
	return *fn.Name
}

func functionKind(fn *ast.FunctionDefinition) protocol.SymbolKind {
	if fn.IsConstructor {
		return protocol.SymbolKindConstructor
	}
	return protocol.SymbolKindFunction
}

func newSymbol(name string, kind protocol.SymbolKind, n ast.Node) protocol.DocumentSymbol {
	r := toRange(n)
	return protocol.DocumentSymbol{
		Name:           name,
		Kind:           kind,
		Range:          r,
		SelectionRange: r,
	}
}

func toRange(n ast.Node) protocol.Range {
	start, end := n.NodePos(), n.NodeEndPos()
	return protocol.Range{
		Start: protocol.Position{Line: uint32(start.Line - 1), Character: uint32(start.Column - 1)},
		End:   protocol.Position{Line: uint32(end.Line - 1), Character: uint32(end.Column - 1)},
	}
}
