package abi

import (
	"fmt"
	"strings"

	"solparse/ast"
)

// resolver maps user-defined type names onto their ABI representation using
// the declarations of a single source unit.
type resolver struct {
	structs   map[string]*ast.StructDefinition
	enums     map[string]bool
	contracts map[string]bool
}

func newResolver(unit *ast.SourceUnit) *resolver {
	r := &resolver{
		structs:   map[string]*ast.StructDefinition{},
		enums:     map[string]bool{},
		contracts: map[string]bool{},
	}
	for _, child := range unit.Children {
		switch n := child.(type) {
		case *ast.ContractDefinition:
			r.contracts[n.Name] = true
			for _, sub := range n.SubNodes {
				switch m := sub.(type) {
				case *ast.StructDefinition:
					r.structs[n.Name+"."+m.Name] = m
					r.structs[m.Name] = m
				case *ast.EnumDefinition:
					r.enums[n.Name+"."+m.Name] = true
					r.enums[m.Name] = true
				}
			}
		case *ast.StructDefinition:
			r.structs[n.Name] = n
		case *ast.EnumDefinition:
			r.enums[n.Name] = true
		}
	}
	return r
}

func (r *resolver) signature(name string, params []*ast.VariableDeclaration) (string, error) {
	types := make([]string, len(params))
	for i, p := range params {
		t, err := r.canonical(p.TypeName, nil)
		if err != nil {
			return "", err
		}
		types[i] = t
	}
	return name + "(" + strings.Join(types, ",") + ")", nil
}

// getter derives the accessor signature of a public state variable: one
// parameter per mapping key and one uint256 per array dimension.
func (r *resolver) getter(name string, t ast.TypeName) (string, error) {
	var params []string
	var node ast.Node = t
	for {
		switch n := node.(type) {
		case *ast.Mapping:
			key, err := r.canonical(n.KeyType, nil)
			if err != nil {
				return "", err
			}
			params = append(params, key)
			node = n.ValueType
			continue
		case *ast.ArrayTypeName:
			params = append(params, "uint256")
			node = n.BaseTypeName
			continue
		}
		break
	}
	return name + "(" + strings.Join(params, ",") + ")", nil
}

func (r *resolver) canonical(t ast.Node, visiting map[string]bool) (string, error) {
	switch n := t.(type) {
	case *ast.ElementaryTypeName:
		return elementary(n.Name)
	case *ast.ArrayTypeName:
		base, err := r.canonical(n.BaseTypeName, visiting)
		if err != nil {
			return "", err
		}
		if n.Length == nil {
			return base + "[]", nil
		}
		lit, ok := n.Length.(*ast.NumberLiteral)
		if !ok || lit.Subdenomination != nil {
			return "", fmt.Errorf("array length must be a number literal")
		}
		return base + "[" + strings.ReplaceAll(lit.Number, "_", "") + "]", nil
	case *ast.UserDefinedTypeName:
		return r.userDefined(n.NamePath, visiting)
	case *ast.FunctionTypeName:
		return "function", nil
	case *ast.Mapping:
		return "", fmt.Errorf("mapping types are not allowed in the ABI")
	case nil:
		return "", fmt.Errorf("missing type name")
	}
	return "", fmt.Errorf("unsupported type %s", t.NodeType())
}

func (r *resolver) userDefined(path string, visiting map[string]bool) (string, error) {
	if r.enums[path] {
		return "uint8", nil
	}
	if s, ok := r.structs[path]; ok {
		if visiting[s.Name] {
			return "", fmt.Errorf("recursive struct %s", s.Name)
		}
		next := map[string]bool{s.Name: true}
		for k := range visiting {
			next[k] = true
		}
		members := make([]string, len(s.Members))
		for i, m := range s.Members {
			t, err := r.canonical(m.TypeName, next)
			if err != nil {
				return "", err
			}
			members[i] = t
		}
		return "(" + strings.Join(members, ",") + ")", nil
	}
	if r.contracts[path] || r.contracts[last(path)] {
		return "address", nil
	}
	return "", fmt.Errorf("cannot resolve type %q", path)
}

func last(path string) string {
	if i := strings.LastIndexByte(path, '.'); i >= 0 {
		return path[i+1:]
	}
	return path
}

func elementary(name string) (string, error) {
	switch name {
	case "uint":
		return "uint256", nil
	case "int":
		return "int256", nil
	case "byte":
		return "bytes1", nil
	case "fixed":
		return "fixed128x18", nil
	case "ufixed":
		return "ufixed128x18", nil
	case "var":
		return "", fmt.Errorf("var has no ABI type")
	}
	return name, nil
}
