package semantic

import (
	"solparse/ast"
	"solparse/internal/errors"
)

const (
	fallbackKind = "Fallback"
	receiveKind  = "Receive Ether"
)

// ValidateFunction checks the shape rules of fallback and receive functions.
// Other functions are accepted unchanged. The first violated rule is
// returned; rules are checked in declaration order of the signature
// (visibility, mutability, parameters, returns).
func ValidateFunction(fn *ast.FunctionDefinition) *errors.CompilerError {
	var err errors.CompilerError
	switch {
	case fn.IsReceiveEther:
		err = validateReceive(fn)
	case fn.IsFallback:
		err = validateFallback(fn)
	default:
		return nil
	}
	if err.Code == "" {
		return nil
	}
	return &err
}

func validateFallback(fn *ast.FunctionDefinition) errors.CompilerError {
	pos := fn.NodePos()
	switch {
	case fn.Visibility != ast.VisibilityExternal:
		return errors.SpecialFunctionNotExternal(errors.ErrorFallbackNotExternal, fallbackKind, pos)
	case len(fn.Parameters) > 0:
		return errors.SpecialFunctionParameters(errors.ErrorFallbackParameters, fallbackKind, pos, parameterNames(fn.Parameters))
	case fn.ReturnParameters != nil:
		return errors.SpecialFunctionReturns(errors.ErrorFallbackReturns, fallbackKind, pos)
	}
	return errors.CompilerError{}
}

func validateReceive(fn *ast.FunctionDefinition) errors.CompilerError {
	pos := fn.NodePos()
	switch {
	case fn.Visibility != ast.VisibilityExternal:
		return errors.SpecialFunctionNotExternal(errors.ErrorReceiveNotExternal, receiveKind, pos)
	case fn.StateMutability == nil || *fn.StateMutability != "payable":
		return errors.ReceiveNotPayable(pos)
	case len(fn.Parameters) > 0:
		return errors.SpecialFunctionParameters(errors.ErrorReceiveParameters, receiveKind, pos, parameterNames(fn.Parameters))
	case fn.ReturnParameters != nil:
		return errors.SpecialFunctionReturns(errors.ErrorReceiveReturns, receiveKind, pos)
	}
	return errors.CompilerError{}
}

func parameterNames(params []*ast.VariableDeclaration) []string {
	names := make([]string, 0, len(params))
	for _, p := range params {
		if p.Name != nil {
			names = append(names, *p.Name)
		}
	}
	return names
}
