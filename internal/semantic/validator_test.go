package semantic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solparse/ast"
	"solparse/internal/errors"
)

func param(name string) *ast.VariableDeclaration {
	return &ast.VariableDeclaration{
		TypeName: &ast.ElementaryTypeName{Name: "uint256"},
		Name:     ast.Str(name),
	}
}

func TestValidateFunctionIgnoresOrdinaryFunctions(t *testing.T) {
	fn := &ast.FunctionDefinition{
		Name:       ast.Str("transfer"),
		Parameters: []*ast.VariableDeclaration{param("amount")},
		Visibility: ast.VisibilityPublic,
	}
	assert.Nil(t, ValidateFunction(fn))

	ctor := &ast.FunctionDefinition{IsConstructor: true, Visibility: ast.VisibilityDefault}
	assert.Nil(t, ValidateFunction(ctor))
}

func TestValidateFallback(t *testing.T) {
	tests := []struct {
		name    string
		fn      *ast.FunctionDefinition
		code    string
		message string
	}{
		{
			name: "valid",
			fn:   &ast.FunctionDefinition{IsFallback: true, Visibility: ast.VisibilityExternal, Parameters: []*ast.VariableDeclaration{}},
		},
		{
			name:    "not external",
			fn:      &ast.FunctionDefinition{IsFallback: true, Visibility: ast.VisibilityDefault, Parameters: []*ast.VariableDeclaration{}},
			code:    errors.ErrorFallbackNotExternal,
			message: `Fallback functions have to be declared "external"`,
		},
		{
			name: "parameters",
			fn: &ast.FunctionDefinition{
				IsFallback: true, Visibility: ast.VisibilityExternal,
				Parameters: []*ast.VariableDeclaration{param("myUint")},
			},
			code:    errors.ErrorFallbackParameters,
			message: "Fallback functions cannot have parameters",
		},
		{
			name: "return parameters",
			fn: &ast.FunctionDefinition{
				IsFallback: true, Visibility: ast.VisibilityExternal,
				Parameters:       []*ast.VariableDeclaration{},
				ReturnParameters: []*ast.VariableDeclaration{param("myUint")},
			},
			code:    errors.ErrorFallbackReturns,
			message: "Fallback functions cannot have return parameters",
		},
		{
			name: "legacy form",
			fn:   &ast.FunctionDefinition{IsFallback: true, Name: ast.Str(""), Visibility: ast.VisibilityExternal, Parameters: []*ast.VariableDeclaration{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFunction(tt.fn)
			if tt.code == "" {
				assert.Nil(t, err)
				return
			}
			require.NotNil(t, err)
			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.Equal(t, errors.Error, err.Level)
			assert.Equal(t, "Contract", err.Category())
		})
	}
}

func TestValidateReceive(t *testing.T) {
	payable := ast.Str("payable")
	view := ast.Str("view")

	tests := []struct {
		name    string
		fn      *ast.FunctionDefinition
		code    string
		message string
	}{
		{
			name: "valid",
			fn:   &ast.FunctionDefinition{IsReceiveEther: true, Visibility: ast.VisibilityExternal, StateMutability: payable},
		},
		{
			name:    "not external is reported before payable",
			fn:      &ast.FunctionDefinition{IsReceiveEther: true, Visibility: ast.VisibilityDefault},
			code:    errors.ErrorReceiveNotExternal,
			message: `Receive Ether functions have to be declared "external"`,
		},
		{
			name:    "missing payable",
			fn:      &ast.FunctionDefinition{IsReceiveEther: true, Visibility: ast.VisibilityExternal},
			code:    errors.ErrorReceiveNotPayable,
			message: `Receive Ether functions have to be declared "payable"`,
		},
		{
			name:    "wrong mutability",
			fn:      &ast.FunctionDefinition{IsReceiveEther: true, Visibility: ast.VisibilityExternal, StateMutability: view},
			code:    errors.ErrorReceiveNotPayable,
			message: `Receive Ether functions have to be declared "payable"`,
		},
		{
			name: "parameters",
			fn: &ast.FunctionDefinition{
				IsReceiveEther: true, Visibility: ast.VisibilityExternal, StateMutability: payable,
				Parameters: []*ast.VariableDeclaration{param("myUint")},
			},
			code:    errors.ErrorReceiveParameters,
			message: "Receive Ether functions cannot have parameters",
		},
		{
			name: "return parameters",
			fn: &ast.FunctionDefinition{
				IsReceiveEther: true, Visibility: ast.VisibilityExternal, StateMutability: payable,
				ReturnParameters: []*ast.VariableDeclaration{},
			},
			code:    errors.ErrorReceiveReturns,
			message: "Receive Ether functions cannot have return parameters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFunction(tt.fn)
			if tt.code == "" {
				assert.Nil(t, err)
				return
			}
			require.NotNil(t, err)
			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
		})
	}
}

func TestValidateSuggestsRemovingParameters(t *testing.T) {
	fn := &ast.FunctionDefinition{
		IsFallback: true, Visibility: ast.VisibilityExternal,
		Parameters: []*ast.VariableDeclaration{param("a"), param("b")},
	}
	err := ValidateFunction(fn)
	require.NotNil(t, err)
	require.Len(t, err.Suggestions, 1)
	assert.Contains(t, err.Suggestions[0].Message, "a, b")
	assert.Equal(t, len("fallback"), err.Length)
}
