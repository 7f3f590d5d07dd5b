package abi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solparse/ast"
	"solparse/parser"
)

func collect(t *testing.T, source string) ([]Entry, error) {
	t.Helper()
	unit, err := parser.Parse(source, parser.WithFilename("Token.sol"))
	require.NoError(t, err)
	return Collect(unit)
}

func TestSelector(t *testing.T) {
	tests := []struct {
		signature string
		selector  string
	}{
		{"transfer(address,uint256)", "0xa9059cbb"},
		{"balanceOf(address)", "0x70a08231"},
		{"totalSupply()", "0x18160ddd"},
		{"approve(address,uint256)", "0x095ea7b3"},
		{"Error(string)", "0x08c379a0"},
	}
	for _, tt := range tests {
		t.Run(tt.signature, func(t *testing.T) {
			assert.Equal(t, tt.selector, Selector(tt.signature))
		})
	}

	assert.Equal(t,
		"0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef",
		Topic("Transfer(address,address,uint256)"))
}

func TestCollect(t *testing.T) {
	entries, err := collect(t, `
contract Token {
    mapping(address => uint) public balanceOf;
    mapping(address => mapping(address => uint256)) public allowance;
    uint private secret;
    uint[] public holders;
    event Transfer(address indexed from, address indexed to, uint value);
    event Hidden(uint x) anonymous;
    error Unauthorized(address caller);
    constructor() {}
    function transfer(address to, uint amount) external returns (bool) {}
    function helper() internal {}
    receive() external payable {}
}`)
	require.NoError(t, err)

	var sigs []string
	for _, e := range entries {
		assert.Equal(t, "Token", e.Contract)
		sigs = append(sigs, e.Kind+" "+e.Signature)
	}
	assert.Equal(t, []string{
		"getter balanceOf(address)",
		"getter allowance(address,address)",
		"getter holders(uint256)",
		"event Transfer(address,address,uint256)",
		"error Unauthorized(address)",
		"function transfer(address,uint256)",
	}, sigs)

	assert.Equal(t, "0x70a08231", entries[0].Selector)
	assert.Equal(t, "0xdd62ed3e", entries[1].Selector)
	assert.Equal(t, "0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef", entries[3].Selector)
	assert.Equal(t, "0xa9059cbb", entries[5].Selector)
	assert.Equal(t, 11, entries[5].Pos.Line)
	assert.Equal(t, "Token.sol", entries[5].Pos.Filename)
}

func TestCollectUserDefinedTypes(t *testing.T) {
	entries, err := collect(t, `
contract Token {}
contract Registry {
    enum Kind { A, B }
    struct Inner { bool ok; }
    struct Entry { uint id; Inner[] items; }
    function f(Entry memory e, Kind k, Token t, uint[2] memory pair, bytes32 h) public {}
    function g(Registry.Kind k, byte b, int i) external {}
}`)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "f((uint256,(bool)[]),uint8,address,uint256[2],bytes32)", entries[0].Signature)
	assert.Equal(t, "g(uint8,bytes1,int256)", entries[1].Signature)
}

func TestCollectReportsUnresolvableTypes(t *testing.T) {
	entries, err := collect(t, `
contract C {
    function ok() public {}
    function bad(Unknown u) public {}
}`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `Token.sol:4:5: function bad: cannot resolve type "Unknown"`)
	require.Len(t, entries, 1, "valid declarations are still returned")
	assert.Equal(t, "ok()", entries[0].Signature)
}

func TestCanonicalTypes(t *testing.T) {
	r := newResolver(&ast.SourceUnit{})

	tests := []struct {
		name     string
		typeName ast.Node
		expected string
	}{
		{"uint", &ast.ElementaryTypeName{Name: "uint"}, "uint256"},
		{"address payable", &ast.ElementaryTypeName{Name: "address", StateMutability: ast.Str("payable")}, "address"},
		{"ufixed", &ast.ElementaryTypeName{Name: "ufixed"}, "ufixed128x18"},
		{"dynamic array", &ast.ArrayTypeName{BaseTypeName: &ast.ElementaryTypeName{Name: "string"}}, "string[]"},
		{
			"nested array",
			&ast.ArrayTypeName{
				BaseTypeName: &ast.ArrayTypeName{
					BaseTypeName: &ast.ElementaryTypeName{Name: "int"},
					Length:       &ast.NumberLiteral{Number: "1_0"},
				},
			},
			"int256[10][]",
		},
		{"function", &ast.FunctionTypeName{}, "function"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.canonical(tt.typeName, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, err := r.canonical(&ast.Mapping{KeyType: &ast.ElementaryTypeName{Name: "uint"}, ValueType: &ast.ElementaryTypeName{Name: "uint"}}, nil)
	assert.Error(t, err)

	_, err = r.canonical(&ast.ArrayTypeName{BaseTypeName: &ast.ElementaryTypeName{Name: "uint"}, Length: &ast.Identifier{Name: "N"}}, nil)
	assert.Error(t, err)
}

func TestRecursiveStruct(t *testing.T) {
	_, err := collect(t, `
contract C {
    struct Node { Node[] children; }
    function f(Node memory n) public {}
}`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "recursive struct Node")
}
