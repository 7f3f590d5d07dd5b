package ast

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func span(startOffset, startCol, endOffset, endCol int) Span {
	return Span{
		Pos:    Position{Offset: startOffset, Line: 1, Column: startCol},
		EndPos: Position{Offset: endOffset, Line: 1, Column: endCol},
	}
}

// a + true
func sampleBinary() *BinaryOperation {
	return &BinaryOperation{
		Span:     span(0, 1, 8, 9),
		Operator: "+",
		Left:     &Identifier{Span: span(0, 1, 1, 2), Name: "a"},
		Right:    &BooleanLiteral{Span: span(4, 5, 8, 9), Value: true},
	}
}

func TestMarshalKeepsFieldOrder(t *testing.T) {
	unit := &SourceUnit{Children: []Node{&PragmaDirective{Name: "solidity", Value: "^0.8.0"}}}

	out, err := Marshal(unit)
	require.NoError(t, err)
	assert.Equal(t, `{"type":"SourceUnit","children":[{"type":"PragmaDirective","name":"solidity","value":"^0.8.0"}]}`, string(out))
}

func TestMarshalNullability(t *testing.T) {
	fn := &FunctionDefinition{Name: Str("f"), Visibility: "public"}

	out, err := Marshal(fn)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(out, &m))
	assert.Equal(t, "FunctionDefinition", m["type"])
	assert.Equal(t, []any{}, m["parameters"], "lists are never null")
	assert.Nil(t, m["returnParameters"], "a missing returns clause is null")
	assert.Nil(t, m["override"])
	assert.Nil(t, m["body"])
	assert.Nil(t, m["natspec"])
	assert.Nil(t, m["stateMutability"])
	assert.Equal(t, "f", m["name"])
}

func TestMarshalDoesNotEscapeHTML(t *testing.T) {
	out, err := Marshal(&StringLiteral{Value: "<a & b>"})
	require.NoError(t, err)
	assert.Equal(t, `{"type":"StringLiteral","value":"<a & b>"}`, string(out))
}

func TestMarshalWithLocAndRange(t *testing.T) {
	out, err := Marshal(sampleBinary(), WithLoc(), WithRange())
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"type": "BinaryOperation",
		"operator": "+",
		"left": {
			"type": "Identifier",
			"name": "a",
			"loc": {"start": {"line": 1, "column": 0}, "end": {"line": 1, "column": 1}},
			"range": [0, 0]
		},
		"right": {
			"type": "BooleanLiteral",
			"value": true,
			"loc": {"start": {"line": 1, "column": 4}, "end": {"line": 1, "column": 8}},
			"range": [4, 7]
		},
		"loc": {"start": {"line": 1, "column": 0}, "end": {"line": 1, "column": 8}},
		"range": [0, 7]
	}`, string(out))
}

func TestMarshalIndent(t *testing.T) {
	out, err := Marshal(&Identifier{Name: "x"}, WithIndent("", "  "))
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"type\": \"Identifier\",\n  \"name\": \"x\"\n}", string(out))
}

func TestMarshalYAML(t *testing.T) {
	out, err := MarshalYAML(sampleBinary(), WithRange())
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, yaml.Unmarshal(out, &m))
	assert.Equal(t, "BinaryOperation", m["type"])
	assert.Equal(t, "+", m["operator"])
	assert.Equal(t, []any{0, 7}, m["range"])

	left, ok := m["left"].(map[string]any)
	require.True(t, ok, "left should be a mapping")
	assert.Equal(t, "a", left["name"])

	right, ok := m["right"].(map[string]any)
	require.True(t, ok, "right should be a mapping")
	assert.Equal(t, true, right["value"])

	text := string(out)
	assert.True(t, strings.HasPrefix(text, "type: BinaryOperation\n"), "type comes first")
	assert.Less(t, strings.Index(text, "operator:"), strings.Index(text, "left:"))
}

func TestMarshalYAMLNulls(t *testing.T) {
	out, err := MarshalYAML(&ReturnStatement{})
	require.NoError(t, err)
	assert.Equal(t, "type: ReturnStatement\nexpression: null\n", string(out))
}

func TestNatspecGroupsParams(t *testing.T) {
	doc := &Natspec{Entries: []NatspecEntry{
		{Tag: TagTitle, Text: "Adds two numbers"},
		{Tag: TagParam, Name: "a", Text: "first"},
		{Tag: TagDev, Text: "overflow checked"},
		{Tag: TagParam, Name: "b", Text: "second"},
		{Tag: TagReturn, Text: "the sum"},
	}}

	out, err := json.Marshal(newEncoder(nil).natspec(doc))
	require.NoError(t, err)
	assert.Equal(t,
		`{"title":"Adds two numbers","params":{"a":"first","b":"second"},"dev":"overflow checked","return":"the sum"}`,
		string(out))

	assert.Nil(t, newEncoder(nil).natspec(nil))
	assert.Nil(t, newEncoder(nil).natspec(&Natspec{}))
}

func TestNatspecAccessors(t *testing.T) {
	doc := &Natspec{Entries: []NatspecEntry{
		{Tag: TagTitle, Text: "Token"},
		{Tag: TagParam, Name: "to", Text: "recipient"},
		{Tag: TagParam, Name: "amount", Text: "value"},
	}}

	title, ok := doc.Get(TagTitle)
	assert.True(t, ok)
	assert.Equal(t, "Token", title)

	_, ok = doc.Get(TagParam)
	assert.False(t, ok, "params are only reachable through Param")

	text, ok := doc.Param("amount")
	assert.True(t, ok)
	assert.Equal(t, "value", text)
	assert.Equal(t, []string{"to", "amount"}, doc.Params())

	var empty *Natspec
	_, ok = empty.Get(TagDev)
	assert.False(t, ok)
	assert.Nil(t, empty.Params())
}
