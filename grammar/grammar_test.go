package grammar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solparse/grammar"
)

func TestParseEmptyBlock(t *testing.T) {
	block, err := grammar.ParseBlock("test.sol", "{}")
	require.NoError(t, err)
	assert.Empty(t, block.Items)
	assert.Equal(t, 1, block.Close.Pos.Offset)
}

func TestParseItems(t *testing.T) {
	source := `{
    let x := 0x04
    a, b := f(x, "s")
    =: a
    loop:
    mstore(0, 1)
    break
    continue
    leave
}`
	block, err := grammar.ParseBlock("test.sol", source)
	require.NoError(t, err)
	require.Len(t, block.Items, 8)

	let := block.Items[0].Let
	require.NotNil(t, let)
	assert.Equal(t, "x", let.Names[0].Value)
	assert.Equal(t, "0x04", *let.Value.Literal.HexNumber)
	assert.Equal(t, 2, let.Names[0].Pos.Line)

	assign := block.Items[1].Assignment
	require.NotNil(t, assign)
	assert.Len(t, assign.Names, 2)
	assert.Equal(t, "f", assign.Value.Call.Name.Value)
	assert.Len(t, assign.Value.Call.Arguments, 2)
	assert.Equal(t, `"s"`, *assign.Value.Call.Arguments[1].Literal.String)

	assert.Equal(t, "a", block.Items[2].StackAssign.Value)
	assert.Equal(t, "loop", block.Items[3].Label.Name.Value)
	assert.Equal(t, "mstore", block.Items[4].Expression.Call.Name.Value)
	assert.True(t, block.Items[5].Break)
	assert.True(t, block.Items[6].Continue)
	assert.True(t, block.Items[7].Leave)
}

func TestBareIdentifierIsCallWithoutParens(t *testing.T) {
	block, err := grammar.ParseBlock("test.sol", "{ if x { } }")
	require.NoError(t, err)

	cond := block.Items[0].If.Condition.Call
	require.NotNil(t, cond)
	assert.Equal(t, "x", cond.Name.Value)
	assert.Nil(t, cond.Close)
	assert.Empty(t, cond.Arguments)
}

func TestParseFunctionDefinition(t *testing.T) {
	block, err := grammar.ParseBlock("test.sol", "{ function power(base, exponent) -> result { result := 1 } }")
	require.NoError(t, err)

	fn := block.Items[0].Function
	require.NotNil(t, fn)
	assert.Equal(t, "power", fn.Name.Value)
	assert.Len(t, fn.Params, 2)
	assert.Len(t, fn.Returns, 1)
	assert.Len(t, fn.Body.Items, 1)
}

func TestParseSwitchKeepsSourceOrder(t *testing.T) {
	block, err := grammar.ParseBlock("test.sol", "{ switch x default { } case 0 { } }")
	require.NoError(t, err)

	sw := block.Items[0].Switch
	require.Len(t, sw.Cases, 2)
	assert.True(t, sw.Cases[0].Default)
	assert.Equal(t, "0", sw.Cases[1].Value.Raw())
}

func TestParseForWithBlockParts(t *testing.T) {
	block, err := grammar.ParseBlock("test.sol", "{ for { let i := 0 } lt(i, x) { i := add(i, 1) } { } }")
	require.NoError(t, err)

	loop := block.Items[0].For
	require.NotNil(t, loop)
	assert.NotNil(t, loop.Pre.Block)
	assert.Equal(t, "lt", loop.Condition.Call.Name.Value)
	assert.NotNil(t, loop.Post.Block)
}

func TestCommentsAreElided(t *testing.T) {
	block, err := grammar.ParseBlock("test.sol", "{ // line\n /* block */ pop(1) }")
	require.NoError(t, err)
	assert.Len(t, block.Items, 1)
}

func TestIdentifiersMayContainDots(t *testing.T) {
	block, err := grammar.ParseBlock("test.sol", "{ let s := x.slot }")
	require.NoError(t, err)
	assert.Equal(t, "x.slot", block.Items[0].Let.Value.Call.Name.Value)
}

func TestSyntaxError(t *testing.T) {
	_, err := grammar.ParseBlock("test.sol", "{\n  let := 1\n}")
	require.Error(t, err)

	var ge *grammar.Error
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, 2, ge.Pos.Line)
	assert.NotEmpty(t, ge.Message)
}

func TestKeywordsAreNotIdentifiers(t *testing.T) {
	for _, source := range []string{"{ if }", "{ let := 1 }", "{ function := 2 }", "{ x := leave }", "{ default: }"} {
		t.Run(source, func(t *testing.T) {
			_, err := grammar.ParseBlock("test.sol", source)
			assert.Error(t, err)
		})
	}

	block, err := grammar.ParseBlock("test.sol", "{ let letter := iffy }")
	require.NoError(t, err)
	assert.Equal(t, "letter", block.Items[0].Let.Names[0].Value)
	assert.Equal(t, "iffy", block.Items[0].Let.Value.Call.Name.Value)
}

func TestPrinterRoundTrip(t *testing.T) {
	source := `{
    let x := mload(0x40)
    switch x
    case 0 {
        revert(0, 0)
    }
    default {}
    for {} lt(i, 10) {} {
        i := add(i, 1)
    }
}`
	block, err := grammar.ParseBlock("test.sol", source)
	require.NoError(t, err)
	assert.Equal(t, source, block.String())

	again, err := grammar.ParseBlock("test.sol", block.String())
	require.NoError(t, err)
	assert.Equal(t, block.String(), again.String())
}

func TestGrammarDescribesItems(t *testing.T) {
	ebnf := grammar.Grammar()
	assert.Contains(t, ebnf, "Block")
	assert.Contains(t, ebnf, `"switch"`)
}
