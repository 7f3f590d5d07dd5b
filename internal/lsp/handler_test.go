package lsp_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	diag "solparse/internal/errors"
	"solparse/internal/lsp"
)

const testURI = "file:///tmp/Token.sol"

const tokenSource = `/// @title Token
contract Token {
    /// @dev Moves tokens
    /// @param to recipient
    function transfer(address to) external {}
    uint public total;
    event Sent(address to);
}`

type published struct {
	uri         protocol.DocumentUri
	diagnostics []protocol.Diagnostic
}

func newContext(out *[]published) *glsp.Context {
	return &glsp.Context{
		Notify: func(method string, params any) {
			if method != protocol.ServerTextDocumentPublishDiagnostics {
				return
			}
			p := params.(*protocol.PublishDiagnosticsParams)
			*out = append(*out, published{p.URI, p.Diagnostics})
		},
	}
}

func open(t *testing.T, h *lsp.Handler, ctx *glsp.Context, text string) {
	t.Helper()
	err := h.TextDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: testURI, LanguageID: "solidity", Version: 1, Text: text},
	})
	require.NoError(t, err)
}

func TestInitializeAdvertisesCapabilities(t *testing.T) {
	result, err := lsp.NewHandler().Initialize(&glsp.Context{}, &protocol.InitializeParams{})
	require.NoError(t, err)

	init := result.(*protocol.InitializeResult)
	assert.Equal(t, true, init.Capabilities.DocumentSymbolProvider)
	assert.Equal(t, true, init.Capabilities.HoverProvider)
	assert.NotNil(t, init.Capabilities.SemanticTokensProvider)
}

func TestDiagnosticsArePublished(t *testing.T) {
	var notes []published
	ctx := newContext(&notes)
	h := lsp.NewHandler()

	open(t, h, ctx, "contract A { uint x }")
	require.Len(t, notes, 1)
	assert.Equal(t, protocol.DocumentUri(testURI), notes[0].uri)
	require.Len(t, notes[0].diagnostics, 1)

	d := notes[0].diagnostics[0]
	assert.Equal(t, "expected ';' after state variable declaration, found '}'", d.Message)
	assert.Equal(t, uint32(0), d.Range.Start.Line)
	assert.Equal(t, uint32(20), d.Range.Start.Character)
	assert.Equal(t, uint32(21), d.Range.End.Character)
	require.NotNil(t, d.Code)
	assert.Equal(t, diag.ErrorUnexpectedToken, d.Code.Value)
	assert.Equal(t, "solparse-parser", *d.Source)

	// a fixed document clears the diagnostics
	err := h.TextDocumentDidChange(ctx, &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: testURI},
			Version:                2,
		},
		ContentChanges: []any{protocol.TextDocumentContentChangeEventWhole{Text: "contract A { uint x; }"}},
	})
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Empty(t, notes[1].diagnostics)
	assert.NotNil(t, notes[1].diagnostics, "an empty list is sent, not null")
}

func TestValidatorDiagnostics(t *testing.T) {
	var notes []published
	h := lsp.NewHandler()

	open(t, h, newContext(&notes), "contract A {\n  receive() external {}\n}")
	require.Len(t, notes, 1)
	require.Len(t, notes[0].diagnostics, 1)

	d := notes[0].diagnostics[0]
	assert.Equal(t, "solparse-validator", *d.Source)
	assert.Equal(t, uint32(1), d.Range.Start.Line)
	assert.Equal(t, uint32(2), d.Range.Start.Character)
	assert.Equal(t, diag.ErrorReceiveNotPayable, d.Code.Value)
}

func TestDocumentSymbols(t *testing.T) {
	var notes []published
	h := lsp.NewHandler()
	open(t, h, newContext(&notes), tokenSource)

	result, err := h.TextDocumentDocumentSymbol(&glsp.Context{}, &protocol.DocumentSymbolParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
	})
	require.NoError(t, err)

	symbols := result.([]protocol.DocumentSymbol)
	require.Len(t, symbols, 1)
	contract := symbols[0]
	assert.Equal(t, "Token", contract.Name)
	assert.Equal(t, protocol.SymbolKindClass, contract.Kind)
	assert.Equal(t, uint32(1), contract.Range.Start.Line)
	assert.Equal(t, uint32(7), contract.Range.End.Line)

	require.Len(t, contract.Children, 3)
	assert.Equal(t, "transfer", contract.Children[0].Name)
	assert.Equal(t, protocol.SymbolKindFunction, contract.Children[0].Kind)
	assert.Equal(t, uint32(4), contract.Children[0].Range.Start.Line)
	assert.Equal(t, uint32(4), contract.Children[0].Range.Start.Character)
	assert.Equal(t, "total", contract.Children[1].Name)
	assert.Equal(t, protocol.SymbolKindField, contract.Children[1].Kind)
	assert.Equal(t, "Sent", contract.Children[2].Name)
	assert.Equal(t, protocol.SymbolKindEvent, contract.Children[2].Kind)
}

func TestDocumentSymbolsForUnparsableText(t *testing.T) {
	var notes []published
	h := lsp.NewHandler()
	open(t, h, newContext(&notes), "contract {")

	result, err := h.TextDocumentDocumentSymbol(&glsp.Context{}, &protocol.DocumentSymbolParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
	})
	require.NoError(t, err)
	assert.Empty(t, result)
}

func hoverAt(t *testing.T, h *lsp.Handler, line, char uint32) *protocol.Hover {
	t.Helper()
	result, err := h.TextDocumentHover(&glsp.Context{}, &protocol.HoverParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
			Position:     protocol.Position{Line: line, Character: char},
		},
	})
	require.NoError(t, err)
	return result
}

func TestHoverShowsNatspec(t *testing.T) {
	var notes []published
	h := lsp.NewHandler()
	open(t, h, newContext(&notes), tokenSource)

	result := hoverAt(t, h, 4, 14)
	require.NotNil(t, result)
	content := result.Contents.(protocol.MarkupContent)
	assert.Equal(t, protocol.MarkupKindMarkdown, content.Kind)
	assert.Contains(t, content.Value, "**function transfer**")
	assert.Contains(t, content.Value, "Moves tokens")
	assert.Contains(t, content.Value, "- `to`: recipient")
	require.NotNil(t, result.Range)
	assert.Equal(t, uint32(4), result.Range.Start.Line)

	// undocumented members fall back to the enclosing contract
	result = hoverAt(t, h, 5, 10)
	require.NotNil(t, result)
	content = result.Contents.(protocol.MarkupContent)
	assert.Contains(t, content.Value, "**contract Token**")
	assert.Contains(t, content.Value, "*@title* Token")

	assert.Nil(t, hoverAt(t, h, 0, 3), "the source unit itself carries no documentation")
}

func TestDidCloseForgetsDocument(t *testing.T) {
	var notes []published
	ctx := newContext(&notes)
	h := lsp.NewHandler()
	open(t, h, ctx, tokenSource)

	require.NoError(t, h.TextDocumentDidClose(ctx, &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
	}))
	require.Len(t, notes, 2)
	assert.Empty(t, notes[1].diagnostics)

	_, err := h.TextDocumentSemanticTokensFull(ctx, &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
	})
	assert.Error(t, err)
}

func TestTextDocumentSemanticTokensFull(t *testing.T) {
	var notes []published
	ctx := newContext(&notes)
	h := lsp.NewHandler()
	open(t, h, ctx, "// note\ncontract A { uint x = 1; }")

	tokens, err := h.TextDocumentSemanticTokensFull(ctx, &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
	})
	require.NoError(t, err)

	decoded, err := decodeSemanticTokens(tokens.Data)
	require.NoError(t, err)
	require.Len(t, decoded, 6)

	assertToken(t, &decoded[0], 1, 1, 7, "comment", nil)
	assertToken(t, &decoded[1], 2, 1, 8, "keyword", nil)
	assertToken(t, &decoded[2], 2, 10, 1, "type", []string{"declaration"})
	assertToken(t, &decoded[3], 2, 14, 4, "type", nil)
	assertToken(t, &decoded[4], 2, 19, 1, "variable", nil)
	assertToken(t, &decoded[5], 2, 23, 1, "number", nil)
}

func TestSemanticTokensSplitMultilineComments(t *testing.T) {
	var notes []published
	ctx := newContext(&notes)
	h := lsp.NewHandler()
	open(t, h, ctx, "/**\n * @title T\n */\ncontract T {}")

	tokens, err := h.TextDocumentSemanticTokensFull(ctx, &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
	})
	require.NoError(t, err)

	decoded, err := decodeSemanticTokens(tokens.Data)
	require.NoError(t, err)
	require.Len(t, decoded, 5)
	assertToken(t, &decoded[0], 1, 1, 3, "comment", []string{"documentation"})
	assertToken(t, &decoded[1], 2, 1, 11, "comment", []string{"documentation"})
	assertToken(t, &decoded[2], 3, 1, 3, "comment", []string{"documentation"})
	assertToken(t, &decoded[3], 4, 1, 8, "keyword", nil)
	assertToken(t, &decoded[4], 4, 10, 1, "type", []string{"declaration"})
}

type DecodedToken struct {
	Index     int
	Line      uint32
	Char      uint32
	Length    uint32
	Type      string
	Modifiers []string
}

func decodeSemanticTokens(raw []uint32) ([]DecodedToken, error) {
	if len(raw)%5 != 0 {
		return nil, fmt.Errorf("raw token data length %d is not a multiple of 5", len(raw))
	}

	var (
		decoded []DecodedToken
		line    uint32
		char    uint32
	)

	for i := 0; i < len(raw); i += 5 {
		deltaLine := raw[i]
		deltaStart := raw[i+1]
		length := raw[i+2]
		tokenTypeIdx := raw[i+3]
		tokenModMask := raw[i+4]

		if deltaLine == 0 {
			char += deltaStart
		} else {
			line += deltaLine
			char = deltaStart
		}

		var modifiers []string
		for j, name := range lsp.SemanticTokenModifiers {
			if tokenModMask&(1<<j) != 0 {
				modifiers = append(modifiers, name)
			}
		}

		decoded = append(decoded, DecodedToken{
			Index:     i / 5,
			Line:      line + 1, // LSP uses 0-based indexing
			Char:      char + 1, // LSP uses 0-based indexing
			Length:    length,
			Type:      lsp.SemanticTokenTypes[tokenTypeIdx],
			Modifiers: modifiers,
		})
	}

	return decoded, nil
}

func assertToken(t *testing.T, token *DecodedToken, expectedLine, expectedChar, expectedLength uint32, expectedType string, expectedModifiers []string) {
	require.Equal(t, expectedLine, token.Line, "line mismatch (expected line %d)", expectedLine)
	require.Equal(t, expectedChar, token.Char, "char mismatch (expected char %d)", expectedChar)
	require.Equal(t, expectedLength, token.Length, "length mismatch")
	require.Equal(t, expectedType, token.Type, "type mismatch")
	require.ElementsMatch(t, expectedModifiers, token.Modifiers, "modifiers mismatch")
}
