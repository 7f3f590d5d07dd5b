package lsp

import (
	"strings"

	"solparse/parser"
	"solparse/token"
)

// SemanticToken represents a single LSP semantic token entry
// Line and StartChar are 0-based positions
// TokenType is an index into the semanticTokenTypes array
// TokenModifiers is a bitmask based on semanticTokenModifiers
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int // index into semanticTokenTypes
	TokenModifiers int // bitmask
}

// declaring maps a keyword onto the token type of the name that follows it.
var declaring = map[token.TokenType]string{
	token.CONTRACT:  "type",
	token.INTERFACE: "type",
	token.LIBRARY:   "type",
	token.STRUCT:    "type",
	token.ENUM:      "type",
	token.FUNCTION:  "function",
	token.MODIFIER:  "modifier",
	token.EVENT:     "event",
}

// collectSemanticTokens classifies the token stream; the tree is not needed,
// so highlighting keeps working for text that does not parse.
func collectSemanticTokens(source string) ([]SemanticToken, error) {
	toks, err := parser.Tokenize(source)
	if err != nil {
		return nil, err
	}

	var tokens []SemanticToken
	var prev token.Token
	for _, tok := range toks {
		for _, c := range tok.Leading {
			modifiers := 0
			if c.IsDoc() {
				modifiers = modifierBit("documentation")
			}
			tokens = append(tokens, splitLines(c.Position, c.Text, "comment", modifiers)...)
		}
		if tok.Type == token.EOF {
			break
		}

		switch {
		case tok.Type == token.IDENTIFIER:
			switch {
			case declaring[prev.Type] != "":
				tokens = append(tokens, makeToken(tok.Position, tok.Lexeme, declaring[prev.Type], modifierBit("declaration")))
			case prev.Type == token.DOT:
				tokens = append(tokens, makeToken(tok.Position, tok.Lexeme, "property", 0))
			default:
				tokens = append(tokens, makeToken(tok.Position, tok.Lexeme, "variable", 0))
			}
		case tok.Type == token.TYPE_NAME, tok.Type == token.MAPPING:
			tokens = append(tokens, makeToken(tok.Position, tok.Lexeme, "type", 0))
		case tok.Type == token.NUMBER, tok.Type == token.HEX_NUMBER:
			tokens = append(tokens, makeToken(tok.Position, tok.Lexeme, "number", 0))
		case tok.Type == token.STRING, tok.Type == token.HEX_STRING:
			tokens = append(tokens, splitLines(tok.Position, tok.Lexeme, "string", 0)...)
		case isKeyword(tok):
			tokens = append(tokens, makeToken(tok.Position, tok.Lexeme, "keyword", 0))
		}
		prev = tok
	}
	return tokens, nil
}

func isKeyword(tok token.Token) bool {
	t := token.LookupIdent(tok.Lexeme)
	return t == tok.Type && t != token.IDENTIFIER && t != token.TYPE_NAME
}

// splitLines emits one token per line, as clients without multiline token
// support require.
func splitLines(pos token.Position, text, tokenType string, modifiers int) []SemanticToken {
	var tokens []SemanticToken
	for i, line := range strings.Split(text, "\n") {
		p := pos
		if i > 0 {
			p.Line += i
			p.Column = 1
		}
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		tokens = append(tokens, makeToken(p, line, tokenType, modifiers))
	}
	return tokens
}

// makeToken creates a semantic token for a given position and text
func makeToken(pos token.Position, value, tokenType string, modifiers int) SemanticToken {
	return SemanticToken{
		Line:           uint32(pos.Line - 1),   // LSP uses 0-based line numbers
		StartChar:      uint32(pos.Column - 1), // LSP uses 0-based column numbers
		Length:         uint32(len(value)),
		TokenType:      indexOf(tokenType, SemanticTokenTypes),
		TokenModifiers: modifiers,
	}
}

func modifierBit(name string) int {
	return 1 << indexOf(name, SemanticTokenModifiers)
}

// indexOf returns the index of a string in a slice, or 0 if not found
func indexOf(target string, list []string) int {
	for i, v := range list {
		if v == target {
			return i
		}
	}
	return 0 // Default to first token type if not found
}
