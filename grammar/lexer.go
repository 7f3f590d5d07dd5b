package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// AssemblyLexer tokenizes the inline assembly language. Identifiers may
// contain '.' and '$'; ":=", "=:" and "->" are single tokens. Keywords are
// never identifiers.
var AssemblyLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		// Whitespace
		{"Whitespace", `[ \t\r\n]+`, nil},

		// Comments
		{"Comment", `//[^\n]*|/\*(?s:.*?)\*/`, nil},

		// Literals (order matters: hex"..." before identifiers)
		{"HexString", `hex"[0-9a-fA-F_]*"|hex'[0-9a-fA-F_]*'`, nil},
		{"String", `"(\\.|[^"\\\n])*"|'(\\.|[^'\\\n])*'`, nil},
		{"HexNumber", `0[xX][0-9a-fA-F]+`, nil},
		{"DecimalNumber", `[0-9]+`, nil},

		// Keywords and Identifiers
		{"Keyword", `(?:let|function|if|for|switch|case|default|break|continue|leave)\b`, nil},
		{"Ident", `[a-zA-Z_$][a-zA-Z0-9_$.]*`, nil},

		// Punctuation (multi-character tokens first)
		{"Punct", `:=|=:|->|[{}(),:]`, nil},
	},
})
