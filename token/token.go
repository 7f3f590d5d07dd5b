// Package token SPDX-License-Identifier: Apache-2.0
package token

import (
	"sort"
	"strings"
)

type TokenType string

type Token struct {
	Type     TokenType
	Lexeme   string
	Position Position
	// Leading holds the comments between the previous token and this one.
	Leading []Comment
}

type Position struct {
	Line   int // 1-based
	Column int // 1-based
	Offset int // 0-based absolute index in input
}

// End returns the position just past the token's last character.
func (t Token) End() Position {
	line, col := t.Position.Line, t.Position.Column
	for i := 0; i < len(t.Lexeme); i++ {
		if t.Lexeme[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return Position{Line: line, Column: col, Offset: t.Position.Offset + len(t.Lexeme)}
}

const (
	ILLEGAL = "ILLEGAL"
	EOF     = "EOF"

	// Identifiers + literals
	IDENTIFIER = "IDENTIFIER" // foo, msg, calldata
	TYPE_NAME  = "TYPE_NAME"  // uint256, address, bytes32
	NUMBER     = "NUMBER"     // 1_000, 2.5e3, .1
	HEX_NUMBER = "HEX_NUMBER" // 0xff
	STRING     = "STRING"     // "abc", 'abc', unicode"abc"
	HEX_STRING = "HEX_STRING" // hex"00ff"

	// Operators
	ASSIGN          = "="
	PLUS            = "+"
	MINUS           = "-"
	STAR            = "*"
	STAR_STAR       = "**"
	SLASH           = "/"
	PERCENT         = "%"
	BANG            = "!"
	TILDE           = "~"
	INCREMENT       = "++"
	DECREMENT       = "--"
	LT              = "<"
	GT              = ">"
	LT_EQ           = "<="
	GT_EQ           = ">="
	EQ              = "=="
	NOT_EQ          = "!="
	AND             = "&&"
	OR              = "||"
	AMPERSAND       = "&"
	PIPE            = "|"
	CARET           = "^"
	SHL             = "<<"
	SHR             = ">>"
	PLUS_ASSIGN     = "+="
	MINUS_ASSIGN    = "-="
	STAR_ASSIGN     = "*="
	SLASH_ASSIGN    = "/="
	PERCENT_ASSIGN  = "%="
	AMP_ASSIGN      = "&="
	PIPE_ASSIGN     = "|="
	CARET_ASSIGN    = "^="
	SHL_ASSIGN      = "<<="
	SHR_ASSIGN      = ">>="
	ARROW           = "=>"
	ASSEMBLY_ASSIGN = ":="
	STACK_ASSIGN    = "=:"
	QUESTION        = "?"

	// Delimiters
	COMMA     = ","
	SEMICOLON = ";"
	COLON     = ":"
	DOT       = "."

	LPAREN   = "("
	RPAREN   = ")"
	LBRACE   = "{"
	RBRACE   = "}"
	LBRACKET = "["
	RBRACKET = "]"

	// Keywords
	PRAGMA      = "PRAGMA"
	IMPORT      = "IMPORT"
	CONTRACT    = "CONTRACT"
	INTERFACE   = "INTERFACE"
	LIBRARY     = "LIBRARY"
	ABSTRACT    = "ABSTRACT"
	IS          = "IS"
	USING       = "USING"
	STRUCT      = "STRUCT"
	ENUM        = "ENUM"
	EVENT       = "EVENT"
	MODIFIER    = "MODIFIER"
	FUNCTION    = "FUNCTION"
	CONSTRUCTOR = "CONSTRUCTOR"
	RETURNS     = "RETURNS"
	RETURN      = "RETURN"
	IF          = "IF"
	ELSE        = "ELSE"
	FOR         = "FOR"
	WHILE       = "WHILE"
	DO          = "DO"
	BREAK       = "BREAK"
	CONTINUE    = "CONTINUE"
	THROW       = "THROW"
	EMIT        = "EMIT"
	TRY         = "TRY"
	CATCH       = "CATCH"
	ASSEMBLY    = "ASSEMBLY"
	NEW         = "NEW"
	DELETE      = "DELETE"
	MAPPING     = "MAPPING"
	TRUE        = "TRUE"
	FALSE       = "FALSE"
	PUBLIC      = "PUBLIC"
	PRIVATE     = "PRIVATE"
	INTERNAL    = "INTERNAL"
	EXTERNAL    = "EXTERNAL"
	PURE        = "PURE"
	VIEW        = "VIEW"
	PAYABLE     = "PAYABLE"
	CONSTANT    = "CONSTANT"
	IMMUTABLE   = "IMMUTABLE"
	VIRTUAL     = "VIRTUAL"
	OVERRIDE    = "OVERRIDE"
	INDEXED     = "INDEXED"
	ANONYMOUS   = "ANONYMOUS"
	UNCHECKED   = "UNCHECKED"
)

var keywords = map[string]TokenType{
	"pragma":      PRAGMA,
	"import":      IMPORT,
	"contract":    CONTRACT,
	"interface":   INTERFACE,
	"library":     LIBRARY,
	"abstract":    ABSTRACT,
	"is":          IS,
	"using":       USING,
	"struct":      STRUCT,
	"enum":        ENUM,
	"event":       EVENT,
	"modifier":    MODIFIER,
	"function":    FUNCTION,
	"constructor": CONSTRUCTOR,
	"returns":     RETURNS,
	"return":      RETURN,
	"if":          IF,
	"else":        ELSE,
	"for":         FOR,
	"while":       WHILE,
	"do":          DO,
	"break":       BREAK,
	"continue":    CONTINUE,
	"throw":       THROW,
	"emit":        EMIT,
	"try":         TRY,
	"catch":       CATCH,
	"assembly":    ASSEMBLY,
	"new":         NEW,
	"delete":      DELETE,
	"mapping":     MAPPING,
	"true":        TRUE,
	"false":       FALSE,
	"public":      PUBLIC,
	"private":     PRIVATE,
	"internal":    INTERNAL,
	"external":    EXTERNAL,
	"pure":        PURE,
	"view":        VIEW,
	"payable":     PAYABLE,
	"constant":    CONSTANT,
	"immutable":   IMMUTABLE,
	"virtual":     VIRTUAL,
	"override":    OVERRIDE,
	"indexed":     INDEXED,
	"anonymous":   ANONYMOUS,
	"unchecked":   UNCHECKED,
}

// LookupIdent classifies a scanned word as keyword, elementary type name or
// plain identifier.
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	if IsElementaryTypeName(ident) {
		return TYPE_NAME
	}
	return IDENTIFIER
}

// Keywords returns the reserved words in lexical order.
func Keywords() []string {
	words := make([]string, 0, len(keywords))
	for w := range keywords {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// IsElementaryTypeName reports whether name is a built-in value type such as
// uint256, bytes4, address or fixed128x18.
func IsElementaryTypeName(name string) bool {
	switch name {
	case "bool", "address", "string", "var", "byte", "bytes", "int", "uint", "fixed", "ufixed":
		return true
	}
	switch {
	case strings.HasPrefix(name, "bytes"):
		return isSizeSuffix(name[len("bytes"):], 1, 32, 1)
	case strings.HasPrefix(name, "uint"):
		return isSizeSuffix(name[len("uint"):], 8, 256, 8)
	case strings.HasPrefix(name, "int"):
		return isSizeSuffix(name[len("int"):], 8, 256, 8)
	case strings.HasPrefix(name, "ufixed"):
		return isFixedSuffix(name[len("ufixed"):])
	case strings.HasPrefix(name, "fixed"):
		return isFixedSuffix(name[len("fixed"):])
	}
	return false
}

func isSizeSuffix(s string, lo, hi, step int) bool {
	n, ok := atoi(s)
	return ok && n >= lo && n <= hi && n%step == 0
}

// fixedMxN with M in 8..256 (step 8) and N in 0..80
func isFixedSuffix(s string) bool {
	m, n, found := strings.Cut(s, "x")
	if !found {
		return false
	}
	return isSizeSuffix(m, 8, 256, 8) && isSizeSuffix(n, 0, 80, 1)
}

func atoi(s string) (int, bool) {
	if s == "" || (len(s) > 1 && s[0] == '0') {
		return 0, false
	}
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
		n = n*10 + int(s[i]-'0')
	}
	return n, true
}
