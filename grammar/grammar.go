package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Block is "{ item* }". Close records the closing brace so the block's
// extent is known without relying on trailing trivia.
type Block struct {
	Pos   lexer.Position
	Items []*Item `"{" @@*`
	Close *Brace  `@@`
}

// Brace, Paren and Colon record the position of a delimiter.
type Brace struct {
	Pos  lexer.Position
	Text string `@"}"`
}

type Paren struct {
	Pos  lexer.Position
	Text string `@")"`
}

type Colon struct {
	Pos  lexer.Position
	Text string `@":"`
}

type Item struct {
	Pos         lexer.Position
	Block       *Block      `  @@`
	Let         *Let        `| @@`
	Function    *Function   `| @@`
	If          *If         `| @@`
	For         *For        `| @@`
	Switch      *Switch     `| @@`
	Break       bool        `| @"break":Keyword`
	Continue    bool        `| @"continue":Keyword`
	Leave       bool        `| @"leave":Keyword`
	StackAssign *PosIdent   `| "=:" @@`
	Label       *Label      `| @@`
	Assignment  *Assignment `| @@`
	Expression  *Expression `| @@`
}

type PosIdent struct {
	Pos   lexer.Position
	Value string `@Ident`
}

type Label struct {
	Name  *PosIdent `@@`
	Colon *Colon    `@@`
}

type Let struct {
	Names []*PosIdent `"let":Keyword @@ ( "," @@ )*`
	Value *Expression `( ":=" @@ )?`
}

type Assignment struct {
	Names []*PosIdent `@@ ( "," @@ )*`
	Value *Expression `":=" @@`
}

type Function struct {
	Name    *PosIdent   `"function":Keyword @@ "("`
	Params  []*PosIdent `( @@ ( "," @@ )* )? ")"`
	Returns []*PosIdent `( "->" @@ ( "," @@ )* )?`
	Body    *Block      `@@`
}

type If struct {
	Condition *Expression `"if":Keyword @@`
	Body      *Block      `@@`
}

// For holds the four parts of "for { init } cond { post } { body }". The
// init and post parts may also be a bare expression.
type For struct {
	Pre       *ForPart    `"for":Keyword @@`
	Condition *Expression `@@`
	Post      *ForPart    `@@`
	Body      *Block      `@@`
}

type ForPart struct {
	Pos        lexer.Position
	Block      *Block      `  @@`
	Expression *Expression `| @@`
}

type Switch struct {
	Expression *Expression `"switch":Keyword @@`
	Cases      []*Case     `@@*`
}

type Case struct {
	Pos     lexer.Position
	Value   *Literal `( "case":Keyword @@`
	Default bool     `| @"default":Keyword )`
	Body    *Block   `@@`
}

type Expression struct {
	Pos     lexer.Position
	Literal *Literal `  @@`
	Call    *Call    `| @@`
}

// Call is an identifier with an optional argument list. A bare identifier
// is a call without arguments.
type Call struct {
	Name      *PosIdent     `@@`
	Arguments []*Expression `( "(" ( @@ ( "," @@ )* )?`
	Close     *Paren        `@@ )?`
}

type Literal struct {
	Pos       lexer.Position
	HexString *string `  @HexString`
	String    *string `| @String`
	HexNumber *string `| @HexNumber`
	Decimal   *string `| @DecimalNumber`
}

// Raw returns the literal exactly as written.
func (l *Literal) Raw() string {
	switch {
	case l.HexString != nil:
		return *l.HexString
	case l.String != nil:
		return *l.String
	case l.HexNumber != nil:
		return *l.HexNumber
	case l.Decimal != nil:
		return *l.Decimal
	}
	return ""
}
