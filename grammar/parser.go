package grammar

import (
	"errors"
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var assemblyParser = participle.MustBuild[Block](
	participle.Lexer(AssemblyLexer),
	participle.Elide("Whitespace", "Comment"),
	participle.UseLookahead(16),
)

// Error is a syntax error in an assembly block. Pos is relative to the text
// handed to ParseBlock.
type Error struct {
	Pos     lexer.Position
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// ParseBlock parses an assembly block, braces included.
func ParseBlock(filename, source string) (*Block, error) {
	block, err := assemblyParser.ParseString(filename, source)
	if err != nil {
		var pe participle.Error
		if errors.As(err, &pe) {
			return nil, &Error{Pos: pe.Position(), Message: pe.Message()}
		}
		return nil, fmt.Errorf("failed to parse assembly: %w", err)
	}
	return block, nil
}

// Grammar returns the EBNF of the assembly grammar.
func Grammar() string {
	return assemblyParser.String()
}
