package parser

import (
	"fmt"

	"solparse/ast"
	diag "solparse/internal/errors"
	"solparse/token"
)

var keywordList = token.Keywords()

func (p *Parser) advance() token.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(tt token.TokenType) bool {
	return p.peek().Type == tt
}

// checkWord matches a contextual keyword such as "from" or "receive", which
// the scanner leaves as a plain identifier.
func (p *Parser) checkWord(word string) bool {
	tok := p.peek()
	return tok.Type == token.IDENTIFIER && tok.Lexeme == word
}

func (p *Parser) match(types ...token.TokenType) bool {
	for _, tt := range types {
		if p.check(tt) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) matchWord(word string) bool {
	if p.checkWord(word) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) consume(tt token.TokenType, message string) token.Token {
	if p.check(tt) {
		return p.advance()
	}
	p.errorAtCurrent(message)
	panic("unreachable")
}

func (p *Parser) consumeWord(word, message string) token.Token {
	if p.checkWord(word) {
		return p.advance()
	}
	p.errorAtCurrent(message)
	panic("unreachable")
}

func (p *Parser) consumeIdent(message string) token.Token {
	return p.consume(token.IDENTIFIER, message)
}

func (p *Parser) peek() token.Token {
	return p.tokens[p.current]
}

// peekAt looks n tokens ahead, stopping at EOF.
func (p *Parser) peekAt(n int) token.Token {
	if p.current+n >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.current+n]
}

func (p *Parser) previous() token.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == token.EOF
}

// errorAtCurrent aborts the parse with a syntax error at the next token.
func (p *Parser) errorAtCurrent(message string) {
	p.errorAt(p.peek(), message)
}

func (p *Parser) errorAt(tok token.Token, message string) {
	if tok.Type == token.EOF {
		message += ", found end of input"
	} else {
		message += fmt.Sprintf(", found '%s'", tok.Lexeme)
	}
	panic(&ParseError{
		Kind:     SyntaxError,
		Code:     diag.ErrorUnexpectedToken,
		Message:  message,
		Position: p.makePos(tok),
		Length:   len(tok.Lexeme),
		Lexeme:   tok.Lexeme,
	})
}

// try runs rule speculatively. On a syntax error the token position is
// restored and ok is false.
func try[T any](p *Parser, rule func() T) (result T, ok bool) {
	saved := p.current
	defer func() {
		if r := recover(); r != nil {
			if _, isParseError := r.(*ParseError); !isParseError {
				panic(r)
			}
			p.current = saved
			ok = false
		}
	}()
	return rule(), true
}

func (p *Parser) makePos(tok token.Token) ast.Position {
	return ast.Position{
		Filename: p.filename,
		Offset:   tok.Position.Offset,
		Line:     tok.Position.Line,
		Column:   tok.Position.Column,
	}
}

func (p *Parser) makeEndPos(tok token.Token) ast.Position {
	end := tok.End()
	return ast.Position{
		Filename: p.filename,
		Offset:   end.Offset,
		Line:     end.Line,
		Column:   end.Column,
	}
}

// span covers start through the last consumed token.
func (p *Parser) span(start token.Token) ast.Span {
	return ast.Span{Pos: p.makePos(start), EndPos: p.makeEndPos(p.previous())}
}

// spanFrom covers a node that starts where another node starts.
func (p *Parser) spanFrom(first ast.Node) ast.Span {
	return ast.Span{Pos: first.NodePos(), EndPos: p.makeEndPos(p.previous())}
}

func (p *Parser) makeIdent(tok token.Token) *ast.Identifier {
	return &ast.Identifier{
		Span: ast.Span{Pos: p.makePos(tok), EndPos: p.makeEndPos(tok)},
		Name: tok.Lexeme,
	}
}

// isWord reports whether tok is spelled like an identifier, which is what
// member names and pragma names accept.
func isWord(tok token.Token) bool {
	if tok.Lexeme == "" {
		return false
	}
	c := tok.Lexeme[0]
	return isAlpha(c)
}

// parseIdentifierPath parses IDENT ("." IDENT)*.
func (p *Parser) parseIdentifierPath(message string) (string, token.Token) {
	first := p.consumeIdent(message)
	path := first.Lexeme
	for p.check(token.DOT) && p.peekAt(1).Type == token.IDENTIFIER {
		p.advance()
		path += "." + p.advance().Lexeme
	}
	return path, first
}

func (p *Parser) parseStorageLocation() *string {
	tok := p.peek()
	if tok.Type != token.IDENTIFIER {
		return nil
	}
	switch tok.Lexeme {
	case "memory", "storage", "calldata":
		p.advance()
		return ast.Str(tok.Lexeme)
	}
	return nil
}
