package parser

import (
	"solparse/ast"
	"solparse/token"
)

// parseTypeName parses an elementary, user-defined, mapping or function
// type followed by any number of array suffixes.
func (p *Parser) parseTypeName() ast.TypeName {
	var typeName ast.TypeName
	switch p.peek().Type {
	case token.TYPE_NAME:
		typeName = p.parseElementaryTypeName()
	case token.IDENTIFIER:
		typeName = p.parseUserDefinedTypeName()
	case token.MAPPING:
		typeName = p.parseMapping()
	case token.FUNCTION:
		typeName = p.parseFunctionTypeName()
	default:
		p.errorAtCurrent("expected type name")
	}
	return p.parseArraySuffixes(typeName)
}

func (p *Parser) parseArraySuffixes(base ast.TypeName) ast.TypeName {
	for p.match(token.LBRACKET) {
		var length ast.Expr
		if !p.check(token.RBRACKET) {
			length = p.parseExpression()
		}
		p.consume(token.RBRACKET, "expected ']' after array length")
		base = &ast.ArrayTypeName{
			Span:         p.spanFrom(base),
			BaseTypeName: base,
			Length:       length,
		}
	}
	return base
}

// parseElementaryTypeName accepts "address payable" as one type.
func (p *Parser) parseElementaryTypeName() *ast.ElementaryTypeName {
	tok := p.consume(token.TYPE_NAME, "expected elementary type name")
	typeName := &ast.ElementaryTypeName{Name: tok.Lexeme}
	if tok.Lexeme == "address" && p.match(token.PAYABLE) {
		typeName.StateMutability = ast.Str("payable")
	}
	typeName.Span = p.span(tok)
	return typeName
}

func (p *Parser) parseUserDefinedTypeName() *ast.UserDefinedTypeName {
	path, first := p.parseIdentifierPath("expected type name")
	return &ast.UserDefinedTypeName{Span: p.span(first), NamePath: path}
}

func (p *Parser) parseMapping() *ast.Mapping {
	start := p.consume(token.MAPPING, "expected 'mapping'")
	p.consume(token.LPAREN, "expected '(' after 'mapping'")

	var key ast.TypeName
	switch p.peek().Type {
	case token.TYPE_NAME:
		key = p.parseElementaryTypeName()
	case token.IDENTIFIER:
		key = p.parseUserDefinedTypeName()
	default:
		p.errorAtCurrent("expected mapping key type")
	}
	p.consume(token.ARROW, "expected '=>' in mapping type")
	value := p.parseTypeName()
	p.consume(token.RPAREN, "expected ')' to close mapping type")

	return &ast.Mapping{Span: p.span(start), KeyType: key, ValueType: value}
}

func (p *Parser) parseFunctionTypeName() *ast.FunctionTypeName {
	start := p.consume(token.FUNCTION, "expected 'function'")
	typeName := &ast.FunctionTypeName{
		ParameterTypes: p.parseParameterList(),
		Visibility:     ast.VisibilityDefault,
	}

specifiers:
	for {
		switch p.peek().Type {
		case token.INTERNAL, token.EXTERNAL:
			typeName.Visibility = p.advance().Lexeme
		case token.PURE, token.VIEW, token.PAYABLE, token.CONSTANT:
			typeName.StateMutability = ast.Str(p.advance().Lexeme)
		default:
			break specifiers
		}
	}

	if p.match(token.RETURNS) {
		typeName.ReturnTypes = p.parseParameterList()
	}
	typeName.Span = p.span(start)
	return typeName
}
