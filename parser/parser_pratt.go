package parser

import (
	"strings"

	"solparse/ast"
	"solparse/token"
)

var binaryPrecedence = map[string]int{
	"||": 1,
	"&&": 2,
	"==": 3, "!=": 3,
	"<": 4, "<=": 4, ">": 4, ">=": 4,
	"|":  5,
	"^":  6,
	"&":  7,
	"<<": 8, ">>": 8,
	"+": 9, "-": 9,
	"*": 10, "/": 10, "%": 10,
	"**": 11,
}

var assignmentOperators = map[token.TokenType]bool{
	token.ASSIGN:         true,
	token.PIPE_ASSIGN:    true,
	token.CARET_ASSIGN:   true,
	token.AMP_ASSIGN:     true,
	token.SHL_ASSIGN:     true,
	token.SHR_ASSIGN:     true,
	token.PLUS_ASSIGN:    true,
	token.MINUS_ASSIGN:   true,
	token.STAR_ASSIGN:    true,
	token.SLASH_ASSIGN:   true,
	token.PERCENT_ASSIGN: true,
}

var subdenominations = map[string]bool{
	"wei": true, "gwei": true, "szabo": true, "finney": true, "ether": true,
	"seconds": true, "minutes": true, "hours": true, "days": true, "weeks": true, "years": true,
}

func (p *Parser) parseExpression() ast.Expr {
	return p.parseAssignment()
}

// parseAssignment is right-associative: a = b = c is a = (b = c).
func (p *Parser) parseAssignment() ast.Expr {
	left := p.parseConditional()
	if assignmentOperators[p.peek().Type] {
		op := p.advance()
		right := p.parseAssignment()
		return &ast.BinaryOperation{
			Span:     ast.Span{Pos: left.NodePos(), EndPos: right.NodeEndPos()},
			Operator: op.Lexeme,
			Left:     left,
			Right:    right,
		}
	}
	return left
}

func (p *Parser) parseConditional() ast.Expr {
	condition := p.parsePrattExpr(1)
	if !p.match(token.QUESTION) {
		return condition
	}
	whenTrue := p.parseAssignment()
	p.consume(token.COLON, "expected ':' in conditional expression")
	whenFalse := p.parseAssignment()
	return &ast.Conditional{
		Span:            ast.Span{Pos: condition.NodePos(), EndPos: whenFalse.NodeEndPos()},
		Condition:       condition,
		TrueExpression:  whenTrue,
		FalseExpression: whenFalse,
	}
}

func (p *Parser) parsePrattExpr(minPrec int) ast.Expr {
	expr := p.parsePrefixExpr()

	for {
		tok := p.peek()
		prec, ok := binaryPrecedence[tok.Lexeme]
		if !ok || prec < minPrec {
			break
		}

		p.advance()
		next := prec + 1
		if tok.Type == token.STAR_STAR {
			next = prec
		}
		right := p.parsePrattExpr(next)

		expr = &ast.BinaryOperation{
			Span:     ast.Span{Pos: expr.NodePos(), EndPos: right.NodeEndPos()},
			Operator: tok.Lexeme,
			Left:     expr,
			Right:    right,
		}
	}

	return expr
}

func (p *Parser) parsePrefixExpr() ast.Expr {
	if p.match(token.BANG, token.TILDE, token.MINUS, token.PLUS, token.INCREMENT, token.DECREMENT, token.DELETE) {
		op := p.previous()
		value := p.parsePrefixExpr()
		return &ast.UnaryOperation{
			Span:          ast.Span{Pos: p.makePos(op), EndPos: value.NodeEndPos()},
			Operator:      op.Lexeme,
			SubExpression: value,
			IsPrefix:      true,
		}
	}

	return p.parsePostfixExpr(p.parsePrimaryExpr())
}

func (p *Parser) parsePostfixExpr(expr ast.Expr) ast.Expr {
	for {
		switch tok := p.peek(); tok.Type {
		case token.INCREMENT, token.DECREMENT:
			p.advance()
			expr = &ast.UnaryOperation{
				Span:          p.spanFrom(expr),
				Operator:      tok.Lexeme,
				SubExpression: expr,
			}
		case token.DOT:
			p.advance()
			member := p.peek()
			if !isWord(member) {
				p.errorAtCurrent("expected member name after '.'")
			}
			p.advance()
			expr = &ast.MemberAccess{
				Span:       p.spanFrom(expr),
				Expression: expr,
				MemberName: member.Lexeme,
			}
		case token.LPAREN:
			args, names := p.parseCallArguments()
			expr = &ast.FunctionCall{
				Span:       p.spanFrom(expr),
				Expression: expr,
				Arguments:  args,
				Names:      names,
			}
		case token.LBRACE:
			if !p.startsCallOptions() {
				return expr
			}
			expr = p.parseCallOptions(expr)
		case token.LBRACKET:
			expr = p.parseIndexSuffix(expr)
		default:
			return expr
		}
	}
}

// parseCallArguments parses a positional "(a, b)" or named "({x: a, y: b})"
// argument list. Names is empty, never nil, for positional arguments.
func (p *Parser) parseCallArguments() ([]ast.Expr, []string) {
	p.consume(token.LPAREN, "expected '(' to start arguments")
	args := []ast.Expr{}
	names := []string{}

	if p.check(token.LBRACE) {
		list := p.parseNameValueList()
		args, names = list.Arguments, list.Names
	} else if !p.check(token.RPAREN) {
		for {
			args = append(args, p.parseExpression())
			if !p.match(token.COMMA) {
				break
			}
		}
	}

	p.consume(token.RPAREN, "expected ')' after arguments")
	return args, names
}

// parseNameValueList parses "{name: value, ...}".
func (p *Parser) parseNameValueList() *ast.NameValueList {
	start := p.consume(token.LBRACE, "expected '{'")
	list := &ast.NameValueList{Names: []string{}, Arguments: []ast.Expr{}}
	for !p.check(token.RBRACE) {
		name := p.consumeIdent("expected argument name")
		p.consume(token.COLON, "expected ':' after argument name")
		list.Names = append(list.Names, name.Lexeme)
		list.Arguments = append(list.Arguments, p.parseExpression())
		if !p.match(token.COMMA) {
			break
		}
	}
	p.consume(token.RBRACE, "expected '}' to close argument list")
	list.Span = p.span(start)
	return list
}

// startsCallOptions distinguishes f{value: 1}(...) from a block that
// follows an expression, as in "try f() {".
func (p *Parser) startsCallOptions() bool {
	return p.peekAt(1).Type == token.IDENTIFIER && p.peekAt(2).Type == token.COLON
}

func (p *Parser) parseCallOptions(expr ast.Expr) ast.Expr {
	list := p.parseNameValueList()
	return &ast.NameValueExpression{
		Span:       p.spanFrom(expr),
		Expression: expr,
		Arguments:  list,
	}
}

// parseIndexSuffix handles a[i], a[start:end] and the type suffix a[].
func (p *Parser) parseIndexSuffix(base ast.Expr) ast.Expr {
	p.consume(token.LBRACKET, "expected '['")

	if p.match(token.RBRACKET) {
		array := &ast.ArrayTypeName{Span: p.spanFrom(base), BaseTypeName: typeNameOf(base)}
		return &ast.TypeNameExpression{Span: array.Span, TypeName: array}
	}

	var start ast.Expr
	if !p.check(token.COLON) {
		start = p.parseExpression()
	}
	if p.match(token.COLON) {
		var end ast.Expr
		if !p.check(token.RBRACKET) {
			end = p.parseExpression()
		}
		p.consume(token.RBRACKET, "expected ']' after index range")
		return &ast.IndexRangeAccess{Span: p.spanFrom(base), Base: base, IndexStart: start, IndexEnd: end}
	}

	p.consume(token.RBRACKET, "expected ']' after index")
	return &ast.IndexAccess{Span: p.spanFrom(base), Base: base, Index: start}
}

// typeNameOf converts the expression in front of "[]" into an array base:
// an identifier names a user-defined type, a type expression contributes
// its type, anything else (such as A.B) is kept as is.
func typeNameOf(expr ast.Expr) ast.Node {
	switch e := expr.(type) {
	case *ast.Identifier:
		return &ast.UserDefinedTypeName{Span: e.Span, NamePath: e.Name}
	case *ast.TypeNameExpression:
		return e.TypeName
	}
	return expr
}

func (p *Parser) parsePrimaryExpr() ast.Expr {
	tok := p.peek()
	switch tok.Type {
	case token.NUMBER, token.HEX_NUMBER:
		return p.parseNumberLiteral()
	case token.STRING:
		return p.parseStringLiteral()
	case token.HEX_STRING:
		p.advance()
		return &ast.HexLiteral{Span: p.span(tok), Value: tok.Lexeme}
	case token.TRUE, token.FALSE:
		p.advance()
		return &ast.BooleanLiteral{Span: p.span(tok), Value: tok.Type == token.TRUE}
	case token.IDENTIFIER:
		p.advance()
		return p.makeIdent(tok)
	case token.PAYABLE:
		// payable(x) converts to an address payable
		p.advance()
		return p.makeIdent(tok)
	case token.TYPE_NAME:
		p.advance()
		typeName := &ast.ElementaryTypeName{Span: p.span(tok), Name: tok.Lexeme}
		return &ast.TypeNameExpression{Span: typeName.Span, TypeName: typeName}
	case token.NEW:
		p.advance()
		typeName := p.parseTypeName()
		return &ast.NewExpression{Span: p.span(tok), TypeName: typeName}
	case token.LPAREN:
		return p.parseTupleExpression(token.LPAREN, token.RPAREN)
	case token.LBRACKET:
		return p.parseTupleExpression(token.LBRACKET, token.RBRACKET)
	}
	p.errorAtCurrent("expected expression")
	return nil
}

func (p *Parser) parseNumberLiteral() *ast.NumberLiteral {
	tok := p.advance()
	literal := &ast.NumberLiteral{Number: tok.Lexeme}
	if next := p.peek(); next.Type == token.IDENTIFIER && subdenominations[next.Lexeme] {
		p.advance()
		literal.Subdenomination = ast.Str(next.Lexeme)
	}
	literal.Span = p.span(tok)
	return literal
}

// parseStringLiteral joins adjacent string literals into one value.
func (p *Parser) parseStringLiteral() *ast.StringLiteral {
	first := p.peek()
	var value strings.Builder
	for p.check(token.STRING) {
		value.WriteString(stringValue(p.advance()))
	}
	return &ast.StringLiteral{Span: p.span(first), Value: value.String()}
}

// parseTupleExpression parses "(a, , b)" and "[a, b]". Parentheses always
// yield a tuple, even around a single expression. Elided components are nil;
// "()" has none.
func (p *Parser) parseTupleExpression(open, close token.TokenType) *ast.TupleExpression {
	start := p.consume(open, "expected '"+string(open)+"'")
	tuple := &ast.TupleExpression{Components: []ast.Expr{}, IsArray: open == token.LBRACKET}

	if !p.check(close) {
		for {
			if p.check(token.COMMA) || p.check(close) {
				tuple.Components = append(tuple.Components, nil)
			} else {
				tuple.Components = append(tuple.Components, p.parseExpression())
			}
			if !p.match(token.COMMA) {
				break
			}
		}
	}

	p.consume(close, "expected '"+string(close)+"' to close tuple")
	tuple.Span = p.span(start)
	return tuple
}

// stringValue strips the quotes and the optional unicode prefix.
func stringValue(tok token.Token) string {
	return unquote(strings.TrimPrefix(tok.Lexeme, "unicode"))
}

// unquote removes the delimiting quotes and unescapes the delimiter only.
// Other escapes stay as written.
func unquote(text string) string {
	if len(text) < 2 {
		return text
	}
	quote := text[:1]
	return strings.ReplaceAll(text[1:len(text)-1], `\`+quote, quote)
}
