package parser

import (
	"solparse/ast"
	"solparse/token"
)

func (p *Parser) parseBlock() *ast.Block {
	start := p.consume(token.LBRACE, "expected '{' to start block")
	block := &ast.Block{}
	for !p.check(token.RBRACE) && !p.isAtEnd() {
		block.Statements = append(block.Statements, p.parseStatement())
	}
	p.consume(token.RBRACE, "expected '}' to close block")
	block.Span = p.span(start)
	return block
}

func (p *Parser) parseStatement() ast.Stmt {
	tok := p.peek()
	switch tok.Type {
	case token.LBRACE:
		return p.parseBlock()
	case token.IF:
		return p.parseIfStatement()
	case token.WHILE:
		return p.parseWhileStatement()
	case token.DO:
		return p.parseDoWhileStatement()
	case token.FOR:
		return p.parseForStatement()
	case token.RETURN:
		return p.parseReturnStatement()
	case token.THROW:
		p.advance()
		p.consume(token.SEMICOLON, "expected ';' after 'throw'")
		return &ast.ThrowStatement{Span: p.span(tok)}
	case token.BREAK:
		p.advance()
		p.consume(token.SEMICOLON, "expected ';' after 'break'")
		return &ast.BreakStatement{Span: p.span(tok)}
	case token.CONTINUE:
		p.advance()
		p.consume(token.SEMICOLON, "expected ';' after 'continue'")
		return &ast.ContinueStatement{Span: p.span(tok)}
	case token.EMIT:
		return p.parseEmitStatement()
	case token.TRY:
		return p.parseTryStatement()
	case token.ASSEMBLY:
		return p.parseInlineAssembly()
	case token.UNCHECKED:
		p.advance()
		block := p.parseBlock()
		return &ast.UncheckedStatement{Span: p.span(tok), Block: block}
	case token.IDENTIFIER:
		if tok.Lexeme == "revert" && p.peekAt(1).Type == token.IDENTIFIER {
			return p.parseRevertStatement()
		}
	}
	return p.parseSimpleStatement()
}

// parseSimpleStatement parses a variable declaration or an expression
// statement, including the trailing semicolon. A declaration head is tried
// first; once it matches, the rest of the declaration is committed.
func (p *Parser) parseSimpleStatement() ast.Stmt {
	first := p.peek()
	switch first.Type {
	case token.LPAREN:
		if variables, ok := try(p, p.parseTupleDeclarationHead); ok {
			return p.finishVariableDeclaration(first, variables, true)
		}
	case token.TYPE_NAME, token.IDENTIFIER, token.MAPPING, token.FUNCTION:
		if first.Lexeme == "var" && p.peekAt(1).Type == token.LPAREN {
			return p.finishVariableDeclaration(first, p.parseVarTupleHead(), true)
		}
		if variable, ok := try(p, p.parseLocalVariable); ok {
			return p.finishVariableDeclaration(first, []*ast.VariableDeclaration{variable}, false)
		}
	}
	return p.parseExpressionStatement()
}

func (p *Parser) parseExpressionStatement() *ast.ExpressionStatement {
	expr := p.parseExpression()
	p.consume(token.SEMICOLON, "expected ';' after expression")
	return &ast.ExpressionStatement{Span: p.spanFrom(expr), Expression: expr}
}

// parseLocalVariable parses "type location? name".
func (p *Parser) parseLocalVariable() *ast.VariableDeclaration {
	typeName := p.parseTypeName()
	variable := &ast.VariableDeclaration{
		Context:         ast.VarLocal,
		TypeName:        typeName,
		StorageLocation: p.parseStorageLocation(),
	}
	variable.Name = ast.Str(p.consumeIdent("expected variable name").Lexeme)
	variable.Span = p.spanFrom(typeName)
	return variable
}

// finishVariableDeclaration parses the optional initializer and the
// semicolon. Tuple declarations require the initializer.
func (p *Parser) finishVariableDeclaration(first token.Token, variables []*ast.VariableDeclaration, tuple bool) *ast.VariableDeclarationStatement {
	stmt := &ast.VariableDeclarationStatement{Variables: variables}
	if tuple {
		p.consume(token.ASSIGN, "expected '=' after variable list")
		stmt.InitialValue = p.parseExpression()
	} else if p.match(token.ASSIGN) {
		stmt.InitialValue = p.parseExpression()
	}
	p.consume(token.SEMICOLON, "expected ';' after variable declaration")
	stmt.Span = p.span(first)
	return stmt
}

// parseTupleDeclarationHead parses "(T a,, T b) =" up to the closing
// parenthesis and checks that '=' follows. Empty slots are nil.
func (p *Parser) parseTupleDeclarationHead() []*ast.VariableDeclaration {
	p.consume(token.LPAREN, "expected '('")
	var variables []*ast.VariableDeclaration
	for {
		if p.check(token.COMMA) || p.check(token.RPAREN) {
			variables = append(variables, nil)
		} else {
			variables = append(variables, p.parseLocalVariable())
		}
		if !p.match(token.COMMA) {
			break
		}
	}
	p.consume(token.RPAREN, "expected ')' to close variable list")
	if !p.check(token.ASSIGN) {
		p.errorAtCurrent("expected '=' after variable list")
	}
	return variables
}

// parseVarTupleHead parses "var (a,, b)". The declared variables carry no
// type.
func (p *Parser) parseVarTupleHead() []*ast.VariableDeclaration {
	p.advance()
	p.consume(token.LPAREN, "expected '(' after 'var'")
	var variables []*ast.VariableDeclaration
	for {
		if p.check(token.IDENTIFIER) {
			name := p.advance()
			variables = append(variables, &ast.VariableDeclaration{
				Span:    ast.Span{Pos: p.makePos(name), EndPos: p.makeEndPos(name)},
				Context: ast.VarLocal,
				Name:    ast.Str(name.Lexeme),
			})
		} else {
			variables = append(variables, nil)
		}
		if !p.match(token.COMMA) {
			break
		}
	}
	p.consume(token.RPAREN, "expected ')' to close variable list")
	return variables
}

func (p *Parser) parseIfStatement() *ast.IfStatement {
	start := p.consume(token.IF, "expected 'if'")
	p.consume(token.LPAREN, "expected '(' after 'if'")
	stmt := &ast.IfStatement{Condition: p.parseExpression()}
	p.consume(token.RPAREN, "expected ')' after if condition")
	stmt.TrueBody = p.parseStatement()
	if p.match(token.ELSE) {
		stmt.FalseBody = p.parseStatement()
	}
	stmt.Span = p.span(start)
	return stmt
}

func (p *Parser) parseWhileStatement() *ast.WhileStatement {
	start := p.consume(token.WHILE, "expected 'while'")
	p.consume(token.LPAREN, "expected '(' after 'while'")
	stmt := &ast.WhileStatement{Condition: p.parseExpression()}
	p.consume(token.RPAREN, "expected ')' after while condition")
	stmt.Body = p.parseStatement()
	stmt.Span = p.span(start)
	return stmt
}

func (p *Parser) parseDoWhileStatement() *ast.DoWhileStatement {
	start := p.consume(token.DO, "expected 'do'")
	stmt := &ast.DoWhileStatement{Body: p.parseStatement()}
	p.consume(token.WHILE, "expected 'while' after do body")
	p.consume(token.LPAREN, "expected '(' after 'while'")
	stmt.Condition = p.parseExpression()
	p.consume(token.RPAREN, "expected ')' after while condition")
	p.consume(token.SEMICOLON, "expected ';' after do-while statement")
	stmt.Span = p.span(start)
	return stmt
}

func (p *Parser) parseForStatement() *ast.ForStatement {
	start := p.consume(token.FOR, "expected 'for'")
	p.consume(token.LPAREN, "expected '(' after 'for'")
	stmt := &ast.ForStatement{}

	if !p.match(token.SEMICOLON) {
		stmt.InitExpression = p.parseSimpleStatement()
	}
	if !p.check(token.SEMICOLON) {
		stmt.ConditionExpression = p.parseExpression()
	}
	p.consume(token.SEMICOLON, "expected ';' after for condition")
	if !p.check(token.RPAREN) {
		loop := p.parseExpression()
		stmt.LoopExpression = &ast.ExpressionStatement{Span: p.spanFrom(loop), Expression: loop}
	}
	p.consume(token.RPAREN, "expected ')' after for clauses")

	stmt.Body = p.parseStatement()
	stmt.Span = p.span(start)
	return stmt
}

func (p *Parser) parseReturnStatement() *ast.ReturnStatement {
	start := p.consume(token.RETURN, "expected 'return'")
	stmt := &ast.ReturnStatement{}
	if !p.check(token.SEMICOLON) {
		stmt.Expression = p.parseExpression()
	}
	p.consume(token.SEMICOLON, "expected ';' after return statement")
	stmt.Span = p.span(start)
	return stmt
}

func (p *Parser) parseEmitStatement() *ast.EmitStatement {
	start := p.consume(token.EMIT, "expected 'emit'")
	call := p.parseEventCall("expected event call after 'emit'")
	p.consume(token.SEMICOLON, "expected ';' after emit statement")
	return &ast.EmitStatement{Span: p.span(start), EventCall: call}
}

// parseRevertStatement parses "revert CustomError(args);". A plain
// "revert(...)" call is an ordinary expression statement.
func (p *Parser) parseRevertStatement() *ast.RevertStatement {
	start := p.consumeWord("revert", "expected 'revert'")
	call := p.parseEventCall("expected error call after 'revert'")
	p.consume(token.SEMICOLON, "expected ';' after revert statement")
	return &ast.RevertStatement{Span: p.span(start), RevertCall: call}
}

func (p *Parser) parseEventCall(message string) *ast.FunctionCall {
	first := p.peek()
	call, ok := p.parseExpression().(*ast.FunctionCall)
	if !ok {
		p.errorAt(first, message)
	}
	return call
}

func (p *Parser) parseTryStatement() *ast.TryStatement {
	start := p.consume(token.TRY, "expected 'try'")
	stmt := &ast.TryStatement{Expression: p.parseExpression()}
	if p.match(token.RETURNS) {
		stmt.ReturnParameters = p.parseParameterList()
	}
	stmt.Body = p.parseBlock()

	for p.check(token.CATCH) {
		stmt.CatchClauses = append(stmt.CatchClauses, p.parseCatchClause())
	}
	if len(stmt.CatchClauses) == 0 {
		p.errorAtCurrent("expected 'catch' after try block")
	}
	stmt.Span = p.span(start)
	return stmt
}

// parseCatchClause marks "catch Error(...)" as the reason-string form and
// records any other clause name, such as Panic, in Kind.
func (p *Parser) parseCatchClause() *ast.CatchClause {
	start := p.consume(token.CATCH, "expected 'catch'")
	clause := &ast.CatchClause{}
	if p.check(token.IDENTIFIER) {
		name := p.advance().Lexeme
		if name == "Error" {
			clause.IsReasonStringType = true
		} else {
			clause.Kind = ast.Str(name)
		}
	}
	if p.check(token.LPAREN) {
		clause.Parameters = p.parseParameterList()
	}
	clause.Body = p.parseBlock()
	clause.Span = p.span(start)
	return clause
}
