package parser

import (
	"strings"

	"solparse/ast"
	"solparse/internal/natspec"
	"solparse/internal/semantic"
	"solparse/token"
)

func (p *Parser) parseSourceUnitPart() ast.Node {
	tok := p.peek()
	switch tok.Type {
	case token.PRAGMA:
		return p.parsePragma()
	case token.IMPORT:
		return p.parseImport()
	case token.ABSTRACT, token.CONTRACT, token.INTERFACE, token.LIBRARY:
		return p.parseContract()
	case token.STRUCT:
		return p.parseStruct()
	case token.ENUM:
		return p.parseEnum()
	case token.EVENT:
		return p.parseEvent()
	case token.USING:
		return p.parseUsingFor()
	case token.FUNCTION:
		return p.parseFunction()
	case token.IDENTIFIER:
		if p.startsCustomError() {
			return p.parseCustomError()
		}
		return p.parseStateVariable()
	case token.TYPE_NAME, token.MAPPING:
		return p.parseStateVariable()
	}
	p.errorAtCurrent("expected pragma, import directive or contract definition")
	return nil
}

// parsePragma keeps the value as written, up to the semicolon.
func (p *Parser) parsePragma() *ast.PragmaDirective {
	start := p.consume(token.PRAGMA, "expected 'pragma'")
	name := p.peek()
	if !isWord(name) {
		p.errorAtCurrent("expected pragma name")
	}
	p.advance()
	for !p.check(token.SEMICOLON) && !p.isAtEnd() {
		p.advance()
	}
	end := p.consume(token.SEMICOLON, "expected ';' after pragma directive")
	return &ast.PragmaDirective{
		Span:  p.span(start),
		Name:  name.Lexeme,
		Value: strings.TrimSpace(p.source[name.End().Offset:end.Position.Offset]),
	}
}

func (p *Parser) parseImport() *ast.ImportDirective {
	start := p.consume(token.IMPORT, "expected 'import'")
	directive := &ast.ImportDirective{}

	switch {
	case p.check(token.STRING):
		directive.Path = stringValue(p.advance())
		if p.matchWord("as") {
			directive.UnitAlias = ast.Str(p.consumeIdent("expected alias after 'as'").Lexeme)
		}
	case p.match(token.STAR):
		p.consumeWord("as", "expected 'as' after '*'")
		directive.UnitAlias = ast.Str(p.consumeIdent("expected alias after 'as'").Lexeme)
		directive.Path = p.parseImportFrom()
	case p.match(token.LBRACE):
		for {
			alias := ast.SymbolAlias{Symbol: p.consumeIdent("expected imported symbol").Lexeme}
			if p.matchWord("as") {
				alias.Alias = ast.Str(p.consumeIdent("expected alias after 'as'").Lexeme)
			}
			directive.SymbolAliases = append(directive.SymbolAliases, alias)
			if !p.match(token.COMMA) {
				break
			}
		}
		p.consume(token.RBRACE, "expected '}' to close import list")
		directive.Path = p.parseImportFrom()
	default:
		p.errorAtCurrent("expected import path, '*' or '{'")
	}

	p.consume(token.SEMICOLON, "expected ';' after import directive")
	directive.Span = p.span(start)
	return directive
}

func (p *Parser) parseImportFrom() string {
	p.consumeWord("from", "expected 'from' in import directive")
	return stringValue(p.consume(token.STRING, "expected import path"))
}

func (p *Parser) parseContract() *ast.ContractDefinition {
	first := p.peek()
	contract := &ast.ContractDefinition{Natspec: natspec.Extract(first.Leading)}
	contract.IsAbstract = p.match(token.ABSTRACT)

	switch kind := p.peek(); kind.Type {
	case token.CONTRACT, token.INTERFACE, token.LIBRARY:
		contract.Kind = p.advance().Lexeme
	default:
		p.errorAtCurrent("expected 'contract', 'interface' or 'library'")
	}
	contract.Name = p.consumeIdent("expected contract name").Lexeme

	if p.match(token.IS) {
		for {
			contract.BaseContracts = append(contract.BaseContracts, p.parseInheritanceSpecifier())
			if !p.match(token.COMMA) {
				break
			}
		}
	}

	p.consume(token.LBRACE, "expected '{' to start contract body")
	for !p.check(token.RBRACE) && !p.isAtEnd() {
		contract.SubNodes = append(contract.SubNodes, p.parseContractPart())
	}
	p.consume(token.RBRACE, "expected '}' to close contract body")

	contract.Span = p.span(first)
	log.Debugf("parsed %s %s with %d members", contract.Kind, contract.Name, len(contract.SubNodes))
	return contract
}

func (p *Parser) parseInheritanceSpecifier() *ast.InheritanceSpecifier {
	first := p.peek()
	spec := &ast.InheritanceSpecifier{BaseName: p.parseUserDefinedTypeName()}
	if p.check(token.LPAREN) {
		spec.Arguments, _ = p.parseCallArguments()
	}
	spec.Span = p.span(first)
	return spec
}

func (p *Parser) parseContractPart() ast.Node {
	tok := p.peek()
	switch tok.Type {
	case token.USING:
		return p.parseUsingFor()
	case token.STRUCT:
		return p.parseStruct()
	case token.ENUM:
		return p.parseEnum()
	case token.EVENT:
		return p.parseEvent()
	case token.MODIFIER:
		return p.parseModifier()
	case token.CONSTRUCTOR:
		return p.parseFunction()
	case token.FUNCTION:
		// a function-typed state variable also starts with "function"
		if decl, ok := try(p, p.parseStateVariable); ok {
			return decl
		}
		return p.parseFunction()
	case token.IDENTIFIER:
		if (tok.Lexeme == "fallback" || tok.Lexeme == "receive") && p.peekAt(1).Type == token.LPAREN {
			return p.parseFunction()
		}
		if p.startsCustomError() {
			return p.parseCustomError()
		}
	}
	return p.parseStateVariable()
}

func (p *Parser) startsCustomError() bool {
	return p.checkWord("error") &&
		p.peekAt(1).Type == token.IDENTIFIER &&
		p.peekAt(2).Type == token.LPAREN
}

func (p *Parser) parseStateVariable() *ast.StateVariableDeclaration {
	first := p.peek()
	typeName := p.parseTypeName()
	variable := &ast.VariableDeclaration{
		Context:    ast.VarState,
		TypeName:   typeName,
		IsStateVar: true,
		Visibility: ast.VisibilityDefault,
	}

specifiers:
	for {
		switch tok := p.peek(); tok.Type {
		case token.PUBLIC, token.PRIVATE, token.INTERNAL:
			variable.Visibility = p.advance().Lexeme
		case token.CONSTANT:
			p.advance()
			variable.IsDeclaredConst = true
		case token.IMMUTABLE:
			p.advance()
			variable.IsImmutable = true
		case token.OVERRIDE:
			variable.Override = p.parseOverride()
		default:
			break specifiers
		}
	}

	name := p.consumeIdent("expected state variable name")
	variable.Name = ast.Str(name.Lexeme)
	variable.Span = ast.Span{Pos: typeName.NodePos(), EndPos: p.makeEndPos(name)}

	if p.match(token.ASSIGN) {
		variable.Expression = p.parseExpression()
	}
	p.consume(token.SEMICOLON, "expected ';' after state variable declaration")

	return &ast.StateVariableDeclaration{
		Span:         p.span(first),
		Variables:    []*ast.VariableDeclaration{variable},
		InitialValue: variable.Expression,
		Natspec:      natspec.Extract(first.Leading),
	}
}

// parseOverride parses "override" with an optional list of base names.
// A bare override yields an empty, non-nil list.
func (p *Parser) parseOverride() []*ast.UserDefinedTypeName {
	p.consume(token.OVERRIDE, "expected 'override'")
	bases := []*ast.UserDefinedTypeName{}
	if p.match(token.LPAREN) {
		for {
			bases = append(bases, p.parseUserDefinedTypeName())
			if !p.match(token.COMMA) {
				break
			}
		}
		p.consume(token.RPAREN, "expected ')' to close override list")
	}
	return bases
}

func (p *Parser) parseUsingFor() *ast.UsingForDeclaration {
	start := p.consume(token.USING, "expected 'using'")
	library, _ := p.parseIdentifierPath("expected library name after 'using'")
	p.consume(token.FOR, "expected 'for' after library name")

	decl := &ast.UsingForDeclaration{LibraryName: library}
	if !p.match(token.STAR) {
		decl.TypeName = p.parseTypeName()
	}
	p.consume(token.SEMICOLON, "expected ';' after using directive")
	decl.Span = p.span(start)
	return decl
}

func (p *Parser) parseStruct() *ast.StructDefinition {
	start := p.consume(token.STRUCT, "expected 'struct'")
	def := &ast.StructDefinition{
		Natspec: natspec.Extract(start.Leading),
		Name:    p.consumeIdent("expected struct name").Lexeme,
	}

	p.consume(token.LBRACE, "expected '{' after struct name")
	for !p.check(token.RBRACE) && !p.isAtEnd() {
		typeName := p.parseTypeName()
		name := p.consumeIdent("expected struct member name")
		def.Members = append(def.Members, &ast.VariableDeclaration{
			Span:     ast.Span{Pos: typeName.NodePos(), EndPos: p.makeEndPos(name)},
			Context:  ast.VarLocal,
			TypeName: typeName,
			Name:     ast.Str(name.Lexeme),
		})
		p.consume(token.SEMICOLON, "expected ';' after struct member")
	}
	p.consume(token.RBRACE, "expected '}' to close struct")

	def.Span = p.span(start)
	return def
}

func (p *Parser) parseEnum() *ast.EnumDefinition {
	start := p.consume(token.ENUM, "expected 'enum'")
	def := &ast.EnumDefinition{Name: p.consumeIdent("expected enum name").Lexeme}

	p.consume(token.LBRACE, "expected '{' after enum name")
	for {
		member := p.consumeIdent("expected enum member")
		def.Members = append(def.Members, &ast.EnumValue{
			Span: ast.Span{Pos: p.makePos(member), EndPos: p.makeEndPos(member)},
			Name: member.Lexeme,
		})
		if !p.match(token.COMMA) {
			break
		}
	}
	p.consume(token.RBRACE, "expected '}' to close enum")

	def.Span = p.span(start)
	return def
}

func (p *Parser) parseEvent() *ast.EventDefinition {
	start := p.consume(token.EVENT, "expected 'event'")
	def := &ast.EventDefinition{
		Natspec: natspec.Extract(start.Leading),
		Name:    p.consumeIdent("expected event name").Lexeme,
	}

	p.consume(token.LPAREN, "expected '(' after event name")
	def.Parameters = []*ast.VariableDeclaration{}
	if !p.check(token.RPAREN) {
		for {
			def.Parameters = append(def.Parameters, p.parseEventParameter())
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	p.consume(token.RPAREN, "expected ')' to close event parameters")

	def.IsAnonymous = p.match(token.ANONYMOUS)
	p.consume(token.SEMICOLON, "expected ';' after event definition")
	def.Span = p.span(start)
	return def
}

func (p *Parser) parseEventParameter() *ast.VariableDeclaration {
	typeName := p.parseTypeName()
	param := &ast.VariableDeclaration{Context: ast.VarEvent, TypeName: typeName}
	param.IsIndexed = p.match(token.INDEXED)
	if p.check(token.IDENTIFIER) {
		param.Name = ast.Str(p.advance().Lexeme)
	}
	param.Span = p.spanFrom(typeName)
	return param
}

func (p *Parser) parseCustomError() *ast.CustomErrorDefinition {
	start := p.consumeWord("error", "expected 'error'")
	def := &ast.CustomErrorDefinition{Name: p.consumeIdent("expected error name").Lexeme}
	def.Parameters = p.parseParameterList()
	p.consume(token.SEMICOLON, "expected ';' after error definition")
	def.Span = p.span(start)
	return def
}

func (p *Parser) parseModifier() *ast.ModifierDefinition {
	start := p.consume(token.MODIFIER, "expected 'modifier'")
	def := &ast.ModifierDefinition{
		Natspec: natspec.Extract(start.Leading),
		Name:    p.consumeIdent("expected modifier name").Lexeme,
	}
	if p.check(token.LPAREN) {
		def.Parameters = p.parseParameterList()
	}

specifiers:
	for {
		switch p.peek().Type {
		case token.VIRTUAL:
			p.advance()
			def.IsVirtual = true
		case token.OVERRIDE:
			def.Override = p.parseOverride()
		default:
			break specifiers
		}
	}

	if !p.match(token.SEMICOLON) {
		def.Body = p.parseBlock()
	}
	def.Span = p.span(start)
	return def
}

// parseFunction handles named functions, constructors, the fallback and
// receive keyword forms and the unnamed legacy fallback "function () ...".
func (p *Parser) parseFunction() *ast.FunctionDefinition {
	first := p.peek()
	fn := &ast.FunctionDefinition{
		Natspec:    natspec.Extract(first.Leading),
		Visibility: ast.VisibilityDefault,
	}

	switch {
	case p.match(token.CONSTRUCTOR):
		fn.IsConstructor = true
	case p.matchWord("fallback"):
		fn.IsFallback = true
	case p.matchWord("receive"):
		fn.IsReceiveEther = true
	default:
		p.consume(token.FUNCTION, "expected 'function'")
		if p.check(token.LPAREN) {
			fn.Name = ast.Str("")
			fn.IsFallback = true
		} else {
			fn.Name = ast.Str(p.consumeIdent("expected function name").Lexeme)
		}
	}

	fn.Parameters = p.parseParameterList()

specifiers:
	for {
		switch tok := p.peek(); tok.Type {
		case token.PUBLIC, token.PRIVATE, token.INTERNAL, token.EXTERNAL:
			fn.Visibility = p.advance().Lexeme
		case token.PURE, token.VIEW, token.PAYABLE, token.CONSTANT:
			fn.StateMutability = ast.Str(p.advance().Lexeme)
		case token.VIRTUAL:
			p.advance()
			fn.IsVirtual = true
		case token.OVERRIDE:
			fn.Override = p.parseOverride()
		case token.IDENTIFIER:
			fn.Modifiers = append(fn.Modifiers, p.parseModifierInvocation())
		default:
			break specifiers
		}
	}

	if p.match(token.RETURNS) {
		fn.ReturnParameters = p.parseParameterList()
	}
	if !p.match(token.SEMICOLON) {
		fn.Body = p.parseBlock()
	}
	fn.Span = p.span(first)

	if fn.IsFallback || fn.IsReceiveEther {
		if err := semantic.ValidateFunction(fn); err != nil {
			panic(semanticError(err))
		}
	}
	return fn
}

// parseModifierInvocation leaves Arguments nil when no parentheses follow.
func (p *Parser) parseModifierInvocation() *ast.ModifierInvocation {
	first := p.peek()
	name, _ := p.parseIdentifierPath("expected modifier name")
	invocation := &ast.ModifierInvocation{Name: name}
	if p.check(token.LPAREN) {
		invocation.Arguments, _ = p.parseCallArguments()
	}
	invocation.Span = p.span(first)
	return invocation
}

// parseParameterList parses "( (param ("," param)*)? )". The result is
// never nil.
func (p *Parser) parseParameterList() []*ast.VariableDeclaration {
	p.consume(token.LPAREN, "expected '(' to start parameter list")
	params := []*ast.VariableDeclaration{}
	if !p.check(token.RPAREN) {
		for {
			params = append(params, p.parseParameter())
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	p.consume(token.RPAREN, "expected ')' to close parameter list")
	return params
}

func (p *Parser) parseParameter() *ast.VariableDeclaration {
	typeName := p.parseTypeName()
	param := &ast.VariableDeclaration{
		Context:         ast.VarLocal,
		TypeName:        typeName,
		StorageLocation: p.parseStorageLocation(),
	}
	if p.check(token.IDENTIFIER) {
		param.Name = ast.Str(p.advance().Lexeme)
	}
	param.Span = p.spanFrom(typeName)
	return param
}
