package parser

import (
	"errors"

	"github.com/alecthomas/participle/v2/lexer"

	"solparse/ast"
	"solparse/grammar"
	diag "solparse/internal/errors"
	"solparse/token"
)

// ParseAssembly parses a single inline assembly item, such as "let x := 1"
// or "mload(0x40)". Anything after the first item is an error.
func ParseAssembly(source string, opts ...Option) (node ast.Node, err error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	p := NewParser(o.filename, source, nil)
	defer guard(&err)

	// The braces are not part of the caller's text: shift positions back
	// by the opening brace.
	block := p.parseAssemblyBlock("{"+source+"\n}", token.Position{Line: 1, Column: 0, Offset: -1})
	if len(block.Operations) == 0 {
		panic(&ParseError{
			Kind:     SyntaxError,
			Code:     diag.ErrorAssemblySyntax,
			Message:  "expected assembly item",
			Position: ast.Position{Filename: o.filename, Line: 1, Column: 1},
			Length:   1,
		})
	}
	if len(block.Operations) > 1 {
		pos := block.Operations[1].NodePos()
		panic(&ParseError{
			Kind:     SyntaxError,
			Code:     diag.ErrorAssemblySyntax,
			Message:  "expected end of input after assembly item",
			Position: pos,
			Length:   1,
		})
	}
	return block.Operations[0], nil
}

// parseInlineAssembly hands the text of the braced block to the assembly
// grammar. Only the token stream is used to find the closing brace.
func (p *Parser) parseInlineAssembly() *ast.InlineAssemblyStatement {
	start := p.consume(token.ASSEMBLY, "expected 'assembly'")
	stmt := &ast.InlineAssemblyStatement{}
	if p.check(token.STRING) {
		stmt.Language = ast.Str(stringValue(p.advance()))
	}

	open := p.consume(token.LBRACE, "expected '{' after 'assembly'")
	depth := 1
	for depth > 0 {
		if p.isAtEnd() {
			panic(&ParseError{
				Kind:     SyntaxError,
				Code:     diag.ErrorAssemblySyntax,
				Message:  "unterminated assembly block",
				Position: p.makePos(open),
				Length:   1,
				Lexeme:   open.Lexeme,
			})
		}
		switch p.advance().Type {
		case token.LBRACE:
			depth++
		case token.RBRACE:
			depth--
		}
	}
	closing := p.previous()

	text := p.source[open.Position.Offset : closing.Position.Offset+1]
	stmt.Body = p.parseAssemblyBlock(text, open.Position)
	stmt.Span = p.span(start)
	return stmt
}

func (p *Parser) parseAssemblyBlock(text string, base token.Position) *ast.AssemblyBlock {
	c := &assemblyConverter{filename: p.filename, base: base}
	block, err := grammar.ParseBlock(p.filename, text)
	if err != nil {
		pe := &ParseError{
			Kind:     SyntaxError,
			Code:     diag.ErrorAssemblySyntax,
			Message:  err.Error(),
			Position: c.pos(lexer.Position{Line: 1, Column: 1}),
			Length:   1,
		}
		var ge *grammar.Error
		if errors.As(err, &ge) {
			pe.Message = "invalid inline assembly: " + ge.Message
			pe.Position = c.pos(ge.Pos)
		}
		panic(pe)
	}
	log.Debugf("parsed inline assembly block with %d items", len(block.Items))
	return c.block(block)
}

// assemblyConverter turns the assembly grammar tree into ast nodes and
// moves its positions, which are relative to the block text, onto the
// enclosing source.
type assemblyConverter struct {
	filename string
	base     token.Position
}

func (c *assemblyConverter) pos(pos lexer.Position) ast.Position {
	column := pos.Column
	if pos.Line == 1 {
		column += c.base.Column - 1
	}
	return ast.Position{
		Filename: c.filename,
		Offset:   pos.Offset + c.base.Offset,
		Line:     pos.Line + c.base.Line - 1,
		Column:   column,
	}
}

// after returns the position just past text starting at pos. Assembly
// tokens never span lines.
func (c *assemblyConverter) after(pos lexer.Position, text string) ast.Position {
	end := c.pos(pos)
	end.Offset += len(text)
	end.Column += len(text)
	return end
}

func (c *assemblyConverter) block(b *grammar.Block) *ast.AssemblyBlock {
	block := &ast.AssemblyBlock{
		Span: ast.Span{Pos: c.pos(b.Pos), EndPos: c.after(b.Close.Pos, "}")},
	}
	for _, item := range b.Items {
		block.Operations = append(block.Operations, c.item(item))
	}
	return block
}

func (c *assemblyConverter) item(item *grammar.Item) ast.Node {
	start := c.pos(item.Pos)
	switch {
	case item.Block != nil:
		return c.block(item.Block)

	case item.Let != nil:
		def := &ast.AssemblyLocalDefinition{Names: c.identifiers(item.Let.Names)}
		end := def.Names[len(def.Names)-1].EndPos
		if item.Let.Value != nil {
			def.Expression = c.expression(item.Let.Value)
			end = def.Expression.NodeEndPos()
		}
		def.Span = ast.Span{Pos: start, EndPos: end}
		return def

	case item.Assignment != nil:
		assign := &ast.AssemblyAssignment{
			Names:      c.identifiers(item.Assignment.Names),
			Expression: c.expression(item.Assignment.Value),
		}
		assign.Span = ast.Span{Pos: start, EndPos: assign.Expression.NodeEndPos()}
		return assign

	case item.Function != nil:
		fn := item.Function
		def := &ast.AssemblyFunctionDefinition{
			Name:            fn.Name.Value,
			Arguments:       c.identifiers(fn.Params),
			ReturnArguments: c.identifiers(fn.Returns),
			Body:            c.block(fn.Body),
		}
		def.Span = ast.Span{Pos: start, EndPos: def.Body.EndPos}
		return def

	case item.If != nil:
		stmt := &ast.AssemblyIf{
			Condition: c.expression(item.If.Condition),
			Body:      c.block(item.If.Body),
		}
		stmt.Span = ast.Span{Pos: start, EndPos: stmt.Body.EndPos}
		return stmt

	case item.For != nil:
		loop := &ast.AssemblyFor{
			Pre:       c.forPart(item.For.Pre),
			Condition: c.expression(item.For.Condition),
			Post:      c.forPart(item.For.Post),
			Body:      c.block(item.For.Body),
		}
		loop.Span = ast.Span{Pos: start, EndPos: loop.Body.EndPos}
		return loop

	case item.Switch != nil:
		return c.switchItem(start, item.Switch)

	case item.Break:
		return &ast.AssemblyBreak{Span: ast.Span{Pos: start, EndPos: c.after(item.Pos, "break")}}
	case item.Continue:
		return &ast.AssemblyContinue{Span: ast.Span{Pos: start, EndPos: c.after(item.Pos, "continue")}}
	case item.Leave:
		return &ast.AssemblyLeave{Span: ast.Span{Pos: start, EndPos: c.after(item.Pos, "leave")}}

	case item.StackAssign != nil:
		return &ast.AssemblyStackAssignment{
			Span: ast.Span{Pos: start, EndPos: c.after(item.StackAssign.Pos, item.StackAssign.Value)},
			Name: item.StackAssign.Value,
		}

	case item.Label != nil:
		return &ast.LabelDefinition{
			Span: ast.Span{Pos: start, EndPos: c.after(item.Label.Colon.Pos, ":")},
			Name: item.Label.Name.Value,
		}
	}
	return c.expression(item.Expression)
}

func (c *assemblyConverter) forPart(part *grammar.ForPart) ast.Node {
	if part.Block != nil {
		return c.block(part.Block)
	}
	return c.expression(part.Expression)
}

// switchItem places the default case, if any, after the value cases.
func (c *assemblyConverter) switchItem(start ast.Position, s *grammar.Switch) *ast.AssemblySwitch {
	sw := &ast.AssemblySwitch{Expression: c.expression(s.Expression)}
	var fallback *ast.AssemblyCase
	end := sw.Expression.NodeEndPos()
	for _, cs := range s.Cases {
		converted := &ast.AssemblyCase{Block: c.block(cs.Body), Default: cs.Default}
		if !cs.Default {
			converted.Value = c.literal(cs.Value)
		}
		converted.Span = ast.Span{Pos: c.pos(cs.Pos), EndPos: converted.Block.EndPos}
		if converted.Block.EndPos.Offset > end.Offset {
			end = converted.Block.EndPos
		}
		if cs.Default {
			if fallback != nil {
				panic(&ParseError{
					Kind:     SyntaxError,
					Code:     diag.ErrorAssemblySyntax,
					Message:  "only one default case is allowed in a switch",
					Position: converted.Pos,
					Length:   len("default"),
				})
			}
			fallback = converted
			continue
		}
		sw.Cases = append(sw.Cases, converted)
	}
	if fallback != nil {
		sw.Cases = append(sw.Cases, fallback)
	}
	sw.Span = ast.Span{Pos: start, EndPos: end}
	return sw
}

func (c *assemblyConverter) expression(e *grammar.Expression) ast.Node {
	if e.Literal != nil {
		return c.literal(e.Literal)
	}
	call := e.Call
	node := &ast.AssemblyCall{FunctionName: call.Name.Value}
	for _, arg := range call.Arguments {
		node.Arguments = append(node.Arguments, c.expression(arg))
	}
	end := c.after(call.Name.Pos, call.Name.Value)
	if call.Close != nil {
		end = c.after(call.Close.Pos, ")")
	}
	node.Span = ast.Span{Pos: c.pos(call.Name.Pos), EndPos: end}
	return node
}

func (c *assemblyConverter) literal(l *grammar.Literal) ast.Node {
	raw := l.Raw()
	span := ast.Span{Pos: c.pos(l.Pos), EndPos: c.after(l.Pos, raw)}
	switch {
	case l.HexString != nil:
		return &ast.HexLiteral{Span: span, Value: raw}
	case l.String != nil:
		return &ast.StringLiteral{Span: span, Value: unquote(raw)}
	case l.HexNumber != nil:
		return &ast.HexNumber{Span: span, Value: raw}
	}
	return &ast.DecimalNumber{Span: span, Value: raw}
}

func (c *assemblyConverter) identifiers(idents []*grammar.PosIdent) []*ast.Identifier {
	out := make([]*ast.Identifier, len(idents))
	for i, id := range idents {
		out[i] = &ast.Identifier{
			Span: ast.Span{Pos: c.pos(id.Pos), EndPos: c.after(id.Pos, id.Value)},
			Name: id.Value,
		}
	}
	return out
}
