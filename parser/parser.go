package parser

import (
	"fmt"
	"os"

	"github.com/tliron/commonlog"

	"solparse/ast"
	"solparse/token"
)

var log = commonlog.GetLogger("solparse.parser")

// Parser is a recursive-descent parser over a scanned token stream. A
// failed rule panics with *ParseError; the entry points recover it.
type Parser struct {
	filename string
	source   string
	tokens   []token.Token
	current  int
}

func NewParser(filename, source string, tokens []token.Token) *Parser {
	return &Parser{filename: filename, source: source, tokens: tokens}
}

type Option func(*options)

type options struct {
	filename string
}

// WithFilename sets the file name recorded in positions and errors.
func WithFilename(name string) Option {
	return func(o *options) {
		o.filename = name
	}
}

func ParseFile(path string) (*ast.SourceUnit, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return Parse(string(source), WithFilename(path))
}

// Parse parses a complete source file.
func Parse(source string, opts ...Option) (*ast.SourceUnit, error) {
	unit, err := run(source, opts, (*Parser).parseSourceUnit)
	if err == nil {
		log.Debugf("parsed %d top-level nodes", len(unit.Children))
	}
	return unit, err
}

// ParseNode parses a single contract member, such as a function or a state
// variable declaration.
func ParseNode(source string, opts ...Option) (ast.Node, error) {
	return run(source, opts, func(p *Parser) ast.Node {
		node := p.parseContractPart()
		p.expectEnd()
		return node
	})
}

// ParseStatement parses a single statement as found in a function body.
func ParseStatement(source string, opts ...Option) (ast.Stmt, error) {
	return run(source, opts, func(p *Parser) ast.Stmt {
		stmt := p.parseStatement()
		p.expectEnd()
		return stmt
	})
}

// ParseExpression parses a single expression with no trailing semicolon.
func ParseExpression(source string, opts ...Option) (ast.Expr, error) {
	return run(source, opts, func(p *Parser) ast.Expr {
		expr := p.parseExpression()
		p.expectEnd()
		return expr
	})
}

// Tokenize scans source without parsing it.
func Tokenize(source string) ([]token.Token, error) {
	tokens, err := NewScanner(source).ScanTokens()
	if err != nil {
		return nil, scanFailure("", err.(*ScanError))
	}
	return tokens, nil
}

func run[T any](source string, opts []Option, rule func(*Parser) T) (result T, err error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	tokens, scanErr := NewScanner(source).ScanTokens()
	if scanErr != nil {
		return result, scanFailure(o.filename, scanErr.(*ScanError))
	}

	p := NewParser(o.filename, source, tokens)
	defer guard(&err)
	return rule(p), nil
}

// guard turns a *ParseError panic into the returned error. Other panics
// propagate.
func guard(err *error) {
	if r := recover(); r != nil {
		pe, ok := r.(*ParseError)
		if !ok {
			panic(r)
		}
		log.Debugf("parse failed: %s", pe)
		*err = pe
	}
}

func scanFailure(filename string, err *ScanError) *ParseError {
	return &ParseError{
		Kind:    SyntaxError,
		Code:    err.Code,
		Message: err.Message,
		Position: ast.Position{
			Filename: filename,
			Offset:   err.Position.Offset,
			Line:     err.Position.Line,
			Column:   err.Position.Column,
		},
		Length: err.Length,
	}
}

func (p *Parser) expectEnd() {
	if !p.isAtEnd() {
		p.errorAtCurrent("expected end of input")
	}
}

func (p *Parser) parseSourceUnit() *ast.SourceUnit {
	unit := &ast.SourceUnit{}
	for !p.isAtEnd() {
		unit.Children = append(unit.Children, p.parseSourceUnitPart())
	}
	unit.Pos = ast.Position{Filename: p.filename, Line: 1, Column: 1}
	unit.EndPos = p.makePos(p.peek())
	return unit
}
