package parser

import (
	"fmt"

	"solparse/ast"
	diag "solparse/internal/errors"
)

type ErrorKind string

const (
	SyntaxError   ErrorKind = "SyntaxError"
	SemanticError ErrorKind = "SemanticError"
)

// ParseError is the single error a failed parse returns. Nothing is
// recovered: the first problem ends the parse.
type ParseError struct {
	Kind     ErrorKind
	Code     string
	Message  string
	Position ast.Position
	Length   int
	// Lexeme is the offending token text, empty at end of input.
	Lexeme string

	diagnostic *diag.CompilerError
}

func (e *ParseError) Error() string {
	name := e.Position.Filename
	if name == "" {
		name = "<input>"
	}
	return fmt.Sprintf("%s:%d:%d: %s", name, e.Position.Line, e.Position.Column, e.Message)
}

// Diagnostic converts the error into a renderable compiler error.
func (e *ParseError) Diagnostic() diag.CompilerError {
	if e.diagnostic != nil {
		return *e.diagnostic
	}
	length := e.Length
	if length < 1 {
		length = 1
	}
	if e.Code != diag.ErrorUnexpectedToken || e.Lexeme == "" {
		return diag.SyntaxError(e.Code, e.Message, e.Position, length)
	}
	return diag.NewSemanticError(e.Code, e.Message, e.Position).
		WithLength(length).
		WithSimilar(e.Lexeme, keywordList).
		WithHelp(diag.GetErrorDescription(e.Code)).
		Build()
}

func semanticError(err *diag.CompilerError) *ParseError {
	return &ParseError{
		Kind:       SemanticError,
		Code:       err.Code,
		Message:    err.Message,
		Position:   err.Position,
		Length:     err.Length,
		diagnostic: err,
	}
}
