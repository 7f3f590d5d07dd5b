package lsp

import (
	"errors"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"solparse/parser"
)

// ConvertParseError transforms a parse failure into LSP diagnostics for IDE
// display. Parsing stops at the first error, so there is at most one.
func ConvertParseError(err error) []protocol.Diagnostic {
	var parseErr *parser.ParseError
	if !errors.As(err, &parseErr) {
		return []protocol.Diagnostic{{
			Severity: ptrSeverity(protocol.DiagnosticSeverityError),
			Source:   ptrString("solparse"),
			Message:  err.Error(),
		}}
	}

	length := parseErr.Length
	if length < 1 {
		length = 1
	}
	line := uint32(parseErr.Position.Line - 1)
	start := uint32(parseErr.Position.Column - 1)

	source := "solparse-parser"
	if parseErr.Kind == parser.SemanticError {
		source = "solparse-validator"
	}

	return []protocol.Diagnostic{{
		Range: protocol.Range{
			Start: protocol.Position{Line: line, Character: start},
			End:   protocol.Position{Line: line, Character: start + uint32(length)},
		},
		Severity: ptrSeverity(protocol.DiagnosticSeverityError),
		Code:     &protocol.IntegerOrString{Value: parseErr.Code},
		Source:   ptrString(source),
		Message:  parseErr.Message,
	}}
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
