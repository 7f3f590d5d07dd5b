package errors

import (
	"fmt"
	"strings"

	"solparse/ast"
)

// SemanticErrorBuilder provides a fluent interface for creating errors with suggestions
type SemanticErrorBuilder struct {
	err CompilerError
}

// NewSemanticError creates a new error builder
func NewSemanticError(code, message string, pos ast.Position) *SemanticErrorBuilder {
	return &SemanticErrorBuilder{
		err: CompilerError{
			Level:    Error,
			Code:     code,
			Message:  message,
			Position: pos,
			Length:   1,
		},
	}
}

// WithLength sets the length of the error span
func (b *SemanticErrorBuilder) WithLength(length int) *SemanticErrorBuilder {
	b.err.Length = length
	return b
}

// WithSuggestion adds a suggestion to the error
func (b *SemanticErrorBuilder) WithSuggestion(message string) *SemanticErrorBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{Message: message})
	return b
}

// WithReplacement adds a suggestion with replacement text
func (b *SemanticErrorBuilder) WithReplacement(message, replacement string) *SemanticErrorBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{Message: message, Replacement: replacement})
	return b
}

// WithNote adds a note to the error
func (b *SemanticErrorBuilder) WithNote(note string) *SemanticErrorBuilder {
	b.err.Notes = append(b.err.Notes, note)
	return b
}

// WithHelp adds help text to the error
func (b *SemanticErrorBuilder) WithHelp(help string) *SemanticErrorBuilder {
	b.err.HelpText = help
	return b
}

// Build returns the completed error
func (b *SemanticErrorBuilder) Build() CompilerError {
	return b.err
}

// Special function shape errors

const (
	specialFunctionNote = "fallback and receive functions are called without arguments and cannot return data"
)

// SpecialFunctionNotExternal reports a fallback or receive function that is not external
func SpecialFunctionNotExternal(code, kind string, pos ast.Position) CompilerError {
	return NewSemanticError(code, fmt.Sprintf(`%s functions have to be declared "external"`, kind), pos).
		WithLength(len(keywordFor(kind))).
		WithSuggestion(`add the "external" visibility`).
		Build()
}

// ReceiveNotPayable reports a receive function without the payable mutability
func ReceiveNotPayable(pos ast.Position) CompilerError {
	return NewSemanticError(ErrorReceiveNotPayable, `Receive Ether functions have to be declared "payable"`, pos).
		WithLength(len("receive")).
		WithReplacement(`declare it payable`, "receive() external payable { ... }").
		Build()
}

// SpecialFunctionParameters reports parameters on a fallback or receive function
func SpecialFunctionParameters(code, kind string, pos ast.Position, params []string) CompilerError {
	builder := NewSemanticError(code, fmt.Sprintf("%s functions cannot have parameters", kind), pos).
		WithLength(len(keywordFor(kind))).
		WithNote(specialFunctionNote)
	if len(params) > 0 {
		builder = builder.WithSuggestion(fmt.Sprintf("remove the parameter list (%s)", strings.Join(params, ", ")))
	}
	return builder.Build()
}

// SpecialFunctionReturns reports return parameters on a fallback or receive function
func SpecialFunctionReturns(code, kind string, pos ast.Position) CompilerError {
	return NewSemanticError(code, fmt.Sprintf("%s functions cannot have return parameters", kind), pos).
		WithLength(len(keywordFor(kind))).
		WithSuggestion(`remove the "returns" clause`).
		WithNote(specialFunctionNote).
		Build()
}

// SyntaxError wraps a grammar mismatch at pos
func SyntaxError(code, message string, pos ast.Position, length int) CompilerError {
	return NewSemanticError(code, message, pos).
		WithLength(length).
		WithHelp(strings.ToLower(GetErrorDescription(code)[:1]) + GetErrorDescription(code)[1:]).
		Build()
}

func keywordFor(kind string) string {
	if strings.HasPrefix(kind, "Receive") {
		return "receive"
	}
	return "fallback"
}

// WithSimilar adds a "did you mean" suggestion when word is a likely misspelling
// of one of the candidates
func (b *SemanticErrorBuilder) WithSimilar(word string, candidates []string) *SemanticErrorBuilder {
	similar := findSimilarNames(word, candidates)
	switch len(similar) {
	case 0:
		return b
	case 1:
		return b.WithSuggestion(fmt.Sprintf("did you mean '%s'?", similar[0]))
	default:
		return b.WithSuggestion(fmt.Sprintf("did you mean one of: '%s'?", strings.Join(similar, "', '")))
	}
}

func findSimilarNames(target string, candidates []string) []string {
	var similar []string
	for _, candidate := range candidates {
		if candidate == target || len(candidate) <= 2 {
			continue
		}
		if levenshteinDistance(target, candidate) <= 2 {
			similar = append(similar, candidate)
		}
	}
	return similar
}

// Levenshtein distance for finding similar names
func levenshteinDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	matrix := make([][]int, len(a)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(b)+1)
		matrix[i][0] = i
	}
	for j := 0; j <= len(b); j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}
			matrix[i][j] = min(
				matrix[i-1][j]+1,      // deletion
				matrix[i][j-1]+1,      // insertion
				matrix[i-1][j-1]+cost, // substitution
			)
		}
	}
	return matrix[len(a)][len(b)]
}
