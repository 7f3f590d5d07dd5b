package parser

import (
	"fmt"

	diag "solparse/internal/errors"
	"solparse/token"
)

type Scanner struct {
	source      string
	tokens      []token.Token
	pending     []token.Comment
	start       int
	current     int
	line        int
	startLine   int
	startColumn int
	column      int
	err         *ScanError
}

// ScanError is the first lexical problem found. Scanning stops there.
type ScanError struct {
	Code     string
	Message  string
	Position token.Position
	Length   int // optional: how many characters it covers
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Position.Line, e.Position.Column, e.Message)
}

func NewScanner(source string) *Scanner {
	return &Scanner{
		source: source,
		line:   1,
		column: 1,
	}
}

// ScanTokens returns the token stream terminated by EOF. Comments are not
// tokens; each token carries the comments that precede it in Leading.
func (s *Scanner) ScanTokens() ([]token.Token, error) {
	for !s.isAtEnd() {
		s.start = s.current
		s.startLine = s.line
		s.startColumn = s.column
		s.scanToken()
	}
	if s.err != nil {
		return nil, s.err
	}
	s.tokens = append(s.tokens, token.Token{
		Type:     token.EOF,
		Position: token.Position{Line: s.line, Column: s.column, Offset: s.current},
		Leading:  s.pending,
	})
	s.pending = nil
	return s.tokens, nil
}

func (s *Scanner) scanToken() {
	c := s.advance()
	switch c {
	// Simple single-character tokens
	case '(':
		s.addToken(token.LPAREN)
	case ')':
		s.addToken(token.RPAREN)
	case '{':
		s.addToken(token.LBRACE)
	case '}':
		s.addToken(token.RBRACE)
	case '[':
		s.addToken(token.LBRACKET)
	case ']':
		s.addToken(token.RBRACKET)
	case ',':
		s.addToken(token.COMMA)
	case ';':
		s.addToken(token.SEMICOLON)
	case '?':
		s.addToken(token.QUESTION)
	case '~':
		s.addToken(token.TILDE)
	case '.':
		if isDigit(s.peek()) {
			s.scanNumber(c)
		} else {
			s.addToken(token.DOT)
		}

	// Operators with potential multi-character variants
	case ':':
		s.pick(token.COLON, '=', token.ASSEMBLY_ASSIGN)
	case '=':
		s.scanEqualOperator()
	case '!':
		s.pick(token.BANG, '=', token.NOT_EQ)
	case '<':
		s.scanShiftOperator('<', token.LT, token.LT_EQ, token.SHL, token.SHL_ASSIGN)
	case '>':
		s.scanShiftOperator('>', token.GT, token.GT_EQ, token.SHR, token.SHR_ASSIGN)
	case '+':
		s.scanDoubledOperator('+', token.PLUS, token.INCREMENT, token.PLUS_ASSIGN)
	case '-':
		s.scanDoubledOperator('-', token.MINUS, token.DECREMENT, token.MINUS_ASSIGN)
	case '&':
		s.scanDoubledOperator('&', token.AMPERSAND, token.AND, token.AMP_ASSIGN)
	case '|':
		s.scanDoubledOperator('|', token.PIPE, token.OR, token.PIPE_ASSIGN)
	case '*':
		s.scanDoubledOperator('*', token.STAR, token.STAR_STAR, token.STAR_ASSIGN)
	case '%':
		s.pick(token.PERCENT, '=', token.PERCENT_ASSIGN)
	case '^':
		s.pick(token.CARET, '=', token.CARET_ASSIGN)
	case '/':
		s.scanSlashOperator()

	// Whitespace (ignored)
	case ' ', '\r', '\t', '\n', '\f', '\v':

	// String literals
	case '"', '\'':
		s.scanString(c, token.STRING)

	default:
		s.scanDefault(c)
	}
}

// pick emits long when the next character is next, short otherwise.
func (s *Scanner) pick(short token.TokenType, next byte, long token.TokenType) {
	if s.matchNext(next) {
		s.addToken(long)
	} else {
		s.addToken(short)
	}
}

func (s *Scanner) scanEqualOperator() {
	switch {
	case s.matchNext('='):
		s.addToken(token.EQ)
	case s.matchNext('>'):
		s.addToken(token.ARROW)
	case s.matchNext(':'):
		s.addToken(token.STACK_ASSIGN)
	default:
		s.addToken(token.ASSIGN)
	}
}

// scanDoubledOperator handles the c, cc and c= family (+ ++ +=, & && &=, ...).
func (s *Scanner) scanDoubledOperator(c byte, single, doubled, assign token.TokenType) {
	switch {
	case s.matchNext(c):
		s.addToken(doubled)
	case s.matchNext('='):
		s.addToken(assign)
	default:
		s.addToken(single)
	}
}

func (s *Scanner) scanShiftOperator(c byte, single, orEqual, shift, shiftAssign token.TokenType) {
	switch {
	case s.matchNext(c):
		if s.matchNext('=') {
			s.addToken(shiftAssign)
		} else {
			s.addToken(shift)
		}
	case s.matchNext('='):
		s.addToken(orEqual)
	default:
		s.addToken(single)
	}
}

func (s *Scanner) scanSlashOperator() {
	switch {
	case s.matchNext('/'):
		s.scanSingleLineComment()
	case s.matchNext('*'):
		s.scanBlockComment()
	case s.matchNext('='):
		s.addToken(token.SLASH_ASSIGN)
	default:
		s.addToken(token.SLASH)
	}
}

func (s *Scanner) scanDefault(c byte) {
	switch {
	case isDigit(c):
		s.scanNumber(c)
	case isAlpha(c):
		s.scanIdentifier()
	default:
		s.fail(diag.ErrorInvalidCharacter, fmt.Sprintf("unexpected character %q", s.source[s.start:s.current]))
	}
}

func (s *Scanner) advance() byte {
	c := s.source[s.current]
	s.current++
	if c == '\n' {
		s.line++
		s.column = 1
	} else {
		s.column++
	}
	return c
}

func (s *Scanner) matchNext(expected byte) bool {
	if s.isAtEnd() || s.source[s.current] != expected {
		return false
	}
	s.advance()
	return true
}

func (s *Scanner) peek() byte {
	if s.isAtEnd() {
		return 0
	}
	return s.source[s.current]
}

func (s *Scanner) peekNext() byte {
	return s.peekAt(1)
}

func (s *Scanner) peekAt(n int) byte {
	if s.current+n >= len(s.source) {
		return 0
	}
	return s.source[s.current+n]
}

func (s *Scanner) position() token.Position {
	return token.Position{Line: s.startLine, Column: s.startColumn, Offset: s.start}
}

func (s *Scanner) addToken(tokenType token.TokenType) {
	s.tokens = append(s.tokens, token.Token{
		Type:     tokenType,
		Lexeme:   s.source[s.start:s.current],
		Position: s.position(),
		Leading:  s.pending,
	})
	s.pending = nil
}

func (s *Scanner) addComment(kind token.CommentKind) {
	s.pending = append(s.pending, token.Comment{
		Kind:     kind,
		Text:     s.source[s.start:s.current],
		Position: s.position(),
	})
}

// fail records the error and stops the scan.
func (s *Scanner) fail(code, message string) {
	if s.err == nil {
		s.err = &ScanError{
			Code:     code,
			Message:  message,
			Position: s.position(),
			Length:   s.current - s.start,
		}
	}
	s.current = len(s.source)
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

// Helper functions.

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isAlpha(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || c == '_' || c == '$'
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') ||
		('a' <= c && c <= 'f') ||
		('A' <= c && c <= 'F')
}

func (s *Scanner) scanIdentifier() {
	for isAlpha(s.peek()) || isDigit(s.peek()) {
		s.advance()
	}
	text := s.source[s.start:s.current]

	// hex"..." and unicode"..." are single literal tokens
	if q := s.peek(); q == '"' || q == '\'' {
		switch text {
		case "hex":
			s.advance()
			s.scanString(q, token.HEX_STRING)
			return
		case "unicode":
			s.advance()
			s.scanString(q, token.STRING)
			return
		}
	}

	s.addToken(token.LookupIdent(text))
}

// scanNumber is entered with the first character (a digit or '.') consumed.
func (s *Scanner) scanNumber(first byte) {
	if first == '0' && (s.peek() == 'x' || s.peek() == 'X') {
		s.advance()
		if !isHexDigit(s.peek()) {
			s.fail(diag.ErrorInvalidNumber, "invalid hex number: expected hex digit after 0x")
			return
		}
		for isHexDigit(s.peek()) || s.peek() == '_' {
			s.advance()
		}
		s.addToken(token.HEX_NUMBER)
		return
	}

	s.scanDigits()
	if first != '.' && s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance()
		s.scanDigits()
	}
	if c := s.peek(); c == 'e' || c == 'E' {
		if isDigit(s.peekNext()) || (s.peekNext() == '-' && isDigit(s.peekAt(2))) {
			s.advance()
			s.matchNext('-')
			s.scanDigits()
		}
	}
	s.addToken(token.NUMBER)
}

func (s *Scanner) scanDigits() {
	for isDigit(s.peek()) || (s.peek() == '_' && isDigit(s.peekNext())) {
		s.advance()
	}
}

// scanString is entered with the opening quote consumed. Escapes are
// skipped, not decoded; the lexeme keeps the quotes.
func (s *Scanner) scanString(quote byte, tokenType token.TokenType) {
	for !s.isAtEnd() && s.peek() != quote {
		switch s.peek() {
		case '\n':
			s.fail(diag.ErrorUnterminatedString, "unterminated string literal")
			return
		case '\\':
			s.advance()
			if s.isAtEnd() {
				continue
			}
		}
		s.advance()
	}
	if s.isAtEnd() {
		s.fail(diag.ErrorUnterminatedString, "unterminated string literal")
		return
	}
	s.advance()
	s.addToken(tokenType)
}

func (s *Scanner) scanSingleLineComment() {
	for s.peek() != '\n' && !s.isAtEnd() {
		s.advance()
	}
	text := s.source[s.start:s.current]
	kind := token.LineComment
	if len(text) >= 3 && text[:3] == "///" && (len(text) == 3 || text[3] != '/') {
		kind = token.LineDoc
	}
	s.addComment(kind)
}

func (s *Scanner) scanBlockComment() {
	for !s.isAtEnd() {
		if s.peek() == '*' && s.peekNext() == '/' {
			s.advance() // *
			s.advance() // /
			text := s.source[s.start:s.current]
			kind := token.BlockComment
			if len(text) >= 5 && text[:3] == "/**" {
				kind = token.BlockDoc
			}
			s.addComment(kind)
			return
		}
		s.advance()
	}
	s.fail(diag.ErrorUnterminatedComment, "unterminated block comment")
}
