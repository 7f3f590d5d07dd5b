package parser

import (
	"testing"

	"solparse/token"
)

func scan(t *testing.T, input string) []token.Token {
	t.Helper()
	tokens, err := NewScanner(input).ScanTokens()
	if err != nil {
		t.Fatalf("unexpected scan error: %v", err)
	}
	return tokens
}

func expectTypes(t *testing.T, input string, expected []token.TokenType) {
	t.Helper()
	tokens := scan(t, input)
	if len(tokens) != len(expected)+1 {
		t.Fatalf("expected %d tokens plus EOF, got %d", len(expected), len(tokens))
	}
	for i, exp := range expected {
		if tokens[i].Type != exp {
			t.Errorf("token %d: expected %s, got %s (%q)", i, exp, tokens[i].Type, tokens[i].Lexeme)
		}
	}
	if last := tokens[len(tokens)-1]; last.Type != token.EOF {
		t.Errorf("expected EOF last, got %s", last.Type)
	}
}

func TestKeywordsAndIdentifiers(t *testing.T) {
	input := "contract library interface function modifier event returns emit payable indexed customIdent $dollar _under"
	expectTypes(t, input, []token.TokenType{
		token.CONTRACT, token.LIBRARY, token.INTERFACE, token.FUNCTION, token.MODIFIER,
		token.EVENT, token.RETURNS, token.EMIT, token.PAYABLE, token.INDEXED,
		token.IDENTIFIER, token.IDENTIFIER, token.IDENTIFIER,
	})
}

func TestContextualKeywordsStayIdentifiers(t *testing.T) {
	expectTypes(t, "fallback receive error revert from as memory storage calldata type this", []token.TokenType{
		token.IDENTIFIER, token.IDENTIFIER, token.IDENTIFIER, token.IDENTIFIER,
		token.IDENTIFIER, token.IDENTIFIER, token.IDENTIFIER, token.IDENTIFIER,
		token.IDENTIFIER, token.IDENTIFIER, token.IDENTIFIER,
	})
}

func TestElementaryTypeNames(t *testing.T) {
	expectTypes(t, "uint uint256 int8 bytes bytes32 address bool string var", []token.TokenType{
		token.TYPE_NAME, token.TYPE_NAME, token.TYPE_NAME, token.TYPE_NAME, token.TYPE_NAME,
		token.TYPE_NAME, token.TYPE_NAME, token.TYPE_NAME, token.TYPE_NAME,
	})
}

func TestNumbers(t *testing.T) {
	input := "42 0 1_000 2.5 .1 2e10 1e-3 0x0 0x1F 0xdead_beef"
	tokens := scan(t, input)
	expected := []struct {
		tt     token.TokenType
		lexeme string
	}{
		{token.NUMBER, "42"},
		{token.NUMBER, "0"},
		{token.NUMBER, "1_000"},
		{token.NUMBER, "2.5"},
		{token.NUMBER, ".1"},
		{token.NUMBER, "2e10"},
		{token.NUMBER, "1e-3"},
		{token.HEX_NUMBER, "0x0"},
		{token.HEX_NUMBER, "0x1F"},
		{token.HEX_NUMBER, "0xdead_beef"},
	}
	for i, exp := range expected {
		if tokens[i].Type != exp.tt || tokens[i].Lexeme != exp.lexeme {
			t.Errorf("token %d: expected %s %q, got %s %q", i, exp.tt, exp.lexeme, tokens[i].Type, tokens[i].Lexeme)
		}
	}
}

func TestStrings(t *testing.T) {
	input := `"hello" 'world' "say \"hi\"" hex"00ff" unicode"café"`
	tokens := scan(t, input)
	expected := []struct {
		tt     token.TokenType
		lexeme string
	}{
		{token.STRING, `"hello"`},
		{token.STRING, `'world'`},
		{token.STRING, `"say \"hi\""`},
		{token.HEX_STRING, `hex"00ff"`},
		{token.STRING, `unicode"café"`},
	}
	for i, exp := range expected {
		if tokens[i].Type != exp.tt || tokens[i].Lexeme != exp.lexeme {
			t.Errorf("token %d: expected %s %s, got %s %s", i, exp.tt, exp.lexeme, tokens[i].Type, tokens[i].Lexeme)
		}
	}
}

func TestOperatorsAndBrackets(t *testing.T) {
	input := `( ) { } [ ] , ; . ? : ~ = == => =: := ! != < <= << <<= > >= >> >>= + ++ += - -- -= * ** *= / /= % %= & && &= | || |= ^ ^=`
	expectTypes(t, input, []token.TokenType{
		token.LPAREN, token.RPAREN, token.LBRACE, token.RBRACE, token.LBRACKET, token.RBRACKET,
		token.COMMA, token.SEMICOLON, token.DOT, token.QUESTION, token.COLON, token.TILDE,
		token.ASSIGN, token.EQ, token.ARROW, token.STACK_ASSIGN, token.ASSEMBLY_ASSIGN,
		token.BANG, token.NOT_EQ,
		token.LT, token.LT_EQ, token.SHL, token.SHL_ASSIGN,
		token.GT, token.GT_EQ, token.SHR, token.SHR_ASSIGN,
		token.PLUS, token.INCREMENT, token.PLUS_ASSIGN,
		token.MINUS, token.DECREMENT, token.MINUS_ASSIGN,
		token.STAR, token.STAR_STAR, token.STAR_ASSIGN,
		token.SLASH, token.SLASH_ASSIGN,
		token.PERCENT, token.PERCENT_ASSIGN,
		token.AMPERSAND, token.AND, token.AMP_ASSIGN,
		token.PIPE, token.OR, token.PIPE_ASSIGN,
		token.CARET, token.CARET_ASSIGN,
	})
}

func TestCommentsAttachToNextToken(t *testing.T) {
	input := `// plain
/// doc line
/* block */
/** doc block */
contract
//// not doc
`
	tokens := scan(t, input)
	if len(tokens) != 2 {
		t.Fatalf("expected contract and EOF, got %d tokens", len(tokens))
	}

	leading := tokens[0].Leading
	kinds := []token.CommentKind{token.LineComment, token.LineDoc, token.BlockComment, token.BlockDoc}
	if len(leading) != len(kinds) {
		t.Fatalf("expected %d leading comments, got %d", len(kinds), len(leading))
	}
	for i, kind := range kinds {
		if leading[i].Kind != kind {
			t.Errorf("comment %d: expected kind %v, got %v (%q)", i, kind, leading[i].Kind, leading[i].Text)
		}
	}
	if leading[1].Text != "/// doc line" {
		t.Errorf("comment text should be kept verbatim, got %q", leading[1].Text)
	}

	eof := tokens[1]
	if len(eof.Leading) != 1 || eof.Leading[0].Kind != token.LineComment {
		t.Errorf("trailing comment should attach to EOF as a plain comment")
	}
}

func TestPositions(t *testing.T) {
	tokens := scan(t, "a\n  bb")
	if tokens[1].Position.Line != 2 || tokens[1].Position.Column != 3 || tokens[1].Position.Offset != 4 {
		t.Errorf("unexpected position %+v", tokens[1].Position)
	}
	if eof := tokens[2]; eof.Position.Offset != 6 {
		t.Errorf("EOF offset should be the source length, got %d", eof.Position.Offset)
	}
}

func TestScanErrors(t *testing.T) {
	tests := []struct {
		input   string
		code    string
		line    int
		column  int
		message string
	}{
		{`"abc`, "E0101", 1, 1, "unterminated string literal"},
		{"x = 'ab\ncd'", "E0101", 1, 5, "unterminated string literal"},
		{"/* open", "E0102", 1, 1, "unterminated block comment"},
		{"a # b", "E0103", 1, 3, `unexpected character "#"`},
		{"0xg", "E0104", 1, 1, "invalid hex number: expected hex digit after 0x"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := NewScanner(tt.input).ScanTokens()
			if err == nil {
				t.Fatal("expected a scan error")
			}
			se, ok := err.(*ScanError)
			if !ok {
				t.Fatalf("expected *ScanError, got %T", err)
			}
			if se.Code != tt.code || se.Message != tt.message {
				t.Errorf("expected %s %q, got %s %q", tt.code, tt.message, se.Code, se.Message)
			}
			if se.Position.Line != tt.line || se.Position.Column != tt.column {
				t.Errorf("expected error at %d:%d, got %d:%d", tt.line, tt.column, se.Position.Line, se.Position.Column)
			}
		})
	}
}

func TestTokenize(t *testing.T) {
	tokens, err := Tokenize("uint x;")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tokens) != 4 {
		t.Errorf("expected 4 tokens, got %d", len(tokens))
	}

	_, err = Tokenize(`"open`)
	if _, ok := err.(*ParseError); !ok {
		t.Errorf("Tokenize should report a *ParseError, got %T", err)
	}
}
