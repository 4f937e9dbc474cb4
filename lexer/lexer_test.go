package lexer

import (
	"strings"
	"testing"

	"github.com/cminic/cminic/errors"
)

func newTestLexer(input string, opts ...Option) (*Lexer, *errors.Reporter) {
	r := errors.New()
	return New(strings.NewReader(input), "test.c", r, opts...), r
}

func TestNextToken(t *testing.T) {
	input := `int x = 5;
x = x + 10;`

	tests := []struct {
		expectedType   TokenType
		expectedLexeme string
	}{
		{INT_KW, "int"},
		{IDENT, "x"},
		{ASSIGN, "="},
		{INT, "5"},
		{SEMI, ";"},
		{IDENT, "x"},
		{ASSIGN, "="},
		{IDENT, "x"},
		{PLUS, "+"},
		{INT, "10"},
		{SEMI, ";"},
		{EOF, ""},
	}

	l, _ := newTestLexer(input)

	for i, tt := range tests {
		tok := l.Peek()
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - type wrong. expected=%s, got=%s (lexeme=%q)", i, tt.expectedType, tok.Type, tok.Lexeme)
		}
		if tok.Lexeme != tt.expectedLexeme {
			t.Fatalf("tests[%d] - lexeme wrong. expected=%q, got=%q", i, tt.expectedLexeme, tok.Lexeme)
		}
		l.Advance()
	}
}

func TestKeywords(t *testing.T) {
	input := "int char void if else while for return"
	want := []TokenType{INT_KW, CHAR_KW, VOID, IF, ELSE, WHILE, FOR, RETURN, EOF}

	l, _ := newTestLexer(input)
	for i, tt := range want {
		tok := l.Peek()
		if tok.Type != tt {
			t.Fatalf("tests[%d] - expected=%s, got=%s", i, tt, tok.Type)
		}
		l.Advance()
	}
}

func TestKeywordPrefixIdentifier(t *testing.T) {
	l, _ := newTestLexer("ifx")
	tok := l.Peek()
	if tok.Type != IDENT || tok.Lexeme != "ifx" {
		t.Fatalf("expected IDENT %q, got %s %q", "ifx", tok.Type, tok.Lexeme)
	}
}

func TestOperators(t *testing.T) {
	input := "+ ++ - -- = == ! != < <= << > >= >> & && | || * / % ^ ~ ; : , . ( ) { } [ ] #"
	want := []TokenType{
		PLUS, INC, MINUS, DEC, ASSIGN, EQ, NOT, NOT_EQ, LT, LT_EQ, SHL, GT, GT_EQ, SHR,
		AND, AND_AND, OR, OR_OR, ASTERISK, SLASH, PERCENT, CARET, TILDE,
		SEMI, COLON, COMMA, DOT, LPAREN, RPAREN, LBRACE, RBRACE, LBRACK, RBRACK, HASH, EOF,
	}

	l, _ := newTestLexer(input)
	for i, tt := range want {
		tok := l.Peek()
		if tok.Type != tt {
			t.Fatalf("tests[%d] - expected=%s, got=%s (%q)", i, tt, tok.Type, tok.Lexeme)
		}
		l.Advance()
	}
}

func TestEmptyInput(t *testing.T) {
	l, _ := newTestLexer("")
	tok := l.Peek()
	if tok.Type != EOF {
		t.Fatalf("expected EOF on empty input, got %s", tok.Type)
	}
}

func TestWhitespaceOnlyInput(t *testing.T) {
	l, _ := newTestLexer("   \t\r\n\n  ")
	tok := l.Peek()
	if tok.Type != EOF {
		t.Fatalf("expected EOF on whitespace-only input, got %s", tok.Type)
	}
}

func TestLineComment(t *testing.T) {
	l, _ := newTestLexer("int x; // trailing comment\nchar y;")
	var types []TokenType
	for {
		tok := l.Peek()
		types = append(types, tok.Type)
		if tok.Type == EOF {
			break
		}
		l.Advance()
	}
	want := []TokenType{INT_KW, IDENT, SEMI, CHAR_KW, IDENT, SEMI, EOF}
	if len(types) != len(want) {
		t.Fatalf("token count mismatch: got %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Fatalf("tests[%d] - expected=%s, got=%s", i, want[i], types[i])
		}
	}
}

func TestBlockComment(t *testing.T) {
	l, _ := newTestLexer("int /* skip\nme */ x;")
	got := []TokenType{}
	for {
		tok := l.Peek()
		got = append(got, tok.Type)
		if tok.Type == EOF {
			break
		}
		l.Advance()
	}
	want := []TokenType{INT_KW, IDENT, SEMI, EOF}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestUnterminatedBlockComment(t *testing.T) {
	l, r := newTestLexer("int x; /* never closed")
	for {
		tok := l.Peek()
		if tok.Type == EOF {
			break
		}
		l.Advance()
	}
	if r.Count() != 1 {
		t.Fatalf("expected 1 reported error, got %d", r.Count())
	}
}

func TestStringLiteralKeepsRawEscapes(t *testing.T) {
	l, _ := newTestLexer(`"a\nb"`)
	tok := l.Peek()
	if tok.Type != STRING {
		t.Fatalf("expected STRING, got %s", tok.Type)
	}
	if tok.Lexeme != `a\nb` {
		t.Fatalf("expected raw escape preserved, got %q", tok.Lexeme)
	}
}

func TestCharLiteralDecodesEscape(t *testing.T) {
	l, _ := newTestLexer(`'\n'`)
	tok := l.Peek()
	if tok.Type != CHAR {
		t.Fatalf("expected CHAR, got %s", tok.Type)
	}
	if tok.Lexeme != "\n" {
		t.Fatalf("expected decoded newline, got %q", tok.Lexeme)
	}
}

func TestCharLiteralErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", "''"},
		{"unterminated", "'a"},
		{"invalid escape", `'\q'`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, r := newTestLexer(tt.input)
			l.Peek()
			if r.Count() == 0 {
				t.Fatalf("expected a reported error for %q", tt.input)
			}
		})
	}
}

func TestUnexpectedCharacterAlwaysAdvances(t *testing.T) {
	l, r := newTestLexer("@@@")
	count := 0
	for {
		tok := l.Peek()
		if tok.Type == EOF {
			break
		}
		count++
		l.Advance()
		if count > 10 {
			t.Fatal("lexer did not make forward progress on unexpected characters")
		}
	}
	if r.Count() != 3 {
		t.Fatalf("expected 3 reported errors, got %d", r.Count())
	}
}

func TestLineColumnTracking(t *testing.T) {
	l, _ := newTestLexer("int\nx;")
	first := l.Peek() // int
	if first.Pos.Line != 1 || first.Pos.Column != 1 {
		t.Fatalf("expected 1:1, got %d:%d", first.Pos.Line, first.Pos.Column)
	}
	l.Advance()
	second := l.Peek() // x on line 2
	if second.Pos.Line != 2 || second.Pos.Column != 1 {
		t.Fatalf("expected 2:1, got %d:%d", second.Pos.Line, second.Pos.Column)
	}
}

// TestTinyBufferRefillBoundary scans every two-byte operator with a 1-byte
// buffer, so the second byte of each operator is only read after a refill.
func TestTinyBufferRefillBoundary(t *testing.T) {
	l, _ := newTestLexer("a == b != c <= d >= e << f >> g && h || i ++ j -- k", WithBufferCapacity(1))
	want := []TokenType{
		IDENT, EQ, IDENT, NOT_EQ, IDENT, LT_EQ, IDENT, GT_EQ, IDENT, SHL, IDENT, SHR,
		IDENT, AND_AND, IDENT, OR_OR, IDENT, INC, IDENT, DEC, IDENT, EOF,
	}
	for i, tt := range want {
		tok := l.Peek()
		if tok.Type != tt {
			t.Fatalf("tests[%d] - expected=%s, got=%s (%q)", i, tt, tok.Type, tok.Lexeme)
		}
		l.Advance()
	}
}

// TestTinyBufferMultiByteLexemesSurviveRefill pins a regression: scanning
// an identifier, integer, or string literal longer than the buffer used
// to build its lexeme by slicing buf[start:pos] after a refill had moved
// pos behind start, producing a low>high slice panic. With a 2-byte
// buffer, every literal below forces at least one mid-token refill.
func TestTinyBufferMultiByteLexemesSurviveRefill(t *testing.T) {
	l, _ := newTestLexer(`abcdefghij 123456789 "hello world"`, WithBufferCapacity(2))

	ident := l.Peek()
	if ident.Type != IDENT || ident.Lexeme != "abcdefghij" {
		t.Fatalf("expected IDENT %q, got %s %q", "abcdefghij", ident.Type, ident.Lexeme)
	}
	l.Advance()

	number := l.Peek()
	if number.Type != INT || number.Lexeme != "123456789" {
		t.Fatalf("expected INT %q, got %s %q", "123456789", number.Type, number.Lexeme)
	}
	l.Advance()

	str := l.Peek()
	if str.Type != STRING || str.Lexeme != "hello world" {
		t.Fatalf("expected STRING %q, got %s %q", "hello world", str.Type, str.Lexeme)
	}
}

// TestTinyBufferStringLiteralWithEscapeSurvivesRefill pins the same
// regression for scanStringLiteral's two-byte-per-escape accumulation.
func TestTinyBufferStringLiteralWithEscapeSurvivesRefill(t *testing.T) {
	l, _ := newTestLexer(`"abcdefgh\nijklmnop"`, WithBufferCapacity(2))
	tok := l.Peek()
	if tok.Type != STRING {
		t.Fatalf("expected STRING, got %s", tok.Type)
	}
	want := `abcdefgh\nijklmnop`
	if tok.Lexeme != want {
		t.Fatalf("expected raw lexeme %q, got %q", want, tok.Lexeme)
	}
}

func TestCommentsPreserved(t *testing.T) {
	l, _ := newTestLexer("int x; // note\n", WithCommentsPreserved(true))
	for {
		tok := l.Peek()
		if tok.Type == EOF {
			break
		}
		l.Advance()
	}
	if len(l.Comments) != 1 {
		t.Fatalf("expected 1 preserved comment, got %d", len(l.Comments))
	}
	if l.Comments[0].Text != "// note" {
		t.Fatalf("unexpected comment text: %q", l.Comments[0].Text)
	}
}

// TestTinyBufferLineCommentSurvivesRefill pins the same start/pos-index
// regression for skipLineComment's preserved-comment text.
func TestTinyBufferLineCommentSurvivesRefill(t *testing.T) {
	l, _ := newTestLexer("// a rather long trailing comment\nint x;", WithBufferCapacity(2), WithCommentsPreserved(true))
	for {
		tok := l.Peek()
		if tok.Type == EOF {
			break
		}
		l.Advance()
	}
	if len(l.Comments) != 1 {
		t.Fatalf("expected 1 preserved comment, got %d", len(l.Comments))
	}
	want := "// a rather long trailing comment"
	if l.Comments[0].Text != want {
		t.Fatalf("expected comment text %q, got %q", want, l.Comments[0].Text)
	}
}
