package lexer_test

import (
	"fmt"
	"strings"
	"testing"

	"sheeppig/internal/diag"
	"sheeppig/internal/lexer"
	"sheeppig/internal/source"
	"sheeppig/internal/token"
)

// testReporter collects every diagnostic the lexer reports.
type testReporter struct {
	diagnostics []diag.Diagnostic
}

func (r *testReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note, fixes []diag.Fix) {
	r.diagnostics = append(r.diagnostics, diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Notes:    notes,
		Fixes:    fixes,
	})
}

func (r *testReporter) HasErrors() bool {
	for _, d := range r.diagnostics {
		if d.Severity == diag.SevError {
			return true
		}
	}
	return false
}

func (r *testReporter) ErrorMessages() []string {
	messages := make([]string, 0, len(r.diagnostics))
	for _, d := range r.diagnostics {
		messages = append(messages, fmt.Sprintf("[%s] %s: %s", d.Code.ID(), d.Severity, d.Message))
	}
	return messages
}

func (r *testReporter) HasCode(code diag.Code) bool {
	for _, d := range r.diagnostics {
		if d.Code == code {
			return true
		}
	}
	return false
}

func makeTestLexer(input string) (*lexer.Lexer, *testReporter) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.sp", []byte(input))
	file := fs.Get(fileID)

	reporter := &testReporter{}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	return lx, reporter
}

func collectAllTokens(lx *lexer.Lexer) []token.Token {
	tokens := make([]token.Token, 0)
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return tokens
}

func tokensToString(tokens []token.Token) string {
	parts := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		parts = append(parts, fmt.Sprintf("%s(%q)", tok.Kind, tok.Text))
	}
	return strings.Join(parts, " ")
}

func expectTokens(t *testing.T, input string, expected []token.Kind) {
	t.Helper()
	lx, reporter := makeTestLexer(input)
	tokens := collectAllTokens(lx)

	if len(tokens) > 0 && tokens[len(tokens)-1].Kind == token.EOF {
		tokens = tokens[:len(tokens)-1]
	}

	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d\ninput: %q\ntokens: %v\nerrors: %v",
			len(expected), len(tokens), input, tokensToString(tokens), reporter.ErrorMessages())
	}
	for i, kind := range expected {
		if tokens[i].Kind != kind {
			t.Errorf("token %d: got %s, want %s\ninput: %q\ntokens: %v",
				i, tokens[i].Kind, kind, input, tokensToString(tokens))
		}
	}
}

func TestIdentifiers_ASCII(t *testing.T) {
	expectTokens(t, "foo bar_baz _tmp x1", []token.Kind{
		token.Ident, token.Ident, token.Ident, token.Ident,
	})
}

func TestIdentifiers_Unicode(t *testing.T) {
	lx, reporter := makeTestLexer("café δx")
	tokens := collectAllTokens(lx)
	if reporter.HasErrors() {
		t.Fatalf("unexpected errors: %v", reporter.ErrorMessages())
	}
	if len(tokens) != 3 || tokens[0].Kind != token.Ident || tokens[1].Kind != token.Ident {
		t.Fatalf("tokens: %v", tokensToString(tokens))
	}
	if tokens[0].Text != "café" {
		t.Errorf("Text = %q, want %q", tokens[0].Text, "café")
	}
}

func TestKeywords(t *testing.T) {
	expectTokens(t, "using as from fun return var if else for in while", []token.Kind{
		token.KwUsing, token.KwAs, token.KwFrom, token.KwFun, token.KwReturn,
		token.KwVar, token.KwIf, token.KwElse, token.KwFor, token.KwIn, token.KwWhile,
	})
}

func TestKeywords_CaseSensitive(t *testing.T) {
	expectTokens(t, "If VAR Fun none", []token.Kind{
		token.Ident, token.Ident, token.Ident, token.Ident,
	})
}

func TestLiteralWords(t *testing.T) {
	expectTokens(t, "true false None", []token.Kind{
		token.BoolLit, token.BoolLit, token.NoneLit,
	})
}

func TestNumbers_Int(t *testing.T) {
	lx, reporter := makeTestLexer("0 42 1_000_000")
	tokens := collectAllTokens(lx)
	if reporter.HasErrors() {
		t.Fatalf("unexpected errors: %v", reporter.ErrorMessages())
	}
	for i := 0; i < 3; i++ {
		if tokens[i].Kind != token.IntLit {
			t.Errorf("token %d: %s, want IntLit", i, tokens[i].Kind)
		}
	}
	if tokens[2].Text != "1_000_000" {
		t.Errorf("Text = %q", tokens[2].Text)
	}
}

func TestNumbers_Float(t *testing.T) {
	expectTokens(t, "3.14 0.5 1_0.2_5", []token.Kind{
		token.FloatLit, token.FloatLit, token.FloatLit,
	})
}

func TestNumbers_Exponent(t *testing.T) {
	expectTokens(t, "1e5 2.5e-3 7E+10", []token.Kind{
		token.FloatLit, token.FloatLit, token.FloatLit,
	})
}

func TestNumbers_BadExponent(t *testing.T) {
	lx, reporter := makeTestLexer("1e+")
	tokens := collectAllTokens(lx)
	if !reporter.HasCode(diag.LexBadNumber) {
		t.Fatalf("expected LexBadNumber, got %v", reporter.ErrorMessages())
	}
	if tokens[0].Kind != token.Invalid {
		t.Errorf("token: %s, want Invalid", tokens[0].Kind)
	}
}

func TestNumbers_TrailingSeparator(t *testing.T) {
	lx, reporter := makeTestLexer("12_")
	collectAllTokens(lx)
	if !reporter.HasCode(diag.LexBadNumber) {
		t.Fatalf("expected LexBadNumber, got %v", reporter.ErrorMessages())
	}
}

func TestNumbers_TrailingDotStaysInt(t *testing.T) {
	// no digit after the dot: integer then punctuation
	lx, reporter := makeTestLexer("1.foo")
	tokens := collectAllTokens(lx)
	if reporter.HasErrors() {
		t.Fatalf("unexpected errors: %v", reporter.ErrorMessages())
	}
	want := []token.Kind{token.IntLit, token.Dot, token.Ident, token.EOF}
	for i, kind := range want {
		if tokens[i].Kind != kind {
			t.Fatalf("token %d: %s, want %s (%v)", i, tokens[i].Kind, kind, tokensToString(tokens))
		}
	}
}

func TestString_Simple(t *testing.T) {
	lx, reporter := makeTestLexer(`"hello" "a b c"`)
	tokens := collectAllTokens(lx)
	if reporter.HasErrors() {
		t.Fatalf("unexpected errors: %v", reporter.ErrorMessages())
	}
	if tokens[0].Kind != token.StringLit || tokens[0].Text != `"hello"` {
		t.Errorf("token 0: %s %q", tokens[0].Kind, tokens[0].Text)
	}
	if tokens[1].Kind != token.StringLit {
		t.Errorf("token 1: %s", tokens[1].Kind)
	}
}

func TestString_Escapes(t *testing.T) {
	lx, reporter := makeTestLexer(`"a\n\t\"\\\0\'"`)
	tokens := collectAllTokens(lx)
	if reporter.HasErrors() {
		t.Fatalf("unexpected errors: %v", reporter.ErrorMessages())
	}
	if tokens[0].Kind != token.StringLit {
		t.Errorf("token: %s", tokens[0].Kind)
	}
}

func TestString_UnknownEscape(t *testing.T) {
	lx, reporter := makeTestLexer(`"a\q"`)
	tokens := collectAllTokens(lx)
	if !reporter.HasCode(diag.LexUnknownEscape) {
		t.Fatalf("expected LexUnknownEscape, got %v", reporter.ErrorMessages())
	}
	// scanning continues: still a terminated string token
	if tokens[0].Kind != token.StringLit {
		t.Errorf("token: %s, want StringLit", tokens[0].Kind)
	}
}

func TestString_Continuation(t *testing.T) {
	lx, reporter := makeTestLexer("\"line one \\\nline two\"")
	tokens := collectAllTokens(lx)
	if reporter.HasErrors() {
		t.Fatalf("unexpected errors: %v", reporter.ErrorMessages())
	}
	if tokens[0].Kind != token.StringLit {
		t.Fatalf("token: %s, want StringLit (%v)", tokens[0].Kind, tokensToString(tokens))
	}
	if tokens[1].Kind != token.EOF {
		t.Errorf("continuation must not terminate the literal: %v", tokensToString(tokens))
	}
}

func TestString_NewlineUnterminates(t *testing.T) {
	lx, reporter := makeTestLexer("\"oops\nnext")
	tokens := collectAllTokens(lx)
	if !reporter.HasCode(diag.LexUnterminatedString) {
		t.Fatalf("expected LexUnterminatedString, got %v", reporter.ErrorMessages())
	}
	// recovery resumes at the line end: the newline still terminates
	if tokens[0].Kind != token.Invalid || tokens[1].Kind != token.Newline {
		t.Fatalf("tokens: %v", tokensToString(tokens))
	}
}

func TestString_EOFUnterminates(t *testing.T) {
	lx, reporter := makeTestLexer(`"dangling`)
	collectAllTokens(lx)
	if !reporter.HasCode(diag.LexUnterminatedString) {
		t.Fatalf("expected LexUnterminatedString, got %v", reporter.ErrorMessages())
	}
}

func TestChar_Simple(t *testing.T) {
	lx, reporter := makeTestLexer(`'x' '\n' '\''`)
	tokens := collectAllTokens(lx)
	if reporter.HasErrors() {
		t.Fatalf("unexpected errors: %v", reporter.ErrorMessages())
	}
	for i := 0; i < 3; i++ {
		if tokens[i].Kind != token.CharLit {
			t.Errorf("token %d: %s, want CharLit", i, tokens[i].Kind)
		}
	}
}

func TestChar_MultiScalar(t *testing.T) {
	lx, reporter := makeTestLexer(`'ab'`)
	tokens := collectAllTokens(lx)
	if !reporter.HasCode(diag.LexBadCharLiteral) {
		t.Fatalf("expected LexBadCharLiteral, got %v", reporter.ErrorMessages())
	}
	if tokens[0].Kind != token.Invalid {
		t.Errorf("token: %s, want Invalid", tokens[0].Kind)
	}
}

func TestChar_Empty(t *testing.T) {
	lx, reporter := makeTestLexer(`''`)
	collectAllTokens(lx)
	if !reporter.HasCode(diag.LexBadCharLiteral) {
		t.Fatalf("expected LexBadCharLiteral, got %v", reporter.ErrorMessages())
	}
}

func TestChar_Unterminated(t *testing.T) {
	lx, reporter := makeTestLexer("'x\n")
	collectAllTokens(lx)
	if !reporter.HasCode(diag.LexUnterminatedChar) {
		t.Fatalf("expected LexUnterminatedChar, got %v", reporter.ErrorMessages())
	}
}

func TestOperators_Single(t *testing.T) {
	expectTokens(t, `+ - * / \ % & | ^ ~ ! < > =`, []token.Kind{
		token.Plus, token.Minus, token.Star, token.Slash, token.Backslash,
		token.Percent, token.Amp, token.Pipe, token.Caret, token.Tilde,
		token.Bang, token.Lt, token.Gt, token.Assign,
	})
}

func TestOperators_Double(t *testing.T) {
	expectTokens(t, "** << >> && || == != <= >= += -= *= /= %= &= |= ^=", []token.Kind{
		token.StarStar, token.Shl, token.Shr, token.AndAnd, token.OrOr,
		token.EqEq, token.BangEq, token.LtEq, token.GtEq,
		token.PlusAssign, token.MinusAssign, token.StarAssign, token.SlashAssign,
		token.PercentAssign, token.AmpAssign, token.PipeAssign, token.CaretAssign,
	})
}

func TestOperators_Triple(t *testing.T) {
	expectTokens(t, "**= <<= >>= &&= ||=", []token.Kind{
		token.StarStarAssign, token.ShlAssign, token.ShrAssign,
		token.AndAndAssign, token.OrOrAssign,
	})
}

func TestOperators_Greedy(t *testing.T) {
	// maximal munch: '**=' is one token, never '*' '*='
	expectTokens(t, "a**=b", []token.Kind{
		token.Ident, token.StarStarAssign, token.Ident,
	})
	expectTokens(t, "a<<=b", []token.Kind{
		token.Ident, token.ShlAssign, token.Ident,
	})
}

func TestBackslashAssign(t *testing.T) {
	expectTokens(t, `a \= b`, []token.Kind{
		token.Ident, token.BackslashAssign, token.Ident,
	})
}

func TestPunctuation(t *testing.T) {
	expectTokens(t, "( ) { } [ ] , . : ?", []token.Kind{
		token.LParen, token.RParen, token.LBrace, token.RBrace,
		token.LBracket, token.RBracket, token.Comma, token.Dot,
		token.Colon, token.Question,
	})
}

func TestNewline_Significant(t *testing.T) {
	expectTokens(t, "a\nb", []token.Kind{
		token.Ident, token.Newline, token.Ident,
	})
}

func TestNewline_RunFolds(t *testing.T) {
	// blank lines fold into the single Newline token's aftermath
	lx, reporter := makeTestLexer("a\n\n\n\nb")
	tokens := collectAllTokens(lx)
	if reporter.HasErrors() {
		t.Fatalf("unexpected errors: %v", reporter.ErrorMessages())
	}
	want := []token.Kind{token.Ident, token.Newline, token.Ident, token.EOF}
	if len(tokens) != len(want) {
		t.Fatalf("tokens: %v", tokensToString(tokens))
	}
	for i, kind := range want {
		if tokens[i].Kind != kind {
			t.Fatalf("token %d: %s, want %s", i, tokens[i].Kind, kind)
		}
	}
	if tokens[1].Span.Len() != 1 {
		t.Errorf("Newline token should cover the first newline byte only, span %v", tokens[1].Span)
	}
}

func TestNewline_CommentOnlyLinesFold(t *testing.T) {
	expectTokens(t, "a\n# note\n  # more\nb", []token.Kind{
		token.Ident, token.Newline, token.Ident,
	})
}

func TestLineComment_DoesNotTerminate(t *testing.T) {
	// a comment rides as trivia; the newline after it is the terminator
	lx, _ := makeTestLexer("x # trailing\ny")
	tokens := collectAllTokens(lx)
	want := []token.Kind{token.Ident, token.Newline, token.Ident, token.EOF}
	for i, kind := range want {
		if tokens[i].Kind != kind {
			t.Fatalf("token %d: %s, want %s (%v)", i, tokens[i].Kind, kind, tokensToString(tokens))
		}
	}
	if len(tokens[1].Leading) == 0 {
		t.Errorf("comment should ride as leading trivia on the newline token")
	}
}

func TestBlockComment_SpansLines(t *testing.T) {
	// newlines inside a block comment never terminate a statement
	expectTokens(t, "a /* one\ntwo */ b", []token.Kind{
		token.Ident, token.Ident,
	})
}

func TestBlockComment_NoNesting(t *testing.T) {
	// the first '*/' closes the comment; the rest is real input
	lx, reporter := makeTestLexer("/* outer /* inner */ x")
	tokens := collectAllTokens(lx)
	if reporter.HasErrors() {
		t.Fatalf("unexpected errors: %v", reporter.ErrorMessages())
	}
	if tokens[0].Kind != token.Ident || tokens[0].Text != "x" {
		t.Fatalf("tokens: %v", tokensToString(tokens))
	}
}

func TestBlockComment_Unterminated(t *testing.T) {
	lx, reporter := makeTestLexer("/* dangling")
	collectAllTokens(lx)
	if !reporter.HasCode(diag.LexUnterminatedBlockComment) {
		t.Fatalf("expected LexUnterminatedBlockComment, got %v", reporter.ErrorMessages())
	}
}

func TestLineContinuation(t *testing.T) {
	// backslash-newline joins the lines: no Newline token in between
	expectTokens(t, "a + \\\nb", []token.Kind{
		token.Ident, token.Plus, token.Ident,
	})
}

func TestBackslashAloneIsIntDiv(t *testing.T) {
	expectTokens(t, `7 \ 2`, []token.Kind{
		token.IntLit, token.Backslash, token.IntLit,
	})
}

func TestUnknownChar(t *testing.T) {
	lx, reporter := makeTestLexer("a $ b")
	tokens := collectAllTokens(lx)
	if !reporter.HasCode(diag.LexUnknownChar) {
		t.Fatalf("expected LexUnknownChar, got %v", reporter.ErrorMessages())
	}
	want := []token.Kind{token.Ident, token.Invalid, token.Ident, token.EOF}
	for i, kind := range want {
		if tokens[i].Kind != kind {
			t.Fatalf("token %d: %s, want %s", i, tokens[i].Kind, kind)
		}
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	lx, _ := makeTestLexer("a b")
	p1 := lx.Peek()
	p2 := lx.Peek()
	if p1.Kind != token.Ident || p2.Text != p1.Text {
		t.Fatalf("Peek changed state: %v vs %v", p1, p2)
	}
	n := lx.Next()
	if n.Text != "a" {
		t.Fatalf("Next after Peek = %q, want %q", n.Text, "a")
	}
}

func TestPeekAt(t *testing.T) {
	lx, _ := makeTestLexer("x: int = 5")
	if k := lx.PeekAt(0).Kind; k != token.Ident {
		t.Fatalf("PeekAt(0) = %s", k)
	}
	if k := lx.PeekAt(1).Kind; k != token.Colon {
		t.Fatalf("PeekAt(1) = %s", k)
	}
	if k := lx.PeekAt(2).Kind; k != token.Ident {
		t.Fatalf("PeekAt(2) = %s", k)
	}
	// consuming must replay the buffered tokens in order
	if tok := lx.Next(); tok.Text != "x" {
		t.Fatalf("Next = %q", tok.Text)
	}
	if tok := lx.Next(); tok.Kind != token.Colon {
		t.Fatalf("Next = %s", tok.Kind)
	}
}

func TestEOF_Sticky(t *testing.T) {
	lx, _ := makeTestLexer("")
	for i := 0; i < 3; i++ {
		if tok := lx.Next(); tok.Kind != token.EOF {
			t.Fatalf("Next #%d = %s, want EOF", i, tok.Kind)
		}
	}
}

func TestTokenLimit(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.sp", []byte("a b c d e f"))
	reporter := &testReporter{}
	lx := lexer.New(fs.Get(fileID), lexer.Options{Reporter: reporter, MaxTokens: 3})

	tokens := collectAllTokens(lx)
	significant := 0
	for _, tok := range tokens {
		if tok.Kind == token.Ident {
			significant++
		}
	}
	if significant != 3 {
		t.Fatalf("got %d tokens before the cap, want 3 (%v)", significant, tokensToString(tokens))
	}
	if !reporter.HasCode(diag.LexTokenLimit) {
		t.Fatalf("expected LexTokenLimit, got %v", reporter.ErrorMessages())
	}
}

func TestFunctionDefinition(t *testing.T) {
	src := "fun add(a: int, b: int): int {\n    return a + b\n}"
	expectTokens(t, src, []token.Kind{
		token.KwFun, token.Ident, token.LParen,
		token.Ident, token.Colon, token.Ident, token.Comma,
		token.Ident, token.Colon, token.Ident, token.RParen,
		token.Colon, token.Ident, token.LBrace, token.Newline,
		token.KwReturn, token.Ident, token.Plus, token.Ident, token.Newline,
		token.RBrace,
	})
}

func TestDottedNameStaysSplit(t *testing.T) {
	expectTokens(t, "math.sqrt(x)", []token.Kind{
		token.Ident, token.Dot, token.Ident,
		token.LParen, token.Ident, token.RParen,
	})
}

func TestSpanOffsets(t *testing.T) {
	lx, _ := makeTestLexer("ab + cd")
	first := lx.Next()
	if first.Span.Start != 0 || first.Span.End != 2 {
		t.Errorf("span of %q = %v", first.Text, first.Span)
	}
	op := lx.Next()
	if op.Span.Start != 3 || op.Span.End != 4 {
		t.Errorf("span of %q = %v", op.Text, op.Span)
	}
	second := lx.Next()
	if second.Span.Start != 5 || second.Span.End != 7 {
		t.Errorf("span of %q = %v", second.Text, second.Span)
	}
}

func TestDeterministic(t *testing.T) {
	src := "var x: int = 1\nwhile x < 10 { x += 1 }\n"
	first := ""
	for i := 0; i < 3; i++ {
		lx, _ := makeTestLexer(src)
		got := tokensToString(collectAllTokens(lx))
		if i == 0 {
			first = got
			continue
		}
		if got != first {
			t.Fatalf("run %d differs:\n%s\n%s", i, first, got)
		}
	}
}

func BenchmarkLexerSimpleExpression(b *testing.B) {
	input := "var x: int = 123 + 456 * 789"
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("bench.sp", []byte(input))
	file := fs.Get(fileID)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		lx := lexer.New(file, lexer.Options{})
		for {
			tok := lx.Next()
			if tok.Kind == token.EOF {
				break
			}
		}
	}
}

func BenchmarkLexerLargeFile(b *testing.B) {
	var sb strings.Builder
	for i := 0; i < 100; i++ {
		sb.WriteString(fmt.Sprintf("fun f%d(a: int, b: int): int {\n", i))
		sb.WriteString("    return a ** 2 + b \\ 3\n")
		sb.WriteString("}\n")
	}
	input := sb.String()

	fs := source.NewFileSet()
	fileID := fs.AddVirtual("bench.sp", []byte(input))
	file := fs.Get(fileID)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		lx := lexer.New(file, lexer.Options{})
		for {
			tok := lx.Next()
			if tok.Kind == token.EOF {
				break
			}
		}
	}
}
