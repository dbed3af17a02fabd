package lexer_test

import (
	"fmt"
	"testing"

	"fncomp/internal/diag"
	"fncomp/internal/lexer"
	"fncomp/internal/source"
	"fncomp/internal/token"
)

// testReporter собирает все диагностики, полученные от лексера
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

func (r *testReporter) messages() []string {
	out := make([]string, 0, len(r.diagnostics))
	for _, d := range r.diagnostics {
		out = append(out, fmt.Sprintf("[%s] %s", d.Code.ID(), d.Message))
	}
	return out
}

// lexAll создаёт лексер для тестовой строки и собирает все токены до EOF
func lexAll(input string) ([]token.Token, *testReporter) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.rs", []byte(input)))
	reporter := &testReporter{}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	return lx.All(), reporter
}

type expectTok struct {
	kind token.Kind
	text string
}

func checkTokens(t *testing.T, input string, want []expectTok) {
	t.Helper()
	toks, rep := lexAll(input)
	if len(rep.diagnostics) > 0 {
		t.Fatalf("unexpected diagnostics: %v", rep.messages())
	}
	if len(toks) != len(want)+1 {
		t.Fatalf("got %d tokens, want %d: %v", len(toks)-1, len(want), toks)
	}
	for i, w := range want {
		if toks[i].Kind != w.kind || toks[i].Text != w.text {
			t.Errorf("token %d: got %v %q, want %v %q", i, toks[i].Kind, toks[i].Text, w.kind, w.text)
		}
	}
	if toks[len(toks)-1].Kind != token.EOF {
		t.Errorf("last token must be EOF")
	}
}

func TestFunctionHeader(t *testing.T) {
	checkTokens(t, "pub fn foo(props: &Props) -> Html {}", []expectTok{
		{token.KwPub, "pub"},
		{token.KwFn, "fn"},
		{token.Ident, "foo"},
		{token.LParen, "("},
		{token.Ident, "props"},
		{token.Colon, ":"},
		{token.Amp, "&"},
		{token.Ident, "Props"},
		{token.RParen, ")"},
		{token.Minus, "-"},
		{token.Gt, ">"},
		{token.Ident, "Html"},
		{token.LBrace, "{"},
		{token.RBrace, "}"},
	})
}

func TestLifetimesAndChars(t *testing.T) {
	checkTokens(t, `&'a T 'x' '\n' 'static b'q'`, []expectTok{
		{token.Amp, "&"},
		{token.Lifetime, "'a"},
		{token.Ident, "T"},
		{token.CharLit, "'x'"},
		{token.CharLit, `'\n'`},
		{token.Lifetime, "'static"},
		{token.ByteLit, "b'q'"},
	})
}

func TestStrings(t *testing.T) {
	checkTokens(t, `"a\"b" b"bytes" r"raw" r#"has "quotes""# br##"x"## "multi
line"`, []expectTok{
		{token.StringLit, `"a\"b"`},
		{token.ByteStringLit, `b"bytes"`},
		{token.RawStringLit, `r"raw"`},
		{token.RawStringLit, `r#"has "quotes""#`},
		{token.RawStringLit, `br##"x"##`},
		{token.StringLit, "\"multi\nline\""},
	})
}

func TestRawIdentAndUnderscore(t *testing.T) {
	checkTokens(t, "r#type _ _x self Self", []expectTok{
		{token.Ident, "r#type"},
		{token.Underscore, "_"},
		{token.Ident, "_x"},
		{token.KwSelfVal, "self"},
		{token.KwSelfType, "Self"},
	})
}

func TestNumbers(t *testing.T) {
	checkTokens(t, "42 1_000u32 0xFFu8 3.14 1e10 2f32 0..5 x.0", []expectTok{
		{token.IntLit, "42"},
		{token.IntLit, "1_000u32"},
		{token.IntLit, "0xFFu8"},
		{token.FloatLit, "3.14"},
		{token.FloatLit, "1e10"},
		{token.FloatLit, "2f32"},
		{token.IntLit, "0"},
		{token.Dot, "."},
		{token.Dot, "."},
		{token.IntLit, "5"},
		{token.Ident, "x"},
		{token.Dot, "."},
		{token.IntLit, "0"},
	})
}

func TestJointPunctuation(t *testing.T) {
	toks, _ := lexAll("a::b -> && > >")
	// a : : b - > & & > >
	wantJoint := []bool{false, true, false, false, true, false, true, false, false, false}
	for i, w := range wantJoint {
		if toks[i].Joint != w {
			t.Errorf("token %d (%q): Joint = %v, want %v", i, toks[i].Text, toks[i].Joint, w)
		}
	}
}

func TestCommentsAreTrivia(t *testing.T) {
	toks, rep := lexAll("// line\n/* block /* nested */ */ fn")
	if len(rep.diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %v", rep.messages())
	}
	if toks[0].Kind != token.KwFn {
		t.Fatalf("first token = %v", toks[0].Kind)
	}
	kinds := make([]token.TriviaKind, 0, len(toks[0].Leading))
	for _, tr := range toks[0].Leading {
		kinds = append(kinds, tr.Kind)
	}
	want := []token.TriviaKind{token.TriviaLineComment, token.TriviaNewline, token.TriviaBlockComment, token.TriviaSpace}
	if fmt.Sprint(kinds) != fmt.Sprint(want) {
		t.Errorf("leading trivia = %v, want %v", kinds, want)
	}
}

func TestDocCommentsAreTokens(t *testing.T) {
	checkTokens(t, "/// outer\n//! inner\n//// plain\n/** block */ /**/ fn", []expectTok{
		{token.DocComment, "/// outer"},
		{token.InnerDocComment, "//! inner"},
		{token.DocComment, "/** block */"},
		{token.KwFn, "fn"},
	})
}

func TestLexErrors(t *testing.T) {
	tests := []struct {
		input string
		code  diag.Code
	}{
		{`"open`, diag.LexUnterminatedString},
		{"/* open", diag.LexUnterminatedBlockComment},
		{`'\n`, diag.LexUnterminatedChar},
		{"€", diag.LexUnknownChar},
		{`r#"open`, diag.LexUnterminatedString},
		{"0x", diag.LexBadNumber},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, rep := lexAll(tt.input)
			if len(rep.diagnostics) == 0 {
				t.Fatalf("expected %s, got nothing", tt.code.ID())
			}
			if rep.diagnostics[0].Code != tt.code {
				t.Errorf("got %v, want %s", rep.messages(), tt.code.ID())
			}
		})
	}
}

func TestSpansMatchText(t *testing.T) {
	input := "#[doc = \"x\"] pub(crate) fn ünï<'a>(x: &'a str) {}"
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.rs", []byte(input)))
	for _, tok := range lexer.New(file, lexer.Options{}).All() {
		if got := file.Text(tok.Span); got != tok.Text {
			t.Errorf("span text %q != token text %q", got, tok.Text)
		}
	}
}

func TestNewRange(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.rs", []byte("aaa bbb ccc")))
	toks := lexer.NewRange(file, source.Span{Start: 4, End: 7}, lexer.Options{}).All()
	if len(toks) != 2 || toks[0].Text != "bbb" || toks[0].Span.Start != 4 {
		t.Fatalf("unexpected tokens: %v", toks)
	}
}
