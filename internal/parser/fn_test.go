package parser

import (
	"testing"

	"fncomp/internal/ast"
	"fncomp/internal/diag"
)

// TestParseFn_Signatures проверяет разбор типичных сигнатур компонентов
func TestParseFn_Signatures(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantName   string
		wantParams int
		wantOutput string
		wantBody   string
	}{
		{
			name:       "props reference",
			input:      "fn foo(props: &Props) -> Html { html! {} }",
			wantName:   "foo",
			wantParams: 1,
			wantOutput: "Html",
			wantBody:   "{ html! {} }",
		},
		{
			name:       "no params",
			input:      "fn foo() -> Html {}",
			wantName:   "foo",
			wantParams: 0,
			wantOutput: "Html",
			wantBody:   "{}",
		},
		{
			name:       "no return type",
			input:      "fn foo(props: &Props) {}",
			wantName:   "foo",
			wantParams: 1,
			wantBody:   "{}",
		},
		{
			name:       "generic arguments with commas",
			input:      "fn foo(m: &HashMap<String, Vec<u8>>, n: u8) -> ::yew::Html { m }",
			wantName:   "foo",
			wantParams: 2,
			wantOutput: "::yew::Html",
			wantBody:   "{ m }",
		},
		{
			name:       "tuple pattern",
			input:      "fn foo((a, b): (u8, u8)) -> Html {}",
			wantName:   "foo",
			wantParams: 1,
			wantOutput: "Html",
			wantBody:   "{}",
		},
		{
			name:       "fn pointer param with arrow",
			input:      "fn foo(cb: &dyn Fn(u8) -> bool) -> Html {}",
			wantName:   "foo",
			wantParams: 1,
			wantOutput: "Html",
			wantBody:   "{}",
		},
		{
			name:       "trailing comma",
			input:      "fn foo(p: &P,) -> Html {}",
			wantName:   "foo",
			wantParams: 1,
			wantOutput: "Html",
			wantBody:   "{}",
		},
		{
			name:       "raw identifier",
			input:      "fn r#type() -> Html {}",
			wantName:   "r#type",
			wantParams: 0,
			wantOutput: "Html",
			wantBody:   "{}",
		},
		{
			name:       "where clause",
			input:      "fn foo(p: &P) -> Html where P: Clone { p }",
			wantName:   "foo",
			wantParams: 1,
			wantOutput: "Html",
			wantBody:   "{ p }",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn := mustFn(t, tt.input)
			if fn.Name.Text != tt.wantName {
				t.Errorf("name = %q, want %q", fn.Name.Text, tt.wantName)
			}
			if len(fn.Params) != tt.wantParams {
				t.Errorf("params = %d, want %d", len(fn.Params), tt.wantParams)
			}
			gotOutput := ""
			if fn.Output != nil {
				gotOutput = fn.Output.Text
			}
			if gotOutput != tt.wantOutput {
				t.Errorf("output = %q, want %q", gotOutput, tt.wantOutput)
			}
			if fn.Body.Text != tt.wantBody {
				t.Errorf("body = %q, want %q", fn.Body.Text, tt.wantBody)
			}
		})
	}
}

func TestParseFn_Qualifiers(t *testing.T) {
	fn := mustFn(t, `const async unsafe extern "C" fn foo() {}`)
	if fn.Const == nil || fn.Async == nil || fn.Unsafe == nil || fn.Abi == nil {
		t.Fatalf("qualifiers not recorded: %+v", fn)
	}
	if fn.Abi.Name == nil || fn.Abi.Name.Text != `"C"` {
		t.Errorf("abi name = %v", fn.Abi.Name)
	}

	fn = mustFn(t, "extern fn foo() {}")
	if fn.Abi == nil || fn.Abi.Name != nil {
		t.Errorf("bare extern: %+v", fn.Abi)
	}

	perr, _ := parseErr(t, "async async fn foo() {}")
	wantCode(t, perr, diag.SynUnexpectedToken)
}

func TestParseFn_Generics(t *testing.T) {
	tests := []struct {
		input      string
		wantParams int
	}{
		{"fn foo<>() {}", 0},
		{"fn foo<T>() {}", 1},
		{"fn foo<'a, T: Into<Vec<u8>>, const N: usize>() {}", 3},
		{"fn foo<F: Fn() -> u8>() {}", 1},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			fn := mustFn(t, tt.input)
			if fn.Generics == nil {
				t.Fatal("generics not recorded")
			}
			if len(fn.Generics.Params) != tt.wantParams {
				t.Errorf("params = %d, want %d", len(fn.Generics.Params), tt.wantParams)
			}
		})
	}
}

func TestParseFn_ParamSpans(t *testing.T) {
	item, file, err := parseSource(t, "fn foo(a: &A, b: u32) -> Html {}")
	if err != nil {
		t.Fatal(err)
	}
	fn := item.Fn
	if got := file.Text(fn.Params[1].Span); got != "b: u32" {
		t.Errorf("second param text = %q", got)
	}
	if got := fn.Params[1].Render(); got != "b : u32" {
		t.Errorf("second param render = %q", got)
	}
	if got := file.Text(fn.RParen); got != ")" {
		t.Errorf("rparen text = %q", got)
	}
	if got := file.Text(fn.Parens); got != "(a: &A, b: u32)" {
		t.Errorf("parens text = %q", got)
	}
}

func TestParseFn_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  diag.Code
	}{
		{"missing name", "fn () {}", diag.SynExpectIdentifier},
		{"missing params", "fn foo {}", diag.SynExpectParams},
		{"missing body", "fn foo();", diag.SynExpectBody},
		{"missing type after arrow", "fn foo() -> {}", diag.SynExpectType},
		{"missing param type", "fn foo(a) {}", diag.SynExpectType},
		{"empty param type", "fn foo(a:) {}", diag.SynExpectType},
		{"unclosed paren", "fn foo(a: &A {}", diag.SynUnclosedDelimiter},
		{"mismatched", "fn foo(a: &A] {}", diag.SynUnmatchedDelimiter},
		{"stray closer", "fn foo() {}}", diag.SynUnmatchedDelimiter},
		{"trailing tokens", "fn foo() {} fn bar() {}", diag.SynUnexpectedToken},
		{"unclosed generics", "fn foo<T() {}", diag.SynUnclosedDelimiter},
		{"lex error", "fn foo() { \"open }", diag.LexUnterminatedString},
		{"empty input", "   ", diag.SynUnexpectedToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			perr, _ := parseErr(t, tt.input)
			wantCode(t, perr, tt.code)
		})
	}
}

func TestParseItem_NotAFunction(t *testing.T) {
	inputs := []string{
		"struct Foo;",
		"pub struct Foo { a: u8 }",
		"const X: u8 = 1;",
		"unsafe impl Send for Foo {}",
		"extern crate foo;",
		`extern "C" { fn abs(x: i32) -> i32; }`,
		"impl Foo { fn bar(&self) {} }",
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			item := mustParse(t, in)
			if item.Kind != ast.ItemOther {
				t.Errorf("kind = %v, want item", item.Kind)
			}
		})
	}
}
