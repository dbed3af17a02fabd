package token

import "testing"

func tok(k Kind, text string) Token { return Token{Kind: k, Text: text} }

func joint(k Kind, text string) Token { return Token{Kind: k, Text: text, Joint: true} }

func TestRender(t *testing.T) {
	tests := []struct {
		name string
		toks []Token
		want string
	}{
		{
			name: "plain ident",
			toks: []Token{tok(Ident, "Props")},
			want: "Props",
		},
		{
			name: "generic type",
			toks: []Token{tok(Ident, "Vec"), tok(Lt, "<"), tok(Ident, "u8"), tok(Gt, ">")},
			want: "Vec < u8 >",
		},
		{
			name: "path with joint colons",
			toks: []Token{joint(Colon, ":"), tok(Colon, ":"), tok(Ident, "yew"), joint(Colon, ":"), tok(Colon, ":"), tok(Ident, "Html")},
			want: ":: yew :: Html",
		},
		{
			name: "parenthesized list",
			toks: []Token{tok(LParen, "("), tok(Ident, "a"), tok(Comma, ","), tok(Ident, "b"), tok(RParen, ")")},
			want: "(a , b)",
		},
		{
			name: "empty tuple",
			toks: []Token{tok(LParen, "("), tok(RParen, ")")},
			want: "()",
		},
		{
			name: "brace groups",
			toks: []Token{tok(LBrace, "{"), tok(RBrace, "}"), tok(LBrace, "{"), tok(Ident, "x"), tok(RBrace, "}")},
			want: "{ } { x }",
		},
		{
			name: "typed parameter",
			toks: []Token{tok(Ident, "b"), tok(Colon, ":"), tok(Ident, "u32")},
			want: "b : u32",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Render(tt.toks); got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLookupKeyword(t *testing.T) {
	if k, ok := LookupKeyword("fn"); !ok || k != KwFn {
		t.Errorf("fn: got %v,%v", k, ok)
	}
	if k, ok := LookupKeyword("Self"); !ok || k != KwSelfType {
		t.Errorf("Self: got %v,%v", k, ok)
	}
	if _, ok := LookupKeyword("Fn"); ok {
		t.Error("keywords are case sensitive")
	}
	if k, _ := LookupKeyword("yield"); !k.IsKeyword() {
		t.Error("reserved keywords must report IsKeyword")
	}
}

func TestKindString(t *testing.T) {
	if got := KwFn.String(); got != "Kw(fn)" {
		t.Errorf("KwFn.String() = %q", got)
	}
	if got := Amp.String(); got != "Punct(&)" {
		t.Errorf("Amp.String() = %q", got)
	}
	if got := Lifetime.String(); got != "Lifetime" {
		t.Errorf("Lifetime.String() = %q", got)
	}
}
