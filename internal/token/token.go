package token

import (
	"fncomp/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
	// Joint is set on punctuation immediately followed by another operator
	// character, e.g. the first ':' of "::".
	Joint   bool
	Leading []Trivia
}

// IsLiteral reports whether the token is a literal.
func (t Token) IsLiteral() bool { return t.Kind.IsLiteral() }

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool { return t.Kind.IsKeyword() }

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// IsRawIdent reports whether the token is a raw identifier such as r#type.
func (t Token) IsRawIdent() bool {
	return t.Kind == Ident && len(t.Text) > 2 && t.Text[0] == 'r' && t.Text[1] == '#'
}

// Is reports whether the token has kind k.
func (t Token) Is(k Kind) bool { return t.Kind == k }
