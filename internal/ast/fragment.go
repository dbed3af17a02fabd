package ast

import (
	"fncomp/internal/source"
	"fncomp/internal/token"
)

// Fragment is a contiguous run of tokens together with the source text it
// was parsed from. Text is empty for synthesized fragments.
type Fragment struct {
	Tokens []token.Token
	Text   string
	Span   source.Span
}

// Render returns the token-stream form of the fragment.
func (f Fragment) Render() string {
	return token.Render(f.Tokens)
}

// Source returns the verbatim text, falling back to the rendered tokens.
func (f Fragment) Source() string {
	if f.Text != "" {
		return f.Text
	}
	return f.Render()
}

// SpanOf covers the spans of the first and the last token.
func SpanOf(toks []token.Token) source.Span {
	if len(toks) == 0 {
		return source.Span{}
	}
	return toks[0].Span.Cover(toks[len(toks)-1].Span)
}
