package ast

import (
	"golang.org/x/text/unicode/norm"

	"fncomp/internal/source"
	"fncomp/internal/token"
)

// Ident is an identifier as written in source.
type Ident struct {
	// Text is the verbatim source text, `r#` prefix included.
	Text string
	// Name is Text in Unicode NFC; identifiers are compared by Name.
	Name string
	Span source.Span
}

// NewIdent builds an Ident from an identifier token.
func NewIdent(tok token.Token) Ident {
	return Ident{
		Text: tok.Text,
		Name: norm.NFC.String(tok.Text),
		Span: tok.Span,
	}
}

// Raw reports whether the identifier was written as r#name.
func (id Ident) Raw() bool {
	return len(id.Text) > 2 && id.Text[0] == 'r' && id.Text[1] == '#'
}

// SameAs сравнивает идентификаторы так же, как это делает rustc: после NFC.
func (id Ident) SameAs(other Ident) bool {
	return id.Name == other.Name
}

func (id Ident) String() string { return id.Text }
