package ast

import (
	"fncomp/internal/source"
	"fncomp/internal/token"
)

// Type is a type expression. Only references are decomposed.
type Type struct {
	Fragment
	Ref *RefType
}

// RefType is `&'a mut T`.
type RefType struct {
	Amp      token.Token
	Lifetime *token.Token
	Mut      *token.Token
	Elem     *Type
}

// IsRef reports whether the type is a reference.
func (t *Type) IsRef() bool { return t != nil && t.Ref != nil }

// UnitRef is the synthesized `&()` type; its referent is `()`.
func UnitRef(at source.Span) *Type {
	at = source.Span{File: at.File, Start: at.Start, End: at.Start}
	unit := []token.Token{
		{Kind: token.LParen, Text: "(", Span: at},
		{Kind: token.RParen, Text: ")", Span: at},
	}
	amp := token.Token{Kind: token.Amp, Text: "&", Span: at}
	return &Type{
		Fragment: Fragment{Tokens: append([]token.Token{amp}, unit...), Text: "&()", Span: at},
		Ref: &RefType{
			Amp:  amp,
			Elem: &Type{Fragment: Fragment{Tokens: unit, Text: "()", Span: at}},
		},
	}
}
