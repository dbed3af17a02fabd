package ast

import (
	"fncomp/internal/source"
	"fncomp/internal/token"
)

type ParamKind uint8

const (
	// ParamTyped is `pattern: Type`.
	ParamTyped ParamKind = iota
	// ParamReceiver is self, &self, &mut self, self: Box<Self>, ...
	ParamReceiver
)

// Param is one function parameter.
type Param struct {
	Fragment
	Kind    ParamKind
	Attrs   []Attr
	Pattern Fragment
	// Type is nil for shorthand receivers.
	Type *Type
}

// IgnoredUnitParam synthesizes `_: &()` for functions without parameters.
func IgnoredUnitParam(at source.Span) Param {
	at = source.Span{File: at.File, Start: at.Start, End: at.Start}
	ty := UnitRef(at)
	under := token.Token{Kind: token.Underscore, Text: "_", Span: at}
	colon := token.Token{Kind: token.Colon, Text: ":", Span: at}
	toks := append([]token.Token{under, colon}, ty.Tokens...)
	return Param{
		Fragment: Fragment{Tokens: toks, Text: "_: &()", Span: at},
		Kind:     ParamTyped,
		Pattern:  Fragment{Tokens: []token.Token{under}, Text: "_", Span: at},
		Type:     ty,
	}
}
