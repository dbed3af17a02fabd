package ast

import (
	"fncomp/internal/source"
	"fncomp/internal/token"
)

type ItemKind uint8

const (
	// ItemOther is any item that is not a function: struct, impl, use, const...
	ItemOther ItemKind = iota
	ItemFn
)

func (k ItemKind) String() string {
	if k == ItemFn {
		return "fn"
	}
	return "item"
}

// Item is one annotated item.
type Item struct {
	Kind  ItemKind
	Attrs []Attr
	Vis   Visibility
	// Fn is set only for ItemFn.
	Fn   *FnItem
	Span source.Span
}

// FnItem is a function with a body.
type FnItem struct {
	Const  *token.Token
	Async  *token.Token
	Unsafe *token.Token
	Abi    *Abi
	Name   Ident
	// Generics is nil when no `<...>` was written.
	Generics *Generics
	Params   []Param
	// Parens covers `(` ... `)` of the parameter list.
	Parens source.Span
	// RParen is the closing parenthesis of the parameter list.
	RParen source.Span
	// Output is nil for the implicit unit return.
	Output *Type
	Where  *Fragment
	Body   Block
	Span   source.Span
}

// Abi is `extern` with an optional ABI string.
type Abi struct {
	Extern token.Token
	Name   *token.Token
	Span   source.Span
}

// Generics is `<...>` after the function name.
type Generics struct {
	Fragment
	Params []Fragment
}

// Block is the function body kept as an opaque `{ ... }` region.
type Block struct {
	Fragment
}
