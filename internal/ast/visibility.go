package ast

import "fncomp/internal/source"

// VisKind описывает доступность элемента.
type VisKind uint8

const (
	VisPrivate VisKind = iota
	VisPublic
	// VisCrate is the legacy `crate` visibility.
	VisCrate
	// VisRestricted is pub(crate), pub(super), pub(self) or pub(in path).
	VisRestricted
)

func (k VisKind) String() string {
	switch k {
	case VisPublic:
		return "public"
	case VisCrate:
		return "crate"
	case VisRestricted:
		return "restricted"
	default:
		return "private"
	}
}

// Visibility is the visibility qualifier of an item.
type Visibility struct {
	Kind VisKind
	// Text is the qualifier in canonical form ("pub", "pub(crate)", "pub(in a::b)"), empty when private.
	Text string
	Span source.Span
}

func (v Visibility) String() string {
	if v.Kind == VisPrivate {
		return "private"
	}
	return v.Text
}
