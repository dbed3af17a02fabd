package parser

import (
	"fncomp/internal/ast"
	"fncomp/internal/diag"
	"fncomp/internal/token"
)

// parseType builds a Type for tokens [lo, hi). References are decomposed
// recursively, so `&&T` is a reference to `&T`. Other types stay opaque.
func (p *Parser) parseType(lo, hi int) (*ast.Type, error) {
	if lo >= hi {
		return nil, errAt(diag.SynExpectType, p.tree.endSpan(lo), "expected type, found %s", foundAt(p.tree, lo))
	}
	ty := &ast.Type{Fragment: p.tree.Fragment(lo, hi)}
	if p.tree.Tokens[lo].Kind != token.Amp {
		return ty, nil
	}

	ref := &ast.RefType{Amp: p.tree.Tokens[lo]}
	i := lo + 1
	if i < hi && p.tree.Tokens[i].Kind == token.Lifetime {
		lt := p.tree.Tokens[i]
		ref.Lifetime = &lt
		i++
	}
	if i < hi && p.tree.Tokens[i].Kind == token.KwMut {
		m := p.tree.Tokens[i]
		ref.Mut = &m
		i++
	}
	elem, err := p.parseType(i, hi)
	if err != nil {
		return nil, err
	}
	ref.Elem = elem
	ty.Ref = ref
	return ty, nil
}
