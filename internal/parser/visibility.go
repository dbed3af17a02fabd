package parser

import (
	"strings"

	"fncomp/internal/ast"
	"fncomp/internal/token"
)

// parseVisibility: pub, pub(crate), pub(self), pub(super), pub(in path), crate.
// Anything else leaves the item private.
func (p *Parser) parseVisibility() ast.Visibility {
	tok := p.peek()
	switch {
	case tok.Kind == token.KwPub:
		p.advance()
		vis := ast.Visibility{Kind: ast.VisPublic, Text: "pub", Span: tok.Span}
		if !p.at(token.LParen) {
			return vis
		}
		open := p.pos
		end := p.tree.Close(open)
		if inner, ok := p.restriction(open+1, end); ok {
			p.pos = end + 1
			vis.Kind = ast.VisRestricted
			vis.Text = "pub(" + inner + ")"
			vis.Span = tok.Span.Cover(p.tree.Tokens[end].Span)
		}
		return vis

	case tok.Kind == token.KwCrate && !p.tree.isPathSep(p.pos+1):
		p.advance()
		return ast.Visibility{Kind: ast.VisCrate, Text: "crate", Span: tok.Span}
	}
	return ast.Visibility{Kind: ast.VisPrivate, Span: p.tree.endSpan(p.pos)}
}

// restriction returns the canonical text inside pub(...). `pub (A, B)` is
// not a restriction and yields false.
func (p *Parser) restriction(lo, hi int) (string, bool) {
	toks := p.tree.Tokens[lo:hi]
	if len(toks) == 1 {
		switch toks[0].Kind {
		case token.KwCrate, token.KwSelfVal, token.KwSuper:
			return toks[0].Text, true
		}
		return "", false
	}
	if len(toks) < 2 || toks[0].Kind != token.KwIn {
		return "", false
	}
	var b strings.Builder
	b.WriteString("in ")
	for _, t := range toks[1:] {
		switch t.Kind {
		case token.Ident, token.Colon, token.KwCrate, token.KwSelfVal, token.KwSuper:
			b.WriteString(t.Text)
		default:
			return "", false
		}
	}
	return b.String(), true
}
