package parser

import (
	"strings"

	"fncomp/internal/ast"
	"fncomp/internal/diag"
	"fncomp/internal/token"
)

// parseOuterAttrs reads `#[...]` attributes and outer doc comments.
func (p *Parser) parseOuterAttrs() ([]ast.Attr, error) {
	var attrs []ast.Attr
	for !p.eof() {
		attr, next, ok, err := p.tree.AttrAt(p.pos, p.hi)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		attrs = append(attrs, attr)
		p.pos = next
	}
	return attrs, nil
}

// AttrAt recognises an outer attribute starting at token i. It returns the
// attribute, the index right after it and whether one was found. Inner
// attributes are an error: they cannot annotate an item.
func (t *Tree) AttrAt(i, hi int) (ast.Attr, int, bool, error) {
	if i >= hi {
		return ast.Attr{}, i, false, nil
	}
	tok := t.Tokens[i]
	switch tok.Kind {
	case token.DocComment:
		return ast.Attr{Fragment: t.Fragment(i, i+1), Doc: true}, i + 1, true, nil
	case token.InnerDocComment:
		return ast.Attr{}, i, false, errAt(diag.SynUnexpectedToken, tok.Span,
			"expected outer doc comment, found inner doc comment")
	case token.Pound:
	default:
		return ast.Attr{}, i, false, nil
	}

	j := i + 1
	if j < hi && t.Tokens[j].Kind == token.Bang {
		if j+1 < hi && t.Tokens[j+1].Kind == token.LBracket {
			return ast.Attr{}, i, false, errAt(diag.SynUnexpectedToken, t.Span(i, t.Skip(j+1)),
				"an inner attribute is not permitted in this context")
		}
		return ast.Attr{}, i, false, nil
	}
	if j >= hi || t.Tokens[j].Kind != token.LBracket {
		return ast.Attr{}, i, false, nil
	}
	end := t.Close(j)
	lo, inner := j+1, end

	// путь атрибута: ident (:: ident)* с опциональным ведущим ::
	k := lo
	var path strings.Builder
	for k < inner {
		switch {
		case t.isPathSep(k):
			path.WriteString("::")
			k += 2
			continue
		case t.Tokens[k].Kind == token.Ident || t.Tokens[k].Kind.IsKeyword():
			path.WriteString(t.Tokens[k].Text)
			k++
			continue
		}
		break
	}
	if path.Len() == 0 {
		return ast.Attr{}, i, false, errAt(diag.SynExpectIdentifier, t.Span(lo, inner+1),
			"expected attribute path")
	}
	return ast.Attr{
		Fragment: t.Fragment(i, end+1),
		Path:     path.String(),
		Args:     t.Fragment(k, inner),
	}, end + 1, true, nil
}
