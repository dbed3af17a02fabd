package parser

import (
	"fncomp/internal/ast"
	"fncomp/internal/diag"
	"fncomp/internal/token"
)

// parseParams разбирает содержимое скобок (lo, hi) списка параметров.
func (p *Parser) parseParams(lo, hi int) ([]ast.Param, error) {
	var params []ast.Param
	for _, r := range p.tree.splitTop(lo, hi) {
		if r[0] == r[1] {
			return nil, errAt(diag.SynUnexpectedToken, p.tree.Tokens[r[0]].Span, "expected parameter, found `,`")
		}
		param, err := p.parseParam(r[0], r[1])
		if err != nil {
			return nil, err
		}
		params = append(params, param)
	}
	return params, nil
}

// parseParam: #[attrs] pattern: Type, либо receiver (self, &self, &'a mut self, self: T).
func (p *Parser) parseParam(lo, hi int) (ast.Param, error) {
	sub := &Parser{tree: p.tree, pos: lo, hi: hi}
	attrs, err := sub.parseOuterAttrs()
	if err != nil {
		return ast.Param{}, err
	}
	patLo := sub.pos
	if patLo == hi {
		return ast.Param{}, errAt(diag.SynUnexpectedToken, p.tree.endSpan(hi), "expected parameter pattern")
	}
	colon := p.tree.scanTop(patLo, hi, func(i int) bool {
		return p.tree.Tokens[i].Kind == token.Colon && !p.tree.isPathSep(i) && !p.tree.isPathSep(i-1)
	})

	param := ast.Param{
		Fragment: p.tree.Fragment(lo, hi),
		Attrs:    attrs,
		Pattern:  p.tree.Fragment(patLo, colon),
	}
	receiver := p.isReceiver(patLo, colon)

	if colon == hi {
		if !receiver {
			return ast.Param{}, errAt(diag.SynExpectType, p.tree.endSpan(hi), "expected `:`, found %s", foundAt(p.tree, hi))
		}
		param.Kind = ast.ParamReceiver
		return param, nil
	}
	if colon+1 == hi {
		return ast.Param{}, errAt(diag.SynExpectType, p.tree.endSpan(hi), "expected type, found %s", foundAt(p.tree, hi))
	}
	ty, err := p.parseType(colon+1, hi)
	if err != nil {
		return ast.Param{}, err
	}
	param.Type = ty
	if receiver {
		param.Kind = ast.ParamReceiver
	}
	return param, nil
}

// isReceiver checks the pattern shape `[&['a]] [mut] self`.
func (p *Parser) isReceiver(lo, hi int) bool {
	i := lo
	if i < hi && p.tree.Tokens[i].Kind == token.Amp {
		i++
		if i < hi && p.tree.Tokens[i].Kind == token.Lifetime {
			i++
		}
	}
	if i < hi && p.tree.Tokens[i].Kind == token.KwMut {
		i++
	}
	return i+1 == hi && p.tree.Tokens[i].Kind == token.KwSelfVal
}

func foundAt(t *Tree, i int) string {
	if i >= len(t.Tokens) {
		return "end of input"
	}
	return "`" + t.Tokens[i].Text + "`"
}
