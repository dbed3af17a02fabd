package parser

import (
	"fncomp/internal/ast"
	"fncomp/internal/diag"
	"fncomp/internal/token"
)

// parseFn разбирает `qualifiers fn name<generics>(params) -> Ret where ... { body }`.
// Курсор стоит на первом квалификаторе или на `fn`.
func (p *Parser) parseFn() (*ast.FnItem, error) {
	start := p.pos
	fn := &ast.FnItem{}
	if err := p.parseQualifiers(fn); err != nil {
		return nil, err
	}
	p.advance() // fn

	if !p.at(token.Ident) {
		return nil, p.unexpected(diag.SynExpectIdentifier, "identifier")
	}
	fn.Name = ast.NewIdent(p.advance())

	if p.at(token.Lt) {
		g, err := p.parseGenerics()
		if err != nil {
			return nil, err
		}
		fn.Generics = g
	}

	if !p.at(token.LParen) {
		return nil, p.unexpected(diag.SynExpectParams, "`(`")
	}
	open := p.pos
	end := p.tree.Close(open)
	params, err := p.parseParams(open+1, end)
	if err != nil {
		return nil, err
	}
	fn.Params = params
	fn.Parens = p.tree.Span(open, end+1)
	fn.RParen = p.tree.Tokens[end].Span
	p.pos = end + 1

	if p.tree.isArrow(p.pos) && p.pos+1 < p.hi {
		p.pos += 2
		lo := p.pos
		hi := p.tree.scanTop(lo, p.hi, func(i int) bool {
			k := p.tree.Tokens[i].Kind
			return k == token.KwWhere || k == token.LBrace || k == token.Semicolon
		})
		if lo == hi {
			return nil, p.unexpected(diag.SynExpectType, "type")
		}
		ty, err := p.parseType(lo, hi)
		if err != nil {
			return nil, err
		}
		fn.Output = ty
		p.pos = hi
	}

	if p.at(token.KwWhere) {
		lo := p.pos
		hi := p.tree.scanTop(lo+1, p.hi, func(i int) bool {
			k := p.tree.Tokens[i].Kind
			return k == token.LBrace || k == token.Semicolon
		})
		w := p.tree.Fragment(lo, hi)
		fn.Where = &w
		p.pos = hi
	}

	if !p.at(token.LBrace) {
		return nil, p.unexpected(diag.SynExpectBody, "`{`")
	}
	bodyEnd := p.tree.Close(p.pos)
	fn.Body = ast.Block{Fragment: p.tree.Fragment(p.pos, bodyEnd+1)}
	p.pos = bodyEnd + 1

	if !p.eof() {
		return nil, errAt(diag.SynUnexpectedToken, p.peek().Span,
			"unexpected token `%s` after function body", p.peek().Text)
	}
	fn.Span = p.tree.Span(start, p.pos)
	return fn, nil
}

// parseQualifiers: const, async, unsafe, extern "abi". Each at most once.
func (p *Parser) parseQualifiers(fn *ast.FnItem) error {
	for {
		tok := p.peek()
		var slot **token.Token
		switch tok.Kind {
		case token.KwFn:
			return nil
		case token.KwConst:
			slot = &fn.Const
		case token.KwAsync:
			slot = &fn.Async
		case token.KwUnsafe:
			slot = &fn.Unsafe
		case token.KwExtern:
			if fn.Abi != nil {
				return errAt(diag.SynUnexpectedToken, tok.Span, "duplicate `extern` qualifier")
			}
			p.advance()
			abi := &ast.Abi{Extern: tok, Span: tok.Span}
			if k := p.peek().Kind; k == token.StringLit || k == token.RawStringLit {
				name := p.advance()
				abi.Name = &name
				abi.Span = abi.Span.Cover(name.Span)
			}
			fn.Abi = abi
			continue
		default:
			return p.unexpected(diag.SynUnexpectedToken, "`fn`")
		}
		if *slot != nil {
			return errAt(diag.SynUnexpectedToken, tok.Span, "duplicate `%s` qualifier", tok.Text)
		}
		*slot = p.ptr(p.advance())
	}
}

// parseGenerics reads `<...>` and splits it into parameters.
func (p *Parser) parseGenerics() (*ast.Generics, error) {
	lo := p.pos
	end := p.tree.closeAngle(lo, p.hi)
	if end < 0 {
		return nil, errAt(diag.SynUnclosedDelimiter, p.peek().Span, "unclosed generic parameter list")
	}
	g := &ast.Generics{Fragment: p.tree.Fragment(lo, end+1)}
	for _, r := range p.tree.splitTop(lo+1, end) {
		if r[0] == r[1] {
			return nil, errAt(diag.SynUnexpectedToken, p.tree.Span(r[0], r[0]+1), "expected generic parameter")
		}
		g.Params = append(g.Params, p.tree.Fragment(r[0], r[1]))
	}
	p.pos = end + 1
	return g, nil
}
