package parser

import (
	"fncomp/internal/ast"
	"fncomp/internal/diag"
	"fncomp/internal/lexer"
	"fncomp/internal/source"
	"fncomp/internal/token"
)

// Parser: состояние разбора одного item.
type Parser struct {
	tree *Tree
	pos  int
	hi   int
}

// ParseItem parses exactly one item from toks. Non-function items are
// returned with Kind ast.ItemOther and no further validation.
func ParseItem(file *source.File, toks []token.Token) (*ast.Item, error) {
	tree, err := Build(file, toks)
	if err != nil {
		return nil, err
	}
	return ParseTreeItem(tree, 0, tree.Len())
}

// ParseTreeItem parses the item made of tokens [lo, hi) of an already built tree.
func ParseTreeItem(tree *Tree, lo, hi int) (*ast.Item, error) {
	p := &Parser{tree: tree, pos: lo, hi: hi}
	return p.parseItem()
}

// ParseSpan lexes span of file and parses the item inside it. The first
// lexical error, if any, is returned as *Error.
func ParseSpan(file *source.File, span source.Span) (*ast.Item, error) {
	toks, err := LexSpan(file, span)
	if err != nil {
		return nil, err
	}
	return ParseItem(file, toks)
}

// LexSpan lexes span of file and fails on the first lexical error.
func LexSpan(file *source.File, span source.Span) ([]token.Token, error) {
	bag := diag.NewBag(0)
	toks := lexer.NewRange(file, span, lexer.Options{Reporter: diag.BagReporter{Bag: bag}}).All()
	if bag.HasErrors() {
		d := bag.Items()[0]
		return nil, &Error{Code: d.Code, Span: d.Primary, Msg: d.Message}
	}
	return toks, nil
}

func (p *Parser) eof() bool { return p.pos >= p.hi }

func (p *Parser) peek() token.Token {
	return p.peekAt(0)
}

func (p *Parser) peekAt(n int) token.Token {
	if p.pos+n >= p.hi {
		return token.Token{Kind: token.EOF, Span: p.tree.endSpan(p.hi)}
	}
	return p.tree.Tokens[p.pos+n]
}

func (p *Parser) at(k token.Kind) bool {
	return !p.eof() && p.tree.Tokens[p.pos].Kind == k
}

func (p *Parser) advance() token.Token {
	tok := p.peek()
	if !p.eof() {
		p.pos++
	}
	return tok
}

func (p *Parser) ptr(tok token.Token) *token.Token {
	return &tok
}

// found describes the current token for "expected X, found Y" messages.
func (p *Parser) found() string {
	if p.eof() {
		return "end of input"
	}
	return "`" + p.peek().Text + "`"
}

func (p *Parser) unexpected(code diag.Code, what string) *Error {
	return errAt(code, p.peek().Span, "expected %s, found %s", what, p.found())
}

func (p *Parser) parseItem() (*ast.Item, error) {
	start := p.pos
	if p.eof() {
		return nil, errAt(diag.SynUnexpectedToken, p.tree.endSpan(p.pos), "expected item, found end of input")
	}

	attrs, err := p.parseOuterAttrs()
	if err != nil {
		return nil, err
	}
	vis := p.parseVisibility()
	item := &ast.Item{Kind: ast.ItemOther, Attrs: attrs, Vis: vis}

	if !p.atFnHead() {
		item.Span = p.tree.Span(start, p.hi)
		return item, nil
	}

	fn, err := p.parseFn()
	if err != nil {
		return nil, err
	}
	item.Kind = ast.ItemFn
	item.Fn = fn
	item.Span = p.tree.Span(start, p.pos)
	return item, nil
}

// atFnHead looks past `const`, `async`, `unsafe` and `extern "abi"` for `fn`.
func (p *Parser) atFnHead() bool {
	for i := p.pos; i < p.hi; i++ {
		switch tok := p.tree.Tokens[i]; tok.Kind {
		case token.KwConst, token.KwAsync, token.KwUnsafe, token.KwExtern:
		case token.StringLit, token.RawStringLit:
			if i == p.pos || p.tree.Tokens[i-1].Kind != token.KwExtern {
				return false
			}
		case token.KwFn:
			return true
		default:
			return false
		}
	}
	return false
}
