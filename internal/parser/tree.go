package parser

import (
	"fncomp/internal/ast"
	"fncomp/internal/diag"
	"fncomp/internal/source"
	"fncomp/internal/token"
)

// Tree is a token list whose delimiters are known to be balanced.
type Tree struct {
	File   *source.File
	Tokens []token.Token
	// match[i] is the index of the closing delimiter for an opening one at i
	// (and the opening index for a closing one); -1 elsewhere.
	match []int
}

// Build checks delimiter balance and indexes groups. A trailing EOF token is dropped.
func Build(file *source.File, toks []token.Token) (*Tree, error) {
	if n := len(toks); n > 0 && toks[n-1].Kind == token.EOF {
		toks = toks[:n-1]
	}
	match := make([]int, len(toks))
	stack := make([]int, 0, 8)
	for i, tok := range toks {
		match[i] = -1
		switch {
		case tok.Kind == token.Invalid:
			return nil, errAt(diag.SynUnexpectedToken, tok.Span, "unexpected token `%s`", tok.Text)
		case tok.Kind.IsOpenDelim():
			stack = append(stack, i)
		case tok.Kind.IsCloseDelim():
			if len(stack) == 0 {
				return nil, errAt(diag.SynUnmatchedDelimiter, tok.Span, "unexpected closing delimiter: `%s`", tok.Text)
			}
			open := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if toks[open].Kind.Closer() != tok.Kind {
				return nil, errAt(diag.SynUnmatchedDelimiter, tok.Span,
					"mismatched closing delimiter: `%s` does not close `%s`", tok.Text, toks[open].Text)
			}
			match[open] = i
			match[i] = open
		}
	}
	if len(stack) > 0 {
		open := toks[stack[len(stack)-1]]
		return nil, errAt(diag.SynUnclosedDelimiter, open.Span, "unclosed delimiter `%s`", open.Text)
	}
	return &Tree{File: file, Tokens: toks, match: match}, nil
}

// Len returns the number of tokens.
func (t *Tree) Len() int { return len(t.Tokens) }

// Close returns the index of the delimiter closing the group opened at i.
func (t *Tree) Close(i int) int { return t.match[i] }

// Skip returns the index after the token tree starting at i: the whole
// group for an opening delimiter, a single token otherwise.
func (t *Tree) Skip(i int) int {
	if t.Tokens[i].Kind.IsOpenDelim() {
		return t.match[i] + 1
	}
	return i + 1
}

// Span covers tokens [lo, hi).
func (t *Tree) Span(lo, hi int) source.Span {
	if lo >= hi {
		return t.endSpan(lo)
	}
	return t.Tokens[lo].Span.Cover(t.Tokens[hi-1].Span)
}

// Text returns the verbatim source of tokens [lo, hi).
func (t *Tree) Text(lo, hi int) string {
	if lo >= hi || t.File == nil {
		return ""
	}
	return t.File.Text(t.Span(lo, hi))
}

// Fragment builds an ast.Fragment for tokens [lo, hi).
func (t *Tree) Fragment(lo, hi int) ast.Fragment {
	return ast.Fragment{
		Tokens: t.Tokens[lo:hi:hi],
		Text:   t.Text(lo, hi),
		Span:   t.Span(lo, hi),
	}
}

// endSpan is an empty span right before token i, or after the last token.
func (t *Tree) endSpan(i int) source.Span {
	if i < len(t.Tokens) {
		sp := t.Tokens[i].Span
		return source.Span{File: sp.File, Start: sp.Start, End: sp.Start}
	}
	if len(t.Tokens) == 0 {
		return source.Span{}
	}
	sp := t.Tokens[len(t.Tokens)-1].Span
	return source.Span{File: sp.File, Start: sp.End, End: sp.End}
}

// isPathSep reports whether tokens i, i+1 form `::`.
func (t *Tree) isPathSep(i int) bool {
	return i >= 0 && i+1 < len(t.Tokens) &&
		t.Tokens[i].Kind == token.Colon && t.Tokens[i].Joint &&
		t.Tokens[i+1].Kind == token.Colon
}

// isArrow reports whether tokens i, i+1 form `->`.
func (t *Tree) isArrow(i int) bool {
	return i+1 < len(t.Tokens) &&
		t.Tokens[i].Kind == token.Minus && t.Tokens[i].Joint &&
		t.Tokens[i+1].Kind == token.Gt
}

// isFatArrow reports whether tokens i, i+1 form `=>`.
func (t *Tree) isFatArrow(i int) bool {
	return i+1 < len(t.Tokens) &&
		t.Tokens[i].Kind == token.Eq && t.Tokens[i].Joint &&
		t.Tokens[i+1].Kind == token.Gt
}
