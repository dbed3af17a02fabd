package parser

import "fncomp/internal/token"

// ItemEnd returns the index right after the item whose first token (after
// its attributes) is at i. Items with a block body (fn, mod, impl, trait,
// struct, enum, union, extern blocks, macro_rules!) end at that block;
// everything else ends at the first top-level `;`. Returns hi when no
// terminator is found.
func (t *Tree) ItemEnd(i, hi int) int {
	blockItem := false
	for k := i; k < hi; {
		tok := t.Tokens[k]
		switch {
		case tok.Kind == token.Semicolon:
			return k + 1
		case tok.Kind == token.LBrace:
			end := t.Close(k) + 1
			if blockItem {
				return end
			}
			k = end
			continue
		case isBlockItemKeyword(tok):
			blockItem = true
		case tok.Kind == token.KwExtern && k+1 < hi && t.Tokens[k+1].Kind != token.KwFn:
			// extern "C" { ... } и extern crate x;
			blockItem = true
		case tok.Kind == token.Ident && (tok.Text == "union" || tok.Text == "macro_rules"):
			blockItem = true
		}
		k = t.Skip(k)
	}
	return hi
}

func isBlockItemKeyword(tok token.Token) bool {
	switch tok.Kind {
	case token.KwFn, token.KwMod, token.KwImpl, token.KwTrait, token.KwStruct, token.KwEnum:
		return true
	}
	return false
}
