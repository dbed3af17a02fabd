package token

import "strings"

// Render prints tokens in token-stream form: one space between tokens,
// no space after joint punctuation, "(a , b)" for parenthesis and bracket
// groups and "{ a }" for brace groups. The output does not depend on the
// original whitespace, which keeps diagnostics stable under reformatting.
func Render(toks []Token) string {
	var b strings.Builder
	prev := Invalid
	prevJoint := false
	for i, tok := range toks {
		if tok.Kind == EOF {
			break
		}
		if i > 0 && needsSpace(prev, prevJoint, tok.Kind) {
			b.WriteByte(' ')
		}
		b.WriteString(tok.Text)
		if tok.Kind == LBrace {
			b.WriteByte(' ')
		}
		prev = tok.Kind
		prevJoint = tok.Joint && tok.Kind.IsPunct()
	}
	return b.String()
}

func needsSpace(prev Kind, prevJoint bool, cur Kind) bool {
	switch {
	case prevJoint:
		return false
	case prev == LParen || prev == LBracket || prev == LBrace:
		// "{ " уже напечатан вместе со скобкой
		return false
	case cur == RParen || cur == RBracket:
		return false
	}
	return true
}
