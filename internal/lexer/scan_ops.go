package lexer

import (
	"fncomp/internal/token"
)

// scanPunct выдаёт ровно один символ пунктуации или скобку.
// Составные операторы (::, ->, &&) собирает парсер по флагу Joint.
func (lx *Lexer) scanPunct() token.Token {
	start := lx.cursor.Mark()
	ch := lx.cursor.Peek()

	var kind token.Kind
	switch ch {
	case '(':
		kind = token.LParen
	case ')':
		kind = token.RParen
	case '{':
		kind = token.LBrace
	case '}':
		kind = token.RBrace
	case '[':
		kind = token.LBracket
	case ']':
		kind = token.RBracket
	default:
		k, ok := token.PunctKind(ch)
		if !ok {
			return lx.scanUnknown()
		}
		kind = k
	}
	lx.cursor.Bump()

	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind:  kind,
		Span:  sp,
		Text:  lx.text(sp),
		Joint: kind.IsPunct() && token.IsPunctByte(lx.cursor.Peek()),
	}
}
