package lexer

import (
	"fncomp/internal/diag"
	"fncomp/internal/token"
)

// collectLeadingTrivia собирает подряд идущие trivia перед значимым токеном.
//   - ' ', '\t', '\r' коалесцируются в один TriviaSpace
//   - последовательные '\n' коалесцируются в один TriviaNewline
//   - //... до \n -> TriviaLineComment
//   - /* ... */ -> TriviaBlockComment (с вложенностью)
//
// Doc-комментарии (///, //!, /** */, /*! */): это атрибуты, а не trivia:
// на них сбор останавливается, и Next вернёт их токеном.
func (lx *Lexer) collectLeadingTrivia() {
	lx.hold = lx.hold[:0]
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		b := lx.cursor.Peek()

		if b == ' ' || b == '\t' || b == '\r' {
			for {
				b2 := lx.cursor.Peek()
				if b2 != ' ' && b2 != '\t' && b2 != '\r' {
					break
				}
				lx.cursor.Bump()
			}
			sp := lx.cursor.SpanFrom(start)
			lx.hold = append(lx.hold, token.Trivia{Kind: token.TriviaSpace, Span: sp, Text: lx.text(sp)})
			continue
		}

		if b == '\n' {
			for lx.cursor.Peek() == '\n' {
				lx.cursor.Bump()
			}
			sp := lx.cursor.SpanFrom(start)
			lx.hold = append(lx.hold, token.Trivia{Kind: token.TriviaNewline, Span: sp, Text: lx.text(sp)})
			continue
		}

		if b == '/' && !lx.atDocComment() && lx.scanCommentIntoHold() {
			continue
		}

		break
	}
}

// atDocComment reports whether the cursor stands on ///, //!, /** or /*!.
// "////" and "/**/" are ordinary comments.
func (lx *Lexer) atDocComment() bool {
	if lx.cursor.Peek() != '/' {
		return false
	}
	b1, b2, b3 := lx.cursor.PeekAt(1), lx.cursor.PeekAt(2), lx.cursor.PeekAt(3)
	switch b1 {
	case '/':
		return b2 == '!' || (b2 == '/' && b3 != '/')
	case '*':
		return b2 == '!' || (b2 == '*' && b3 != '*' && b3 != '/')
	}
	return false
}

// //... и /*...*/
func (lx *Lexer) scanCommentIntoHold() bool {
	start := lx.cursor.Mark()
	if !lx.cursor.Eat('/') {
		return false
	}
	switch lx.cursor.Peek() {
	case '/':
		lx.skipLine()
		sp := lx.cursor.SpanFrom(start)
		lx.hold = append(lx.hold, token.Trivia{Kind: token.TriviaLineComment, Span: sp, Text: lx.text(sp)})
		return true

	case '*':
		lx.cursor.Bump()
		lx.skipBlockComment(start)
		sp := lx.cursor.SpanFrom(start)
		lx.hold = append(lx.hold, token.Trivia{Kind: token.TriviaBlockComment, Span: sp, Text: lx.text(sp)})
		return true

	default:
		// это не комментарий, вернёмся, пусть сканируется как оператор '/'
		lx.cursor.Reset(start)
		return false
	}
}

// scanDocComment lexes a doc comment as a token.
func (lx *Lexer) scanDocComment() (token.Token, bool) {
	if !lx.atDocComment() {
		return token.Token{}, false
	}
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '/'
	kind := token.DocComment
	if lx.cursor.Bump() == '/' {
		if lx.cursor.Peek() == '!' {
			kind = token.InnerDocComment
		}
		lx.skipLine()
	} else {
		if lx.cursor.Peek() == '!' {
			kind = token.InnerDocComment
		}
		lx.skipBlockComment(start)
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}, true
}

func (lx *Lexer) skipLine() {
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
}

// skipBlockComment consumes the rest of a block comment whose "/*" is already eaten.
func (lx *Lexer) skipBlockComment(start Mark) {
	depth := 1
	for !lx.cursor.EOF() && depth > 0 {
		b0, b1 := lx.cursor.Peek(), lx.cursor.PeekAt(1)
		switch {
		case b0 == '/' && b1 == '*':
			lx.cursor.Bump()
			lx.cursor.Bump()
			depth++
		case b0 == '*' && b1 == '/':
			lx.cursor.Bump()
			lx.cursor.Bump()
			depth--
		default:
			lx.cursor.Bump()
		}
	}
	if depth > 0 {
		lx.errLex(diag.LexUnterminatedBlockComment, lx.cursor.SpanFrom(start), "unterminated block comment")
	}
}
