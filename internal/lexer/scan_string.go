package lexer

import (
	"fncomp/internal/diag"
	"fncomp/internal/token"
)

// scanString сканирует "..." начиная с текущей кавычки. Строки в Rust
// могут быть многострочными; escape-последовательности не валидируем,
// только пропускаем символ после '\'.
func (lx *Lexer) scanString(kind token.Kind) token.Token {
	start := lx.cursor.Mark()
	return lx.finishString(start, kind)
}

func (lx *Lexer) finishString(start Mark, kind token.Kind) token.Token {
	lx.cursor.Bump() // opening '"'
	for !lx.cursor.EOF() {
		switch lx.cursor.Bump() {
		case '"':
			lx.scanSuffix()
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}
		case '\\':
			lx.cursor.Bump()
		}
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedString, sp, "unterminated double quote string")
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}

// atStringPrefix: b'x', b"..", br"..", r"..", r#".."#, c"..", cr"..".
func (lx *Lexer) atStringPrefix() bool {
	b0, b1, b2 := lx.cursor.Peek(), lx.cursor.PeekAt(1), lx.cursor.PeekAt(2)
	rawStart := func(x, y byte) bool { return x == '"' || (x == '#' && (y == '"' || y == '#')) }
	switch b0 {
	case 'b':
		return b1 == '\'' || b1 == '"' || (b1 == 'r' && rawStart(b2, lx.cursor.PeekAt(3)))
	case 'c':
		return b1 == '"' || (b1 == 'r' && rawStart(b2, lx.cursor.PeekAt(3)))
	case 'r':
		return rawStart(b1, b2)
	}
	return false
}

func (lx *Lexer) scanPrefixedLiteral() token.Token {
	start := lx.cursor.Mark()
	first := lx.cursor.Bump()
	raw := first == 'r'
	if !raw && lx.cursor.Peek() == 'r' {
		lx.cursor.Bump()
		raw = true
	}

	switch {
	case raw:
		return lx.finishRawString(start)
	case lx.cursor.Peek() == '\'':
		return lx.finishChar(start, token.ByteLit)
	case first == 'b':
		return lx.finishString(start, token.ByteStringLit)
	default:
		return lx.finishString(start, token.StringLit)
	}
}

// finishRawString: cursor stands on the '#'s or the opening quote.
func (lx *Lexer) finishRawString(start Mark) token.Token {
	hashes := 0
	for lx.cursor.Peek() == '#' {
		lx.cursor.Bump()
		hashes++
	}
	if !lx.cursor.Eat('"') {
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexBadRawString, sp, "expected '\"' after raw string prefix")
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
	}
	for !lx.cursor.EOF() {
		if lx.cursor.Bump() != '"' {
			continue
		}
		n := 0
		for n < hashes && lx.cursor.Peek() == '#' {
			lx.cursor.Bump()
			n++
		}
		if n == hashes {
			lx.scanSuffix()
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.RawStringLit, Span: sp, Text: lx.text(sp)}
		}
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedString, sp, "unterminated raw string")
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}

// scanCharOrLifetime различает 'a' (символ) и 'a (lifetime / метка).
func (lx *Lexer) scanCharOrLifetime() token.Token {
	start := lx.cursor.Mark()

	if lx.cursor.PeekAt(1) == '\\' {
		return lx.finishChar(start, token.CharLit)
	}

	lx.cursor.Bump() // '
	r, sz := lx.peekRune()
	if sz == 0 {
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnterminatedChar, sp, "unterminated character literal")
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
	}
	// 'x' это символ, если сразу за руной закрывающая кавычка
	if lx.cursor.PeekAt(uint32(sz)) == '\'' { // #nosec G115 -- rune size is at most 4
		lx.bumpRune()
		lx.cursor.Bump()
		lx.scanSuffix()
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.CharLit, Span: sp, Text: lx.text(sp)}
	}
	if isIdentStartRune(r) {
		lx.scanIdentTail()
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.Lifetime, Span: sp, Text: lx.text(sp)}
	}

	lx.bumpRune()
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedChar, sp, "unterminated character literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}

// finishChar: cursor stands on the opening quote of an escaped or byte char.
func (lx *Lexer) finishChar(start Mark, kind token.Kind) token.Token {
	lx.cursor.Bump() // '
	for !lx.cursor.EOF() {
		switch lx.cursor.Peek() {
		case '\'':
			lx.cursor.Bump()
			lx.scanSuffix()
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}
		case '\\':
			lx.cursor.Bump()
			lx.cursor.Bump()
		case '\n':
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexUnterminatedChar, sp, "unterminated character literal")
			return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
		default:
			lx.bumpRune()
		}
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedChar, sp, "unterminated character literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}
