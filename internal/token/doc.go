// Package token defines lexical token kinds and trivia for Rust source text.
// Invariants:
//   - Token.Text is a slice of the original source (no copies).
//   - Token.Span matches Text exactly (Begin..End).
//   - Punctuation is always one character per token. Multi-character operators
//     (`::`, `->`, `&&`, `>>`) are sequences of tokens with Joint set on every
//     token but the last, the same way compiler token trees model them.
//   - Lifetimes ('a) are single tokens. Char literals are distinguished from
//     lifetimes by the lexer.
//   - Outer and inner doc comments are tokens (they are attributes in Rust);
//     ordinary comments and whitespace are leading Trivia.
package token
