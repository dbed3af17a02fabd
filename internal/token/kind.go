package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token, raw identifiers included.
	Ident
	// Lifetime represents a lifetime or label such as 'a.
	Lifetime
	// Underscore represents the `_` placeholder.
	Underscore
	// DocComment represents an outer doc comment (/// or /** */).
	DocComment
	// InnerDocComment represents an inner doc comment (//! or /*! */).
	InnerDocComment

	kwBegin
	KwAs       // as
	KwAsync    // async
	KwAwait    // await
	KwBreak    // break
	KwConst    // const
	KwContinue // continue
	KwCrate    // crate
	KwDyn      // dyn
	KwElse     // else
	KwEnum     // enum
	KwExtern   // extern
	KwFalse    // false
	KwFn       // fn
	KwFor      // for
	KwIf       // if
	KwImpl     // impl
	KwIn       // in
	KwLet      // let
	KwLoop     // loop
	KwMatch    // match
	KwMod      // mod
	KwMove     // move
	KwMut      // mut
	KwPub      // pub
	KwRef      // ref
	KwReturn   // return
	KwSelfVal  // self
	KwSelfType // Self
	KwStatic   // static
	KwStruct   // struct
	KwSuper    // super
	KwTrait    // trait
	KwTrue     // true
	KwType     // type
	KwUnsafe   // unsafe
	KwUse      // use
	KwWhere    // where
	KwWhile    // while
	// KwReserved covers keywords reserved for future use (abstract, box, yield, ...).
	KwReserved
	kwEnd

	// CharLit represents a character literal 'x'.
	CharLit
	// ByteLit represents a byte literal b'x'.
	ByteLit
	// StringLit represents a string literal "...".
	StringLit
	// ByteStringLit represents a byte string literal b"...".
	ByteStringLit
	// RawStringLit represents raw (byte) string literals r#"..."#.
	RawStringLit
	// IntLit represents an integer literal with optional suffix.
	IntLit
	// FloatLit represents a float literal with optional suffix.
	FloatLit

	LParen   // (
	RParen   // )
	LBrace   // {
	RBrace   // }
	LBracket // [
	RBracket // ]

	Plus      // +
	Minus     // -
	Star      // *
	Slash     // /
	Percent   // %
	Caret     // ^
	Bang      // !
	Amp       // &
	Pipe      // |
	Eq        // =
	Lt        // <
	Gt        // >
	At        // @
	Dot       // .
	Comma     // ,
	Semicolon // ;
	Colon     // :
	Pound     // #
	Dollar    // $
	Question  // ?
	Tilde     // ~
)

var kindNames = map[Kind]string{
	Invalid:         "Invalid",
	EOF:             "EOF",
	Ident:           "Ident",
	Lifetime:        "Lifetime",
	Underscore:      "Underscore",
	DocComment:      "DocComment",
	InnerDocComment: "InnerDocComment",
	KwReserved:      "KwReserved",
	CharLit:         "CharLit",
	ByteLit:         "ByteLit",
	StringLit:       "StringLit",
	ByteStringLit:   "ByteStringLit",
	RawStringLit:    "RawStringLit",
	IntLit:          "IntLit",
	FloatLit:        "FloatLit",
	LParen:          "LParen",
	RParen:          "RParen",
	LBrace:          "LBrace",
	RBrace:          "RBrace",
	LBracket:        "LBracket",
	RBracket:        "RBracket",
}

var punctChars = map[byte]Kind{
	'+': Plus, '-': Minus, '*': Star, '/': Slash, '%': Percent, '^': Caret,
	'!': Bang, '&': Amp, '|': Pipe, '=': Eq, '<': Lt, '>': Gt, '@': At,
	'.': Dot, ',': Comma, ';': Semicolon, ':': Colon, '#': Pound, '$': Dollar,
	'?': Question, '~': Tilde,
}

// PunctKind maps a punctuation byte to its Kind.
func PunctKind(b byte) (Kind, bool) {
	k, ok := punctChars[b]
	return k, ok
}

// IsPunctByte reports whether b is an operator character, i.e. one that a
// preceding punctuation token can be joined with.
func IsPunctByte(b byte) bool {
	_, ok := punctChars[b]
	return ok
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	if k.IsKeyword() {
		return "Kw(" + keywordText[k] + ")"
	}
	if k.IsPunct() {
		return "Punct(" + punctText[k] + ")"
	}
	return "Kind(?)"
}

// IsKeyword reports whether k is a strict or reserved keyword.
func (k Kind) IsKeyword() bool {
	return k > kwBegin && k < kwEnd
}

// IsPunct reports whether k is a single-character operator.
func (k Kind) IsPunct() bool {
	return k >= Plus && k <= Tilde
}

// IsLiteral reports whether k is a literal of any flavour.
func (k Kind) IsLiteral() bool {
	return k >= CharLit && k <= FloatLit
}

// IsOpenDelim reports whether k opens a group.
func (k Kind) IsOpenDelim() bool {
	return k == LParen || k == LBrace || k == LBracket
}

// IsCloseDelim reports whether k closes a group.
func (k Kind) IsCloseDelim() bool {
	return k == RParen || k == RBrace || k == RBracket
}

// Closer returns the closing delimiter for an opening one.
func (k Kind) Closer() Kind {
	switch k {
	case LParen:
		return RParen
	case LBrace:
		return RBrace
	case LBracket:
		return RBracket
	default:
		return Invalid
	}
}

var punctText = func() map[Kind]string {
	m := make(map[Kind]string, len(punctChars))
	for b, k := range punctChars {
		m[k] = string(b)
	}
	return m
}()
