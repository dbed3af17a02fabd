package component

import (
	"errors"

	"fncomp/internal/diag"
	"fncomp/internal/parser"
	"fncomp/internal/source"
)

// Kind classifies pass failures.
type Kind uint8

const (
	NotAFunction Kind = iota + 1
	UnsupportedModifier
	ReceiverNotAllowed
	InvalidPropsParameter
	TooManyParameters
	MissingReturnType
	MissingComponentName
	NameCollision
	// Syntax covers lexical and syntax errors in the item or the attribute argument.
	Syntax
	// BadContract means the runtime contract failed validation; it is a
	// configuration error, not a problem of the annotated function.
	BadContract
)

var kindNames = [...]string{
	NotAFunction:          "NotAFunction",
	UnsupportedModifier:   "UnsupportedModifier",
	ReceiverNotAllowed:    "ReceiverNotAllowed",
	InvalidPropsParameter: "InvalidPropsParameter",
	TooManyParameters:     "TooManyParameters",
	MissingReturnType:     "MissingReturnType",
	MissingComponentName:  "MissingComponentName",
	NameCollision:         "NameCollision",
	Syntax:                "Syntax",
	BadContract:           "BadContract",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}

// Modifier refines UnsupportedModifier.
type Modifier uint8

const (
	ModNone Modifier = iota
	ModGenerics
	ModAsync
	ModConst
	ModExternAbi
)

func (m Modifier) String() string {
	switch m {
	case ModGenerics:
		return "generics"
	case ModAsync:
		return "async"
	case ModConst:
		return "const"
	case ModExternAbi:
		return "extern-abi"
	default:
		return ""
	}
}

// Error is the single failure of one invocation.
type Error struct {
	Kind     Kind
	Modifier Modifier
	Span     source.Span
	Message  string
	Notes    []diag.Note
	Fixes    []diag.Fix
	// Code is set for Syntax errors to the lexer or parser code.
	Code diag.Code
}

func (e *Error) Error() string { return e.Message }

// Is matches errors of the same kind, so errors.Is(err, &Error{Kind: k}) works.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind && (t.Modifier == ModNone || t.Modifier == e.Modifier)
}

func newError(kind Kind, sp source.Span, msg string) *Error {
	return &Error{Kind: kind, Span: sp, Message: msg}
}

func (e *Error) withFix(f diag.Fix) *Error {
	e.Fixes = append(e.Fixes, f)
	return e
}

// SyntaxError converts a parser failure into a pass error. Other errors are
// returned unchanged.
func SyntaxError(err error) error {
	var perr *parser.Error
	if errors.As(err, &perr) {
		return &Error{Kind: Syntax, Span: perr.Span, Message: perr.Msg, Code: perr.Code}
	}
	return err
}

// AsError extracts *Error from err.
func AsError(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}
