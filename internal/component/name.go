package component

import (
	"fncomp/internal/ast"
	"fncomp/internal/diag"
	"fncomp/internal/token"
)

// ResolveName parses the attribute argument as exactly one identifier.
// Collisions with the function name are left to CrossValidate.
func ResolveName(attr Attribute) (ComponentName, error) {
	if len(attr.Args) == 0 {
		return ComponentName{}, newError(MissingComponentName, attr.Span, "expected identifier for the component")
	}
	first := attr.Args[0]
	if first.Kind != token.Ident {
		msg := "expected identifier, found `" + first.Text + "`"
		if first.Kind.IsKeyword() {
			msg = "expected identifier, found keyword `" + first.Text + "`"
		}
		return ComponentName{}, &Error{Kind: Syntax, Span: first.Span, Message: msg, Code: diag.SynExpectIdentifier}
	}
	if len(attr.Args) > 1 {
		extra := attr.Args[1]
		return ComponentName{}, &Error{
			Kind:    Syntax,
			Span:    extra.Span,
			Message: "unexpected token",
			Code:    diag.SynUnexpectedToken,
		}
	}
	return ComponentName{Ident: ast.NewIdent(first)}, nil
}
