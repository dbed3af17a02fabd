package component

import (
	"fncomp/internal/ast"
	"fncomp/internal/source"
	"fncomp/internal/token"
)

var zeroSpan source.Span

// FunctionIR is a function that passed every signature check.
type FunctionIR struct {
	Body ast.Block
	// PropsType is the referent of the parameter reference.
	PropsType ast.Type
	// Arg is the user's parameter, or the synthesized `_: &()`.
	Arg   ast.Param
	Vis   ast.Visibility
	Attrs []ast.Attr
	Name  ast.Ident
	// ReturnType only anchors diagnostics; emitted code uses the contract output type.
	ReturnType ast.Type
	// Synthesized is set when the function had no parameters.
	Synthesized bool
}

// ComponentName is the identifier given in the attribute.
type ComponentName struct {
	Ident ast.Ident
}

func (n ComponentName) String() string { return n.Ident.Text }

// Attribute is the invocation site: the whole attribute and the tokens of
// its argument list without the surrounding parentheses.
type Attribute struct {
	Span source.Span
	Args []token.Token
}

// AttributeFrom extracts the argument list of `#[path(args)]`. `#[path]`
// yields empty arguments; any other form is a Syntax error.
func AttributeFrom(a ast.Attr) (Attribute, error) {
	attr := Attribute{Span: a.Span}
	toks := a.Args.Tokens
	if len(toks) == 0 {
		return attr, nil
	}
	if toks[0].Kind != token.LParen || !closesFirst(toks) {
		return attr, &Error{
			Kind:    Syntax,
			Span:    a.Args.Span,
			Message: "expected parenthesized component name, found `" + toks[0].Text + "`",
		}
	}
	attr.Args = toks[1 : len(toks)-1]
	return attr, nil
}

// closesFirst reports whether the last token closes the group opened by the first.
func closesFirst(toks []token.Token) bool {
	depth := 0
	for i, t := range toks {
		switch {
		case t.Kind.IsOpenDelim():
			depth++
		case t.Kind.IsCloseDelim():
			depth--
			if depth == 0 {
				return i == len(toks)-1
			}
		}
	}
	return false
}
