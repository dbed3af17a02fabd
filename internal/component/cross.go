package component

import "fncomp/internal/diag"

// CrossValidate rejects a component name equal to the function name. The
// marker type takes the function name, so the alias would clash with it.
func CrossValidate(ir *FunctionIR, name ComponentName) error {
	if !ir.Name.SameAs(name.Ident) {
		return nil
	}
	e := newError(NameCollision, name.Ident.Span.Cover(ir.Name.Span),
		"the function name `"+ir.Name.Text+"` and component name `"+name.Ident.Text+"` must not be the same")
	e.Notes = []diag.Note{{Span: name.Ident.Span, Msg: "component name given here"}}
	return e
}
