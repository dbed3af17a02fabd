package component

import (
	"testing"

	"fncomp/internal/abi"
	"fncomp/internal/ast"
	"fncomp/internal/parser"
	"fncomp/internal/source"
)

type invocation struct {
	file *source.File
	item *ast.Item
	attr Attribute
}

// prepare parses src and splits off the functional_component attribute.
func prepare(t *testing.T, src string) (invocation, error) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.rs", []byte(src)))
	item, err := parser.ParseSpan(file, source.Span{File: file.ID, End: uint32(len(file.Content))})
	if err != nil {
		return invocation{file: file}, SyntaxError(err)
	}
	for i, a := range item.Attrs {
		if !a.IsNamed("functional_component") {
			continue
		}
		item.Attrs = append(item.Attrs[:i:i], item.Attrs[i+1:]...)
		attr, err := AttributeFrom(a)
		return invocation{file: file, item: item, attr: attr}, err
	}
	t.Fatalf("no functional_component attribute in %q", src)
	return invocation{}, nil
}

func expand(t *testing.T, src string) (*Generated, *source.File, error) {
	t.Helper()
	inv, err := prepare(t, src)
	if err != nil {
		return nil, inv.file, err
	}
	gen, err := Expand(inv.item, inv.attr, abi.Default())
	return gen, inv.file, err
}

func mustExpand(t *testing.T, src string) *Generated {
	t.Helper()
	gen, _, err := expand(t, src)
	if err != nil {
		t.Fatalf("expand %q: %v", src, err)
	}
	return gen
}

// expandErr runs the pass and returns the error together with the source
// text under its primary span.
func expandErr(t *testing.T, src string) (*Error, string) {
	t.Helper()
	_, file, err := expand(t, src)
	if err == nil {
		t.Fatalf("expand %q: expected error", src)
	}
	e, ok := AsError(err)
	if !ok {
		t.Fatalf("expand %q: error %T is not *component.Error", src, err)
	}
	return e, file.Text(e.Span)
}
