package parser

import (
	"errors"
	"testing"

	"fncomp/internal/ast"
	"fncomp/internal/diag"
	"fncomp/internal/source"
)

func parseSource(t *testing.T, input string) (*ast.Item, *source.File, error) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.rs", []byte(input)))
	item, err := ParseSpan(file, source.Span{File: file.ID, Start: 0, End: uint32(len(file.Content))})
	return item, file, err
}

func mustParse(t *testing.T, input string) *ast.Item {
	t.Helper()
	item, _, err := parseSource(t, input)
	if err != nil {
		t.Fatalf("parse %q: %v", input, err)
	}
	return item
}

func mustFn(t *testing.T, input string) *ast.FnItem {
	t.Helper()
	item := mustParse(t, input)
	if item.Kind != ast.ItemFn || item.Fn == nil {
		t.Fatalf("parse %q: expected fn item, got %v", input, item.Kind)
	}
	return item.Fn
}

func parseErr(t *testing.T, input string) (*Error, *source.File) {
	t.Helper()
	_, file, err := parseSource(t, input)
	if err == nil {
		t.Fatalf("parse %q: expected error", input)
	}
	var perr *Error
	if !errors.As(err, &perr) {
		t.Fatalf("parse %q: error %T is not *parser.Error", input, err)
	}
	return perr, file
}

func wantCode(t *testing.T, err *Error, code diag.Code) {
	t.Helper()
	if err.Code != code {
		t.Fatalf("got [%s] %s, want %s", err.Code.ID(), err.Msg, code.ID())
	}
}
