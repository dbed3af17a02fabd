package parser

import (
	"testing"

	"fncomp/internal/ast"
)

func TestParseParams_Receivers(t *testing.T) {
	tests := []struct {
		input    string
		receiver bool
		hasType  bool
	}{
		{"fn f(self) {}", true, false},
		{"fn f(&self) {}", true, false},
		{"fn f(&mut self) {}", true, false},
		{"fn f(&'a self) {}", true, false},
		{"fn f(mut self) {}", true, false},
		{"fn f(self: Box<Self>) {}", true, true},
		{"fn f(this: &Self) {}", false, true},
		{"fn f(_: &()) {}", false, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			fn := mustFn(t, tt.input)
			if len(fn.Params) != 1 {
				t.Fatalf("params = %d", len(fn.Params))
			}
			p := fn.Params[0]
			if (p.Kind == ast.ParamReceiver) != tt.receiver {
				t.Errorf("receiver = %v, want %v", p.Kind == ast.ParamReceiver, tt.receiver)
			}
			if (p.Type != nil) != tt.hasType {
				t.Errorf("has type = %v, want %v", p.Type != nil, tt.hasType)
			}
		})
	}
}

func TestParseParams_Attributes(t *testing.T) {
	fn := mustFn(t, "fn f(#[allow(unused)] props: &Props) -> Html {}")
	p := fn.Params[0]
	if len(p.Attrs) != 1 || p.Attrs[0].Path != "allow" {
		t.Fatalf("attrs = %+v", p.Attrs)
	}
	if p.Pattern.Text != "props" {
		t.Errorf("pattern = %q", p.Pattern.Text)
	}
	if p.Text != "#[allow(unused)] props: &Props" {
		t.Errorf("param text = %q", p.Text)
	}
}

func TestParseParams_PathTypes(t *testing.T) {
	fn := mustFn(t, "fn f(p: &crate::props::Props) -> Html {}")
	ty := fn.Params[0].Type
	if !ty.IsRef() {
		t.Fatal("expected reference")
	}
	if ty.Ref.Elem.Text != "crate::props::Props" {
		t.Errorf("elem = %q", ty.Ref.Elem.Text)
	}
}
