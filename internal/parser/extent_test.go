package parser

import (
	"testing"

	"fncomp/internal/lexer"
	"fncomp/internal/source"
)

func buildTree(t *testing.T, input string) *Tree {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.rs", []byte(input)))
	tree, err := Build(file, lexer.New(file, lexer.Options{}).All())
	if err != nil {
		t.Fatalf("build %q: %v", input, err)
	}
	return tree
}

func TestItemEnd(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"fn", "fn a() -> Html { html! {} } fn b() {}", "fn a() -> Html { html! {} }"},
		{"fn where", "fn a<T>() where T: X { } struct S;", "fn a<T>() where T: X { }"},
		{"unit struct", "struct S; fn f() {}", "struct S;"},
		{"braced struct", "pub struct S { a: u8 } fn f() {}", "pub struct S { a: u8 }"},
		{"const with struct literal", "const C: S = S { a: 1 }; fn f() {}", "const C: S = S { a: 1 };"},
		{"static", "static F: u8 = 1; fn f() {}", "static F: u8 = 1;"},
		{"static with block", "static X: u8 = { 1 }; x", "static X: u8 = { 1 };"},
		{"mod", "mod m { fn f() {} } x", "mod m { fn f() {} }"},
		{"extern block", "extern \"C\" { fn f(); } x", "extern \"C\" { fn f(); }"},
		{"extern fn", "extern \"C\" fn f() {} x", "extern \"C\" fn f() {}"},
		{"extern crate", "extern crate yew; x", "extern crate yew;"},
		{"use", "use a::{b, c}; x", "use a::{b, c};"},
		{"macro_rules", "macro_rules! m { () => {} } x", "macro_rules! m { () => {} }"},
		{"let statement", "let x = Foo { a: 1 }; y", "let x = Foo { a: 1 };"},
		{"unterminated", "type A = B", "type A = B"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := buildTree(t, tt.input)
			end := tree.ItemEnd(0, tree.Len())
			if got := tree.Text(0, end); got != tt.want {
				t.Errorf("item = %q, want %q", got, tt.want)
			}
		})
	}
}
