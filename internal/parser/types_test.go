package parser

import "testing"

func TestParseType_References(t *testing.T) {
	tests := []struct {
		input    string
		ref      bool
		lifetime string
		mut      bool
		elem     string
	}{
		{"fn f(p: &Props) {}", true, "", false, "Props"},
		{"fn f(p: &'a Props) {}", true, "'a", false, "Props"},
		{"fn f(p: &mut Props) {}", true, "", true, "Props"},
		{"fn f(p: &'static mut Props) {}", true, "'static", true, "Props"},
		{"fn f(p: &&Props) {}", true, "", false, "&Props"},
		{"fn f(p: &[u8; 4]) {}", true, "", false, "[u8; 4]"},
		{"fn f(p: Props) {}", false, "", false, ""},
		{"fn f(p: Box<&Props>) {}", false, "", false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			ty := mustFn(t, tt.input).Params[0].Type
			if ty.IsRef() != tt.ref {
				t.Fatalf("IsRef = %v, want %v", ty.IsRef(), tt.ref)
			}
			if !tt.ref {
				return
			}
			gotLt := ""
			if ty.Ref.Lifetime != nil {
				gotLt = ty.Ref.Lifetime.Text
			}
			if gotLt != tt.lifetime {
				t.Errorf("lifetime = %q, want %q", gotLt, tt.lifetime)
			}
			if (ty.Ref.Mut != nil) != tt.mut {
				t.Errorf("mut = %v, want %v", ty.Ref.Mut != nil, tt.mut)
			}
			if ty.Ref.Elem.Text != tt.elem {
				t.Errorf("elem = %q, want %q", ty.Ref.Elem.Text, tt.elem)
			}
		})
	}
}

func TestParseType_NestedRefDecomposed(t *testing.T) {
	ty := mustFn(t, "fn f(p: &&Props) {}").Params[0].Type
	if !ty.Ref.Elem.IsRef() || ty.Ref.Elem.Ref.Elem.Text != "Props" {
		t.Errorf("inner reference not decomposed: %+v", ty.Ref.Elem)
	}
}
