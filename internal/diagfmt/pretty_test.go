package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"fncomp/internal/diag"
	"fncomp/internal/source"
)

// TestPathModes проверяет различные режимы форматирования путей
func TestPathModes(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("fn foo(props: &mut Props) -> Html {}\n")
	fileID := fs.AddVirtual("/home/user/project/src/lib.rs", content)
	fs.SetBaseDir("/home/user/project")

	bag := diag.NewBag(10)
	bag.Add(diag.New(
		diag.SevError,
		diag.FncInvalidPropsParameter,
		source.Span{File: fileID, Start: 15, End: 18},
		"reference must not be mutable",
	))

	tests := []struct {
		name     string
		mode     PathMode
		contains string
	}{
		{"Absolute path", PathModeAbsolute, "/home/user/project/src/lib.rs:1:16"},
		{"Relative path", PathModeRelative, "src/lib.rs:1:16"},
		{"Basename only", PathModeBasename, "lib.rs:1:16"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Pretty(&buf, bag, fs, PrettyOpts{Context: 1, PathMode: tt.mode})
			output := buf.String()

			if !strings.Contains(output, tt.contains) {
				t.Errorf("Expected output to contain %q, got:\n%s", tt.contains, output)
			}
			if !strings.Contains(output, "ERROR FNC3004: reference must not be mutable") {
				t.Errorf("Expected header line, got:\n%s", output)
			}
		})
	}
}

func TestPrettyCaretUnderline(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("#[functional_component(Foo)]\nfn foo(props: &mut Props) -> Html {}\n")
	fileID := fs.AddVirtual("lib.rs", content)

	bag := diag.NewBag(0)
	// "mut" на второй строке
	start := uint32(strings.Index(string(content), "mut"))
	bag.Add(diag.NewError(diag.FncInvalidPropsParameter, source.Span{File: fileID, Start: start, End: start + 3}, "reference must not be mutable"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{Context: 1})

	want := strings.Join([]string{
		"lib.rs:2:16: ERROR FNC3004: reference must not be mutable",
		"  |",
		"1 | #[functional_component(Foo)]",
		"2 | fn foo(props: &mut Props) -> Html {}",
		"  |                ^^^",
		"",
	}, "\n")
	if got := buf.String(); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestPrettyWideRunes(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("fn 名前(p: u8) {}")
	fileID := fs.AddVirtual("wide.rs", content)
	start := uint32(strings.Index(string(content), "u8"))

	bag := diag.NewBag(0)
	bag.Add(diag.NewError(diag.FncInvalidPropsParameter, source.Span{File: fileID, Start: start, End: start + 2}, "x"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{})
	lines := strings.Split(buf.String(), "\n")
	// "fn 名前(p: " занимает 11 колонок: два иероглифа по 2
	if want := "  | " + strings.Repeat(" ", 11) + "^^"; lines[3] != want {
		t.Errorf("caret line = %q, want %q", lines[3], want)
	}
}

func TestPrettyNotesAndFixes(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("#[functional_component(foo)]\nfn foo() -> Html {}\n")
	fileID := fs.AddVirtual("test.rs", content)

	primary := source.Span{File: fileID, Start: 23, End: 35}
	d := diag.NewError(diag.FncNameCollision, primary, "names clash")
	d = d.WithNote(source.Span{File: fileID, Start: 23, End: 26}, "component name given here")
	d = d.WithFix("rename the component", diag.TextEdit{Span: source.Span{File: fileID, Start: 23, End: 26}, NewText: "Foo"})

	bag := diag.NewBag(4)
	bag.Add(d)

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename, ShowNotes: true, ShowFixes: true})
	output := buf.String()

	if !strings.Contains(output, "note: test.rs:1:24: component name given here") {
		t.Fatalf("expected note with location, got:\n%s", output)
	}
	if !strings.Contains(output, "fix: rename the component") {
		t.Fatalf("expected fix title, got:\n%s", output)
	}
	if !strings.Contains(output, `1:24 "foo" -> "Foo"`) {
		t.Fatalf("expected fix edit, got:\n%s", output)
	}
}

func TestPrettyColor(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("c.rs", []byte("fn f() {}"))
	bag := diag.NewBag(0)
	bag.Add(diag.NewError(diag.FncMissingReturnType, source.Span{File: fileID, Start: 5, End: 6}, "m"))

	var plain, colored bytes.Buffer
	Pretty(&plain, bag, fs, PrettyOpts{})
	Pretty(&colored, bag, fs, PrettyOpts{Color: true})
	if strings.Contains(plain.String(), "\x1b[") {
		t.Error("plain output must not contain escape sequences")
	}
	if !strings.Contains(colored.String(), "\x1b[") {
		t.Error("colored output must contain escape sequences")
	}
}
