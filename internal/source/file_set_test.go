package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("lib.rs", []byte("fn a() {}"), 0)
	id2 := fs.Add("lib.rs", []byte("fn b() {}"), 0)
	if id1 == id2 {
		t.Fatalf("expected distinct ids, got %d twice", id1)
	}

	latest, ok := fs.GetLatest("lib.rs")
	if !ok || latest != id2 {
		t.Errorf("GetLatest = %d,%v; want %d,true", latest, ok, id2)
	}

	// старая версия остаётся доступной
	if got := string(fs.Get(id1).Content); got != "fn a() {}" {
		t.Errorf("first version content = %q", got)
	}
	if fs.Get(FileID(42)) != nil {
		t.Error("unknown id must resolve to nil")
	}
}

func TestResolveLineCol(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.rs", []byte("ab\ncd\n\nxyz"))

	tests := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{Line: 1, Col: 1}},
		{2, LineCol{Line: 1, Col: 3}}, // сам перевод строки
		{3, LineCol{Line: 2, Col: 1}},
		{6, LineCol{Line: 3, Col: 1}},
		{7, LineCol{Line: 4, Col: 1}},
		{9, LineCol{Line: 4, Col: 3}},
	}
	for _, tt := range tests {
		start, _ := fs.Resolve(Span{File: id, Start: tt.off, End: tt.off})
		if start != tt.want {
			t.Errorf("offset %d: got %+v, want %+v", tt.off, start, tt.want)
		}
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	f := fs.Get(fs.AddVirtual("test.rs", []byte("first\nsecond\nthird")))

	for i, want := range []string{"", "first", "second", "third", ""} {
		if got := f.GetLine(uint32(i)); got != want {
			t.Errorf("GetLine(%d) = %q, want %q", i, got, want)
		}
	}
}

func TestTextClamps(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.rs", []byte("pub fn x"))
	if got := fs.Text(Span{File: id, Start: 4, End: 6}); got != "fn" {
		t.Errorf("Text = %q", got)
	}
	if got := fs.Text(Span{File: id, Start: 7, End: 100}); got != "x" {
		t.Errorf("clamped Text = %q", got)
	}
}

func TestLoadNormalizesBOMAndCRLF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lib.rs")
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("fn a() {}\r\nfn b() {}\r\n")...)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f := fs.Get(id)
	if string(f.Content) != "fn a() {}\nfn b() {}\n" {
		t.Errorf("content = %q", f.Content)
	}
	if f.Flags&FileHadBOM == 0 || f.Flags&FileNormalizedCRLF == 0 {
		t.Errorf("flags = %b, want BOM and CRLF bits", f.Flags)
	}
}
