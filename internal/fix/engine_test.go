package fix

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fncomp/internal/diag"
	"fncomp/internal/source"
)

func loadTemp(t *testing.T, content string) (*source.FileSet, source.FileID, string) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "app.rs")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	fs := source.NewFileSetWithBase(dir)
	id, err := fs.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	return fs, id, path
}

func spanOf(t *testing.T, fs *source.FileSet, id source.FileID, needle string) source.Span {
	t.Helper()
	content := string(fs.Get(id).Content)
	i := strings.Index(content, needle)
	if i < 0 {
		t.Fatalf("%q not found", needle)
	}
	return source.Span{File: id, Start: uint32(i), End: uint32(i + len(needle))} // #nosec G115 -- test input is tiny
}

func TestApplyOnceRemovesMut(t *testing.T) {
	fs, id, path := loadTemp(t, "fn app(props: &mut Props) -> Html {}\n")
	mut := spanOf(t, fs, id, "mut ")
	diagnostics := []diag.Diagnostic{
		diag.NewError(diag.FncInvalidPropsParameter, mut, "reference must not be mutable").
			WithFix("remove `mut`", diag.TextEdit{Span: mut}),
	}

	res, err := Apply(fs, diagnostics, ApplyOptions{Mode: ApplyModeOnce})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(res.Applied) != 1 || res.Applied[0].Title != "remove `mut`" {
		t.Fatalf("unexpected applied %+v", res.Applied)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "fn app(props: &Props) -> Html {}\n" {
		t.Fatalf("unexpected content %q", data)
	}
	if len(res.FileChanges) != 1 || res.FileChanges[0].Path != "app.rs" || res.FileChanges[0].EditCount != 1 {
		t.Fatalf("unexpected changes %+v", res.FileChanges)
	}
}

func TestApplyAllShiftsAndSkipsConflicts(t *testing.T) {
	fs, id, path := loadTemp(t, "fn a(p: P) {}\nfn b(q: &'x mut Q) {}\n")
	p := spanOf(t, fs, id, "P)")
	p.End = p.Start
	lt := spanOf(t, fs, id, "'x ")
	mut := spanOf(t, fs, id, "mut ")
	overlap := source.Span{File: id, Start: lt.Start, End: mut.End}

	diagnostics := []diag.Diagnostic{
		diag.NewError(diag.FncInvalidPropsParameter, p, "expected a reference").WithFix("add &", diag.TextEdit{Span: p, NewText: "&"}),
		diag.NewError(diag.FncInvalidPropsParameter, lt, "lifetime").WithFix("remove the lifetime", diag.TextEdit{Span: lt}),
		diag.NewError(diag.FncInvalidPropsParameter, mut, "mut").WithFix("remove `mut`", diag.TextEdit{Span: mut}),
		diag.NewError(diag.FncInvalidPropsParameter, overlap, "overlap").WithFix("rewrite", diag.TextEdit{Span: overlap, NewText: ""}),
	}

	res, err := Apply(fs, diagnostics, ApplyOptions{Mode: ApplyModeAll})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(res.Applied) != 3 {
		t.Fatalf("expected 3 applied, got %+v", res.Applied)
	}
	if len(res.Skipped) != 1 || !strings.HasPrefix(res.Skipped[0].Reason, "conflicts with previously applied edits") {
		t.Fatalf("unexpected skipped %+v", res.Skipped)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "fn a(p: &P) {}\nfn b(q: &Q) {}\n" {
		t.Fatalf("unexpected content %q", data)
	}
}

func TestApplyDryRunKeepsFile(t *testing.T) {
	const src = "fn app() {}\n"
	fs, id, path := loadTemp(t, src)
	rparen := spanOf(t, fs, id, ")")
	after := source.Span{File: id, Start: rparen.End, End: rparen.End}
	diagnostics := []diag.Diagnostic{
		diag.NewError(diag.FncMissingReturnType, rparen, "must return").
			WithFix("declare the return type", diag.TextEdit{Span: after, NewText: " -> ::yew::html::Html"}),
	}

	res, err := Apply(fs, diagnostics, ApplyOptions{Mode: ApplyModeAll, DryRun: true})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if got := string(res.FileChanges[0].Content); got != "fn app() -> ::yew::html::Html {}\n" {
		t.Fatalf("unexpected new content %q", got)
	}
	data, _ := os.ReadFile(path)
	if string(data) != src {
		t.Fatalf("dry run wrote the file: %q", data)
	}
}

func TestApplySkipsVirtualFiles(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.rs", []byte("fn a(p: &mut P) {}"))
	sp := source.Span{File: id, Start: 9, End: 13}
	diagnostics := []diag.Diagnostic{
		diag.NewError(diag.FncInvalidPropsParameter, sp, "mut").WithFix("remove `mut`", diag.TextEdit{Span: sp}),
	}

	res, err := Apply(fs, diagnostics, ApplyOptions{Mode: ApplyModeAll})
	if !errors.Is(err, ErrNoFixes) {
		t.Fatalf("expected ErrNoFixes, got %v", err)
	}
	if len(res.Skipped) != 1 || res.Skipped[0].Reason != "target file is virtual" {
		t.Fatalf("unexpected skipped %+v", res.Skipped)
	}
}

func TestGatherCandidatesSkipsDuplicateFixIDs(t *testing.T) {
	span := source.Span{File: 0, Start: 3, End: 3}
	d := diag.NewError(diag.FncMissingReturnType, span, "must return").
		WithFix("declare the return type", diag.TextEdit{Span: span, NewText: " -> Html"})

	candidates, skips := gatherCandidates([]diag.Diagnostic{d, d})
	if len(candidates) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(candidates))
	}
	if len(skips) != 1 || skips[0].Reason != "duplicate fix id" {
		t.Fatalf("unexpected skips %+v", skips)
	}
	if skips[0].ID != candidates[0].id {
		t.Fatalf("skip id %q != candidate id %q", skips[0].ID, candidates[0].id)
	}
}

func TestGatherCandidatesKeepsDistinctFixesAtSameStart(t *testing.T) {
	short := source.Span{File: 0, Start: 3, End: 5}
	long := source.Span{File: 0, Start: 3, End: 9}
	diagnostics := []diag.Diagnostic{
		diag.NewError(diag.FncInvalidPropsParameter, short, "lifetime").
			WithFix("remove the lifetime", diag.TextEdit{Span: short}),
		diag.NewError(diag.FncInvalidPropsParameter, long, "overlap").
			WithFix("rewrite", diag.TextEdit{Span: long}),
		diag.NewError(diag.FncInvalidPropsParameter, short, "lifetime").
			WithFix("replace the lifetime", diag.TextEdit{Span: short, NewText: "'a "}),
	}

	candidates, skips := gatherCandidates(diagnostics)
	if len(candidates) != 3 || len(skips) != 0 {
		t.Fatalf("expected 3 candidates and no skips, got %d / %+v", len(candidates), skips)
	}
	if candidates[0].id == candidates[1].id {
		t.Fatalf("fixes with different spans share id %q", candidates[0].id)
	}
}

func TestApplyWithoutFixes(t *testing.T) {
	fs := source.NewFileSet()
	d := diag.NewError(diag.FncNameCollision, source.Span{}, "same name")
	if _, err := Apply(fs, []diag.Diagnostic{d}, ApplyOptions{}); !errors.Is(err, ErrNoFixes) {
		t.Fatalf("expected ErrNoFixes, got %v", err)
	}
	if _, err := Apply(nil, nil, ApplyOptions{}); err == nil {
		t.Fatal("expected error for nil FileSet")
	}
}

func TestSpansConflict(t *testing.T) {
	edit := func(start, end uint32) diag.TextEdit {
		return diag.TextEdit{Span: source.Span{Start: start, End: end}}
	}
	tests := []struct {
		a, b diag.TextEdit
		want bool
	}{
		{edit(1, 1), edit(1, 1), false},
		{edit(2, 2), edit(1, 4), true},
		{edit(4, 4), edit(1, 4), false},
		{edit(1, 4), edit(3, 6), true},
		{edit(1, 3), edit(3, 6), false},
	}
	for _, tt := range tests {
		if got := spansConflict(tt.a, tt.b); got != tt.want {
			t.Errorf("spansConflict(%v, %v) = %v, want %v", tt.a.Span, tt.b.Span, got, tt.want)
		}
	}
}
