package diag

import (
	"testing"

	"fncomp/internal/source"
)

func TestBagLimitAndSort(t *testing.T) {
	bag := NewBag(2)
	if !bag.Add(NewError(FncTooManyParameters, source.Span{Start: 20, End: 25}, "b")) {
		t.Fatal("first add must succeed")
	}
	bag.Add(NewError(FncNotAFunction, source.Span{Start: 3, End: 5}, "a"))
	if bag.Add(NewError(FncNameCollision, source.Span{}, "c")) {
		t.Fatal("add over the limit must fail")
	}

	bag.Sort()
	items := bag.Items()
	if items[0].Code != FncNotAFunction || items[1].Code != FncTooManyParameters {
		t.Fatalf("unexpected order: %v, %v", items[0].Code, items[1].Code)
	}
	if !bag.HasErrors() {
		t.Error("HasErrors() = false")
	}
}

func TestBagMergeGrowsLimit(t *testing.T) {
	a := NewBag(1)
	a.Add(NewError(FncNotAFunction, source.Span{}, "a"))
	b := NewBag(1)
	b.Add(NewError(FncNameCollision, source.Span{}, "b"))

	a.Merge(b)
	if a.Len() != 2 || a.Cap() != 2 {
		t.Fatalf("Len=%d Cap=%d, want 2/2", a.Len(), a.Cap())
	}
}

func TestBagDedup(t *testing.T) {
	bag := NewBag(0)
	sp := source.Span{Start: 1, End: 2}
	bag.Add(NewError(SynUnexpectedToken, sp, "x"))
	bag.Add(NewError(SynUnexpectedToken, sp, "x again"))
	bag.Add(NewError(SynUnexpectedToken, source.Span{Start: 3, End: 4}, "y"))
	bag.Dedup()
	if bag.Len() != 2 {
		t.Fatalf("Len after Dedup = %d, want 2", bag.Len())
	}
}

func TestCodeID(t *testing.T) {
	tests := map[Code]string{
		LexUnknownChar:           "LEX1001",
		SynUnclosedDelimiter:     "SYN2002",
		FncInvalidPropsParameter: "FNC3004",
		IOLoadFileError:          "IO4001",
		PrjManifestError:         "PRJ5001",
		UnknownCode:              "E0000",
	}
	for code, want := range tests {
		if got := code.ID(); got != want {
			t.Errorf("%d.ID() = %q, want %q", code, got, want)
		}
	}
	if FncNameCollision.Title() == UnknownCode.Title() {
		t.Error("FncNameCollision must have its own title")
	}
}

func TestReportBuilderEmitsOnce(t *testing.T) {
	bag := NewBag(0)
	b := ReportError(BagReporter{Bag: bag}, FncNameCollision, source.Span{Start: 1, End: 4}, "names").
		WithNote(source.Span{Start: 10, End: 13}, "component name here")
	b.Emit()
	b.Emit()
	if bag.Len() != 1 {
		t.Fatalf("Len = %d, want 1", bag.Len())
	}
	if len(bag.Items()[0].Notes) != 1 {
		t.Error("note was lost")
	}
}

func TestDedupReporter(t *testing.T) {
	bag := NewBag(0)
	r := NewDedupReporter(BagReporter{Bag: bag})
	sp := source.Span{Start: 1, End: 2}
	r.Report(LexUnknownChar, SevError, sp, "unknown character", nil, nil)
	r.Report(LexUnknownChar, SevError, sp, "unknown character", nil, nil)
	if bag.Len() != 1 {
		t.Fatalf("Len = %d, want 1", bag.Len())
	}
}

func TestFormatShortDiagnostics(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("src/lib.rs", []byte("fn a() {}\nfn b(x: u8) {}\n"))
	d := NewError(FncMissingReturnType, source.Span{File: id, Start: 20, End: 21}, "missing").
		WithNote(source.Span{File: id, Start: 0, End: 2}, "here")

	got := FormatShortDiagnostics([]Diagnostic{d}, fs, true)
	want := "NOTE FNC3006 src/lib.rs:1:1 here\nERROR FNC3006 src/lib.rs:2:11 missing"
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestSeverityFails(t *testing.T) {
	for sev, want := range map[Severity]bool{SevInfo: false, SevWarning: false, SevError: true} {
		if got := sev.Fails(); got != want {
			t.Errorf("%s.Fails() = %v, want %v", sev, got, want)
		}
	}
	bag := NewBag(0)
	bag.Add(New(SevInfo, FncExpanded, source.Span{}, "expanded `a` into component `A`"))
	if bag.HasErrors() {
		t.Fatal("info diagnostics must not fail the file")
	}
	bag.Add(NewError(FncNotAFunction, source.Span{}, "not a function"))
	if !bag.HasErrors() {
		t.Fatal("an error diagnostic must fail the file")
	}
}
