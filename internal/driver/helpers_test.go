package driver

import (
	"context"
	"testing"

	"fncomp/internal/diag"
	"fncomp/internal/source"
)

func expandString(t *testing.T, src string, opts Options) (*source.FileSet, *Result) {
	t.Helper()
	return ExpandSource(context.Background(), "test.rs", []byte(src), opts)
}

func codes(bag *diag.Bag) []string {
	var out []string
	for _, d := range bag.Items() {
		out = append(out, d.Code.ID())
	}
	return out
}
