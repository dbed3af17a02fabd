package driver

import (
	"fncomp/internal/component"
	"fncomp/internal/diag"
	"fncomp/internal/source"
)

// Site is one annotated item found in a file.
type Site struct {
	// Span covers the item together with its attributes.
	Span      source.Span
	Function  string
	Component string
	// Nested is set for items found inside the body of another annotated function.
	Nested bool
	Cached bool
	// IR is nil when the expansion failed or was served from cache.
	IR  *component.FunctionIR
	Err *component.Error
}

// Result is the expansion of one file.
type Result struct {
	Path   string
	FileID source.FileID
	// Output is the rewritten source; equal to the input when nothing was expanded.
	Output  string
	Sites   []Site
	Bag     *diag.Bag
	Changed bool
	// Written is the output path when the result was written to disk.
	Written string
}

// Failed reports whether any site failed or the file could not be processed.
func (r *Result) Failed() bool {
	return r.Bag != nil && r.Bag.HasErrors()
}
