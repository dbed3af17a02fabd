// Package testkit holds checks shared by tests of packages that produce
// FunctionIR from source files.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"fncomp/internal/component"
	"fncomp/internal/source"
)

// CheckSiteInvariants runs span invariants on one expanded item:
//  1. the site span is non-empty and within the file content;
//  2. attributes, name, parameter, return type and body lie inside the site,
//     in source order;
//  3. the body closes the site and the name span holds the name text.
func CheckSiteInvariants(file *source.File, site source.Span, ir *component.FunctionIR) error {
	if file == nil || ir == nil {
		return fmt.Errorf("nil file or IR")
	}
	lenContent, err := safecast.Conv[uint32](len(file.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	// 1) site span sanity
	if site.End <= site.Start {
		return fmt.Errorf("site span is empty: %v", site)
	}
	if site.File != file.ID {
		return fmt.Errorf("site span points to different file id: got=%d want=%d", site.File, file.ID)
	}
	if site.End > lenContent {
		return fmt.Errorf("site span end beyond content: %d > %d", site.End, lenContent)
	}

	// 2) containment and order
	inside := func(what string, sp source.Span) error {
		if sp.File != file.ID || sp.Start < site.Start || sp.End > site.End || sp.End < sp.Start {
			return fmt.Errorf("%s span %v outside site %v", what, sp, site)
		}
		return nil
	}
	pos := site.Start
	for i, a := range ir.Attrs {
		if err := inside(fmt.Sprintf("attr %d", i), a.Span); err != nil {
			return err
		}
		if a.Span.Start < pos {
			return fmt.Errorf("attr %d starts before previous attribute", i)
		}
		pos = a.Span.End
	}
	if err := inside("name", ir.Name.Span); err != nil {
		return err
	}
	if ir.Name.Span.Start < pos {
		return fmt.Errorf("name starts before attributes end")
	}
	pos = ir.Name.Span.End
	if !ir.Synthesized {
		if err := inside("arg", ir.Arg.Span); err != nil {
			return err
		}
		if ir.Arg.Span.Start < pos {
			return fmt.Errorf("arg starts before name ends")
		}
		if !ir.Arg.Span.Contains(ir.PropsType.Span) {
			return fmt.Errorf("props type %v outside arg %v", ir.PropsType.Span, ir.Arg.Span)
		}
		pos = ir.Arg.Span.End
	}
	if err := inside("return type", ir.ReturnType.Span); err != nil {
		return err
	}
	if ir.ReturnType.Span.Start < pos {
		return fmt.Errorf("return type starts before parameters end")
	}
	if err := inside("body", ir.Body.Span); err != nil {
		return err
	}
	if ir.Body.Span.Start < ir.ReturnType.Span.End {
		return fmt.Errorf("body starts before return type ends")
	}

	// 3) body closes the item, name text matches source
	if ir.Body.Span.End != site.End {
		return fmt.Errorf("body ends at %d, site at %d", ir.Body.Span.End, site.End)
	}
	if got := file.Text(ir.Name.Span); got != ir.Name.Text {
		return fmt.Errorf("name span holds %q, want %q", got, ir.Name.Text)
	}
	return nil
}
