package diag

import (
	"fncomp/internal/source"
)

type Note struct {
	Span source.Span
	Msg  string
}

// TextEdit replaces the text under Span with NewText.
type TextEdit struct {
	Span    source.Span
	NewText string
}

type Fix struct {
	Title string
	Edits []TextEdit
}

type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
	Fixes    []Fix
}
