package fix

import (
	"fncomp/internal/diag"
	"fncomp/internal/source"
)

// InsertText creates fix that inserts text at the start of at.
func InsertText(title string, at source.Span, text string) diag.Fix {
	at.End = at.Start
	return diag.Fix{
		Title: title,
		Edits: []diag.TextEdit{{Span: at, NewText: text}},
	}
}

// DeleteSpan removes text covered by span.
func DeleteSpan(title string, span source.Span) diag.Fix {
	return ReplaceSpan(title, span, "")
}

// ReplaceSpan replaces text covered by span with newText.
func ReplaceSpan(title string, span source.Span, newText string) diag.Fix {
	return diag.Fix{
		Title: title,
		Edits: []diag.TextEdit{{Span: span, NewText: newText}},
	}
}
