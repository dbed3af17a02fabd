// Package diag defines the diagnostic model shared by the lexer, the item
// parser, the expansion pass and the driver.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity – tri-level enum (Info, Warning, Error) defined in severity.go.
//   - Code – compact numeric identifier (see codes.go) with stable string form
//     (LEX1001, SYN2002, FNC3004, ...).
//   - Message – human oriented text; keep it short and actionable.
//   - Primary span – the canonical source.Span pointing to the issue.
//   - Notes – optional secondary spans/messages for additional context.
//   - Fixes – optional text edits suggested to the user.
//
// # Emitting diagnostics
//
// Phases use a diag.Reporter to decouple emission from storage, either by
// calling Report directly or through ReportBuilder (ReportError / ReportInfo,
// WithNote, WithFix, Emit). BagReporter aggregates diagnostics into a Bag,
// which supports limits, sorting, deduplication and merging.
//
// Package diag does no formatting beyond the single-line short form used by
// golden tests; rendering lives in internal/diagfmt.
package diag
