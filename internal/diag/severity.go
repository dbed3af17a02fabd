package diag

// Severity ranks a diagnostic. Every rejected functional component is
// SevError; SevInfo carries the per-item "expanded" reports of --verbose.
type Severity uint8

const (
	SevInfo Severity = iota
	// SevWarning is not produced by the pass itself; it never fails a file.
	SevWarning
	SevError
)

// Fails reports whether a diagnostic of this severity fails the file: the
// item is replaced by compile_error! and `expand --check` exits non-zero.
func (s Severity) Fails() bool { return s >= SevError }

// String is the label used by the pretty, short and JSON renderers.
func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}
