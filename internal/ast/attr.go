package ast

// Attr is an outer attribute `#[...]` or an outer doc comment.
type Attr struct {
	Fragment
	// Path is the attribute path without spaces, e.g. "yew_functional::functional_component".
	// Empty for doc comments.
	Path string
	// Args holds the tokens after the path, delimiters included.
	Args Fragment
	Doc  bool
}

// IsNamed reports whether the attribute path equals one of names.
func (a Attr) IsNamed(names ...string) bool {
	for _, n := range names {
		if a.Path == n {
			return true
		}
	}
	return false
}
