// Package ast holds the syntax tree of a single Rust item as seen by the
// functional component pass. Only the signature is modelled in detail; the
// body and every type keep their tokens and verbatim source text.
package ast
