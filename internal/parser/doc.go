// Package parser разбирает один Rust item из плоского потока токенов.
//
// Parsing happens in two steps. Build groups the token list into a Tree by
// matching delimiters, which rejects unbalanced input early. ParseItem then
// walks the tree and recognises the function signature: attributes,
// visibility, qualifiers, name, generics, parameters, return type and where
// clause. The body is never parsed; it is kept as an opaque block.
package parser
