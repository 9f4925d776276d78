// Package xmlresp decodes the structured markup replies of the vault
// server into a small attributed tree.
//
// The parser makes a single forward pass over the token stream with an
// explicit stack, so memory stays bounded by nesting depth. Anything that
// is not well formed, including an element left open at end of input, is
// rejected outright; a partial tree is never returned.
package xmlresp
